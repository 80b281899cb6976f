package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-crm/internal/domain"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
)

// CreateTransfer crea un traslado en borrador entre dos bodegas distintas.
func (uc *DocumentsUseCase) CreateTransfer(fromWarehouseID, toWarehouseID string, date time.Time) (*entity.Transfer, error) {
	if fromWarehouseID == toWarehouseID {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.requireWarehouse(fromWarehouseID); err != nil {
		return nil, err
	}
	if err := uc.requireWarehouse(toWarehouseID); err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = time.Now()
	}
	doc := &entity.Transfer{
		ID:              uuid.New().String(),
		FromWarehouseID: fromWarehouseID,
		ToWarehouseID:   toWarehouseID,
		Date:            date,
		Status:          entity.DocStatusDraft,
	}
	if err := uc.transfers.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// GetTransfer carga un traslado con sus líneas.
func (uc *DocumentsUseCase) GetTransfer(id string) (*entity.Transfer, error) {
	doc, err := uc.transfers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

// ListTransfers lista traslados paginados.
func (uc *DocumentsUseCase) ListTransfers(limit, offset int) ([]*entity.Transfer, error) {
	return uc.transfers.List(normalizePage(limit, offset))
}

// UpdateTransferHeader cambia bodegas o fecha de un borrador.
func (uc *DocumentsUseCase) UpdateTransferHeader(id, fromWarehouseID, toWarehouseID string, date time.Time) (*entity.Transfer, error) {
	doc, err := uc.editableTransfer(id)
	if err != nil {
		return nil, err
	}
	if fromWarehouseID != "" {
		if err := uc.requireWarehouse(fromWarehouseID); err != nil {
			return nil, err
		}
		doc.FromWarehouseID = fromWarehouseID
	}
	if toWarehouseID != "" {
		if err := uc.requireWarehouse(toWarehouseID); err != nil {
			return nil, err
		}
		doc.ToWarehouseID = toWarehouseID
	}
	if doc.FromWarehouseID == doc.ToWarehouseID {
		return nil, domain.ErrInvalidInput
	}
	if !date.IsZero() {
		doc.Date = date
	}
	if err := uc.transfers.UpdateHeader(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// AddTransferLine agrega una línea al borrador.
func (uc *DocumentsUseCase) AddTransferLine(docID, itemID string, qty decimal.Decimal) (*entity.TransferLine, error) {
	doc, err := uc.editableTransfer(docID)
	if err != nil {
		return nil, err
	}
	if err := uc.requireItem(itemID); err != nil {
		return nil, err
	}
	qty, err = positiveQty(qty)
	if err != nil {
		return nil, err
	}
	line := &entity.TransferLine{
		ID:         uuid.New().String(),
		TransferID: doc.ID,
		ItemID:     itemID,
		Qty:        qty,
	}
	if err := uc.transfers.AddLine(line); err != nil {
		return nil, err
	}
	return line, nil
}

// RemoveTransferLine elimina una línea del borrador.
func (uc *DocumentsUseCase) RemoveTransferLine(docID, lineID string) error {
	doc, err := uc.editableTransfer(docID)
	if err != nil {
		return err
	}
	for _, line := range doc.Lines {
		if line.ID == lineID {
			return uc.transfers.DeleteLine(lineID)
		}
	}
	return domain.ErrNotFound
}

// DeleteTransfer elimina un borrador completo.
func (uc *DocumentsUseCase) DeleteTransfer(id string) error {
	if _, err := uc.editableTransfer(id); err != nil {
		return err
	}
	return uc.transfers.Delete(id)
}

func (uc *DocumentsUseCase) editableTransfer(id string) (*entity.Transfer, error) {
	doc, err := uc.GetTransfer(id)
	if err != nil {
		return nil, err
	}
	if doc.Posted() {
		return nil, domain.ErrNotEditable
	}
	return doc, nil
}
