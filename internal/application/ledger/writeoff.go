package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-crm/internal/domain"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
)

// CreateWriteOff crea una baja en borrador.
func (uc *DocumentsUseCase) CreateWriteOff(warehouseID, reason string, date time.Time) (*entity.WriteOff, error) {
	if err := uc.requireWarehouse(warehouseID); err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = time.Now()
	}
	doc := &entity.WriteOff{
		ID:          uuid.New().String(),
		WarehouseID: warehouseID,
		Date:        date,
		Reason:      reason,
		Status:      entity.DocStatusDraft,
	}
	if err := uc.writeOffs.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// GetWriteOff carga una baja con sus líneas.
func (uc *DocumentsUseCase) GetWriteOff(id string) (*entity.WriteOff, error) {
	doc, err := uc.writeOffs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

// ListWriteOffs lista bajas paginadas.
func (uc *DocumentsUseCase) ListWriteOffs(limit, offset int) ([]*entity.WriteOff, error) {
	return uc.writeOffs.List(normalizePage(limit, offset))
}

// UpdateWriteOffHeader cambia bodega, motivo o fecha de un borrador.
func (uc *DocumentsUseCase) UpdateWriteOffHeader(id, warehouseID, reason string, date time.Time) (*entity.WriteOff, error) {
	doc, err := uc.editableWriteOff(id)
	if err != nil {
		return nil, err
	}
	if warehouseID != "" && warehouseID != doc.WarehouseID {
		if err := uc.requireWarehouse(warehouseID); err != nil {
			return nil, err
		}
		doc.WarehouseID = warehouseID
	}
	if reason != "" {
		doc.Reason = reason
	}
	if !date.IsZero() {
		doc.Date = date
	}
	if err := uc.writeOffs.UpdateHeader(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// AddWriteOffLine agrega una línea al borrador.
func (uc *DocumentsUseCase) AddWriteOffLine(docID, itemID string, qty decimal.Decimal) (*entity.WriteOffLine, error) {
	doc, err := uc.editableWriteOff(docID)
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
	line := &entity.WriteOffLine{
		ID:         uuid.New().String(),
		WriteOffID: doc.ID,
		ItemID:     itemID,
		Qty:        qty,
	}
	if err := uc.writeOffs.AddLine(line); err != nil {
		return nil, err
	}
	return line, nil
}

// RemoveWriteOffLine elimina una línea del borrador.
func (uc *DocumentsUseCase) RemoveWriteOffLine(docID, lineID string) error {
	doc, err := uc.editableWriteOff(docID)
	if err != nil {
		return err
	}
	for _, line := range doc.Lines {
		if line.ID == lineID {
			return uc.writeOffs.DeleteLine(lineID)
		}
	}
	return domain.ErrNotFound
}

// DeleteWriteOff elimina un borrador completo.
func (uc *DocumentsUseCase) DeleteWriteOff(id string) error {
	if _, err := uc.editableWriteOff(id); err != nil {
		return err
	}
	return uc.writeOffs.Delete(id)
}

func (uc *DocumentsUseCase) editableWriteOff(id string) (*entity.WriteOff, error) {
	doc, err := uc.GetWriteOff(id)
	if err != nil {
		return nil, err
	}
	if doc.Posted() {
		return nil, domain.ErrNotEditable
	}
	return doc, nil
}
