package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-crm/internal/domain"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
)

// CreateInventory crea una inventarización en borrador.
func (uc *DocumentsUseCase) CreateInventory(warehouseID string, date time.Time) (*entity.InventoryDoc, error) {
	if err := uc.requireWarehouse(warehouseID); err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = time.Now()
	}
	doc := &entity.InventoryDoc{
		ID:          uuid.New().String(),
		WarehouseID: warehouseID,
		Date:        date,
		Status:      entity.DocStatusDraft,
	}
	if err := uc.inventories.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// GetInventory carga una inventarización con sus líneas.
func (uc *DocumentsUseCase) GetInventory(id string) (*entity.InventoryDoc, error) {
	doc, err := uc.inventories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

// ListInventories lista inventarizaciones paginadas.
func (uc *DocumentsUseCase) ListInventories(limit, offset int) ([]*entity.InventoryDoc, error) {
	return uc.inventories.List(normalizePage(limit, offset))
}

// AddInventoryLine agrega una línea de conteo al borrador. El conteo puede ser
// cero: significa que el insumo no apareció en el conteo físico.
func (uc *DocumentsUseCase) AddInventoryLine(docID, itemID string, countedQty decimal.Decimal) (*entity.InventoryLine, error) {
	doc, err := uc.editableInventory(docID)
	if err != nil {
		return nil, err
	}
	if err := uc.requireItem(itemID); err != nil {
		return nil, err
	}
	countedQty, err = nonNegativeQty(countedQty)
	if err != nil {
		return nil, err
	}
	for _, line := range doc.Lines {
		if line.ItemID == itemID {
			return nil, domain.ErrDuplicate
		}
	}
	line := &entity.InventoryLine{
		ID:         uuid.New().String(),
		DocID:      doc.ID,
		ItemID:     itemID,
		CountedQty: countedQty,
	}
	if err := uc.inventories.AddLine(line); err != nil {
		return nil, err
	}
	return line, nil
}

// UpdateInventoryLine corrige el conteo de una línea existente.
func (uc *DocumentsUseCase) UpdateInventoryLine(docID, lineID string, countedQty decimal.Decimal) (*entity.InventoryLine, error) {
	doc, err := uc.editableInventory(docID)
	if err != nil {
		return nil, err
	}
	countedQty, err = nonNegativeQty(countedQty)
	if err != nil {
		return nil, err
	}
	for _, line := range doc.Lines {
		if line.ID == lineID {
			line.CountedQty = countedQty
			if err := uc.inventories.UpdateLine(line); err != nil {
				return nil, err
			}
			return line, nil
		}
	}
	return nil, domain.ErrNotFound
}

// RemoveInventoryLine elimina una línea del borrador.
func (uc *DocumentsUseCase) RemoveInventoryLine(docID, lineID string) error {
	doc, err := uc.editableInventory(docID)
	if err != nil {
		return err
	}
	for _, line := range doc.Lines {
		if line.ID == lineID {
			return uc.inventories.DeleteLine(lineID)
		}
	}
	return domain.ErrNotFound
}

// FillInventoryFromBalances precarga el conteo con los saldos actuales de la
// bodega, para que el operario solo corrija las diferencias. Omite insumos
// que ya tienen línea.
func (uc *DocumentsUseCase) FillInventoryFromBalances(docID string) (*entity.InventoryDoc, error) {
	doc, err := uc.editableInventory(docID)
	if err != nil {
		return nil, err
	}
	existing := make(map[string]bool, len(doc.Lines))
	for _, line := range doc.Lines {
		existing[line.ItemID] = true
	}
	balances, err := uc.balances.ListByWarehouse(doc.WarehouseID)
	if err != nil {
		return nil, err
	}
	for _, balance := range balances {
		if existing[balance.ItemID] {
			continue
		}
		counted := balance.Quantity
		if counted.Sign() < 0 {
			counted = decimal.Zero
		}
		line := &entity.InventoryLine{
			ID:         uuid.New().String(),
			DocID:      doc.ID,
			ItemID:     balance.ItemID,
			CountedQty: counted,
		}
		if err := uc.inventories.AddLine(line); err != nil {
			return nil, err
		}
		doc.Lines = append(doc.Lines, line)
	}
	return doc, nil
}

// DeleteInventory elimina un borrador completo.
func (uc *DocumentsUseCase) DeleteInventory(id string) error {
	if _, err := uc.editableInventory(id); err != nil {
		return err
	}
	return uc.inventories.Delete(id)
}

func (uc *DocumentsUseCase) editableInventory(id string) (*entity.InventoryDoc, error) {
	doc, err := uc.GetInventory(id)
	if err != nil {
		return nil, err
	}
	if doc.Posted() {
		return nil, domain.ErrNotEditable
	}
	return doc, nil
}
