package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-crm/internal/domain"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
)

// CreatePurchase crea una recepción de compra en borrador.
func (uc *DocumentsUseCase) CreatePurchase(warehouseID, supplierID string, date time.Time) (*entity.Purchase, error) {
	if err := uc.requireWarehouse(warehouseID); err != nil {
		return nil, err
	}
	if supplierID != "" {
		supplier, err := uc.suppliers.GetByID(supplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
	}
	if date.IsZero() {
		date = time.Now()
	}
	doc := &entity.Purchase{
		ID:          uuid.New().String(),
		SupplierID:  supplierID,
		WarehouseID: warehouseID,
		Date:        date,
		Status:      entity.DocStatusDraft,
	}
	if err := uc.purchases.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// GetPurchase carga una recepción con sus líneas.
func (uc *DocumentsUseCase) GetPurchase(id string) (*entity.Purchase, error) {
	doc, err := uc.purchases.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}

// ListPurchases lista recepciones paginadas.
func (uc *DocumentsUseCase) ListPurchases(limit, offset int) ([]*entity.Purchase, error) {
	return uc.purchases.List(normalizePage(limit, offset))
}

// UpdatePurchaseHeader cambia bodega, proveedor o fecha de un borrador.
func (uc *DocumentsUseCase) UpdatePurchaseHeader(id, warehouseID, supplierID string, date time.Time) (*entity.Purchase, error) {
	doc, err := uc.editablePurchase(id)
	if err != nil {
		return nil, err
	}
	if warehouseID != "" && warehouseID != doc.WarehouseID {
		if err := uc.requireWarehouse(warehouseID); err != nil {
			return nil, err
		}
		doc.WarehouseID = warehouseID
	}
	if supplierID != "" && supplierID != doc.SupplierID {
		supplier, err := uc.suppliers.GetByID(supplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
		doc.SupplierID = supplierID
	}
	if !date.IsZero() {
		doc.Date = date
	}
	if err := uc.purchases.UpdateHeader(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// AddPurchaseLine agrega una línea al borrador.
func (uc *DocumentsUseCase) AddPurchaseLine(docID, itemID string, qty, price decimal.Decimal) (*entity.PurchaseLine, error) {
	doc, err := uc.editablePurchase(docID)
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
	if price.Sign() < 0 {
		return nil, domain.ErrInvalidInput
	}
	line := &entity.PurchaseLine{
		ID:         uuid.New().String(),
		PurchaseID: doc.ID,
		ItemID:     itemID,
		Qty:        qty,
		Price:      price.Round(2),
	}
	if err := uc.purchases.AddLine(line); err != nil {
		return nil, err
	}
	return line, nil
}

// RemovePurchaseLine elimina una línea del borrador.
func (uc *DocumentsUseCase) RemovePurchaseLine(docID, lineID string) error {
	doc, err := uc.editablePurchase(docID)
	if err != nil {
		return err
	}
	for _, line := range doc.Lines {
		if line.ID == lineID {
			return uc.purchases.DeleteLine(lineID)
		}
	}
	return domain.ErrNotFound
}

// DeletePurchase elimina un borrador completo; un documento provisto no se borra.
func (uc *DocumentsUseCase) DeletePurchase(id string) error {
	if _, err := uc.editablePurchase(id); err != nil {
		return err
	}
	return uc.purchases.Delete(id)
}

// editablePurchase carga el documento y verifica que siga en borrador.
func (uc *DocumentsUseCase) editablePurchase(id string) (*entity.Purchase, error) {
	doc, err := uc.GetPurchase(id)
	if err != nil {
		return nil, err
	}
	if doc.Posted() {
		return nil, domain.ErrNotEditable
	}
	return doc, nil
}

// normalizePage acota los parámetros de paginación de listados.
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
