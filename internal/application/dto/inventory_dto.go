package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
)

// StockItemRequest body para crear o actualizar un insumo.
type StockItemRequest struct {
	Name              string          `json:"name"`
	Unit              string          `json:"unit"`
	Category          string          `json:"category,omitempty"`
	ItemType          string          `json:"item_type"`
	SKU               string          `json:"sku,omitempty"`
	Barcode           string          `json:"barcode,omitempty"`
	PurchasePricePlan decimal.Decimal `json:"purchase_price_plan"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	IsAlcohol         bool            `json:"is_alcohol"`
}

// StockItemResponse representación de un insumo.
type StockItemResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Unit              string          `json:"unit"`
	Category          string          `json:"category,omitempty"`
	ItemType          string          `json:"item_type"`
	SKU               string          `json:"sku,omitempty"`
	Barcode           string          `json:"barcode,omitempty"`
	PurchasePricePlan decimal.Decimal `json:"purchase_price_plan"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	IsAlcohol         bool            `json:"is_alcohol"`
	CreatedAt         time.Time       `json:"created_at"`
}

func NewStockItemResponse(item *entity.StockItem) *StockItemResponse {
	return &StockItemResponse{
		ID:                item.ID,
		Name:              item.Name,
		Unit:              item.Unit,
		Category:          item.Category,
		ItemType:          item.ItemType,
		SKU:               item.SKU,
		Barcode:           item.Barcode,
		PurchasePricePlan: item.PurchasePricePlan,
		SalePrice:         item.SalePrice,
		IsAlcohol:         item.IsAlcohol,
		CreatedAt:         item.CreatedAt,
	}
}

// WarehouseRequest body para crear o renombrar una bodega.
type WarehouseRequest struct {
	Name string `json:"name"`
}

// WarehouseResponse representación de una bodega.
type WarehouseResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SupplierRequest body para crear o actualizar un proveedor.
type SupplierRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

// SupplierResponse representación de un proveedor.
type SupplierResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

// BalanceResponse saldo de un insumo en una bodega.
type BalanceResponse struct {
	ItemID      string          `json:"item_id"`
	WarehouseID string          `json:"warehouse_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func NewBalanceResponse(b *entity.StockBalance) *BalanceResponse {
	return &BalanceResponse{
		ItemID:      b.ItemID,
		WarehouseID: b.WarehouseID,
		Quantity:    b.Quantity,
		UpdatedAt:   b.UpdatedAt,
	}
}

// ManualMovementRequest body para registrar un movimiento manual.
type ManualMovementRequest struct {
	WarehouseID string          `json:"warehouse_id"`
	ItemID      string          `json:"item_id"`
	Delta       decimal.Decimal `json:"delta"`
	Note        string          `json:"note,omitempty"`
}

// MovementResponse entrada del libro de inventario.
type MovementResponse struct {
	ID          string          `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	DocType     string          `json:"doc_type"`
	DocID       string          `json:"doc_id,omitempty"`
	ItemID      string          `json:"item_id"`
	WarehouseID string          `json:"warehouse_id"`
	Delta       decimal.Decimal `json:"delta"`
	Note        string          `json:"note,omitempty"`
}

func NewMovementResponse(m *entity.StockMovement) *MovementResponse {
	return &MovementResponse{
		ID:          m.ID,
		CreatedAt:   m.CreatedAt,
		DocType:     m.DocType,
		DocID:       m.DocID,
		ItemID:      m.ItemID,
		WarehouseID: m.WarehouseID,
		Delta:       m.Delta,
		Note:        m.Note,
	}
}
