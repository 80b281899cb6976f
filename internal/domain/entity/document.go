package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un documento de inventario.
// draft -> posted; posted es terminal.
const (
	DocStatusDraft  = "draft"
	DocStatusPosted = "posted"
)

// Purchase es una recepción de compra: entrada de insumos a una bodega.
type Purchase struct {
	ID          string
	SupplierID  string // opcional
	WarehouseID string
	Date        time.Time
	Status      string // draft, posted
	Lines       []*PurchaseLine
}

// PurchaseLine línea de recepción: insumo, cantidad y precio de compra.
type PurchaseLine struct {
	ID         string
	PurchaseID string
	ItemID     string
	Qty        decimal.Decimal
	Price      decimal.Decimal
}

// Transfer es un traslado de insumos entre dos bodegas.
type Transfer struct {
	ID              string
	FromWarehouseID string
	ToWarehouseID   string
	Date            time.Time
	Status          string
	Lines           []*TransferLine
}

// TransferLine línea de traslado.
type TransferLine struct {
	ID         string
	TransferID string
	ItemID     string
	Qty        decimal.Decimal
}

// WriteOff es una baja de insumos (merma, vencimiento, rotura).
type WriteOff struct {
	ID          string
	WarehouseID string
	Date        time.Time
	Reason      string
	Status      string
	Lines       []*WriteOffLine
}

// WriteOffLine línea de baja.
type WriteOffLine struct {
	ID         string
	WriteOffID string
	ItemID     string
	Qty        decimal.Decimal
}

// InventoryDoc es una inventarización: conteo físico que corrige los saldos.
type InventoryDoc struct {
	ID          string
	WarehouseID string
	Date        time.Time
	Status      string
	Lines       []*InventoryLine
}

// InventoryLine línea de conteo: cantidad física encontrada del insumo.
type InventoryLine struct {
	ID         string
	DocID      string
	ItemID     string
	CountedQty decimal.Decimal
}

// Posted indica si el documento quedó sellado.
func (p *Purchase) Posted() bool     { return p.Status == DocStatusPosted }
func (t *Transfer) Posted() bool     { return t.Status == DocStatusPosted }
func (w *WriteOff) Posted() bool     { return w.Status == DocStatusPosted }
func (d *InventoryDoc) Posted() bool { return d.Status == DocStatusPosted }
