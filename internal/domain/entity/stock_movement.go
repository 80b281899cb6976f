package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de documento que originan movimientos de inventario.
const (
	DocTypePurchase  = "purchase"  // recepción de compra
	DocTypeTransfer  = "transfer"  // traslado entre bodegas
	DocTypeWriteOff  = "writeoff"  // baja
	DocTypeInventory = "inventory" // corrección por inventarización
	DocTypeManual    = "manual"    // movimiento manual
)

// StockMovement es una entrada inmutable del libro de inventario. Solo la crea
// el poster de movimientos; nunca se modifica ni se borra.
type StockMovement struct {
	ID          string
	Seq         int64 // posición en el libro, asignada por la base al insertar
	CreatedAt   time.Time
	DocType     string // purchase, transfer, writeoff, inventory, manual
	DocID       string // documento origen; vacío para movimientos manuales
	ItemID      string
	WarehouseID string
	Delta       decimal.Decimal // con signo; nunca cero
	Note        string
}
