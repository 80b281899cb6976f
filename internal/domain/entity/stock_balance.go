package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBalance es el saldo actual de un insumo en una bodega (fila materializada).
// Invariante: a lo sumo una fila por (item, bodega); la cantidad es la suma de
// todos los deltas de movimientos de ese par. Puede quedar negativa: la política
// del negocio lo permite hasta que una inventarización lo corrija.
type StockBalance struct {
	ItemID      string
	WarehouseID string
	Quantity    decimal.Decimal
	UpdatedAt   time.Time
}
