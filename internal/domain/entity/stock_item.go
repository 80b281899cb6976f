package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de insumo (value object conceptual).
const (
	ItemTypeRaw     = "raw"     // materia prima
	ItemTypeProduct = "product" // producto terminado
	ItemTypeSemi    = "semi"    // semielaborado
	ItemTypeService = "service" // servicio, no almacenable
)

// StockItem representa un insumo o mercancía controlada por el almacén.
// Las cantidades se manejan siempre con 3 decimales (NUMERIC(12,3)).
type StockItem struct {
	ID                string
	Name              string
	Unit              string // pcs, kg, l...
	Category          string
	ItemType          string // raw, product, semi, service
	SKU               string
	Barcode           string
	PurchasePricePlan decimal.Decimal // precio de compra planificado
	SalePrice         decimal.Decimal
	IsAlcohol         bool
	CreatedAt         time.Time
}
