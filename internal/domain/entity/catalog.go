package entity

import (
	"github.com/shopspring/decimal"
)

// Category categoría del menú; ParentID permite un árbol simple.
type Category struct {
	ID       string
	Name     string
	ParentID string // vacío = raíz
}

// Product es un plato o artículo vendible del menú (distinto de StockItem,
// que es el insumo controlado por bodega).
type Product struct {
	ID           string
	Name         string
	Price        decimal.Decimal
	ImageURL     string
	Description  string
	PortionGrams int
	Protein100g  decimal.Decimal
	Fat100g      decimal.Decimal
	Carb100g     decimal.Decimal
	Kcal100g     int
	Active       bool
	CategoryID   string
}
