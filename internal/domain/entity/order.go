package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido de sala (POS).
const (
	OrderStatusOpen      = "open"
	OrderStatusPaid      = "paid"
	OrderStatusCancelled = "cancelled"
)

// Métodos de pago.
const (
	PaymentCash   = "cash"
	PaymentCard   = "card"
	PaymentOnline = "online"
)

// Table es una mesa del salón.
type Table struct {
	ID   string
	Name string
}

// Order es un pedido de sala abierto en una mesa.
type Order struct {
	ID         string
	TableID    string
	Status     string // open, paid, cancelled
	Total      decimal.Decimal
	CreatedAt  time.Time
	GuestCount int
	Waiter     string
	Comment    string
	Items      []*OrderItem
}

// OrderItem línea del pedido; ProductName es snapshot del nombre al momento de la venta.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string
	Qty         int
	UnitPrice   decimal.Decimal
	Sum         decimal.Decimal
}

// Payment registra el cobro de un pedido.
type Payment struct {
	ID        string
	OrderID   string
	Amount    decimal.Decimal
	Method    string // cash, card, online
	CreatedAt time.Time
}
