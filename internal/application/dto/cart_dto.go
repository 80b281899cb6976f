package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItemRequest body para agregar o fijar un producto en el carrito.
type CartItemRequest struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

// CartItemResponse línea del carrito con el precio vigente del producto.
type CartItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Qty         int             `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Sum         decimal.Decimal `json:"sum"`
}

// CartResponse carrito del visitante con el total calculado.
type CartResponse struct {
	Items []*CartItemResponse `json:"items"`
	Total decimal.Decimal     `json:"total"`
}

// CheckoutRequest body para confirmar el pedido del sitio.
type CheckoutRequest struct {
	Phone         string     `json:"phone"`
	CustomerName  string     `json:"customer_name,omitempty"`
	Street        string     `json:"street,omitempty"`
	House         string     `json:"house,omitempty"`
	Flat          string     `json:"flat,omitempty"`
	Entrance      string     `json:"entrance,omitempty"`
	Floor         string     `json:"floor,omitempty"`
	Comment       string     `json:"comment,omitempty"`
	PlannedAt     *time.Time `json:"planned_at,omitempty"`
	ReceiveMethod string     `json:"receive_method,omitempty"`
	PaymentType   string     `json:"payment_type,omitempty"`
}

// CheckoutResponse confirmación del pedido creado desde el carrito.
type CheckoutResponse struct {
	OrderID string          `json:"order_id"`
	Total   decimal.Decimal `json:"total"`
}
