package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
)

// TableRequest body para crear una mesa.
type TableRequest struct {
	Name string `json:"name"`
}

// TableResponse mesa del salón.
type TableResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OpenOrderRequest body para abrir un pedido en una mesa.
type OpenOrderRequest struct {
	TableID    string `json:"table_id"`
	GuestCount int    `json:"guest_count,omitempty"`
	Waiter     string `json:"waiter,omitempty"`
	Comment    string `json:"comment,omitempty"`
}

// OrderItemRequest body para agregar un producto al pedido.
type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

// OrderItemQtyRequest body para cambiar la cantidad de una línea.
type OrderItemQtyRequest struct {
	Qty int `json:"qty"`
}

// PayOrderRequest body para cobrar un pedido.
type PayOrderRequest struct {
	Method string `json:"method"` // cash, card, online
}

// OrderItemResponse línea de pedido.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Qty         int             `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Sum         decimal.Decimal `json:"sum"`
}

// OrderResponse pedido de sala con sus líneas.
type OrderResponse struct {
	ID         string               `json:"id"`
	TableID    string               `json:"table_id"`
	Status     string               `json:"status"`
	Total      decimal.Decimal      `json:"total"`
	CreatedAt  time.Time            `json:"created_at"`
	GuestCount int                  `json:"guest_count,omitempty"`
	Waiter     string               `json:"waiter,omitempty"`
	Comment    string               `json:"comment,omitempty"`
	Items      []*OrderItemResponse `json:"items"`
}

func NewOrderResponse(order *entity.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:         order.ID,
		TableID:    order.TableID,
		Status:     order.Status,
		Total:      order.Total,
		CreatedAt:  order.CreatedAt,
		GuestCount: order.GuestCount,
		Waiter:     order.Waiter,
		Comment:    order.Comment,
		Items:      make([]*OrderItemResponse, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, &OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Qty:         item.Qty,
			UnitPrice:   item.UnitPrice,
			Sum:         item.Sum,
		})
	}
	return resp
}
