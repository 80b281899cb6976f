package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
)

// DeliveryItemRequest línea del pedido de entrega al crearlo.
type DeliveryItemRequest struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

// CreateDeliveryRequest body para registrar un pedido de entrega por teléfono
// o desde el panel.
type CreateDeliveryRequest struct {
	Phone         string                 `json:"phone"`
	CustomerName  string                 `json:"customer_name,omitempty"`
	Street        string                 `json:"street,omitempty"`
	House         string                 `json:"house,omitempty"`
	Flat          string                 `json:"flat,omitempty"`
	Entrance      string                 `json:"entrance,omitempty"`
	Floor         string                 `json:"floor,omitempty"`
	Comment       string                 `json:"comment,omitempty"`
	PlannedAt     *time.Time             `json:"planned_at,omitempty"`
	ReceiveMethod string                 `json:"receive_method,omitempty"` // delivery, pickup, dinein
	PaymentType   string                 `json:"payment_type,omitempty"`   // cash, card, online
	Items         []*DeliveryItemRequest `json:"items"`
}

// UpdateDeliveryRequest body para editar los datos de contacto y entrega.
type UpdateDeliveryRequest struct {
	Phone         string     `json:"phone,omitempty"`
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

// DeliveryStatusRequest body para avanzar el estado del pedido.
type DeliveryStatusRequest struct {
	Status string `json:"status"` // new, in_progress, done, cancelled
}

// AssignCourierRequest body para asignar el repartidor.
type AssignCourierRequest struct {
	CourierID string `json:"courier_id"`
}

// DeliveryItemResponse línea del pedido de entrega.
type DeliveryItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Qty         int             `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Sum         decimal.Decimal `json:"sum"`
}

// DeliveryResponse pedido de entrega con sus líneas.
type DeliveryResponse struct {
	ID            string                  `json:"id"`
	Status        string                  `json:"status"`
	Source        string                  `json:"source"`
	Phone         string                  `json:"phone"`
	CustomerName  string                  `json:"customer_name,omitempty"`
	Street        string                  `json:"street,omitempty"`
	House         string                  `json:"house,omitempty"`
	Flat          string                  `json:"flat,omitempty"`
	Entrance      string                  `json:"entrance,omitempty"`
	Floor         string                  `json:"floor,omitempty"`
	Comment       string                  `json:"comment,omitempty"`
	PlannedAt     *time.Time              `json:"planned_at,omitempty"`
	ReceiveMethod string                  `json:"receive_method,omitempty"`
	PaymentType   string                  `json:"payment_type,omitempty"`
	Total         decimal.Decimal         `json:"total"`
	CreatedAt     time.Time               `json:"created_at"`
	CourierID     string                  `json:"courier_id,omitempty"`
	Items         []*DeliveryItemResponse `json:"items"`
}

func NewDeliveryResponse(order *entity.DeliveryOrder) *DeliveryResponse {
	resp := &DeliveryResponse{
		ID:            order.ID,
		Status:        order.Status,
		Source:        order.Source,
		Phone:         order.Phone,
		CustomerName:  order.CustomerName,
		Street:        order.Street,
		House:         order.House,
		Flat:          order.Flat,
		Entrance:      order.Entrance,
		Floor:         order.Floor,
		Comment:       order.Comment,
		PlannedAt:     order.PlannedAt,
		ReceiveMethod: order.ReceiveMethod,
		PaymentType:   order.PaymentType,
		Total:         order.Total,
		CreatedAt:     order.CreatedAt,
		CourierID:     order.CourierID,
		Items:         make([]*DeliveryItemResponse, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, &DeliveryItemResponse{
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
