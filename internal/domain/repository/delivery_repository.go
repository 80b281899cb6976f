package repository

import "github.com/tu-usuario/resto-crm/internal/domain/entity"

// DeliveryOrderRepository puerto para pedidos de entrega.
// GetByID carga el pedido con sus líneas.
type DeliveryOrderRepository interface {
	Create(order *entity.DeliveryOrder) error
	GetByID(id string) (*entity.DeliveryOrder, error)
	UpdateHeader(order *entity.DeliveryOrder) error
	ListByStatus(status string) ([]*entity.DeliveryOrder, error)
	ListByUser(userID string) ([]*entity.DeliveryOrder, error)
	AddItem(item *entity.DeliveryOrderItem) error
}
