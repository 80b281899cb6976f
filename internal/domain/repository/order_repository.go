package repository

import "github.com/tu-usuario/resto-crm/internal/domain/entity"

// TableRepository puerto para mesas del salón.
type TableRepository interface {
	Create(table *entity.Table) error
	GetByID(id string) (*entity.Table, error)
	GetByName(name string) (*entity.Table, error)
	List() ([]*entity.Table, error)
	Delete(id string) error
}

// OrderRepository puerto para pedidos de sala y sus cobros.
// GetByID carga el pedido con sus líneas.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	UpdateHeader(order *entity.Order) error
	ListByStatus(status string) ([]*entity.Order, error)
	HasOpenByTable(tableID string) (bool, error)

	AddItem(item *entity.OrderItem) error
	GetItem(itemID string) (*entity.OrderItem, error)
	UpdateItem(item *entity.OrderItem) error
	DeleteItem(itemID string) error

	CreatePayment(payment *entity.Payment) error
}
