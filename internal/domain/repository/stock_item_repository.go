package repository

import "github.com/tu-usuario/resto-crm/internal/domain/entity"

// StockItemRepository puerto de persistencia para insumos.
type StockItemRepository interface {
	Create(item *entity.StockItem) error
	GetByID(id string) (*entity.StockItem, error)
	Update(item *entity.StockItem) error
	List(limit, offset int) ([]*entity.StockItem, error)
	Delete(id string) error
}
