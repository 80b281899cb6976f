package repository

import "github.com/tu-usuario/resto-crm/internal/domain/entity"

// ProductRepository puerto para productos del menú.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByIDs(ids []string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// List devuelve productos; si onlyActive, filtra los inactivos.
	List(onlyActive bool) ([]*entity.Product, error)
	Delete(id string) error
}
