package repository

import "github.com/tu-usuario/resto-crm/internal/domain/entity"

// CategoryRepository puerto para categorías del menú.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	List() ([]*entity.Category, error)
	Delete(id string) error
}
