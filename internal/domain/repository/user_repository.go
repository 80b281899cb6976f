package repository

import "github.com/tu-usuario/resto-crm/internal/domain/entity"

// UserRepository puerto para cuentas del sistema.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
}
