package repository

import "github.com/tu-usuario/resto-crm/internal/domain/entity"

// CustomerRepository puerto para clientes de fidelización.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByPhone(phone string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	List(limit, offset int) ([]*entity.Customer, error)
}

// JobApplicationRepository puerto para solicitudes de empleo del sitio.
type JobApplicationRepository interface {
	Create(application *entity.JobApplication) error
	List(limit, offset int) ([]*entity.JobApplication, error)
}
