package usecase

import (
	"github.com/google/uuid"
	"github.com/tu-usuario/resto-crm/internal/application/dto"
	"github.com/tu-usuario/resto-crm/internal/domain"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

// CustomerUseCase clientes de fidelización, identificados por teléfono.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create registra un cliente nuevo; el teléfono es único.
func (uc *CustomerUseCase) Create(in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByPhone(in.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	customer := &entity.Customer{
		ID:    uuid.New().String(),
		Phone: in.Phone,
		Name:  in.Name,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return dto.NewCustomerResponse(customer), nil
}

// GetByPhone busca un cliente por su teléfono.
func (uc *CustomerUseCase) GetByPhone(phone string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByPhone(phone)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewCustomerResponse(customer), nil
}

// Update actualiza los datos de contacto.
func (uc *CustomerUseCase) Update(id string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Phone != "" && in.Phone != customer.Phone {
		existing, err := uc.repo.GetByPhone(in.Phone)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		customer.Phone = in.Phone
	}
	if in.Name != "" {
		customer.Name = in.Name
	}
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return dto.NewCustomerResponse(customer), nil
}

// AdjustPoints suma o resta puntos manualmente; el saldo nunca baja de cero.
func (uc *CustomerUseCase) AdjustPoints(id string, delta int) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.Points+delta < 0 {
		return nil, domain.ErrInvalidInput
	}
	customer.Points += delta
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return dto.NewCustomerResponse(customer), nil
}

// List lista clientes paginados.
func (uc *CustomerUseCase) List(page dto.PageRequest) ([]*dto.CustomerResponse, error) {
	page.DefaultPage()
	customers, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		out = append(out, dto.NewCustomerResponse(customer))
	}
	return out, nil
}

// JobApplicationUseCase solicitudes de empleo del sitio público.
type JobApplicationUseCase struct {
	repo repository.JobApplicationRepository
}

// NewJobApplicationUseCase construye el caso de uso.
func NewJobApplicationUseCase(repo repository.JobApplicationRepository) *JobApplicationUseCase {
	return &JobApplicationUseCase{repo: repo}
}

// Submit registra una solicitud enviada desde el sitio.
func (uc *JobApplicationUseCase) Submit(in dto.JobApplicationRequest) (*dto.JobApplicationResponse, error) {
	if in.Name == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	application := &entity.JobApplication{
		ID:              uuid.New().String(),
		Name:            in.Name,
		DesiredPosition: in.DesiredPosition,
		City:            in.City,
		Phone:           in.Phone,
		Email:           in.Email,
		Comment:         in.Comment,
	}
	if err := uc.repo.Create(application); err != nil {
		return nil, err
	}
	return toJobApplicationResponse(application), nil
}

// List lista solicitudes para el back-office.
func (uc *JobApplicationUseCase) List(page dto.PageRequest) ([]*dto.JobApplicationResponse, error) {
	page.DefaultPage()
	applications, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.JobApplicationResponse, 0, len(applications))
	for _, application := range applications {
		out = append(out, toJobApplicationResponse(application))
	}
	return out, nil
}

func toJobApplicationResponse(a *entity.JobApplication) *dto.JobApplicationResponse {
	return &dto.JobApplicationResponse{
		ID:              a.ID,
		Name:            a.Name,
		DesiredPosition: a.DesiredPosition,
		City:            a.City,
		Phone:           a.Phone,
		Email:           a.Email,
		Comment:         a.Comment,
	}
}
