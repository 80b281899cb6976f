package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/resto-crm/internal/application/dto"
	"github.com/tu-usuario/resto-crm/internal/domain"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

// EmployeeUseCase empleados del restaurante y sus turnos.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create registra un empleado.
func (uc *EmployeeUseCase) Create(in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.FullName == "" {
		return nil, domain.ErrInvalidInput
	}
	employee := &entity.Employee{
		ID:        uuid.New().String(),
		FullName:  in.FullName,
		Position:  in.Position,
		BirthDate: in.BirthDate,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	return dto.NewEmployeeResponse(employee), nil
}

// GetByID obtiene un empleado.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewEmployeeResponse(employee), nil
}

// Update actualiza los datos del empleado.
func (uc *EmployeeUseCase) Update(id string, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if in.FullName != "" {
		employee.FullName = in.FullName
	}
	if in.Position != "" {
		employee.Position = in.Position
	}
	if in.BirthDate != nil {
		employee.BirthDate = in.BirthDate
	}
	if in.Phone != "" {
		employee.Phone = in.Phone
	}
	if in.Address != "" {
		employee.Address = in.Address
	}
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return dto.NewEmployeeResponse(employee), nil
}

// SetPhoto guarda la URL de la foto subida al almacenamiento local.
func (uc *EmployeeUseCase) SetPhoto(id, photoURL string) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	employee.PhotoURL = photoURL
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return dto.NewEmployeeResponse(employee), nil
}

// List lista empleados; position vacío lista todos.
func (uc *EmployeeUseCase) List(position string) ([]*dto.EmployeeResponse, error) {
	var employees []*entity.Employee
	var err error
	if position == "" {
		employees, err = uc.repo.List()
	} else {
		employees, err = uc.repo.ListByPosition(position)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(employees))
	for _, employee := range employees {
		out = append(out, dto.NewEmployeeResponse(employee))
	}
	return out, nil
}

// Delete elimina un empleado.
func (uc *EmployeeUseCase) Delete(id string) error {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ── Turnos ────────────────────────────────────────────────────────────────────

// AssignShift asigna un turno a un empleado en un día.
func (uc *EmployeeUseCase) AssignShift(employeeID string, in dto.ShiftRequest) (*dto.ShiftResponse, error) {
	employee, err := uc.repo.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if in.Day.IsZero() || in.StartTime == "" || in.EndTime == "" {
		return nil, domain.ErrInvalidInput
	}
	shift := &entity.Shift{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		Day:        in.Day,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
	}
	if err := uc.repo.CreateShift(shift); err != nil {
		return nil, err
	}
	return dto.NewShiftResponse(shift), nil
}

// ListShifts lista los turnos de un empleado.
func (uc *EmployeeUseCase) ListShifts(employeeID string) ([]*dto.ShiftResponse, error) {
	employee, err := uc.repo.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	shifts, err := uc.repo.ListShifts(employeeID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ShiftResponse, 0, len(shifts))
	for _, shift := range shifts {
		out = append(out, dto.NewShiftResponse(shift))
	}
	return out, nil
}

// RemoveShift elimina un turno asignado.
func (uc *EmployeeUseCase) RemoveShift(shiftID string) error {
	return uc.repo.DeleteShift(shiftID)
}
