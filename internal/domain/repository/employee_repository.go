package repository

import "github.com/tu-usuario/resto-crm/internal/domain/entity"

// EmployeeRepository puerto para empleados y sus turnos.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	Update(employee *entity.Employee) error
	List() ([]*entity.Employee, error)
	ListByPosition(position string) ([]*entity.Employee, error)
	Delete(id string) error

	CreateShift(shift *entity.Shift) error
	ListShifts(employeeID string) ([]*entity.Shift, error)
	DeleteShift(shiftID string) error
}
