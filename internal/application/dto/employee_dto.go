package dto

import (
	"time"

	"github.com/tu-usuario/resto-crm/internal/domain/entity"
)

// EmployeeRequest body para crear o actualizar un empleado.
type EmployeeRequest struct {
	FullName  string     `json:"full_name"`
	Position  string     `json:"position,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Address   string     `json:"address,omitempty"`
}

// EmployeeResponse empleado del restaurante.
type EmployeeResponse struct {
	ID        string     `json:"id"`
	FullName  string     `json:"full_name"`
	Position  string     `json:"position,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Address   string     `json:"address,omitempty"`
	PhotoURL  string     `json:"photo_url,omitempty"`
}

func NewEmployeeResponse(e *entity.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:        e.ID,
		FullName:  e.FullName,
		Position:  e.Position,
		BirthDate: e.BirthDate,
		Phone:     e.Phone,
		Address:   e.Address,
		PhotoURL:  e.PhotoURL,
	}
}

// ShiftRequest body para asignar un turno.
type ShiftRequest struct {
	Day       time.Time `json:"day"`
	StartTime string    `json:"start_time"` // HH:MM
	EndTime   string    `json:"end_time"`   // HH:MM
}

// ShiftResponse turno asignado.
type ShiftResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Day        time.Time `json:"day"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
}

func NewShiftResponse(s *entity.Shift) *ShiftResponse {
	return &ShiftResponse{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,
		Day:        s.Day,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
	}
}
