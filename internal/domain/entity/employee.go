package entity

import "time"

// Employee empleado del restaurante.
type Employee struct {
	ID        string
	FullName  string
	Position  string // Mesero, Barman, Repartidor, Bodeguero...
	BirthDate *time.Time
	Phone     string
	Address   string
	PhotoURL  string
	CreatedAt time.Time
}

// Shift turno asignado a un empleado en un día concreto.
type Shift struct {
	ID         string
	EmployeeID string
	Day        time.Time // solo fecha
	StartTime  string    // HH:MM
	EndTime    string    // HH:MM
}
