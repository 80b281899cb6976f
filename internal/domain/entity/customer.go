package entity

// Customer cliente del programa de fidelización, identificado por teléfono.
type Customer struct {
	ID     string
	Phone  string
	Name   string
	Points int
}

// JobApplication solicitud de empleo enviada desde el sitio público.
type JobApplication struct {
	ID              string
	Name            string
	DesiredPosition string
	City            string
	Phone           string
	Email           string
	Comment         string
}
