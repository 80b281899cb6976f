package entity

import "time"

// Warehouse representa una bodega o punto de almacenamiento.
type Warehouse struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Supplier representa un proveedor de insumos.
type Supplier struct {
	ID      string
	Name    string
	Contact string
}
