package repository

import "github.com/tu-usuario/resto-crm/internal/domain/entity"

// MovementFilter filtros opcionales para listar movimientos.
type MovementFilter struct {
	ItemID      string
	WarehouseID string
	DocType     string
	Limit       int
	Offset      int
}

// StockMovementRepository puerto del libro de movimientos. Solo inserción y
// lectura: las filas son inmutables.
type StockMovementRepository interface {
	// Create inserta la entrada y rellena movement.Seq con su posición en el
	// libro.
	Create(movement *entity.StockMovement) error
	// List devuelve movimientos por secuencia descendente.
	List(filter MovementFilter) ([]*entity.StockMovement, error)
}
