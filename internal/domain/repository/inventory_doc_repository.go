package repository

import "github.com/tu-usuario/resto-crm/internal/domain/entity"

// InventoryDocRepository puerto para documentos de inventarización.
type InventoryDocRepository interface {
	Create(doc *entity.InventoryDoc) error
	GetByID(id string) (*entity.InventoryDoc, error)
	// MarkPosted sella el documento solo si sigue en draft.
	MarkPosted(id string) (bool, error)
	AddLine(line *entity.InventoryLine) error
	UpdateLine(line *entity.InventoryLine) error
	DeleteLine(lineID string) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.InventoryDoc, error)
}
