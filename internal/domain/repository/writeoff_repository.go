package repository

import "github.com/tu-usuario/resto-crm/internal/domain/entity"

// WriteOffRepository puerto para documentos de baja.
type WriteOffRepository interface {
	Create(doc *entity.WriteOff) error
	GetByID(id string) (*entity.WriteOff, error)
	UpdateHeader(doc *entity.WriteOff) error
	// MarkPosted sella el documento solo si sigue en draft.
	MarkPosted(id string) (bool, error)
	AddLine(line *entity.WriteOffLine) error
	DeleteLine(lineID string) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.WriteOff, error)
}
