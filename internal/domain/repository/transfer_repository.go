package repository

import "github.com/tu-usuario/resto-crm/internal/domain/entity"

// TransferRepository puerto para documentos de traslado entre bodegas.
type TransferRepository interface {
	Create(doc *entity.Transfer) error
	GetByID(id string) (*entity.Transfer, error)
	UpdateHeader(doc *entity.Transfer) error
	// MarkPosted sella el documento solo si sigue en draft.
	MarkPosted(id string) (bool, error)
	AddLine(line *entity.TransferLine) error
	DeleteLine(lineID string) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Transfer, error)
}
