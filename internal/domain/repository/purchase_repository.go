package repository

import "github.com/tu-usuario/resto-crm/internal/domain/entity"

// PurchaseRepository puerto para documentos de recepción de compra.
// GetByID carga el documento con sus líneas.
type PurchaseRepository interface {
	Create(doc *entity.Purchase) error
	GetByID(id string) (*entity.Purchase, error)
	UpdateHeader(doc *entity.Purchase) error
	// MarkPosted sella el documento solo si sigue en draft; devuelve false si
	// otra transacción lo proveyó antes.
	MarkPosted(id string) (bool, error)
	AddLine(line *entity.PurchaseLine) error
	DeleteLine(lineID string) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Purchase, error)
}
