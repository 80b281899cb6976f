package repository

import "github.com/tu-usuario/resto-crm/internal/domain/entity"

// ReviewRepository puerto para reseñas del sitio.
type ReviewRepository interface {
	Create(review *entity.Review) error
	List(limit, offset int) ([]*entity.Review, error)
}
