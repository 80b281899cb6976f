package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/resto-crm/internal/application/dto"
	"github.com/tu-usuario/resto-crm/internal/domain"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

// ReviewUseCase reseñas del sitio público.
type ReviewUseCase struct {
	repo repository.ReviewRepository
}

// NewReviewUseCase construye el caso de uso.
func NewReviewUseCase(repo repository.ReviewRepository) *ReviewUseCase {
	return &ReviewUseCase{repo: repo}
}

// Submit registra una reseña; userID vacío la deja anónima. Las cuatro
// puntuaciones van de 0 a 10.
func (uc *ReviewUseCase) Submit(userID string, in dto.ReviewRequest) (*dto.ReviewResponse, error) {
	for _, rating := range []int{in.ServiceRating, in.ProductRating, in.AmbienceRating, in.RecommendRating} {
		if rating < 0 || rating > 10 {
			return nil, domain.ErrInvalidInput
		}
	}
	review := &entity.Review{
		ID:              uuid.New().String(),
		UserID:          userID,
		AuthorName:      in.AuthorName,
		ServiceRating:   in.ServiceRating,
		ProductRating:   in.ProductRating,
		AmbienceRating:  in.AmbienceRating,
		RecommendRating: in.RecommendRating,
		Comment:         in.Comment,
		Location:        in.Location,
		CreatedAt:       time.Now(),
	}
	if err := uc.repo.Create(review); err != nil {
		return nil, err
	}
	return dto.NewReviewResponse(review), nil
}

// List lista reseñas paginadas, de la más reciente a la más antigua.
func (uc *ReviewUseCase) List(page dto.PageRequest) ([]*dto.ReviewResponse, error) {
	page.DefaultPage()
	reviews, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, dto.NewReviewResponse(review))
	}
	return out, nil
}
