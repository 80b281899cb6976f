package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/resto-crm/internal/domain/entity"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implementación de ReviewRepository sobre PostgreSQL.
type ReviewRepo struct {
	q Querier
}

// NewReviewRepository construye el adaptador. Acepta pool o tx (Querier).
func NewReviewRepository(q Querier) *ReviewRepo {
	return &ReviewRepo{q: q}
}

func (r *ReviewRepo) Create(review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, author_name, service_rating, product_rating,
			ambience_rating, recommend_rating, comment, location, created_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		review.ID, review.UserID, review.AuthorName, review.ServiceRating,
		review.ProductRating, review.AmbienceRating, review.RecommendRating,
		review.Comment, review.Location, review.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (r *ReviewRepo) List(limit, offset int) ([]*entity.Review, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, COALESCE(user_id, ''), author_name, service_rating, product_rating,
			ambience_rating, recommend_rating, comment, location, created_at
		FROM reviews ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()
	var list []*entity.Review
	for rows.Next() {
		var rv entity.Review
		err := rows.Scan(
			&rv.ID, &rv.UserID, &rv.AuthorName, &rv.ServiceRating, &rv.ProductRating,
			&rv.AmbienceRating, &rv.RecommendRating, &rv.Comment, &rv.Location, &rv.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		list = append(list, &rv)
	}
	return list, rows.Err()
}
