package dto

import (
	"time"

	"github.com/tu-usuario/resto-crm/internal/domain/entity"
)

// CustomerRequest body para crear o actualizar un cliente de fidelización.
type CustomerRequest struct {
	Phone string `json:"phone"`
	Name  string `json:"name,omitempty"`
}

// CustomerResponse cliente de fidelización.
type CustomerResponse struct {
	ID     string `json:"id"`
	Phone  string `json:"phone"`
	Name   string `json:"name,omitempty"`
	Points int    `json:"points"`
}

func NewCustomerResponse(c *entity.Customer) *CustomerResponse {
	return &CustomerResponse{ID: c.ID, Phone: c.Phone, Name: c.Name, Points: c.Points}
}

// PointsRequest body para ajustar puntos manualmente.
type PointsRequest struct {
	Delta int `json:"delta"`
}

// JobApplicationRequest solicitud de empleo enviada desde el sitio.
type JobApplicationRequest struct {
	Name            string `json:"name"`
	DesiredPosition string `json:"desired_position,omitempty"`
	City            string `json:"city,omitempty"`
	Phone           string `json:"phone"`
	Email           string `json:"email,omitempty"`
	Comment         string `json:"comment,omitempty"`
}

// JobApplicationResponse solicitud de empleo registrada.
type JobApplicationResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DesiredPosition string `json:"desired_position,omitempty"`
	City            string `json:"city,omitempty"`
	Phone           string `json:"phone"`
	Email           string `json:"email,omitempty"`
	Comment         string `json:"comment,omitempty"`
}

// ReviewRequest reseña enviada desde el sitio; puntuaciones de 0 a 10.
type ReviewRequest struct {
	AuthorName      string `json:"author_name,omitempty"`
	ServiceRating   int    `json:"service_rating"`
	ProductRating   int    `json:"product_rating"`
	AmbienceRating  int    `json:"ambience_rating"`
	RecommendRating int    `json:"recommend_rating"`
	Comment         string `json:"comment,omitempty"`
	Location        string `json:"location,omitempty"`
}

// ReviewResponse reseña con su promedio calculado.
type ReviewResponse struct {
	ID              string    `json:"id"`
	AuthorName      string    `json:"author_name,omitempty"`
	ServiceRating   int       `json:"service_rating"`
	ProductRating   int       `json:"product_rating"`
	AmbienceRating  int       `json:"ambience_rating"`
	RecommendRating int       `json:"recommend_rating"`
	AverageScore    float64   `json:"average_score"`
	Comment         string    `json:"comment,omitempty"`
	Location        string    `json:"location,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewReviewResponse(r *entity.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:              r.ID,
		AuthorName:      r.AuthorName,
		ServiceRating:   r.ServiceRating,
		ProductRating:   r.ProductRating,
		AmbienceRating:  r.AmbienceRating,
		RecommendRating: r.RecommendRating,
		AverageScore:    r.AverageScore(),
		Comment:         r.Comment,
		Location:        r.Location,
		CreatedAt:       r.CreatedAt,
	}
}
