package entity

import "time"

// Review reseña del sitio público con cuatro puntuaciones de 0 a 10.
type Review struct {
	ID              string
	UserID          string // vacío si fue anónima
	AuthorName      string
	ServiceRating   int
	ProductRating   int
	AmbienceRating  int
	RecommendRating int
	Comment         string
	Location        string
	CreatedAt       time.Time
}

// AverageScore promedio simple de las cuatro puntuaciones, redondeado a un decimal.
func (r *Review) AverageScore() float64 {
	sum := r.ServiceRating + r.ProductRating + r.AmbienceRating + r.RecommendRating
	avg := float64(sum) / 4
	return float64(int(avg*10+0.5)) / 10
}
