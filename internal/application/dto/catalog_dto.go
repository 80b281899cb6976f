package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
)

// CategoryRequest body para crear o actualizar una categoría del menú.
type CategoryRequest struct {
	Name     string `json:"name"`
	ParentID string `json:"parent_id,omitempty"`
}

// CategoryResponse categoría del menú.
type CategoryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id,omitempty"`
}

// ProductRequest body para crear o actualizar un producto del menú.
type ProductRequest struct {
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"image_url,omitempty"`
	Description  string          `json:"description,omitempty"`
	PortionGrams int             `json:"portion_grams,omitempty"`
	Protein100g  decimal.Decimal `json:"protein_100g,omitempty"`
	Fat100g      decimal.Decimal `json:"fat_100g,omitempty"`
	Carb100g     decimal.Decimal `json:"carb_100g,omitempty"`
	Kcal100g     int             `json:"kcal_100g,omitempty"`
	Active       *bool           `json:"active,omitempty"`
	CategoryID   string          `json:"category_id,omitempty"`
}

// ProductResponse producto del menú.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"image_url,omitempty"`
	Description  string          `json:"description,omitempty"`
	PortionGrams int             `json:"portion_grams,omitempty"`
	Protein100g  decimal.Decimal `json:"protein_100g,omitempty"`
	Fat100g      decimal.Decimal `json:"fat_100g,omitempty"`
	Carb100g     decimal.Decimal `json:"carb_100g,omitempty"`
	Kcal100g     int             `json:"kcal_100g,omitempty"`
	Active       bool            `json:"active"`
	CategoryID   string          `json:"category_id,omitempty"`
}

func NewProductResponse(p *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		ImageURL:     p.ImageURL,
		Description:  p.Description,
		PortionGrams: p.PortionGrams,
		Protein100g:  p.Protein100g,
		Fat100g:      p.Fat100g,
		Carb100g:     p.Carb100g,
		Kcal100g:     p.Kcal100g,
		Active:       p.Active,
		CategoryID:   p.CategoryID,
	}
}
