package usecase

import (
	"github.com/google/uuid"
	"github.com/tu-usuario/resto-crm/internal/application/dto"
	"github.com/tu-usuario/resto-crm/internal/domain"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
	"github.com/tu-usuario/resto-crm/pkg/txt"
)

// CatalogUseCase casos de uso del menú: categorías y productos vendibles.
type CatalogUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(categories repository.CategoryRepository, products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{categories: categories, products: products}
}

// ── Categorías ────────────────────────────────────────────────────────────────

// CreateCategory crea una categoría; ParentID vacío la deja en la raíz.
func (uc *CatalogUseCase) CreateCategory(in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ParentID != "" {
		parent, err := uc.categories.GetByID(in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
	}
	category := &entity.Category{
		ID:       uuid.New().String(),
		Name:     in.Name,
		ParentID: in.ParentID,
	}
	if err := uc.categories.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// UpdateCategory renombra o mueve una categoría.
func (uc *CatalogUseCase) UpdateCategory(id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		category.Name = in.Name
	}
	if in.ParentID != "" {
		if in.ParentID == id {
			return nil, domain.ErrInvalidInput
		}
		parent, err := uc.categories.GetByID(in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
		category.ParentID = in.ParentID
	}
	if err := uc.categories.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// ListCategories lista todas las categorías.
func (uc *CatalogUseCase) ListCategories() ([]*dto.CategoryResponse, error) {
	categories, err := uc.categories.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, toCategoryResponse(category))
	}
	return out, nil
}

// DeleteCategory elimina una categoría.
func (uc *CatalogUseCase) DeleteCategory(id string) error {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.categories.Delete(id)
}

// ── Productos ─────────────────────────────────────────────────────────────────

// CreateProduct crea un producto del menú; nace activo salvo que se indique lo contrario.
func (uc *CatalogUseCase) CreateProduct(in dto.ProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price.Sign() < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.CategoryID != "" {
		category, err := uc.categories.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Price:        in.Price.Round(2),
		ImageURL:     in.ImageURL,
		Description:  in.Description,
		PortionGrams: in.PortionGrams,
		Protein100g:  in.Protein100g,
		Fat100g:      in.Fat100g,
		Carb100g:     in.Carb100g,
		Kcal100g:     in.Kcal100g,
		Active:       active,
		CategoryID:   in.CategoryID,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	return dto.NewProductResponse(product), nil
}

// GetProduct obtiene un producto por ID.
func (uc *CatalogUseCase) GetProduct(id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewProductResponse(product), nil
}

// UpdateProduct actualiza un producto del menú.
func (uc *CatalogUseCase) UpdateProduct(id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Price.Sign() > 0 {
		product.Price = in.Price.Round(2)
	}
	if in.ImageURL != "" {
		product.ImageURL = in.ImageURL
	}
	if in.CategoryID != "" {
		category, err := uc.categories.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = in.CategoryID
	}
	product.Description = in.Description
	product.PortionGrams = in.PortionGrams
	product.Protein100g = in.Protein100g
	product.Fat100g = in.Fat100g
	product.Carb100g = in.Carb100g
	product.Kcal100g = in.Kcal100g
	if in.Active != nil {
		product.Active = *in.Active
	}
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	return dto.NewProductResponse(product), nil
}

// SearchProducts lista productos filtrando por nombre sin distinguir
// mayúsculas ni acentos ("jalapeno" encuentra "Jalapeño"). Si onlyActive,
// omite los desactivados; el sitio público siempre pide onlyActive.
func (uc *CatalogUseCase) SearchProducts(query string, onlyActive bool) ([]*dto.ProductResponse, error) {
	products, err := uc.products.List(onlyActive)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, product := range products {
		if !txt.Matches(product.Name, query) {
			continue
		}
		out = append(out, dto.NewProductResponse(product))
	}
	return out, nil
}

// DeleteProduct elimina un producto del menú.
func (uc *CatalogUseCase) DeleteProduct(id string) error {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.products.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, ParentID: c.ParentID}
}
