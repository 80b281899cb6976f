package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/resto-crm/internal/application/dto"
	"github.com/tu-usuario/resto-crm/internal/domain"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

var validItemTypes = map[string]bool{
	entity.ItemTypeRaw:     true,
	entity.ItemTypeProduct: true,
	entity.ItemTypeSemi:    true,
	entity.ItemTypeService: true,
}

// StockItemUseCase casos de uso CRUD para insumos de bodega.
type StockItemUseCase struct {
	repo repository.StockItemRepository
}

// NewStockItemUseCase construye el caso de uso.
func NewStockItemUseCase(repo repository.StockItemRepository) *StockItemUseCase {
	return &StockItemUseCase{repo: repo}
}

// Create crea un insumo nuevo.
func (uc *StockItemUseCase) Create(in dto.StockItemRequest) (*dto.StockItemResponse, error) {
	if in.Name == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ItemType == "" {
		in.ItemType = entity.ItemTypeRaw
	}
	if !validItemTypes[in.ItemType] {
		return nil, domain.ErrInvalidInput
	}
	item := &entity.StockItem{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Unit:              in.Unit,
		Category:          in.Category,
		ItemType:          in.ItemType,
		SKU:               in.SKU,
		Barcode:           in.Barcode,
		PurchasePricePlan: in.PurchasePricePlan,
		SalePrice:         in.SalePrice,
		IsAlcohol:         in.IsAlcohol,
		CreatedAt:         time.Now(),
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return dto.NewStockItemResponse(item), nil
}

// GetByID obtiene un insumo por ID.
func (uc *StockItemUseCase) GetByID(id string) (*dto.StockItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewStockItemResponse(item), nil
}

// Update actualiza los datos de un insumo.
func (uc *StockItemUseCase) Update(id string, in dto.StockItemRequest) (*dto.StockItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		item.Name = in.Name
	}
	if in.Unit != "" {
		item.Unit = in.Unit
	}
	if in.ItemType != "" {
		if !validItemTypes[in.ItemType] {
			return nil, domain.ErrInvalidInput
		}
		item.ItemType = in.ItemType
	}
	item.Category = in.Category
	item.SKU = in.SKU
	item.Barcode = in.Barcode
	item.PurchasePricePlan = in.PurchasePricePlan
	item.SalePrice = in.SalePrice
	item.IsAlcohol = in.IsAlcohol
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return dto.NewStockItemResponse(item), nil
}

// List lista insumos paginados.
func (uc *StockItemUseCase) List(page dto.PageRequest) ([]*dto.StockItemResponse, error) {
	page.DefaultPage()
	items, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StockItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.NewStockItemResponse(item))
	}
	return out, nil
}

// Delete elimina un insumo.
func (uc *StockItemUseCase) Delete(id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
