package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-crm/internal/domain"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

// DocumentsUseCase maneja el ciclo de vida de los documentos de inventario:
// recepciones, traslados, bajas e inventarizaciones. Los borradores se editan
// libremente; la provisión (post) los sella y genera los movimientos.
type DocumentsUseCase struct {
	txRunner    TxRunner
	purchases   repository.PurchaseRepository
	transfers   repository.TransferRepository
	writeOffs   repository.WriteOffRepository
	inventories repository.InventoryDocRepository
	items       repository.StockItemRepository
	warehouses  repository.WarehouseRepository
	suppliers   repository.SupplierRepository
	balances    repository.StockBalanceRepository
}

func NewDocumentsUseCase(
	txRunner TxRunner,
	purchases repository.PurchaseRepository,
	transfers repository.TransferRepository,
	writeOffs repository.WriteOffRepository,
	inventories repository.InventoryDocRepository,
	items repository.StockItemRepository,
	warehouses repository.WarehouseRepository,
	suppliers repository.SupplierRepository,
	balances repository.StockBalanceRepository,
) *DocumentsUseCase {
	return &DocumentsUseCase{
		txRunner:    txRunner,
		purchases:   purchases,
		transfers:   transfers,
		writeOffs:   writeOffs,
		inventories: inventories,
		items:       items,
		warehouses:  warehouses,
		suppliers:   suppliers,
		balances:    balances,
	}
}

// requireWarehouse valida que la bodega exista.
func (uc *DocumentsUseCase) requireWarehouse(id string) error {
	wh, err := uc.warehouses.GetByID(id)
	if err != nil {
		return err
	}
	if wh == nil {
		return domain.ErrNotFound
	}
	return nil
}

// requireItem valida que el insumo exista.
func (uc *DocumentsUseCase) requireItem(id string) error {
	item, err := uc.items.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return nil
}

// positiveQty redondea a la escala del libro y exige cantidad > 0.
func positiveQty(qty decimal.Decimal) (decimal.Decimal, error) {
	qty = qty.Round(quantityScale)
	if qty.Sign() <= 0 {
		return decimal.Zero, domain.ErrInvalidQuantity
	}
	return qty, nil
}

// nonNegativeQty redondea y exige cantidad >= 0 (conteos físicos).
func nonNegativeQty(qty decimal.Decimal) (decimal.Decimal, error) {
	qty = qty.Round(quantityScale)
	if qty.Sign() < 0 {
		return decimal.Zero, domain.ErrInvalidQuantity
	}
	return qty, nil
}
