package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-crm/internal/domain"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

// MovementUseCase expone el libro de inventario: movimientos manuales
// transaccionales y lecturas de saldos y movimientos.
type MovementUseCase struct {
	txRunner   TxRunner
	items      repository.StockItemRepository
	warehouses repository.WarehouseRepository
	balances   repository.StockBalanceRepository
	movements  repository.StockMovementRepository
}

// NewMovementUseCase construye el caso de uso. Los repos balances/movements
// van atados al pool (solo lecturas); las escrituras pasan por txRunner.
func NewMovementUseCase(
	txRunner TxRunner,
	items repository.StockItemRepository,
	warehouses repository.WarehouseRepository,
	balances repository.StockBalanceRepository,
	movements repository.StockMovementRepository,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:   txRunner,
		items:      items,
		warehouses: warehouses,
		balances:   balances,
		movements:  movements,
	}
}

// RegisterManual aplica un movimiento manual (ajuste con nota) validando que
// insumo y bodega existan. Saldo y movimiento quedan en una sola transacción.
func (uc *MovementUseCase) RegisterManual(ctx context.Context, warehouseID, itemID string, delta decimal.Decimal, note string) error {
	if delta.Round(quantityScale).IsZero() {
		return domain.ErrInvalidQuantity
	}
	item, err := uc.items.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	wh, err := uc.warehouses.GetByID(warehouseID)
	if err != nil {
		return err
	}
	if wh == nil {
		return domain.ErrNotFound
	}
	if note == "" {
		note = "Movimiento manual"
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(repos TxRepos) error {
		return applyMovement(repos.Balances, repos.Movements, warehouseID, itemID, delta, entity.DocTypeManual, "", note, now)
	})
}

// Balance devuelve la cantidad actual de un insumo en una bodega (cero si no hay fila).
func (uc *MovementUseCase) Balance(itemID, warehouseID string) (decimal.Decimal, error) {
	balance, err := uc.balances.Get(itemID, warehouseID)
	if err != nil {
		return decimal.Zero, err
	}
	return balance.Quantity, nil
}

// Balances lista los saldos de una bodega.
func (uc *MovementUseCase) Balances(warehouseID string) ([]*entity.StockBalance, error) {
	return uc.balances.ListByWarehouse(warehouseID)
}

// Movements lista movimientos del más reciente al más antiguo según el filtro.
func (uc *MovementUseCase) Movements(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return uc.movements.List(filter)
}
