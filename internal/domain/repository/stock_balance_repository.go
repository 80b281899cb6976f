package repository

import "github.com/tu-usuario/resto-crm/internal/domain/entity"

// StockBalanceRepository puerto para el saldo por (insumo, bodega).
// Get y GetForUpdate nunca fallan por fila ausente: devuelven saldo cero.
// Usado dentro de transacciones para garantizar consistencia con los movimientos.
type StockBalanceRepository interface {
	Get(itemID, warehouseID string) (*entity.StockBalance, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) para serializar
	// provisiones concurrentes sobre el mismo saldo.
	GetForUpdate(itemID, warehouseID string) (*entity.StockBalance, error)
	Upsert(balance *entity.StockBalance) error
	ListByWarehouse(warehouseID string) ([]*entity.StockBalance, error)
}
