package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

var _ repository.StockBalanceRepository = (*StockBalanceRepo)(nil)

// StockBalanceRepo implementación de StockBalanceRepository sobre PostgreSQL.
type StockBalanceRepo struct {
	q Querier
}

// NewStockBalanceRepository construye el adaptador. Acepta pool o tx (Querier).
func NewStockBalanceRepository(q Querier) *StockBalanceRepo {
	return &StockBalanceRepo{q: q}
}

func (r *StockBalanceRepo) Get(itemID, warehouseID string) (*entity.StockBalance, error) {
	return r.get(itemID, warehouseID, false)
}

// GetForUpdate bloquea la fila del saldo con SELECT FOR UPDATE para serializar
// provisiones concurrentes. Si la fila no existe aún, devuelve saldo cero sin
// bloqueo; el Upsert posterior la crea dentro de la misma transacción.
func (r *StockBalanceRepo) GetForUpdate(itemID, warehouseID string) (*entity.StockBalance, error) {
	return r.get(itemID, warehouseID, true)
}

func (r *StockBalanceRepo) get(itemID, warehouseID string, forUpdate bool) (*entity.StockBalance, error) {
	query := `
		SELECT item_id, warehouse_id, quantity, updated_at
		FROM stock_balances
		WHERE item_id = $1 AND warehouse_id = $2`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var b entity.StockBalance
	err := r.q.QueryRow(context.Background(), query, itemID, warehouseID).Scan(
		&b.ItemID, &b.WarehouseID, &b.Quantity, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockBalance{
				ItemID:      itemID,
				WarehouseID: warehouseID,
				Quantity:    decimal.Zero,
			}, nil
		}
		return nil, fmt.Errorf("get stock balance: %w", err)
	}
	return &b, nil
}

func (r *StockBalanceRepo) Upsert(balance *entity.StockBalance) error {
	query := `
		INSERT INTO stock_balances (item_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (item_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, balance.ItemID, balance.WarehouseID, balance.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock balance: %w", err)
	}
	return nil
}

func (r *StockBalanceRepo) ListByWarehouse(warehouseID string) ([]*entity.StockBalance, error) {
	query := `
		SELECT item_id, warehouse_id, quantity, updated_at
		FROM stock_balances
		WHERE warehouse_id = $1
		ORDER BY item_id`
	rows, err := r.q.Query(context.Background(), query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list stock balances: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockBalance
	for rows.Next() {
		var b entity.StockBalance
		if err := rows.Scan(&b.ItemID, &b.WarehouseID, &b.Quantity, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock balance: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
