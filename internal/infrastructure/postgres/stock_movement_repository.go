package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/resto-crm/internal/domain/entity"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación de StockMovementRepository sobre PostgreSQL.
// El libro es solo-inserción: no hay UPDATE ni DELETE sobre movimientos.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Acepta pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create inserta la entrada y deja que la base asigne seq, la posición
// monotónica en el libro. created_at solo informa; el orden lo define seq.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, created_at, doc_type, doc_id, item_id, warehouse_id, delta, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING seq`
	err := r.q.QueryRow(context.Background(), query,
		m.ID, m.CreatedAt, m.DocType, m.DocID, m.ItemID, m.WarehouseID, m.Delta, m.Note,
	).Scan(&m.Seq)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

func (r *StockMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, seq, created_at, doc_type, doc_id, item_id, warehouse_id, delta, note
		FROM stock_movements
		WHERE ($1 = '' OR item_id = $1)
		  AND ($2 = '' OR warehouse_id = $2)
		  AND ($3 = '' OR doc_type = $3)
		ORDER BY seq DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query,
		filter.ItemID, filter.WarehouseID, filter.DocType, filter.Limit, filter.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.Seq, &m.CreatedAt, &m.DocType, &m.DocID, &m.ItemID, &m.WarehouseID, &m.Delta, &m.Note); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
