package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only del tablero sobre PostgreSQL. Agrega
// directamente sobre orders y delivery_orders; no mantiene estado propio.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador. Acepta pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

func (r *AnalyticsRepo) CountOrders(from, to time.Time) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM orders WHERE created_at >= $1 AND created_at < $2`,
		from, to).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return count, nil
}

func (r *AnalyticsRepo) PaidRevenue(from, to time.Time) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(total), 0) FROM orders
		 WHERE created_at >= $1 AND created_at < $2 AND status = $3`,
		from, to, entity.OrderStatusPaid).Scan(&revenue)
	if err != nil {
		return decimal.Zero, fmt.Errorf("paid revenue: %w", err)
	}
	return revenue, nil
}

func (r *AnalyticsRepo) CountOrdersByStatus(status string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM orders WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count orders by status: %w", err)
	}
	return count, nil
}

func (r *AnalyticsRepo) CountActiveDeliveries() (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM delivery_orders WHERE status NOT IN ($1, $2)`,
		entity.DeliveryStatusDone, entity.DeliveryStatusCancelled).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active deliveries: %w", err)
	}
	return count, nil
}

func (r *AnalyticsRepo) LatestOrders(limit int) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, table_id, status, total, created_at, guest_count, waiter, comment
		 FROM orders ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("latest orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.TableID, &o.Status, &o.Total, &o.CreatedAt,
			&o.GuestCount, &o.Waiter, &o.Comment); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

func (r *AnalyticsRepo) LatestDeliveries(limit int) ([]*entity.DeliveryOrder, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+deliveryColumns+` FROM delivery_orders ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("latest deliveries: %w", err)
	}
	defer rows.Close()
	var list []*entity.DeliveryOrder
	for rows.Next() {
		order, err := scanDeliveryOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan delivery order: %w", err)
		}
		list = append(list, order)
	}
	return list, rows.Err()
}
