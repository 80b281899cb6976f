package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

var _ repository.TableRepository = (*TableRepo)(nil)
var _ repository.OrderRepository = (*OrderRepo)(nil)

// TableRepo implementación de TableRepository sobre PostgreSQL.
type TableRepo struct {
	q Querier
}

// NewTableRepository construye el adaptador. Acepta pool o tx (Querier).
func NewTableRepository(q Querier) *TableRepo {
	return &TableRepo{q: q}
}

func (r *TableRepo) Create(table *entity.Table) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO tables (id, name) VALUES ($1, $2)`, table.ID, table.Name)
	if err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	return nil
}

func (r *TableRepo) GetByID(id string) (*entity.Table, error) {
	var t entity.Table
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name FROM tables WHERE id = $1`, id).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get table: %w", err)
	}
	return &t, nil
}

func (r *TableRepo) GetByName(name string) (*entity.Table, error) {
	var t entity.Table
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name FROM tables WHERE name = $1`, name).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get table by name: %w", err)
	}
	return &t, nil
}

func (r *TableRepo) List() ([]*entity.Table, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM tables ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()
	var list []*entity.Table
	for rows.Next() {
		var t entity.Table
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

func (r *TableRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tables WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete table: %w", err)
	}
	return nil
}

// OrderRepo implementación de OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Acepta pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, table_id, status, total, created_at, guest_count, waiter, comment)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.TableID, order.Status, order.Total, order.CreatedAt,
		order.GuestCount, order.Waiter, order.Comment,
	)
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, table_id, status, total, created_at, guest_count, waiter, comment
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.TableID, &o.Status, &o.Total, &o.CreatedAt, &o.GuestCount, &o.Waiter, &o.Comment,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	items, err := r.listItems(id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *OrderRepo) UpdateHeader(order *entity.Order) error {
	query := `
		UPDATE orders SET status = $2, total = $3, guest_count = $4, waiter = $5, comment = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Status, order.Total, order.GuestCount, order.Waiter, order.Comment)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

func (r *OrderRepo) ListByStatus(status string) ([]*entity.Order, error) {
	query := `
		SELECT id, table_id, status, total, created_at, guest_count, waiter, comment
		FROM orders WHERE status = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, status)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.TableID, &o.Status, &o.Total, &o.CreatedAt, &o.GuestCount, &o.Waiter, &o.Comment); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		items, err := r.listItems(o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}
	return list, nil
}

func (r *OrderRepo) HasOpenByTable(tableID string) (bool, error) {
	var found int
	err := r.q.QueryRow(context.Background(),
		`SELECT 1 FROM orders WHERE table_id = $1 AND status = 'open' LIMIT 1`, tableID).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check open order: %w", err)
	}
	return true, nil
}

func (r *OrderRepo) AddItem(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, product_name, qty, unit_price, sum)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.ProductID, item.ProductName, item.Qty, item.UnitPrice, item.Sum)
	if err != nil {
		return fmt.Errorf("add order item: %w", err)
	}
	return nil
}

func (r *OrderRepo) GetItem(itemID string) (*entity.OrderItem, error) {
	var item entity.OrderItem
	err := r.q.QueryRow(context.Background(), `
		SELECT id, order_id, product_id, product_name, qty, unit_price, sum
		FROM order_items WHERE id = $1`, itemID).Scan(
		&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Qty, &item.UnitPrice, &item.Sum,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order item: %w", err)
	}
	return &item, nil
}

func (r *OrderRepo) UpdateItem(item *entity.OrderItem) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE order_items SET qty = $2, sum = $3 WHERE id = $1`,
		item.ID, item.Qty, item.Sum)
	if err != nil {
		return fmt.Errorf("update order item: %w", err)
	}
	return nil
}

func (r *OrderRepo) DeleteItem(itemID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM order_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete order item: %w", err)
	}
	return nil
}

func (r *OrderRepo) CreatePayment(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, order_id, amount, method, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.OrderID, payment.Amount, payment.Method, payment.CreatedAt)
	if err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

func (r *OrderRepo) listItems(orderID string) ([]*entity.OrderItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, order_id, product_id, product_name, qty, unit_price, sum
		FROM order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var items []*entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Qty, &item.UnitPrice, &item.Sum); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}
