package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

var _ repository.DeliveryOrderRepository = (*DeliveryOrderRepo)(nil)

// DeliveryOrderRepo implementación de DeliveryOrderRepository sobre PostgreSQL.
type DeliveryOrderRepo struct {
	q Querier
}

// NewDeliveryOrderRepository construye el adaptador. Acepta pool o tx (Querier).
func NewDeliveryOrderRepository(q Querier) *DeliveryOrderRepo {
	return &DeliveryOrderRepo{q: q}
}

const deliveryColumns = `id, status, source, phone, customer_name, street, house, flat,
	entrance, floor, comment, planned_at, receive_method, payment_type, total,
	created_at, COALESCE(courier_id, ''), COALESCE(user_id, '')`

func scanDeliveryOrder(row pgx.Row) (*entity.DeliveryOrder, error) {
	var o entity.DeliveryOrder
	err := row.Scan(
		&o.ID, &o.Status, &o.Source, &o.Phone, &o.CustomerName, &o.Street, &o.House,
		&o.Flat, &o.Entrance, &o.Floor, &o.Comment, &o.PlannedAt, &o.ReceiveMethod,
		&o.PaymentType, &o.Total, &o.CreatedAt, &o.CourierID, &o.UserID,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *DeliveryOrderRepo) Create(order *entity.DeliveryOrder) error {
	query := `
		INSERT INTO delivery_orders (id, status, source, phone, customer_name, street, house,
			flat, entrance, floor, comment, planned_at, receive_method, payment_type, total,
			created_at, courier_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			NULLIF($17, ''), NULLIF($18, ''))`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Status, order.Source, order.Phone, order.CustomerName,
		order.Street, order.House, order.Flat, order.Entrance, order.Floor,
		order.Comment, order.PlannedAt, order.ReceiveMethod, order.PaymentType,
		order.Total, order.CreatedAt, order.CourierID, order.UserID,
	)
	if err != nil {
		return fmt.Errorf("create delivery order: %w", err)
	}
	return nil
}

func (r *DeliveryOrderRepo) GetByID(id string) (*entity.DeliveryOrder, error) {
	order, err := scanDeliveryOrder(r.q.QueryRow(context.Background(),
		`SELECT `+deliveryColumns+` FROM delivery_orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery order: %w", err)
	}
	items, err := r.listItems(id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *DeliveryOrderRepo) UpdateHeader(order *entity.DeliveryOrder) error {
	query := `
		UPDATE delivery_orders SET status = $2, phone = $3, customer_name = $4, street = $5,
			house = $6, flat = $7, entrance = $8, floor = $9, comment = $10, planned_at = $11,
			receive_method = $12, payment_type = $13, total = $14, courier_id = NULLIF($15, '')
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Status, order.Phone, order.CustomerName, order.Street,
		order.House, order.Flat, order.Entrance, order.Floor, order.Comment,
		order.PlannedAt, order.ReceiveMethod, order.PaymentType, order.Total, order.CourierID,
	)
	if err != nil {
		return fmt.Errorf("update delivery order: %w", err)
	}
	return nil
}

func (r *DeliveryOrderRepo) ListByStatus(status string) ([]*entity.DeliveryOrder, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+deliveryColumns+` FROM delivery_orders WHERE status = $1 ORDER BY created_at DESC`, status)
	if err != nil {
		return nil, fmt.Errorf("list delivery orders: %w", err)
	}
	return r.collect(rows)
}

func (r *DeliveryOrderRepo) ListByUser(userID string) ([]*entity.DeliveryOrder, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+deliveryColumns+` FROM delivery_orders WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list delivery orders by user: %w", err)
	}
	return r.collect(rows)
}

func (r *DeliveryOrderRepo) AddItem(item *entity.DeliveryOrderItem) error {
	query := `
		INSERT INTO delivery_order_items (id, order_id, product_id, product_name, qty, unit_price, sum)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.ProductID, item.ProductName, item.Qty, item.UnitPrice, item.Sum)
	if err != nil {
		return fmt.Errorf("add delivery order item: %w", err)
	}
	return nil
}

func (r *DeliveryOrderRepo) collect(rows pgx.Rows) ([]*entity.DeliveryOrder, error) {
	defer rows.Close()
	var list []*entity.DeliveryOrder
	for rows.Next() {
		order, err := scanDeliveryOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan delivery order: %w", err)
		}
		list = append(list, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, order := range list {
		items, err := r.listItems(order.ID)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}
	return list, nil
}

func (r *DeliveryOrderRepo) listItems(orderID string) ([]*entity.DeliveryOrderItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, order_id, product_id, product_name, qty, unit_price, sum
		FROM delivery_order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list delivery order items: %w", err)
	}
	defer rows.Close()
	var items []*entity.DeliveryOrderItem
	for rows.Next() {
		var item entity.DeliveryOrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Qty, &item.UnitPrice, &item.Sum); err != nil {
			return nil, fmt.Errorf("scan delivery order item: %w", err)
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}
