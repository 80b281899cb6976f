package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/resto-crm/internal/domain/entity"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación de CartRepository sobre PostgreSQL.
// El carrito no tiene fila propia: existe mientras existan sus líneas.
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador. Acepta pool o tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

func (r *CartRepo) Get(sessionID string) (*entity.Cart, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT session_id, product_id, qty, updated_at
		FROM cart_items WHERE session_id = $1 ORDER BY product_id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	defer rows.Close()
	cart := &entity.Cart{SessionID: sessionID}
	for rows.Next() {
		var item entity.CartItem
		var updatedAt time.Time
		if err := rows.Scan(&item.SessionID, &item.ProductID, &item.Qty, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		if updatedAt.After(cart.UpdatedAt) {
			cart.UpdatedAt = updatedAt
		}
		cart.Items = append(cart.Items, &item)
	}
	return cart, rows.Err()
}

func (r *CartRepo) SetItem(sessionID, productID string, qty int) error {
	if qty <= 0 {
		_, err := r.q.Exec(context.Background(),
			`DELETE FROM cart_items WHERE session_id = $1 AND product_id = $2`,
			sessionID, productID)
		if err != nil {
			return fmt.Errorf("delete cart item: %w", err)
		}
		return nil
	}
	query := `
		INSERT INTO cart_items (session_id, product_id, qty, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (session_id, product_id)
		DO UPDATE SET qty = EXCLUDED.qty, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, sessionID, productID, qty)
	if err != nil {
		return fmt.Errorf("set cart item: %w", err)
	}
	return nil
}

func (r *CartRepo) Clear(sessionID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM cart_items WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
