package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo implementación de StockItemRepository sobre PostgreSQL.
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador. Acepta pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

const stockItemColumns = `id, name, unit, category, item_type, sku, barcode,
	purchase_price_plan, sale_price, is_alcohol, created_at`

func scanStockItem(row pgx.Row) (*entity.StockItem, error) {
	var item entity.StockItem
	err := row.Scan(
		&item.ID, &item.Name, &item.Unit, &item.Category, &item.ItemType,
		&item.SKU, &item.Barcode, &item.PurchasePricePlan, &item.SalePrice,
		&item.IsAlcohol, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *StockItemRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (` + stockItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Unit, item.Category, item.ItemType,
		item.SKU, item.Barcode, item.PurchasePricePlan, item.SalePrice,
		item.IsAlcohol, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock item: %w", err)
	}
	return nil
}

func (r *StockItemRepo) GetByID(id string) (*entity.StockItem, error) {
	item, err := scanStockItem(r.q.QueryRow(context.Background(),
		`SELECT `+stockItemColumns+` FROM stock_items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return item, nil
}

func (r *StockItemRepo) Update(item *entity.StockItem) error {
	query := `
		UPDATE stock_items SET name = $2, unit = $3, category = $4, item_type = $5,
			sku = $6, barcode = $7, purchase_price_plan = $8, sale_price = $9, is_alcohol = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Unit, item.Category, item.ItemType,
		item.SKU, item.Barcode, item.PurchasePricePlan, item.SalePrice, item.IsAlcohol,
	)
	if err != nil {
		return fmt.Errorf("update stock item: %w", err)
	}
	return nil
}

func (r *StockItemRepo) List(limit, offset int) ([]*entity.StockItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+stockItemColumns+` FROM stock_items ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockItem
	for rows.Next() {
		item, err := scanStockItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

func (r *StockItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock item: %w", err)
	}
	return nil
}
