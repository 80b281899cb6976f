package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Acepta pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

func (r *PurchaseRepo) Create(doc *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, supplier_id, warehouse_id, date, status)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, doc.ID, doc.SupplierID, doc.WarehouseID, doc.Date, doc.Status)
	if err != nil {
		return fmt.Errorf("create purchase: %w", err)
	}
	return nil
}

func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	query := `
		SELECT id, COALESCE(supplier_id, ''), warehouse_id, date, status
		FROM purchases WHERE id = $1`
	var doc entity.Purchase
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&doc.ID, &doc.SupplierID, &doc.WarehouseID, &doc.Date, &doc.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	rows, err := r.q.Query(context.Background(), `
		SELECT id, purchase_id, item_id, qty, price
		FROM purchase_lines WHERE purchase_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("get purchase lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var line entity.PurchaseLine
		if err := rows.Scan(&line.ID, &line.PurchaseID, &line.ItemID, &line.Qty, &line.Price); err != nil {
			return nil, fmt.Errorf("scan purchase line: %w", err)
		}
		doc.Lines = append(doc.Lines, &line)
	}
	return &doc, rows.Err()
}

func (r *PurchaseRepo) UpdateHeader(doc *entity.Purchase) error {
	query := `
		UPDATE purchases SET supplier_id = NULLIF($2, ''), warehouse_id = $3, date = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, doc.ID, doc.SupplierID, doc.WarehouseID, doc.Date)
	if err != nil {
		return fmt.Errorf("update purchase: %w", err)
	}
	return nil
}

// MarkPosted sella el documento solo si sigue en draft. El WHERE sobre status
// cierra la carrera entre dos provisiones concurrentes: solo una obtiene la fila.
func (r *PurchaseRepo) MarkPosted(id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE purchases SET status = 'posted' WHERE id = $1 AND status = 'draft'`, id)
	if err != nil {
		return false, fmt.Errorf("mark purchase posted: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PurchaseRepo) AddLine(line *entity.PurchaseLine) error {
	query := `
		INSERT INTO purchase_lines (id, purchase_id, item_id, qty, price)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, line.ID, line.PurchaseID, line.ItemID, line.Qty, line.Price)
	if err != nil {
		return fmt.Errorf("add purchase line: %w", err)
	}
	return nil
}

func (r *PurchaseRepo) DeleteLine(lineID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM purchase_lines WHERE id = $1`, lineID)
	if err != nil {
		return fmt.Errorf("delete purchase line: %w", err)
	}
	return nil
}

func (r *PurchaseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	return nil
}

func (r *PurchaseRepo) List(limit, offset int) ([]*entity.Purchase, error) {
	query := `
		SELECT id, COALESCE(supplier_id, ''), warehouse_id, date, status
		FROM purchases ORDER BY date DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var doc entity.Purchase
		if err := rows.Scan(&doc.ID, &doc.SupplierID, &doc.WarehouseID, &doc.Date, &doc.Status); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &doc)
	}
	return list, rows.Err()
}
