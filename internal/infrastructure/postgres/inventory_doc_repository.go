package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

var _ repository.InventoryDocRepository = (*InventoryDocRepo)(nil)

// InventoryDocRepo implementación de InventoryDocRepository sobre PostgreSQL.
type InventoryDocRepo struct {
	q Querier
}

// NewInventoryDocRepository construye el adaptador. Acepta pool o tx (Querier).
func NewInventoryDocRepository(q Querier) *InventoryDocRepo {
	return &InventoryDocRepo{q: q}
}

func (r *InventoryDocRepo) Create(doc *entity.InventoryDoc) error {
	query := `
		INSERT INTO inventory_docs (id, warehouse_id, date, status)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, doc.ID, doc.WarehouseID, doc.Date, doc.Status)
	if err != nil {
		return fmt.Errorf("create inventory doc: %w", err)
	}
	return nil
}

func (r *InventoryDocRepo) GetByID(id string) (*entity.InventoryDoc, error) {
	query := `
		SELECT id, warehouse_id, date, status
		FROM inventory_docs WHERE id = $1`
	var doc entity.InventoryDoc
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&doc.ID, &doc.WarehouseID, &doc.Date, &doc.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory doc: %w", err)
	}
	rows, err := r.q.Query(context.Background(), `
		SELECT id, doc_id, item_id, counted_qty
		FROM inventory_lines WHERE doc_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("get inventory lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var line entity.InventoryLine
		if err := rows.Scan(&line.ID, &line.DocID, &line.ItemID, &line.CountedQty); err != nil {
			return nil, fmt.Errorf("scan inventory line: %w", err)
		}
		doc.Lines = append(doc.Lines, &line)
	}
	return &doc, rows.Err()
}

// MarkPosted sella el documento solo si sigue en draft.
func (r *InventoryDocRepo) MarkPosted(id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE inventory_docs SET status = 'posted' WHERE id = $1 AND status = 'draft'`, id)
	if err != nil {
		return false, fmt.Errorf("mark inventory doc posted: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *InventoryDocRepo) AddLine(line *entity.InventoryLine) error {
	query := `
		INSERT INTO inventory_lines (id, doc_id, item_id, counted_qty)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, line.ID, line.DocID, line.ItemID, line.CountedQty)
	if err != nil {
		return fmt.Errorf("add inventory line: %w", err)
	}
	return nil
}

func (r *InventoryDocRepo) UpdateLine(line *entity.InventoryLine) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE inventory_lines SET counted_qty = $2 WHERE id = $1`, line.ID, line.CountedQty)
	if err != nil {
		return fmt.Errorf("update inventory line: %w", err)
	}
	return nil
}

func (r *InventoryDocRepo) DeleteLine(lineID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_lines WHERE id = $1`, lineID)
	if err != nil {
		return fmt.Errorf("delete inventory line: %w", err)
	}
	return nil
}

func (r *InventoryDocRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_docs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory doc: %w", err)
	}
	return nil
}

func (r *InventoryDocRepo) List(limit, offset int) ([]*entity.InventoryDoc, error) {
	query := `
		SELECT id, warehouse_id, date, status
		FROM inventory_docs ORDER BY date DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory docs: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryDoc
	for rows.Next() {
		var doc entity.InventoryDoc
		if err := rows.Scan(&doc.ID, &doc.WarehouseID, &doc.Date, &doc.Status); err != nil {
			return nil, fmt.Errorf("scan inventory doc: %w", err)
		}
		list = append(list, &doc)
	}
	return list, rows.Err()
}
