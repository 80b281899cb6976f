package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

var _ repository.WriteOffRepository = (*WriteOffRepo)(nil)

// WriteOffRepo implementación de WriteOffRepository sobre PostgreSQL.
type WriteOffRepo struct {
	q Querier
}

// NewWriteOffRepository construye el adaptador. Acepta pool o tx (Querier).
func NewWriteOffRepository(q Querier) *WriteOffRepo {
	return &WriteOffRepo{q: q}
}

func (r *WriteOffRepo) Create(doc *entity.WriteOff) error {
	query := `
		INSERT INTO writeoffs (id, warehouse_id, date, reason, status)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, doc.ID, doc.WarehouseID, doc.Date, doc.Reason, doc.Status)
	if err != nil {
		return fmt.Errorf("create writeoff: %w", err)
	}
	return nil
}

func (r *WriteOffRepo) GetByID(id string) (*entity.WriteOff, error) {
	query := `
		SELECT id, warehouse_id, date, reason, status
		FROM writeoffs WHERE id = $1`
	var doc entity.WriteOff
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&doc.ID, &doc.WarehouseID, &doc.Date, &doc.Reason, &doc.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get writeoff: %w", err)
	}
	rows, err := r.q.Query(context.Background(), `
		SELECT id, writeoff_id, item_id, qty
		FROM writeoff_lines WHERE writeoff_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("get writeoff lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var line entity.WriteOffLine
		if err := rows.Scan(&line.ID, &line.WriteOffID, &line.ItemID, &line.Qty); err != nil {
			return nil, fmt.Errorf("scan writeoff line: %w", err)
		}
		doc.Lines = append(doc.Lines, &line)
	}
	return &doc, rows.Err()
}

func (r *WriteOffRepo) UpdateHeader(doc *entity.WriteOff) error {
	query := `
		UPDATE writeoffs SET warehouse_id = $2, date = $3, reason = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, doc.ID, doc.WarehouseID, doc.Date, doc.Reason)
	if err != nil {
		return fmt.Errorf("update writeoff: %w", err)
	}
	return nil
}

// MarkPosted sella el documento solo si sigue en draft.
func (r *WriteOffRepo) MarkPosted(id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE writeoffs SET status = 'posted' WHERE id = $1 AND status = 'draft'`, id)
	if err != nil {
		return false, fmt.Errorf("mark writeoff posted: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *WriteOffRepo) AddLine(line *entity.WriteOffLine) error {
	query := `
		INSERT INTO writeoff_lines (id, writeoff_id, item_id, qty)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, line.ID, line.WriteOffID, line.ItemID, line.Qty)
	if err != nil {
		return fmt.Errorf("add writeoff line: %w", err)
	}
	return nil
}

func (r *WriteOffRepo) DeleteLine(lineID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM writeoff_lines WHERE id = $1`, lineID)
	if err != nil {
		return fmt.Errorf("delete writeoff line: %w", err)
	}
	return nil
}

func (r *WriteOffRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM writeoffs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete writeoff: %w", err)
	}
	return nil
}

func (r *WriteOffRepo) List(limit, offset int) ([]*entity.WriteOff, error) {
	query := `
		SELECT id, warehouse_id, date, reason, status
		FROM writeoffs ORDER BY date DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list writeoffs: %w", err)
	}
	defer rows.Close()
	var list []*entity.WriteOff
	for rows.Next() {
		var doc entity.WriteOff
		if err := rows.Scan(&doc.ID, &doc.WarehouseID, &doc.Date, &doc.Reason, &doc.Status); err != nil {
			return nil, fmt.Errorf("scan writeoff: %w", err)
		}
		list = append(list, &doc)
	}
	return list, rows.Err()
}
