package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación de TransferRepository sobre PostgreSQL.
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador. Acepta pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

func (r *TransferRepo) Create(doc *entity.Transfer) error {
	query := `
		INSERT INTO transfers (id, from_warehouse_id, to_warehouse_id, date, status)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.FromWarehouseID, doc.ToWarehouseID, doc.Date, doc.Status)
	if err != nil {
		return fmt.Errorf("create transfer: %w", err)
	}
	return nil
}

func (r *TransferRepo) GetByID(id string) (*entity.Transfer, error) {
	query := `
		SELECT id, from_warehouse_id, to_warehouse_id, date, status
		FROM transfers WHERE id = $1`
	var doc entity.Transfer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&doc.ID, &doc.FromWarehouseID, &doc.ToWarehouseID, &doc.Date, &doc.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	rows, err := r.q.Query(context.Background(), `
		SELECT id, transfer_id, item_id, qty
		FROM transfer_lines WHERE transfer_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("get transfer lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var line entity.TransferLine
		if err := rows.Scan(&line.ID, &line.TransferID, &line.ItemID, &line.Qty); err != nil {
			return nil, fmt.Errorf("scan transfer line: %w", err)
		}
		doc.Lines = append(doc.Lines, &line)
	}
	return &doc, rows.Err()
}

func (r *TransferRepo) UpdateHeader(doc *entity.Transfer) error {
	query := `
		UPDATE transfers SET from_warehouse_id = $2, to_warehouse_id = $3, date = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, doc.ID, doc.FromWarehouseID, doc.ToWarehouseID, doc.Date)
	if err != nil {
		return fmt.Errorf("update transfer: %w", err)
	}
	return nil
}

// MarkPosted sella el documento solo si sigue en draft.
func (r *TransferRepo) MarkPosted(id string) (bool, error) {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE transfers SET status = 'posted' WHERE id = $1 AND status = 'draft'`, id)
	if err != nil {
		return false, fmt.Errorf("mark transfer posted: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *TransferRepo) AddLine(line *entity.TransferLine) error {
	query := `
		INSERT INTO transfer_lines (id, transfer_id, item_id, qty)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, line.ID, line.TransferID, line.ItemID, line.Qty)
	if err != nil {
		return fmt.Errorf("add transfer line: %w", err)
	}
	return nil
}

func (r *TransferRepo) DeleteLine(lineID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM transfer_lines WHERE id = $1`, lineID)
	if err != nil {
		return fmt.Errorf("delete transfer line: %w", err)
	}
	return nil
}

func (r *TransferRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM transfers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transfer: %w", err)
	}
	return nil
}

func (r *TransferRepo) List(limit, offset int) ([]*entity.Transfer, error) {
	query := `
		SELECT id, from_warehouse_id, to_warehouse_id, date, status
		FROM transfers ORDER BY date DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transfer
	for rows.Next() {
		var doc entity.Transfer
		if err := rows.Scan(&doc.ID, &doc.FromWarehouseID, &doc.ToWarehouseID, &doc.Date, &doc.Status); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, &doc)
	}
	return list, rows.Err()
}
