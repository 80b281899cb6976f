package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación de EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Acepta pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, full_name, position, birth_date, phone, address, photo_url, created_at`

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(
		&e.ID, &e.FullName, &e.Position, &e.BirthDate, &e.Phone,
		&e.Address, &e.PhotoURL, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.FullName, employee.Position, employee.BirthDate,
		employee.Phone, employee.Address, employee.PhotoURL, employee.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	employee, err := scanEmployee(r.q.QueryRow(context.Background(),
		`SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return employee, nil
}

func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	query := `
		UPDATE employees SET full_name = $2, position = $3, birth_date = $4,
			phone = $5, address = $6, photo_url = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.FullName, employee.Position, employee.BirthDate,
		employee.Phone, employee.Address, employee.PhotoURL,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) List() ([]*entity.Employee, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+employeeColumns+` FROM employees ORDER BY full_name`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return r.collect(rows)
}

func (r *EmployeeRepo) ListByPosition(position string) ([]*entity.Employee, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+employeeColumns+` FROM employees WHERE position = $1 ORDER BY full_name`, position)
	if err != nil {
		return nil, fmt.Errorf("list employees by position: %w", err)
	}
	return r.collect(rows)
}

func (r *EmployeeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) CreateShift(shift *entity.Shift) error {
	query := `
		INSERT INTO shifts (id, employee_id, day, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		shift.ID, shift.EmployeeID, shift.Day, shift.StartTime, shift.EndTime)
	if err != nil {
		return fmt.Errorf("create shift: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) ListShifts(employeeID string) ([]*entity.Shift, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, employee_id, day, start_time, end_time
		FROM shifts WHERE employee_id = $1 ORDER BY day, start_time`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shift
	for rows.Next() {
		var s entity.Shift
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.Day, &s.StartTime, &s.EndTime); err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *EmployeeRepo) DeleteShift(shiftID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM shifts WHERE id = $1`, shiftID)
	if err != nil {
		return fmt.Errorf("delete shift: %w", err)
	}
	return nil
}

func (r *EmployeeRepo) collect(rows pgx.Rows) ([]*entity.Employee, error) {
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, employee)
	}
	return list, rows.Err()
}
