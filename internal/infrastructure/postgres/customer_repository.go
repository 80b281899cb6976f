package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/resto-crm/internal/domain"
	"github.com/tu-usuario/resto-crm/internal/domain/entity"
	"github.com/tu-usuario/resto-crm/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)
var _ repository.JobApplicationRepository = (*JobApplicationRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre PostgreSQL.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Acepta pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func (r *CustomerRepo) Create(customer *entity.Customer) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO customers (id, phone, name, points) VALUES ($1, $2, $3, $4)`,
		customer.ID, customer.Phone, customer.Name, customer.Points)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.q.QueryRow(context.Background(),
		`SELECT id, phone, name, points FROM customers WHERE id = $1`, id).
		Scan(&c.ID, &c.Phone, &c.Name, &c.Points)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepo) GetByPhone(phone string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.q.QueryRow(context.Background(),
		`SELECT id, phone, name, points FROM customers WHERE phone = $1`, phone).
		Scan(&c.ID, &c.Phone, &c.Name, &c.Points)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by phone: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepo) Update(customer *entity.Customer) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE customers SET phone = $2, name = $3, points = $4 WHERE id = $1`,
		customer.ID, customer.Phone, customer.Name, customer.Points)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, phone, name, points FROM customers ORDER BY name, phone LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Phone, &c.Name, &c.Points); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// JobApplicationRepo implementación de JobApplicationRepository sobre PostgreSQL.
type JobApplicationRepo struct {
	q Querier
}

// NewJobApplicationRepository construye el adaptador. Acepta pool o tx (Querier).
func NewJobApplicationRepository(q Querier) *JobApplicationRepo {
	return &JobApplicationRepo{q: q}
}

func (r *JobApplicationRepo) Create(application *entity.JobApplication) error {
	query := `
		INSERT INTO job_applications (id, name, desired_position, city, phone, email, comment)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		application.ID, application.Name, application.DesiredPosition,
		application.City, application.Phone, application.Email, application.Comment)
	if err != nil {
		return fmt.Errorf("create job application: %w", err)
	}
	return nil
}

func (r *JobApplicationRepo) List(limit, offset int) ([]*entity.JobApplication, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, name, desired_position, city, phone, email, comment
		FROM job_applications ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list job applications: %w", err)
	}
	defer rows.Close()
	var list []*entity.JobApplication
	for rows.Next() {
		var a entity.JobApplication
		if err := rows.Scan(&a.ID, &a.Name, &a.DesiredPosition, &a.City, &a.Phone, &a.Email, &a.Comment); err != nil {
			return nil, fmt.Errorf("scan job application: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
