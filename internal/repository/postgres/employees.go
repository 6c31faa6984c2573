package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mkline/storefront/internal/domain"
	"github.com/mkline/storefront/internal/repository"
)

const employeeColumns = `employee_id, name, salary, position, skills, details, created_at`

// CreateEmployee inserts a staff record. Insert-if-absent is a single
// statement: a concurrent duplicate loses at the unique index and surfaces
// as ErrConflict.
func (r *Repository) CreateEmployee(ctx context.Context, employee *domain.Employee) error {
	const query = `INSERT INTO employees (employee_id, name, salary, position, skills, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		employee.EmployeeID,
		employee.Name,
		employee.Salary,
		employee.Position,
		rawOrNil(employee.Skills),
		rawOrNil(employee.Details),
		employee.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return err
	}
	return nil
}

// GetEmployeeByID fetches a staff record by its client-supplied identifier.
func (r *Repository) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	const query = `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1`
	row := r.pool.QueryRow(ctx, query, employeeID)
	var e domain.Employee
	if err := row.Scan(&e.EmployeeID, &e.Name, &e.Salary, &e.Position, &e.Skills, &e.Details, &e.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// DeleteEmployee removes a staff record.
func (r *Repository) DeleteEmployee(ctx context.Context, employeeID string) error {
	const query = `DELETE FROM employees WHERE employee_id = $1 RETURNING employee_id`
	var deleted string
	if err := r.pool.QueryRow(ctx, query, employeeID).Scan(&deleted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}
	return nil
}
