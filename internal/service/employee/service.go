// Package employee implements the staff record service. There is no update
// operation: records are created, read and deleted only.
package employee

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mkline/storefront/internal/domain"
	"github.com/mkline/storefront/internal/repository"
)

// ErrMissingEmployeeID indicates the client-supplied identifier was absent.
var ErrMissingEmployeeID = errors.New("employeeId is required")

// Defaults substituted for optional fields on add.
const (
	DefaultName     = "John Doe"
	DefaultSalary   = "50000"
	DefaultPosition = "Software Engineer"
)

// AddInput carries the client-supplied fields for a new record.
type AddInput struct {
	EmployeeID string
	Name       string
	Salary     string
	Position   string
}

// Service handles staff record operations.
type Service struct {
	employees repository.EmployeeRepository
	logger    *slog.Logger
}

// New constructs a Service.
func New(employees repository.EmployeeRepository, logger *slog.Logger) Service {
	return Service{employees: employees, logger: logger}
}

// Add creates a staff record, substituting defaults for missing optional
// fields. A duplicate identifier surfaces as repository.ErrConflict.
func (s Service) Add(ctx context.Context, in AddInput) (*domain.Employee, error) {
	if in.EmployeeID == "" {
		return nil, ErrMissingEmployeeID
	}
	record := &domain.Employee{
		EmployeeID: in.EmployeeID,
		Name:       in.Name,
		Salary:     in.Salary,
		Position:   in.Position,
		CreatedAt:  time.Now().UTC(),
	}
	if record.Name == "" {
		record.Name = DefaultName
	}
	if record.Salary == "" {
		record.Salary = DefaultSalary
	}
	if record.Position == "" {
		record.Position = DefaultPosition
	}
	if err := s.employees.CreateEmployee(ctx, record); err != nil {
		return nil, err
	}
	s.logger.Info("employee added", "employee_id", record.EmployeeID)
	return record, nil
}

// Get returns the record with the given identifier.
func (s Service) Get(ctx context.Context, employeeID string) (*domain.Employee, error) {
	if employeeID == "" {
		return nil, ErrMissingEmployeeID
	}
	return s.employees.GetEmployeeByID(ctx, employeeID)
}

// Delete removes the record with the given identifier. A missing identifier
// matches nothing and reports not-found, same as an unknown one.
func (s Service) Delete(ctx context.Context, employeeID string) error {
	if employeeID == "" {
		return repository.ErrNotFound
	}
	if err := s.employees.DeleteEmployee(ctx, employeeID); err != nil {
		return err
	}
	s.logger.Info("employee deleted", "employee_id", employeeID)
	return nil
}
