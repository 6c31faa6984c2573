package repository

import (
	"context"

	"github.com/mkline/storefront/internal/domain"
)

// UserRepository persists accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ProductRepository persists catalog records and owns the identifier counter.
type ProductRepository interface {
	// NextProductID atomically claims the next sequential identifier,
	// starting at 0. The counter is persisted so identifiers survive
	// restarts and multiple instances.
	NextProductID(ctx context.Context) (int64, error)
	CreateProduct(ctx context.Context, product *domain.Product) error
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByOurID(ctx context.Context, ourID string) (*domain.Product, error)
	// UpdateProduct applies only non-nil fields and returns the record
	// after the update.
	UpdateProduct(ctx context.Context, ourID string, name *string, price *float64) (*domain.Product, error)
	// DeleteProduct removes the record and returns it as confirmation.
	DeleteProduct(ctx context.Context, ourID string) (*domain.Product, error)
}

// EmployeeRepository persists staff records.
type EmployeeRepository interface {
	// CreateEmployee is insert-if-absent: a duplicate identifier surfaces
	// as ErrConflict, never as a silent overwrite.
	CreateEmployee(ctx context.Context, employee *domain.Employee) error
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string) error
}
