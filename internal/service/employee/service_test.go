package employee

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/mkline/storefront/internal/domain"
	"github.com/mkline/storefront/internal/repository"
)

type stubEmployeeRepository struct {
	byID map[string]domain.Employee
}

func newStubEmployeeRepository() *stubEmployeeRepository {
	return &stubEmployeeRepository{byID: make(map[string]domain.Employee)}
}

func (s *stubEmployeeRepository) CreateEmployee(ctx context.Context, employee *domain.Employee) error {
	if _, ok := s.byID[employee.EmployeeID]; ok {
		return repository.ErrConflict
	}
	s.byID[employee.EmployeeID] = *employee
	return nil
}

func (s *stubEmployeeRepository) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	e, ok := s.byID[employeeID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (s *stubEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	if _, ok := s.byID[employeeID]; !ok {
		return repository.ErrNotFound
	}
	delete(s.byID, employeeID)
	return nil
}

func testService(repo repository.EmployeeRepository) Service {
	return New(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAddSubstitutesDefaults(t *testing.T) {
	svc := testService(newStubEmployeeRepository())
	record, err := svc.Add(context.Background(), AddInput{EmployeeID: "E-1"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if record.Name != DefaultName || record.Salary != DefaultSalary || record.Position != DefaultPosition {
		t.Fatalf("defaults not applied: %+v", record)
	}
}

func TestAddKeepsSuppliedFields(t *testing.T) {
	svc := testService(newStubEmployeeRepository())
	record, err := svc.Add(context.Background(), AddInput{
		EmployeeID: "E-2",
		Name:       "Ada",
		Salary:     "90000",
		Position:   "Staff Engineer",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if record.Name != "Ada" || record.Salary != "90000" || record.Position != "Staff Engineer" {
		t.Fatalf("supplied fields overwritten: %+v", record)
	}
}

func TestAddRequiresEmployeeID(t *testing.T) {
	svc := testService(newStubEmployeeRepository())
	if _, err := svc.Add(context.Background(), AddInput{Name: "Ada"}); !errors.Is(err, ErrMissingEmployeeID) {
		t.Fatalf("expected ErrMissingEmployeeID, got %v", err)
	}
}

func TestAddDuplicateLeavesOriginal(t *testing.T) {
	repo := newStubEmployeeRepository()
	svc := testService(repo)
	ctx := context.Background()

	if _, err := svc.Add(ctx, AddInput{EmployeeID: "E-1", Name: "Ada"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(ctx, AddInput{EmployeeID: "E-1", Name: "Grace"}); !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if repo.byID["E-1"].Name != "Ada" {
		t.Fatal("original record replaced by duplicate add")
	}
}

func TestGetRequiresEmployeeID(t *testing.T) {
	svc := testService(newStubEmployeeRepository())
	if _, err := svc.Get(context.Background(), ""); !errors.Is(err, ErrMissingEmployeeID) {
		t.Fatalf("expected ErrMissingEmployeeID, got %v", err)
	}
}

func TestDeleteMissingReportsNotFound(t *testing.T) {
	svc := testService(newStubEmployeeRepository())
	if err := svc.Delete(context.Background(), "absent"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), ""); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty id, got %v", err)
	}
}
