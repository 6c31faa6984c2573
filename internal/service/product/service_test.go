package product

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/mkline/storefront/internal/domain"
	"github.com/mkline/storefront/internal/repository"
)

type stubProductRepository struct {
	counter  int64
	byOurID  map[string]domain.Product
	order    []string
	listErr  error
	inserted int
}

func newStubProductRepository() *stubProductRepository {
	return &stubProductRepository{byOurID: make(map[string]domain.Product)}
}

func (s *stubProductRepository) NextProductID(ctx context.Context) (int64, error) {
	id := s.counter
	s.counter++
	return id, nil
}

func (s *stubProductRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	if _, ok := s.byOurID[product.OurID]; ok {
		return repository.ErrConflict
	}
	s.byOurID[product.OurID] = *product
	s.order = append(s.order, product.OurID)
	s.inserted++
	return nil
}

func (s *stubProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]domain.Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byOurID[id])
	}
	return out, nil
}

func (s *stubProductRepository) GetProductByOurID(ctx context.Context, ourID string) (*domain.Product, error) {
	p, ok := s.byOurID[ourID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (s *stubProductRepository) UpdateProduct(ctx context.Context, ourID string, name *string, price *float64) (*domain.Product, error) {
	p, ok := s.byOurID[ourID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if name != nil {
		p.Name = *name
	}
	if price != nil {
		p.Price = *price
	}
	s.byOurID[ourID] = p
	return &p, nil
}

func (s *stubProductRepository) DeleteProduct(ctx context.Context, ourID string) (*domain.Product, error) {
	p, ok := s.byOurID[ourID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(s.byOurID, ourID)
	for i, id := range s.order {
		if id == ourID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return &p, nil
}

func testService(repo repository.ProductRepository) Service {
	return New(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAddAssignsSequentialIdentifiers(t *testing.T) {
	svc := testService(newStubProductRepository())
	ctx := context.Background()

	first, err := svc.Add(ctx, "Widget", "9.99")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first.OurID != "0" {
		t.Fatalf("expected ourId \"0\", got %q", first.OurID)
	}
	if first.Price != 9.99 {
		t.Fatalf("expected price 9.99, got %v", first.Price)
	}

	second, err := svc.Add(ctx, "Gadget", "3")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if second.OurID != "1" {
		t.Fatalf("expected ourId \"1\", got %q", second.OurID)
	}
}

func TestAddRejectsMissingDetails(t *testing.T) {
	repo := newStubProductRepository()
	svc := testService(repo)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "", "9.99"); !errors.Is(err, ErrMissingDetails) {
		t.Fatalf("expected ErrMissingDetails, got %v", err)
	}
	if _, err := svc.Add(ctx, "Widget", ""); !errors.Is(err, ErrMissingDetails) {
		t.Fatalf("expected ErrMissingDetails, got %v", err)
	}
	if repo.inserted != 0 {
		t.Fatalf("expected no inserts, got %d", repo.inserted)
	}
}

func TestAddRejectsUnparsablePrice(t *testing.T) {
	svc := testService(newStubProductRepository())
	for _, raw := range []string{"abc", "NaN", "Inf", "-Inf"} {
		if _, err := svc.Add(context.Background(), "Widget", raw); !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("price %q: expected ErrInvalidPrice, got %v", raw, err)
		}
	}
}

func TestUpdateRequiresAField(t *testing.T) {
	svc := testService(newStubProductRepository())
	if _, err := svc.Update(context.Background(), "0", "", ""); !errors.Is(err, ErrNoUpdateFields) {
		t.Fatalf("expected ErrNoUpdateFields, got %v", err)
	}
}

func TestUpdateAppliesPartialFields(t *testing.T) {
	repo := newStubProductRepository()
	svc := testService(repo)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "Widget", "9.99"); err != nil {
		t.Fatalf("add: %v", err)
	}

	updated, err := svc.Update(ctx, "0", "", "19.99")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Widget" || updated.Price != 19.99 {
		t.Fatalf("expected only price changed, got %+v", updated)
	}

	updated, err = svc.Update(ctx, "0", "Sprocket", "")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Sprocket" || updated.Price != 19.99 {
		t.Fatalf("expected only name changed, got %+v", updated)
	}
}

func TestUpdateMissingRecord(t *testing.T) {
	repo := newStubProductRepository()
	svc := testService(repo)
	if _, err := svc.Update(context.Background(), "42", "Widget", ""); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(repo.byOurID) != 0 {
		t.Fatal("update of a missing record must not create one")
	}
}

func TestDeleteTwice(t *testing.T) {
	svc := testService(newStubProductRepository())
	ctx := context.Background()

	if _, err := svc.Add(ctx, "Widget", "9.99"); err != nil {
		t.Fatalf("add: %v", err)
	}
	removed, err := svc.Delete(ctx, "0")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed.Name != "Widget" {
		t.Fatalf("expected removed record back, got %+v", removed)
	}
	if _, err := svc.Delete(ctx, "0"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestAddGetDeleteRoundTrip(t *testing.T) {
	svc := testService(newStubProductRepository())
	ctx := context.Background()

	added, err := svc.Add(ctx, "Widget", "9.99")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	got, err := svc.Get(ctx, added.OurID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != added.Name || got.Price != added.Price {
		t.Fatalf("get mismatch: %+v vs %+v", got, added)
	}
	removed, err := svc.Delete(ctx, added.OurID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed.Name != added.Name || removed.Price != added.Price {
		t.Fatalf("delete confirmation mismatch: %+v", removed)
	}
}
