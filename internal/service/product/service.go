// Package product implements the catalog record service: validate the
// request, perform one persistence operation, return the record.
package product

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/mkline/storefront/internal/domain"
	"github.com/mkline/storefront/internal/repository"
)

// ErrMissingDetails indicates name or price was not supplied on add.
var ErrMissingDetails = errors.New("name and price are required")

// ErrNoUpdateFields indicates an update carried neither name nor price.
var ErrNoUpdateFields = errors.New("no update fields provided")

// ErrInvalidPrice indicates a price that does not parse as a finite number.
var ErrInvalidPrice = errors.New("price is not a number")

// Service handles catalog operations.
type Service struct {
	products repository.ProductRepository
	logger   *slog.Logger
}

// New constructs a Service.
func New(products repository.ProductRepository, logger *slog.Logger) Service {
	return Service{products: products, logger: logger}
}

// Add creates a record with the next sequential identifier. Price arrives as
// a string from the query layer and must parse to a finite float.
func (s Service) Add(ctx context.Context, name, price string) (*domain.Product, error) {
	if name == "" || price == "" {
		return nil, ErrMissingDetails
	}
	value, err := parsePrice(price)
	if err != nil {
		return nil, err
	}
	id, err := s.products.NextProductID(ctx)
	if err != nil {
		return nil, err
	}
	record := &domain.Product{
		OurID:     strconv.FormatInt(id, 10),
		Name:      name,
		Price:     value,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.products.CreateProduct(ctx, record); err != nil {
		return nil, err
	}
	s.logger.Info("product added", "our_id", record.OurID, "name", record.Name)
	return record, nil
}

// List returns all records.
func (s Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.ListProducts(ctx)
}

// Get returns the record with the given identifier.
func (s Service) Get(ctx context.Context, ourID string) (*domain.Product, error) {
	return s.products.GetProductByOurID(ctx, ourID)
}

// Update applies the supplied fields only and returns the post-update record.
// Empty strings mean "not supplied"; at least one field is required.
func (s Service) Update(ctx context.Context, ourID, name, price string) (*domain.Product, error) {
	if name == "" && price == "" {
		return nil, ErrNoUpdateFields
	}
	var namePtr *string
	if name != "" {
		namePtr = &name
	}
	var pricePtr *float64
	if price != "" {
		value, err := parsePrice(price)
		if err != nil {
			return nil, err
		}
		pricePtr = &value
	}
	record, err := s.products.UpdateProduct(ctx, ourID, namePtr, pricePtr)
	if err != nil {
		return nil, err
	}
	s.logger.Info("product updated", "our_id", ourID)
	return record, nil
}

// Delete removes the record and returns it as confirmation.
func (s Service) Delete(ctx context.Context, ourID string) (*domain.Product, error) {
	record, err := s.products.DeleteProduct(ctx, ourID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("product deleted", "our_id", ourID)
	return record, nil
}

// parsePrice rejects values strconv cannot parse as well as NaN and the
// infinities, which JSON responses cannot represent.
func parsePrice(raw string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, ErrInvalidPrice
	}
	return value, nil
}
