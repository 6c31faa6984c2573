package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mkline/storefront/internal/domain"
	"github.com/mkline/storefront/internal/repository"
)

const productColumns = `our_id, name, price, an_array, an_object, created_at`

// NextProductID claims the next sequential product identifier. The returned
// value is the pre-increment counter, so the first claim yields 0.
func (r *Repository) NextProductID(ctx context.Context) (int64, error) {
	const query = `UPDATE counters SET value = value + 1 WHERE name = 'product_id' RETURNING value - 1`
	row := r.pool.QueryRow(ctx, query)
	var id int64
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errors.New("product_id counter row missing")
		}
		return 0, err
	}
	return id, nil
}

// CreateProduct inserts a catalog record.
func (r *Repository) CreateProduct(ctx context.Context, product *domain.Product) error {
	const query = `INSERT INTO products (our_id, name, price, an_array, an_object, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query,
		product.OurID,
		product.Name,
		product.Price,
		rawOrNil(product.AnArray),
		rawOrNil(product.AnObject),
		product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return err
	}
	return nil
}

// ListProducts returns all catalog records, oldest first.
func (r *Repository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetProductByOurID fetches a single record by its external identifier.
func (r *Repository) GetProductByOurID(ctx context.Context, ourID string) (*domain.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE our_id = $1`
	p, err := scanProduct(r.pool.QueryRow(ctx, query, ourID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// UpdateProduct applies only the supplied fields and returns the post-update
// record. Nil arguments leave the stored value untouched.
func (r *Repository) UpdateProduct(ctx context.Context, ourID string, name *string, price *float64) (*domain.Product, error) {
	const query = `UPDATE products
		SET name = COALESCE($2, name), price = COALESCE($3, price)
		WHERE our_id = $1
		RETURNING ` + productColumns
	p, err := scanProduct(r.pool.QueryRow(ctx, query, ourID, name, price))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// DeleteProduct removes a record and returns it as confirmation.
func (r *Repository) DeleteProduct(ctx context.Context, ourID string) (*domain.Product, error) {
	const query = `DELETE FROM products WHERE our_id = $1 RETURNING ` + productColumns
	p, err := scanProduct(r.pool.QueryRow(ctx, query, ourID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	if err := row.Scan(&p.OurID, &p.Name, &p.Price, &p.AnArray, &p.AnObject, &p.CreatedAt); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// rawOrNil maps empty raw JSON to NULL so JSONB columns never store "".
func rawOrNil(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return raw
}
