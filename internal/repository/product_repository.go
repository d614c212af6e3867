package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"barcode-scanner/internal/domain"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrProductAlreadyExists = errors.New("product with this barcode already exists")
)

// DefaultQueryTimeout bounds every statement when no timeout is configured
const DefaultQueryTimeout = 5 * time.Second

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetByBarcode(ctx context.Context, barcode string) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, term string) ([]*domain.Product, error)
	ListByBrand(ctx context.Context, brand string) ([]*domain.Product, error)
	ListExpired(ctx context.Context, today domain.Date) ([]*domain.Product, error)
	ListExpiringSoon(ctx context.Context, today domain.Date, days int) ([]*domain.Product, error)
}

const productColumns = `
	id, barcode, name, brand, description, mfg_date, exp_date, mrp, brand_rating, brand_review,
	calories, carbohydrates, protein, fat, sugar, fiber, sodium, vitamins, minerals,
	category, subcategory, weight, volume, ingredients, allergens,
	json_alternates, created_at, updated_at`

type productRepository struct {
	db      *sql.DB
	timeout time.Duration
}

// NewProductRepository creates a new instance of ProductRepository.
// Every statement runs under queryTimeout.
func NewProductRepository(db *sql.DB, queryTimeout time.Duration) ProductRepository {
	if queryTimeout <= 0 {
		queryTimeout = DefaultQueryTimeout
	}
	return &productRepository{db: db, timeout: queryTimeout}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	p := &domain.Product{}
	err := row.Scan(
		&p.ID,
		&p.Barcode,
		&p.Name,
		&p.Brand,
		&p.Description,
		&p.MfgDate,
		&p.ExpDate,
		&p.MRP,
		&p.BrandRating,
		&p.BrandReview,
		&p.Calories,
		&p.Carbohydrates,
		&p.Protein,
		&p.Fat,
		&p.Sugar,
		&p.Fiber,
		&p.Sodium,
		&p.Vitamins,
		&p.Minerals,
		&p.Category,
		&p.Subcategory,
		&p.Weight,
		&p.Volume,
		&p.Ingredients,
		&p.Allergens,
		&p.AlternatesJSON,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// mutableValues lists the columns written by both insert and update, in column order
func mutableValues(p *domain.Product) []any {
	return []any{
		p.Name,
		p.Brand,
		p.Description,
		p.MfgDate,
		p.ExpDate,
		p.MRP,
		p.BrandRating,
		p.BrandReview,
		p.Calories,
		p.Carbohydrates,
		p.Protein,
		p.Fat,
		p.Sugar,
		p.Fiber,
		p.Sodium,
		p.Vitamins,
		p.Minerals,
		p.Category,
		p.Subcategory,
		p.Weight,
		p.Volume,
		p.Ingredients,
		p.Allergens,
		p.AlternatesJSON,
	}
}

func (r *productRepository) findOne(ctx context.Context, where string, arg any) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE ` + where

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (r *productRepository) findMany(ctx context.Context, what, query string, args ...any) ([]*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", what, err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByBarcode retrieves a product by its barcode
func (r *productRepository) GetByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	product, err := r.findOne(ctx, "barcode = $1", barcode)
	if err != nil && !errors.Is(err, ErrProductNotFound) {
		return nil, fmt.Errorf("failed to find product by barcode: %w", err)
	}
	return product, err
}

// GetByID retrieves a product by its surrogate ID
func (r *productRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := r.findOne(ctx, "id = $1", id)
	if err != nil && !errors.Is(err, ErrProductNotFound) {
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return product, err
}

// List retrieves all products, newest first
func (r *productRepository) List(ctx context.Context) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC, id DESC`
	return r.findMany(ctx, "list products", query)
}

// Create inserts a new product and fills in its ID and timestamps
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO products (
			barcode, name, brand, description, mfg_date, exp_date, mrp, brand_rating, brand_review,
			calories, carbohydrates, protein, fat, sugar, fiber, sodium, vitamins, minerals,
			category, subcategory, weight, volume, ingredients, allergens, json_alternates
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23, $24, $25)
		RETURNING id, created_at, updated_at
	`

	args := append([]any{product.Barcode}, mutableValues(product)...)

	err := r.db.QueryRowContext(ctx, query, args...).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrProductAlreadyExists
		}
		if isOutOfRange(err) {
			return fmt.Errorf("failed to create product: %w", ErrValueOutOfRange)
		}
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// Update overwrites every mutable column of the product identified by product.ID.
// Nil optional fields are stored as NULL.
func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		UPDATE products SET
			name = $1, brand = $2, description = $3, mfg_date = $4, exp_date = $5, mrp = $6,
			brand_rating = $7, brand_review = $8, calories = $9, carbohydrates = $10, protein = $11,
			fat = $12, sugar = $13, fiber = $14, sodium = $15, vitamins = $16, minerals = $17,
			category = $18, subcategory = $19, weight = $20, volume = $21, ingredients = $22,
			allergens = $23, json_alternates = $24
		WHERE id = $25
		RETURNING barcode, created_at, updated_at
	`

	args := append(mutableValues(product), product.ID)

	err := r.db.QueryRowContext(ctx, query, args...).Scan(&product.Barcode, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProductNotFound
		}
		if isOutOfRange(err) {
			return fmt.Errorf("failed to update product: %w", ErrValueOutOfRange)
		}
		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

// Delete removes a product; nutrition facts and reviews cascade
func (r *productRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Search matches the term as a case-insensitive substring of name or brand
func (r *productRepository) Search(ctx context.Context, term string) ([]*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE name ILIKE $1 ESCAPE '\' OR brand ILIKE $1 ESCAPE '\'
		ORDER BY name, id
	`
	return r.findMany(ctx, "search products", query, "%"+escapeLike(term)+"%")
}

// ListByBrand retrieves products whose brand equals brand exactly
func (r *productRepository) ListByBrand(ctx context.Context, brand string) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE brand = $1 ORDER BY name, id`
	return r.findMany(ctx, "list products by brand", query, brand)
}

// ListExpired retrieves products whose expiry date is strictly before today
func (r *productRepository) ListExpired(ctx context.Context, today domain.Date) ([]*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE exp_date < $1
		ORDER BY exp_date, id
	`
	return r.findMany(ctx, "list expired products", query, today)
}

// ListExpiringSoon retrieves products expiring between today and today+days, both inclusive
func (r *productRepository) ListExpiringSoon(ctx context.Context, today domain.Date, days int) ([]*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE exp_date BETWEEN $1 AND $2
		ORDER BY exp_date, id
	`
	return r.findMany(ctx, "list products expiring soon", query, today, today.AddDays(days))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
