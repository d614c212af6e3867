package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"barcode-scanner/internal/domain"
)

var (
	ErrBrandAlreadyExists = errors.New("brand already exists")
)

// BrandRepository defines the interface for brand data access
type BrandRepository interface {
	Create(ctx context.Context, brand *domain.Brand) error
	List(ctx context.Context) ([]*domain.Brand, error)
}

type brandRepository struct {
	db      *sql.DB
	timeout time.Duration
}

// NewBrandRepository creates a new instance of BrandRepository
func NewBrandRepository(db *sql.DB, queryTimeout time.Duration) BrandRepository {
	if queryTimeout <= 0 {
		queryTimeout = DefaultQueryTimeout
	}
	return &brandRepository{db: db, timeout: queryTimeout}
}

// Create inserts a new brand and fills in its ID and creation time
func (r *brandRepository) Create(ctx context.Context, brand *domain.Brand) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO brands (name, category, rating, review_count, website, country, established_year)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		brand.Name,
		brand.Category,
		brand.Rating,
		brand.ReviewCount,
		brand.Website,
		brand.Country,
		brand.EstablishedYear,
	).Scan(&brand.ID, &brand.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrBrandAlreadyExists
		}
		if isOutOfRange(err) {
			return fmt.Errorf("failed to create brand: %w", ErrValueOutOfRange)
		}
		return fmt.Errorf("failed to create brand: %w", err)
	}

	return nil
}

// List retrieves all brands ordered by name
func (r *brandRepository) List(ctx context.Context) ([]*domain.Brand, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT id, name, category, rating, review_count, website, country, established_year, created_at
		FROM brands
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	defer rows.Close()

	brands := []*domain.Brand{}
	for rows.Next() {
		brand := &domain.Brand{}
		err := rows.Scan(
			&brand.ID,
			&brand.Name,
			&brand.Category,
			&brand.Rating,
			&brand.ReviewCount,
			&brand.Website,
			&brand.Country,
			&brand.EstablishedYear,
			&brand.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		brands = append(brands, brand)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating brands: %w", err)
	}

	return brands, nil
}
