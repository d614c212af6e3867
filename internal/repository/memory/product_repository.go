// Package memory provides in-process implementations of the repository contracts.
// They back handler and service tests and local runs without a database.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"barcode-scanner/internal/domain"
	"barcode-scanner/internal/repository"
)

// ProductRepository is an in-memory implementation of repository.ProductRepository.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[int64]*domain.Product
	nextID   int64
	now      func() time.Time
}

// NewProductRepository creates an empty in-memory product repository.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: make(map[int64]*domain.Product),
		nextID:   1,
		now:      time.Now,
	}
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

func clone(p *domain.Product) *domain.Product {
	c := *p
	return &c
}

// snapshot returns copies of the products matching keep, sorted by less
func (r *ProductRepository) snapshot(keep func(*domain.Product) bool, less func(a, b *domain.Product) bool) []*domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*domain.Product{}
	for _, p := range r.products {
		if keep(p) {
			out = append(out, clone(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func byName(a, b *domain.Product) bool {
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.ID < b.ID
}

func byExpiry(a, b *domain.Product) bool {
	if c := a.ExpDate.Compare(b.ExpDate); c != 0 {
		return c < 0
	}
	return a.ID < b.ID
}

func (r *ProductRepository) GetByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.Barcode == barcode {
			return clone(p), nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return clone(p), nil
}

// List returns all products, newest first.
func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	return r.snapshot(
		func(*domain.Product) bool { return true },
		func(a, b *domain.Product) bool {
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.ID > b.ID
		},
	), nil
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.Barcode == product.Barcode {
			return repository.ErrProductAlreadyExists
		}
	}

	now := r.now()
	product.ID = r.nextID
	product.CreatedAt = now
	product.UpdatedAt = now
	r.nextID++
	r.products[product.ID] = clone(product)
	return nil
}

// Update replaces every mutable field; the barcode and creation time are kept.
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.ID]
	if !ok {
		return repository.ErrProductNotFound
	}

	product.Barcode = existing.Barcode
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = r.now()
	r.products[product.ID] = clone(product)
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *ProductRepository) Search(ctx context.Context, term string) ([]*domain.Product, error) {
	needle := strings.ToLower(term)
	return r.snapshot(func(p *domain.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Brand), needle)
	}, byName), nil
}

func (r *ProductRepository) ListByBrand(ctx context.Context, brand string) ([]*domain.Product, error) {
	return r.snapshot(func(p *domain.Product) bool { return p.Brand == brand }, byName), nil
}

func (r *ProductRepository) ListExpired(ctx context.Context, today domain.Date) ([]*domain.Product, error) {
	return r.snapshot(func(p *domain.Product) bool {
		return p.ExpDate.Valid && p.ExpDate.Before(today)
	}, byExpiry), nil
}

func (r *ProductRepository) ListExpiringSoon(ctx context.Context, today domain.Date, days int) ([]*domain.Product, error) {
	until := today.AddDays(days)
	return r.snapshot(func(p *domain.Product) bool {
		return p.ExpDate.Valid && !p.ExpDate.Before(today) && !until.Before(p.ExpDate)
	}, byExpiry), nil
}

// Clear removes every product.
func (r *ProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = make(map[int64]*domain.Product)
}
