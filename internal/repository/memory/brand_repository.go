package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"barcode-scanner/internal/domain"
	"barcode-scanner/internal/repository"
)

// BrandRepository is an in-memory implementation of repository.BrandRepository.
type BrandRepository struct {
	mu     sync.RWMutex
	brands []*domain.Brand
	nextID int64
}

// NewBrandRepository creates an empty in-memory brand repository.
func NewBrandRepository() *BrandRepository {
	return &BrandRepository{nextID: 1}
}

var _ repository.BrandRepository = (*BrandRepository)(nil)

func (r *BrandRepository) Create(ctx context.Context, brand *domain.Brand) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.brands {
		if b.Name == brand.Name {
			return repository.ErrBrandAlreadyExists
		}
	}

	brand.ID = r.nextID
	brand.CreatedAt = time.Now()
	r.nextID++

	c := *brand
	r.brands = append(r.brands, &c)
	return nil
}

func (r *BrandRepository) List(ctx context.Context) ([]*domain.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Brand, 0, len(r.brands))
	for _, b := range r.brands {
		c := *b
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
