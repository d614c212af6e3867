package memory

import (
	"context"
	"sync"
	"testing"

	"barcode-scanner/internal/domain"
	"barcode-scanner/internal/repository"
	"barcode-scanner/internal/repository/repositorytest"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestProductRepository(t *testing.T) {
	repositorytest.RunProductContract(t, func(t *testing.T) repository.ProductRepository {
		return NewProductRepository()
	})
}

func TestBrandRepository(t *testing.T) {
	repositorytest.RunBrandContract(t, func(t *testing.T) repository.BrandRepository {
		return NewBrandRepository()
	})
}

func TestReturnedProductsAreCopies(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	p := repositorytest.NewProduct("Butter", "Amul", 1)
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("failed to create product: %v", err)
	}
	p.Name = "changed by caller"

	got, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("failed to get product: %v", err)
	}
	got.Name = "changed again"

	again, _ := repo.GetByID(ctx, p.ID)
	if again.Name != "Butter" {
		t.Errorf("expected stored name to be unchanged, got %q", again.Name)
	}
}

func TestConcurrentCreatesAssignUniqueIDs(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Create(ctx, repositorytest.NewProduct("Item", "Brand", 1))
		}()
	}
	wg.Wait()

	all, _ := repo.List(ctx)
	seen := make(map[int64]bool)
	for _, p := range all {
		if seen[p.ID] {
			t.Fatalf("duplicate id %d", p.ID)
		}
		seen[p.ID] = true
	}
	if len(all) != 50 {
		t.Errorf("expected 50 products, got %d", len(all))
	}
}

// Property: every product is in exactly one of expired, expiring within the window, or later
func TestProperty_ExpiryListsPartitionDatedProducts(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("expired and expiring-soon lists are disjoint and complete", prop.ForAll(
		func(offsets []int, window int) bool {
			repo := NewProductRepository()
			ctx := context.Background()
			for _, off := range offsets {
				if err := repo.Create(ctx, repositorytest.NewProduct("P", "B", off)); err != nil {
					return false
				}
			}

			expired, _ := repo.ListExpired(ctx, repositorytest.Today)
			soon, _ := repo.ListExpiringSoon(ctx, repositorytest.Today, window)

			wantExpired, wantSoon := 0, 0
			for _, off := range offsets {
				switch {
				case off < 0:
					wantExpired++
				case off <= window:
					wantSoon++
				}
			}

			ids := make(map[int64]bool)
			for _, p := range append(expired, soon...) {
				if ids[p.ID] {
					return false
				}
				ids[p.ID] = true
			}
			return len(expired) == wantExpired && len(soon) == wantSoon
		},
		gen.SliceOf(gen.IntRange(-30, 30)),
		gen.IntRange(0, 14),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestClear(t *testing.T) {
	repo := NewProductRepository()
	_ = repo.Create(context.Background(), &domain.Product{Barcode: "1", Name: "a", Brand: "b"})
	repo.Clear()

	all, _ := repo.List(context.Background())
	if len(all) != 0 {
		t.Errorf("expected empty repository after Clear, got %d", len(all))
	}
}
