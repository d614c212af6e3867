// Package repositorytest holds behavioural suites every repository implementation must pass.
package repositorytest

import (
	"context"
	"testing"
	"time"

	"barcode-scanner/internal/domain"
	"barcode-scanner/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// ProductFactory returns an empty product repository for a single subtest.
type ProductFactory func(t *testing.T) repository.ProductRepository

// BrandFactory returns an empty brand repository for a single subtest.
type BrandFactory func(t *testing.T) repository.BrandRepository

// Today is the fixed calendar day date queries are evaluated against.
var Today = domain.NewDate(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))

func str(s string) *string { return &s }

// NewProduct builds a product with a unique barcode expiring offset days after Today.
func NewProduct(name, brand string, offset int) *domain.Product {
	return &domain.Product{
		Barcode: "890" + uuid.NewString()[:8],
		Name:    name,
		Brand:   brand,
		ExpDate: Today.AddDays(offset),
	}
}

func names(products []*domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

// RunProductContract exercises the full ProductRepository contract.
func RunProductContract(t *testing.T, newRepo ProductFactory) {
	ctx := context.Background()

	t.Run("create assigns id and round trips every field", func(t *testing.T) {
		repo := newRepo(t)
		calories := 717
		p := &domain.Product{
			Barcode:     "8901030745649",
			Name:        "Amul Butter",
			Brand:       "Amul",
			Description: str("Pasteurized table butter"),
			MfgDate:     domain.NewDate(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)),
			ExpDate:     domain.NewDate(time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)),
			MRP:         decimal.NewNullDecimal(decimal.RequireFromString("275.50")),
			BrandRating: decimal.NewNullDecimal(decimal.RequireFromString("4.5")),
			Nutrition: domain.Nutrition{
				Calories: &calories,
				Fat:      decimal.NewNullDecimal(decimal.RequireFromString("81.00")),
				Vitamins: str("A, D"),
			},
			Category:       str("Dairy"),
			Weight:         str("500g"),
			AlternatesJSON: domain.EncodeAlternates([]string{"8901030745650", "8901030745651"}),
		}

		require.NoError(t, repo.Create(ctx, p))
		require.NotZero(t, p.ID)
		require.False(t, p.CreatedAt.IsZero())

		got, err := repo.GetByBarcode(ctx, "8901030745649")
		require.NoError(t, err)
		require.Equal(t, p.ID, got.ID)
		require.Equal(t, "Amul Butter", got.Name)
		require.Equal(t, "Pasteurized table butter", *got.Description)
		require.Equal(t, "2025-01-01", got.MfgDate.String())
		require.Equal(t, "2025-06-30", got.ExpDate.String())
		require.True(t, got.MRP.Valid)
		require.True(t, got.MRP.Decimal.Equal(decimal.RequireFromString("275.5")))
		require.Equal(t, 717, *got.Calories)
		require.True(t, got.Fat.Decimal.Equal(decimal.NewFromInt(81)))
		require.False(t, got.Protein.Valid)
		require.Nil(t, got.Subcategory)
		require.Equal(t, []string{"8901030745650", "8901030745651"}, got.AlternateBarcodes())

		byID, err := repo.GetByID(ctx, p.ID)
		require.NoError(t, err)
		require.Equal(t, p.Barcode, byID.Barcode)
	})

	t.Run("duplicate barcode is rejected", func(t *testing.T) {
		repo := newRepo(t)
		p := NewProduct("Milk", "Amul", 5)
		require.NoError(t, repo.Create(ctx, p))

		dup := NewProduct("Other Milk", "Nandini", 5)
		dup.Barcode = p.Barcode
		require.ErrorIs(t, repo.Create(ctx, dup), repository.ErrProductAlreadyExists)
	})

	t.Run("unknown barcode and id are not found", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.GetByBarcode(ctx, "0000000000000")
		require.ErrorIs(t, err, repository.ErrProductNotFound)
		_, err = repo.GetByID(ctx, 987654)
		require.ErrorIs(t, err, repository.ErrProductNotFound)
	})

	t.Run("list returns newest first", func(t *testing.T) {
		repo := newRepo(t)
		for _, n := range []string{"First", "Second", "Third"} {
			require.NoError(t, repo.Create(ctx, NewProduct(n, "Brand", 1)))
			time.Sleep(2 * time.Millisecond)
		}

		all, err := repo.List(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"Third", "Second", "First"}, names(all))
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		repo := newRepo(t)
		all, err := repo.List(ctx)
		require.NoError(t, err)
		require.NotNil(t, all)
		require.Empty(t, all)
	})

	t.Run("update overwrites fields and clears omitted ones", func(t *testing.T) {
		repo := newRepo(t)
		p := NewProduct("Curd", "Amul", 3)
		p.Description = str("Fresh curd")
		p.Weight = str("400g")
		require.NoError(t, repo.Create(ctx, p))
		barcode := p.Barcode

		update := &domain.Product{
			ID:      p.ID,
			Barcode: "ignored",
			Name:    "Curd Pouch",
			Brand:   "Amul",
			Weight:  str("1kg"),
		}
		require.NoError(t, repo.Update(ctx, update))
		require.Equal(t, barcode, update.Barcode)

		got, err := repo.GetByID(ctx, p.ID)
		require.NoError(t, err)
		require.Equal(t, "Curd Pouch", got.Name)
		require.Equal(t, barcode, got.Barcode)
		require.Equal(t, "1kg", *got.Weight)
		require.Nil(t, got.Description)
		require.False(t, got.ExpDate.Valid)
	})

	t.Run("update of unknown id is not found", func(t *testing.T) {
		repo := newRepo(t)
		err := repo.Update(ctx, &domain.Product{ID: 424242, Name: "x", Brand: "y"})
		require.ErrorIs(t, err, repository.ErrProductNotFound)
	})

	t.Run("delete removes the product once", func(t *testing.T) {
		repo := newRepo(t)
		p := NewProduct("Paneer", "Amul", 2)
		require.NoError(t, repo.Create(ctx, p))

		require.NoError(t, repo.Delete(ctx, p.ID))
		_, err := repo.GetByID(ctx, p.ID)
		require.ErrorIs(t, err, repository.ErrProductNotFound)
		require.ErrorIs(t, repo.Delete(ctx, p.ID), repository.ErrProductNotFound)
	})

	t.Run("search matches name or brand case-insensitively", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Create(ctx, NewProduct("Butter", "Amul", 1)))
		require.NoError(t, repo.Create(ctx, NewProduct("Cheese", "Britannia", 1)))
		require.NoError(t, repo.Create(ctx, NewProduct("Peanut Butter", "Sundrop", 1)))

		got, err := repo.Search(ctx, "BUTTER")
		require.NoError(t, err)
		require.Equal(t, []string{"Butter", "Peanut Butter"}, names(got))

		got, err = repo.Search(ctx, "britann")
		require.NoError(t, err)
		require.Equal(t, []string{"Cheese"}, names(got))
	})

	t.Run("search treats wildcards literally", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Create(ctx, NewProduct("Milk 100% Pure", "Amul", 1)))
		require.NoError(t, repo.Create(ctx, NewProduct("Milk Powder", "Amul", 1)))

		got, err := repo.Search(ctx, "100%")
		require.NoError(t, err)
		require.Equal(t, []string{"Milk 100% Pure"}, names(got))

		got, err = repo.Search(ctx, "_")
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("list by brand is exact", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Create(ctx, NewProduct("Ghee", "Amul", 1)))
		require.NoError(t, repo.Create(ctx, NewProduct("Butter", "Amul", 1)))
		require.NoError(t, repo.Create(ctx, NewProduct("Lassi", "amul", 1)))
		require.NoError(t, repo.Create(ctx, NewProduct("Biscuit", "Amul Foods", 1)))

		got, err := repo.ListByBrand(ctx, "Amul")
		require.NoError(t, err)
		require.Equal(t, []string{"Butter", "Ghee"}, names(got))

		got, err = repo.ListByBrand(ctx, "Nestle")
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("expired lists dates strictly before today", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Create(ctx, NewProduct("Old", "A", -3)))
		require.NoError(t, repo.Create(ctx, NewProduct("Yesterday", "A", -1)))
		require.NoError(t, repo.Create(ctx, NewProduct("Today", "A", 0)))
		require.NoError(t, repo.Create(ctx, NewProduct("Future", "A", 4)))
		undated := NewProduct("Undated", "A", 0)
		undated.ExpDate = domain.Date{}
		require.NoError(t, repo.Create(ctx, undated))

		got, err := repo.ListExpired(ctx, Today)
		require.NoError(t, err)
		require.Equal(t, []string{"Old", "Yesterday"}, names(got))
	})

	t.Run("expiring soon includes both window ends", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Create(ctx, NewProduct("Yesterday", "A", -1)))
		require.NoError(t, repo.Create(ctx, NewProduct("Week", "A", 7)))
		require.NoError(t, repo.Create(ctx, NewProduct("Today", "A", 0)))
		require.NoError(t, repo.Create(ctx, NewProduct("Two", "A", 2)))
		require.NoError(t, repo.Create(ctx, NewProduct("Eight", "A", 8)))

		got, err := repo.ListExpiringSoon(ctx, Today, 7)
		require.NoError(t, err)
		require.Equal(t, []string{"Today", "Two", "Week"}, names(got))

		got, err = repo.ListExpiringSoon(ctx, Today, 0)
		require.NoError(t, err)
		require.Equal(t, []string{"Today"}, names(got))
	})
}

// RunBrandContract exercises the full BrandRepository contract.
func RunBrandContract(t *testing.T, newRepo BrandFactory) {
	ctx := context.Background()

	t.Run("create and list ordered by name", func(t *testing.T) {
		repo := newRepo(t)
		year := 1946
		amul := &domain.Brand{
			Name:            "Amul",
			Category:        str("Dairy"),
			Rating:          decimal.NewNullDecimal(decimal.RequireFromString("4.6")),
			ReviewCount:     1200,
			Country:         str("India"),
			EstablishedYear: &year,
		}
		require.NoError(t, repo.Create(ctx, &domain.Brand{Name: "Nestle"}))
		require.NoError(t, repo.Create(ctx, amul))
		require.NotZero(t, amul.ID)

		brands, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, brands, 2)
		require.Equal(t, "Amul", brands[0].Name)
		require.Equal(t, "Nestle", brands[1].Name)
		require.Equal(t, 1200, brands[0].ReviewCount)
		require.Equal(t, 1946, *brands[0].EstablishedYear)
		require.True(t, brands[0].Rating.Decimal.Equal(decimal.RequireFromString("4.6")))
		require.Zero(t, brands[1].ReviewCount)
		require.Nil(t, brands[1].Website)
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Create(ctx, &domain.Brand{Name: "Amul"}))
		require.ErrorIs(t, repo.Create(ctx, &domain.Brand{Name: "Amul"}), repository.ErrBrandAlreadyExists)
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		repo := newRepo(t)
		brands, err := repo.List(ctx)
		require.NoError(t, err)
		require.NotNil(t, brands)
		require.Empty(t, brands)
	})
}
