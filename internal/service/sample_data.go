package service

import (
	"context"
	"errors"

	"barcode-scanner/internal/domain"
	"barcode-scanner/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func sampleProducts() []*domain.Product {
	str := func(s string) *string { return &s }
	dec := func(s string) decimal.NullDecimal { return decimal.NewNullDecimal(decimal.RequireFromString(s)) }
	date := func(s string) domain.Date {
		d, _ := domain.ParseDate(s)
		return d
	}
	calories := 717

	return []*domain.Product{
		{
			Barcode:     "8901030745649",
			Name:        "Amul Butter 500g",
			Brand:       "Amul",
			Description: str("Fresh and creamy butter made from pure milk"),
			MfgDate:     date("2024-01-15"),
			ExpDate:     date("2024-07-15"),
			MRP:         dec("250.00"),
			BrandRating: dec("4.5"),
			BrandReview: str("Trusted dairy brand with excellent quality products"),
			Nutrition: domain.Nutrition{
				Calories:      &calories,
				Carbohydrates: dec("0.1"),
				Protein:       dec("0.85"),
				Fat:           dec("81.0"),
				Sugar:         dec("0"),
				Fiber:         dec("0"),
				Sodium:        dec("714"),
				Vitamins:      str("A, D"),
				Minerals:      str("Calcium"),
			},
			Category:       str("Dairy"),
			Subcategory:    str("Butter"),
			Weight:         str("500g"),
			Ingredients:    str("Milk fat"),
			Allergens:      str("Milk"),
			AlternatesJSON: domain.EncodeAlternates([]string{"8901030745650", "8901030745651"}),
		},
	}
}

// SeedSampleProducts inserts the sample catalog. Barcodes that already exist are skipped.
// It returns the number of products inserted.
func (s *catalogService) SeedSampleProducts(ctx context.Context) (int, error) {
	inserted := 0
	for _, p := range sampleProducts() {
		err := s.products.Create(ctx, p)
		switch {
		case err == nil:
			inserted++
		case errors.Is(err, repository.ErrProductAlreadyExists):
			s.logger.Debug("Sample product already present", zap.String("barcode", p.Barcode))
		default:
			return inserted, err
		}
	}

	s.logger.Info("Sample data seeded", zap.Int("inserted", inserted))
	return inserted, nil
}
