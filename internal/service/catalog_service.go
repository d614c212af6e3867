package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"barcode-scanner/internal/config"
	"barcode-scanner/internal/domain"
	"barcode-scanner/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ValidationError reports input the caller must fix; it maps to 400
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(message string) error { return &ValidationError{Message: message} }

// IsValidationError reports whether err is, or wraps, a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// UpdateMode selects how an update treats fields omitted from the input
type UpdateMode string

const (
	// UpdateReplace overwrites every mutable field; omitted optional fields become null
	UpdateReplace UpdateMode = config.UpdateModeReplace
	// UpdateMerge leaves omitted fields unchanged
	UpdateMerge UpdateMode = config.UpdateModeMerge
)

// ParseUpdateMode returns the mode named by s, or fallback when s is empty.
func ParseUpdateMode(s string, fallback UpdateMode) (UpdateMode, error) {
	switch UpdateMode(s) {
	case "":
		return fallback, nil
	case UpdateReplace, UpdateMerge:
		return UpdateMode(s), nil
	default:
		return "", invalid(fmt.Sprintf("Unknown update mode %q", s))
	}
}

// ProductInput is the writable part of a product. Nil fields are "not supplied".
type ProductInput struct {
	Barcode       *string          `json:"barcode"`
	Name          *string          `json:"name"`
	Brand         *string          `json:"brand"`
	Description   *string          `json:"description"`
	MfgDate       *domain.Date     `json:"mfg_date" swaggertype:"string" example:"2025-01-15"`
	ExpDate       *domain.Date     `json:"exp_date" swaggertype:"string" example:"2025-07-15"`
	MRP           *decimal.Decimal `json:"mrp" swaggertype:"number"`
	BrandRating   *decimal.Decimal `json:"brand_rating" swaggertype:"number"`
	BrandReview   *string          `json:"brand_review"`
	Calories      *int             `json:"calories"`
	Carbohydrates *decimal.Decimal `json:"carbohydrates" swaggertype:"number"`
	Protein       *decimal.Decimal `json:"protein" swaggertype:"number"`
	Fat           *decimal.Decimal `json:"fat" swaggertype:"number"`
	Sugar         *decimal.Decimal `json:"sugar" swaggertype:"number"`
	Fiber         *decimal.Decimal `json:"fiber" swaggertype:"number"`
	Sodium        *decimal.Decimal `json:"sodium" swaggertype:"number"`
	Vitamins      *string          `json:"vitamins"`
	Minerals      *string          `json:"minerals"`
	Category      *string          `json:"category"`
	Subcategory   *string          `json:"subcategory"`
	Weight        *string          `json:"weight"`
	Volume        *string          `json:"volume"`
	Ingredients   *string          `json:"ingredients"`
	Allergens     *string          `json:"allergens"`
	Alternates    []string         `json:"alternates"`
}

func present(s *string) bool { return s != nil && *s != "" }

func setString(dst **string, src *string, merge bool) {
	if src != nil || !merge {
		*dst = src
	}
}

func setDecimal(dst *decimal.NullDecimal, src *decimal.Decimal, merge bool) {
	switch {
	case src != nil:
		*dst = decimal.NewNullDecimal(*src)
	case !merge:
		*dst = decimal.NullDecimal{}
	}
}

func setDate(dst *domain.Date, src *domain.Date, merge bool) {
	switch {
	case src != nil:
		*dst = *src
	case !merge:
		*dst = domain.Date{}
	}
}

// applyTo copies the input onto p. In merge mode nil fields keep p's value.
func (in *ProductInput) applyTo(p *domain.Product, merge bool) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Brand != nil {
		p.Brand = *in.Brand
	}
	setString(&p.Description, in.Description, merge)
	setDate(&p.MfgDate, in.MfgDate, merge)
	setDate(&p.ExpDate, in.ExpDate, merge)
	setDecimal(&p.MRP, in.MRP, merge)
	setDecimal(&p.BrandRating, in.BrandRating, merge)
	setString(&p.BrandReview, in.BrandReview, merge)
	if in.Calories != nil || !merge {
		p.Calories = in.Calories
	}
	setDecimal(&p.Carbohydrates, in.Carbohydrates, merge)
	setDecimal(&p.Protein, in.Protein, merge)
	setDecimal(&p.Fat, in.Fat, merge)
	setDecimal(&p.Sugar, in.Sugar, merge)
	setDecimal(&p.Fiber, in.Fiber, merge)
	setDecimal(&p.Sodium, in.Sodium, merge)
	setString(&p.Vitamins, in.Vitamins, merge)
	setString(&p.Minerals, in.Minerals, merge)
	setString(&p.Category, in.Category, merge)
	setString(&p.Subcategory, in.Subcategory, merge)
	setString(&p.Weight, in.Weight, merge)
	setString(&p.Volume, in.Volume, merge)
	setString(&p.Ingredients, in.Ingredients, merge)
	setString(&p.Allergens, in.Allergens, merge)
	if in.Alternates != nil || !merge {
		p.AlternatesJSON = domain.EncodeAlternates(in.Alternates)
	}
}

// Column limits after rounding to two decimal places
var (
	priceLimit    = decimal.NewFromInt(100_000_000)
	ratingLimit   = decimal.NewFromInt(10)
	nutrientLimit = decimal.NewFromInt(1_000)
	sodiumLimit   = decimal.NewFromInt(1_000_000)
)

func checkDecimal(field string, v *decimal.Decimal, limit decimal.Decimal) error {
	if v != nil && v.Round(2).Abs().GreaterThanOrEqual(limit) {
		return invalid(fmt.Sprintf("%s must be less than %s", field, limit))
	}
	return nil
}

// checkRanges rejects numbers the products columns cannot store
func (in *ProductInput) checkRanges() error {
	if in.Calories != nil && (*in.Calories > math.MaxInt32 || *in.Calories < math.MinInt32) {
		return invalid("calories is out of range")
	}
	checks := []struct {
		field string
		value *decimal.Decimal
		limit decimal.Decimal
	}{
		{"mrp", in.MRP, priceLimit},
		{"brand_rating", in.BrandRating, ratingLimit},
		{"carbohydrates", in.Carbohydrates, nutrientLimit},
		{"protein", in.Protein, nutrientLimit},
		{"fat", in.Fat, nutrientLimit},
		{"sugar", in.Sugar, nutrientLimit},
		{"fiber", in.Fiber, nutrientLimit},
		{"sodium", in.Sodium, sodiumLimit},
	}
	for _, c := range checks {
		if err := checkDecimal(c.field, c.value, c.limit); err != nil {
			return err
		}
	}
	return nil
}

// BrandInput is the writable part of a brand
type BrandInput struct {
	Name            string           `json:"name" validate:"required"`
	Category        *string          `json:"category"`
	Rating          *decimal.Decimal `json:"rating" swaggertype:"number"`
	ReviewCount     *int             `json:"review_count" validate:"omitempty,gte=0"`
	Website         *string          `json:"website"`
	Country         *string          `json:"country"`
	EstablishedYear *int             `json:"established_year"`
}

// CatalogService defines the product catalog business logic
type CatalogService interface {
	Scan(ctx context.Context, barcode string) (*domain.EnrichedProduct, error)
	GetByBarcode(ctx context.Context, barcode string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	CreateProduct(ctx context.Context, input *ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, input *ProductInput, mode UpdateMode) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	Search(ctx context.Context, term string) ([]*domain.Product, error)
	ListByBrand(ctx context.Context, brand string) ([]*domain.Product, error)
	ListExpired(ctx context.Context) ([]*domain.EnrichedProduct, error)
	ListExpiringSoon(ctx context.Context, days int) ([]*domain.EnrichedProduct, error)
	Alternates(ctx context.Context, id int64) ([]string, error)
	ListBrands(ctx context.Context) ([]*domain.Brand, error)
	CreateBrand(ctx context.Context, input *BrandInput) (*domain.Brand, error)
	SeedSampleProducts(ctx context.Context) (int, error)
	DefaultUpdateMode() UpdateMode
}

// Option customizes a catalog service
type Option func(*catalogService)

// WithClock replaces the wall clock, used by tests
func WithClock(now func() time.Time) Option {
	return func(s *catalogService) { s.now = now }
}

// WithLocation sets the timezone calendar days are evaluated in
func WithLocation(loc *time.Location) Option {
	return func(s *catalogService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithUpdateMode sets the mode used when a request does not name one
func WithUpdateMode(mode UpdateMode) Option {
	return func(s *catalogService) {
		if mode == UpdateMerge || mode == UpdateReplace {
			s.updateMode = mode
		}
	}
}

type catalogService struct {
	products   repository.ProductRepository
	brands     repository.BrandRepository
	logger     *zap.Logger
	now        func() time.Time
	loc        *time.Location
	updateMode UpdateMode
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(
	products repository.ProductRepository,
	brands repository.BrandRepository,
	logger *zap.Logger,
	opts ...Option,
) CatalogService {
	s := &catalogService{
		products:   products,
		brands:     brands,
		logger:     logger,
		now:        time.Now,
		loc:        time.Local,
		updateMode: UpdateReplace,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *catalogService) DefaultUpdateMode() UpdateMode { return s.updateMode }

// clock returns the current instant in the catalog timezone and its calendar day
func (s *catalogService) clock() (time.Time, domain.Date) {
	now := s.now().In(s.loc)
	return now, domain.NewDate(now)
}

// Scan looks up a product and enriches it with alternates and freshness
func (s *catalogService) Scan(ctx context.Context, barcode string) (*domain.EnrichedProduct, error) {
	if barcode == "" {
		return nil, invalid("Barcode is required")
	}

	product, err := s.products.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}

	now, _ := s.clock()
	return domain.Enrich(product, now), nil
}

func (s *catalogService) GetByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	return s.products.GetByBarcode(ctx, barcode)
}

func (s *catalogService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.products.List(ctx)
}

// CreateProduct validates and inserts a new product
func (s *catalogService) CreateProduct(ctx context.Context, input *ProductInput) (*domain.Product, error) {
	if !present(input.Barcode) || !present(input.Name) || !present(input.Brand) {
		return nil, invalid("Barcode, name, and brand are required")
	}
	if err := input.checkRanges(); err != nil {
		return nil, err
	}

	product := &domain.Product{Barcode: *input.Barcode}
	input.applyTo(product, false)

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("Product created",
		zap.Int64("id", product.ID),
		zap.String("barcode", product.Barcode),
	)
	return product, nil
}

// UpdateProduct rewrites the product identified by id. The barcode is never changed.
func (s *catalogService) UpdateProduct(ctx context.Context, id int64, input *ProductInput, mode UpdateMode) (*domain.Product, error) {
	if mode == "" {
		mode = s.updateMode
	}
	if err := input.checkRanges(); err != nil {
		return nil, err
	}

	var product *domain.Product
	switch mode {
	case UpdateReplace:
		if !present(input.Name) || !present(input.Brand) {
			return nil, invalid("Name and brand are required")
		}
		product = &domain.Product{ID: id}
	case UpdateMerge:
		if (input.Name != nil && *input.Name == "") || (input.Brand != nil && *input.Brand == "") {
			return nil, invalid("Name and brand cannot be empty")
		}
		existing, err := s.products.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		product = existing
	default:
		return nil, invalid(fmt.Sprintf("Unknown update mode %q", mode))
	}

	input.applyTo(product, mode == UpdateMerge)

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("Product updated",
		zap.Int64("id", id),
		zap.String("mode", string(mode)),
	)
	return product, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Product deleted", zap.Int64("id", id))
	return nil
}

func (s *catalogService) Search(ctx context.Context, term string) ([]*domain.Product, error) {
	if term == "" {
		return nil, invalid("Search query is required")
	}
	return s.products.Search(ctx, term)
}

func (s *catalogService) ListByBrand(ctx context.Context, brand string) ([]*domain.Product, error) {
	if brand == "" {
		return nil, invalid("Brand is required")
	}
	return s.products.ListByBrand(ctx, brand)
}

// ListExpired returns products past their expiry date, each flagged expired
func (s *catalogService) ListExpired(ctx context.Context) ([]*domain.EnrichedProduct, error) {
	now, today := s.clock()

	products, err := s.products.ListExpired(ctx, today)
	if err != nil {
		return nil, err
	}

	enriched := make([]*domain.EnrichedProduct, 0, len(products))
	for _, p := range products {
		enriched = append(enriched, domain.EnrichWith(p, domain.ExpiredFreshness(p.ExpDate, now)))
	}
	return enriched, nil
}

// ListExpiringSoon returns products expiring from today through today+days inclusive
func (s *catalogService) ListExpiringSoon(ctx context.Context, days int) ([]*domain.EnrichedProduct, error) {
	if days < 0 || days > config.MaxExpiringDays {
		return nil, invalid("Days must be a non-negative integer")
	}

	now, today := s.clock()

	products, err := s.products.ListExpiringSoon(ctx, today, days)
	if err != nil {
		return nil, err
	}

	enriched := make([]*domain.EnrichedProduct, 0, len(products))
	for _, p := range products {
		enriched = append(enriched, domain.EnrichWith(p, domain.ExpiringFreshness(p.ExpDate, now)))
	}
	return enriched, nil
}

// Alternates returns the decoded alternate barcodes of a product
func (s *catalogService) Alternates(ctx context.Context, id int64) ([]string, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return product.AlternateBarcodes(), nil
}

func (s *catalogService) ListBrands(ctx context.Context) ([]*domain.Brand, error) {
	return s.brands.List(ctx)
}

// CreateBrand validates and inserts a new brand
func (s *catalogService) CreateBrand(ctx context.Context, input *BrandInput) (*domain.Brand, error) {
	if input.Name == "" {
		return nil, invalid("Brand name is required")
	}
	if err := checkDecimal("rating", input.Rating, ratingLimit); err != nil {
		return nil, err
	}

	brand := &domain.Brand{
		Name:            input.Name,
		Category:        input.Category,
		Website:         input.Website,
		Country:         input.Country,
		EstablishedYear: input.EstablishedYear,
	}
	if input.Rating != nil {
		brand.Rating = decimal.NewNullDecimal(*input.Rating)
	}
	if input.ReviewCount != nil {
		brand.ReviewCount = *input.ReviewCount
	}

	if err := s.brands.Create(ctx, brand); err != nil {
		return nil, err
	}

	s.logger.Info("Brand created", zap.Int64("id", brand.ID), zap.String("name", brand.Name))
	return brand, nil
}
