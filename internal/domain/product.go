package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry addressed by its barcode (natural key) or ID (surrogate key)
type Product struct {
	ID          int64               `json:"id" db:"id"`
	Barcode     string              `json:"barcode" db:"barcode"`
	Name        string              `json:"name" db:"name"`
	Brand       string              `json:"brand" db:"brand"`
	Description *string             `json:"description" db:"description"`
	MfgDate     Date                `json:"mfg_date" db:"mfg_date"`
	ExpDate     Date                `json:"exp_date" db:"exp_date"`
	MRP         decimal.NullDecimal `json:"mrp" db:"mrp"`
	BrandRating decimal.NullDecimal `json:"brand_rating" db:"brand_rating"`
	BrandReview *string             `json:"brand_review" db:"brand_review"`

	Nutrition

	Category    *string `json:"category" db:"category"`
	Subcategory *string `json:"subcategory" db:"subcategory"`
	Weight      *string `json:"weight" db:"weight"`
	Volume      *string `json:"volume" db:"volume"`
	Ingredients *string `json:"ingredients" db:"ingredients"`
	Allergens   *string `json:"allergens" db:"allergens"`

	// AlternatesJSON is the raw serialized alternates column, see AlternateBarcodes
	AlternatesJSON *string   `json:"json_alternates" db:"json_alternates"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// Nutrition holds the per-product nutrition columns
type Nutrition struct {
	Calories      *int                `json:"calories" db:"calories"`
	Carbohydrates decimal.NullDecimal `json:"carbohydrates" db:"carbohydrates"`
	Protein       decimal.NullDecimal `json:"protein" db:"protein"`
	Fat           decimal.NullDecimal `json:"fat" db:"fat"`
	Sugar         decimal.NullDecimal `json:"sugar" db:"sugar"`
	Fiber         decimal.NullDecimal `json:"fiber" db:"fiber"`
	Sodium        decimal.NullDecimal `json:"sodium" db:"sodium"`
	Vitamins      *string             `json:"vitamins" db:"vitamins"`
	Minerals      *string             `json:"minerals" db:"minerals"`
}

// AlternateBarcodes decodes the serialized alternates; malformed data yields an empty list.
func (p *Product) AlternateBarcodes() []string {
	if p.AlternatesJSON == nil {
		return []string{}
	}
	return DecodeAlternates(*p.AlternatesJSON)
}

// Brand is a manufacturer entry. Products reference brands by name only.
type Brand struct {
	ID              int64               `json:"id" db:"id"`
	Name            string              `json:"name" db:"name"`
	Category        *string             `json:"category" db:"category"`
	Rating          decimal.NullDecimal `json:"rating" db:"rating"`
	ReviewCount     int                 `json:"review_count" db:"review_count"`
	Website         *string             `json:"website" db:"website"`
	Country         *string             `json:"country" db:"country"`
	EstablishedYear *int                `json:"established_year" db:"established_year"`
	CreatedAt       time.Time           `json:"created_at" db:"created_at"`
}
