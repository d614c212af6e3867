package domain

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// Freshness holds the read-time expiry fields. Exactly one of the day counters is set
// when the product has an expiry date; neither is set otherwise.
type Freshness struct {
	IsExpired    bool `json:"isExpired"`
	DaysToExpiry *int `json:"daysToExpiry,omitempty"`
	DaysExpired  *int `json:"daysExpired,omitempty"`
}

// ComputeFreshness compares the expiry date (midnight in now's location) against now.
// Partial days round up.
func ComputeFreshness(exp Date, now time.Time) Freshness {
	if !exp.Valid {
		return Freshness{}
	}

	expiry := exp.In(now.Location())
	if expiry.Before(now) {
		n := ceilDays(now.Sub(expiry))
		return Freshness{IsExpired: true, DaysExpired: &n}
	}

	n := ceilDays(expiry.Sub(now))
	return Freshness{DaysToExpiry: &n}
}

// ExpiringFreshness reports a product listed as expiring soon. A product expiring today is
// still listed as not expired with zero days left, whatever the time of day.
func ExpiringFreshness(exp Date, now time.Time) Freshness {
	if !exp.Valid {
		return Freshness{}
	}
	n := ceilDays(exp.In(now.Location()).Sub(now))
	return Freshness{DaysToExpiry: &n}
}

// ExpiredFreshness reports a product listed as expired.
func ExpiredFreshness(exp Date, now time.Time) Freshness {
	if !exp.Valid {
		return Freshness{IsExpired: true}
	}
	n := ceilDays(now.Sub(exp.In(now.Location())))
	return Freshness{IsExpired: true, DaysExpired: &n}
}

func ceilDays(d time.Duration) int {
	return int(math.Ceil(float64(d) / float64(day)))
}

// EnrichedProduct is a product rendered with its decoded alternates and freshness
type EnrichedProduct struct {
	*Product
	Alternates []string `json:"alternates"`
	Freshness
}

// Enrich decodes alternates and computes freshness against now.
func Enrich(p *Product, now time.Time) *EnrichedProduct {
	return EnrichWith(p, ComputeFreshness(p.ExpDate, now))
}

// EnrichWith decodes alternates and attaches an already computed freshness.
func EnrichWith(p *Product, f Freshness) *EnrichedProduct {
	return &EnrichedProduct{
		Product:    p,
		Alternates: p.AlternateBarcodes(),
		Freshness:  f,
	}
}
