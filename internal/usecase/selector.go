package usecase

import (
	"math"
	"strings"

	"github.com/bomlens/bomlens/internal/domain"
	"github.com/bomlens/bomlens/internal/infrastructure/mouser"
)

// preferredPackaging lists packaging indicators that best match low-to-mid
// volume prototyping orders. Matched case-insensitively as substrings.
var preferredPackaging = []string{"cut tape", "tray"}

// Selector picks the best catalog hit by packaging preference and price.
type Selector struct{}

// NewSelector creates a new candidate selector.
func NewSelector() *Selector {
	return &Selector{}
}

// Select returns the winning hit, or nil when hits is empty.
//
// Hits whose packaging contains a cut-tape or tray indicator form the
// preferred partition; when that partition is empty the full set is used.
// Within the chosen partition the hit with the lowest first-break unit price
// wins. A hit with no price breaks (or an unparseable first break) ranks at
// +Inf, so it only wins when every candidate does, in which case the first
// one is still returned and price resolution falls through downstream.
func (s *Selector) Select(hits []domain.CatalogPart) *domain.CatalogPart {
	if len(hits) == 0 {
		return nil
	}

	pool := hits
	var preferred []domain.CatalogPart
	for _, hit := range hits {
		if hasPreferredPackaging(hit.Packaging) {
			preferred = append(preferred, hit)
		}
	}
	if len(preferred) > 0 {
		pool = preferred
	}

	best := 0
	bestPrice := math.Inf(1)
	for i, hit := range pool {
		// Strict less-than keeps the first hit at the minimum price.
		if p := firstBreakPrice(hit); p < bestPrice {
			best = i
			bestPrice = p
		}
	}
	return &pool[best]
}

func hasPreferredPackaging(packaging string) bool {
	lower := strings.ToLower(packaging)
	for _, indicator := range preferredPackaging {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

func firstBreakPrice(hit domain.CatalogPart) float64 {
	if len(hit.PriceBreaks) == 0 {
		return math.Inf(1)
	}
	price, err := mouser.ParsePrice(hit.PriceBreaks[0].Price)
	if err != nil {
		return math.Inf(1)
	}
	return price
}
