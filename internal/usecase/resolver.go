package usecase

import (
	"context"
	"strings"

	"github.com/bomlens/bomlens/internal/domain"
	"github.com/bomlens/bomlens/internal/infrastructure/mouser"
	"github.com/bomlens/bomlens/internal/logger"
)

// Resolver turns one line item into a resolved catalog match.
// Flow: normalize descriptor -> keyword search -> select best candidate.
type Resolver struct {
	catalog    domain.CatalogClient
	normalizer *Normalizer
	selector   *Selector
	log        logger.Logger
}

// NewResolver creates a part resolver backed by the given catalog client.
func NewResolver(catalog domain.CatalogClient, log logger.Logger) *Resolver {
	return &Resolver{
		catalog:    catalog,
		normalizer: NewNormalizer(),
		selector:   NewSelector(),
		log:        log,
	}
}

// Resolve resolves a single line item to a price, catalog part number and
// packaging, with exactly one status label. An empty descriptor short-circuits
// without touching the network.
//
// The manufacturer part number is accepted but the current strategy always
// searches by descriptor; an mpn-first exact lookup (SearchByPartNumber) is a
// known gap in the strategy, kept as-is deliberately.
func (r *Resolver) Resolve(ctx context.Context, mpn, descriptor string) (domain.ResolvedMatch, error) {
	_ = mpn

	if strings.TrimSpace(descriptor) == "" {
		return domain.ResolvedMatch{Status: domain.StatusNoValue}, nil
	}

	term := r.normalizer.Normalize(descriptor)
	if term != descriptor {
		r.log.Debug("descriptor normalized", map[string]interface{}{
			"descriptor": descriptor,
			"term":       term,
		})
	}

	resp, err := r.catalog.SearchByKeyword(ctx, term)
	if err != nil {
		return domain.ResolvedMatch{}, err
	}

	if best := r.selector.Select(resp.Parts()); best != nil && len(best.PriceBreaks) > 0 {
		if price, perr := mouser.ParsePrice(best.PriceBreaks[0].Price); perr == nil {
			return domain.ResolvedMatch{
				UnitPrice:        price,
				PriceKnown:       true,
				MouserPartNumber: best.MouserPartNumber,
				Packaging:        best.Packaging,
				Status:           domain.StatusFoundByKeyword,
			}, nil
		}
	}

	return domain.ResolvedMatch{Status: domain.StatusNotFound}, nil
}
