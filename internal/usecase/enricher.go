package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bomlens/bomlens/internal/domain"
	"github.com/bomlens/bomlens/internal/logger"
	"github.com/bomlens/bomlens/internal/metrics"
)

// partResolver is the slice of Resolver the batch loop depends on.
type partResolver interface {
	Resolve(ctx context.Context, mpn, descriptor string) (domain.ResolvedMatch, error)
}

// Enricher drives the resolution loop over every row of a BOM table.
type Enricher struct {
	resolver partResolver
	throttle Throttler
	log      logger.Logger
}

// NewEnricher creates a batch enricher. A nil throttle disables pacing.
func NewEnricher(resolver partResolver, throttle Throttler, log logger.Logger) *Enricher {
	if throttle == nil {
		throttle = &FixedCadence{}
	}
	return &Enricher{
		resolver: resolver,
		throttle: throttle,
		log:      log,
	}
}

// Enrich processes rows strictly in input order and returns one enriched row
// per input row. Row-level resolution failures degrade only that row's status
// field; the only errors returned are context cancellation.
func (e *Enricher) Enrich(ctx context.Context, schema domain.Schema, rows []domain.LineItem) ([]domain.EnrichedRow, error) {
	start := time.Now()
	defer func() {
		metrics.BatchDuration.Observe(time.Since(start).Seconds())
	}()

	out := make([]domain.EnrichedRow, 0, len(rows))
	for i, row := range rows {
		e.log.Info("processing row", map[string]interface{}{
			"row":       i + 1,
			"rows":      len(rows),
			"reference": schema.References(row),
		})

		qty, qtyKnown := e.quantity(schema, row, i)
		identifier := e.identifier(schema, row)
		value := strings.TrimSpace(schema.Value(row))

		match, err := e.resolver.Resolve(ctx, identifier, value)
		if err != nil {
			return nil, err
		}

		enriched := domain.EnrichedRow{
			Item:             row,
			UnitPrice:        domain.PriceUnresolved,
			ExtendedPrice:    domain.PriceUnresolved,
			MouserPartNumber: match.MouserPartNumber,
			Packaging:        match.Packaging,
			Status:           match.Status,
		}
		if match.PriceKnown {
			enriched.UnitPrice = fmt.Sprintf("$%.2f", match.UnitPrice)
			if qtyKnown {
				enriched.ExtendedPrice = fmt.Sprintf("$%.2f", match.UnitPrice*float64(qty))
			}
		}
		out = append(out, enriched)
		metrics.RowsProcessed.WithLabelValues(match.Status).Inc()

		if err := e.throttle.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// quantity determines the required quantity for a row: the explicit Qty cell
// when present and parseable, otherwise the count of non-empty comma-separated
// reference designators. When neither source exists the row is flagged and
// quantity stays unknown rather than silently defaulting.
func (e *Enricher) quantity(schema domain.Schema, row domain.LineItem, idx int) (int, bool) {
	if schema.HasExplicitQty() {
		raw := strings.TrimSpace(schema.Quantity(row))
		if raw != "" {
			qty, err := strconv.Atoi(raw)
			if err == nil && qty >= 0 {
				return qty, true
			}
			e.log.Warn("unparseable quantity, falling back to reference count", map[string]interface{}{
				"row": idx + 1,
				"qty": raw,
			})
		}
	}

	if schema.HasReferences() {
		return countDesignators(schema.References(row)), true
	}

	e.log.Warn("row has no quantity source (no Qty or Reference column)", map[string]interface{}{
		"row": idx + 1,
	})
	return 0, false
}

// identifier picks the manufacturer part number when the schema carries one;
// schemas without an MPN column encode the part number in the Value field.
func (e *Enricher) identifier(schema domain.Schema, row domain.LineItem) string {
	if schema.HasExplicitMPN() {
		return strings.TrimSpace(schema.MPN(row))
	}
	return strings.TrimSpace(schema.Value(row))
}

// countDesignators counts the non-empty trimmed tokens in a comma-separated
// reference designator list ("R1, R2, R3" -> 3).
func countDesignators(refs string) int {
	n := 0
	for _, tok := range strings.Split(refs, ",") {
		if strings.TrimSpace(tok) != "" {
			n++
		}
	}
	return n
}
