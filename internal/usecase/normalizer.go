package usecase

import "strings"

// rewriteRule maps a generic-category descriptor prefix to a canonical
// phrase with much better keyword-search yield than the literal designator.
type rewriteRule struct {
	prefix      string
	replacement string
}

// connectorRules is a hand-curated rule set, not a general parser of
// electrical descriptors. KiCAD generic connector designators like
// "Conn_01x04_Pin" return nothing useful as a keyword, so they are rewritten
// to the phrase distributors actually index.
var connectorRules = []rewriteRule{
	{prefix: "Conn_", replacement: "2.54mm pitch male header"},
}

// Normalizer rewrites ambiguous descriptors into higher-yield search terms.
type Normalizer struct{}

// NewNormalizer creates a new descriptor normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize returns the search term for a descriptor. Descriptors matching a
// recognized generic-category prefix are replaced by the canonical phrase;
// anything else passes through unchanged. Pure function, never fails.
//
// TODO: derive row and pin counts from the Conn_RRxPP designator instead of
// a fixed header phrase, so multi-row connectors search correctly.
func (n *Normalizer) Normalize(descriptor string) string {
	for _, rule := range connectorRules {
		if strings.HasPrefix(descriptor, rule.prefix) {
			return rule.replacement
		}
	}
	return descriptor
}
