package mouser

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePrice converts a Mouser price string to a unit price. The API quotes
// localized currency strings ("$0.15", "0,12 €", "1.234,56 €"), so currency
// symbols and thousands separators are stripped before parsing.
func ParsePrice(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty price string")
	}

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',', r == '-':
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	// A comma is the decimal separator only when it is the last separator
	// and is followed by at most two digits ("0,12", "1.234,56"); any other
	// comma is a thousands separator ("1,234.56", "1,234").
	lastComma := strings.LastIndex(cleaned, ",")
	lastDot := strings.LastIndex(cleaned, ".")
	if lastComma > lastDot && len(cleaned)-lastComma-1 <= 2 {
		head := strings.NewReplacer(",", "", ".", "").Replace(cleaned[:lastComma])
		cleaned = head + "." + cleaned[lastComma+1:]
	} else {
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable price %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative price %q", s)
	}
	return v, nil
}
