package domain

// Status labels assigned to every resolved row. Exactly one per row.
const (
	StatusNoValue        = "No Value to search"
	StatusFoundByKeyword = "Found by Value keyword"
	StatusNotFound       = "Not found"
)

// PriceUnresolved is written to the price columns when no price was found.
const PriceUnresolved = "N/A"

// Output columns appended to every row, in this order.
var EnrichedColumns = []string{
	"Unit_Price",
	"Extended_Price",
	"Mouser_Part_Number",
	"Packaging",
	"Status",
}

// LineItem is one raw input row, cells in original column order.
type LineItem []string

// Schema describes where the recognized columns live in an input table.
// Detection is capability-tagged: a column index of -1 means the input
// does not carry that column and the fallback strategy applies.
type Schema struct {
	Header   []string
	ValueCol int
	RefCol   int
	QtyCol   int
	MPNCol   int
}

// HasExplicitQty reports whether the input carries its own quantity column.
func (s Schema) HasExplicitQty() bool { return s.QtyCol >= 0 }

// HasExplicitMPN reports whether the input carries a manufacturer part
// number column. When it doesn't, the Value field doubles as the part number.
func (s Schema) HasExplicitMPN() bool { return s.MPNCol >= 0 }

// HasReferences reports whether the input carries a reference designator column.
func (s Schema) HasReferences() bool { return s.RefCol >= 0 }

func (s Schema) field(row LineItem, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// Value returns the descriptor/value cell for a row.
func (s Schema) Value(row LineItem) string { return s.field(row, s.ValueCol) }

// References returns the comma-separated reference designator list for a row.
func (s Schema) References(row LineItem) string { return s.field(row, s.RefCol) }

// Quantity returns the raw explicit quantity cell for a row.
func (s Schema) Quantity(row LineItem) string { return s.field(row, s.QtyCol) }

// MPN returns the manufacturer part number cell for a row.
func (s Schema) MPN(row LineItem) string { return s.field(row, s.MPNCol) }

// ResolvedMatch is the outcome of resolving one line item against the catalog.
// Immutable once produced; merged into the output row and discarded.
type ResolvedMatch struct {
	UnitPrice        float64
	PriceKnown       bool
	MouserPartNumber string
	Packaging        string
	Status           string
}

// EnrichedRow is a line item plus the five appended output fields,
// all already formatted for CSV output.
type EnrichedRow struct {
	Item             LineItem
	UnitPrice        string
	ExtendedPrice    string
	MouserPartNumber string
	Packaging        string
	Status           string
}

// Cells returns the full output row: original cells plus the appended fields.
func (r EnrichedRow) Cells() []string {
	out := make([]string, 0, len(r.Item)+len(EnrichedColumns))
	out = append(out, r.Item...)
	return append(out, r.UnitPrice, r.ExtendedPrice, r.MouserPartNumber, r.Packaging, r.Status)
}
