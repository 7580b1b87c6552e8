// Package csvio reads and writes BOM tables, preserving column order and
// detecting which of the recognized columns (Value, Reference, Qty, MPN)
// the input schema actually carries.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bomlens/bomlens/internal/domain"
)

// Table is a parsed BOM: the raw header, the data rows in input order, and
// the detected column schema.
type Table struct {
	Header []string
	Rows   []domain.LineItem
	Schema domain.Schema
}

// Column aliases recognized during schema detection, matched after
// CleanHeader normalization. First alias hit wins per column.
var (
	valueAliases = []string{"value", "val"}
	refAliases   = []string{"reference", "references", "designator", "designators", "ref des", "refdes", "ref"}
	qtyAliases   = []string{"qty", "quantity", "qnty"}
	mpnAliases   = []string{"mpn", "manufacturer part number", "manufacturer_part_number", "mfr part #", "mfr. part #", "mfg part number", "part number", "part_number"}
)

// CleanHeader normalizes a header cell for schema matching: strips a UTF-8
// BOM (KiCAD exports utf-8-sig), trims whitespace, and lowercases.
func CleanHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ToLower(strings.TrimSpace(h))
}

// DetectSchema locates the recognized columns in a header row. A missing
// Value column is an input error; everything else is optional capability.
func DetectSchema(header []string) (domain.Schema, error) {
	s := domain.Schema{
		Header:   header,
		ValueCol: -1,
		RefCol:   -1,
		QtyCol:   -1,
		MPNCol:   -1,
	}

	find := func(aliases []string) int {
		for _, alias := range aliases {
			for i, h := range header {
				if CleanHeader(h) == alias {
					return i
				}
			}
		}
		return -1
	}

	s.ValueCol = find(valueAliases)
	s.RefCol = find(refAliases)
	s.QtyCol = find(qtyAliases)
	s.MPNCol = find(mpnAliases)

	if s.ValueCol < 0 {
		return s, fmt.Errorf("%w (header: %v)", domain.ErrNoValueColumn, header)
	}
	return s, nil
}

// Read parses a BOM CSV file. Ragged rows are tolerated; short rows simply
// lack the trailing optional columns.
func Read(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input %s: %w", path, err)
	}
	defer f.Close()

	table, err := ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// ReadFrom parses a BOM CSV from a stream.
func ReadFrom(src io.Reader) (*Table, error) {
	r := csv.NewReader(src)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, domain.ErrEmptyInput
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	schema, err := DetectSchema(header)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.LineItem, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, domain.LineItem(rec))
	}

	return &Table{Header: header, Rows: rows, Schema: schema}, nil
}

// Write emits the enriched table to path: the original header plus the five
// appended columns, one output row per input row in input order. The file is
// written to a temp sibling and renamed into place so a failed run never
// leaves a partial file at the destination.
func Write(path string, header []string, rows []domain.EnrichedRow) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating output in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := WriteTo(tmp, header, rows); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("moving output into place: %w", err)
	}
	return nil
}

// WriteTo emits the enriched table to a stream.
func WriteTo(dst io.Writer, header []string, rows []domain.EnrichedRow) error {
	outHeader := make([]string, 0, len(header)+len(domain.EnrichedColumns))
	outHeader = append(outHeader, header...)
	outHeader = append(outHeader, domain.EnrichedColumns...)

	w := csv.NewWriter(dst)
	if err := w.Write(outHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row.Cells()); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}
