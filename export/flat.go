package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/c360studio/gorcmap/correlation"
)

// FlatKind is the row/column shape of a flat extract.
type FlatKind string

const (
	// FlatMatrix has one row per category and one marker column per stage.
	FlatMatrix FlatKind = "matrix"

	// FlatSummary has one row per stage with joined concentration labels.
	FlatSummary FlatKind = "summary"
)

// Column headers of the flat extracts.
const (
	columnCategory  = "GORC_Category"
	columnStage     = "MaLDReTH_Stage"
	columnPrimary   = "Primary_Services"
	columnSecondary = "Secondary_Services"
)

// Table is a header plus rows of text fields.
type Table struct {
	Header []string
	Rows   [][]string
}

// Extract projects a taxonomy into the requested flat shape.
func Extract(id correlation.TaxonomyID, kind FlatKind) (*Table, error) {
	t, err := lookupTaxonomy(id)
	if err != nil {
		return nil, err
	}
	return extract(t, kind)
}

func extract(t *correlation.Taxonomy, kind FlatKind) (*Table, error) {
	switch kind {
	case FlatMatrix:
		return matrixTable(t), nil
	case FlatSummary:
		return summaryTable(t), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidExportKind, string(kind))
	}
}

// matrixTable keeps markers only; CSV has no channel for descriptions.
func matrixTable(t *correlation.Taxonomy) *Table {
	stages := correlation.Stages()
	m := t.Matrix()

	header := make([]string, 0, len(stages)+1)
	header = append(header, columnCategory)
	for _, st := range stages {
		header = append(header, string(st))
	}

	rows := make([][]string, 0, m.Len())
	for _, cat := range m.Categories() {
		row := make([]string, 0, len(stages)+1)
		row = append(row, string(cat))
		for _, cell := range m.Row(cat) {
			row = append(row, cell.Marker.String())
		}
		rows = append(rows, row)
	}
	return &Table{Header: header, Rows: rows}
}

func summaryTable(t *correlation.Taxonomy) *Table {
	stages := correlation.Stages()
	rows := make([][]string, 0, len(stages))
	for _, st := range stages {
		c := t.Concentration(st)
		rows = append(rows, []string{
			string(st),
			strings.Join(c.Primary, labelSeparator),
			strings.Join(c.Secondary, labelSeparator),
		})
	}
	return &Table{
		Header: []string{columnStage, columnPrimary, columnSecondary},
		Rows:   rows,
	}
}

// WriteCSV writes the header and rows as comma-separated UTF-8 text.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// CSV returns the table serialized by WriteCSV.
func (t *Table) CSV() ([]byte, error) {
	var buf bytes.Buffer
	if err := t.WriteCSV(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
