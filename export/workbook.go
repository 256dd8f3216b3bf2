package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/c360studio/gorcmap/correlation"
)

// Sheet names, in workbook order.
const (
	SheetMatrix   = "Correlation Matrix"
	SheetSummary  = "Analysis Summary"
	SheetFindings = "Key Findings"
)

// sheetBuilder populates exactly one sheet of a workbook.
type sheetBuilder struct {
	name  string
	build func(wb *workbook, t *correlation.Taxonomy) error
}

// sheetOrder is part of the workbook contract: consumers address sheets by
// position, so the matrix sheet stays first and active.
var sheetOrder = []sheetBuilder{
	{name: SheetMatrix, build: buildMatrixSheet},
	{name: SheetSummary, build: buildSummarySheet},
	{name: SheetFindings, build: buildFindingsSheet},
}

// SheetNames returns the workbook sheet names in order.
func SheetNames() []string {
	names := make([]string, 0, len(sheetOrder))
	for _, b := range sheetOrder {
		names = append(names, b.name)
	}
	return names
}

// Compose builds the workbook for a taxonomy and serializes it to a buffer.
func (e *Engine) Compose(id correlation.TaxonomyID) (*bytes.Buffer, error) {
	t, err := lookupTaxonomy(id)
	if err != nil {
		return nil, err
	}
	return e.compose(t, e.now())
}

func (e *Engine) compose(t *correlation.Taxonomy, generated time.Time) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			e.logger.Warn("Failed to release workbook", "error", err)
		}
	}()

	wb := &workbook{
		file:          f,
		styles:        make(map[string]int),
		commentAuthor: e.commentAuthor,
		generated:     generated,
	}

	defaultSheet := f.GetSheetName(0)
	for i, b := range sheetOrder {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, b.name); err != nil {
				return nil, fmt.Errorf("%w: rename %q sheet: %w", ErrCompositionFailure, b.name, err)
			}
		} else if _, err := f.NewSheet(b.name); err != nil {
			return nil, fmt.Errorf("%w: create %q sheet: %w", ErrCompositionFailure, b.name, err)
		}
		if err := b.build(wb, t); err != nil {
			return nil, fmt.Errorf("%w: build %q sheet: %w", ErrCompositionFailure, b.name, err)
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: serialize workbook: %w", ErrCompositionFailure, err)
	}
	return buf, nil
}

// workbook is the per-invocation state shared by the sheet builders.
type workbook struct {
	file          *excelize.File
	styles        map[string]int
	commentAuthor string
	generated     time.Time
}

// style registers def under name on first use and returns its style ID.
func (wb *workbook) style(name string, def func() *excelize.Style) (int, error) {
	if id, ok := wb.styles[name]; ok {
		return id, nil
	}
	id, err := wb.file.NewStyle(def())
	if err != nil {
		return 0, fmt.Errorf("style %s: %w", name, err)
	}
	wb.styles[name] = id
	return id, nil
}

// set writes value at 1-based (col, row) and applies styleID when non-zero.
func (wb *workbook) set(sheet string, col, row int, value any, styleID int) (string, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	if err := wb.file.SetCellValue(sheet, cell, value); err != nil {
		return "", err
	}
	if styleID != 0 {
		if err := wb.file.SetCellStyle(sheet, cell, cell, styleID); err != nil {
			return "", err
		}
	}
	return cell, nil
}

// setNamed writes value with a named style.
func (wb *workbook) setNamed(sheet string, col, row int, value any, name string, def func() *excelize.Style) error {
	id, err := wb.style(name, def)
	if err != nil {
		return err
	}
	_, err = wb.set(sheet, col, row, value, id)
	return err
}

// widths sets column widths; keys are column letters.
func (wb *workbook) widths(sheet string, cols map[string]float64) error {
	for col, w := range cols {
		if err := wb.file.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}
	return nil
}

// Named styles.

func headerStyle() *excelize.Style {
	return &excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{colorHeaderFill}},
		Font:      &excelize.Font{Bold: true, Size: 11, Color: colorHeaderFont},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	}
}

func tableHeaderStyle() *excelize.Style {
	return &excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{colorHeaderFill}},
		Font: &excelize.Font{Bold: true, Size: 11, Color: colorHeaderFont},
	}
}

func subheaderStyle() *excelize.Style {
	return &excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{colorSubheaderFill}},
		Font:      &excelize.Font{Bold: true, Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true},
	}
}

func titleStyle(size float64) func() *excelize.Style {
	return func() *excelize.Style {
		return &excelize.Style{Font: &excelize.Font{Bold: true, Size: size}}
	}
}

func boldStyle() *excelize.Style {
	return &excelize.Style{Font: &excelize.Font{Bold: true}}
}

func italicStyle() *excelize.Style {
	return &excelize.Style{Font: &excelize.Font{Italic: true}}
}

func markerFontStyle(color string) func() *excelize.Style {
	return func() *excelize.Style {
		return &excelize.Style{Font: &excelize.Font{Bold: true, Color: color}}
	}
}

func thinBorders() []excelize.Border {
	borders := make([]excelize.Border, 0, 4)
	for _, side := range []string{"left", "right", "top", "bottom"} {
		borders = append(borders, excelize.Border{Type: side, Color: colorBorder, Style: 1})
	}
	return borders
}

// dataCellStyle translates a resolved CellStyle into a workbook style.
func dataCellStyle(cs CellStyle) func() *excelize.Style {
	return func() *excelize.Style {
		s := &excelize.Style{
			Border:    thinBorders(),
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		}
		if cs.Fill != "" {
			s.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{cs.Fill}}
		}
		if cs.FontColor != "" || cs.Bold {
			s.Font = &excelize.Font{Bold: cs.Bold, Color: cs.FontColor}
		}
		return s
	}
}

func dataCellStyleName(cs CellStyle) string {
	return fmt.Sprintf("data:%s:%s:%t", cs.Fill, cs.FontColor, cs.Bold)
}
