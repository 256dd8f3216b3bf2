package export

import (
	"strings"

	"github.com/lestrrat-go/strftime"
	"github.com/xuri/excelize/v2"

	"github.com/c360studio/gorcmap/correlation"
)

// Fixed sheet text.
const (
	matrixCorner        = "GORC Categories"
	crossCuttingTitle   = "Cross-Cutting GORC Services"
	concentrationsTitle = "Stage-Specific Service Concentrations"
	findingsTitle       = "Key Findings"
	legendTitle         = "Correlation Matrix Legend"
	generatedLabel      = "Generated:"
	generatedPattern    = "%Y-%m-%d %H:%M:%S"

	// DefaultCommentAuthor signs the cell annotations.
	DefaultCommentAuthor = "GORC-MaLDReTH Tool"

	// labelSeparator joins concentration labels into one cell.
	labelSeparator = ", "
)

var concentrationHeaders = []string{"MaLDReTH Stage", "Primary GORC Services", "Secondary GORC Services"}

// buildMatrixSheet writes the category by stage grid. Row 1 holds the stage
// headers; each following row is one category with its styled markers.
func buildMatrixSheet(wb *workbook, t *correlation.Taxonomy) error {
	const sheet = SheetMatrix
	stages := correlation.Stages()

	if _, err := wb.set(sheet, 1, 1, matrixCorner, 0); err != nil {
		return err
	}
	for i, st := range stages {
		if err := wb.setNamed(sheet, i+2, 1, string(st), "header", headerStyle); err != nil {
			return err
		}
	}

	m := t.Matrix()
	for r, cat := range m.Categories() {
		row := r + 2
		if err := wb.setNamed(sheet, 1, row, string(cat), "subheader", subheaderStyle); err != nil {
			return err
		}
		for i, st := range stages {
			if err := wb.writeMatrixCell(sheet, i+2, row, m.Cell(cat, st)); err != nil {
				return err
			}
		}
	}

	cols := map[string]float64{"A": 35}
	for i := range stages {
		name, err := excelize.ColumnNumberToName(i + 2)
		if err != nil {
			return err
		}
		cols[name] = 15
	}
	return wb.widths(sheet, cols)
}

func (wb *workbook) writeMatrixCell(sheet string, col, row int, cell correlation.Cell) error {
	cs := ResolveStyle(cell)
	id, err := wb.style(dataCellStyleName(cs), dataCellStyle(cs))
	if err != nil {
		return err
	}
	ref, err := wb.set(sheet, col, row, cell.Marker.String(), id)
	if err != nil {
		return err
	}
	if !cs.Annotated() {
		return nil
	}
	return wb.file.AddComment(sheet, excelize.Comment{
		Author: wb.commentAuthor,
		Cell:   ref,
		Text:   cs.Annotation,
	})
}

// buildSummarySheet writes the curated cross-cutting notes followed by the
// per-stage concentration table.
func buildSummarySheet(wb *workbook, t *correlation.Taxonomy) error {
	const sheet = SheetSummary
	narrative := t.Narrative()

	row := 1
	if err := wb.setNamed(sheet, 1, row, crossCuttingTitle, "title14", titleStyle(14)); err != nil {
		return err
	}
	row += 2

	if err := wb.writeNotes(sheet, row, narrative.CrossCutting); err != nil {
		return err
	}
	row += len(narrative.CrossCutting) + 2

	if err := wb.setNamed(sheet, 1, row, concentrationsTitle, "title14", titleStyle(14)); err != nil {
		return err
	}
	row += 2

	for i, h := range concentrationHeaders {
		if err := wb.setNamed(sheet, i+1, row, h, "tableHeader", tableHeaderStyle); err != nil {
			return err
		}
	}
	row++

	for _, st := range correlation.Stages() {
		c := t.Concentration(st)
		values := []string{string(st), strings.Join(c.Primary, labelSeparator), strings.Join(c.Secondary, labelSeparator)}
		for i, v := range values {
			if _, err := wb.set(sheet, i+1, row, v, 0); err != nil {
				return err
			}
		}
		row++
	}

	return wb.widths(sheet, map[string]float64{"A": 25, "B": 50, "C": 50})
}

// buildFindingsSheet writes the curated findings, the marker legend and the
// generation timestamp.
func buildFindingsSheet(wb *workbook, t *correlation.Taxonomy) error {
	const sheet = SheetFindings
	narrative := t.Narrative()

	row := 1
	if err := wb.setNamed(sheet, 1, row, findingsTitle, "title14", titleStyle(14)); err != nil {
		return err
	}
	row += 2

	if err := wb.writeNotes(sheet, row, narrative.Findings); err != nil {
		return err
	}
	row += len(narrative.Findings) + 3

	if err := wb.setNamed(sheet, 1, row, legendTitle, "title12", titleStyle(12)); err != nil {
		return err
	}
	row++

	for _, entry := range narrative.Legend {
		if err := wb.writeLegendEntry(sheet, row, entry); err != nil {
			return err
		}
		row++
	}
	row += 2

	stamp, err := strftime.Format(generatedPattern, wb.generated)
	if err != nil {
		return err
	}
	if err := wb.setNamed(sheet, 1, row, generatedLabel, "italic", italicStyle); err != nil {
		return err
	}
	if _, err := wb.set(sheet, 2, row, stamp, 0); err != nil {
		return err
	}

	return wb.widths(sheet, map[string]float64{"A": 30, "B": 80})
}

// writeNotes writes one note per row: bold label in A, text in B.
func (wb *workbook) writeNotes(sheet string, row int, notes []correlation.Note) error {
	for i, n := range notes {
		if err := wb.setNamed(sheet, 1, row+i, n.Label, "bold", boldStyle); err != nil {
			return err
		}
		if _, err := wb.set(sheet, 2, row+i, n.Text, 0); err != nil {
			return err
		}
	}
	return nil
}

func (wb *workbook) writeLegendEntry(sheet string, row int, entry correlation.LegendEntry) error {
	cs := ResolveStyle(correlation.Cell{Marker: entry.Marker})
	var err error
	if cs.FontColor != "" {
		err = wb.setNamed(sheet, 1, row, entry.Label, "legend:"+cs.FontColor, markerFontStyle(cs.FontColor))
	} else {
		_, err = wb.set(sheet, 1, row, entry.Label, 0)
	}
	if err != nil {
		return err
	}
	_, err = wb.set(sheet, 2, row, entry.Text, 0)
	return err
}
