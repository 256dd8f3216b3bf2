package export

import "github.com/c360studio/gorcmap/correlation"

// Palette, as RGB hex without a leading '#'.
const (
	colorHeaderFill    = "366092"
	colorHeaderFont    = "FFFFFF"
	colorSubheaderFill = "D9E2F3"
	colorBorder        = "000000"

	// ColorStandardFill and ColorStandardFont render "X" cells.
	ColorStandardFill = "E5F5E5"
	ColorStandardFont = "008800"

	// ColorStrongFill and ColorStrongFont render "XX" cells.
	ColorStrongFill = "FFE5E5"
	ColorStrongFont = "CC0000"
)

// CellStyle is the visual treatment of one matrix cell.
type CellStyle struct {
	// Fill is the solid background color; empty leaves the default.
	Fill string

	// FontColor is empty for the default font color.
	FontColor string

	Bold bool

	// Annotation is attached to the cell as a comment when non-empty.
	Annotation string
}

// Annotated reports whether the cell carries a comment.
func (s CellStyle) Annotated() bool {
	return s.Annotation != ""
}

// ResolveStyle maps a cell to its visual treatment. Unknown marker values are
// rendered like MarkerNone. The description is attached whenever it is
// present, even on an unmarked cell, so that no authored text is lost.
func ResolveStyle(cell correlation.Cell) CellStyle {
	style := CellStyle{Annotation: cell.Description}
	switch cell.Marker {
	case correlation.MarkerStandard:
		style.Fill = ColorStandardFill
		style.FontColor = ColorStandardFont
		style.Bold = true
	case correlation.MarkerStrong:
		style.Fill = ColorStrongFill
		style.FontColor = ColorStrongFont
		style.Bold = true
	}
	return style
}
