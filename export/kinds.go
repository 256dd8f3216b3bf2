package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/c360studio/gorcmap/correlation"
)

// Kind identifies an export artifact type.
type Kind string

const (
	// KindWorkbook produces the styled three-sheet XLSX workbook.
	KindWorkbook Kind = "workbook"

	// KindMatrixCSV produces the marker matrix as CSV.
	KindMatrixCSV Kind = "matrix-csv"

	// KindSummaryCSV produces the stage concentration table as CSV.
	KindSummaryCSV Kind = "summary-csv"
)

// filenameRoot starts every suggested filename.
const filenameRoot = "GORC_MaLDReTH"

// KindInfo provides metadata about an export kind.
type KindInfo struct {
	// Name is the kind identifier.
	Name Kind

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Label is the filename segment naming the artifact.
	Label string

	// TimestampPattern is a strftime pattern embedded in the filename.
	TimestampPattern string

	// Flat is the extractor shape for CSV kinds; empty for the workbook.
	Flat FlatKind

	// Description describes the kind.
	Description string
}

// KindRegistry contains metadata for all supported export kinds.
var KindRegistry = map[Kind]KindInfo{
	KindWorkbook: {
		Name:             KindWorkbook,
		MIMEType:         "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Extension:        ".xlsx",
		Label:            "Correlation",
		TimestampPattern: "%Y%m%d_%H%M%S",
		Description:      "Styled workbook with matrix, summary and findings sheets",
	},
	KindMatrixCSV: {
		Name:             KindMatrixCSV,
		MIMEType:         "text/csv",
		Extension:        ".csv",
		Label:            "Matrix",
		TimestampPattern: "%Y%m%d",
		Flat:             FlatMatrix,
		Description:      "Category by stage markers, descriptions dropped",
	},
	KindSummaryCSV: {
		Name:             KindSummaryCSV,
		MIMEType:         "text/csv",
		Extension:        ".csv",
		Label:            "Summary",
		TimestampPattern: "%Y%m%d",
		Flat:             FlatSummary,
		Description:      "Primary and secondary services per stage",
	},
}

// Kinds returns all export kinds in display order.
func Kinds() []Kind {
	return []Kind{KindWorkbook, KindMatrixCSV, KindSummaryCSV}
}

// GetKindInfo returns metadata for a kind.
func GetKindInfo(kind Kind) (KindInfo, bool) {
	info, ok := KindRegistry[kind]
	return info, ok
}

// ParseKind resolves an export kind selector.
func ParseKind(s string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := KindRegistry[kind]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidExportKind, s)
	}
	return kind, nil
}

// CSVKind resolves the sheet name used by the CSV download route
// ("matrix" or "summary") to its export kind.
func CSVKind(sheet string) (Kind, error) {
	switch FlatKind(strings.ToLower(strings.TrimSpace(sheet))) {
	case FlatMatrix:
		return KindMatrixCSV, nil
	case FlatSummary:
		return KindSummaryCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidExportKind, sheet)
	}
}

// Filename suggests a download name for an artifact of this kind generated at t.
// Revised-taxonomy artifacts carry a "_Revised" segment.
func (info KindInfo) Filename(id correlation.TaxonomyID, t time.Time) (string, error) {
	stamp, err := strftime.Format(info.TimestampPattern, t)
	if err != nil {
		return "", fmt.Errorf("format timestamp: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(filenameRoot)
	if id == correlation.TaxonomyRevised {
		sb.WriteString("_Revised")
	}
	sb.WriteString("_")
	sb.WriteString(info.Label)
	sb.WriteString("_")
	sb.WriteString(stamp)
	sb.WriteString(info.Extension)
	return sb.String(), nil
}
