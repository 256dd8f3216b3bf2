package export

import "errors"

// Export errors.
var (
	// ErrInvalidTaxonomy is returned for an unrecognized taxonomy selector.
	ErrInvalidTaxonomy = errors.New("invalid taxonomy")

	// ErrInvalidExportKind is returned for an unrecognized export kind.
	ErrInvalidExportKind = errors.New("invalid export kind")

	// ErrCompositionFailure is returned when the workbook or CSV writer fails.
	ErrCompositionFailure = errors.New("composition failure")
)

// IsClientError reports whether err stems from invalid caller input rather
// than a failure while producing the artifact.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidTaxonomy) || errors.Is(err, ErrInvalidExportKind)
}
