// Package export renders the correlation model into downloadable artifacts:
// a styled XLSX workbook and flat CSV extracts.
//
// Every call builds its artifact from scratch; nothing is cached or shared
// between calls, so an Engine is safe for concurrent use.
package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/c360studio/gorcmap/correlation"
)

// Engine dispatches export requests to the workbook composer or the flat
// extractor.
type Engine struct {
	clock         clockwork.Clock
	location      *time.Location
	logger        *slog.Logger
	commentAuthor string
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the time source for timestamps and filenames.
func WithClock(clock clockwork.Clock) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithLocation sets the time zone used for timestamps and filenames.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.location = loc
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithCommentAuthor sets the author shown on matrix cell annotations.
func WithCommentAuthor(author string) Option {
	return func(e *Engine) {
		if author != "" {
			e.commentAuthor = author
		}
	}
}

// NewEngine creates an export engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		clock:         clockwork.NewRealClock(),
		location:      time.Local,
		logger:        slog.Default(),
		commentAuthor: DefaultCommentAuthor,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) now() time.Time {
	return e.clock.Now().In(e.location)
}

// Request selects a taxonomy and an export kind.
type Request struct {
	Taxonomy correlation.TaxonomyID
	Kind     Kind
}

// ParseRequest validates raw selectors.
func ParseRequest(taxonomy, kind string) (Request, error) {
	id, err := correlation.ParseTaxonomyID(taxonomy)
	if err != nil {
		return Request{}, fmt.Errorf("%w: %q", ErrInvalidTaxonomy, taxonomy)
	}
	k, err := ParseKind(kind)
	if err != nil {
		return Request{}, err
	}
	return Request{Taxonomy: id, Kind: k}, nil
}

// Artifact is a generated export plus its download metadata.
type Artifact struct {
	Taxonomy correlation.TaxonomyID
	Kind     Kind
	Filename string
	MIMEType string
	Data     []byte
}

// Export produces the artifact described by req.
func (e *Engine) Export(ctx context.Context, req Request) (*Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, ok := GetKindInfo(req.Kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidExportKind, string(req.Kind))
	}
	t, err := lookupTaxonomy(req.Taxonomy)
	if err != nil {
		return nil, err
	}

	generated := e.now()
	var data []byte
	if req.Kind == KindWorkbook {
		buf, err := e.compose(t, generated)
		if err != nil {
			return nil, err
		}
		data = buf.Bytes()
	} else {
		table, err := extract(t, info.Flat)
		if err != nil {
			return nil, err
		}
		if data, err = table.CSV(); err != nil {
			return nil, fmt.Errorf("%w: write csv: %w", ErrCompositionFailure, err)
		}
	}

	filename, err := info.Filename(t.ID(), generated)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompositionFailure, err)
	}

	e.logger.Debug("Export generated",
		"taxonomy", t.ID(),
		"kind", req.Kind,
		"filename", filename,
		"bytes", len(data))

	return &Artifact{
		Taxonomy: t.ID(),
		Kind:     req.Kind,
		Filename: filename,
		MIMEType: info.MIMEType,
		Data:     data,
	}, nil
}

// lookupTaxonomy converts model lookup failures into ErrInvalidTaxonomy.
func lookupTaxonomy(id correlation.TaxonomyID) (*correlation.Taxonomy, error) {
	t, err := correlation.Lookup(id)
	if errors.Is(err, correlation.ErrUnknownTaxonomy) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTaxonomy, string(id))
	}
	return t, err
}
