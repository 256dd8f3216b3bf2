package correlation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTaxonomy is returned for an unrecognized taxonomy selector.
var ErrUnknownTaxonomy = errors.New("unknown taxonomy")

// TaxonomyID selects one of the category groupings.
type TaxonomyID string

const (
	// TaxonomyOriginal is the nine-category GORC grouping.
	TaxonomyOriginal TaxonomyID = "original"
	// TaxonomyRevised splits research object repositories into finer
	// categories and adds quality assurance and API connection services.
	TaxonomyRevised TaxonomyID = "revised"
)

// ParseTaxonomyID resolves a selector case-insensitively.
func ParseTaxonomyID(s string) (TaxonomyID, error) {
	switch TaxonomyID(strings.ToLower(strings.TrimSpace(s))) {
	case TaxonomyOriginal:
		return TaxonomyOriginal, nil
	case TaxonomyRevised:
		return TaxonomyRevised, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTaxonomy, s)
	}
}

// Taxonomy is one complete, immutable variant of the correlation model.
type Taxonomy struct {
	id             TaxonomyID
	title          string
	matrix         *Matrix
	concentrations concentrationTable
	narrative      Narrative
}

// ID returns the taxonomy identity.
func (t *Taxonomy) ID() TaxonomyID { return t.id }

// Title returns a human-readable name of the variant.
func (t *Taxonomy) Title() string { return t.title }

// Matrix returns the correlation matrix.
func (t *Taxonomy) Matrix() *Matrix { return t.matrix }

// Concentration returns the curated service concentration for s.
func (t *Taxonomy) Concentration(s Stage) Concentration { return t.concentrations.get(s) }

// Narrative returns a copy of the curated text blocks.
func (t *Taxonomy) Narrative() Narrative { return t.narrative.clone() }

var (
	original = mustTaxonomy(TaxonomyOriginal, "Original GORC categories",
		originalCategories(), originalConcentrations(), originalNarrative())
	revised = mustTaxonomy(TaxonomyRevised, "Revised GORC categories",
		revisedCategories(), revisedConcentrations(), revisedNarrative())
)

func mustTaxonomy(id TaxonomyID, title string, decls []categoryDecl, conc concentrationTable, n Narrative) *Taxonomy {
	m, err := newMatrix(decls)
	if err != nil {
		panic(fmt.Sprintf("correlation: %s taxonomy: %v", id, err))
	}
	for st := range conc {
		if _, ok := ParseStage(string(st)); !ok {
			panic(fmt.Sprintf("correlation: %s taxonomy: concentration for unknown stage %q", id, st))
		}
	}
	return &Taxonomy{id: id, title: title, matrix: m, concentrations: conc, narrative: n}
}

// Lookup returns the taxonomy for id.
func Lookup(id TaxonomyID) (*Taxonomy, error) {
	switch id {
	case TaxonomyOriginal:
		return original, nil
	case TaxonomyRevised:
		return revised, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTaxonomy, string(id))
	}
}

// Variants returns all taxonomies in declaration order.
func Variants() []*Taxonomy {
	return []*Taxonomy{original, revised}
}
