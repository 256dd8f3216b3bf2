// Package correlation holds the GORC-MaLDReTH correlation model: the MaLDReTH
// lifecycle stages, the GORC service categories of each taxonomy variant, and
// the per-(category, stage) correlation cells that relate them.
//
// Every value in this package is built once at package initialization and is
// never mutated afterwards. Accessors hand out copies, so concurrent readers
// need no locking.
package correlation

import (
	"fmt"
	"strings"
)

// Stage is a MaLDReTH research data lifecycle stage.
type Stage string

// Lifecycle stages in their canonical order.
const (
	StageConceptualize Stage = "CONCEPTUALIZE"
	StagePlan          Stage = "PLAN"
	StageCollect       Stage = "COLLECT"
	StageProcess       Stage = "PROCESS"
	StageAnalyse       Stage = "ANALYSE"
	StageStore         Stage = "STORE"
	StagePublish       Stage = "PUBLISH"
	StagePreserve      Stage = "PRESERVE"
	StageShare         Stage = "SHARE"
	StageAccess        Stage = "ACCESS"
	StageTransform     Stage = "TRANSFORM"
)

// stageOrder defines column order everywhere a matrix is rendered.
var stageOrder = [...]Stage{
	StageConceptualize,
	StagePlan,
	StageCollect,
	StageProcess,
	StageAnalyse,
	StageStore,
	StagePublish,
	StagePreserve,
	StageShare,
	StageAccess,
	StageTransform,
}

// Stages returns the lifecycle stages in canonical order.
func Stages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder[:])
	return out
}

// StageCount is the number of lifecycle stages shared by all taxonomies.
const StageCount = len(stageOrder)

// ParseStage resolves a stage name case-insensitively.
func ParseStage(s string) (Stage, bool) {
	want := Stage(strings.ToUpper(strings.TrimSpace(s)))
	for _, st := range stageOrder {
		if st == want {
			return st, true
		}
	}
	return "", false
}

// Category is a GORC service category, identified by its display name.
type Category string

// Marker is the strength of a category/stage correlation.
type Marker uint8

const (
	// MarkerNone means no direct correlation.
	MarkerNone Marker = iota
	// MarkerStandard means the service supports the stage ("X").
	MarkerStandard
	// MarkerStrong means the service is critical for the stage ("XX").
	MarkerStrong
)

// String returns the serialized marker text: "", "X" or "XX".
func (m Marker) String() string {
	switch m {
	case MarkerStandard:
		return "X"
	case MarkerStrong:
		return "XX"
	default:
		return ""
	}
}

// ParseMarker maps marker text to a Marker. Unknown text yields MarkerNone
// with ok=false so that malformed data degrades instead of failing.
func ParseMarker(s string) (m Marker, ok bool) {
	switch strings.TrimSpace(s) {
	case "":
		return MarkerNone, true
	case "X":
		return MarkerStandard, true
	case "XX":
		return MarkerStrong, true
	default:
		return MarkerNone, false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Marker) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Marker) UnmarshalText(text []byte) error {
	parsed, ok := ParseMarker(string(text))
	if !ok {
		return fmt.Errorf("unknown marker %q", string(text))
	}
	*m = parsed
	return nil
}

// Cell is one correlation entry of a matrix.
type Cell struct {
	Marker      Marker
	Description string
}

// Concentration lists the curated primary and secondary service-group labels
// for a stage. Labels are free text and need not name a Category.
type Concentration struct {
	Primary   []string
	Secondary []string
}

func (c Concentration) clone() Concentration {
	return Concentration{
		Primary:   append([]string(nil), c.Primary...),
		Secondary: append([]string(nil), c.Secondary...),
	}
}

// Note is a labelled piece of curated narrative.
type Note struct {
	Label string
	Text  string
}

// LegendEntry explains one marker value.
type LegendEntry struct {
	Marker Marker
	// Label is the text shown for the marker, e.g. "(empty)" for MarkerNone.
	Label string
	Text  string
}

// Narrative is authored text that accompanies a taxonomy. It is maintained by
// hand and is not derived from the matrix.
type Narrative struct {
	CrossCutting []Note
	Findings     []Note
	Legend       []LegendEntry
}

func (n Narrative) clone() Narrative {
	return Narrative{
		CrossCutting: append([]Note(nil), n.CrossCutting...),
		Findings:     append([]Note(nil), n.Findings...),
		Legend:       append([]LegendEntry(nil), n.Legend...),
	}
}
