package correlation

import "fmt"

// Matrix maps every Category of one taxonomy to a Cell per Stage.
type Matrix struct {
	categories []Category
	cells      map[Category]map[Stage]Cell
}

// categoryDecl is one row of a compiled-in matrix declaration. Stages that are
// absent from cells default to an empty cell.
type categoryDecl struct {
	name  Category
	cells map[Stage]Cell
}

func x(description string) Cell  { return Cell{Marker: MarkerStandard, Description: description} }
func xx(description string) Cell { return Cell{Marker: MarkerStrong, Description: description} }

// newMatrix materializes a complete matrix from declarations, filling every
// missing (category, stage) pair with an empty cell.
func newMatrix(decls []categoryDecl) (*Matrix, error) {
	m := &Matrix{
		categories: make([]Category, 0, len(decls)),
		cells:      make(map[Category]map[Stage]Cell, len(decls)),
	}
	for _, d := range decls {
		if _, dup := m.cells[d.name]; dup {
			return nil, fmt.Errorf("duplicate category %q", d.name)
		}
		row := make(map[Stage]Cell, StageCount)
		for _, st := range stageOrder {
			row[st] = Cell{}
		}
		for st, cell := range d.cells {
			if _, known := row[st]; !known {
				return nil, fmt.Errorf("category %q: unknown stage %q", d.name, st)
			}
			row[st] = cell
		}
		m.categories = append(m.categories, d.name)
		m.cells[d.name] = row
	}
	return m, nil
}

// Categories returns the categories in row order.
func (m *Matrix) Categories() []Category {
	return append([]Category(nil), m.categories...)
}

// Len returns the number of categories.
func (m *Matrix) Len() int {
	return len(m.categories)
}

// HasCategory reports whether c is a row of the matrix.
func (m *Matrix) HasCategory(c Category) bool {
	_, ok := m.cells[c]
	return ok
}

// Cell returns the cell for (c, s), or an empty cell when the pair is unknown.
func (m *Matrix) Cell(c Category, s Stage) Cell {
	return m.cells[c][s]
}

// Row returns the cells of c in stage order.
func (m *Matrix) Row(c Category) []Cell {
	row := make([]Cell, 0, StageCount)
	for _, st := range stageOrder {
		row = append(row, m.Cell(c, st))
	}
	return row
}

// Issue is a data-quality warning about a single cell.
type Issue struct {
	Category Category
	Stage    Stage
	Problem  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s/%s: %s", i.Category, i.Stage, i.Problem)
}

// Lint reports cells whose description presence disagrees with their marker.
// Such cells are still exported; the findings are warnings only.
func (m *Matrix) Lint() []Issue {
	var issues []Issue
	for _, c := range m.categories {
		for _, st := range stageOrder {
			cell := m.cells[c][st]
			switch {
			case cell.Marker == MarkerNone && cell.Description != "":
				issues = append(issues, Issue{Category: c, Stage: st, Problem: "description without marker"})
			case cell.Marker != MarkerNone && cell.Description == "":
				issues = append(issues, Issue{Category: c, Stage: st, Problem: "marker without description"})
			}
		}
	}
	return issues
}

// concentrationTable maps stages to their curated service concentration.
type concentrationTable map[Stage]Concentration

// get returns a copy of the entry for s; absent stages yield empty lists.
func (ct concentrationTable) get(s Stage) Concentration {
	return ct[s].clone()
}
