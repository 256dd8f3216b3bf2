package correlation

// CellView is the JSON shape of a cell.
type CellView struct {
	Marker      string `json:"marker"`
	Description string `json:"description"`
}

// ConcentrationView is the JSON shape of a stage concentration.
type ConcentrationView struct {
	Primary   []string `json:"primary"`
	Secondary []string `json:"secondary"`
}

// View is a plain nested mapping of a taxonomy for clients that render their
// own visualization. All fields are freshly allocated.
type View struct {
	Taxonomy       string                         `json:"taxonomy"`
	Stages         []string                       `json:"stages"`
	Categories     []string                       `json:"categories"`
	Correlations   map[string]map[string]CellView `json:"correlations"`
	Concentrations map[string]ConcentrationView   `json:"concentrations"`
}

// View builds the read-only data query result for t.
func (t *Taxonomy) View() View {
	v := View{
		Taxonomy:       string(t.id),
		Stages:         make([]string, 0, StageCount),
		Categories:     make([]string, 0, t.matrix.Len()),
		Correlations:   make(map[string]map[string]CellView, t.matrix.Len()),
		Concentrations: make(map[string]ConcentrationView, StageCount),
	}
	for _, st := range stageOrder {
		v.Stages = append(v.Stages, string(st))
		c := t.concentrations.get(st)
		v.Concentrations[string(st)] = ConcentrationView{
			Primary:   nonNil(c.Primary),
			Secondary: nonNil(c.Secondary),
		}
	}
	for _, cat := range t.matrix.categories {
		v.Categories = append(v.Categories, string(cat))
		row := make(map[string]CellView, StageCount)
		for _, st := range stageOrder {
			cell := t.matrix.Cell(cat, st)
			row[string(st)] = CellView{Marker: cell.Marker.String(), Description: cell.Description}
		}
		v.Correlations[string(cat)] = row
	}
	return v
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
