package matrixapi

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/c360studio/gorcmap/correlation"
	"github.com/c360studio/gorcmap/export"
)

//go:embed templates/index.html
var templateFS embed.FS

// pageRenderer renders the interactive matrix page.
type pageRenderer struct {
	tmpl *template.Template
}

func newPageRenderer() (*pageRenderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return &pageRenderer{tmpl: tmpl}, nil
}

type pageData struct {
	Taxonomy       string
	Title          string
	Variants       []pageVariant
	Stages         []correlation.Stage
	Rows           []pageRow
	Concentrations []pageConcentration
	Narrative      correlation.Narrative
	Sheets         []string
}

type pageVariant struct {
	ID       string
	Title    string
	Selected bool
}

type pageRow struct {
	Category string
	Cells    []pageCell
}

type pageCell struct {
	Marker      string
	Description string
	Fill        string
	Font        string
	Bold        bool
}

type pageConcentration struct {
	Stage     correlation.Stage
	Primary   []string
	Secondary []string
}

// render draws t using the same cell styling as the workbook.
func (p *pageRenderer) render(t *correlation.Taxonomy) ([]byte, error) {
	m := t.Matrix()
	data := pageData{
		Taxonomy:  string(t.ID()),
		Title:     t.Title(),
		Stages:    correlation.Stages(),
		Narrative: t.Narrative(),
		Sheets:    export.SheetNames(),
	}
	for _, v := range correlation.Variants() {
		data.Variants = append(data.Variants, pageVariant{
			ID:       string(v.ID()),
			Title:    v.Title(),
			Selected: v.ID() == t.ID(),
		})
	}
	for _, cat := range m.Categories() {
		row := pageRow{Category: string(cat)}
		for _, cell := range m.Row(cat) {
			style := export.ResolveStyle(cell)
			row.Cells = append(row.Cells, pageCell{
				Marker:      cell.Marker.String(),
				Description: style.Annotation,
				Fill:        style.Fill,
				Font:        style.FontColor,
				Bold:        style.Bold,
			})
		}
		data.Rows = append(data.Rows, row)
	}
	for _, st := range data.Stages {
		c := t.Concentration(st)
		data.Concentrations = append(data.Concentrations, pageConcentration{
			Stage:     st,
			Primary:   c.Primary,
			Secondary: c.Secondary,
		})
	}

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute page template: %w", err)
	}
	return buf.Bytes(), nil
}
