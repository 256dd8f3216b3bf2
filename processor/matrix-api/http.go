package matrixapi

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/c360studio/gorcmap/correlation"
	"github.com/c360studio/gorcmap/export"
)

// Client-facing error messages.
const (
	msgNotFound         = "Resource not found"
	msgMethodNotAllowed = "Method not allowed"
	msgInvalidTaxonomy  = "Invalid taxonomy"
	msgInvalidSheet     = "Invalid sheet type"
	msgDataFailed       = "Failed to retrieve correlation data"
	msgExcelFailed      = "Failed to generate Excel file"
	msgCSVFailed        = "Failed to generate CSV file"
)

// taxonomyParam is the query parameter selecting the taxonomy.
const taxonomyParam = "taxonomy"

// RegisterHTTPHandlers registers all matrix-api HTTP handlers under the given prefix.
// An empty prefix mounts them at the root. Handlers are registered as:
//
//	GET <prefix>/
//	GET <prefix>/api/correlation-data
//	GET <prefix>/api/taxonomies
//	GET <prefix>/export/excel
//	GET <prefix>/export/csv/{kind}
//	GET <prefix>/health
//	GET <prefix>/metrics
func (c *Component) RegisterHTTPHandlers(prefix string, mux *http.ServeMux) {
	// Normalise: ensure leading slash and trailing slash.
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix = prefix + "/"
	}

	mux.HandleFunc(prefix, c.handleIndex)
	mux.HandleFunc(prefix+"api/correlation-data", c.handleCorrelationData)
	mux.HandleFunc(prefix+"api/taxonomies", c.handleTaxonomies)
	mux.HandleFunc(prefix+"export/excel", c.handleExportExcel)
	mux.HandleFunc(prefix+"export/csv/{kind}", c.handleExportCSV)
	mux.HandleFunc(prefix+"health", c.handleHealth)
	mux.Handle(prefix+"metrics", allowGet(c.metrics.handler()))
}

// ----------------------------------------------------------------------------
// GET /
// ----------------------------------------------------------------------------

// handleIndex renders the interactive matrix page. It is also the catch-all
// route, so every unmatched path ends here as a 404.
func (c *Component) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != r.Pattern {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}
	if !requireGet(w, r) {
		return
	}

	t, ok := c.taxonomy(w, r)
	if !ok {
		return
	}

	body, err := c.page.render(t)
	if err != nil {
		c.logger.Error("Page rendering failed",
			"request_id", requestID(r.Context()),
			"taxonomy", t.ID(),
			"error", err)
		writeError(w, http.StatusInternalServerError, msgDataFailed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// ----------------------------------------------------------------------------
// GET /api/correlation-data
// ----------------------------------------------------------------------------

// handleCorrelationData returns the JSON data view of one taxonomy.
func (c *Component) handleCorrelationData(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	t, ok := c.taxonomy(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, t.View())
}

// ----------------------------------------------------------------------------
// GET /api/taxonomies
// ----------------------------------------------------------------------------

// TaxonomySummary describes one available taxonomy.
type TaxonomySummary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Categories int    `json:"categories"`
	Stages     int    `json:"stages"`
	Default    bool   `json:"default"`
}

// handleTaxonomies lists the available taxonomies.
func (c *Component) handleTaxonomies(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	variants := correlation.Variants()
	out := make([]TaxonomySummary, 0, len(variants))
	for _, t := range variants {
		out = append(out, TaxonomySummary{
			ID:         string(t.ID()),
			Title:      t.Title(),
			Categories: t.Matrix().Len(),
			Stages:     correlation.StageCount,
			Default:    t.ID() == c.config.DefaultTaxonomy,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// ----------------------------------------------------------------------------
// GET /export/excel, GET /export/csv/{kind}
// ----------------------------------------------------------------------------

// handleExportExcel streams the three-sheet workbook.
func (c *Component) handleExportExcel(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	c.export(w, r, export.KindWorkbook, msgExcelFailed)
}

// handleExportCSV streams one flat extract. Only "matrix" and "summary" are
// valid sheet types.
func (c *Component) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	kind, err := export.CSVKind(r.PathValue("kind"))
	if err != nil {
		c.metrics.observe("invalid", "", outcomeClientError, 0, 0)
		writeError(w, http.StatusBadRequest, msgInvalidSheet)
		return
	}
	c.export(w, r, kind, msgCSVFailed)
}

// export runs the engine and writes the artifact as an attachment.
func (c *Component) export(w http.ResponseWriter, r *http.Request, kind export.Kind, failure string) {
	start := time.Now()
	raw := r.URL.Query().Get(taxonomyParam)

	id, err := c.taxonomyID(raw)
	if err == nil {
		var art *export.Artifact
		art, err = c.engine.Export(r.Context(), export.Request{Taxonomy: id, Kind: kind})
		if err == nil {
			elapsed := time.Since(start)
			c.metrics.observe(kind, string(art.Taxonomy), outcomeSuccess, elapsed, len(art.Data))
			c.logger.Info("Export served",
				"request_id", requestID(r.Context()),
				"taxonomy", art.Taxonomy,
				"kind", kind,
				"filename", art.Filename,
				"bytes", len(art.Data),
				"duration", elapsed)
			writeAttachment(w, art)
			return
		}
	}

	if export.IsClientError(err) {
		c.metrics.observe(kind, raw, outcomeClientError, 0, 0)
		writeError(w, http.StatusBadRequest, clientMessage(err))
		return
	}

	c.metrics.observe(kind, string(id), outcomeError, 0, 0)
	c.logger.Error("Export failed",
		"request_id", requestID(r.Context()),
		"taxonomy", id,
		"kind", kind,
		"error", err)
	writeError(w, http.StatusInternalServerError, failure)
}

// ----------------------------------------------------------------------------
// GET /health
// ----------------------------------------------------------------------------

// handleHealth reports the component lifecycle state. A component that is not
// running answers 503 with the same body.
func (c *Component) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	health := c.Health()
	status := http.StatusOK
	if !health.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, health)
}

// ----------------------------------------------------------------------------
// Helpers
// ----------------------------------------------------------------------------

// taxonomyID resolves the raw query value, falling back to the default.
func (c *Component) taxonomyID(raw string) (correlation.TaxonomyID, error) {
	if strings.TrimSpace(raw) == "" {
		return c.config.DefaultTaxonomy, nil
	}
	id, err := correlation.ParseTaxonomyID(raw)
	if err != nil {
		return "", errors.Join(export.ErrInvalidTaxonomy, err)
	}
	return id, nil
}

// taxonomy resolves the request's taxonomy, writing a 400 on failure.
func (c *Component) taxonomy(w http.ResponseWriter, r *http.Request) (*correlation.Taxonomy, bool) {
	id, err := c.taxonomyID(r.URL.Query().Get(taxonomyParam))
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidTaxonomy)
		return nil, false
	}
	t, err := correlation.Lookup(id)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidTaxonomy)
		return nil, false
	}
	return t, true
}

func clientMessage(err error) string {
	if errors.Is(err, export.ErrInvalidExportKind) {
		return msgInvalidSheet
	}
	return msgInvalidTaxonomy
}

// requireGet answers 405 for anything but GET and HEAD.
func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	return false
}

func allowGet(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requireGet(w, r) {
			h.ServeHTTP(w, r)
		}
	})
}

// writeAttachment sends an artifact as a download.
func writeAttachment(w http.ResponseWriter, art *export.Artifact) {
	w.Header().Set("Content-Type", art.MIMEType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": art.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(art.Data)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(art.Data)
}

// errorResponse is the JSON body of every error reply.
type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Response is already partially written on failure; nothing to report.
	_ = json.NewEncoder(w).Encode(v)
}
