package export

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/gorcmap/correlation"
)

func TestParseRequest(t *testing.T) {
	req, err := ParseRequest("revised", "workbook")
	require.NoError(t, err)
	assert.Equal(t, Request{Taxonomy: correlation.TaxonomyRevised, Kind: KindWorkbook}, req)

	_, err = ParseRequest("bogus", "workbook")
	assert.ErrorIs(t, err, ErrInvalidTaxonomy)

	_, err = ParseRequest("original", "bogus")
	assert.ErrorIs(t, err, ErrInvalidExportKind)
}

func TestEngine_ExportWorkbook(t *testing.T) {
	art, err := newTestEngine().Export(context.Background(), Request{
		Taxonomy: correlation.TaxonomyOriginal,
		Kind:     KindWorkbook,
	})
	require.NoError(t, err)

	assert.Equal(t, "GORC_MaLDReTH_Correlation_20240305_140709.xlsx", art.Filename)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", art.MIMEType)
	assert.Equal(t, KindWorkbook, art.Kind)
	assert.Equal(t, correlation.TaxonomyOriginal, art.Taxonomy)

	f := openWorkbook(t, art.Data)
	assert.Equal(t, SheetNames(), f.GetSheetList())
}

func TestEngine_ExportCSV(t *testing.T) {
	art, err := newTestEngine().Export(context.Background(), Request{
		Taxonomy: correlation.TaxonomyRevised,
		Kind:     KindMatrixCSV,
	})
	require.NoError(t, err)

	assert.Equal(t, "GORC_MaLDReTH_Revised_Matrix_20240305.csv", art.Filename)
	assert.Equal(t, "text/csv", art.MIMEType)

	lines := strings.Split(strings.TrimSuffix(string(art.Data), "\n"), "\n")
	require.Len(t, lines, 1+14)
	assert.Equal(t, "GORC_Category,CONCEPTUALIZE,PLAN,COLLECT,PROCESS,ANALYSE,STORE,PUBLISH,PRESERVE,SHARE,ACCESS,TRANSFORM", lines[0])
	assert.Contains(t, lines, "Data Repositories,,,X,,,XX,X,X,XX,XX,")
}

func TestEngine_ExportSummaryCSV(t *testing.T) {
	art, err := newTestEngine().Export(context.Background(), Request{
		Taxonomy: correlation.TaxonomyOriginal,
		Kind:     KindSummaryCSV,
	})
	require.NoError(t, err)

	assert.Equal(t, "GORC_MaLDReTH_Summary_20240305.csv", art.Filename)
	assert.Contains(t, string(art.Data),
		"ACCESS,\"Research Object Repositories, Discovery Services\",\"Commons Catalogues, PID Services, Vocabulary Services, AAI, Helpdesk\"\n")
}

func TestEngine_ExportErrors(t *testing.T) {
	e := newTestEngine()

	_, err := e.Export(context.Background(), Request{Taxonomy: "bogus", Kind: KindWorkbook})
	assert.ErrorIs(t, err, ErrInvalidTaxonomy)

	_, err = e.Export(context.Background(), Request{Taxonomy: correlation.TaxonomyOriginal, Kind: "findings-csv"})
	assert.ErrorIs(t, err, ErrInvalidExportKind)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.Export(ctx, Request{Taxonomy: correlation.TaxonomyOriginal, Kind: KindWorkbook})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, IsClientError(err))
}

func TestEngine_WorkbookAndCSVAgree(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	wbArt, err := e.Export(ctx, Request{Taxonomy: correlation.TaxonomyRevised, Kind: KindWorkbook})
	require.NoError(t, err)
	table, err := Extract(correlation.TaxonomyRevised, FlatMatrix)
	require.NoError(t, err)

	f := openWorkbook(t, wbArt.Data)
	for r, row := range table.Rows {
		for c, marker := range row {
			assert.Equal(t, marker, cellValue(t, f, SheetMatrix, c+1, r+2))
		}
	}
}

func TestEngine_ConcurrentExports(t *testing.T) {
	engine := newTestEngine()
	ctx := context.Background()

	var reqs []Request
	for _, tax := range correlation.Variants() {
		for _, kind := range Kinds() {
			reqs = append(reqs, Request{Taxonomy: tax.ID(), Kind: kind})
		}
	}

	want := make(map[Request]*Artifact, len(reqs))
	for _, req := range reqs {
		art, err := engine.Export(ctx, req)
		require.NoError(t, err)
		want[req] = art
	}

	const rounds = 4
	type result struct {
		req Request
		art *Artifact
		err error
	}
	results := make(chan result, rounds*len(reqs))
	var wg sync.WaitGroup
	for range rounds {
		for _, req := range reqs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				art, err := engine.Export(ctx, req)
				results <- result{req, art, err}
			}()
		}
	}
	wg.Wait()
	close(results)

	for r := range results {
		require.NoError(t, r.err, "%s/%s", r.req.Taxonomy, r.req.Kind)
		base := want[r.req]
		assert.Equal(t, base.Filename, r.art.Filename)
		assert.NotEmpty(t, r.art.Data)
		if r.req.Kind == KindWorkbook {
			assert.Equal(t, SheetNames(), openWorkbook(t, r.art.Data).GetSheetList())
			continue
		}
		assert.Equal(t, string(base.Data), string(r.art.Data), "%s/%s", r.req.Taxonomy, r.req.Kind)
	}
}
