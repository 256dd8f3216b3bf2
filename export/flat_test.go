package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/gorcmap/correlation"
)

func TestExtract_MatrixShape(t *testing.T) {
	for _, tax := range correlation.Variants() {
		t.Run(string(tax.ID()), func(t *testing.T) {
			table, err := Extract(tax.ID(), FlatMatrix)
			require.NoError(t, err)

			require.Len(t, table.Header, correlation.StageCount+1)
			assert.Equal(t, "GORC_Category", table.Header[0])
			for i, st := range correlation.Stages() {
				assert.Equal(t, string(st), table.Header[i+1])
			}

			assert.Len(t, table.Rows, tax.Matrix().Len())
			for i, cat := range tax.Matrix().Categories() {
				row := table.Rows[i]
				require.Len(t, row, correlation.StageCount+1)
				assert.Equal(t, string(cat), row[0])
				for j, st := range correlation.Stages() {
					assert.Equal(t, tax.Matrix().Cell(cat, st).Marker.String(), row[j+1])
				}
			}
		})
	}
}

func TestExtract_RevisedDataRepositories(t *testing.T) {
	table, err := Extract(correlation.TaxonomyRevised, FlatMatrix)
	require.NoError(t, err)

	col := func(name string) int {
		for i, h := range table.Header {
			if h == name {
				return i
			}
		}
		t.Fatalf("column %s not found", name)
		return -1
	}

	var row []string
	for _, r := range table.Rows {
		if r[0] == "Data Repositories" {
			row = r
		}
	}
	require.NotNil(t, row)
	assert.Equal(t, "XX", row[col("STORE")])
	assert.Equal(t, "", row[col("CONCEPTUALIZE")])
}

func TestExtract_OriginalSummaryAccess(t *testing.T) {
	table, err := Extract(correlation.TaxonomyOriginal, FlatSummary)
	require.NoError(t, err)

	assert.Equal(t, []string{"MaLDReTH_Stage", "Primary_Services", "Secondary_Services"}, table.Header)
	require.Len(t, table.Rows, correlation.StageCount)

	access := table.Rows[9]
	assert.Equal(t, []string{
		"ACCESS",
		"Research Object Repositories, Discovery Services",
		"Commons Catalogues, PID Services, Vocabulary Services, AAI, Helpdesk",
	}, access)
}

func TestExtract_InvalidKind(t *testing.T) {
	_, err := Extract(correlation.TaxonomyOriginal, "findings")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidExportKind)
	assert.True(t, IsClientError(err))

	_, err = Extract("bogus", FlatMatrix)
	assert.ErrorIs(t, err, ErrInvalidTaxonomy)
}

func TestTable_WriteCSV(t *testing.T) {
	table := &Table{
		Header: []string{"name", "labels"},
		Rows: [][]string{
			{"plain", ""},
			{"Security and Identification Services (AAI)", "A, B"},
			{`say "hi"`, "x"},
		},
	}

	data, err := table.CSV()
	require.NoError(t, err)
	assert.Equal(t,
		"name,labels\n"+
			"plain,\n"+
			"Security and Identification Services (AAI),\"A, B\"\n"+
			"\"say \"\"hi\"\"\",x\n",
		string(data))
}

func TestTable_CSVRoundTrip(t *testing.T) {
	for _, kind := range []FlatKind{FlatMatrix, FlatSummary} {
		t.Run(string(kind), func(t *testing.T) {
			table, err := Extract(correlation.TaxonomyRevised, kind)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, table.WriteCSV(&buf))

			records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
			require.NoError(t, err)
			require.Len(t, records, len(table.Rows)+1)
			assert.Equal(t, table.Header, records[0])
			assert.Equal(t, table.Rows, records[1:])
		})
	}
}
