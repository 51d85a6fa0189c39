package output

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gmarquesn/prolixo/pkg/analyze"
	"github.com/gmarquesn/prolixo/pkg/syllable"
	"github.com/gmarquesn/prolixo/pkg/synonym"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *analyze.Report {
	return &analyze.Report{
		Entries: []analyze.Entry{
			{
				Word: "desenvolvimento", Syllables: 6, Frequency: 2,
				Synonyms: []string{"avanço", "progresso", "melhora", "evolução"},
				Status:   synonym.StatusResolved,
			},
			{
				Word: "continua", Syllables: 4, Frequency: 1,
				Status: synonym.StatusNotFound,
			},
			{
				Word: "complexo", Syllables: 3, Frequency: 1,
				Status: synonym.StatusFailed,
			},
		},
		TotalTokens:  4,
		Distinct:     3,
		Complex:      3,
		Occurrences:  4,
		MinSyllables: 3,
		WithSynonyms: true,
	}
}

func newTestRenderer() *Renderer {
	return NewRenderer(syllable.NewCounter())
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]Format{
		"table": FormatTable,
		"JSON":  FormatJSON,
		"Csv":   FormatCSV,
	} {
		got, err := ParseFormat(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestRenderJSON(t *testing.T) {
	out, err := newTestRenderer().Render(sampleReport(), FormatJSON)
	require.NoError(t, err)

	var rows []struct {
		Word      string   `json:"word"`
		Syllables int      `json:"syllables"`
		Count     int      `json:"count"`
		Synonyms  []string `json:"synonyms"`
		Status    string   `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rows))

	require.Len(t, rows, 3)
	// rank order must survive serialization
	assert.Equal(t, "desenvolvimento", rows[0].Word)
	assert.Equal(t, 6, rows[0].Syllables)
	assert.Equal(t, 2, rows[0].Count)
	assert.Equal(t, []string{"avanço", "progresso", "melhora", "evolução"}, rows[0].Synonyms)
	assert.Equal(t, "resolved", rows[0].Status)

	assert.Equal(t, "continua", rows[1].Word)
	assert.NotNil(t, rows[1].Synonyms, "synonyms must encode as [], never null")
	assert.Empty(t, rows[1].Synonyms)
	assert.Equal(t, "not_found", rows[1].Status)
	assert.Equal(t, "failed", rows[2].Status)
}

func TestRenderCSV(t *testing.T) {
	out, err := newTestRenderer().Render(sampleReport(), FormatCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 4)
	assert.Equal(t, []string{"word", "syllables", "count", "synonyms", "status"}, records[0])
	assert.Equal(t, "desenvolvimento", records[1][0])
	assert.Equal(t, "6", records[1][1])
	assert.Equal(t, "avanço|progresso|melhora|evolução", records[1][3])
	assert.Equal(t, "", records[2][3])
}

func TestRenderCSVWithoutSynonyms(t *testing.T) {
	report := sampleReport()
	report.WithSynonyms = false

	out, err := newTestRenderer().Render(report, FormatCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"word", "syllables", "count", "synonyms"}, records[0])
}

func TestRenderTable(t *testing.T) {
	out, err := newTestRenderer().Render(sampleReport(), FormatTable)
	require.NoError(t, err)

	assert.Contains(t, out, "desenvolvimento")
	assert.Contains(t, out, "SIMPLER SYNONYMS")
	// synonyms are annotated with their own syllable counts
	assert.Contains(t, out, "avanço(3)")
	// and truncated past the display cap
	assert.Contains(t, out, "...")
	assert.NotContains(t, out, "evolução")
	// resolver failure is visible, not blank
	assert.Contains(t, out, "(lookup failed)")
}

func TestRenderTableWithoutSynonymColumn(t *testing.T) {
	report := sampleReport()
	report.WithSynonyms = false

	out, err := newTestRenderer().Render(report, FormatTable)
	require.NoError(t, err)
	assert.NotContains(t, out, "SIMPLER SYNONYMS")
	assert.NotContains(t, out, "avanço")
}

func TestSummary(t *testing.T) {
	s := newTestRenderer().Summary(sampleReport())

	assert.Contains(t, s, "complex words found: 3")
	assert.Contains(t, s, "total occurrences:   4")
	assert.Contains(t, s, "syllable threshold:  3")
	assert.NotContains(t, s, "offset", "no pagination hint when everything is shown")
}

func TestSummaryPaginationHint(t *testing.T) {
	report := sampleReport()
	report.Complex = 10
	report.Offset = 3
	report.Limit = 3

	s := newTestRenderer().Summary(report)
	assert.Contains(t, s, "showing words 4-6 of 10")
	assert.Contains(t, s, "-offset 6")
}

func TestSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, newTestRenderer().SaveFile(sampleReport(), FormatJSON, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}
