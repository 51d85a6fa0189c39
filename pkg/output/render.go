/*
Package output renders analysis reports as a styled table, JSON, or CSV.

The renderer depends only on the report entries; how words were found,
ranked or resolved is upstream's concern. JSON output is an ordered array
rather than a word-keyed object so the ranking survives serialization.
*/
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/gmarquesn/prolixo/internal/utils"
	"github.com/gmarquesn/prolixo/pkg/analyze"
	"github.com/gmarquesn/prolixo/pkg/syllable"
	"github.com/gmarquesn/prolixo/pkg/synonym"
)

// Format selects the output rendering.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
)

// maxSynonymsShown caps how many synonyms the table and CSV columns show.
const maxSynonymsShown = 3

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("output: unknown format %q (want table, json or csv)", s)
	}
}

// Renderer turns reports into displayable text. The syllable counter is
// used to annotate synonyms with their own counts in the table view.
type Renderer struct {
	counter *syllable.Counter
}

// NewRenderer creates a Renderer.
func NewRenderer(counter *syllable.Counter) *Renderer {
	return &Renderer{counter: counter}
}

// Render produces the report in the requested format.
func (r *Renderer) Render(report *analyze.Report, format Format) (string, error) {
	switch format {
	case FormatTable:
		return r.renderTable(report), nil
	case FormatJSON:
		return r.renderJSON(report)
	case FormatCSV:
		return r.renderCSV(report)
	default:
		return "", fmt.Errorf("output: unknown format %q", format)
	}
}

// SaveFile writes the rendered report to path.
func (r *Renderer) SaveFile(report *analyze.Report, format Format, path string) error {
	content, err := r.Render(report, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("output: saving results: %w", err)
	}
	log.Infof("Results saved to: %s", path)
	return nil
}

func (r *Renderer) renderTable(report *analyze.Report) string {
	headerStyle := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	wordStyle := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
	numStyle := lipgloss.NewStyle().Align(lipgloss.Right)

	headers := []string{"WORD", "SYLLABLES", "COUNT"}
	if report.WithSynonyms {
		headers = append(headers, "SIMPLER SYNONYMS")
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return wordStyle
			case col == 1 || col == 2:
				return numStyle
			default:
				return lipgloss.NewStyle()
			}
		})

	for _, entry := range report.Entries {
		row := []string{
			entry.Word,
			strconv.Itoa(entry.Syllables),
			strconv.Itoa(entry.Frequency),
		}
		if report.WithSynonyms {
			row = append(row, r.formatSynonyms(entry))
		}
		t.Row(row...)
	}
	return t.String()
}

// formatSynonyms renders a synonym cell with per-synonym syllable counts,
// e.g. "belo(2), formoso(3)". Lookup failures are marked instead of
// silently looking like empty results.
func (r *Renderer) formatSynonyms(entry analyze.Entry) string {
	if entry.Status == synonym.StatusFailed {
		return "(lookup failed)"
	}
	if len(entry.Synonyms) == 0 {
		return "-"
	}

	shown := entry.Synonyms
	if len(shown) > maxSynonymsShown {
		shown = shown[:maxSynonymsShown]
	}
	parts := make([]string, 0, len(shown))
	for _, syn := range shown {
		if n, err := r.counter.Count(syn); err == nil {
			parts = append(parts, fmt.Sprintf("%s(%d)", syn, n))
		} else {
			parts = append(parts, syn)
		}
	}
	cell := strings.Join(parts, ", ")
	if len(entry.Synonyms) > maxSynonymsShown {
		cell += "..."
	}
	return cell
}

type jsonEntry struct {
	Word      string   `json:"word"`
	Syllables int      `json:"syllables"`
	Count     int      `json:"count"`
	Synonyms  []string `json:"synonyms"`
	Status    string   `json:"status,omitempty"`
}

func (r *Renderer) renderJSON(report *analyze.Report) (string, error) {
	rows := make([]jsonEntry, len(report.Entries))
	for i, entry := range report.Entries {
		rows[i] = jsonEntry{
			Word:      entry.Word,
			Syllables: entry.Syllables,
			Count:     entry.Frequency,
			Synonyms:  entry.Synonyms,
		}
		if rows[i].Synonyms == nil {
			rows[i].Synonyms = []string{}
		}
		if report.WithSynonyms {
			rows[i].Status = entry.Status.String()
		}
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", fmt.Errorf("output: encoding json: %w", err)
	}
	return string(data), nil
}

func (r *Renderer) renderCSV(report *analyze.Report) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"word", "syllables", "count", "synonyms"}
	if report.WithSynonyms {
		header = append(header, "status")
	}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("output: encoding csv: %w", err)
	}
	for _, entry := range report.Entries {
		row := []string{
			entry.Word,
			strconv.Itoa(entry.Syllables),
			strconv.Itoa(entry.Frequency),
			strings.Join(entry.Synonyms, "|"),
		}
		if report.WithSynonyms {
			row = append(row, entry.Status.String())
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("output: encoding csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("output: encoding csv: %w", err)
	}
	return buf.String(), nil
}

// Summary builds the closing stats block shown after the results.
func (r *Renderer) Summary(report *analyze.Report) string {
	var b strings.Builder
	b.WriteString("Summary:\n")
	fmt.Fprintf(&b, "  complex words found: %s\n", utils.FormatWithCommas(report.Complex))
	fmt.Fprintf(&b, "  total occurrences:   %s\n", utils.FormatWithCommas(report.Occurrences))
	fmt.Fprintf(&b, "  words analyzed:      %s (%s distinct)\n",
		utils.FormatWithCommas(report.TotalTokens), utils.FormatWithCommas(report.Distinct))
	fmt.Fprintf(&b, "  syllable threshold:  %d\n", report.MinSyllables)

	shown := len(report.Entries)
	if report.Offset > 0 || (report.Limit > 0 && report.Complex > shown) {
		start := report.Offset + 1
		end := report.Offset + shown
		fmt.Fprintf(&b, "  showing words %d-%d of %d\n", start, end, report.Complex)
		if next := report.Offset + shown; next < report.Complex && report.Limit > 0 {
			fmt.Fprintf(&b, "  use -offset %d to see more results\n", next)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
