/*
Package analyze assembles the complex-word pipeline: tokenized text flows
through the frequency aggregator and the syllable engine into the ranker,
and optionally on to a synonym resolver. Each stage is pure and the resolver
preserves order, so a given input text always produces the same report.
*/
package analyze

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gmarquesn/prolixo/internal/logger"
	"github.com/gmarquesn/prolixo/pkg/syllable"
	"github.com/gmarquesn/prolixo/pkg/synonym"
	"github.com/gmarquesn/prolixo/pkg/texttoken"
)

// Resolver is the synonym lookup the analyzer hands ranked words to.
// *synonym.Resolver satisfies it; tests substitute fakes.
type Resolver interface {
	Resolve(ctx context.Context, words []string) []synonym.Result
}

// Entry is one row of the final report: a ranked word with its optional
// synonym annotation. This is the sole contract presenters depend on.
type Entry struct {
	Word      string
	Syllables int
	Frequency int
	Synonyms  []string
	Status    synonym.Status
}

// Report is the complete outcome of one analysis run.
type Report struct {
	Entries      []Entry
	TotalTokens  int // tokens surviving the tokenizer filter
	Distinct     int // distinct words among them
	Complex      int // words at or above the syllable threshold, pre-windowing
	Occurrences  int // total occurrences of the complex words
	MinSyllables int
	Offset       int
	Limit        int
	WithSynonyms bool
}

// Options parameterizes one Analyze call.
type Options struct {
	MinSyllables int
	Offset       int
	Limit        int
	FindSynonyms bool
}

// Analyzer wires the pipeline stages together.
type Analyzer struct {
	tokenizer *texttoken.Tokenizer
	counter   *syllable.Counter
	resolver  Resolver
	log       *log.Logger
}

// New creates an Analyzer. resolver may be nil when synonym lookups are
// disabled, in which case FindSynonyms is ignored.
func New(tokenizer *texttoken.Tokenizer, counter *syllable.Counter, resolver Resolver) *Analyzer {
	return &Analyzer{
		tokenizer: tokenizer,
		counter:   counter,
		resolver:  resolver,
		log:       logger.New("analyze"),
	}
}

// Analyze runs the full pipeline over text. An empty result is a valid
// outcome, not an error: texts with no word at the threshold produce a
// report with zero entries.
func (a *Analyzer) Analyze(ctx context.Context, text string, opts Options) (*Report, error) {
	if opts.MinSyllables < 1 {
		return nil, fmt.Errorf("analyze: min syllables must be >= 1, got %d", opts.MinSyllables)
	}

	words := a.tokenizer.Extract(text)
	freqs := Aggregate(words)
	a.log.Debugf("tokenized %d words, %d distinct", freqs.Total(), freqs.Distinct())

	counts, err := a.countSyllables(freqs)
	if err != nil {
		return nil, err
	}

	report := &Report{
		TotalTokens:  freqs.Total(),
		Distinct:     freqs.Distinct(),
		MinSyllables: opts.MinSyllables,
		Offset:       opts.Offset,
		Limit:        opts.Limit,
		WithSynonyms: opts.FindSynonyms && a.resolver != nil,
	}

	for _, word := range freqs.Words() {
		if counts[word] >= opts.MinSyllables {
			report.Complex++
			report.Occurrences += freqs.Count(word)
		}
	}

	ranked := Rank(freqs, counts, RankOptions{
		MinSyllables: opts.MinSyllables,
		Offset:       opts.Offset,
		Limit:        opts.Limit,
	})

	report.Entries = make([]Entry, len(ranked))
	for i, entry := range ranked {
		report.Entries[i] = Entry{
			Word:      entry.Word,
			Syllables: entry.Syllables,
			Frequency: entry.Frequency,
		}
	}

	if report.WithSynonyms && len(ranked) > 0 {
		rankedWords := make([]string, len(ranked))
		for i, entry := range ranked {
			rankedWords[i] = entry.Word
		}
		results := a.resolver.Resolve(ctx, rankedWords)
		// Resolver output is positionally 1:1 with its input.
		for i, res := range results {
			report.Entries[i].Synonyms = res.Synonyms
			report.Entries[i].Status = res.Status
		}
	}

	return report, nil
}

// countSyllables segments every distinct word once. The tokenizer only
// emits alphabetic words, so a segmentation error here is a caller contract
// violation and aborts the run.
func (a *Analyzer) countSyllables(freqs *Frequencies) (map[string]int, error) {
	counts := make(map[string]int, freqs.Distinct())
	for _, word := range freqs.Words() {
		n, err := a.counter.Count(word)
		if err != nil {
			return nil, fmt.Errorf("analyze: segmenting %q: %w", word, err)
		}
		counts[word] = n
	}
	return counts, nil
}
