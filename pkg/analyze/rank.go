package analyze

import (
	"sort"
)

// RankedEntry pairs a word with its syllable count and frequency.
type RankedEntry struct {
	Word      string
	Syllables int
	Frequency int
}

// RankOptions controls filtering and windowing of the ranked list.
// Zero Limit means unlimited.
type RankOptions struct {
	MinSyllables int
	Offset       int
	Limit        int
}

// Rank filters the snapshot to words with at least MinSyllables syllables
// (inclusive) and sorts by syllable count descending, then frequency
// descending. The sort is stable over first-seen text order, so exact ties
// keep the order words first appeared. Offset and Limit are applied only
// after the full sort.
func Rank(freqs *Frequencies, syllables map[string]int, opts RankOptions) []RankedEntry {
	entries := make([]RankedEntry, 0, freqs.Distinct())
	for _, word := range freqs.Words() {
		count, ok := syllables[word]
		if !ok || count < opts.MinSyllables {
			continue
		}
		entries = append(entries, RankedEntry{
			Word:      word,
			Syllables: count,
			Frequency: freqs.Count(word),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Syllables != entries[j].Syllables {
			return entries[i].Syllables > entries[j].Syllables
		}
		return entries[i].Frequency > entries[j].Frequency
	})

	if opts.Offset > 0 {
		if opts.Offset >= len(entries) {
			return []RankedEntry{}
		}
		entries = entries[opts.Offset:]
	}
	if opts.Limit > 0 && len(entries) > opts.Limit {
		entries = entries[:opts.Limit]
	}
	return entries
}
