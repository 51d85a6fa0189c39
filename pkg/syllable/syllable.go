/*
Package syllable divides Brazilian Portuguese words into phonetic syllables.

The engine is dictionary-free: it classifies every rune as vowel or consonant,
groups vowel runs into nuclei with a hiatus/diphthong rule table, and assigns
the consonant clusters between nuclei to a coda or an onset following standard
orthographic hyphenation. Segment is a pure function, so results for one word
never change within a process; Counter adds a memo on top for pipelines that
hit the same words repeatedly.

Accuracy targets standard Brazilian Portuguese orthography. Loanwords and
dialectal pronunciations may divide differently from careful speech; those
deviations are accepted and covered by the fixture tests.
*/
package syllable

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrEmptyWord is returned when the caller passes an empty string.
	ErrEmptyWord = errors.New("syllable: empty word")
	// ErrNotAlphabetic is returned when the word holds anything besides letters.
	ErrNotAlphabetic = errors.New("syllable: word contains non-letter characters")
)

// Division is the result of segmenting one word.
type Division struct {
	Word       string
	Syllables  []string
	Boundaries []int // rune index where each syllable after the first starts
}

// Count returns the number of syllables in the division.
func (d Division) Count() int {
	return len(d.Syllables)
}

// String renders the division with hyphens, e.g. "de-sen-vol-vi-men-to".
func (d Division) String() string {
	return strings.Join(d.Syllables, "-")
}

// span marks a half-open rune range [start, end) holding one vowel nucleus.
type span struct {
	start, end int
}

// Segment divides word into syllables and returns the division.
// The word must be non-empty and letters-only; anything else is a caller
// contract violation and fails immediately.
func Segment(word string) (Division, error) {
	runes, err := normalize(word)
	if err != nil {
		return Division{}, err
	}

	nuclei := findNuclei(runes)
	if len(nuclei) == 0 {
		// Vowel-less fragments (rare loan abbreviations) floor at one syllable.
		return Division{Word: word, Syllables: []string{string(runes)}}, nil
	}

	boundaries := splitBoundaries(runes, nuclei)
	syllables := make([]string, 0, len(boundaries)+1)
	prev := 0
	for _, b := range boundaries {
		syllables = append(syllables, string(runes[prev:b]))
		prev = b
	}
	syllables = append(syllables, string(runes[prev:]))

	return Division{Word: word, Syllables: syllables, Boundaries: boundaries}, nil
}

// Count returns only the syllable count of word.
func Count(word string) (int, error) {
	d, err := Segment(word)
	if err != nil {
		return 0, err
	}
	return d.Count(), nil
}

// normalize lowercases the word and validates the input contract.
func normalize(word string) ([]rune, error) {
	if word == "" {
		return nil, ErrEmptyWord
	}
	runes := []rune(strings.ToLower(word))
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return nil, fmt.Errorf("%w: %q", ErrNotAlphabetic, word)
		}
	}
	return runes, nil
}

// findNuclei locates every vowel nucleus in the word. Maximal vowel runs are
// walked pairwise: a hiatus verdict closes the current nucleus, a diphthong
// verdict extends it.
func findNuclei(runes []rune) []span {
	var nuclei []span
	i := 0
	for i < len(runes) {
		if !isVowel(runes[i]) {
			i++
			continue
		}
		cur := span{start: i, end: i + 1}
		for cur.end < len(runes) && isVowel(runes[cur.end]) {
			if pairIsHiatus(runes, cur.end-1, cur.end) {
				break
			}
			cur.end++
		}
		nuclei = append(nuclei, cur)
		i = cur.end
	}
	return nuclei
}

// splitBoundaries assigns the consonant cluster between each pair of nuclei.
// A single consonant opens the next syllable. Of a longer cluster, the last
// consonant (or the last two when they form an inseparable onset) opens the
// next syllable and the rest stays as coda: mons-tro, car-ro, a-brir.
func splitBoundaries(runes []rune, nuclei []span) []int {
	boundaries := make([]int, 0, len(nuclei)-1)
	for k := 1; k < len(nuclei); k++ {
		gapStart := nuclei[k-1].end
		gapEnd := nuclei[k].start
		switch gapEnd - gapStart {
		case 0:
			boundaries = append(boundaries, gapEnd)
		case 1:
			boundaries = append(boundaries, gapStart)
		default:
			onset := windowIsOnset(runes, gapEnd-2)
			if onset {
				boundaries = append(boundaries, gapEnd-2)
			} else {
				boundaries = append(boundaries, gapEnd-1)
			}
		}
	}
	return boundaries
}

// windowIsOnset reports whether the two runes starting at i form an
// inseparable onset cluster.
func windowIsOnset(runes []rune, i int) bool {
	return inseparableOnsets[[2]rune{runes[i], runes[i+1]}]
}

// Counter memoizes syllable counts per normalized word. Segmentation is
// deterministic, so a cached count is always valid for the process lifetime.
// Counter has a single owner in the analysis pipeline and is not safe for
// concurrent use.
type Counter struct {
	memo map[string]int
}

// NewCounter creates an empty memoizing counter.
func NewCounter() *Counter {
	return &Counter{memo: make(map[string]int)}
}

// Count returns the syllable count for word, computing and caching it on
// first sight.
func (c *Counter) Count(word string) (int, error) {
	key := strings.ToLower(word)
	if n, ok := c.memo[key]; ok {
		return n, nil
	}
	n, err := Count(key)
	if err != nil {
		return 0, err
	}
	c.memo[key] = n
	return n, nil
}

// Size returns how many distinct words the counter has memoized.
func (c *Counter) Size() int {
	return len(c.memo)
}
