// Package texttoken turns raw Portuguese text into a stream of normalized
// word tokens: lowercased, letters-only, stopwords removed, enclitic
// pronouns stripped. The token order matches the text, which downstream
// ranking relies on for stable tie-breaks.
package texttoken

import (
	"bufio"
	_ "embed"
	"os"
	"strings"
	"unicode"

	"github.com/charmbracelet/log"
)

//go:embed stopwords_pt.txt
var embeddedStopwords string

// MinWordLength is the shortest token kept by extraction. Shorter fragments
// are almost always articles, clitics or noise.
const MinWordLength = 3

// clitics are the enclitic pronoun suffixes stripped from hyphenated verb
// forms, e.g. "diga-me" -> "diga", "vendê-lo" -> "vendê".
var clitics = map[string]struct{}{
	"me": {}, "te": {}, "se": {}, "o": {}, "a": {}, "nos": {}, "vos": {},
	"lhe": {}, "lhes": {}, "lo": {}, "la": {}, "los": {}, "las": {},
	"no": {}, "na": {},
}

// Tokenizer extracts candidate words from text. The zero value is not
// usable; construct with New.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// New creates a Tokenizer with the embedded Portuguese stopword list.
func New() *Tokenizer {
	t := &Tokenizer{stopwords: make(map[string]struct{}, 256)}
	for _, w := range strings.Fields(embeddedStopwords) {
		t.stopwords[w] = struct{}{}
	}
	return t
}

// LoadStopwords merges additional stopwords from a file, one word per line.
// Lines starting with '#' are ignored.
func (t *Tokenizer) LoadStopwords(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	added := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(strings.ToLower(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if _, ok := t.stopwords[word]; !ok {
			t.stopwords[word] = struct{}{}
			added++
		}
	}
	log.Debugf("Loaded %d extra stopwords from %s", added, path)
	return scanner.Err()
}

// IsStopword reports whether the lowercased word is on the stopword list.
func (t *Tokenizer) IsStopword(word string) bool {
	_, ok := t.stopwords[strings.ToLower(word)]
	return ok
}

// Extract tokenizes text into normalized words in text order. Punctuation is
// dropped, hyphenated compounds are split, enclitic pronouns are removed,
// and stopwords and short fragments are filtered out. Diacritics are kept:
// "saúde" and "saude" are distinct words.
func (t *Tokenizer) Extract(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '-'
	})

	words := make([]string, 0, len(fields))
	for _, field := range fields {
		field = strings.Trim(field, "-")
		if field == "" {
			continue
		}
		for _, part := range strings.Split(t.stripEnclitic(field), "-") {
			if t.isValidWord(part) {
				words = append(words, part)
			}
		}
	}
	return words
}

// stripEnclitic removes a trailing clitic pronoun from a hyphenated token.
// Only the last hyphen segment is considered; compounds like
// "segunda-feira" pass through untouched.
func (t *Tokenizer) stripEnclitic(token string) string {
	idx := strings.LastIndex(token, "-")
	if idx < 0 {
		return token
	}
	prefix, suffix := token[:idx], token[idx+1:]
	if _, ok := clitics[suffix]; ok && len([]rune(prefix)) >= MinWordLength {
		return prefix
	}
	return token
}

// isValidWord applies the keep/drop filter for a single cleaned token.
func (t *Tokenizer) isValidWord(word string) bool {
	runes := []rune(word)
	if len(runes) < MinWordLength {
		return false
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	if _, ok := t.stopwords[word]; ok {
		return false
	}
	return true
}
