package utils

import (
	"strings"
)

// SynonymFilter drops duplicate synonym candidates and the looked-up word
// itself while preserving candidate order.
type SynonymFilter struct {
	seenWords map[string]bool
	inputWord string
}

// NewSynonymFilter creates a filter that excludes the given input word
func NewSynonymFilter(input string) *SynonymFilter {
	seenWords := make(map[string]bool)
	lowerInput := strings.ToLower(input)
	seenWords[lowerInput] = true

	return &SynonymFilter{
		seenWords: seenWords,
		inputWord: lowerInput,
	}
}

// ShouldInclude checks if a candidate should be included in results.
// Returns true the first time a word is seen, false for duplicates
// and for the input word.
func (f *SynonymFilter) ShouldInclude(word string) bool {
	lowerWord := strings.ToLower(word)
	if f.seenWords[lowerWord] {
		return false
	}
	f.seenWords[lowerWord] = true
	return true
}
