package syllable

import (
	"errors"
	"testing"
)

// Tests the division engine against standard orthographic hyphenation.

// IMPORTANT to know:
// the engine divides by spelling, not by dictionary lookup, so every case
// here must be derivable from the rule tables alone.
func TestSegment(t *testing.T) {
	testCases := []struct {
		word        string
		expected    string
		description string
	}{
		// plain CV words
		{"casa", "ca-sa", "Simple two syllable word"},
		{"palavra", "pa-la-vra", "Obstruent plus liquid onset"},
		{"complexo", "com-ple-xo", "Coda then pl onset"},

		// falling diphthongs stay together
		{"pai", "pai", "Strong plus weak is one nucleus"},
		{"não", "não", "Nasal absorbs following vowel"},
		{"coração", "co-ra-ção", "Final nasal diphthong"},
		{"fui", "fui", "Two distinct weak vowels"},
		{"ideia", "i-dei-a", "Diphthong then hiatus"},

		// rising pairs split
		{"dia", "di-a", "Weak then strong splits"},
		{"continua", "con-ti-nu-a", "Rising pair at word end"},

		// stressed í/ú force hiatus
		{"saúde", "sa-ú-de", "Stressed u anchors its own nucleus"},
		{"saída", "sa-í-da", "Stressed i anchors its own nucleus"},

		// identical vowels always split
		{"voo", "vo-o", "Identical vowel pair"},
		{"coordenar", "co-or-de-nar", "Identical pair inside longer word"},

		// u-glide after q/g fuses
		{"água", "á-gua", "Glide after g"},
		{"quota", "quo-ta", "Glide after q"},
		{"guerra", "guer-ra", "Glide after g with doubled consonant"},

		// weak vowel before nh keeps its own nucleus
		{"rainha", "ra-i-nha", "Hiatus forced before nh"},

		// consonant cluster assignment
		{"carro", "car-ro", "Doubled consonant splits"},
		{"monstro", "mons-tro", "Long cluster keeps tr onset"},
		{"abrir", "a-brir", "br cluster opens next syllable"},
		{"milho", "mi-lho", "lh digraph opens next syllable"},
		{"desenvolvimento", "de-sen-vol-vi-men-to", "Six syllable word"},
	}

	for _, tc := range testCases {
		d, err := Segment(tc.word)
		if err != nil {
			t.Errorf("%s: Segment(%q) returned error: %v", tc.description, tc.word, err)
			continue
		}
		if d.String() != tc.expected {
			t.Errorf("%s: Segment(%q) = %q, want %q", tc.description, tc.word, d.String(), tc.expected)
		}
	}
}

func TestSegmentUppercaseMatchesLowercase(t *testing.T) {
	lower, err := Segment("desenvolvimento")
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}
	upper, err := Segment("DESENVOLVIMENTO")
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}
	if lower.String() != upper.String() {
		t.Errorf("case changed the division: %q vs %q", lower.String(), upper.String())
	}
}

func TestSegmentRejectsBadInput(t *testing.T) {
	testCases := []struct {
		word    string
		wantErr error
	}{
		{"", ErrEmptyWord},
		{"abc123", ErrNotAlphabetic},
		{"can't", ErrNotAlphabetic},
		{"guarda-chuva", ErrNotAlphabetic},
		{"dois palavras", ErrNotAlphabetic},
	}
	for _, tc := range testCases {
		if _, err := Segment(tc.word); !errors.Is(err, tc.wantErr) {
			t.Errorf("Segment(%q) error = %v, want %v", tc.word, err, tc.wantErr)
		}
	}
}

// Every valid word has at least one syllable, even vowel-less fragments.
func TestCountFloorsAtOne(t *testing.T) {
	for _, word := range []string{"a", "pneu", "hmm"} {
		n, err := Count(word)
		if err != nil {
			t.Fatalf("Count(%q) returned error: %v", word, err)
		}
		if n < 1 {
			t.Errorf("Count(%q) = %d, want >= 1", word, n)
		}
	}
}

func TestCounterMemoizes(t *testing.T) {
	c := NewCounter()
	n1, err := c.Count("desenvolvimento")
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	n2, err := c.Count("DESENVOLVIMENTO")
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n1 != n2 {
		t.Errorf("memoized count diverged: %d vs %d", n1, n2)
	}
	if c.Size() != 1 {
		t.Errorf("expected one memo entry after case-folded lookups, got %d", c.Size())
	}

	if _, err := c.Count("abc123"); err == nil {
		t.Error("expected error for non-alphabetic word")
	}
	if c.Size() != 1 {
		t.Errorf("failed lookups must not be memoized, size = %d", c.Size())
	}
}
