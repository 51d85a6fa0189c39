package utils

import "testing"

func TestSynonymFilter(t *testing.T) {
	f := NewSynonymFilter("Casa")

	if f.ShouldInclude("casa") {
		t.Error("input word itself must be excluded, case-folded")
	}
	if !f.ShouldInclude("lar") {
		t.Error("first sight of a candidate must pass")
	}
	if f.ShouldInclude("LAR") {
		t.Error("case-folded duplicate must be dropped")
	}
	if !f.ShouldInclude("moradia") {
		t.Error("independent candidate must pass")
	}
}

func TestIsAlphabetic(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{"palavra", true},
		{"saúde", true},
		{"ção", true},
		{"word2vec", false},
		{"dois termos", false},
		{"", false},
		{"guarda-chuva", false},
	}
	for _, tc := range testCases {
		if got := IsAlphabetic(tc.input); got != tc.expected {
			t.Errorf("IsAlphabetic(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}

func TestIsValidInput(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{"palavra", true},
		{"aaa", false},
		{"kkkk", false},
		{"aa", true},
		{"r2d2", false},
		{"", false},
	}
	for _, tc := range testCases {
		if got := IsValidInput(tc.input); got != tc.expected {
			t.Errorf("IsValidInput(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}

func TestFormatWithCommas(t *testing.T) {
	testCases := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}
	for _, tc := range testCases {
		if got := FormatWithCommas(tc.input); got != tc.expected {
			t.Errorf("FormatWithCommas(%d) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestTruncateRunes(t *testing.T) {
	testCases := []struct {
		input    string
		max      int
		expected string
	}{
		{"curta", 10, "curta"},
		{"desenvolvimento", 10, "desenvo..."},
		{"ação", 4, "ação"},
		{"abcdef", 3, "abc"},
	}
	for _, tc := range testCases {
		if got := TruncateRunes(tc.input, tc.max); got != tc.expected {
			t.Errorf("TruncateRunes(%q, %d) = %q, want %q", tc.input, tc.max, got, tc.expected)
		}
	}
}
