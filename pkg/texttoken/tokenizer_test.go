package texttoken

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	tk := New()

	testCases := []struct {
		text        string
		expected    []string
		description string
	}{
		{
			"O desenvolvimento é complexo.",
			[]string{"desenvolvimento", "complexo"},
			"Stopwords and punctuation dropped",
		},
		{
			"Palavras, PALAVRAS; palavras!",
			[]string{"palavras", "palavras", "palavras"},
			"Lowercased, every occurrence kept in order",
		},
		{
			"diga-me a verdade",
			[]string{"diga", "verdade"},
			"Enclitic pronoun stripped",
		},
		{
			"segunda-feira chuvosa",
			[]string{"segunda", "feira", "chuvosa"},
			"Hyphenated compound split into parts",
		},
		{
			"A saúde não é negociável",
			[]string{"saúde", "negociável"},
			"Diacritics preserved",
		},
		{
			"um de eu já",
			nil,
			"Nothing but stopwords yields no tokens",
		},
		{
			"R$ 100,00 em 2024!",
			nil,
			"Numbers and symbols yield no tokens",
		},
		{
			"vendê-lo custou caro",
			[]string{"vendê", "custou", "caro"},
			"Accented enclitic host survives stripping",
		},
	}

	for _, tc := range testCases {
		got := tk.Extract(tc.text)
		if len(got) == 0 {
			got = nil
		}
		if !reflect.DeepEqual(got, tc.expected) {
			t.Errorf("%s: Extract(%q) = %v, want %v", tc.description, tc.text, got, tc.expected)
		}
	}
}

func TestExtractKeepsTextOrder(t *testing.T) {
	tk := New()
	got := tk.Extract("primeira segunda terceira")
	want := []string{"primeira", "segunda", "terceira"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract order = %v, want %v", got, want)
	}
}

func TestStripEncliticKeepsShortHosts(t *testing.T) {
	tk := New()
	// "dá-me": host shorter than MinWordLength, token passes through whole
	// and then splits into fragments too short to keep.
	got := tk.Extract("dá-me outra palavra")
	want := []string{"outra", "palavra"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestIsStopword(t *testing.T) {
	tk := New()
	for _, w := range []string{"para", "Para", "QUE", "uma"} {
		if !tk.IsStopword(w) {
			t.Errorf("IsStopword(%q) = false, want true", w)
		}
	}
	if tk.IsStopword("desenvolvimento") {
		t.Error("IsStopword(\"desenvolvimento\") = true, want false")
	}
}

func TestLoadStopwords(t *testing.T) {
	tk := New()
	path := filepath.Join(t.TempDir(), "extra.txt")
	content := "# domain noise\nfoobar\n\nQuux\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if err := tk.LoadStopwords(path); err != nil {
		t.Fatalf("LoadStopwords failed: %v", err)
	}
	if !tk.IsStopword("foobar") || !tk.IsStopword("quux") {
		t.Error("extra stopwords not merged")
	}
	if tk.IsStopword("#") {
		t.Error("comment line leaked into the stopword set")
	}

	if err := tk.LoadStopwords(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing stopword file")
	}
}
