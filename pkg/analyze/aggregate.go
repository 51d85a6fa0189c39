package analyze

// Frequencies is a frozen word-frequency snapshot produced by Aggregate.
// Counts never change after construction; first-seen order is kept so the
// ranker can break ties deterministically.
type Frequencies struct {
	counts map[string]int
	order  []string
	total  int
}

// Aggregate consumes the token sequence in one pass and returns the frozen
// snapshot. No partial state is ever observable: the only way to read counts
// is through the returned value.
func Aggregate(words []string) *Frequencies {
	f := &Frequencies{
		counts: make(map[string]int, len(words)/2+1),
		order:  make([]string, 0, len(words)/2+1),
	}
	for _, word := range words {
		if _, seen := f.counts[word]; !seen {
			f.order = append(f.order, word)
		}
		f.counts[word]++
		f.total++
	}
	return f
}

// Count returns how many times word occurred, zero for unseen words.
func (f *Frequencies) Count(word string) int {
	return f.counts[word]
}

// Words returns the distinct words in first-seen order. Callers must not
// modify the returned slice.
func (f *Frequencies) Words() []string {
	return f.order
}

// Distinct returns the number of distinct words observed.
func (f *Frequencies) Distinct() int {
	return len(f.order)
}

// Total returns the total number of tokens consumed.
func (f *Frequencies) Total() int {
	return f.total
}
