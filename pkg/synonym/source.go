package synonym

import (
	"context"
	"errors"
)

var (
	// ErrNotFound signals the remote source has no entry for the word.
	// It is a terminal, non-retryable outcome, not a failure.
	ErrNotFound = errors.New("synonym: no entry for word")
	// ErrBadConfig signals an invalid resolver configuration. Raised before
	// any request is issued.
	ErrBadConfig = errors.New("synonym: invalid resolver configuration")
)

// Status is the terminal outcome of one synonym lookup.
type Status uint8

const (
	// StatusPending means no lookup was attempted for the word. It is the
	// zero value; the resolver never returns it.
	StatusPending Status = iota
	// StatusResolved means the source returned at least one usable synonym.
	StatusResolved
	// StatusNotFound means the source answered but has no entry for the word.
	StatusNotFound
	// StatusFailed means transport errors exhausted the retry budget, or the
	// deadline fired before the lookup could be dispatched.
	StatusFailed
)

// String implements fmt.Stringer for log and JSON output.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusResolved:
		return "resolved"
	case StatusNotFound:
		return "not_found"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the finalized outcome of one lookup. Never mutated after the
// resolver returns it.
type Result struct {
	Word     string
	Synonyms []string
	Status   Status
}

// Source fetches raw synonym candidates for a word from a remote origin.
//
// Lookup returns ErrNotFound when the origin has a definitive "no entry"
// answer. An empty candidate list with a nil error means the same thing.
// Any other error is treated as transport-level and retried by the resolver.
type Source interface {
	Lookup(ctx context.Context, word string) ([]string, error)
}

// Cache stores terminal lookup results between runs. Implementations must
// never serve StatusFailed results. A nil Cache disables caching.
type Cache interface {
	Get(word string) (Result, bool)
	Put(res Result)
}
