/*
Package synonym resolves simpler synonyms for complex words from a remote
source under a strict request-pacing budget.

The resolver walks the ranked word list on a single goroutine: the remote
endpoint has one global rate budget, so a parallel fan-out would only trade
ordering guarantees for throttling errors. Pacing is enforced on request
issuance through a token bucket (burst 1), which means a slow response can
never let queued requests burst out together. Per-word failures degrade to a
StatusFailed result and never abort the batch.
*/
package synonym

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gmarquesn/prolixo/internal/logger"
	"github.com/gmarquesn/prolixo/internal/utils"
	"github.com/gmarquesn/prolixo/pkg/syllable"
	"golang.org/x/time/rate"
)

// initialBackoff seeds the exponential retry backoff. Each failed attempt
// doubles it; the per-word deadline bounds the total.
const initialBackoff = 250 * time.Millisecond

// minSynonymLength drops scraped fragments too short to be real words.
const minSynonymLength = 3

// Options configures a Resolver.
type Options struct {
	// MinInterval is the minimum gap between consecutive outbound requests,
	// including retries. Zero disables pacing.
	MinInterval time.Duration
	// MaxRetries is how many times a transient failure is retried before the
	// lookup degrades to StatusFailed. Zero means a single attempt.
	MaxRetries int
	// PerWordTimeout bounds one word's lookup including all retries and
	// backoff waits.
	PerWordTimeout time.Duration
	// MaxSynonyms caps the synonyms kept per word after filtering.
	MaxSynonyms int
	// Progress, when set, is called after each word finalizes.
	Progress func(done, total int)
}

// Resolver performs paced, order-preserving synonym lookups.
// Not safe for concurrent use: one Resolve call owns the pacing state.
type Resolver struct {
	sources []Source
	counter *syllable.Counter
	cache   Cache
	limiter *rate.Limiter
	opts    Options
	log     *log.Logger
}

// NewResolver validates opts and builds a Resolver. Configuration errors are
// reported before any request is issued. Fallback sources are consulted in
// order when the preceding ones yield nothing usable for a word; every
// outbound request, fallback or not, passes the same pacing gate.
func NewResolver(source Source, counter *syllable.Counter, cache Cache, opts Options, fallbacks ...Source) (*Resolver, error) {
	if source == nil {
		return nil, fmt.Errorf("%w: nil source", ErrBadConfig)
	}
	sources := append([]Source{source}, fallbacks...)
	for _, src := range sources {
		if src == nil {
			return nil, fmt.Errorf("%w: nil fallback source", ErrBadConfig)
		}
	}
	if counter == nil {
		return nil, fmt.Errorf("%w: nil syllable counter", ErrBadConfig)
	}
	if opts.MinInterval < 0 {
		return nil, fmt.Errorf("%w: negative min interval %v", ErrBadConfig, opts.MinInterval)
	}
	if opts.MaxRetries < 0 {
		return nil, fmt.Errorf("%w: negative retry budget %d", ErrBadConfig, opts.MaxRetries)
	}
	if opts.PerWordTimeout <= 0 {
		return nil, fmt.Errorf("%w: per-word timeout must be positive, got %v", ErrBadConfig, opts.PerWordTimeout)
	}
	if opts.MaxSynonyms < 1 {
		return nil, fmt.Errorf("%w: max synonyms must be >= 1, got %d", ErrBadConfig, opts.MaxSynonyms)
	}

	limit := rate.Inf
	if opts.MinInterval > 0 {
		limit = rate.Every(opts.MinInterval)
	}
	return &Resolver{
		sources: sources,
		counter: counter,
		cache:   cache,
		limiter: rate.NewLimiter(limit, 1),
		opts:    opts,
		log:     logger.New("synonym"),
	}, nil
}

// Resolve looks up synonyms for words in order and returns one Result per
// input position. The output is 1:1 with the input regardless of individual
// outcomes. Duplicate words cost a single network lookup; cached words cost
// none. Cancelling ctx finalizes all not-yet-dispatched lookups as
// StatusFailed without issuing their requests.
func (r *Resolver) Resolve(ctx context.Context, words []string) []Result {
	results := make([]Result, len(words))
	first := make(map[string]int, len(words))

	for i, word := range words {
		key := strings.ToLower(word)
		if j, ok := first[key]; ok {
			dup := results[j]
			dup.Word = word
			results[i] = dup
			r.report(i+1, len(words))
			continue
		}
		first[key] = i

		if r.cache != nil {
			if cached, ok := r.cache.Get(key); ok {
				cached.Word = word
				results[i] = cached
				r.log.Debugf("cache hit for %q (%s)", word, cached.Status)
				r.report(i+1, len(words))
				continue
			}
		}

		results[i] = r.lookup(ctx, word)
		if r.cache != nil && results[i].Status != StatusFailed {
			r.cache.Put(results[i])
		}
		r.report(i+1, len(words))
	}
	return results
}

func (r *Resolver) report(done, total int) {
	if r.opts.Progress != nil {
		r.opts.Progress(done, total)
	}
}

/// lookup runs the attempt machine for a single word:
// pending -> resolved | not_found | failed.
// Each attempt walks the source chain in order and stops at the first
// source that yields usable synonyms. A word is NotFound only when every
// source answered definitively; transient errors keep it retryable.
func (r *Resolver) lookup(ctx context.Context, word string) Result {
	// wordCtx inherits batch cancellation, so cancelling mid-flight aborts
	// the open request instead of letting it finish. The transport closes
	// cleanly on context cancel and the word still finalizes as Failed.
	wordCtx, cancel := context.WithTimeout(ctx, r.opts.PerWordTimeout)
	defer cancel()

	backoff := initialBackoff
	var lastErr error

	for attempt := 0; attempt <= r.opts.MaxRetries; attempt++ {
		transient := false
		for _, src := range r.sources {
			if err := ctx.Err(); err != nil {
				// Batch deadline fired before dispatch; finalize without a request.
				r.log.Debugf("skipping %q: %v", word, err)
				return Result{Word: word, Status: StatusFailed}
			}

			// Pacing gate. Applies to retries and fallbacks too, so neither
			// can ever outrun the interval budget.
			if err := r.limiter.Wait(wordCtx); err != nil {
				r.log.Debugf("pacing wait for %q aborted: %v", word, err)
				return Result{Word: word, Status: StatusFailed}
			}

			candidates, err := src.Lookup(wordCtx, word)
			if err == nil {
				if synonyms := r.filter(word, candidates); len(synonyms) > 0 {
					return Result{Word: word, Synonyms: synonyms, Status: StatusResolved}
				}
				continue
			}
			if errors.Is(err, ErrNotFound) {
				continue
			}
			transient = true
			lastErr = err
			r.log.Debugf("transient failure for %q (attempt %d/%d): %v",
				word, attempt+1, r.opts.MaxRetries+1, err)
		}

		if !transient {
			return Result{Word: word, Status: StatusNotFound}
		}
		if attempt == r.opts.MaxRetries {
			break
		}
		if !sleepCtx(wordCtx, backoff) {
			return Result{Word: word, Status: StatusFailed}
		}
		backoff *= 2
	}

	r.log.Warnf("lookup failed for %q after %d attempts: %v",
		word, r.opts.MaxRetries+1, lastErr)
	return Result{Word: word, Status: StatusFailed}
}

/// filter keeps only candidates that actually simplify the word: reasonably
// long, deduplicated, distinct from the word itself, and with fewer
// syllables than the original. Candidates the engine cannot segment are
// scraping noise and get dropped.
func (r *Resolver) filter(word string, candidates []string) []string {
	original, err := r.counter.Count(word)
	if err != nil {
		original = 0
	}

	dedup := utils.NewSynonymFilter(word)
	kept := make([]string, 0, r.opts.MaxSynonyms)
	for _, candidate := range candidates {
		clean := strings.ToLower(strings.TrimSpace(candidate))
		if len([]rune(clean)) < minSynonymLength {
			continue
		}
		if !dedup.ShouldInclude(clean) {
			continue
		}
		count, err := r.counter.Count(clean)
		if err != nil {
			continue
		}
		if original > 0 && count >= original {
			continue
		}
		kept = append(kept, clean)
		if len(kept) == r.opts.MaxSynonyms {
			break
		}
	}
	return kept
}

// sleepCtx waits d or until ctx is done. Returns false when interrupted.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
