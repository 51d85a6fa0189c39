/*
Package syncache persists terminal synonym lookups between runs so repeated
analyses of the same corpus stop paying for network round trips.

The cache keeps a word map alongside a patricia trie index: the map answers
the resolver's point lookups, the trie serves prefix listings for the
interactive inspector. Size is bounded with LRU eviction. Only Resolved and
NotFound outcomes are stored; a Failed lookup says nothing durable about the
word and must be retried next run.
*/
package syncache

import (
	"errors"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gmarquesn/prolixo/pkg/synonym"
	"github.com/tchap/go-patricia/v2/patricia"
)

// errVisitDone stops a trie walk early once enough words were collected.
var errVisitDone = errors.New("syncache: visit done")

// Cache is an in-memory synonym store with optional disk persistence.
// It implements synonym.Cache. Single-owner like the resolver itself;
// not safe for concurrent use.
type Cache struct {
	entries     map[string]*entry
	index       *patricia.Trie
	accessTime  map[string]int64
	accessCount int64
	maxEntries  int
	path        string
	dirty       bool
}

type entry struct {
	synonyms []string
	notFound bool
}

// New creates an empty cache bounded to maxEntries words. A path of ""
// keeps the cache memory-only; otherwise Load/Save use it.
func New(path string, maxEntries int) *Cache {
	return &Cache{
		entries:    make(map[string]*entry, maxEntries),
		index:      patricia.NewTrie(),
		accessTime: make(map[string]int64, maxEntries),
		maxEntries: maxEntries,
		path:       path,
	}
}

// Open creates a cache and loads any previous snapshot from path.
// A missing, corrupt or version-mismatched file degrades to an empty
// cache with a warning; the pipeline's behavior never depends on it.
func Open(path string, maxEntries int) *Cache {
	c := New(path, maxEntries)
	if path == "" {
		return c
	}
	if err := c.load(); err != nil {
		log.Warnf("Discarding synonym cache at %s: %v", path, err)
	}
	return c
}

// Get implements synonym.Cache.
func (c *Cache) Get(word string) (synonym.Result, bool) {
	word = strings.ToLower(word)
	ent, ok := c.entries[word]
	if !ok {
		return synonym.Result{}, false
	}
	c.markAccessed(word)
	if ent.notFound {
		return synonym.Result{Word: word, Status: synonym.StatusNotFound}, true
	}
	return synonym.Result{Word: word, Synonyms: ent.synonyms, Status: synonym.StatusResolved}, true
}

// Put implements synonym.Cache. Failed results are never stored.
func (c *Cache) Put(res synonym.Result) {
	if res.Status != synonym.StatusResolved && res.Status != synonym.StatusNotFound {
		return
	}
	// Keys are case folded so Put and Get agree on identity.
	word := strings.ToLower(res.Word)
	if _, exists := c.entries[word]; !exists {
		if c.maxEntries > 0 && len(c.entries) >= c.maxEntries {
			c.evictLRU()
		}
		c.index.Insert(patricia.Prefix(word), struct{}{})
	}
	c.entries[word] = &entry{
		synonyms: res.Synonyms,
		notFound: res.Status == synonym.StatusNotFound,
	}
	c.markAccessed(word)
	c.dirty = true
}

// Search lists cached words starting with prefix, up to limit.
func (c *Cache) Search(prefix string, limit int) []string {
	var words []string
	err := c.index.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		if limit > 0 && len(words) >= limit {
			return errVisitDone
		}
		words = append(words, string(p))
		return nil
	})
	if err != nil && !errors.Is(err, errVisitDone) {
		log.Errorf("Error searching synonym cache: %v", err)
	}
	return words
}

// Len returns the number of cached words.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Stats returns counters for the inspector.
func (c *Cache) Stats() map[string]int {
	notFound := 0
	for _, ent := range c.entries {
		if ent.notFound {
			notFound++
		}
	}
	return map[string]int{
		"cachedWords": len(c.entries),
		"notFound":    notFound,
		"maxEntries":  c.maxEntries,
		"accesses":    int(c.accessCount),
	}
}

func (c *Cache) markAccessed(word string) {
	c.accessCount++
	c.accessTime[word] = c.accessCount
}

// evictLRU drops the least recently touched word.
func (c *Cache) evictLRU() {
	var oldestWord string
	var oldestTime int64 = 9223372036854775807

	for word, accessTime := range c.accessTime {
		if accessTime < oldestTime {
			oldestTime = accessTime
			oldestWord = word
		}
	}

	if oldestWord != "" {
		delete(c.entries, oldestWord)
		delete(c.accessTime, oldestWord)
		c.index.Delete(patricia.Prefix(oldestWord))
		log.Debugf("Evicted word '%s' from synonym cache", oldestWord)
	}
}
