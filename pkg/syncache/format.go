package syncache

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
	"github.com/vmihailenco/msgpack/v5"
)

// On-disk layout: a single msgpack-encoded snapshot with a magic and a
// format version. Anything that doesn't decode cleanly is thrown away;
// the cache is an optimization, never a source of truth.
const (
	fileMagic   = "PSYN"
	fileVersion = 1
)

type snapshotEntry struct {
	Word     string   `msgpack:"w"`
	Synonyms []string `msgpack:"s,omitempty"`
	NotFound bool     `msgpack:"nf,omitempty"`
	Access   int64    `msgpack:"a"`
}

type snapshot struct {
	Magic   string          `msgpack:"m"`
	Version uint8           `msgpack:"v"`
	Entries []snapshotEntry `msgpack:"e"`
}

// load replaces the cache contents with the snapshot at c.path.
func (c *Cache) load() error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read cache file: %w", err)
	}

	var snap snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decode cache file: %w", err)
	}
	if snap.Magic != fileMagic {
		return fmt.Errorf("bad magic %q", snap.Magic)
	}
	if snap.Version != fileVersion {
		return fmt.Errorf("unsupported cache version %d", snap.Version)
	}

	// Replay in access order so the LRU state survives the round trip.
	sort.Slice(snap.Entries, func(i, j int) bool {
		return snap.Entries[i].Access < snap.Entries[j].Access
	})
	loaded := 0
	for _, se := range snap.Entries {
		if c.maxEntries > 0 && loaded >= c.maxEntries {
			break
		}
		c.putLoaded(se)
		loaded++
	}
	c.dirty = false
	log.Debugf("Loaded %d cached synonym entries from %s", loaded, c.path)
	return nil
}

// Save writes the snapshot back to disk when anything changed.
func (c *Cache) Save() error {
	if c.path == "" || !c.dirty {
		return nil
	}

	snap := snapshot{
		Magic:   fileMagic,
		Version: fileVersion,
		Entries: make([]snapshotEntry, 0, len(c.entries)),
	}
	for word, ent := range c.entries {
		snap.Entries = append(snap.Entries, snapshotEntry{
			Word:     word,
			Synonyms: ent.synonyms,
			NotFound: ent.notFound,
			Access:   c.accessTime[word],
		})
	}

	data, err := msgpack.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("encode cache file: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	c.dirty = false
	log.Debugf("Saved %d synonym entries to %s", len(snap.Entries), c.path)
	return nil
}

// putLoaded inserts a decoded snapshot entry without marking the cache dirty.
func (c *Cache) putLoaded(se snapshotEntry) {
	if _, exists := c.entries[se.Word]; !exists {
		c.index.Insert(patricia.Prefix(se.Word), struct{}{})
	}
	c.entries[se.Word] = &entry{synonyms: se.Synonyms, notFound: se.NotFound}
	c.markAccessed(se.Word)
}
