// Package cli handles interactive stdin input for inspecting syllable
// divisions and synonym lookups in real time.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gmarquesn/prolixo/internal/utils"
	"github.com/gmarquesn/prolixo/pkg/syllable"
	"github.com/gmarquesn/prolixo/pkg/syncache"
	"github.com/gmarquesn/prolixo/pkg/synonym"
)

const maxInputLength = 64

// InputHandler processes words from stdin. A bare word is divided into
// syllables; ":syn word" performs a one-off synonym lookup and ":cache
// prefix" lists cached entries. Resolver and cache may be nil, in which
// case the matching commands report that they are disabled.
type InputHandler struct {
	resolver     *synonym.Resolver
	cache        *syncache.Cache
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler
func NewInputHandler(resolver *synonym.Resolver, cache *syncache.Cache) *InputHandler {
	return &InputHandler{
		resolver: resolver,
		cache:    cache,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Print("Prolixo CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a word and press Enter to see its syllables (Ctrl+C to exit)")
	log.Print("commands:  :syn <word>   look up synonyms")
	log.Print("           :cache <pfx>  list cached words by prefix")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// handleInput processes a single line: a command when it starts with
// ':', otherwise a word to divide.
func (h *InputHandler) handleInput(line string) {
	h.requestCount++

	if strings.HasPrefix(line, ":") {
		h.handleCommand(line)
		return
	}
	h.divide(line)
}

func (h *InputHandler) handleCommand(line string) {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case ":syn":
		if arg == "" {
			log.Error("usage: :syn <word>")
			return
		}
		h.lookup(arg)
	case ":cache":
		h.listCache(arg)
	default:
		log.Errorf("Unknown command: %s", cmd)
	}
}

func (h *InputHandler) divide(word string) {
	if len(word) > maxInputLength {
		log.Errorf("Input too long: %s", utils.TruncateRunes(word, 16))
		return
	}
	if !utils.IsValidInput(word) {
		log.Warnf("Not a word: '%s'", word)
		return
	}

	start := time.Now()
	div, err := syllable.Segment(word)
	elapsed := time.Since(start)

	if err != nil {
		log.Errorf("Cannot divide '%s': %v", word, err)
		return
	}
	log.Debugf("Took [ %v ] for '%s'", elapsed, word)

	clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", div.String())
	log.Printf("%-40s (%d syllables)", clWord, div.Count())
}

func (h *InputHandler) lookup(word string) {
	if h.resolver == nil {
		log.Warn("Synonym lookups are disabled")
		return
	}
	if !utils.IsValidInput(word) {
		log.Warnf("Not a word: '%s'", word)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	start := time.Now()
	results := h.resolver.Resolve(ctx, []string{strings.ToLower(word)})
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for '%s'", elapsed, word)

	if len(results) == 0 {
		log.Warnf("No result for '%s'", word)
		return
	}
	res := results[0]
	switch res.Status {
	case synonym.StatusResolved:
		log.Printf("Found %d synonyms for '%s':", len(res.Synonyms), word)
		for i, syn := range res.Synonyms {
			clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", syn)
			if n, err := syllable.Count(syn); err == nil {
				log.Printf("%2d. %-40s (%d syllables)", i+1, clWord, n)
			} else {
				log.Printf("%2d. %-40s", i+1, clWord)
			}
		}
	case synonym.StatusNotFound:
		log.Warnf("No synonyms found for '%s'", word)
	default:
		log.Errorf("Lookup failed for '%s'", word)
	}
}

func (h *InputHandler) listCache(prefix string) {
	if h.cache == nil {
		log.Warn("Cache is disabled")
		return
	}
	words := h.cache.Search(prefix, 20)
	if len(words) == 0 {
		log.Warnf("No cached words for prefix: '%s'", prefix)
		return
	}
	log.Printf("Found %d cached words for prefix '%s':", len(words), prefix)
	for i, w := range words {
		log.Printf("%2d. %s", i+1, w)
	}
}
