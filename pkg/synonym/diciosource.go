package synonym

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/gmarquesn/prolixo/internal/utils"
)

const dicioBaseURL = "https://www.dicio.com.br"

// dicioSection matches the synonym blocks dicio marks with a "sinonimo"
// class. The block body holds comma-separated word links, so the inner
// markup is stripped and split rather than matched per anchor.
var (
	dicioSection = regexp.MustCompile(`(?is)<(?:div|p)[^>]+class="[^"]*sinonimo[^"]*"[^>]*>(.*?)</(?:div|p)>`)
	htmlTag      = regexp.MustCompile(`<[^>]*>`)
)

// DicioSource scrapes synonym candidates from dicio.com.br. Same shape as
// WebSource: GET {base}/{word}/, 404 means no entry.
type DicioSource struct {
	baseURL string
	client  *http.Client
}

// NewDicioSource creates a DicioSource against the production site.
func NewDicioSource() *DicioSource {
	return NewDicioSourceURL(dicioBaseURL)
}

// NewDicioSourceURL creates a DicioSource with a custom base URL (for testing).
func NewDicioSourceURL(baseURL string) *DicioSource {
	return &DicioSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Lookup implements Source with the same error contract as WebSource:
// 404 maps to ErrNotFound, anything else non-200 stays retryable.
func (s *DicioSource) Lookup(ctx context.Context, word string) ([]string, error) {
	reqURL := s.baseURL + "/" + url.PathEscape(strings.ToLower(word)) + "/"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("diciosource: create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("diciosource: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("diciosource: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("diciosource: read body: %w", err)
	}

	return extractDicioCandidates(string(body)), nil
}

// extractDicioCandidates flattens each marked section to plain text, splits
// on the list separators and keeps clean alphabetic words.
func extractDicioCandidates(page string) []string {
	var candidates []string
	for _, section := range dicioSection.FindAllStringSubmatch(page, -1) {
		text := html.UnescapeString(htmlTag.ReplaceAllString(section[1], " "))
		// The colon splits off the "É sinônimo de:" label preceding the list.
		for _, part := range strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ';' || r == ':'
		}) {
			word := strings.ToLower(strings.TrimSpace(part))
			if !utils.IsAlphabetic(word) {
				continue
			}
			candidates = append(candidates, word)
			if len(candidates) == maxCandidates {
				return candidates
			}
		}
	}
	return candidates
}
