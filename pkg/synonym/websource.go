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

const (
	defaultBaseURL = "https://www.sinonimos.com.br"
	userAgent      = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36"

	// maxCandidates bounds how many scraped candidates one page contributes;
	// the resolver filters further.
	maxCandidates = 12
	// maxBodyBytes guards against pathological pages.
	maxBodyBytes = 1 << 20
)

// synonymAnchor matches the anchor/span elements the site marks with a
// "sinonimo" class. Attribute order on the page is stable enough for this;
// the candidates are re-validated before use anyway.
var synonymAnchor = regexp.MustCompile(`<(?:a|span)[^>]+class="[^"]*sinonimo[^"]*"[^>]*>([^<]+)</(?:a|span)>`)

// WebSource scrapes synonym candidates from sinonimos.com.br.
// One page per word: GET {base}/{word}/, 404 means no entry.
type WebSource struct {
	baseURL string
	client  *http.Client
}

// NewWebSource creates a WebSource against the production site.
func NewWebSource() *WebSource {
	return NewWebSourceURL(defaultBaseURL)
}

// NewWebSourceURL creates a WebSource with a custom base URL (for testing).
func NewWebSourceURL(baseURL string) *WebSource {
	return &WebSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Lookup implements Source. Transport errors and 5xx responses come back as
// plain errors for the resolver to retry; a 404 maps to ErrNotFound.
func (s *WebSource) Lookup(ctx context.Context, word string) ([]string, error) {
	reqURL := s.baseURL + "/" + url.PathEscape(strings.ToLower(word)) + "/"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("websource: create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("websource: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("websource: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("websource: read body: %w", err)
	}

	return extractCandidates(string(body)), nil
}

// extractCandidates pulls the marked synonym texts out of the page,
// keeping only clean alphabetic words.
func extractCandidates(page string) []string {
	matches := synonymAnchor.FindAllStringSubmatch(page, -1)
	candidates := make([]string, 0, len(matches))
	for _, m := range matches {
		text := strings.TrimSpace(html.UnescapeString(m[1]))
		if !utils.IsAlphabetic(text) {
			continue
		}
		candidates = append(candidates, strings.ToLower(text))
		if len(candidates) == maxCandidates {
			break
		}
	}
	return candidates
}
