package synonym

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<html><body>
<div class="sinonimos">
<a class="sinonimo" href="/avanco/">Avan&ccedil;o</a>,
<span class="sinonimo">progresso</span>,
<a class="sinonimo" href="/melhora/">melhora</a>,
<a class="sinonimo" href="/x/">dois termos</a>,
<a class="outra-classe" href="/nada/">ruído</a>
</div>
</body></html>`

func TestWebSourceLookup(t *testing.T) {
	var gotPath, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	src := NewWebSourceURL(srv.URL)
	candidates, err := src.Lookup(context.Background(), "Desenvolvimento")
	require.NoError(t, err)

	assert.Equal(t, "/desenvolvimento/", gotPath, "word must be lowercased in the URL")
	assert.NotEmpty(t, gotAgent)
	// entity decoded, multiword candidate dropped, unmarked anchor ignored
	assert.Equal(t, []string{"avanço", "progresso", "melhora"}, candidates)
}

func TestWebSourceNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	src := NewWebSourceURL(srv.URL)
	_, err := src.Lookup(context.Background(), "zzz")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWebSourceServerErrorIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	src := NewWebSourceURL(srv.URL)
	_, err := src.Lookup(context.Background(), "casa")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound, "5xx must stay a transient error")
}

func TestWebSourceHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewWebSourceURL(srv.URL)
	_, err := src.Lookup(ctx, "casa")
	assert.Error(t, err)
}

func TestExtractCandidatesEmptyPage(t *testing.T) {
	assert.Empty(t, extractCandidates("<html><body>nada aqui</body></html>"))
}
