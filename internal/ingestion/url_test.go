package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonathan/resume-insights/internal/fetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobPage = `<!DOCTYPE html>
<html>
<body>
<nav>Nav</nav>
<main>
<h1>Senior Software Engineer</h1>
<ul><li>5+ years of Go</li><li>Kubernetes</li></ul>
</main>
<footer>Footer</footer>
</body>
</html>`

func newJobServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(jobPage))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestIngestFromURL(t *testing.T) {
	server := newJobServer(t)

	tests := []struct {
		name    string
		fetcher PostingFetcher
	}{
		{name: "uncached", fetcher: nil},
		{name: "cached", fetcher: fetch.NewCachedFetcher(nil, time.Minute)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := IngestFromURL(context.Background(), tt.fetcher, server.URL)
			require.NoError(t, err)

			assert.Equal(t, "Senior Software Engineer\n5+ years of Go\nKubernetes", doc.Text)
			assert.Equal(t, server.URL, doc.Metadata.Source)
			assert.Equal(t, "unknown", doc.Metadata.Platform)
			assert.Equal(t, FormatHTML, doc.Format)
		})
	}
}

func TestIngestFromURL_Errors(t *testing.T) {
	notFound := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer notFound.Close()

	tests := []struct {
		name string
		url  string
	}{
		{name: "empty URL", url: ""},
		{name: "malformed URL", url: "not-a-url"},
		{name: "http error", url: notFound.URL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := IngestFromURL(context.Background(), nil, tt.url)
			require.Error(t, err)

			var fetchErr *fetch.Error
			assert.ErrorAs(t, err, &fetchErr)
		})
	}
}
