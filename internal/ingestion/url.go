package ingestion

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-insights/internal/fetch"
)

// PostingFetcher retrieves job posting text by URL. *fetch.CachedFetcher satisfies it.
type PostingFetcher interface {
	Fetch(ctx context.Context, urlStr string) (*fetch.CachedResult, error)
}

// IngestFromURL fetches a job posting and returns its cleaned text. A nil
// fetcher performs an uncached fetch with default options.
func IngestFromURL(ctx context.Context, fetcher PostingFetcher, urlStr string) (*Document, error) {
	var result *fetch.Result
	if fetcher != nil {
		cached, err := fetcher.Fetch(ctx, urlStr)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch job posting: %w", err)
		}
		result = cached.Result
	} else {
		fetched, err := fetch.JobPosting(ctx, urlStr, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch job posting: %w", err)
		}
		result = fetched
	}

	text := CleanText(result.Text)
	if text == "" {
		return nil, &DecodeError{Name: urlStr, Format: FormatHTML, Cause: ErrEmptyDocument}
	}

	meta := describe(text, urlStr, FormatHTML)
	meta.Platform = string(result.Platform)
	return &Document{Name: urlStr, Format: FormatHTML, Text: text, Metadata: meta}, nil
}
