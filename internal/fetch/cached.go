package fetch

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultCacheTTL is how long a fetched posting is served from memory.
const DefaultCacheTTL = 15 * time.Minute

// CachedResult wraps a Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool
	FetchedAt time.Time
}

type cacheEntry struct {
	result    *Result
	fetchedAt time.Time
}

// CachedFetcher fetches job postings and keeps successful results in memory
// for a TTL. It is safe for concurrent use.
type CachedFetcher struct {
	options *Options
	ttl     time.Duration
	now     func() time.Time

	mu      sync.Mutex
	entries map[string]cacheEntry
}

// NewCachedFetcher creates a fetcher. A non-positive ttl uses DefaultCacheTTL.
func NewCachedFetcher(opts *Options, ttl time.Duration) *CachedFetcher {
	if opts == nil {
		opts = DefaultOptions()
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedFetcher{
		options: opts,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Fetch returns the posting text for urlStr, from cache when still fresh.
// Failed fetches are never cached.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	if entry, ok := f.lookup(urlStr); ok {
		return &CachedResult{Result: entry.result, FromCache: true, FetchedAt: entry.fetchedAt}, nil
	}

	result, err := JobPosting(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	fetchedAt := f.now()
	f.mu.Lock()
	f.entries[urlStr] = cacheEntry{result: result, fetchedAt: fetchedAt}
	f.mu.Unlock()

	log.Printf("[fetch] cached %s (%s, %d chars)", urlStr, result.Platform, len(result.Text))
	return &CachedResult{Result: result, FetchedAt: fetchedAt}, nil
}

// Invalidate drops urlStr from the cache.
func (f *CachedFetcher) Invalidate(urlStr string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, urlStr)
}

// Len returns the number of cached entries, fresh or stale.
func (f *CachedFetcher) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

func (f *CachedFetcher) lookup(urlStr string) (cacheEntry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entry, ok := f.entries[urlStr]
	if !ok {
		return cacheEntry{}, false
	}
	if f.now().Sub(entry.fetchedAt) >= f.ttl {
		delete(f.entries, urlStr)
		return cacheEntry{}, false
	}
	return entry, true
}
