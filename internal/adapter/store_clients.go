package adapter

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-locker-sync/internal/config"
	"github.com/MKhiriev/go-locker-sync/internal/logger"
	"github.com/MKhiriev/go-locker-sync/internal/utils"
	"github.com/MKhiriev/go-locker-sync/models"
	"golang.org/x/time/rate"
)

// StoreClients hands out one fetcher and one searcher per store source and
// keeps them for the lifetime of the process, so fetch caches and rate limits
// survive across reconciliation passes. A source whose URL changes gets fresh
// clients.
type StoreClients struct {
	cfg    config.ClientAdapter
	logger *logger.Logger

	mu        sync.Mutex
	fetchers  map[int64]*httpStoreFetcher
	searchers map[int64]*httpStoreSearcher
	endpoints map[int64]*sourceEndpoint
}

// sourceEndpoint is the HTTP client and rate limiter shared by the fetcher and
// searcher of one source.
type sourceEndpoint struct {
	url     string
	client  *utils.HTTPClient
	limiter *rate.Limiter
	err     error
}

// NewStoreClients constructs an empty client registry configured by adapterCfg.
func NewStoreClients(adapterCfg config.ClientAdapter, log *logger.Logger) *StoreClients {
	return &StoreClients{
		cfg:       adapterCfg,
		logger:    log,
		fetchers:  make(map[int64]*httpStoreFetcher),
		searchers: make(map[int64]*httpStoreSearcher),
		endpoints: make(map[int64]*sourceEndpoint),
	}
}

// Fetcher returns the memoized [StoreFetcher] for source. It satisfies
// [FetcherFactory].
func (s *StoreClients) Fetcher(source models.StoreSource) StoreFetcher {
	s.mu.Lock()
	defer s.mu.Unlock()

	ep := s.endpointLocked(source)
	if f, ok := s.fetchers[source.ID]; ok && f.endpoint == ep {
		return f
	}

	f := newHTTPStoreFetcher(source, ep, s.cfg, s.logger)
	s.fetchers[source.ID] = f
	return f
}

// Searcher returns the memoized [StoreSearcher] for source. It satisfies
// [SearcherFactory].
func (s *StoreClients) Searcher(source models.StoreSource) StoreSearcher {
	s.mu.Lock()
	defer s.mu.Unlock()

	ep := s.endpointLocked(source)
	if sr, ok := s.searchers[source.ID]; ok && sr.endpoint == ep {
		return sr
	}

	sr := &httpStoreSearcher{source: source, endpoint: ep}
	s.searchers[source.ID] = sr
	return sr
}

func (s *StoreClients) endpointLocked(source models.StoreSource) *sourceEndpoint {
	if ep, ok := s.endpoints[source.ID]; ok && models.SameSourceURL(ep.url, source.URL) {
		return ep
	}

	ep := &sourceEndpoint{url: source.URL}
	baseURL, err := normalizeBaseURL(source.URL, schemeHTTPS)
	if err != nil {
		ep.err = fmt.Errorf("%w: store source %d: %w", ErrInvalidAddress, source.ID, err)
	} else {
		ep.client = utils.NewHTTPClient(baseURL, s.cfg.RequestTimeout)
	}

	limit := rate.Inf
	if s.cfg.FetchRateLimit > 0 {
		limit = rate.Limit(s.cfg.FetchRateLimit)
	}
	burst := int(s.cfg.FetchRateLimit)
	if burst < 1 {
		burst = 1
	}
	ep.limiter = rate.NewLimiter(limit, burst)

	s.endpoints[source.ID] = ep
	return ep
}

// wait blocks until the source's rate limit admits one more request.
func (ep *sourceEndpoint) wait(ctx context.Context) error {
	if ep.err != nil {
		return ep.err
	}
	if err := ep.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}
	return nil
}
