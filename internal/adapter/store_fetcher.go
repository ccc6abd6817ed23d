package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-locker-sync/internal/config"
	"github.com/MKhiriev/go-locker-sync/internal/logger"
	"github.com/MKhiriev/go-locker-sync/models"
	"github.com/google/uuid"
)

type resolveRequest struct {
	UUIDs []uuid.UUID `json:"uuids"`
}

type storeAppsResponse struct {
	Data []models.StoreApp `json:"data"`
}

type cachedApp struct {
	app       models.ResolvedApp
	fetchedAt time.Time
}

type httpStoreFetcher struct {
	source    models.StoreSource
	endpoint  *sourceEndpoint
	batchSize int
	ttl       time.Duration
	now       func() time.Time

	mu    sync.Mutex
	cache map[uuid.UUID]cachedApp

	logger *logger.Logger
}

func newHTTPStoreFetcher(source models.StoreSource, ep *sourceEndpoint, cfg config.ClientAdapter, log *logger.Logger) *httpStoreFetcher {
	batchSize := cfg.FetchBatchSize
	if batchSize <= 0 {
		batchSize = config.DefaultFetchBatchSize
	}

	return &httpStoreFetcher{
		source:    source,
		endpoint:  ep,
		batchSize: batchSize,
		ttl:       cfg.FetchCacheTTL,
		now:       time.Now,
		cache:     make(map[uuid.UUID]cachedApp),
		logger:    log,
	}
}

// Fetch implements [StoreFetcher]. Uncached uuids are resolved in batches via
// POST /api/v1/locker/resolve. A failed batch fails the whole call.
//
// Apps the store links to the user without being asked for them are returned
// after the requested ones, in response order.
func (f *httpStoreFetcher) Fetch(ctx context.Context, entries []models.LockerEntry, useCache bool) ([]models.ResolvedApp, error) {
	requested := make([]uuid.UUID, 0, len(entries))
	seen := models.NewUUIDSet()
	for _, e := range entries {
		if seen.Has(e.UUID) {
			continue
		}
		seen.Add(e.UUID)
		requested = append(requested, e.UUID)
	}

	resolved := make(map[uuid.UUID]models.ResolvedApp, len(requested))
	var linked []models.ResolvedApp
	pending := requested
	if useCache {
		pending = f.fromCache(requested, resolved)
	}

	for start := 0; start < len(pending); start += f.batchSize {
		end := min(start+f.batchSize, len(pending))
		apps, err := f.resolveBatch(ctx, pending[start:end])
		if err != nil {
			return nil, fmt.Errorf("resolve from %s: %w", f.source.URL, err)
		}
		for _, app := range apps {
			if !seen.Has(app.UUID) {
				seen.Add(app.UUID)
				linked = append(linked, app)
				continue
			}
			resolved[app.UUID] = app
		}
	}

	out := make([]models.ResolvedApp, 0, len(resolved)+len(linked))
	for _, id := range requested {
		if app, ok := resolved[id]; ok {
			out = append(out, app)
		}
	}
	out = append(out, linked...)

	f.logger.Debug().
		Str("source", f.source.URL).
		Int("requested", len(requested)).
		Int("resolved", len(out)).
		Int("fetched", len(pending)).
		Msg("store fetch finished")

	return out, nil
}

func (f *httpStoreFetcher) fromCache(ids []uuid.UUID, into map[uuid.UUID]models.ResolvedApp) []uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()

	now := f.now()
	missing := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		c, ok := f.cache[id]
		if ok && (f.ttl <= 0 || now.Sub(c.fetchedAt) < f.ttl) {
			into[id] = c.app
			continue
		}
		missing = append(missing, id)
	}
	return missing
}

func (f *httpStoreFetcher) resolveBatch(ctx context.Context, ids []uuid.UUID) ([]models.ResolvedApp, error) {
	if err := f.endpoint.wait(ctx); err != nil {
		return nil, err
	}

	resp, err := f.endpoint.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(resolveRequest{UUIDs: ids}).
		Post("/api/v1/locker/resolve")
	if err != nil {
		return nil, fmt.Errorf("resolve request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var body storeAppsResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("decode resolve response: %w", err)
	}

	now := f.now()
	apps := make([]models.ResolvedApp, 0, len(body.Data))

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, storeApp := range body.Data {
		app := storeApp.Resolved(f.source.URL)
		f.cache[app.UUID] = cachedApp{app: app, fetchedAt: now}
		apps = append(apps, app)
	}

	return apps, nil
}
