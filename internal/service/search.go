package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-locker-sync/internal/adapter"
	"github.com/MKhiriev/go-locker-sync/internal/logger"
	"github.com/MKhiriev/go-locker-sync/models"
	"github.com/google/uuid"
)

// SearchService opens paged search sessions over store sources. It shares no
// state with the reconciliation engine.
type SearchService struct {
	searchers adapter.SearcherFactory
	logger    *logger.Logger
}

func NewSearchService(searchers adapter.SearcherFactory, log *logger.Logger) *SearchService {
	return &SearchService{searchers: searchers, logger: log}
}

// NewSession starts a search with an empty set of yielded apps. A new query
// needs a new session.
func (s *SearchService) NewSession(source models.StoreSource, query string, appType models.AppType, deviceType models.DeviceType) *SearchSession {
	return &SearchSession{
		searcher:   s.searchers(source),
		source:     source,
		query:      query,
		appType:    appType,
		deviceType: deviceType,
		seen:       models.NewUUIDSet(),
		logger:     s.logger,
	}
}

// SearchSession pages through one query. An app yielded on one page is not
// yielded again by the same session.
type SearchSession struct {
	searcher   adapter.StoreSearcher
	source     models.StoreSource
	query      string
	appType    models.AppType
	deviceType models.DeviceType
	logger     *logger.Logger

	mu   sync.Mutex
	seen models.UUIDSet
}

// Load fetches one page. NextKey is nil once the store returns nothing. A
// failed fetch is reported in Page.Err and leaves the session unchanged, so
// the same page can be loaded again.
func (s *SearchSession) Load(ctx context.Context, page, pageSize int) models.Page[models.StoreApp] {
	raw, err := s.searcher.Search(ctx, models.SearchRequest{
		Query:      s.query,
		AppType:    s.appType,
		DeviceType: s.deviceType,
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		s.logger.Warn().Err(err).
			Str("source", s.source.URL).
			Int("page", page).
			Msg("store search failed")
		return models.Page[models.StoreApp]{Err: err}
	}

	items := dedupPage(raw, s.deviceType)

	s.mu.Lock()
	out := make([]models.StoreApp, 0, len(items))
	for _, app := range items {
		if s.seen.Has(app.UUID) {
			continue
		}
		s.seen.Add(app.UUID)
		out = append(out, app)
	}
	s.mu.Unlock()

	result := models.Page[models.StoreApp]{Items: out}
	if len(raw) > 0 {
		next := page + 1
		result.NextKey = &next
	}
	return result
}

// Refresh forgets every app yielded so far.
func (s *SearchSession) Refresh() {
	s.mu.Lock()
	s.seen = models.NewUUIDSet()
	s.mu.Unlock()
}

// dedupPage drops apps the device cannot run and collapses duplicate uuids
// into the slot of their first hit, keeping the higher version; on equal
// versions the earlier hit stays.
func dedupPage(raw []models.SourcedStoreApp, device models.DeviceType) []models.StoreApp {
	pos := make(map[uuid.UUID]int, len(raw))
	out := make([]models.StoreApp, 0, len(raw))
	for _, hit := range raw {
		if !hit.App.SupportsDevice(device) {
			continue
		}
		if i, ok := pos[hit.App.UUID]; ok {
			if CompareVersions(hit.App.Version, out[i].Version) > 0 {
				out[i] = hit.App
			}
			continue
		}
		pos[hit.App.UUID] = len(out)
		out = append(out, hit.App)
	}
	return out
}
