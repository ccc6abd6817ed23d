package service

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-locker-sync/internal/adapter"
	"github.com/MKhiriev/go-locker-sync/internal/logger"
	"github.com/MKhiriev/go-locker-sync/internal/store"
	"github.com/MKhiriev/go-locker-sync/internal/utils"
	"github.com/MKhiriev/go-locker-sync/internal/workers"
	"github.com/MKhiriev/go-locker-sync/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ReconcileConfig tunes the reconciliation engine.
type ReconcileConfig struct {
	// DefaultFeedURL identifies the default feed source.
	DefaultFeedURL string
	// FastPathBatchSize is the largest change batch whose apps are awaited on
	// the device and launched. Zero disables the fast path.
	FastPathBatchSize int
	DeviceSyncTimeout time.Duration
	// LaunchSettleDelay separates the device confirmation from the launch.
	LaunchSettleDelay time.Duration
}

type reconcileService struct {
	auth     AuthContext
	sources  store.AppstoreSourceRepository
	fetchers adapter.FetcherFactory
	cloud    adapter.CloudLockerClient
	device   DeviceSyncService
	cfg      ReconcileConfig
	tasks    *workers.Tasks
	locks    *entryLocks
	logger   *logger.Logger

	// passMu keeps reconciliation passes from overlapping.
	passMu sync.Mutex

	snapMu      sync.RWMutex
	snapshot    []models.LockerEntry
	hasSnapshot bool
}

// NewReconcileService wires the engine. tasks is the session's background
// handle shared with the device sync service.
func NewReconcileService(
	auth AuthContext,
	sources store.AppstoreSourceRepository,
	fetchers adapter.FetcherFactory,
	cloud adapter.CloudLockerClient,
	device DeviceSyncService,
	tasks *workers.Tasks,
	cfg ReconcileConfig,
	log *logger.Logger,
) ReconcileService {
	return &reconcileService{
		auth:     auth,
		sources:  sources,
		fetchers: fetchers,
		cloud:    cloud,
		device:   device,
		cfg:      cfg,
		tasks:    tasks,
		locks:    newEntryLocks(),
		logger:   log,
	}
}

// Reconcile implements ReconcileService.
func (s *reconcileService) Reconcile(ctx context.Context, entries []models.LockerEntry, forceRefresh bool) models.LockerResult {
	result := models.LockerResult{Apps: []models.ResolvedApp{}, FailedToFetch: models.NewUUIDSet()}

	userID, ok := s.auth.CurrentUserID()
	if !ok {
		s.logger.Debug().Msg("reconcile skipped: no signed-in user")
		return result
	}
	log := s.passLogger(ctx, userID)

	s.passMu.Lock()
	defer s.passMu.Unlock()

	cloud := make(map[uuid.UUID]models.LockerEntry, len(entries))
	for _, e := range entries {
		cloud[e.UUID] = e
	}

	sources, err := s.sources.GetAllEnabledSources(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load enabled store sources")
		for id := range cloud {
			result.FailedToFetch.Add(id)
		}
		return result
	}

	resolved := s.fetchAll(ctx, log, sources, entries, !forceRefresh)

	var sourced []models.SourcedEntry
	adopted := models.NewUUIDSet()
	for i, src := range sources {
		isFeed := src.IsDefaultFeed(s.cfg.DefaultFeedURL)
		for _, app := range resolved[i] {
			if _, inCloud := cloud[app.UUID]; isFeed && !inCloud && !adopted.Has(app.UUID) {
				adopted.Add(app.UUID)
				s.adopt(userID, log, src, app)
			}
			sourced = append(sourced, models.SourcedEntry{Source: src, App: app})
		}
	}

	winners := pickWinners(sourced, cloud)
	for _, w := range winners {
		entry, inCloud := cloud[w.App.UUID]
		if !inCloud || models.SameSourceURL(entry.AppstoreSource, w.Source.URL) {
			continue
		}
		if s.isProtected(entry, w.Source) {
			log.Debug().
				Str("uuid", entry.UUID.String()).
				Str("source", entry.AppstoreSource).
				Msg("keeping explicit source over default feed")
			continue
		}
		s.writeBack(userID, log, entry.WithSource(w.Source.URL))
	}

	winning := models.NewUUIDSet()
	for _, w := range winners {
		winning.Add(w.App.UUID)
		result.Apps = append(result.Apps, w.App)
	}
	for id := range cloud {
		if !winning.Has(id) {
			result.FailedToFetch.Add(id)
		}
	}

	log.Debug().
		Int("apps", len(result.Apps)).
		Int("failed", result.FailedToFetch.Len()).
		Int("adopted", adopted.Len()).
		Bool("force_refresh", forceRefresh).
		Msg("reconcile pass finished")

	return result
}

// fetchAll resolves entries against every source concurrently. A failing
// source contributes nothing to the pass.
func (s *reconcileService) fetchAll(ctx context.Context, log *logger.Logger, sources []models.StoreSource, entries []models.LockerEntry, useCache bool) [][]models.ResolvedApp {
	out := make([][]models.ResolvedApp, len(sources))

	var g errgroup.Group
	for i, src := range sources {
		g.Go(func() error {
			apps, err := s.fetchers(src).Fetch(ctx, entries, useCache)
			if err != nil {
				log.Warn().Err(err).Str("source", src.URL).Msg("store source fetch failed")
				return nil
			}
			out[i] = apps
			return nil
		})
	}
	_ = g.Wait()

	return out
}

// isProtected reports whether moving entry onto target would replace an
// explicit non-default source with the default feed.
func (s *reconcileService) isProtected(entry models.LockerEntry, target models.StoreSource) bool {
	if !target.IsDefaultFeed(s.cfg.DefaultFeedURL) || entry.AppstoreSource == "" {
		return false
	}
	return !models.SameSourceURL(entry.AppstoreSource, s.cfg.DefaultFeedURL)
}

func (s *reconcileService) adopt(userID string, log *logger.Logger, src models.StoreSource, app models.ResolvedApp) {
	entry := models.LockerEntry{
		UUID:           app.UUID,
		AppstoreID:     app.ID,
		AppstoreSource: src.URL,
		TimelineToken:  app.UserToken,
	}
	log.Info().Str("uuid", app.UUID.String()).Str("source", src.URL).Msg("adopting default feed app into cloud locker")
	s.putEntry(userID, log, entry)
}

func (s *reconcileService) writeBack(userID string, log *logger.Logger, entry models.LockerEntry) {
	log.Info().Str("uuid", entry.UUID.String()).Str("source", entry.AppstoreSource).Msg("correcting cloud locker source")
	s.putEntry(userID, log, entry)
}

// putEntry writes entry to the cloud on the background handle. Writes to the
// same uuid never interleave.
func (s *reconcileService) putEntry(userID string, log *logger.Logger, entry models.LockerEntry) {
	s.tasks.Go(func(ctx context.Context) {
		unlock := s.locks.lock(entry.UUID)
		defer unlock()

		err := s.cloud.Add(ctx, userID, entry)
		if err == nil {
			return
		}

		ev := log.Error()
		if adapter.IsNetworkUnavailable(err) {
			ev = log.Warn()
		}
		ev.Err(err).
			Str("uuid", entry.UUID.String()).
			Str("source", entry.AppstoreSource).
			Msg("cloud locker write failed")
	})
}

// passLogger tags the service logger with userID and, when ctx carries one,
// the id of the batch the pass belongs to.
func (s *reconcileService) passLogger(ctx context.Context, userID string) *logger.Logger {
	log := s.logger.ForUser(userID)
	if batchID, ok := utils.GetBatchIDFromContext(ctx); ok {
		log = log.ForBatch(batchID)
	}
	return log
}

// ApplyCloudChange implements ReconcileService.
func (s *reconcileService) ApplyCloudChange(ctx context.Context, entries []models.LockerEntry) []models.ResolvedApp {
	userID, ok := s.auth.CurrentUserID()
	if !ok {
		return nil
	}
	log := s.passLogger(ctx, userID)

	local, ok := s.device.LocalUUIDs(ctx)
	if !ok {
		log.Warn().Msg("device uuids unavailable, cloud change not applied")
		return nil
	}

	var added []models.LockerEntry
	for _, e := range entries {
		if local.Has(e.UUID) || models.SameSourceURL(e.AppstoreSource, s.cfg.DefaultFeedURL) {
			continue
		}
		added = append(added, e)
	}
	if len(added) == 0 {
		return nil
	}

	sources, err := s.sources.GetAllEnabledSources(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load enabled store sources")
		return nil
	}

	var apps []models.ResolvedApp
	for _, src := range sources {
		if src.IsDefaultFeed(s.cfg.DefaultFeedURL) {
			continue
		}

		var forSource []models.LockerEntry
		wanted := models.NewUUIDSet()
		for _, e := range added {
			if models.SameSourceURL(e.AppstoreSource, src.URL) {
				forSource = append(forSource, e)
				wanted.Add(e.UUID)
			}
		}
		if len(forSource) == 0 {
			continue
		}

		resolved, err := s.fetchers(src).Fetch(ctx, forSource, false)
		if err != nil {
			log.Warn().Err(err).Str("source", src.URL).Msg("store source fetch failed")
			continue
		}
		for _, app := range resolved {
			if wanted.Has(app.UUID) {
				apps = append(apps, app)
			}
		}
	}
	if len(apps) == 0 {
		return nil
	}

	log.Debug().Int("apps", len(apps)).Msg("forwarding cloud change to device")
	s.device.PushApps(ctx, apps)

	if len(apps) <= s.cfg.FastPathBatchSize {
		for _, app := range apps {
			s.installAndLaunch(ctx, log, app.UUID)
		}
	}

	return apps
}

func (s *reconcileService) installAndLaunch(ctx context.Context, log *logger.Logger, appUUID uuid.UUID) {
	if !s.device.AwaitDeviceSync(ctx, appUUID, s.cfg.DeviceSyncTimeout) {
		log.Warn().Str("uuid", appUUID.String()).Msg("app not confirmed by device, launch skipped")
		return
	}

	if s.cfg.LaunchSettleDelay > 0 {
		t := time.NewTimer(s.cfg.LaunchSettleDelay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}

	if !s.device.LaunchApp(ctx, appUUID) {
		log.Warn().Str("uuid", appUUID.String()).Msg("device rejected app launch")
	}
}

// SetSnapshot implements ReconcileService.
func (s *reconcileService) SetSnapshot(entries []models.LockerEntry) {
	s.snapMu.Lock()
	defer s.snapMu.Unlock()

	s.snapshot = slices.Clone(entries)
	s.hasSnapshot = true
}

// Snapshot implements ReconcileService.
func (s *reconcileService) Snapshot() ([]models.LockerEntry, bool) {
	s.snapMu.RLock()
	defer s.snapMu.RUnlock()

	return slices.Clone(s.snapshot), s.hasSnapshot
}

// CancelBackground implements ReconcileService. The snapshot belongs to the
// ended session and is dropped as well.
func (s *reconcileService) CancelBackground() {
	s.tasks.Cancel()

	s.snapMu.Lock()
	s.snapshot, s.hasSnapshot = nil, false
	s.snapMu.Unlock()
}

// WaitBackground implements ReconcileService.
func (s *reconcileService) WaitBackground() {
	s.tasks.Wait()
}

// pickWinners groups sourced by uuid and keeps one app per group, in order of
// first appearance.
func pickWinners(sourced []models.SourcedEntry, cloud map[uuid.UUID]models.LockerEntry) []models.SourcedEntry {
	groups := make(map[uuid.UUID][]models.SourcedEntry)
	var order []uuid.UUID
	for _, se := range sourced {
		if _, ok := groups[se.App.UUID]; !ok {
			order = append(order, se.App.UUID)
		}
		groups[se.App.UUID] = append(groups[se.App.UUID], se)
	}

	winners := make([]models.SourcedEntry, 0, len(order))
	for _, id := range order {
		winners = append(winners, pickWinner(groups[id], cloud[id].AppstoreSource))
	}
	return winners
}

// pickWinner returns the best candidate: highest version, then the source
// recorded in the cloud, then the highest source id.
func pickWinner(candidates []models.SourcedEntry, recorded string) models.SourcedEntry {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if compareCandidates(c, best, recorded) > 0 {
			best = c
		}
	}
	return best
}

func compareCandidates(a, b models.SourcedEntry, recorded string) int {
	if c := CompareVersions(a.App.Version, b.App.Version); c != 0 {
		return c
	}

	aRecorded := recorded != "" && models.SameSourceURL(a.Source.URL, recorded)
	bRecorded := recorded != "" && models.SameSourceURL(b.Source.URL, recorded)
	switch {
	case aRecorded && !bRecorded:
		return 1
	case bRecorded && !aRecorded:
		return -1
	}

	return cmp.Compare(a.Source.ID, b.Source.ID)
}

// entryLocks hands out one mutex per locker entry.
type entryLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*entryLock
}

type entryLock struct {
	sync.Mutex
	refs int
}

func newEntryLocks() *entryLocks {
	return &entryLocks{locks: make(map[uuid.UUID]*entryLock)}
}

func (l *entryLocks) lock(id uuid.UUID) (unlock func()) {
	l.mu.Lock()
	el, ok := l.locks[id]
	if !ok {
		el = &entryLock{}
		l.locks[id] = el
	}
	el.refs++
	l.mu.Unlock()

	el.Lock()
	return func() {
		el.Unlock()

		l.mu.Lock()
		el.refs--
		if el.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
