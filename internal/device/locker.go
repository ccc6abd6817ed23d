package device

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-locker-sync/internal/logger"
	"github.com/MKhiriev/go-locker-sync/internal/store"
	"github.com/MKhiriev/go-locker-sync/models"
	"github.com/google/uuid"
)

const defaultFlushInterval = 2 * time.Second

// Locker is the local mirror of the device's locker database.
type Locker struct {
	repo          store.DeviceLockerRepository
	transport     Transport
	flushInterval time.Duration
	logger        *logger.Logger

	// flush wakes the flush loop early (buffered, size 1).
	flush chan struct{}

	mu        sync.Mutex
	waiters   map[uuid.UUID]map[chan struct{}]struct{}
	observers map[chan []uuid.UUID]struct{}
}

// NewLocker constructs a Locker. Call Run to start flushing toward the device.
func NewLocker(repo store.DeviceLockerRepository, transport Transport, flushInterval time.Duration, log *logger.Logger) *Locker {
	if flushInterval <= 0 {
		flushInterval = defaultFlushInterval
	}

	return &Locker{
		repo:          repo,
		transport:     transport,
		flushInterval: flushInterval,
		logger:        log,
		flush:         make(chan struct{}, 1),
		waiters:       make(map[uuid.UUID]map[chan struct{}]struct{}),
		observers:     make(map[chan []uuid.UUID]struct{}),
	}
}

// ObserveLocalUUIDs streams the uuids held in the local device database. The
// current set is sent first; a new set follows every change. A slow reader
// only sees the latest set. The channel is closed when ctx is done, and
// right away when the current set cannot be read.
func (l *Locker) ObserveLocalUUIDs(ctx context.Context) <-chan []uuid.UUID {
	sink := make(chan []uuid.UUID, 1)
	out := make(chan []uuid.UUID)

	l.mu.Lock()
	ids, err := l.repo.ListUUIDs(ctx)
	if err != nil {
		l.mu.Unlock()
		l.logger.Error().Err(err).Msg("failed to read local device uuids")
		close(out)
		return out
	}
	l.observers[sink] = struct{}{}
	offerLatest(sink, ids)
	l.mu.Unlock()

	go func() {
		defer close(out)
		defer func() {
			l.mu.Lock()
			delete(l.observers, sink)
			l.mu.Unlock()
		}()

		for {
			var ids []uuid.UUID
			select {
			case <-ctx.Done():
				return
			case ids = <-sink:
			}

			select {
			case <-ctx.Done():
				return
			case out <- ids:
			}
		}
	}()

	return out
}

// InstallApps stages apps for installation and wakes the flush loop.
func (l *Locker) InstallApps(ctx context.Context, apps []models.ResolvedApp) error {
	if len(apps) == 0 {
		return nil
	}
	if err := l.repo.Upsert(ctx, apps...); err != nil {
		return err
	}

	l.logger.Debug().Int("apps", len(apps)).Msg("apps staged for device")

	select {
	case l.flush <- struct{}{}:
	default:
	}
	l.publishLocalUUIDs(ctx)

	return nil
}

// AwaitSynced blocks until the device confirms appUUID, the timeout elapses
// or ctx is done, and reports whether the app is on the device. The waiter is
// registered before the synced state is read so a confirmation landing in
// between is not lost.
func (l *Locker) AwaitSynced(ctx context.Context, appUUID uuid.UUID, timeout time.Duration) bool {
	ch := make(chan struct{}, 1)

	l.mu.Lock()
	if l.waiters[appUUID] == nil {
		l.waiters[appUUID] = make(map[chan struct{}]struct{})
	}
	l.waiters[appUUID][ch] = struct{}{}
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		delete(l.waiters[appUUID], ch)
		if len(l.waiters[appUUID]) == 0 {
			delete(l.waiters, appUUID)
		}
		l.mu.Unlock()
	}()

	synced, err := l.repo.IsSynced(ctx, appUUID)
	if err != nil {
		l.logger.Warn().Err(err).Str("uuid", appUUID.String()).Msg("failed to read device sync state")
	}
	if synced {
		return true
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ch:
		return true
	case <-timer.C:
		return false
	case <-ctx.Done():
		return false
	}
}

// Launch asks the device to start appUUID and reports whether it accepted.
func (l *Locker) Launch(ctx context.Context, appUUID uuid.UUID) bool {
	accepted, err := l.transport.Launch(ctx, appUUID)
	if err != nil {
		l.logger.Warn().Err(err).Str("uuid", appUUID.String()).Msg("launch request failed")
		return false
	}
	return accepted
}

// Run flushes pending rows to the device every flush interval and whenever
// new apps are staged, until ctx is done.
func (l *Locker) Run(ctx context.Context) error {
	t := time.NewTicker(l.flushInterval)
	defer t.Stop()

	l.flushPending(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		case <-l.flush:
		}
		l.flushPending(ctx)
	}
}

func (l *Locker) flushPending(ctx context.Context) {
	pending, err := l.repo.ListPending(ctx)
	if err != nil {
		l.logger.Error().Err(err).Msg("failed to list pending device apps")
		return
	}
	if len(pending) == 0 {
		return
	}

	if err = l.transport.SendApps(ctx, pending); err != nil {
		l.logger.Warn().Err(err).Int("apps", len(pending)).Msg("device did not accept pending apps, will retry")
		return
	}

	ids := make([]uuid.UUID, 0, len(pending))
	for _, app := range pending {
		ids = append(ids, app.UUID)
	}
	if err = l.repo.MarkSynced(ctx, ids...); err != nil {
		l.logger.Error().Err(err).Int("apps", len(ids)).Msg("failed to mark device apps synced")
		return
	}

	l.logger.Debug().Int("apps", len(ids)).Msg("device locker synced")
	l.notifySynced(ids)
}

func (l *Locker) notifySynced(ids []uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, id := range ids {
		for ch := range l.waiters[id] {
			select {
			case ch <- struct{}{}:
			default:
			}
		}
	}
}

func (l *Locker) publishLocalUUIDs(ctx context.Context) {
	ids, err := l.repo.ListUUIDs(ctx)
	if err != nil {
		l.logger.Error().Err(err).Msg("failed to read local device uuids")
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	for sink := range l.observers {
		offerLatest(sink, ids)
	}
}

// offerLatest replaces any unread value in sink with ids.
func offerLatest(sink chan []uuid.UUID, ids []uuid.UUID) {
	for {
		select {
		case sink <- ids:
			return
		default:
		}
		select {
		case <-sink:
		default:
		}
	}
}
