package service

import (
	"context"
	"slices"
	"time"

	"github.com/MKhiriev/go-locker-sync/internal/logger"
	"github.com/MKhiriev/go-locker-sync/internal/workers"
	"github.com/MKhiriev/go-locker-sync/models"
	"github.com/google/uuid"
)

type deviceSyncService struct {
	proxy  DeviceLockerProxy
	tasks  *workers.Tasks
	logger *logger.Logger
}

func NewDeviceSyncService(proxy DeviceLockerProxy, tasks *workers.Tasks, log *logger.Logger) DeviceSyncService {
	return &deviceSyncService{proxy: proxy, tasks: tasks, logger: log}
}

// PushApps implements DeviceSyncService. Installation runs on the background
// handle; a failure is logged and the apps are picked up by the next pass.
func (s *deviceSyncService) PushApps(_ context.Context, apps []models.ResolvedApp) {
	if len(apps) == 0 {
		return
	}
	apps = slices.Clone(apps)

	s.tasks.Go(func(ctx context.Context) {
		if err := s.proxy.InstallApps(ctx, apps); err != nil {
			s.logger.Warn().Err(err).Int("apps", len(apps)).Msg("failed to stage apps for device")
		}
	})
}

// AwaitDeviceSync implements DeviceSyncService. Only a wait that ran out
// its timeout is reported as one; a cancelled wait is logged at debug level.
func (s *deviceSyncService) AwaitDeviceSync(ctx context.Context, appUUID uuid.UUID, timeout time.Duration) bool {
	if s.proxy.AwaitSynced(ctx, appUUID, timeout) {
		return true
	}

	if err := ctx.Err(); err != nil {
		s.logger.Debug().
			Err(err).
			Str("uuid", appUUID.String()).
			Msg("stopped waiting for device to confirm app")
		return false
	}

	s.logger.Warn().
		Str("uuid", appUUID.String()).
		Dur("timeout", timeout).
		Msg("timed out waiting for device to confirm app")
	return false
}

// LaunchApp implements DeviceSyncService.
func (s *deviceSyncService) LaunchApp(ctx context.Context, appUUID uuid.UUID) bool {
	return s.proxy.Launch(ctx, appUUID)
}

// LocalUUIDs implements DeviceSyncService. It takes the first value of the
// device observation and unsubscribes.
func (s *deviceSyncService) LocalUUIDs(ctx context.Context) (models.UUIDSet, bool) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	select {
	case ids, ok := <-s.proxy.ObserveLocalUUIDs(ctx):
		if !ok {
			return nil, false
		}
		return models.NewUUIDSet(ids...), true
	case <-ctx.Done():
		return nil, false
	}
}
