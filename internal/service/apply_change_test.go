package service

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-locker-sync/internal/device"
	"github.com/MKhiriev/go-locker-sync/internal/logger"
	"github.com/MKhiriev/go-locker-sync/internal/mock"
	"github.com/MKhiriev/go-locker-sync/internal/workers"
	"github.com/MKhiriev/go-locker-sync/models"
)

// ── ApplyCloudChange ─────────────────────────────────────────────────────────

func TestReconcileService_ApplyCloudChange_Unauthenticated(t *testing.T) {
	f := newReconcileFixture(t)
	f.auth.EXPECT().CurrentUserID().Return("", false)

	assert.Nil(t, f.svc.ApplyCloudChange(context.Background(), []models.LockerEntry{entry(uuid.New(), srcS1)}))
}

func TestReconcileService_ApplyCloudChange_SingleAppAwaitsAndLaunches(t *testing.T) {
	f := newReconcileFixture(t, srcS1, srcS2, srcFeed)
	f.signedIn()

	known, added, fromFeed := uuid.New(), uuid.New(), uuid.New()
	change := []models.LockerEntry{entry(known, srcS1), entry(added, srcS2), entry(fromFeed, srcFeed)}
	app := resolved(added, srcS2, ver("1.0"))

	gomock.InOrder(
		f.device.EXPECT().LocalUUIDs(gomock.Any()).Return(models.NewUUIDSet(known), true),
		f.sources.EXPECT().GetAllEnabledSources(gomock.Any()).Return([]models.StoreSource{srcS1, srcS2, srcFeed}, nil),
		f.fetchers[srcS2.ID].EXPECT().Fetch(gomock.Any(), []models.LockerEntry{change[1]}, false).Return([]models.ResolvedApp{app}, nil),
		f.device.EXPECT().PushApps(gomock.Any(), []models.ResolvedApp{app}),
		f.device.EXPECT().AwaitDeviceSync(gomock.Any(), added, 50*time.Millisecond).Return(true),
		f.device.EXPECT().LaunchApp(gomock.Any(), added).Return(true),
	)

	got := f.svc.ApplyCloudChange(context.Background(), change)
	assert.Equal(t, []models.ResolvedApp{app}, got)
}

func TestReconcileService_ApplyCloudChange_TimeoutSkipsLaunch(t *testing.T) {
	f := newReconcileFixture(t, srcS1)
	f.signedIn()

	a := uuid.New()
	change := []models.LockerEntry{entry(a, srcS1)}
	app := resolved(a, srcS1, nil)

	f.device.EXPECT().LocalUUIDs(gomock.Any()).Return(models.NewUUIDSet(), true)
	f.enabled(srcS1)
	f.resolves(srcS1, change, false, app)
	f.device.EXPECT().PushApps(gomock.Any(), []models.ResolvedApp{app})
	f.device.EXPECT().AwaitDeviceSync(gomock.Any(), a, gomock.Any()).Return(false)
	// LaunchApp must not be called

	got := f.svc.ApplyCloudChange(context.Background(), change)
	assert.Len(t, got, 1)
}

func TestReconcileService_ApplyCloudChange_BulkBatchDoesNotWait(t *testing.T) {
	f := newReconcileFixture(t, srcS1)
	f.signedIn()

	a, b := uuid.New(), uuid.New()
	change := []models.LockerEntry{entry(a, srcS1), entry(b, srcS1)}
	apps := []models.ResolvedApp{resolved(a, srcS1, nil), resolved(b, srcS1, nil)}

	f.device.EXPECT().LocalUUIDs(gomock.Any()).Return(models.NewUUIDSet(), true)
	f.enabled(srcS1)
	f.resolves(srcS1, change, false, apps...)
	f.device.EXPECT().PushApps(gomock.Any(), apps)

	got := f.svc.ApplyCloudChange(context.Background(), change)
	assert.Equal(t, apps, got)
}

func TestReconcileService_ApplyCloudChange_FastPathThresholdIsTunable(t *testing.T) {
	f := newReconcileFixture(t, srcS1)
	f.svc.cfg.FastPathBatchSize = 2
	f.signedIn()

	a, b := uuid.New(), uuid.New()
	change := []models.LockerEntry{entry(a, srcS1), entry(b, srcS1)}
	apps := []models.ResolvedApp{resolved(a, srcS1, nil), resolved(b, srcS1, nil)}

	f.device.EXPECT().LocalUUIDs(gomock.Any()).Return(models.NewUUIDSet(), true)
	f.enabled(srcS1)
	f.resolves(srcS1, change, false, apps...)
	f.device.EXPECT().PushApps(gomock.Any(), apps)
	f.device.EXPECT().AwaitDeviceSync(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(2)
	f.device.EXPECT().LaunchApp(gomock.Any(), gomock.Any()).Return(true).Times(2)

	f.svc.ApplyCloudChange(context.Background(), change)
}

func TestReconcileService_ApplyCloudChange_NothingNew(t *testing.T) {
	f := newReconcileFixture(t)
	f.signedIn()

	a, b := uuid.New(), uuid.New()
	f.device.EXPECT().LocalUUIDs(gomock.Any()).Return(models.NewUUIDSet(a), true)

	got := f.svc.ApplyCloudChange(context.Background(), []models.LockerEntry{entry(a, srcS1), entry(b, srcFeed)})
	assert.Nil(t, got)
}

func TestReconcileService_ApplyCloudChange_DeviceUnavailable(t *testing.T) {
	f := newReconcileFixture(t)
	f.signedIn()
	f.device.EXPECT().LocalUUIDs(gomock.Any()).Return(nil, false)

	assert.Nil(t, f.svc.ApplyCloudChange(context.Background(), []models.LockerEntry{entry(uuid.New(), srcS1)}))
}

func TestReconcileService_ApplyCloudChange_IgnoresUnrequestedAndFailures(t *testing.T) {
	f := newReconcileFixture(t, srcS1, srcS2)
	f.signedIn()

	a, b := uuid.New(), uuid.New()
	change := []models.LockerEntry{entry(a, srcS1), entry(b, srcS2)}

	f.device.EXPECT().LocalUUIDs(gomock.Any()).Return(models.NewUUIDSet(), true)
	f.enabled(srcS1, srcS2)
	f.fetchers[srcS1.ID].EXPECT().Fetch(gomock.Any(), change[:1], false).
		Return([]models.ResolvedApp{resolved(uuid.New(), srcS1, nil)}, nil)
	f.fetchers[srcS2.ID].EXPECT().Fetch(gomock.Any(), change[1:], false).
		Return(nil, errors.New("timeout"))

	assert.Nil(t, f.svc.ApplyCloudChange(context.Background(), change))
}

func TestReconcileService_ApplyCloudChange_SourceNotEnabled(t *testing.T) {
	f := newReconcileFixture(t, srcS1)
	f.signedIn()

	f.device.EXPECT().LocalUUIDs(gomock.Any()).Return(models.NewUUIDSet(), true)
	f.enabled(srcS1)

	assert.Nil(t, f.svc.ApplyCloudChange(context.Background(), []models.LockerEntry{entry(uuid.New(), srcS2)}))
}

func TestReconcileService_ApplyCloudChange_CancelledDuringSettle(t *testing.T) {
	f := newReconcileFixture(t, srcS1)
	f.svc.cfg.LaunchSettleDelay = time.Minute
	f.signedIn()

	a := uuid.New()
	change := []models.LockerEntry{entry(a, srcS1)}
	app := resolved(a, srcS1, nil)

	ctx, cancel := context.WithCancel(context.Background())
	f.device.EXPECT().LocalUUIDs(gomock.Any()).Return(models.NewUUIDSet(), true)
	f.enabled(srcS1)
	f.resolves(srcS1, change, false, app)
	f.device.EXPECT().PushApps(gomock.Any(), gomock.Any())
	f.device.EXPECT().AwaitDeviceSync(gomock.Any(), a, gomock.Any()).DoAndReturn(
		func(context.Context, uuid.UUID, time.Duration) bool {
			cancel()
			return true
		})

	done := make(chan struct{})
	go func() {
		f.svc.ApplyCloudChange(ctx, change)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("settle delay ignored cancellation")
	}
}

// ── DeviceSyncService ────────────────────────────────────────────────────────

func newTestDeviceSync(t *testing.T) (*deviceSyncService, *mock.MockDeviceLockerProxy, *workers.Tasks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	proxy := mock.NewMockDeviceLockerProxy(ctrl)
	tasks := workers.NewTasks()
	return NewDeviceSyncService(proxy, tasks, logger.Nop()).(*deviceSyncService), proxy, tasks
}

func TestDeviceSyncService_PushApps_DoesNotBlock(t *testing.T) {
	svc, proxy, tasks := newTestDeviceSync(t)
	apps := []models.ResolvedApp{resolved(uuid.New(), srcS1, nil)}

	release := make(chan struct{})
	proxy.EXPECT().InstallApps(gomock.Any(), apps).DoAndReturn(
		func(context.Context, []models.ResolvedApp) error {
			<-release
			return nil
		})

	returned := make(chan struct{})
	go func() {
		svc.PushApps(context.Background(), apps)
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("PushApps blocked on installation")
	}
	close(release)
	tasks.Wait()
}

func TestDeviceSyncService_PushApps_ErrorIsLogged(t *testing.T) {
	svc, proxy, tasks := newTestDeviceSync(t)
	proxy.EXPECT().InstallApps(gomock.Any(), gomock.Any()).Return(errors.New("db closed"))

	svc.PushApps(context.Background(), []models.ResolvedApp{resolved(uuid.New(), srcS1, nil)})
	tasks.Wait()
}

func TestDeviceSyncService_PushApps_Empty(t *testing.T) {
	svc, _, tasks := newTestDeviceSync(t)

	svc.PushApps(context.Background(), nil)
	tasks.Wait()
}

func TestDeviceSyncService_AwaitDeviceSync(t *testing.T) {
	svc, proxy, _ := newTestDeviceSync(t)
	a, b := uuid.New(), uuid.New()

	proxy.EXPECT().AwaitSynced(gomock.Any(), a, time.Second).Return(true)
	proxy.EXPECT().AwaitSynced(gomock.Any(), b, time.Second).Return(false)

	assert.True(t, svc.AwaitDeviceSync(context.Background(), a, time.Second))
	assert.False(t, svc.AwaitDeviceSync(context.Background(), b, time.Second))
}

func TestDeviceSyncService_AwaitDeviceSync_CancelIsNotTimeout(t *testing.T) {
	svc, proxy, _ := newTestDeviceSync(t)
	var buf bytes.Buffer
	svc.logger = &logger.Logger{Logger: zerolog.New(&buf)}
	appUUID := uuid.New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	proxy.EXPECT().AwaitSynced(gomock.Any(), appUUID, time.Second).Return(false)

	assert.False(t, svc.AwaitDeviceSync(ctx, appUUID, time.Second))
	assert.NotContains(t, buf.String(), "timed out")
	assert.Contains(t, buf.String(), "stopped waiting")
}

func TestDeviceSyncService_AwaitDeviceSync_TimeoutIsLogged(t *testing.T) {
	svc, proxy, _ := newTestDeviceSync(t)
	var buf bytes.Buffer
	svc.logger = &logger.Logger{Logger: zerolog.New(&buf)}
	appUUID := uuid.New()

	proxy.EXPECT().AwaitSynced(gomock.Any(), appUUID, time.Second).Return(false)

	assert.False(t, svc.AwaitDeviceSync(context.Background(), appUUID, time.Second))
	assert.Contains(t, buf.String(), "timed out waiting for device to confirm app")
}

func TestDeviceSyncService_LaunchApp(t *testing.T) {
	svc, proxy, _ := newTestDeviceSync(t)
	a := uuid.New()

	proxy.EXPECT().Launch(gomock.Any(), a).Return(true)
	assert.True(t, svc.LaunchApp(context.Background(), a))
}

func TestDeviceSyncService_LocalUUIDs(t *testing.T) {
	svc, proxy, _ := newTestDeviceSync(t)
	a, b := uuid.New(), uuid.New()

	proxy.EXPECT().ObserveLocalUUIDs(gomock.Any()).DoAndReturn(func(ctx context.Context) <-chan []uuid.UUID {
		ch := make(chan []uuid.UUID, 1)
		ch <- []uuid.UUID{a, b}
		return ch
	})

	got, ok := svc.LocalUUIDs(context.Background())
	require.True(t, ok)
	assert.ElementsMatch(t, []uuid.UUID{a, b}, got.Sorted())
}

func TestDeviceSyncService_LocalUUIDs_Closed(t *testing.T) {
	svc, proxy, _ := newTestDeviceSync(t)

	proxy.EXPECT().ObserveLocalUUIDs(gomock.Any()).DoAndReturn(func(context.Context) <-chan []uuid.UUID {
		ch := make(chan []uuid.UUID)
		close(ch)
		return ch
	})

	_, ok := svc.LocalUUIDs(context.Background())
	assert.False(t, ok)
}

func TestDeviceSyncService_LocalUUIDs_Cancelled(t *testing.T) {
	svc, proxy, _ := newTestDeviceSync(t)
	proxy.EXPECT().ObserveLocalUUIDs(gomock.Any()).Return(make(chan []uuid.UUID))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, ok := svc.LocalUUIDs(ctx)
	assert.False(t, ok)
}

func TestDeviceSyncService_LocalUUIDs_DeviceReadErrorDoesNotBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDeviceLockerRepository(ctrl)
	known := uuid.New()

	var calls atomic.Int32
	repo.EXPECT().ListUUIDs(gomock.Any()).DoAndReturn(func(context.Context) ([]uuid.UUID, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("database is locked")
		}
		return []uuid.UUID{known}, nil
	}).Times(2)

	locker := device.NewLocker(repo, mock.NewMockTransport(ctrl), time.Hour, logger.Nop())
	svc := NewDeviceSyncService(locker, workers.NewTasks(), logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	_, ok := svc.LocalUUIDs(ctx)
	assert.False(t, ok)
	assert.Less(t, time.Since(start), time.Second, "read error must not wait for the deadline")

	got, ok := svc.LocalUUIDs(ctx)
	require.True(t, ok)
	assert.True(t, got.Has(known))
}
