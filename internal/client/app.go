package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-locker-sync/internal/adapter"
	"github.com/MKhiriev/go-locker-sync/internal/config"
	"github.com/MKhiriev/go-locker-sync/internal/device"
	"github.com/MKhiriev/go-locker-sync/internal/logger"
	"github.com/MKhiriev/go-locker-sync/internal/service"
	"github.com/MKhiriev/go-locker-sync/internal/store"
	"github.com/MKhiriev/go-locker-sync/internal/workers"
	"github.com/MKhiriev/go-locker-sync/models"
)

const defaultFeedTitle = "Default feed"

type App struct {
	services *service.ClientServices
	storages *store.ClientStorages
	locker   *device.Locker
	logger   *logger.Logger
}

// NewApp signs the configured user in, opens local storage, registers the
// default feed and builds every component the session needs.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	auth := service.NewTokenAuthContext()
	userID, err := auth.SignIn(cfg.App.UserToken)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}

	cloud, err := adapter.NewHTTPCloudLocker(cfg.Adapter, auth.Token, log)
	if err != nil {
		return nil, fmt.Errorf("create cloud locker client: %w", err)
	}
	bridge, err := adapter.NewHTTPDeviceBridge(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create device bridge: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	feed, err := storages.SourceRepository.EnsureSource(ctx, models.StoreSource{
		URL:     cfg.App.DefaultFeedURL,
		Title:   defaultFeedTitle,
		Enabled: true,
	})
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("register default feed: %w", err)
	}
	log.Debug().Int64("source_id", feed.ID).Str("url", feed.URL).Msg("default feed registered")

	locker := device.NewLocker(storages.DeviceLockerRepository, bridge, cfg.Workers.DeviceFlushInterval, log)
	userLog := log.ForUser(userID)
	services := service.NewClientServices(cfg, auth, storages, cloud, adapter.NewStoreClients(cfg.Adapter, log), locker, logResult(userLog), log)

	return &App{
		services: services,
		storages: storages,
		locker:   locker,
		logger:   userLog,
	}, nil
}

// Run flushes the device locker in the background and runs the signed-in
// user's locker session until ctx is done. Storage is closed on return.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Error().Err(err).Msg("close local storage")
		}
	}()

	userID, ok := a.services.Auth.CurrentUserID()
	if !ok {
		return service.ErrUnauthenticated
	}

	session := workers.WorkerFunc(func(ctx context.Context) error {
		a.services.SessionJob.Start(ctx, userID)
		<-ctx.Done()
		a.services.SessionJob.Stop()
		return nil
	})

	a.logger.Info().Msg("locker sync client started")
	err := workers.NewWorkers(a.locker, session).Run(ctx)
	a.logger.Info().Msg("locker sync client stopped")

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func logResult(log *logger.Logger) service.ResultHandler {
	return func(r models.LockerResult) {
		ev := log.Info()
		if r.FailedToFetch.Len() > 0 {
			ev = log.Warn()
		}
		ev.Int("apps", len(r.Apps)).Int("failed", r.FailedToFetch.Len()).Msg("locker reconciled")
	}
}
