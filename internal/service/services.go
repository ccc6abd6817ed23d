package service

import (
	"github.com/MKhiriev/go-locker-sync/internal/adapter"
	"github.com/MKhiriev/go-locker-sync/internal/config"
	"github.com/MKhiriev/go-locker-sync/internal/logger"
	"github.com/MKhiriev/go-locker-sync/internal/store"
	"github.com/MKhiriev/go-locker-sync/internal/utils"
	"github.com/MKhiriev/go-locker-sync/internal/workers"
)

type ClientServices struct {
	Auth       *TokenAuthContext
	Reconcile  ReconcileService
	DeviceSync DeviceSyncService
	Locker     LockerService
	Search     *SearchService
	SessionJob LockerSessionJob
}

func NewClientServices(
	cfg *config.ClientConfig,
	auth *TokenAuthContext,
	storages *store.ClientStorages,
	cloud adapter.CloudLockerClient,
	stores *adapter.StoreClients,
	proxy DeviceLockerProxy,
	onResult ResultHandler,
	log *logger.Logger,
) *ClientServices {
	tasks := workers.NewTasks()

	deviceSvc := NewDeviceSyncService(proxy, tasks, log)
	reconcileSvc := NewReconcileService(auth, storages.SourceRepository, stores.Fetcher, cloud, deviceSvc, tasks, ReconcileConfig{
		DefaultFeedURL:    cfg.App.DefaultFeedURL,
		FastPathBatchSize: cfg.Workers.FastPathBatchSize,
		DeviceSyncTimeout: cfg.Workers.DeviceSyncTimeout,
		LaunchSettleDelay: cfg.Workers.LaunchSettleDelay,
	}, log)

	return &ClientServices{
		Auth:       auth,
		Reconcile:  reconcileSvc,
		DeviceSync: deviceSvc,
		Locker:     NewLockerService(auth, cloud, reconcileSvc, utils.DefaultRetryConfig(cfg.Adapter.RetryAttempts), log),
		Search:     NewSearchService(stores.Searcher, log),
		SessionJob: NewLockerSessionJob(cloud, reconcileSvc, SessionJobConfig{
			ReconcileInterval: cfg.Workers.ReconcileInterval,
			QueueCapacity:     cfg.Workers.QueueCapacity,
		}, onResult, log),
	}
}
