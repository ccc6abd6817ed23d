package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-locker-sync/internal/adapter"
	"github.com/MKhiriev/go-locker-sync/internal/config"
	"github.com/MKhiriev/go-locker-sync/internal/logger"
	"github.com/MKhiriev/go-locker-sync/internal/utils"
	"github.com/MKhiriev/go-locker-sync/models"
)

// ResultHandler receives the result of every pass a session runs.
type ResultHandler func(models.LockerResult)

// SessionJobConfig tunes a locker session.
type SessionJobConfig struct {
	ReconcileInterval time.Duration
	QueueCapacity     int
}

type lockerSessionJob struct {
	cloud     adapter.CloudLockerClient
	reconcile ReconcileService
	cfg       SessionJobConfig
	onResult  ResultHandler
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewLockerSessionJob creates a job that feeds userID's cloud locker into
// reconcile. The job is idle until Start is called. onResult may be nil.
func NewLockerSessionJob(cloud adapter.CloudLockerClient, reconcile ReconcileService, cfg SessionJobConfig, onResult ResultHandler, log *logger.Logger) LockerSessionJob {
	return &lockerSessionJob{
		cloud:     cloud,
		reconcile: reconcile,
		cfg:       cfg,
		onResult:  onResult,
		logger:    log,
	}
}

// Start implements LockerSessionJob. It stops any running session, subscribes
// to the cloud locker and starts one producer and one consumer goroutine. The
// producer queues every snapshot plus a tick every ReconcileInterval; the
// consumer handles them one at a time, so passes never overlap.
func (j *lockerSessionJob) Start(ctx context.Context, userID string) {
	interval := j.cfg.ReconcileInterval
	if interval <= 0 {
		interval = config.DefaultReconcileInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(2)
	j.mu.Unlock()

	q := newWorkQueue(j.cfg.QueueCapacity)
	log := j.logger.ForUser(userID)
	log.Info().Dur("interval", interval).Msg("locker session started")

	go func() {
		defer j.wg.Done()
		j.produce(jobCtx, userID, interval, q, log)
	}()
	go func() {
		defer j.wg.Done()
		j.consume(jobCtx, q, log)
	}()
}

func (j *lockerSessionJob) produce(ctx context.Context, userID string, interval time.Duration, q *workQueue, log *logger.Logger) {
	updates := j.cloud.Observe(ctx, userID)
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case entries, ok := <-updates:
			if !ok {
				return
			}
			batchID := utils.NewBatchID()
			q.push(workItem{kind: workSnapshot, batchID: batchID, entries: entries})
			log.Debug().Str("batch_id", batchID).Int("entries", len(entries)).Msg("cloud locker snapshot queued")
		case <-t.C:
			q.push(workItem{kind: workTick, batchID: utils.NewBatchID()})
		}
	}
}

func (j *lockerSessionJob) consume(ctx context.Context, q *workQueue, log *logger.Logger) {
	first := true
	for {
		select {
		case <-ctx.Done():
			return
		case <-q.wait():
		}

		for {
			if ctx.Err() != nil {
				return
			}
			it, ok := q.tryPop()
			if !ok {
				break
			}
			if j.handle(ctx, it, first, log) {
				first = false
			}
		}
	}
}

// handle runs one queued item and reports whether a pass ran. The session's
// first pass bypasses the fetch caches.
func (j *lockerSessionJob) handle(ctx context.Context, it workItem, force bool, log *logger.Logger) bool {
	ctx = utils.WithBatchID(ctx, it.batchID)

	var entries []models.LockerEntry
	switch it.kind {
	case workSnapshot:
		entries = it.entries
		j.reconcile.SetSnapshot(entries)
		j.reconcile.ApplyCloudChange(ctx, entries)
	case workTick:
		var ok bool
		if entries, ok = j.reconcile.Snapshot(); !ok {
			return false
		}
	default:
		return false
	}

	result := j.reconcile.Reconcile(ctx, entries, force)
	log.Debug().
		Str("batch_id", it.batchID).
		Int("apps", len(result.Apps)).
		Int("failed", result.FailedToFetch.Len()).
		Msg("locker pass done")

	if j.onResult != nil {
		j.onResult(result)
	}
	return true
}

// Stop implements LockerSessionJob. It cancels the session, waits for its
// goroutines and then cancels the session's background writes. Safe to call
// when the job is not running.
func (j *lockerSessionJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	j.wg.Wait()

	j.reconcile.CancelBackground()
	j.reconcile.WaitBackground()
}
