package service

import (
	"context"

	"github.com/MKhiriev/go-locker-sync/internal/adapter"
	"github.com/MKhiriev/go-locker-sync/internal/logger"
	"github.com/MKhiriev/go-locker-sync/internal/utils"
	"github.com/MKhiriev/go-locker-sync/models"
	"github.com/google/uuid"
)

type lockerService struct {
	auth      AuthContext
	cloud     adapter.CloudLockerClient
	reconcile ReconcileService
	retry     utils.RetryConfig
	logger    *logger.Logger
}

func NewLockerService(auth AuthContext, cloud adapter.CloudLockerClient, reconcile ReconcileService, retry utils.RetryConfig, log *logger.Logger) LockerService {
	return &lockerService{
		auth:      auth,
		cloud:     cloud,
		reconcile: reconcile,
		retry:     retry,
		logger:    log,
	}
}

// AddApp implements LockerService. The entry is recorded against source; a
// transient cloud failure is retried, anything else fails at once.
func (s *lockerService) AddApp(ctx context.Context, app models.StoreApp, source models.StoreSource, timelineToken *string) bool {
	userID, ok := s.auth.CurrentUserID()
	if !ok {
		s.logger.Error().Err(ErrUnauthenticated).Msg("cannot add app")
		return false
	}
	if app.UUID == uuid.Nil {
		s.logger.Error().Err(ErrInvalidApp).Str("appstore_id", app.ID).Msg("cannot add app")
		return false
	}

	entry := models.LockerEntry{
		UUID:           app.UUID,
		AppstoreID:     app.ID,
		AppstoreSource: source.URL,
		TimelineToken:  timelineToken,
	}
	_, err := utils.WithRetry(ctx, s.retry, adapter.IsNetworkUnavailable, func() (struct{}, error) {
		return struct{}{}, s.cloud.Add(ctx, userID, entry)
	})
	if err != nil {
		s.logger.Error().Err(err).
			Str("user_id", userID).
			Str("appstore_id", app.ID).
			Str("uuid", app.UUID.String()).
			Msg("error adding locker entry")
		return false
	}

	return true
}

// RemoveApp implements LockerService.
func (s *lockerService) RemoveApp(ctx context.Context, appUUID uuid.UUID) bool {
	userID, ok := s.auth.CurrentUserID()
	if !ok {
		s.logger.Error().Err(ErrUnauthenticated).Msg("cannot remove app")
		return false
	}

	_, err := utils.WithRetry(ctx, s.retry, adapter.IsNetworkUnavailable, func() (struct{}, error) {
		return struct{}{}, s.cloud.Remove(ctx, userID, appUUID)
	})
	if err != nil {
		s.logger.Error().Err(err).
			Str("user_id", userID).
			Str("uuid", appUUID.String()).
			Msg("error removing locker entry")
		return false
	}

	return true
}

// FetchLocker implements LockerService.
func (s *lockerService) FetchLocker(ctx context.Context, forceRefresh bool) (models.LockerResult, bool) {
	if _, ok := s.auth.CurrentUserID(); !ok {
		return models.LockerResult{}, false
	}

	entries, ok := s.reconcile.Snapshot()
	if !ok {
		s.logger.Warn().Err(ErrNoSnapshot).Msg("cannot fetch locker")
		return models.LockerResult{}, false
	}

	return s.reconcile.Reconcile(ctx, entries, forceRefresh), true
}
