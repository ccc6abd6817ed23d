package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-locker-sync/internal/logger"
	"github.com/MKhiriev/go-locker-sync/models"
	"github.com/google/uuid"
)

type deviceLockerRepository struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

func NewDeviceLockerRepository(db *DB, logger *logger.Logger) DeviceLockerRepository {
	return &deviceLockerRepository{db: db, now: time.Now, logger: logger}
}

func (r *deviceLockerRepository) Upsert(ctx context.Context, apps ...models.ResolvedApp) error {
	if len(apps) == 0 {
		return nil
	}

	return r.db.withBusyRetry(ctx, func() error {
		return r.upsertTx(ctx, apps)
	})
}

func (r *deviceLockerRepository) upsertTx(ctx context.Context, apps []models.ResolvedApp) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	now := r.now().UTC()
	for _, app := range apps {
		query, args, err := buildUpsertDeviceAppQuery(app, now)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			r.logger.Err(err).
				Str("func", "deviceLockerRepository.Upsert").
				Str("uuid", app.UUID.String()).
				Msg("failed to upsert device locker row")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (r *deviceLockerRepository) ListUUIDs(ctx context.Context) ([]uuid.UUID, error) {
	query, args, err := buildListDeviceUUIDsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var raw string
		if err = rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			r.logger.Warn().Err(err).Str("uuid", raw).Msg("skipping device locker row with malformed uuid")
			continue
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

func (r *deviceLockerRepository) ListPending(ctx context.Context) ([]models.ResolvedApp, error) {
	query, args, err := buildListPendingQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var apps []models.ResolvedApp
	for rows.Next() {
		var (
			raw     string
			app     models.ResolvedApp
			version sql.NullString
		)
		if err = rows.Scan(&raw, &app.ID, &app.Name, &version, &app.Source); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if app.UUID, err = uuid.Parse(raw); err != nil {
			r.logger.Warn().Err(err).Str("uuid", raw).Msg("skipping device locker row with malformed uuid")
			continue
		}
		if version.Valid {
			v := version.String
			app.Version = &v
		}
		apps = append(apps, app)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return apps, nil
}

func (r *deviceLockerRepository) MarkSynced(ctx context.Context, uuids ...uuid.UUID) error {
	if len(uuids) == 0 {
		return nil
	}

	query, args, err := buildMarkSyncedQuery(uuids)
	if err != nil {
		return err
	}

	return r.db.withBusyRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return ErrDeviceEntryNotFound
		}
		return nil
	})
}

func (r *deviceLockerRepository) IsSynced(ctx context.Context, appUUID uuid.UUID) (bool, error) {
	query, args, err := buildIsSyncedQuery(appUUID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var synced bool
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&synced)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return synced, nil
}
