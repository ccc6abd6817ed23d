package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-locker-sync/internal/logger"
	"github.com/MKhiriev/go-locker-sync/models"
)

type appstoreSourceRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewAppstoreSourceRepository(db *DB, logger *logger.Logger) AppstoreSourceRepository {
	return &appstoreSourceRepository{db: db, logger: logger}
}

func (r *appstoreSourceRepository) GetAllEnabledSources(ctx context.Context) ([]models.StoreSource, error) {
	query, args, err := buildGetEnabledSourcesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "appstoreSourceRepository.GetAllEnabledSources").Msg("failed to query enabled sources")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var sources []models.StoreSource
	for rows.Next() {
		var src models.StoreSource
		if err = rows.Scan(&src.ID, &src.URL, &src.Title, &src.Enabled, &src.Priority); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		sources = append(sources, src)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return sources, nil
}

func (r *appstoreSourceRepository) GetSource(ctx context.Context, id int64) (models.StoreSource, error) {
	query, args, err := buildGetSourceQuery(id)
	if err != nil {
		return models.StoreSource{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.scanOne(ctx, query, args)
}

func (r *appstoreSourceRepository) AddSource(ctx context.Context, src models.StoreSource) (models.StoreSource, error) {
	query, args, err := buildInsertSourceQuery(src, false)
	if err != nil {
		return models.StoreSource{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return models.StoreSource{}, fmt.Errorf("%w: %s", ErrSourceAlreadyExists, src.URL)
		}
		r.logger.Err(err).Str("func", "appstoreSourceRepository.AddSource").Str("source", src.URL).Msg("failed to insert source")
		return models.StoreSource{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.StoreSource{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	src.ID = id

	return src, nil
}

func (r *appstoreSourceRepository) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	query, args, err := buildSetEnabledQuery(id, enabled)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrSourceNotFound
	}

	return nil
}

func (r *appstoreSourceRepository) EnsureSource(ctx context.Context, src models.StoreSource) (models.StoreSource, error) {
	query, args, err := buildInsertSourceQuery(src, true)
	if err != nil {
		return models.StoreSource{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "appstoreSourceRepository.EnsureSource").Str("source", src.URL).Msg("failed to seed source")
		return models.StoreSource{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	query, args, err = buildGetSourceByURLQuery(src.URL)
	if err != nil {
		return models.StoreSource{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.scanOne(ctx, query, args)
}

func (r *appstoreSourceRepository) scanOne(ctx context.Context, query string, args []any) (models.StoreSource, error) {
	var src models.StoreSource
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&src.ID, &src.URL, &src.Title, &src.Enabled, &src.Priority)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoreSource{}, ErrSourceNotFound
	}
	if err != nil {
		return models.StoreSource{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return src, nil
}
