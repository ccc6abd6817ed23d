package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-locker-sync/internal/config"
	"github.com/MKhiriev/go-locker-sync/internal/logger"
)

// ClientStorages groups the local repositories into a single value that is
// passed to the composition root.
type ClientStorages struct {
	// SourceRepository is the store source registry.
	SourceRepository AppstoreSourceRepository
	// DeviceLockerRepository mirrors the device's locker database.
	DeviceLockerRepository DeviceLockerRepository

	db *DB
}

// NewClientStorages opens the SQLite database named by cfg.DB.DSN, runs
// pending migrations and constructs the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SourceRepository:       NewAppstoreSourceRepository(db, logger),
		DeviceLockerRepository: NewDeviceLockerRepository(db, logger),
		db:                     db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
