// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the local SQLite persistence of the locker sync client:
// the store source registry and the mirror of the wearable's locker database.
// Cloud locker state is not persisted here; it belongs to the cloud.
package store

import (
	"context"

	"github.com/MKhiriev/go-locker-sync/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AppstoreSourceRepository is the store source registry.
type AppstoreSourceRepository interface {
	// GetAllEnabledSources returns enabled sources, highest priority first,
	// then ascending id.
	GetAllEnabledSources(ctx context.Context) ([]models.StoreSource, error)
	GetSource(ctx context.Context, id int64) (models.StoreSource, error)
	// AddSource inserts src and returns it with its assigned id. A URL that is
	// already registered yields ErrSourceAlreadyExists.
	AddSource(ctx context.Context, src models.StoreSource) (models.StoreSource, error)
	SetEnabled(ctx context.Context, id int64, enabled bool) error
	// EnsureSource inserts src unless its URL is already registered and
	// returns the stored row either way.
	EnsureSource(ctx context.Context, src models.StoreSource) (models.StoreSource, error)
}

// DeviceLockerRepository is the local mirror of the device's locker database.
// Rows start pending and become synced once the device confirmed them.
type DeviceLockerRepository interface {
	// Upsert stores apps and marks every written row pending.
	Upsert(ctx context.Context, apps ...models.ResolvedApp) error
	ListUUIDs(ctx context.Context) ([]uuid.UUID, error)
	ListPending(ctx context.Context) ([]models.ResolvedApp, error)
	MarkSynced(ctx context.Context, uuids ...uuid.UUID) error
	// IsSynced reports whether the row exists and is synced.
	IsSynced(ctx context.Context, appUUID uuid.UUID) (bool, error)
}
