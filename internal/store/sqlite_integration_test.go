// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-locker-sync/internal/config"
	"github.com/MKhiriev/go-locker-sync/internal/logger"
	"github.com/MKhiriev/go-locker-sync/models"
)

func newInMemoryStorages(t *testing.T) *ClientStorages {
	t.Helper()
	s, err := NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: ":memory:"}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func strPtr(s string) *string { return &s }

func TestNewClientStorages_FileDSN(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locker.db")
	s, err := NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: path}}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Close())
	assert.FileExists(t, path)
}

func TestSQLite_SourceRegistry(t *testing.T) {
	ctx := context.Background()
	repo := newInMemoryStorages(t).SourceRepository

	feed, err := repo.EnsureSource(ctx, models.StoreSource{URL: "https://feed.example.com", Title: "Feed", Enabled: true, Priority: 0})
	require.NoError(t, err)
	again, err := repo.EnsureSource(ctx, models.StoreSource{URL: "https://feed.example.com", Title: "Other", Enabled: true, Priority: 3})
	require.NoError(t, err)
	assert.Equal(t, feed, again)

	s2, err := repo.AddSource(ctx, models.StoreSource{URL: "https://s2.example.com", Title: "S2", Enabled: true, Priority: 10})
	require.NoError(t, err)
	s3, err := repo.AddSource(ctx, models.StoreSource{URL: "https://s3.example.com", Title: "S3", Enabled: true, Priority: 10})
	require.NoError(t, err)

	_, err = repo.AddSource(ctx, models.StoreSource{URL: "https://s2.example.com"})
	assert.ErrorIs(t, err, ErrSourceAlreadyExists)

	enabled, err := repo.GetAllEnabledSources(ctx)
	require.NoError(t, err)
	require.Len(t, enabled, 3)
	assert.Equal(t, []int64{s2.ID, s3.ID, feed.ID}, []int64{enabled[0].ID, enabled[1].ID, enabled[2].ID})

	require.NoError(t, repo.SetEnabled(ctx, s2.ID, false))
	enabled, err = repo.GetAllEnabledSources(ctx)
	require.NoError(t, err)
	assert.Len(t, enabled, 2)

	got, err := repo.GetSource(ctx, s2.ID)
	require.NoError(t, err)
	assert.False(t, got.Enabled)

	_, err = repo.GetSource(ctx, 12345)
	assert.ErrorIs(t, err, ErrSourceNotFound)
}

func TestSQLite_DeviceLocker(t *testing.T) {
	ctx := context.Background()
	repo := newInMemoryStorages(t).DeviceLockerRepository.(*deviceLockerRepository)

	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return clock }

	a := models.ResolvedApp{UUID: uuid.New(), ID: "a", Name: "Alpha", Version: strPtr("1.0"), Source: "https://s1.example.com"}
	b := models.ResolvedApp{UUID: uuid.New(), ID: "b", Name: "Beta", Source: "https://s2.example.com"}

	require.NoError(t, repo.Upsert(ctx, a))
	clock = clock.Add(time.Second)
	require.NoError(t, repo.Upsert(ctx, b))

	pending, err := repo.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, a, pending[0])
	assert.Nil(t, pending[1].Version)

	synced, err := repo.IsSynced(ctx, a.UUID)
	require.NoError(t, err)
	assert.False(t, synced)

	require.NoError(t, repo.MarkSynced(ctx, a.UUID))
	synced, err = repo.IsSynced(ctx, a.UUID)
	require.NoError(t, err)
	assert.True(t, synced)

	pending, err = repo.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, b.UUID, pending[0].UUID)

	// a re-upsert puts the row back in the queue
	a.Version = strPtr("1.1")
	require.NoError(t, repo.Upsert(ctx, a))
	synced, err = repo.IsSynced(ctx, a.UUID)
	require.NoError(t, err)
	assert.False(t, synced)

	ids, err := repo.ListUUIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{a.UUID, b.UUID}, ids)

	missing, err := repo.IsSynced(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, missing)

	assert.ErrorIs(t, repo.MarkSynced(ctx, uuid.New()), ErrDeviceEntryNotFound)
}
