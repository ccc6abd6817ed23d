// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer clients for the collaborators the
// locker sync engine talks to: the cloud locker store, the app-store sources
// and the device bridge daemon.
//
// Every client is an HTTP/REST implementation built on resty via
// [utils.HTTPClient]; the cloud live subscription uses a websocket.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling. Cloud errors are additionally folded into the two-class
// taxonomy [ErrNetworkUnavailable] / [ErrUnknown] by classifyCloudError.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-locker-sync/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CloudLockerClient is the narrow client of the per-user cloud locker store.
//
// Every returned error wraps either [ErrNetworkUnavailable] (transient,
// retryable at the caller's discretion) or [ErrUnknown] (never retried
// automatically).
type CloudLockerClient interface {
	// Add inserts or overwrites the entry stored under entry.DocumentID().
	Add(ctx context.Context, userID string, entry models.LockerEntry) error

	// Remove deletes every locker entry of userID with the given app uuid.
	Remove(ctx context.Context, userID string, appUUID uuid.UUID) error

	// List returns the current locker of userID.
	List(ctx context.Context, userID string) ([]models.LockerEntry, error)

	// Observe streams full locker snapshots for userID. The first value is the
	// state at subscription time; a new value follows every change. The
	// channel is closed when ctx is done.
	Observe(ctx context.Context, userID string) <-chan []models.LockerEntry
}

// StoreFetcher resolves locker entries against one store source.
type StoreFetcher interface {
	// Fetch resolves entries to app metadata tagged with the fetcher's source
	// URL. Entries the source does not know are omitted, never reported as an
	// error. useCache allows previously resolved metadata to be reused.
	Fetch(ctx context.Context, entries []models.LockerEntry, useCache bool) ([]models.ResolvedApp, error)
}

// StoreSearcher runs catalog searches against one store source.
type StoreSearcher interface {
	// Search returns one page of results in the store's native ranking.
	Search(ctx context.Context, req models.SearchRequest) ([]models.SourcedStoreApp, error)
}

// FetcherFactory returns the fetcher for a store source.
type FetcherFactory func(source models.StoreSource) StoreFetcher

// SearcherFactory returns the searcher for a store source.
type SearcherFactory func(source models.StoreSource) StoreSearcher
