// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the locker synchronization engine: the
// reconciliation of the cloud locker against every enabled store source, the
// device sync handshake, user-initiated locker actions and paged store search.
//
// Collaborators are consumed through narrow interfaces. The cloud locker and
// the store clients come from the adapter package; the device side is reached
// through [DeviceLockerProxy], which the composition root satisfies with the
// device package.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-locker-sync/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthContext exposes the signed-in user. A missing user short-circuits every
// locker operation to an empty or negative result.
type AuthContext interface {
	CurrentUserID() (string, bool)
}

// DeviceLockerProxy is the boundary to the wearable's locker database.
type DeviceLockerProxy interface {
	// ObserveLocalUUIDs streams the uuids present in the device database,
	// current value first. The channel is closed when ctx is done.
	ObserveLocalUUIDs(ctx context.Context) <-chan []uuid.UUID
	InstallApps(ctx context.Context, apps []models.ResolvedApp) error
	// AwaitSynced reports whether the device confirmed appUUID before timeout.
	AwaitSynced(ctx context.Context, appUUID uuid.UUID, timeout time.Duration) bool
	Launch(ctx context.Context, appUUID uuid.UUID) bool
}

// ReconcileService merges the cloud locker with the store sources.
type ReconcileService interface {
	// Reconcile runs one pass over entries and returns one winning app per
	// uuid plus the cloud uuids nothing resolved. Faults never escape a pass;
	// they show up as missing apps or skipped write-backs.
	Reconcile(ctx context.Context, entries []models.LockerEntry, forceRefresh bool) models.LockerResult

	// ApplyCloudChange forwards apps added on another device to the device
	// and returns the apps it forwarded.
	ApplyCloudChange(ctx context.Context, entries []models.LockerEntry) []models.ResolvedApp

	SetSnapshot(entries []models.LockerEntry)
	// Snapshot returns the last cloud locker seen; false until the first one
	// arrived.
	Snapshot() ([]models.LockerEntry, bool)

	// CancelBackground cancels pending write-backs and adoptions.
	CancelBackground()
	WaitBackground()
}

// DeviceSyncService drives new apps onto the device.
type DeviceSyncService interface {
	// PushApps stages apps for installation without blocking the caller.
	PushApps(ctx context.Context, apps []models.ResolvedApp)
	// AwaitDeviceSync returns false once timeout elapses. A timeout is an
	// expected outcome, not an error.
	AwaitDeviceSync(ctx context.Context, appUUID uuid.UUID, timeout time.Duration) bool
	LaunchApp(ctx context.Context, appUUID uuid.UUID) bool
	// LocalUUIDs returns the uuids currently in the device database; false
	// if they could not be read before ctx ended.
	LocalUUIDs(ctx context.Context) (models.UUIDSet, bool)
}

// LockerService carries out user-initiated locker actions. Failures are
// logged and reported as false.
type LockerService interface {
	AddApp(ctx context.Context, app models.StoreApp, source models.StoreSource, timelineToken *string) bool
	RemoveApp(ctx context.Context, appUUID uuid.UUID) bool
	// FetchLocker reconciles the current cloud snapshot. It returns false
	// when no user is signed in or no snapshot has arrived yet.
	FetchLocker(ctx context.Context, forceRefresh bool) (models.LockerResult, bool)
}

// LockerSessionJob follows the cloud locker of one user in the background.
type LockerSessionJob interface {
	// Start subscribes to userID's locker. A running session is stopped first.
	Start(ctx context.Context, userID string)
	// Stop ends the session and blocks until its goroutines have exited.
	Stop()
}
