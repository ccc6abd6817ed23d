package device

import (
	"context"

	"github.com/MKhiriev/go-locker-sync/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/device_transport_mock.go -package=mock

// Transport is the link to the device. SendApps returns nil only once the
// device database holds every app.
type Transport interface {
	SendApps(ctx context.Context, apps []models.ResolvedApp) error
	Launch(ctx context.Context, appUUID uuid.UUID) (bool, error)
}
