package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-locker-sync/internal/config"
	"github.com/MKhiriev/go-locker-sync/internal/logger"
	"github.com/MKhiriev/go-locker-sync/internal/utils"
	"github.com/MKhiriev/go-locker-sync/models"
	"github.com/google/uuid"
)

type sendAppsRequest struct {
	Apps []models.ResolvedApp `json:"apps"`
}

type launchResponse struct {
	Accepted bool `json:"accepted"`
}

// HTTPDeviceBridge talks to the local bridge daemon that owns the wireless
// link to the wearable.
type HTTPDeviceBridge struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPDeviceBridge constructs a bridge client for adapterCfg.DeviceBridgeAddress.
func NewHTTPDeviceBridge(adapterCfg config.ClientAdapter, log *logger.Logger) (*HTTPDeviceBridge, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.DeviceBridgeAddress, schemeHTTP)
	if err != nil {
		return nil, fmt.Errorf("%w: device bridge address: %w", ErrInvalidAddress, err)
	}

	return &HTTPDeviceBridge{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: log,
	}, nil
}

// SendApps hands apps to the bridge for installation on the device via
// POST /api/device/locker. A 2xx answer means the device database holds them.
func (b *HTTPDeviceBridge) SendApps(ctx context.Context, apps []models.ResolvedApp) error {
	resp, err := b.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(sendAppsRequest{Apps: apps}).
		Post("/api/device/locker")
	if err != nil {
		return fmt.Errorf("send apps request: %w", err)
	}

	return mapHTTPError(resp)
}

// Launch asks the bridge to start the app via
// POST /api/device/apps/{uuid}/launch and reports whether the device accepted.
func (b *HTTPDeviceBridge) Launch(ctx context.Context, appUUID uuid.UUID) (bool, error) {
	resp, err := b.client.R().
		SetContext(ctx).
		Post("/api/device/apps/" + appUUID.String() + "/launch")
	if err != nil {
		return false, fmt.Errorf("launch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	var body launchResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return false, fmt.Errorf("decode launch response: %w", err)
	}

	b.logger.Debug().Str("uuid", appUUID.String()).Bool("accepted", body.Accepted).Msg("launch requested")
	return body.Accepted, nil
}
