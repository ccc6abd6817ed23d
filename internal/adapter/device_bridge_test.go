package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-locker-sync/internal/config"
	"github.com/MKhiriev/go-locker-sync/internal/logger"
	"github.com/MKhiriev/go-locker-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBridge(t *testing.T, serverURL string) *HTTPDeviceBridge {
	t.Helper()
	b, err := NewHTTPDeviceBridge(config.ClientAdapter{DeviceBridgeAddress: serverURL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	return b
}

func TestDeviceBridge_SendApps(t *testing.T) {
	apps := []models.ResolvedApp{{UUID: testAppUUID, Name: "Alpha", Source: "https://s1.example.com"}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/device/locker", r.URL.Path)

		var req sendAppsRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, apps, req.Apps)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	assert.NoError(t, newTestBridge(t, srv.URL).SendApps(context.Background(), apps))
}

func TestDeviceBridge_SendApps_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := newTestBridge(t, srv.URL).SendApps(context.Background(), nil)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestDeviceBridge_Launch(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{name: "accepted", body: `{"accepted":true}`, want: true},
		{name: "rejected", body: `{"accepted":false}`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/device/apps/"+testAppUUID.String()+"/launch", r.URL.Path)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			got, err := newTestBridge(t, srv.URL).Launch(context.Background(), testAppUUID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeviceBridge_Launch_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	ok, err := newTestBridge(t, srv.URL).Launch(context.Background(), testAppUUID)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewHTTPDeviceBridge_InvalidAddress(t *testing.T) {
	_, err := NewHTTPDeviceBridge(config.ClientAdapter{DeviceBridgeAddress: " "}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}
