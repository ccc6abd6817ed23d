package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-locker-sync/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func respondWith(t *testing.T, code int, body string) error {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	resp, err := utils.NewHTTPClient(srv.URL, 0).R().Get("/")
	require.NoError(t, err)
	return mapHTTPError(resp)
}

// ── mapHTTPError ─────────────────────────────────────────────────────────────

func TestMapHTTPError_Statuses(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusRequestTimeout, ErrRequestTimeout},
		{http.StatusConflict, ErrConflict},
		{http.StatusTooManyRequests, ErrTooManyRequests},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrServiceUnavailable},
		{http.StatusGatewayTimeout, ErrGatewayTimeout},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			assert.ErrorIs(t, respondWith(t, tt.code, "boom"), tt.want)
		})
	}
}

func TestMapHTTPError_Success(t *testing.T) {
	assert.NoError(t, respondWith(t, http.StatusNoContent, ""))
}

func TestMapHTTPError_UnlistedStatus(t *testing.T) {
	err := respondWith(t, http.StatusTeapot, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestMapHTTPError_StatusBody(t *testing.T) {
	err := respondWith(t, http.StatusInternalServerError, `{"code":14,"message":"backend down"}`)

	assert.ErrorIs(t, err, ErrInternalServerError)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Unavailable, st.Code())
}

// ── classifyCloudError ───────────────────────────────────────────────────────

func TestClassifyCloudError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "deadline", err: fmt.Errorf("req: %w", context.DeadlineExceeded), want: ErrNetworkUnavailable},
		{name: "503", err: fmt.Errorf("%w: down", ErrServiceUnavailable), want: ErrNetworkUnavailable},
		{name: "429", err: ErrTooManyRequests, want: ErrNetworkUnavailable},
		{name: "grpc unavailable", err: status.Error(codes.Unavailable, "x"), want: ErrNetworkUnavailable},
		{name: "grpc deadline", err: status.Error(codes.DeadlineExceeded, "x"), want: ErrNetworkUnavailable},
		{name: "dial", err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("refused")}, want: ErrNetworkUnavailable},
		{name: "grpc permission", err: status.Error(codes.PermissionDenied, "x"), want: ErrUnknown},
		{name: "conflict", err: ErrConflict, want: ErrUnknown},
		{name: "plain", err: errors.New("weird"), want: ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyCloudError(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestClassifyCloudError_Idempotent(t *testing.T) {
	once := classifyCloudError(ErrBadGateway)
	assert.Same(t, once, classifyCloudError(once))
	assert.NoError(t, classifyCloudError(nil))
}

func TestIsNetworkUnavailable(t *testing.T) {
	assert.True(t, IsNetworkUnavailable(classifyCloudError(ErrGatewayTimeout)))
	assert.False(t, IsNetworkUnavailable(classifyCloudError(ErrForbidden)))
	assert.False(t, IsNetworkUnavailable(nil))
}
