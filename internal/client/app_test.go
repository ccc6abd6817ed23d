package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-locker-sync/internal/config"
	"github.com/MKhiriev/go-locker-sync/internal/logger"
	"github.com/MKhiriev/go-locker-sync/models"
)

const testFeedURL = "https://feed.example.com/repo"

func signedToken(t *testing.T, sub string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func newTestConfig(t *testing.T, token string) *config.ClientConfig {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	return &config.ClientConfig{
		App: config.ClientApp{DefaultFeedURL: testFeedURL, UserToken: token},
		Adapter: config.ClientAdapter{
			CloudAddress:        srv.URL,
			DeviceBridgeAddress: srv.URL,
			RequestTimeout:      time.Second,
			FetchBatchSize:      config.DefaultFetchBatchSize,
			FetchCacheTTL:       config.DefaultFetchCacheTTL,
			FetchRateLimit:      config.DefaultFetchRateLimit,
			RetryAttempts:       1,
		},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: ":memory:"}},
		Workers: config.ClientWorkers{
			ReconcileInterval:   time.Hour,
			DeviceSyncTimeout:   time.Second,
			LaunchSettleDelay:   10 * time.Millisecond,
			FastPathBatchSize:   config.DefaultFastPathBatchSize,
			QueueCapacity:       config.DefaultQueueCapacity,
			DeviceFlushInterval: time.Hour,
		},
	}
}

func TestNewApp_InvalidToken(t *testing.T) {
	app, err := NewApp(context.Background(), newTestConfig(t, "not-a-jwt"), logger.Nop())

	require.Error(t, err)
	assert.Nil(t, app)
}

func TestNewApp_RegistersDefaultFeed(t *testing.T) {
	ctx := context.Background()
	app, err := NewApp(ctx, newTestConfig(t, "Bearer "+signedToken(t, "user-1")), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.storages.Close() })

	userID, ok := app.services.Auth.CurrentUserID()
	require.True(t, ok)
	assert.Equal(t, "user-1", userID)

	sources, err := app.storages.SourceRepository.GetAllEnabledSources(ctx)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, testFeedURL, sources[0].URL)
	assert.True(t, sources[0].IsDefaultFeed(testFeedURL))
}

func TestApp_Run_ReturnsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), newTestConfig(t, signedToken(t, "user-1")), logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestApp_Run_SignedOut(t *testing.T) {
	app, err := NewApp(context.Background(), newTestConfig(t, signedToken(t, "user-1")), logger.Nop())
	require.NoError(t, err)
	app.services.Auth.SignOut()

	assert.Error(t, app.Run(context.Background()))
}

func TestLogResult_DoesNotPanic(t *testing.T) {
	handler := logResult(logger.Nop())

	assert.NotPanics(t, func() {
		handler(models.LockerResult{FailedToFetch: models.NewUUIDSet()})
		handler(models.LockerResult{})
	})
}
