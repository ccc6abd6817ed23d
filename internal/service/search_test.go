package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-locker-sync/internal/adapter"
	"github.com/MKhiriev/go-locker-sync/internal/logger"
	"github.com/MKhiriev/go-locker-sync/internal/mock"
	"github.com/MKhiriev/go-locker-sync/models"
)

func newTestSearchSession(t *testing.T, device models.DeviceType) (*SearchSession, *mock.MockStoreSearcher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	searcher := mock.NewMockStoreSearcher(ctrl)

	svc := NewSearchService(func(src models.StoreSource) adapter.StoreSearcher {
		assert.Equal(t, srcS1.ID, src.ID)
		return searcher
	}, logger.Nop())

	return svc.NewSession(srcS1, "weather", models.AppTypeWatchapp, device), searcher
}

func hit(id uuid.UUID, title string, version *string) models.SourcedStoreApp {
	return models.SourcedStoreApp{Source: srcS1, App: models.StoreApp{UUID: id, Title: title, Version: version}}
}

func titles(apps []models.StoreApp) []string {
	out := make([]string, 0, len(apps))
	for _, a := range apps {
		out = append(out, a.Title)
	}
	return out
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestSearchSession_Load_RequestAndNextKey(t *testing.T) {
	session, searcher := newTestSearchSession(t, "basalt")
	a := uuid.New()

	searcher.EXPECT().Search(gomock.Any(), models.SearchRequest{
		Query:      "weather",
		AppType:    models.AppTypeWatchapp,
		DeviceType: "basalt",
		Page:       3,
		PageSize:   20,
	}).Return([]models.SourcedStoreApp{hit(a, "Weather", nil)}, nil)

	page := session.Load(context.Background(), 3, 20)

	require.NoError(t, page.Err)
	assert.Equal(t, []string{"Weather"}, titles(page.Items))
	require.NotNil(t, page.NextKey)
	assert.Equal(t, 4, *page.NextKey)
}

func TestSearchSession_Load_EndOfStream(t *testing.T) {
	session, searcher := newTestSearchSession(t, "")
	searcher.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, nil)

	page := session.Load(context.Background(), 5, 20)

	assert.NoError(t, page.Err)
	assert.Empty(t, page.Items)
	assert.Nil(t, page.NextKey)
}

func TestSearchSession_Load_WithinPageDedup(t *testing.T) {
	session, searcher := newTestSearchSession(t, "")
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	searcher.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]models.SourcedStoreApp{
		hit(a, "A-old", ver("1.0")),
		hit(b, "B-first", ver("2.0")),
		hit(a, "A-new", ver("1.1")),
		hit(b, "B-second", ver("2.0")),
		hit(c, "C", nil),
	}, nil)

	page := session.Load(context.Background(), 0, 10)

	assert.Equal(t, []string{"A-new", "B-first", "C"}, titles(page.Items))
}

func TestSearchSession_Load_CrossPageDedup(t *testing.T) {
	session, searcher := newTestSearchSession(t, "")
	a, b := uuid.New(), uuid.New()

	gomock.InOrder(
		searcher.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]models.SourcedStoreApp{hit(a, "A", nil)}, nil),
		searcher.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]models.SourcedStoreApp{hit(a, "A", nil), hit(b, "B", nil)}, nil),
	)

	first := session.Load(context.Background(), 0, 2)
	second := session.Load(context.Background(), 1, 2)

	assert.Equal(t, []string{"A"}, titles(first.Items))
	assert.Equal(t, []string{"B"}, titles(second.Items))
	require.NotNil(t, second.NextKey)
	assert.Equal(t, 2, *second.NextKey)
}

func TestSearchSession_Load_AllDuplicatesStillAdvances(t *testing.T) {
	session, searcher := newTestSearchSession(t, "")
	a := uuid.New()

	searcher.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]models.SourcedStoreApp{hit(a, "A", nil)}, nil).Times(2)

	session.Load(context.Background(), 0, 1)
	page := session.Load(context.Background(), 1, 1)

	assert.Empty(t, page.Items)
	require.NotNil(t, page.NextKey)
	assert.Equal(t, 2, *page.NextKey)
}

func TestSearchSession_Load_ErrorDoesNotPoison(t *testing.T) {
	session, searcher := newTestSearchSession(t, "")
	a := uuid.New()
	boom := errors.New("store unavailable")

	gomock.InOrder(
		searcher.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, boom),
		searcher.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]models.SourcedStoreApp{hit(a, "A", nil)}, nil),
	)

	failed := session.Load(context.Background(), 0, 10)
	assert.ErrorIs(t, failed.Err, boom)
	assert.Nil(t, failed.NextKey)

	retried := session.Load(context.Background(), 0, 10)
	assert.NoError(t, retried.Err)
	assert.Equal(t, []string{"A"}, titles(retried.Items))
}

func TestSearchSession_Load_FiltersIncompatibleHardware(t *testing.T) {
	session, searcher := newTestSearchSession(t, "emery")
	compatible := hit(uuid.New(), "Round", nil)
	compatible.App.Hardware = []models.DeviceType{"emery", "basalt"}
	incompatible := hit(uuid.New(), "Aplite only", nil)
	incompatible.App.Hardware = []models.DeviceType{"aplite"}
	universal := hit(uuid.New(), "Universal", nil)

	searcher.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return([]models.SourcedStoreApp{compatible, incompatible, universal}, nil)

	page := session.Load(context.Background(), 0, 10)
	assert.Equal(t, []string{"Round", "Universal"}, titles(page.Items))
}

func TestSearchSession_Refresh(t *testing.T) {
	session, searcher := newTestSearchSession(t, "")
	a := uuid.New()

	searcher.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]models.SourcedStoreApp{hit(a, "A", nil)}, nil).Times(2)

	session.Load(context.Background(), 0, 1)
	session.Refresh()
	page := session.Load(context.Background(), 0, 1)

	assert.Equal(t, []string{"A"}, titles(page.Items))
}
