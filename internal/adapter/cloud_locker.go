package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/go-locker-sync/internal/config"
	"github.com/MKhiriev/go-locker-sync/internal/logger"
	"github.com/MKhiriev/go-locker-sync/internal/utils"
	"github.com/MKhiriev/go-locker-sync/models"
	"github.com/coder/websocket"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	observeInitialBackoff = 500 * time.Millisecond
	observeMaxBackoff     = 30 * time.Second
	observeReadLimit      = 4 << 20
)

// snapshotMessage is one frame of the locker subscription.
type snapshotMessage struct {
	Entries []models.LockerEntry `json:"entries"`
}

type httpCloudLocker struct {
	client *utils.HTTPClient
	token  func() string

	initialBackoff time.Duration
	maxBackoff     time.Duration

	logger *logger.Logger
}

// NewHTTPCloudLocker constructs the REST + websocket implementation of
// [CloudLockerClient] against adapterCfg.CloudAddress. token supplies the
// bearer token attached to every request; it may return "".
func NewHTTPCloudLocker(adapterCfg config.ClientAdapter, token func() string, log *logger.Logger) (CloudLockerClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.CloudAddress, schemeHTTPS)
	if err != nil {
		return nil, fmt.Errorf("%w: cloud address: %w", ErrInvalidAddress, err)
	}
	if token == nil {
		token = func() string { return "" }
	}

	return &httpCloudLocker{
		client:         utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		token:          token,
		initialBackoff: observeInitialBackoff,
		maxBackoff:     observeMaxBackoff,
		logger:         log,
	}, nil
}

func entriesPath(userID string) string {
	return "/api/lockers/" + url.PathEscape(userID) + "/entries"
}

// Add implements [CloudLockerClient]. It PUTs the entry to
// /api/lockers/{userID}/entries/{appstoreId-uuid}.
func (h *httpCloudLocker) Add(ctx context.Context, userID string, entry models.LockerEntry) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(entry).
		Put(entriesPath(userID) + "/" + url.PathEscape(entry.DocumentID()))
	if err != nil {
		return classifyCloudError(fmt.Errorf("add locker entry request: %w", err))
	}

	return classifyCloudError(mapHTTPError(resp))
}

// Remove implements [CloudLockerClient]. It sends
// DELETE /api/lockers/{userID}/entries?uuid={uuid}.
func (h *httpCloudLocker) Remove(ctx context.Context, userID string, appUUID uuid.UUID) error {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("uuid", appUUID.String()).
		Delete(entriesPath(userID))
	if err != nil {
		return classifyCloudError(fmt.Errorf("remove locker entry request: %w", err))
	}

	return classifyCloudError(mapHTTPError(resp))
}

// List implements [CloudLockerClient].
func (h *httpCloudLocker) List(ctx context.Context, userID string) ([]models.LockerEntry, error) {
	resp, err := h.authedRequest(ctx).Get(entriesPath(userID))
	if err != nil {
		return nil, classifyCloudError(fmt.Errorf("list locker request: %w", err))
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, classifyCloudError(err)
	}

	var msg snapshotMessage
	if err = json.Unmarshal(resp.Body(), &msg); err != nil {
		return nil, classifyCloudError(fmt.Errorf("decode locker response: %w", err))
	}
	return msg.Entries, nil
}

// Observe implements [CloudLockerClient]. It keeps a websocket subscription
// to /api/lockers/{userID}/entries/subscribe open until ctx is done,
// reconnecting with capped exponential backoff after every drop.
func (h *httpCloudLocker) Observe(ctx context.Context, userID string) <-chan []models.LockerEntry {
	out := make(chan []models.LockerEntry)

	go func() {
		defer close(out)

		backoff := h.initialBackoff
		for {
			delivered, err := h.subscribe(ctx, userID, out)
			if ctx.Err() != nil {
				return
			}
			if delivered {
				backoff = h.initialBackoff
			}
			h.logger.Warn().Err(classifyCloudError(err)).
				Str("user_id", userID).
				Dur("backoff", backoff).
				Msg("locker subscription dropped, reconnecting")

			timer := time.NewTimer(backoff)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}

			backoff *= 2
			if backoff > h.maxBackoff {
				backoff = h.maxBackoff
			}
		}
	}()

	return out
}

// subscribe runs one websocket session. delivered reports whether at least
// one snapshot was forwarded.
func (h *httpCloudLocker) subscribe(ctx context.Context, userID string, out chan<- []models.LockerEntry) (delivered bool, err error) {
	opts := &websocket.DialOptions{}
	if token := h.token(); token != "" {
		opts.HTTPHeader = map[string][]string{"Authorization": {"Bearer " + token}}
	}

	conn, _, err := websocket.Dial(ctx, h.client.BaseURL+entriesPath(userID)+"/subscribe", opts)
	if err != nil {
		return false, fmt.Errorf("dial locker subscription: %w", err)
	}
	defer conn.CloseNow()
	conn.SetReadLimit(observeReadLimit)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return delivered, fmt.Errorf("read locker subscription: %w", err)
		}

		var msg snapshotMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.logger.Error().Err(err).Str("user_id", userID).Msg("skipping malformed locker snapshot")
			continue
		}
		if msg.Entries == nil {
			msg.Entries = []models.LockerEntry{}
		}

		select {
		case out <- msg.Entries:
			delivered = true
		case <-ctx.Done():
			_ = conn.Close(websocket.StatusNormalClosure, "")
			return delivered, ctx.Err()
		}
	}
}

func (h *httpCloudLocker) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
