package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusBody is the error body the cloud gateway returns: a gRPC status
// rendered as JSON.
type statusBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var sentinel error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusRequestTimeout:
		sentinel = ErrRequestTimeout
	case http.StatusConflict:
		sentinel = ErrConflict
	case http.StatusTooManyRequests:
		sentinel = ErrTooManyRequests
	case http.StatusInternalServerError:
		sentinel = ErrInternalServerError
	case http.StatusBadGateway:
		sentinel = ErrBadGateway
	case http.StatusServiceUnavailable:
		sentinel = ErrServiceUnavailable
	case http.StatusGatewayTimeout:
		sentinel = ErrGatewayTimeout
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}

	if st := decodeStatusBody(body); st != nil {
		return fmt.Errorf("%w: %w", sentinel, st.Err())
	}
	return fmt.Errorf("%w: %s", sentinel, body)
}

func decodeStatusBody(body string) *status.Status {
	if !strings.HasPrefix(body, "{") {
		return nil
	}
	var sb statusBody
	if err := json.Unmarshal([]byte(body), &sb); err != nil || sb.Code == 0 {
		return nil
	}
	return status.New(codes.Code(sb.Code), sb.Message)
}

// classifyCloudError folds err into ErrNetworkUnavailable or ErrUnknown.
// Already classified errors are returned unchanged.
func classifyCloudError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNetworkUnavailable) || errors.Is(err, ErrUnknown) {
		return err
	}
	if isTransient(err) {
		return fmt.Errorf("%w: %w", ErrNetworkUnavailable, err)
	}
	return fmt.Errorf("%w: %w", ErrUnknown, err)
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	for _, sentinel := range []error{ErrRequestTimeout, ErrTooManyRequests, ErrBadGateway, ErrServiceUnavailable, ErrGatewayTimeout} {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.Unavailable, codes.DeadlineExceeded:
			return true
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// IsNetworkUnavailable reports whether err is a transient cloud failure worth
// retrying.
func IsNetworkUnavailable(err error) bool {
	return errors.Is(err, ErrNetworkUnavailable)
}
