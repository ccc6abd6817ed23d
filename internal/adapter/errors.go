package adapter

import "errors"

// Cloud failure taxonomy.
var (
	// ErrNetworkUnavailable marks transient conditions: the collaborator is
	// unreachable, overloaded or did not answer in time.
	ErrNetworkUnavailable = errors.New("network unavailable")
	// ErrUnknown marks every other failure.
	ErrUnknown = errors.New("unknown store error")
)

// HTTP status sentinels returned by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrRequestTimeout      = errors.New("request timeout")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrGatewayTimeout      = errors.New("gateway timeout")
)

// ErrInvalidAddress is returned by constructors given an unusable base URL.
var ErrInvalidAddress = errors.New("invalid address")
