// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP client
// initialization, JWT claim extraction, retries with backoff and
// sortable batch identifiers.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// BatchIDCtxKey is the key used to store the id of the cloud change batch
// being processed.
var BatchIDCtxKey = contextKey("batchID")

// WithBatchID returns a copy of ctx carrying batchID.
func WithBatchID(ctx context.Context, batchID string) context.Context {
	return context.WithValue(ctx, BatchIDCtxKey, batchID)
}

// GetBatchIDFromContext retrieves the batch identifier from the context.
func GetBatchIDFromContext(ctx context.Context) (string, bool) {
	batchID, ok := ctx.Value(BatchIDCtxKey).(string)
	return batchID, ok
}
