package utils

import (
	"github.com/oklog/ulid/v2"
)

// NewBatchID returns a lexicographically sortable identifier for a cloud
// change batch. Ids generated later sort after earlier ones.
func NewBatchID() string {
	return ulid.Make().String()
}
