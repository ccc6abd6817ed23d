package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// publishedDateLayouts are the formats store backends are known to emit for
// published_date. Layouts without a zone are read as UTC.
var publishedDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC1123Z,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// PublishedDate is a store timestamp tolerant to the formats different
// backends use. The zero value means the store sent null or "".
type PublishedDate struct {
	time.Time
}

// ParsePublishedDate parses s using the known store layouts.
func ParsePublishedDate(s string) (PublishedDate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PublishedDate{}, nil
	}
	for _, layout := range publishedDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return PublishedDate{Time: t.UTC()}, nil
		}
	}
	return PublishedDate{}, fmt.Errorf("unsupported published date format: %q", s)
}

func (d *PublishedDate) UnmarshalJSON(b []byte) error {
	var raw *string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		*d = PublishedDate{}
		return nil
	}
	parsed, err := ParsePublishedDate(*raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d PublishedDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.UTC().Format(time.RFC3339Nano))
}
