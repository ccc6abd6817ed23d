package adapter

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	schemeHTTP  = "http"
	schemeHTTPS = "https"
)

// normalizeBaseURL turns a configured address into a base URL for resty.
// A bare host gets defaultScheme; only http and https are accepted. The path
// is kept, so a store source may live under a prefix, while query, fragment
// and trailing slashes are dropped.
func normalizeBaseURL(raw, defaultScheme string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = defaultScheme + "://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", fmt.Errorf("address %q has no host", raw)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme != schemeHTTP && u.Scheme != schemeHTTPS {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	u.RawQuery, u.Fragment = "", ""
	return strings.TrimRight(u.String(), "/"), nil
}
