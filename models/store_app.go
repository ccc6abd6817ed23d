package models

import "github.com/google/uuid"

// AppType is the kind of application listed by a store.
type AppType string

const (
	AppTypeWatchapp  AppType = "watchapp"
	AppTypeWatchface AppType = "watchface"
)

// DeviceType is the hardware platform name a store filters compatible apps by
// (e.g. "basalt", "emery").
type DeviceType string

// StoreApp is an application as listed by a store source catalog.
type StoreApp struct {
	UUID          uuid.UUID     `json:"uuid"`
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Author        string        `json:"author"`
	Type          AppType       `json:"type"`
	Version       *string       `json:"version,omitempty"`
	Hardware      []DeviceType  `json:"hardware_platforms,omitempty"`
	PublishedDate PublishedDate `json:"published_date"`
	UserToken     *string       `json:"user_token,omitempty"`
}

// SupportsDevice reports whether the app lists the given hardware platform. An
// app without a platform list is treated as universal.
func (a StoreApp) SupportsDevice(device DeviceType) bool {
	if len(a.Hardware) == 0 || device == "" {
		return true
	}
	for _, h := range a.Hardware {
		if h == device {
			return true
		}
	}
	return false
}

// Resolved converts a catalog listing into locker metadata attributed to sourceURL.
func (a StoreApp) Resolved(sourceURL string) ResolvedApp {
	return ResolvedApp{
		UUID:      a.UUID,
		ID:        a.ID,
		Name:      a.Title,
		Version:   a.Version,
		Source:    sourceURL,
		UserToken: a.UserToken,
	}
}

// SourcedStoreApp is a search hit tagged with the store source that returned it.
type SourcedStoreApp struct {
	Source StoreSource
	App    StoreApp
}

// SearchRequest describes one page request against a store search endpoint.
type SearchRequest struct {
	Query      string
	AppType    AppType
	DeviceType DeviceType
	Page       int
	PageSize   int
}

// Page is one page of an incremental search. NextKey is nil at end of stream.
// Err is set when the page could not be loaded; the same page index may be retried.
type Page[T any] struct {
	Items   []T
	NextKey *int
	Err     error
}
