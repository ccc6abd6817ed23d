// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net/url"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// LockerEntry is the cloud-authoritative record of one app in a user's locker.
// The cloud locker store owns it; the reconciliation engine may only insert new
// entries (auto-adoption) or correct AppstoreSource.
type LockerEntry struct {
	UUID           uuid.UUID `json:"uuid"`
	AppstoreID     string    `json:"appstoreId"`
	AppstoreSource string    `json:"appstoreSource"`
	TimelineToken  *string   `json:"timelineToken"`
}

// DocumentID returns the key the entry is stored under in the cloud locker
// collection: "<appstoreId>-<uuid>".
func (e LockerEntry) DocumentID() string {
	return e.AppstoreID + "-" + e.UUID.String()
}

// WithSource returns a copy of e pointing at a different store source.
func (e LockerEntry) WithSource(sourceURL string) LockerEntry {
	e.AppstoreSource = sourceURL
	return e
}

// ResolvedApp is app metadata resolved from one store source for a locker uuid.
// It is recomputed on every reconciliation pass and never persisted directly.
type ResolvedApp struct {
	UUID    uuid.UUID `json:"uuid"`
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Version *string   `json:"version,omitempty"`
	// Source is the URL of the store source that resolved the app.
	Source string `json:"source"`
	// UserToken is the per-user timeline token the store issued for the app, if any.
	UserToken *string `json:"userToken,omitempty"`
}

// StoreSource is one app-store backend known to the registry.
type StoreSource struct {
	ID      int64  `json:"id"`
	URL     string `json:"url"`
	Title   string `json:"title"`
	Enabled bool   `json:"enabled"`
	// Priority orders sources; a higher value is preferred. The default feed
	// is seeded with the lowest priority.
	Priority int `json:"priority"`
}

// IsDefaultFeed reports whether s is the distinguished default feed.
func (s StoreSource) IsDefaultFeed(defaultFeedURL string) bool {
	return defaultFeedURL != "" && SameSourceURL(s.URL, defaultFeedURL)
}

// SameSourceURL compares two store source URLs ignoring trailing slashes and
// the case of the scheme and host. Paths are compared exactly.
func SameSourceURL(a, b string) bool {
	return canonicalSourceURL(a) == canonicalSourceURL(b)
}

func canonicalSourceURL(raw string) string {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	return u.String()
}

// SourcedEntry pairs a resolved app with the source that produced it. It only
// lives for the merge step of a single reconciliation pass.
type SourcedEntry struct {
	Source StoreSource
	App    ResolvedApp
}

// UUIDSet is a set of app identities.
type UUIDSet map[uuid.UUID]struct{}

// NewUUIDSet builds a set from ids.
func NewUUIDSet(ids ...uuid.UUID) UUIDSet {
	s := make(UUIDSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s UUIDSet) Add(id uuid.UUID) {
	s[id] = struct{}{}
}

func (s UUIDSet) Has(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

func (s UUIDSet) Len() int {
	return len(s)
}

// Sorted returns the members in ascending string order, for stable logs and tests.
func (s UUIDSet) Sorted() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// LockerResult is the output of one reconciliation pass: one winning app per
// uuid, plus the cloud uuids no enabled source could resolve.
type LockerResult struct {
	Apps          []ResolvedApp
	FailedToFetch UUIDSet
}
