package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-locker-sync/models"
)

type httpStoreSearcher struct {
	source   models.StoreSource
	endpoint *sourceEndpoint
}

// Search implements [StoreSearcher] via
// GET /api/v1/apps/search?query=&type=&hardware=&page=&limit=.
func (s *httpStoreSearcher) Search(ctx context.Context, req models.SearchRequest) ([]models.SourcedStoreApp, error) {
	if err := s.endpoint.wait(ctx); err != nil {
		return nil, err
	}

	params := map[string]string{
		"query": req.Query,
		"page":  strconv.Itoa(req.Page),
		"limit": strconv.Itoa(req.PageSize),
	}
	if req.AppType != "" {
		params["type"] = string(req.AppType)
	}
	if req.DeviceType != "" {
		params["hardware"] = string(req.DeviceType)
	}

	resp, err := s.endpoint.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/api/v1/apps/search")
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var body storeAppsResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	out := make([]models.SourcedStoreApp, 0, len(body.Data))
	for _, app := range body.Data {
		out = append(out, models.SourcedStoreApp{Source: s.source, App: app})
	}
	return out, nil
}
