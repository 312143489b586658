package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/food-catalog/internal/config"
	"github.com/MKhiriev/food-catalog/internal/logger"
	"github.com/MKhiriev/food-catalog/internal/utils"
	"github.com/MKhiriev/food-catalog/models"
	"github.com/go-resty/resty/v2"
)

type httpCatalogAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPCatalogAdapter constructs an HTTP/REST implementation of
// [CatalogAdapter] for the server at cfg.HTTPAddress. A bare host:port is
// treated as http.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPCatalogAdapter(cfg config.ClientAdapter, logger *logger.Logger) (CatalogAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpCatalogAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCatalogAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

// Browse implements [CatalogAdapter]. It GETs /api/foods with the selector
// in the category query parameter. A 503 still carries a view, which is
// decoded and returned alongside the mapped error.
func (h *httpCatalogAdapter) Browse(ctx context.Context, sel models.Selector) (models.CatalogView, error) {
	req := h.client.R().SetContext(ctx)
	if sel != "" {
		req.SetQueryParam("category", string(sel))
	}

	resp, err := req.Get("/api/foods")
	if err != nil {
		return models.CatalogView{}, fmt.Errorf("browse request: %w", err)
	}

	mapped := mapHTTPError(resp)
	if mapped != nil && resp.StatusCode() != http.StatusServiceUnavailable {
		return models.CatalogView{}, mapped
	}

	view := models.CatalogView{Selector: sel}
	if err = json.Unmarshal(resp.Body(), &view); err != nil && mapped == nil {
		return models.CatalogView{}, fmt.Errorf("decode browse response: %w", err)
	}
	if view.Items == nil {
		view.Items = []models.ClassifiedItem{}
	}
	if mapped != nil {
		h.logger.Debug().Err(mapped).Str("func", "*httpCatalogAdapter.Browse").Msg("server store unavailable")
	}

	return view, mapped
}

func (h *httpCatalogAdapter) Counts(ctx context.Context) (models.Counts, error) {
	var counts models.Counts

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&counts).
		Get("/api/foods/counts")
	if err != nil {
		return models.Counts{}, fmt.Errorf("counts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Counts{}, err
	}

	return counts, nil
}

func (h *httpCatalogAdapter) Get(ctx context.Context, id string) (models.ClassifiedItem, error) {
	var item models.ClassifiedItem

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&item).
		Get("/api/foods/{id}")
	if err != nil {
		return models.ClassifiedItem{}, fmt.Errorf("get item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ClassifiedItem{}, err
	}

	return item, nil
}

// Add implements [CatalogAdapter]. It POSTs the candidate to /api/foods
// with creds as HTTP Basic credentials.
func (h *httpCatalogAdapter) Add(ctx context.Context, creds models.Credentials, candidate models.ItemCandidate) (models.ClassifiedItem, error) {
	var item models.ClassifiedItem

	resp, err := h.authedRequest(ctx, creds).
		SetHeader("Content-Type", "application/json").
		SetBody(candidate).
		SetResult(&item).
		Post("/api/foods")
	if err != nil {
		return models.ClassifiedItem{}, fmt.Errorf("add item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ClassifiedItem{}, err
	}

	return item, nil
}

func (h *httpCatalogAdapter) Delete(ctx context.Context, creds models.Credentials, id string) error {
	resp, err := h.authedRequest(ctx, creds).
		SetPathParam("id", id).
		Delete("/api/foods/{id}")
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpCatalogAdapter) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	var session models.Session

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&session).
		Post("/api/session")
	if err != nil {
		return models.Anonymous(), fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Anonymous(), err
	}

	return session, nil
}

func (h *httpCatalogAdapter) Logout(ctx context.Context) (models.Session, error) {
	resp, err := h.client.R().SetContext(ctx).Delete("/api/session")
	if err != nil {
		return models.Anonymous(), fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil && !errors.Is(err, ErrUnauthorized) {
		return models.Anonymous(), err
	}

	return models.Anonymous(), nil
}

func (h *httpCatalogAdapter) authedRequest(ctx context.Context, creds models.Credentials) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if creds.Email != "" || creds.Password != "" {
		req.SetBasicAuth(creds.Email, creds.Password)
	}
	return req
}
