package api

import (
	"context"
	"net/http"
	"net/url"

	"inventory-requisition-client/internal/models"
)

type ItemsService struct {
	client *Client
}

// ItemFilters compose into query parameters; zero values are omitted.
type ItemFilters struct {
	Search   string
	Category string
	LowStock bool
}

func (f ItemFilters) query() url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.LowStock {
		q.Set("lowStock", "true")
	}
	return q
}

type ItemPayload struct {
	Name          string `json:"name"`
	SKU           string `json:"sku"`
	Category      string `json:"category"`
	Quantity      int    `json:"quantity"`
	Unit          string `json:"unit"`
	MinStockLevel int    `json:"minStockLevel"`
	Description   string `json:"description,omitempty"`
}

type itemListEnvelope struct {
	Data  []models.Item `json:"data"`
	Count int           `json:"count"`
}

type itemEnvelope struct {
	Data models.Item `json:"data"`
}

func (s *ItemsService) List(ctx context.Context, filters ItemFilters) ([]models.Item, int, error) {
	var env itemListEnvelope
	if err := s.client.do(ctx, http.MethodGet, "/items", filters.query(), nil, &env); err != nil {
		return nil, 0, err
	}
	return env.Data, env.Count, nil
}

func (s *ItemsService) Get(ctx context.Context, id string) (models.Item, error) {
	var env itemEnvelope
	if err := s.client.do(ctx, http.MethodGet, "/items/"+id, nil, nil, &env); err != nil {
		return models.Item{}, err
	}
	return env.Data, nil
}

func (s *ItemsService) Create(ctx context.Context, payload ItemPayload) (models.Item, error) {
	var env itemEnvelope
	if err := s.client.do(ctx, http.MethodPost, "/items", nil, payload, &env); err != nil {
		return models.Item{}, err
	}
	return env.Data, nil
}

func (s *ItemsService) Update(ctx context.Context, id string, payload ItemPayload) (models.Item, error) {
	var env itemEnvelope
	if err := s.client.do(ctx, http.MethodPut, "/items/"+id, nil, payload, &env); err != nil {
		return models.Item{}, err
	}
	return env.Data, nil
}

func (s *ItemsService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/items/"+id, nil, nil, nil)
}

// LowStock lists items at or below their minimum stock level.
func (s *ItemsService) LowStock(ctx context.Context) ([]models.Item, int, error) {
	var env itemListEnvelope
	if err := s.client.do(ctx, http.MethodGet, "/items/low-stock", nil, nil, &env); err != nil {
		return nil, 0, err
	}
	return env.Data, env.Count, nil
}
