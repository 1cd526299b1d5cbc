package api

import (
	"context"
	"net/http"
	"net/url"

	"inventory-requisition-client/internal/models"
)

type LogsService struct {
	client *Client
}

type LogFilters struct {
	User   string
	Action string
	From   string
	To     string
}

func (f LogFilters) query() url.Values {
	q := url.Values{}
	if f.User != "" {
		q.Set("user", f.User)
	}
	if f.Action != "" {
		q.Set("action", f.Action)
	}
	if f.From != "" {
		q.Set("from", f.From)
	}
	if f.To != "" {
		q.Set("to", f.To)
	}
	return q
}

func (s *LogsService) List(ctx context.Context, filters LogFilters) ([]models.ActivityLog, int, error) {
	var env struct {
		Data  []models.ActivityLog `json:"data"`
		Count int                  `json:"count"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/activity-logs", filters.query(), nil, &env); err != nil {
		return nil, 0, err
	}
	return env.Data, env.Count, nil
}
