package api

import (
	"context"
	"net/http"
	"net/url"

	"inventory-requisition-client/internal/models"
)

type TransactionsService struct {
	client *Client
}

type TransactionFilters struct {
	Type string
	From string
	To   string
}

func (f TransactionFilters) query() url.Values {
	q := url.Values{}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	if f.From != "" {
		q.Set("from", f.From)
	}
	if f.To != "" {
		q.Set("to", f.To)
	}
	return q
}

type TransactionPayload struct {
	Item     string `json:"item"`
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

type transactionListEnvelope struct {
	Data  []models.Transaction `json:"data"`
	Count int                  `json:"count"`
}

func (s *TransactionsService) List(ctx context.Context, filters TransactionFilters) ([]models.Transaction, int, error) {
	var env transactionListEnvelope
	if err := s.client.do(ctx, http.MethodGet, "/transactions", filters.query(), nil, &env); err != nil {
		return nil, 0, err
	}
	return env.Data, env.Count, nil
}

func (s *TransactionsService) Create(ctx context.Context, payload TransactionPayload) (models.Transaction, error) {
	var env struct {
		Data models.Transaction `json:"data"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/transactions", nil, payload, &env); err != nil {
		return models.Transaction{}, err
	}
	return env.Data, nil
}

// ByItem lists the stock movements of a single item.
func (s *TransactionsService) ByItem(ctx context.Context, itemID string) ([]models.Transaction, int, error) {
	var env transactionListEnvelope
	if err := s.client.do(ctx, http.MethodGet, "/transactions/item/"+itemID, nil, nil, &env); err != nil {
		return nil, 0, err
	}
	return env.Data, env.Count, nil
}
