package api

import (
	"context"
	"net/http"
	"net/url"

	"inventory-requisition-client/internal/models"
)

type RequestsService struct {
	client *Client
}

type RequestFilters struct {
	Status string
}

func (f RequestFilters) query() url.Values {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	return q
}

// RequestLine projects a cart line for submission: the item is referenced
// by id only, the snapshot stays client-side.
type RequestLine struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

type CreateRequestPayload struct {
	Items                  []RequestLine `json:"items"`
	Purpose                string        `json:"purpose"`
	Notes                  string        `json:"notes,omitempty"`
	RequestedByName        string        `json:"requestedByName"`
	RequestedByDesignation string        `json:"requestedByDesignation"`
	ReceivedByName         string        `json:"receivedByName"`
	ReceivedByDesignation  string        `json:"receivedByDesignation"`
	// IdempotencyKey lets the backend deduplicate a retried submission.
	IdempotencyKey string `json:"idempotencyKey,omitempty"`
}

type rejectPayload struct {
	RejectionReason string `json:"rejectionReason"`
}

type requestListEnvelope struct {
	Data  []models.Request `json:"data"`
	Count int              `json:"count"`
}

type requestEnvelope struct {
	Data models.Request `json:"data"`
}

func (s *RequestsService) List(ctx context.Context, filters RequestFilters) ([]models.Request, int, error) {
	var env requestListEnvelope
	if err := s.client.do(ctx, http.MethodGet, "/requests", filters.query(), nil, &env); err != nil {
		return nil, 0, err
	}
	return env.Data, env.Count, nil
}

func (s *RequestsService) Get(ctx context.Context, id string) (models.Request, error) {
	var env requestEnvelope
	if err := s.client.do(ctx, http.MethodGet, "/requests/"+id, nil, nil, &env); err != nil {
		return models.Request{}, err
	}
	return env.Data, nil
}

func (s *RequestsService) Create(ctx context.Context, payload CreateRequestPayload) (models.Request, error) {
	var env requestEnvelope
	if err := s.client.do(ctx, http.MethodPost, "/requests", nil, payload, &env); err != nil {
		return models.Request{}, err
	}
	return env.Data, nil
}

// Update replaces the editable fields of a pending request.
func (s *RequestsService) Update(ctx context.Context, id string, payload CreateRequestPayload) (models.Request, error) {
	var env requestEnvelope
	if err := s.client.do(ctx, http.MethodPut, "/requests/"+id, nil, payload, &env); err != nil {
		return models.Request{}, err
	}
	return env.Data, nil
}

// Delete cancels a request. The backend only allows this for the original
// requester while the request is still pending.
func (s *RequestsService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/requests/"+id, nil, nil, nil)
}

func (s *RequestsService) Approve(ctx context.Context, id string) (models.Request, error) {
	var env requestEnvelope
	if err := s.client.do(ctx, http.MethodPut, "/requests/"+id+"/approve", nil, nil, &env); err != nil {
		return models.Request{}, err
	}
	return env.Data, nil
}

func (s *RequestsService) Reject(ctx context.Context, id, reason string) (models.Request, error) {
	var env requestEnvelope
	body := rejectPayload{RejectionReason: reason}
	if err := s.client.do(ctx, http.MethodPut, "/requests/"+id+"/reject", nil, body, &env); err != nil {
		return models.Request{}, err
	}
	return env.Data, nil
}

func (s *RequestsService) ApproveItem(ctx context.Context, requestID, itemID string) error {
	return s.client.do(ctx, http.MethodPut, "/requests/"+requestID+"/items/"+itemID+"/approve", nil, nil, nil)
}

func (s *RequestsService) RejectItem(ctx context.Context, requestID, itemID, reason string) error {
	body := rejectPayload{RejectionReason: reason}
	return s.client.do(ctx, http.MethodPut, "/requests/"+requestID+"/items/"+itemID+"/reject", nil, body, nil)
}
