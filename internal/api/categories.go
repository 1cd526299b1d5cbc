package api

import (
	"context"
	"net/http"

	"inventory-requisition-client/internal/models"
)

type CategoriesService struct {
	client *Client
}

type CategoryPayload struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type categoryListEnvelope struct {
	Data  []models.Category `json:"data"`
	Count int               `json:"count"`
}

type categoryEnvelope struct {
	Data models.Category `json:"data"`
}

func (s *CategoriesService) List(ctx context.Context) ([]models.Category, int, error) {
	var env categoryListEnvelope
	if err := s.client.do(ctx, http.MethodGet, "/categories", nil, nil, &env); err != nil {
		return nil, 0, err
	}
	return env.Data, env.Count, nil
}

func (s *CategoriesService) Get(ctx context.Context, id string) (models.Category, error) {
	var env categoryEnvelope
	if err := s.client.do(ctx, http.MethodGet, "/categories/"+id, nil, nil, &env); err != nil {
		return models.Category{}, err
	}
	return env.Data, nil
}

func (s *CategoriesService) Create(ctx context.Context, payload CategoryPayload) (models.Category, error) {
	var env categoryEnvelope
	if err := s.client.do(ctx, http.MethodPost, "/categories", nil, payload, &env); err != nil {
		return models.Category{}, err
	}
	return env.Data, nil
}

func (s *CategoriesService) Update(ctx context.Context, id string, payload CategoryPayload) (models.Category, error) {
	var env categoryEnvelope
	if err := s.client.do(ctx, http.MethodPut, "/categories/"+id, nil, payload, &env); err != nil {
		return models.Category{}, err
	}
	return env.Data, nil
}

func (s *CategoriesService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/categories/"+id, nil, nil, nil)
}
