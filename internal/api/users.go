package api

import (
	"context"
	"net/http"

	"inventory-requisition-client/internal/models"
)

type UsersService struct {
	client *Client
}

type UserPayload struct {
	Username    string `json:"username,omitempty"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Role        string `json:"role,omitempty"`
	Designation string `json:"designation,omitempty"`
}

type userListEnvelope struct {
	Data  []models.User `json:"data"`
	Count int           `json:"count"`
}

type userEnvelope struct {
	Data models.User `json:"data"`
}

func (s *UsersService) List(ctx context.Context) ([]models.User, int, error) {
	var env userListEnvelope
	if err := s.client.do(ctx, http.MethodGet, "/users", nil, nil, &env); err != nil {
		return nil, 0, err
	}
	return env.Data, env.Count, nil
}

func (s *UsersService) Get(ctx context.Context, id string) (models.User, error) {
	var env userEnvelope
	if err := s.client.do(ctx, http.MethodGet, "/users/"+id, nil, nil, &env); err != nil {
		return models.User{}, err
	}
	return env.Data, nil
}

func (s *UsersService) Update(ctx context.Context, id string, payload UserPayload) (models.User, error) {
	var env userEnvelope
	if err := s.client.do(ctx, http.MethodPut, "/users/"+id, nil, payload, &env); err != nil {
		return models.User{}, err
	}
	return env.Data, nil
}

func (s *UsersService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/users/"+id, nil, nil, nil)
}
