package api

import (
	"context"
	"net/http"

	"inventory-requisition-client/internal/models"
)

type AuthService struct {
	client *Client
}

// AuthResult is the payload of the authenticating endpoints: the bearer
// token plus the profile it was issued for.
type AuthResult struct {
	Token string `json:"token"`
	models.Profile
}

type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterPayload struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authEnvelope struct {
	Data    AuthResult `json:"data"`
	Message string     `json:"message"`
}

type registerEnvelope struct {
	Data struct {
		Email string `json:"email"`
	} `json:"data"`
	Message string `json:"message"`
}

// adminLoginEnvelope is top-level, unlike the other auth responses.
type adminLoginEnvelope struct {
	Success bool           `json:"success"`
	Token   string         `json:"token"`
	User    models.Profile `json:"user"`
}

func (s *AuthService) Login(ctx context.Context, payload LoginPayload) (AuthResult, error) {
	var env authEnvelope
	if err := s.client.do(ctx, http.MethodPost, "/auth/login", nil, payload, &env); err != nil {
		return AuthResult{}, err
	}
	return env.Data, nil
}

// Register does not authenticate. It returns the registered email for
// the follow-up verification step.
func (s *AuthService) Register(ctx context.Context, payload RegisterPayload) (string, error) {
	var env registerEnvelope
	if err := s.client.do(ctx, http.MethodPost, "/auth/register", nil, payload, &env); err != nil {
		return "", err
	}
	return env.Data.Email, nil
}

func (s *AuthService) VerifyEmail(ctx context.Context, email, code string) (AuthResult, error) {
	var env authEnvelope
	body := map[string]string{"email": email, "code": code}
	if err := s.client.do(ctx, http.MethodPost, "/auth/verify-email", nil, body, &env); err != nil {
		return AuthResult{}, err
	}
	return env.Data, nil
}

func (s *AuthService) ResendVerification(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return s.client.do(ctx, http.MethodPost, "/auth/resend-verification", nil, body, nil)
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return s.client.do(ctx, http.MethodPost, "/auth/forgot-password", nil, body, nil)
}

func (s *AuthService) VerifyResetCode(ctx context.Context, email, code string) error {
	body := map[string]string{"email": email, "code": code}
	return s.client.do(ctx, http.MethodPost, "/auth/verify-reset-code", nil, body, nil)
}

func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	body := map[string]string{"email": email, "code": code, "newPassword": newPassword}
	return s.client.do(ctx, http.MethodPost, "/auth/reset-password", nil, body, nil)
}

// AdminLogin authenticates with the shared admin password alone.
func (s *AuthService) AdminLogin(ctx context.Context, password string) (AuthResult, error) {
	var env adminLoginEnvelope
	body := map[string]string{"password": password}
	if err := s.client.do(ctx, http.MethodPost, "/auth/admin-login", nil, body, &env); err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: env.Token, Profile: env.User}, nil
}

// Logout tells the backend to record the logout in the activity log.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.client.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

// Me fetches the profile bound to the current token.
func (s *AuthService) Me(ctx context.Context) (models.Profile, error) {
	var env struct {
		Data models.Profile `json:"data"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/auth/me", nil, nil, &env); err != nil {
		return models.Profile{}, err
	}
	return env.Data, nil
}
