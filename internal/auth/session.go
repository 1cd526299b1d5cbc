// Package auth owns the client's session: the identity/token pair, its
// persistence across restarts and the operations that create or destroy
// it. All operations translate transport failures into displayable
// outcomes; nothing here panics or leaks raw errors to the caller.
package auth

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"inventory-requisition-client/internal/api"
	"inventory-requisition-client/internal/models"
	"inventory-requisition-client/internal/storage"
)

// Outcome is the uniform result of every session operation. Message is
// only meaningful when Success is false, except for Register where Email
// carries the address to verify.
type Outcome struct {
	Success bool
	Message string
	Email   string
}

func failure(err error, fallback string) Outcome {
	if err != nil && err.Error() != "" {
		if _, ok := err.(*api.APIError); ok {
			return Outcome{Message: err.Error()}
		}
	}
	return Outcome{Message: fallback}
}

// Session is the store for the authenticated identity. The zero state is
// anonymous-and-loading; Load resolves it from persisted storage.
type Session struct {
	mu      sync.RWMutex
	store   storage.Store
	authAPI *api.AuthService

	profile *models.Profile
	token   string
	loading bool
}

func NewSession(store storage.Store, authAPI *api.AuthService) *Session {
	return &Session{store: store, authAPI: authAPI, loading: true}
}

// Load restores the session from persisted storage. Missing or corrupt
// state, or an expired token, resolves to anonymous; it never fails the
// startup. The loading flag is cleared regardless of the result.
func (s *Session) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	token, ok, _ := s.store.Get(ctx, storage.KeyToken)
	if !ok || token == "" || !tokenUsable(token) {
		return
	}
	raw, ok, _ := s.store.Get(ctx, storage.KeyUser)
	if !ok {
		return
	}
	var profile models.Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return
	}

	s.token = token
	s.profile = &profile
}

func (s *Session) Login(ctx context.Context, username, password string) Outcome {
	result, err := s.authAPI.Login(ctx, api.LoginPayload{Username: username, Password: password})
	if err != nil {
		return failure(err, "Login failed")
	}
	s.establish(ctx, result)
	return Outcome{Success: true}
}

// Register does not authenticate; the returned email feeds the follow-up
// verification step.
func (s *Session) Register(ctx context.Context, payload api.RegisterPayload) Outcome {
	email, err := s.authAPI.Register(ctx, payload)
	if err != nil {
		return failure(err, "Registration failed")
	}
	return Outcome{Success: true, Email: email}
}

// VerifyEmail completes registration and behaves like a login on success.
func (s *Session) VerifyEmail(ctx context.Context, email, code string) Outcome {
	result, err := s.authAPI.VerifyEmail(ctx, email, code)
	if err != nil {
		return failure(err, "Verification failed")
	}
	s.establish(ctx, result)
	return Outcome{Success: true}
}

func (s *Session) ResendVerification(ctx context.Context, email string) Outcome {
	if err := s.authAPI.ResendVerification(ctx, email); err != nil {
		return failure(err, "Failed to resend code")
	}
	return Outcome{Success: true}
}

func (s *Session) ForgotPassword(ctx context.Context, email string) Outcome {
	if err := s.authAPI.ForgotPassword(ctx, email); err != nil {
		return failure(err, "Failed to send reset code")
	}
	return Outcome{Success: true}
}

func (s *Session) VerifyResetCode(ctx context.Context, email, code string) Outcome {
	if err := s.authAPI.VerifyResetCode(ctx, email, code); err != nil {
		return failure(err, "Invalid reset code")
	}
	return Outcome{Success: true}
}

func (s *Session) ResetPassword(ctx context.Context, email, code, newPassword string) Outcome {
	if err := s.authAPI.ResetPassword(ctx, email, code, newPassword); err != nil {
		return failure(err, "Failed to reset password")
	}
	return Outcome{Success: true}
}

// AdminLogin authenticates with the shared admin password and replaces
// any existing session wholesale.
func (s *Session) AdminLogin(ctx context.Context, password string) Outcome {
	result, err := s.authAPI.AdminLogin(ctx, password)
	if err != nil {
		return failure(err, "Invalid admin password")
	}
	s.establish(ctx, result)
	return Outcome{Success: true}
}

// Logout notifies the backend for the activity log, then clears local
// state unconditionally. The clear runs even when the network call fails
// so the user is never stuck looking authenticated.
func (s *Session) Logout(ctx context.Context) {
	defer s.Invalidate()

	if err := s.authAPI.Logout(ctx); err != nil {
		log.Printf("Error logging out: %v", err)
	}
}

// Invalidate drops the session from memory and storage. It is also the
// client-wide 401 policy: the API client calls it for an authorization
// denial from any endpoint.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := context.Background()
	s.store.Delete(ctx, storage.KeyToken)
	s.store.Delete(ctx, storage.KeyUser)
	s.token = ""
	s.profile = nil
}

func (s *Session) establish(ctx context.Context, result api.AuthResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile := result.Profile
	s.token = result.Token
	s.profile = &profile

	if err := s.store.Set(ctx, storage.KeyToken, result.Token); err != nil {
		log.Printf("Error persisting token: %v", err)
	}
	raw, err := json.Marshal(profile)
	if err == nil {
		err = s.store.Set(ctx, storage.KeyUser, string(raw))
	}
	if err != nil {
		log.Printf("Error persisting profile: %v", err)
	}
}

// Token implements the API client's token source.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Loading reports whether the session has not yet been resolved from
// persisted storage.
func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile != nil
}

// IsAdmin is derived from the profile role, never stored separately. It
// is false whenever the session is anonymous.
func (s *Session) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile != nil && s.profile.Role == models.RoleAdmin
}

// Current returns a copy of the authenticated profile.
func (s *Session) Current() (models.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return models.Profile{}, false
	}
	return *s.profile, true
}
