package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-requisition-client/internal/api"
	"inventory-requisition-client/internal/models"
	"inventory-requisition-client/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := TokenClaims{
		Email: "jo@example.com",
		Role:  models.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// newSessionFixture wires a session, its storage and an API client against
// the given fake backend.
func newSessionFixture(t *testing.T, router *gin.Engine) (*Session, storage.Store, *api.Client) {
	t.Helper()
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	client := api.NewClient(server.URL, 5*time.Second)
	services := api.NewServices(client)
	session := NewSession(store, services.Auth)
	client.SetTokenSource(session.Token)
	client.SetUnauthorizedHook(session.Invalidate)
	return session, store, client
}

func loginRouter(t *testing.T, token string) *gin.Engine {
	router := gin.New()
	router.POST("/auth/login", func(c *gin.Context) {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		require.NoError(t, c.ShouldBindJSON(&body))
		if body.Password != "right" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": gin.H{
			"token":    token,
			"_id":      "u1",
			"username": body.Username,
			"name":     "Jo",
			"email":    "jo@example.com",
			"role":     models.RoleUser,
		}})
	})
	return router
}

func TestLoginStoresSessionAndPersists(t *testing.T) {
	ctx := context.Background()
	token := signToken(t, time.Now().Add(time.Hour))
	session, store, _ := newSessionFixture(t, loginRouter(t, token))
	session.Load(ctx)

	outcome := session.Login(ctx, "jo", "right")
	require.True(t, outcome.Success)

	assert.True(t, session.IsAuthenticated())
	assert.False(t, session.IsAdmin())
	assert.Equal(t, token, session.Token())

	profile, ok := session.Current()
	require.True(t, ok)
	assert.Equal(t, "jo", profile.Username)

	stored, ok, _ := store.Get(ctx, storage.KeyToken)
	assert.True(t, ok)
	assert.Equal(t, token, stored)
	_, ok, _ = store.Get(ctx, storage.KeyUser)
	assert.True(t, ok)
}

func TestLoginFailureSurfacesBackendMessage(t *testing.T) {
	ctx := context.Background()
	session, _, _ := newSessionFixture(t, loginRouter(t, "unused"))
	session.Load(ctx)

	outcome := session.Login(ctx, "jo", "wrong")
	assert.False(t, outcome.Success)
	assert.Equal(t, "Invalid credentials", outcome.Message)
	assert.False(t, session.IsAuthenticated())
}

func TestRegisterReturnsEmailWithoutAuthenticating(t *testing.T) {
	router := gin.New()
	router.POST("/auth/register", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"data": gin.H{"email": "jo@example.com"}})
	})
	session, _, _ := newSessionFixture(t, router)
	session.Load(context.Background())

	outcome := session.Register(context.Background(), api.RegisterPayload{
		Username: "jo", Name: "Jo", Email: "jo@example.com", Password: "pw",
	})
	require.True(t, outcome.Success)
	assert.Equal(t, "jo@example.com", outcome.Email)
	assert.False(t, session.IsAuthenticated())
}

func TestVerifyEmailBehavesLikeLogin(t *testing.T) {
	token := signToken(t, time.Now().Add(time.Hour))
	router := gin.New()
	router.POST("/auth/verify-email", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": gin.H{
			"token": token, "_id": "u1", "username": "jo", "role": models.RoleUser,
		}})
	})
	session, store, _ := newSessionFixture(t, router)
	ctx := context.Background()
	session.Load(ctx)

	outcome := session.VerifyEmail(ctx, "jo@example.com", "123456")
	require.True(t, outcome.Success)
	assert.True(t, session.IsAuthenticated())
	stored, ok, _ := store.Get(ctx, storage.KeyToken)
	assert.True(t, ok)
	assert.Equal(t, token, stored)
}

func TestAdminLoginSetsAdminRole(t *testing.T) {
	token := signToken(t, time.Now().Add(time.Hour))
	router := gin.New()
	router.POST("/auth/admin-login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"token":   token,
			"user":    gin.H{"_id": "admin1", "username": "admin", "role": models.RoleAdmin},
		})
	})
	session, _, _ := newSessionFixture(t, router)
	ctx := context.Background()
	session.Load(ctx)

	outcome := session.AdminLogin(ctx, "secret")
	require.True(t, outcome.Success)
	assert.True(t, session.IsAdmin())
}

func TestLogoutClearsStateEvenWhenBackendFails(t *testing.T) {
	token := signToken(t, time.Now().Add(time.Hour))
	router := loginRouter(t, token)
	router.POST("/auth/logout", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
	})
	session, store, _ := newSessionFixture(t, router)
	ctx := context.Background()
	session.Load(ctx)
	require.True(t, session.Login(ctx, "jo", "right").Success)

	session.Logout(ctx)

	assert.False(t, session.IsAuthenticated())
	assert.Empty(t, session.Token())
	_, ok, _ := store.Get(ctx, storage.KeyToken)
	assert.False(t, ok)
	_, ok, _ = store.Get(ctx, storage.KeyUser)
	assert.False(t, ok)
}

func TestUnauthorizedResponseInvalidatesSession(t *testing.T) {
	token := signToken(t, time.Now().Add(time.Hour))
	router := loginRouter(t, token)
	router.GET("/items", func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
	})
	session, store, client := newSessionFixture(t, router)
	ctx := context.Background()
	session.Load(ctx)
	require.True(t, session.Login(ctx, "jo", "right").Success)

	services := api.NewServices(client)
	_, _, err := services.Items.List(ctx, api.ItemFilters{})
	require.Error(t, err)

	assert.False(t, session.IsAuthenticated())
	assert.False(t, session.IsAdmin())
	_, ok, _ := store.Get(ctx, storage.KeyToken)
	assert.False(t, ok)
	_, ok, _ = store.Get(ctx, storage.KeyUser)
	assert.False(t, ok)
}

func TestLoadRestoresPersistedSession(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	token := signToken(t, time.Now().Add(time.Hour))
	require.NoError(t, store.Set(ctx, storage.KeyToken, token))
	require.NoError(t, store.Set(ctx, storage.KeyUser, `{"_id":"u1","username":"jo","role":"user"}`))

	session := NewSession(store, nil)
	assert.True(t, session.Loading())
	session.Load(ctx)

	assert.False(t, session.Loading())
	assert.True(t, session.IsAuthenticated())
	assert.Equal(t, token, session.Token())
}

func TestLoadTreatsExpiredTokenAsAnonymous(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	expired := signToken(t, time.Now().Add(-time.Hour))
	require.NoError(t, store.Set(ctx, storage.KeyToken, expired))
	require.NoError(t, store.Set(ctx, storage.KeyUser, `{"_id":"u1","username":"jo","role":"user"}`))

	session := NewSession(store, nil)
	session.Load(ctx)

	assert.False(t, session.Loading())
	assert.False(t, session.IsAuthenticated())
}

func TestLoadTreatsCorruptProfileAsAnonymous(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, storage.KeyToken, signToken(t, time.Now().Add(time.Hour))))
	require.NoError(t, store.Set(ctx, storage.KeyUser, "{corrupt"))

	session := NewSession(store, nil)
	session.Load(ctx)

	assert.False(t, session.IsAuthenticated())
}
