package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-requisition-client/config"
	"inventory-requisition-client/internal/api"
	"inventory-requisition-client/internal/auth"
	"inventory-requisition-client/internal/cart"
	"inventory-requisition-client/internal/models"
	"inventory-requisition-client/internal/storage"
	"inventory-requisition-client/internal/theme"
	"inventory-requisition-client/internal/workflow"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, role string) string {
	t.Helper()
	claims := auth.TokenClaims{
		Email: "jo@example.com",
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func countingRouter(calls *int) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		*calls++
		c.Next()
	})
	return router
}

// newApp wires a full App against the given fake backend, with a session
// already established for the given role.
func newApp(t *testing.T, role string, router *gin.Engine) *App {
	t.Helper()
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	ctx := context.Background()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, storage.KeyToken, signToken(t, role)))
	profile := fmt.Sprintf(`{"_id":"u1","username":"jo","role":%q}`, role)
	require.NoError(t, store.Set(ctx, storage.KeyUser, profile))

	client := api.NewClient(server.URL, 5*time.Second)
	services := api.NewServices(client)
	session := auth.NewSession(store, services.Auth)
	client.SetTokenSource(session.Token)
	client.SetUnauthorizedHook(session.Invalidate)
	session.Load(ctx)
	require.True(t, session.IsAuthenticated())

	shoppingCart := cart.New(store)
	return &App{
		cfg:      config.Config{},
		services: services,
		session:  session,
		cart:     shoppingCart,
		flow:     workflow.New(shoppingCart, services.Requests, services.Reports),
		theme:    theme.Load(ctx, store),
	}
}

func TestInventoryMutationsAreGatedToAdmins(t *testing.T) {
	calls := 0
	app := newApp(t, models.RoleUser, countingRouter(&calls))
	ctx := context.Background()

	require.NoError(t, app.Run(ctx, []string{"items", "delete", "i1"}))
	require.NoError(t, app.Run(ctx, []string{"items", "create", "--name", "Bond paper"}))
	require.NoError(t, app.Run(ctx, []string{"categories", "create", "Paper"}))
	require.NoError(t, app.Run(ctx, []string{"categories", "update", "c1", "Paper"}))

	assert.Equal(t, 0, calls)
}

func TestAdminReachesInventoryMutations(t *testing.T) {
	calls := 0
	router := countingRouter(&calls)
	router.POST("/categories", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"data": gin.H{"_id": "c1", "name": "Paper"}})
	})
	app := newApp(t, models.RoleAdmin, router)

	require.NoError(t, app.Run(context.Background(), []string{"categories", "create", "Paper"}))
	assert.Equal(t, 1, calls)
}

func TestReadOnlyInventoryCommandsStayOpenToUsers(t *testing.T) {
	calls := 0
	router := countingRouter(&calls)
	router.GET("/items", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": []models.Item{}, "count": 0})
	})
	app := newApp(t, models.RoleUser, router)

	require.NoError(t, app.Run(context.Background(), []string{"items", "list"}))
	assert.Equal(t, 1, calls)
}
