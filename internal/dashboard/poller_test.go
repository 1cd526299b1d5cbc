package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-requisition-client/internal/api"
	"inventory-requisition-client/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func statsRouter(failing *bool) *gin.Engine {
	router := gin.New()
	router.GET("/items", func(c *gin.Context) {
		if *failing {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": []models.Item{}, "count": 12})
	})
	router.GET("/items/low-stock", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"data":  []models.Item{{ID: "a", Name: "Bond paper", Quantity: 2, MinStockLevel: 5}},
			"count": 1,
		})
	})
	router.GET("/categories", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": []models.Category{}, "count": 3})
	})
	router.GET("/transactions", func(c *gin.Context) {
		transactions := make([]models.Transaction, 8)
		for i := range transactions {
			transactions[i] = models.Transaction{ID: "t", Type: models.TransactionOut, Quantity: 1}
		}
		c.JSON(http.StatusOK, gin.H{"data": transactions, "count": 8})
	})
	return router
}

func newPollerFixture(t *testing.T, failing *bool) *Poller {
	t.Helper()
	server := httptest.NewServer(statsRouter(failing))
	t.Cleanup(server.Close)
	client := api.NewClient(server.URL, 5*time.Second)
	return NewPoller(api.NewServices(client), time.Minute)
}

func TestRefreshBuildsSnapshot(t *testing.T) {
	failing := false
	poller := newPollerFixture(t, &failing)

	snap, err := poller.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, snap.TotalItems)
	assert.Equal(t, 3, snap.TotalCategories)
	assert.Equal(t, 1, snap.LowStockCount)
	assert.Equal(t, 8, snap.TotalTransactions)
	require.Len(t, snap.LowStockItems, 1)
	assert.Len(t, snap.RecentTransactions, 5)
}

func TestFailedRefreshKeepsLastSnapshot(t *testing.T) {
	failing := false
	poller := newPollerFixture(t, &failing)

	_, err := poller.Refresh(context.Background())
	require.NoError(t, err)

	failing = true
	_, err = poller.Refresh(context.Background())
	require.Error(t, err)

	snap, ok := poller.Latest()
	assert.True(t, ok)
	assert.Equal(t, 12, snap.TotalItems)
}

func TestLatestBeforeAnyRefresh(t *testing.T) {
	failing := false
	poller := newPollerFixture(t, &failing)

	_, ok := poller.Latest()
	assert.False(t, ok)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	failing := false
	poller := newPollerFixture(t, &failing)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		poller.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop on context cancel")
	}
}
