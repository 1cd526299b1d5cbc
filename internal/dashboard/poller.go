// Package dashboard keeps the overview statistics fresh on a fixed
// interval. Every snapshot is re-derived wholesale from the backend's
// current truth, never incrementally computed, so interleaving with
// per-action reloads is harmless.
package dashboard

import (
	"context"
	"log"
	"sync"
	"time"

	"inventory-requisition-client/internal/api"
	"inventory-requisition-client/internal/models"
)

// Snapshot is one refresh of the dashboard data.
type Snapshot struct {
	TotalItems         int
	TotalCategories    int
	LowStockCount      int
	TotalTransactions  int
	LowStockItems      []models.Item
	RecentTransactions []models.Transaction
	RefreshedAt        time.Time
}

type Poller struct {
	mu       sync.RWMutex
	services *api.Services
	interval time.Duration
	latest   Snapshot
	ok       bool
}

func NewPoller(services *api.Services, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Poller{services: services, interval: interval}
}

// Run refreshes immediately and then on every tick until the context is
// cancelled. Refresh failures are logged and skipped; a background poll
// must never interrupt the UI.
func (p *Poller) Run(ctx context.Context) {
	p.refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

// Refresh performs a single on-demand refresh and returns the snapshot.
func (p *Poller) Refresh(ctx context.Context) (Snapshot, error) {
	if err := p.refresh(ctx); err != nil {
		return Snapshot{}, err
	}
	snap, _ := p.Latest()
	return snap, nil
}

// Latest returns the most recent snapshot and whether one exists yet.
func (p *Poller) Latest() (Snapshot, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.latest, p.ok
}

func (p *Poller) refresh(ctx context.Context) error {
	_, itemCount, err := p.services.Items.List(ctx, api.ItemFilters{})
	if err != nil {
		log.Printf("Error loading dashboard data: %v", err)
		return err
	}
	_, categoryCount, err := p.services.Categories.List(ctx)
	if err != nil {
		log.Printf("Error loading dashboard data: %v", err)
		return err
	}
	lowStock, lowStockCount, err := p.services.Items.LowStock(ctx)
	if err != nil {
		log.Printf("Error loading dashboard data: %v", err)
		return err
	}
	transactions, transactionCount, err := p.services.Transactions.List(ctx, api.TransactionFilters{})
	if err != nil {
		log.Printf("Error loading dashboard data: %v", err)
		return err
	}

	recent := transactions
	if len(recent) > 5 {
		recent = recent[:5]
	}

	p.mu.Lock()
	p.latest = Snapshot{
		TotalItems:         itemCount,
		TotalCategories:    categoryCount,
		LowStockCount:      lowStockCount,
		TotalTransactions:  transactionCount,
		LowStockItems:      lowStock,
		RecentTransactions: recent,
		RefreshedAt:        time.Now(),
	}
	p.ok = true
	p.mu.Unlock()
	return nil
}
