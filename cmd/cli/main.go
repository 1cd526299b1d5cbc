package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"inventory-requisition-client/config"
	"inventory-requisition-client/internal/api"
	"inventory-requisition-client/internal/auth"
	"inventory-requisition-client/internal/cart"
	"inventory-requisition-client/internal/storage"
	"inventory-requisition-client/internal/theme"
	"inventory-requisition-client/internal/workflow"
)

func main() {
	// .env is optional; the config loader falls back to real env vars.
	godotenv.Load()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	store, err := newStore(cfg.State)
	if err != nil {
		log.Fatalf("Could not open state storage: %v", err)
	}

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout)
	services := api.NewServices(client)

	session := auth.NewSession(store, services.Auth)
	client.SetTokenSource(session.Token)
	// Any 401, from any endpoint, invalidates the session.
	client.SetUnauthorizedHook(session.Invalidate)

	shoppingCart := cart.New(store)
	flow := workflow.New(shoppingCart, services.Requests, services.Reports)

	// Root context cancels in-flight requests on Ctrl-C.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session.Load(ctx)
	shoppingCart.Load(ctx)
	prefs := theme.Load(ctx, store)

	app := &App{
		cfg:      cfg,
		services: services,
		session:  session,
		cart:     shoppingCart,
		flow:     flow,
		theme:    prefs,
	}

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func newStore(cfg config.StateConfig) (storage.Store, error) {
	if cfg.RedisURL != "" {
		return storage.NewRedisStore(cfg.RedisURL)
	}
	return storage.NewFileStore(cfg.Dir)
}
