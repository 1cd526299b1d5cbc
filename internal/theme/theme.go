// Package theme persists the cosmetic light/dark preference.
package theme

import (
	"context"

	"inventory-requisition-client/internal/storage"
)

const (
	Light = "light"
	Dark  = "dark"
)

type Preference struct {
	store storage.Store
	mode  string
}

func Load(ctx context.Context, store storage.Store) *Preference {
	p := &Preference{store: store, mode: Light}
	if mode, ok, _ := store.Get(ctx, storage.KeyTheme); ok {
		if mode == Light || mode == Dark {
			p.mode = mode
		}
	}
	return p
}

func (p *Preference) Mode() string {
	return p.mode
}

func (p *Preference) Set(ctx context.Context, mode string) {
	if mode != Light && mode != Dark {
		return
	}
	p.mode = mode
	p.store.Set(ctx, storage.KeyTheme, mode)
}

func (p *Preference) Toggle(ctx context.Context) string {
	if p.mode == Light {
		p.Set(ctx, Dark)
	} else {
		p.Set(ctx, Light)
	}
	return p.mode
}
