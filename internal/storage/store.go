// Package storage persists the small set of client-side state the app
// carries across restarts: the session token and profile, the cart, and
// the theme preference. Each key is owned by exactly one component, so
// there is no cross-writer contention on any of them.
package storage

import "context"

// Keys for the persisted client state.
const (
	KeyToken = "token"
	KeyUser  = "user"
	KeyCart  = "cart"
	KeyTheme = "theme"
)

// Store is a minimal key/value store. Implementations must treat a
// missing key as (value "", ok false, err nil); corruption or IO trouble
// on read degrades the same way so startup is never blocked by bad state.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
