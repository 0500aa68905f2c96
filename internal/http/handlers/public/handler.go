package public

import "github.com/crave-wave/cravewave/internal/provider"

// Handler storefront API handler entry.
// Serves catalog browsing, cart, checkout and account endpoints.
type Handler struct {
	*provider.Container
}

// New creates the storefront handler
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
