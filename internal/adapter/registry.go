package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Registry resolves the [Provider] implementation serving a vault's
// configured provider type. All registrations happen during wiring, before
// the first sweep; Register is not safe to call concurrently with ForVault.
type Registry struct {
	providers map[models.ProviderType]Provider
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[models.ProviderType]Provider)}
}

// Register installs p as the implementation for provider type t, replacing
// any previous registration for the same type.
func (r *Registry) Register(t models.ProviderType, p Provider) {
	r.providers[t] = p
}

// ForVault returns the provider serving the vault's configured type, or
// [ErrUnknownProvider] (wrapped) when nothing is registered for it.
func (r *Registry) ForVault(vault models.Vault) (Provider, error) {
	p, ok := r.providers[vault.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, vault.Provider)
	}
	return p, nil
}
