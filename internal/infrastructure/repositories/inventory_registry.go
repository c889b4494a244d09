package repositories

import (
	"fmt"

	domainRepos "github.com/rios0rios0/depgate/internal/domain/repositories"
)

// InventoryFactory is a constructor function that creates an
// InventoryRepository given a source argument. The source is
// inventory-specific: the file inventory treats it as the listing file path,
// the pip inventory ignores it.
type InventoryFactory func(source string) domainRepos.InventoryRepository

// InventoryRegistry manages all registered inventory implementations.
type InventoryRegistry struct {
	inventories map[string]InventoryFactory
}

// NewInventoryRegistry creates an empty inventory registry.
func NewInventoryRegistry() *InventoryRegistry {
	return &InventoryRegistry{
		inventories: make(map[string]InventoryFactory),
	}
}

// Register adds an inventory factory under the given name (e.g. "pip").
func (r *InventoryRegistry) Register(name string, factory InventoryFactory) {
	r.inventories[name] = factory
}

// Get returns a configured inventory instance for the given name and source.
func (r *InventoryRegistry) Get(name, source string) (domainRepos.InventoryRepository, error) {
	factory, ok := r.inventories[name]
	if !ok {
		return nil, fmt.Errorf("unknown inventory type: %q", name)
	}
	return factory(source), nil
}

// Names returns the list of registered inventory names.
func (r *InventoryRegistry) Names() []string {
	names := make([]string, 0, len(r.inventories))
	for name := range r.inventories {
		names = append(names, name)
	}
	return names
}
