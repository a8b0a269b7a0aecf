package filter

import (
	"sort"
	"sync"
)

// Factory creates a new filter instance.
type Factory func() Filter

// registry holds registered filters.
var (
	registryMu sync.RWMutex
	filters    = make(map[string]Factory)
)

// Register registers a filter factory with the given name.
// This is typically called from init() functions in filter packages.
// If a filter with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	filters[name] = factory
}

// Unregister removes a filter from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(filters, name)
}

// Available returns the sorted names of all registered filters.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a filter with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := filters[name]
	return ok
}

// Get returns a filter instance by name.
// Returns nil if the filter is not registered.
func Get(name string) Filter {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := filters[name]
	if !ok {
		return nil
	}
	return factory()
}
