package pixbuf

import "sync"

// ResourceFactory creates a resource for a source that Detect matched.
type ResourceFactory func(source any, width, height int) (*Resource, error)

// factoryEntry pairs a match predicate with its factory.
type factoryEntry struct {
	match   func(source any) bool
	factory ResourceFactory
}

// registry holds registered resource factories.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]factoryEntry)
	// Priority order for detection (first match wins). Registered names
	// not listed here are tried after the listed ones.
	factoryPriority = []string{FactoryBuffer}
)

// FactoryBuffer is the name of the built-in pixel buffer factory.
const FactoryBuffer = "buffer"

func init() {
	Register(FactoryBuffer, Supported, New)
}

// Register registers a resource factory under the given name, with a
// predicate that reports whether a source belongs to it. External resource
// types (image, video, ...) register here so that Detect can dispatch
// without type-specific knowledge. If a factory with the same name is
// already registered, it will be replaced.
func Register(name string, match func(source any) bool, factory ResourceFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = factoryEntry{match: match, factory: factory}
}

// Unregister removes a factory from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Registered returns a list of registered factory names.
func Registered() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a factory with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// Detect returns the factory whose predicate matches source, trying the
// priority list first and any remaining registrations after it.
// Returns nil and false when no factory matches.
func Detect(source any) (ResourceFactory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	seen := make(map[string]bool, len(factoryPriority))
	for _, name := range factoryPriority {
		seen[name] = true
		if e, ok := factories[name]; ok && e.match(source) {
			return e.factory, true
		}
	}
	for name, e := range factories {
		if seen[name] {
			continue
		}
		if e.match(source) {
			return e.factory, true
		}
	}
	return nil, false
}
