package export

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// Factory is a function that creates a new exporter instance.
// Factories are registered via Register() and called by New().
type Factory func() Exporter

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	exporters  = make(map[string]Factory)
)

// Register registers an exporter factory with the given format name.
// This function is typically called from init(), following the
// database/sql driver pattern:
//
//	func init() {
//	    export.Register("pdf", func() export.Exporter {
//	        return NewPDFExporter()
//	    })
//	}
//
// Register panics if factory is nil or the name is already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("export: Register factory is nil")
	}
	if _, dup := exporters[name]; dup {
		panic("export: Register called twice for " + name)
	}
	exporters[name] = factory
}

// Unregister removes an exporter from the registry.
// This is primarily useful for testing to clean up between tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(exporters, name)
}

// New creates a new exporter by format name.
// Returns an error if the format is not registered.
func New(name string) (Exporter, error) {
	registryMu.RLock()
	factory, ok := exporters[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("export: unknown format %q (forgotten import?)", name)
	}
	return factory(), nil
}

// Must creates a new exporter by name, panicking on error.
func Must(name string) Exporter {
	e, err := New(name)
	if err != nil {
		panic(err)
	}
	return e
}

// Formats returns a sorted list of registered format names.
func Formats() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	return slices.Sorted(maps.Keys(exporters))
}

// IsRegistered checks if an exporter with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := exporters[name]
	return ok
}

// FormatOf derives the format name from a file name or URL extension.
// It returns "" when there is no extension.
func FormatOf(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}
