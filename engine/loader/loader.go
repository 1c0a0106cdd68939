package loader

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"sync"
)

// LoaderBackendType identifies the model file format backend to use.
type LoaderBackendType int

const (
	// BackendTypeGLTF selects the glTF/GLB loader backend.
	BackendTypeGLTF LoaderBackendType = iota
)

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	boundsCache map[string]Bounds

	backend loaderBackend
}

// Loader reads model files far enough to know where their geometry sits, and caches the result
// by path. The showcase uses the bounds to frame the orbit view and to sanity-check tours.
type Loader interface {
	// Load returns the world-space bounds of the model at path.
	// Cached bounds are returned without touching the file again.
	// The backend is selected based on the file extension (.gltf/.glb → glTF backend).
	//
	// Parameters:
	//   - path: the file path to the model file
	//
	// Returns:
	//   - Bounds: the model's bounds
	//   - error: error if the format is unsupported or loading fails
	Load(path string) (Bounds, error)

	// LoadReader reads a model from a stream and caches its bounds under name.
	//
	// Parameters:
	//   - name: the cache key
	//   - r: the reader providing glTF JSON or GLB data
	//
	// Returns:
	//   - Bounds: the model's bounds
	//   - error: error if decoding fails
	LoadReader(name string, r io.Reader) (Bounds, error)

	// Get retrieves cached bounds by name.
	//
	// Parameters:
	//   - name: the cache key to look up
	//
	// Returns:
	//   - Bounds: the cached bounds
	//   - bool: false if nothing is cached under name
	Get(name string) (Bounds, bool)
}

var _ Loader = &loader{}

// NewLoader creates a new Loader with the specified backend type and options applied.
//
// Parameters:
//   - backendType: the type of loader backend to use (e.g., BackendTypeGLTF)
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new Loader configured with the provided backend and options
func NewLoader(backendType LoaderBackendType, options ...LoaderBuilderOption) Loader {
	l := &loader{
		boundsCache: make(map[string]Bounds),
	}

	switch backendType {
	case BackendTypeGLTF:
		l.backend = newGLTFLoaderBackend()
	}

	for _, option := range options {
		option(l)
	}
	return l
}

func (l *loader) Load(path string) (Bounds, error) {
	l.mu.RLock()
	if cached, ok := l.boundsCache[path]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	backend, err := l.resolveBackend(path)
	if err != nil {
		return Bounds{}, err
	}

	b, err := backend.Bounds(path)
	if err != nil {
		return Bounds{}, fmt.Errorf("failed to load %s: %w", path, err)
	}
	log.Printf("[Loader] %s: bounds %v .. %v", filepath.Base(path), b.Min, b.Max)

	l.mu.Lock()
	l.boundsCache[path] = b
	l.mu.Unlock()
	return b, nil
}

func (l *loader) LoadReader(name string, r io.Reader) (Bounds, error) {
	l.mu.RLock()
	if cached, ok := l.boundsCache[name]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	b, err := l.backend.BoundsReader(r)
	if err != nil {
		return Bounds{}, fmt.Errorf("failed to load %s: %w", name, err)
	}

	l.mu.Lock()
	l.boundsCache[name] = b
	l.mu.Unlock()
	return b, nil
}

func (l *loader) Get(name string) (Bounds, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	b, ok := l.boundsCache[name]
	return b, ok
}

// resolveBackend returns the backend for the given file extension.
func (l *loader) resolveBackend(path string) (loaderBackend, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gltf", ".glb":
		return l.backend, nil
	default:
		return nil, fmt.Errorf("unsupported model format: %s", ext)
	}
}
