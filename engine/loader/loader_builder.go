package loader

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithBounds is an option builder that pre-populates the cache, so Load(key) never reads a file.
//
// Parameters:
//   - key: the cache key, usually the model path
//   - b: the bounds to cache
//
// Returns:
//   - LoaderBuilderOption: a function that applies the bounds option to a loader
func WithBounds(key string, b Bounds) LoaderBuilderOption {
	return func(l *loader) {
		l.boundsCache[key] = b
	}
}

// withBackend replaces the format backend. Used by tests.
func withBackend(b loaderBackend) LoaderBuilderOption {
	return func(l *loader) {
		l.backend = b
	}
}
