package loader

import (
	"io"
)

// loaderBackend defines the format-specific half of the Loader.
// Concrete implementations (e.g., gltfLoaderBackend) read a model file and report its world-space bounds.
type loaderBackend interface {
	// Bounds reads the model at path and returns the box enclosing every mesh in its default scene.
	//
	// Parameters:
	//   - path: the file path to load
	//
	// Returns:
	//   - Bounds: the world-space bounds
	//   - error: error if loading fails or the model has no positioned geometry
	Bounds(path string) (Bounds, error)

	// BoundsReader is Bounds for an in-memory or streamed model.
	//
	// Parameters:
	//   - r: the reader providing model data
	//
	// Returns:
	//   - Bounds: the world-space bounds
	//   - error: error if decoding fails or the model has no positioned geometry
	BoundsReader(r io.Reader) (Bounds, error)
}
