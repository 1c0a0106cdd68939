package renderer

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/chewxy/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// progressEpsilon is the smallest progress change that rebuilds the path vertices.
const progressEpsilon = 1e-4

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backend RendererBackend
	style   PathStyle

	waypoints    []camera.Waypoint
	vertexCount  uint32
	lastProgress float32
	dirty        bool

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
	sampleCount          MSAASampleCount
}

// Renderer draws the path preview: the waypoint polyline split at the current progress,
// a look ray per waypoint, and a background that shifts with progress.
type Renderer interface {
	// SetPath replaces the waypoints being drawn.
	//
	// Parameters:
	//   - waypoints: the tour path
	SetPath(waypoints []camera.Waypoint)

	// Render draws one frame.
	//
	// Parameters:
	//   - viewProjection: the camera's projection * view matrix
	//   - progress: smoothed tour offset in [0, 1]
	//
	// Returns:
	//   - error: an error if the frame could not be acquired or the vertices could not be uploaded
	Render(viewProjection mgl32.Mat4, progress float32) error

	// Resize configures the underlying backend to handle a new surface size.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// Release frees the GPU resources.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer drawing to the given surface.
// Panics if the GPU device or the path pipeline cannot be created.
//
// Parameters:
//   - surfaceDescriptor: platform surface from the window
//   - width: initial surface width in pixels
//   - height: initial surface height in pixels
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the configured renderer
func NewRenderer(surfaceDescriptor *wgpu.SurfaceDescriptor, width, height int, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		style:       DefaultPathStyle(),
		presentMode: PresentModeVSync,
		sampleCount: MSAA4x,
		dirty:       true,
	}
	for _, opt := range options {
		opt(r)
	}

	if r.backend == nil {
		r.backend = newWGPURendererBackend(surfaceDescriptor, r.forceFallbackAdapter, r.sampleCount, r.presentMode)
	}
	r.backend.ConfigureSurface(width, height)
	if err := r.backend.RegisterPathPipeline(PathShaderSource); err != nil {
		panic(fmt.Sprintf("failed to create path pipeline: %v", err))
	}
	return r
}

func (r *renderer) SetPath(waypoints []camera.Waypoint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.waypoints = append([]camera.Waypoint(nil), waypoints...)
	r.dirty = true
}

func (r *renderer) Render(viewProjection mgl32.Mat4, progress float32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	progress = common.Clamp(progress, 0, 1)
	if r.dirty || math32.Abs(progress-r.lastProgress) > progressEpsilon {
		vertices := BuildPathVertices(r.waypoints, progress, r.style)
		if len(vertices) > 0 {
			if err := r.backend.UploadVertices(common.SliceToBytes(vertices)); err != nil {
				return fmt.Errorf("upload path vertices: %w", err)
			}
		}
		r.vertexCount = uint32(len(vertices))
		r.lastProgress = progress
		r.dirty = false
	}

	uniform := GPUPathUniform{
		ViewProjection: viewProjection,
		Highlight:      [4]float32{r.style.Traversed[0], r.style.Traversed[1], r.style.Traversed[2], progress},
	}
	r.backend.WriteUniform(uniform.Marshal())

	if err := r.backend.BeginFrame(ClearColor(progress)); err != nil {
		return fmt.Errorf("begin frame: %w", err)
	}
	if r.vertexCount > 0 {
		r.backend.DrawPath(r.vertexCount)
	}
	r.backend.EndFrame()
	r.backend.Present()
	return nil
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.Release()
}
