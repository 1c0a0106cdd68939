package renderer

import "github.com/cogentcore/webgpu/wgpu"

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// WebGPU guarantees support for 1 (off) and 4.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4× multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4
)

// RendererBackend is the GPU-facing half of the Renderer.
type RendererBackend interface {
	// ConfigureSurface (re)configures the swapchain and any multisample target for a new size.
	//
	// Parameters:
	//   - width: surface width in pixels
	//   - height: surface height in pixels
	ConfigureSurface(width, height int)

	// RegisterPathPipeline compiles the line-list pipeline and creates its uniform buffer and bind group.
	//
	// Parameters:
	//   - source: WGSL source with vs_main and fs_main entry points
	//
	// Returns:
	//   - error: an error if shader or pipeline creation fails
	RegisterPathPipeline(source string) error

	// UploadVertices replaces the path vertex data, growing the vertex buffer when needed.
	//
	// Parameters:
	//   - data: packed GPUPathVertex bytes
	//
	// Returns:
	//   - error: an error if buffer creation fails
	UploadVertices(data []byte) error

	// WriteUniform writes the per-frame uniform.
	//
	// Parameters:
	//   - data: a marshaled GPUPathUniform
	WriteUniform(data []byte)

	// BeginFrame acquires the next swapchain texture and begins a render pass cleared to clear.
	// Must be paired with EndFrame.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	BeginFrame(clear wgpu.Color) error

	// DrawPath draws vertexCount vertices of the uploaded line list.
	DrawPath(vertexCount uint32)

	// EndFrame ends the render pass and submits the command buffer.
	EndFrame()

	// Present presents the surface and releases the swapchain texture.
	Present()

	// Release frees every GPU object the backend created.
	Release()
}
