package renderer

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// PathShaderSource is the WGSL program drawing the path preview line list.
// Its VertexInput matches GPUPathVertex and its uniform matches GPUPathUniform.
//
//go:embed assets/path.wgsl
var PathShaderSource string

// GPUPathVertex is one endpoint of a path preview line.
// Size: 28 bytes (tightly packed vertex attributes).
type GPUPathVertex struct {
	Position [3]float32 // offset  0: world-space position (12 bytes)
	Color    [4]float32 // offset 12: RGBA color (16 bytes)
}

// Size returns the size of the GPUPathVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (v *GPUPathVertex) Size() int {
	return int(unsafe.Sizeof(*v))
}

// GPUPathUniform is the per-frame uniform of the path preview shader.
// Size: 80 bytes (std140 aligned).
type GPUPathUniform struct {
	ViewProjection mgl32.Mat4 // offset  0: column-major projection * view (64 bytes)
	Highlight      [4]float32 // offset 64: tint blended over every line, alpha scales the blend (16 bytes)
}

// Marshal serializes the GPUPathUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 80-byte buffer ready for GPU upload.
func (u *GPUPathUniform) Marshal() []byte {
	buf := make([]byte, 80)
	for i, f := range u.ViewProjection {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], math.Float32bits(f))
	}
	for i, f := range u.Highlight {
		binary.LittleEndian.PutUint32(buf[64+i*4:68+i*4], math.Float32bits(f))
	}
	return buf
}
