package renderer

import (
	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// PathStyle controls how the path preview is drawn.
type PathStyle struct {
	Traversed [4]float32 // sections behind the current offset
	Remaining [4]float32 // sections ahead of the current offset
	LookRay   [4]float32 // short ray from each waypoint toward its look target
	RayLength float32
}

// DefaultPathStyle returns the preview colors used when no style is configured.
func DefaultPathStyle() PathStyle {
	return PathStyle{
		Traversed: [4]float32{0.95, 0.75, 0.25, 1},
		Remaining: [4]float32{0.45, 0.55, 0.7, 1},
		LookRay:   [4]float32{0.35, 0.9, 0.55, 1},
		RayLength: 0.5,
	}
}

// BuildPathVertices builds a line list for a waypoint path: one line per section, split at
// progress so the traversed part and the remaining part get different colors, followed by one
// look ray per waypoint.
//
// Parameters:
//   - waypoints: the path
//   - progress: smoothed offset in [0, 1]
//   - style: colors and ray length
//
// Returns:
//   - []GPUPathVertex: line list vertices, two per line
func BuildPathVertices(waypoints []camera.Waypoint, progress float32, style PathStyle) []GPUPathVertex {
	if len(waypoints) < 2 {
		return nil
	}

	sections := len(waypoints) - 1
	cursor := common.Clamp(progress, 0, 1) * float32(sections)
	out := make([]GPUPathVertex, 0, 2*sections+2+2*len(waypoints))

	for i := 0; i < sections; i++ {
		from, to := waypoints[i].Position, waypoints[i+1].Position
		switch {
		case cursor >= float32(i+1):
			out = appendLine(out, from, to, style.Traversed)
		case cursor <= float32(i):
			out = appendLine(out, from, to, style.Remaining)
		default:
			split := common.LerpVec3(from, to, cursor-float32(i))
			out = appendLine(out, from, split, style.Traversed)
			out = appendLine(out, split, to, style.Remaining)
		}
	}

	for _, wp := range waypoints {
		dir := common.NormalizeOr(wp.LookAt.Sub(wp.Position), mgl32.Vec3{0, 0, -1})
		out = appendLine(out, wp.Position, wp.Position.Add(dir.Mul(style.RayLength)), style.LookRay)
	}
	return out
}

func appendLine(out []GPUPathVertex, a, b mgl32.Vec3, color [4]float32) []GPUPathVertex {
	return append(out,
		GPUPathVertex{Position: [3]float32(a), Color: color},
		GPUPathVertex{Position: [3]float32(b), Color: color},
	)
}

// ClearColor returns the background for a given tour progress, fading from a dark blue at the
// start of the path to a warm grey at the end.
//
// Parameters:
//   - progress: smoothed offset in [0, 1]
//
// Returns:
//   - wgpu.Color: the clear color for the frame
func ClearColor(progress float32) wgpu.Color {
	t := common.SmoothStep(progress)
	return wgpu.Color{
		R: float64(common.Lerp(0.05, 0.22, t)),
		G: float64(common.Lerp(0.07, 0.2, t)),
		B: float64(common.Lerp(0.12, 0.18, t)),
		A: 1,
	}
}
