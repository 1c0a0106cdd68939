package loader

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Bounds is an axis-aligned bounding box in world space.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// emptyBounds returns an inverted box that any Extend call will replace.
func emptyBounds() Bounds {
	inf := math32.Inf(1)
	return Bounds{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

// Empty reports whether the box has never been extended.
func (b Bounds) Empty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Extend grows the box to include p.
//
// Parameters:
//   - p: the point to include
//
// Returns:
//   - Bounds: the grown box
func (b Bounds) Extend(p mgl32.Vec3) Bounds {
	for i := 0; i < 3; i++ {
		b.Min[i] = math32.Min(b.Min[i], p[i])
		b.Max[i] = math32.Max(b.Max[i], p[i])
	}
	return b
}

// Union returns the smallest box containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	if o.Empty() {
		return b
	}
	return b.Extend(o.Min).Extend(o.Max)
}

// Center returns the midpoint of the box.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the edge lengths of the box.
func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Contains reports whether p lies inside the box grown by padding on every side.
//
// Parameters:
//   - p: the point to test
//   - padding: distance added to every face before testing
//
// Returns:
//   - bool: true if p is inside the padded box
func (b Bounds) Contains(p mgl32.Vec3, padding float32) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i]-padding || p[i] > b.Max[i]+padding {
			return false
		}
	}
	return true
}

// Transform returns the box enclosing all eight corners of b after applying m.
//
// Parameters:
//   - m: the affine transform to apply
//
// Returns:
//   - Bounds: the transformed box
func (b Bounds) Transform(m mgl32.Mat4) Bounds {
	if b.Empty() {
		return b
	}
	out := emptyBounds()
	for i := 0; i < 8; i++ {
		corner := mgl32.Vec3{b.Min[0], b.Min[1], b.Min[2]}
		if i&1 != 0 {
			corner[0] = b.Max[0]
		}
		if i&2 != 0 {
			corner[1] = b.Max[1]
		}
		if i&4 != 0 {
			corner[2] = b.Max[2]
		}
		out = out.Extend(mgl32.TransformCoordinate(corner, m))
	}
	return out
}
