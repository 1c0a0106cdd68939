package loader

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unit cube mesh placed twice: once translated, once as a scaled child
const hierarchyGLTF = `{
  "asset": {"version": "2.0"},
  "scene": 0,
  "scenes": [{"nodes": [0]}],
  "nodes": [
    {"mesh": 0, "translation": [10, 0, 0], "children": [1]},
    {"mesh": 0, "scale": [2, 2, 2]}
  ],
  "meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
  "accessors": [
    {"componentType": 5126, "count": 8, "type": "VEC3", "min": [-1, -1, -1], "max": [1, 1, 1]}
  ]
}`

const emptyGLTF = `{"asset": {"version": "2.0"}}`

type countingBackend struct {
	calls int
	b     Bounds
}

func (c *countingBackend) Bounds(string) (Bounds, error) {
	c.calls++
	return c.b, nil
}

func (c *countingBackend) BoundsReader(io.Reader) (Bounds, error) {
	c.calls++
	return c.b, nil
}

func writeModel(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func assertVec3InDelta(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], 1e-4, "component %d", i)
	}
}

func TestLoadAppliesNodeHierarchy(t *testing.T) {
	path := writeModel(t, "apartment.gltf", hierarchyGLTF)

	b, err := NewLoader(BackendTypeGLTF).Load(path)
	require.NoError(t, err)

	assertVec3InDelta(t, mgl32.Vec3{8, -2, -2}, b.Min)
	assertVec3InDelta(t, mgl32.Vec3{12, 2, 2}, b.Max)
	assertVec3InDelta(t, mgl32.Vec3{10, 0, 0}, b.Center())
}

func TestLoadReader(t *testing.T) {
	l := NewLoader(BackendTypeGLTF)

	b, err := l.LoadReader("embedded", strings.NewReader(hierarchyGLTF))
	require.NoError(t, err)
	assertVec3InDelta(t, mgl32.Vec3{4, 4, 4}, b.Size())

	cached, ok := l.Get("embedded")
	assert.True(t, ok)
	assert.Equal(t, b, cached)
}

func TestLoadWithoutGeometry(t *testing.T) {
	path := writeModel(t, "empty.gltf", emptyGLTF)

	_, err := NewLoader(BackendTypeGLTF).Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, errNoGeometry)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	_, err := NewLoader(BackendTypeGLTF).Load("model.obj")
	assert.ErrorContains(t, err, "unsupported model format")
}

func TestLoadCaches(t *testing.T) {
	backend := &countingBackend{b: Bounds{Max: mgl32.Vec3{1, 1, 1}}}
	l := NewLoader(BackendTypeGLTF, withBackend(backend))

	for i := 0; i < 3; i++ {
		_, err := l.Load("scene.glb")
		require.NoError(t, err)
	}
	assert.Equal(t, 1, backend.calls)

	preset := Bounds{Min: mgl32.Vec3{-5, 0, -5}, Max: mgl32.Vec3{5, 3, 5}}
	l = NewLoader(BackendTypeGLTF, withBackend(backend), WithBounds("preset.glb", preset))
	b, err := l.Load("preset.glb")
	require.NoError(t, err)
	assert.Equal(t, preset, b)
	assert.Equal(t, 1, backend.calls)
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{10, 3, 10}}

	tests := []struct {
		name    string
		p       mgl32.Vec3
		padding float32
		want    bool
	}{
		{"inside", mgl32.Vec3{5, 1.5, 5}, 0, true},
		{"on face", mgl32.Vec3{10, 3, 10}, 0, true},
		{"outside", mgl32.Vec3{11, 1, 5}, 0, false},
		{"inside padding", mgl32.Vec3{11, 1, 5}, 2, true},
		{"below floor", mgl32.Vec3{5, -0.5, 5}, 0.25, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Contains(tt.p, tt.padding))
		})
	}
}

func TestBoundsTransformRotation(t *testing.T) {
	b := Bounds{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{2, 1, 1}}
	rotated := b.Transform(mgl32.HomogRotate3DY(mgl32.DegToRad(90)))

	// x extent turns into z extent
	assertVec3InDelta(t, mgl32.Vec3{1, 1, 2}, rotated.Size())
	assert.True(t, emptyBounds().Empty())
	assert.Equal(t, b, b.Union(emptyBounds()))
}
