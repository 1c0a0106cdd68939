package renderer

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	configured [][2]int
	source     string
	uploads    int
	uniform    []byte
	draws      []uint32
	clears     []wgpu.Color
	presented  int
	released   bool
	beginErr   error
}

func (f *fakeBackend) ConfigureSurface(width, height int) {
	f.configured = append(f.configured, [2]int{width, height})
}
func (f *fakeBackend) RegisterPathPipeline(source string) error { f.source = source; return nil }
func (f *fakeBackend) UploadVertices(data []byte) error      { f.uploads++; return nil }
func (f *fakeBackend) WriteUniform(data []byte)              { f.uniform = data }
func (f *fakeBackend) BeginFrame(clear wgpu.Color) error {
	if f.beginErr != nil {
		return f.beginErr
	}
	f.clears = append(f.clears, clear)
	return nil
}
func (f *fakeBackend) DrawPath(vertexCount uint32) { f.draws = append(f.draws, vertexCount) }
func (f *fakeBackend) EndFrame()                   {}
func (f *fakeBackend) Present()                    { f.presented++ }
func (f *fakeBackend) Release()                    { f.released = true }

func threeWaypoints() []camera.Waypoint {
	return []camera.Waypoint{
		{Position: mgl32.Vec3{0, 0, 0}, LookAt: mgl32.Vec3{0, 0, 10}},
		{Position: mgl32.Vec3{0, 0, 4}, LookAt: mgl32.Vec3{4, 0, 4}},
		{Position: mgl32.Vec3{4, 0, 4}, LookAt: mgl32.Vec3{4, 0, 4}},
	}
}

func TestBuildPathVerticesSplitsAtProgress(t *testing.T) {
	style := DefaultPathStyle()
	waypoints := threeWaypoints()

	at0 := BuildPathVertices(waypoints, 0, style)
	require.Len(t, at0, 2*2+2*3)
	assert.Equal(t, style.Remaining, at0[0].Color)
	assert.Equal(t, style.Remaining, at0[2].Color)

	mid := BuildPathVertices(waypoints, 0.25, style)
	require.Len(t, mid, 2*3+2*3)
	assert.Equal(t, style.Traversed, mid[0].Color)
	assert.Equal(t, [3]float32{0, 0, 2}, mid[1].Position)
	assert.Equal(t, style.Remaining, mid[2].Color)
	assert.Equal(t, [3]float32{0, 0, 4}, mid[3].Position)

	end := BuildPathVertices(waypoints, 1, style)
	assert.Equal(t, style.Traversed, end[0].Color)
	assert.Equal(t, style.Traversed, end[2].Color)

	assert.Nil(t, BuildPathVertices(waypoints[:1], 0.5, style))
}

func TestBuildPathVerticesLookRays(t *testing.T) {
	style := DefaultPathStyle()
	vertices := BuildPathVertices(threeWaypoints(), 0, style)
	rays := vertices[4:]

	// first waypoint looks down +Z
	assert.Equal(t, [3]float32{0, 0, 0}, rays[0].Position)
	assert.InDelta(t, style.RayLength, rays[1].Position[2], 1e-6)
	assert.Equal(t, style.LookRay, rays[0].Color)

	// a look target on the waypoint falls back to -Z
	assert.InDelta(t, 4-style.RayLength, rays[5].Position[2], 1e-6)
}

func TestPathUniformMarshal(t *testing.T) {
	u := GPUPathUniform{ViewProjection: mgl32.Ident4(), Highlight: [4]float32{0.1, 0.2, 0.3, 0.5}}
	buf := u.Marshal()
	require.Len(t, buf, 80)

	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4])))
	assert.Equal(t, float32(0), math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8])))
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[60:64])))
	assert.Equal(t, float32(0.5), math.Float32frombits(binary.LittleEndian.Uint32(buf[76:80])))

	var v GPUPathVertex
	assert.Equal(t, 28, v.Size())
}

func TestClearColorFollowsProgress(t *testing.T) {
	start, end := ClearColor(0), ClearColor(1)
	assert.InDelta(t, 0.05, start.R, 1e-6)
	assert.InDelta(t, 0.22, end.R, 1e-6)
	assert.Equal(t, 1.0, start.A)
	assert.Greater(t, ClearColor(0.5).R, start.R)
}

func TestRendererRebuildsOnlyWhenNeeded(t *testing.T) {
	backend := &fakeBackend{}
	r := NewRenderer(nil, 640, 480, WithBackend(backend))
	assert.Equal(t, PathShaderSource, backend.source)
	assert.Equal(t, [][2]int{{640, 480}}, backend.configured)

	// nothing to draw before a path is set
	require.NoError(t, r.Render(mgl32.Ident4(), 0))
	assert.Empty(t, backend.draws)
	assert.Equal(t, 1, backend.presented)

	r.SetPath(threeWaypoints())
	require.NoError(t, r.Render(mgl32.Ident4(), 0))
	require.NoError(t, r.Render(mgl32.Ident4(), 0.00001))
	assert.Equal(t, 1, backend.uploads)
	assert.Equal(t, []uint32{10, 10}, backend.draws)

	require.NoError(t, r.Render(mgl32.Ident4(), 0.25))
	assert.Equal(t, 2, backend.uploads)
	assert.Equal(t, uint32(12), backend.draws[2])
	assert.Len(t, backend.uniform, 80)

	r.Resize(0, 100)
	r.Resize(800, 600)
	assert.Equal(t, [2]int{800, 600}, backend.configured[len(backend.configured)-1])
	assert.Len(t, backend.configured, 2)

	r.Release()
	assert.True(t, backend.released)
}

func TestRendererReportsFrameErrors(t *testing.T) {
	backend := &fakeBackend{beginErr: errors.New("surface lost")}
	r := NewRenderer(nil, 1, 1, WithBackend(backend))
	err := r.Render(mgl32.Ident4(), 0)
	assert.ErrorIs(t, err, backend.beginErr)
	assert.Zero(t, backend.presented)
}
