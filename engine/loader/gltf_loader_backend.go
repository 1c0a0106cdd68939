package loader

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
)

var errNoGeometry = errors.New("model has no POSITION accessor with min/max")

// gltfLoaderBackend reads bounds from glTF and GLB documents.
// Only accessor min/max metadata is consulted, so buffer contents are never decoded.
type gltfLoaderBackend struct{}

var _ loaderBackend = &gltfLoaderBackend{}

func newGLTFLoaderBackend() loaderBackend {
	return &gltfLoaderBackend{}
}

func (b *gltfLoaderBackend) Bounds(path string) (Bounds, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return Bounds{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return documentBounds(doc)
}

func (b *gltfLoaderBackend) BoundsReader(r io.Reader) (Bounds, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return Bounds{}, fmt.Errorf("failed to parse from reader: %w", err)
	}
	return documentBounds(doc)
}

// documentBounds walks the node hierarchy from its roots, placing each mesh's local box with the
// accumulated node transform. A document with meshes but no nodes falls back to the untransformed
// union of its meshes.
func documentBounds(doc *gltf.Document) (Bounds, error) {
	out := emptyBounds()

	if len(doc.Nodes) == 0 {
		for _, mesh := range doc.Meshes {
			out = out.Union(meshBounds(doc, mesh))
		}
	} else {
		isChild := make(map[int]bool, len(doc.Nodes))
		for _, nd := range doc.Nodes {
			for _, c := range nd.Children {
				isChild[int(c)] = true
			}
		}

		var walk func(nd *gltf.Node, parent mgl32.Mat4, depth int)
		walk = func(nd *gltf.Node, parent mgl32.Mat4, depth int) {
			// cyclic hierarchies are invalid glTF; stop rather than recurse forever
			if depth > len(doc.Nodes) {
				return
			}
			world := parent.Mul4(nodeMatrix(nd))
			if nd.Mesh != nil && int(*nd.Mesh) < len(doc.Meshes) {
				out = out.Union(meshBounds(doc, doc.Meshes[*nd.Mesh]).Transform(world))
			}
			for _, c := range nd.Children {
				if int(c) < len(doc.Nodes) {
					walk(doc.Nodes[c], world, depth+1)
				}
			}
		}

		for i, nd := range doc.Nodes {
			if !isChild[i] {
				walk(nd, mgl32.Ident4(), 0)
			}
		}
	}

	if out.Empty() {
		return Bounds{}, errNoGeometry
	}
	return out, nil
}

// meshBounds unions the POSITION accessor ranges of every primitive in mesh.
func meshBounds(doc *gltf.Document, mesh *gltf.Mesh) Bounds {
	out := emptyBounds()
	for _, prim := range mesh.Primitives {
		idx, ok := prim.Attributes[gltf.POSITION]
		if !ok || int(idx) >= len(doc.Accessors) {
			continue
		}
		acc := doc.Accessors[idx]
		if len(acc.Min) < 3 || len(acc.Max) < 3 {
			continue
		}
		out = out.Extend(mgl32.Vec3{float32(acc.Min[0]), float32(acc.Min[1]), float32(acc.Min[2])})
		out = out.Extend(mgl32.Vec3{float32(acc.Max[0]), float32(acc.Max[1]), float32(acc.Max[2])})
	}
	return out
}

// nodeMatrix returns the node's local transform. An explicit matrix wins over TRS; zero-valued
// rotation and scale are treated as identity.
func nodeMatrix(nd *gltf.Node) mgl32.Mat4 {
	m := mgl32.Mat4(nd.Matrix)
	if m != (mgl32.Mat4{}) && m != mgl32.Ident4() {
		return m
	}

	t := nd.Translation
	r := nd.Rotation
	s := nd.Scale
	if s == [3]float32{} {
		s = [3]float32{1, 1, 1}
	}
	rot := mgl32.QuatIdent()
	if r != [4]float32{} {
		rot = mgl32.Quat{W: r[3], V: mgl32.Vec3{r[0], r[1], r[2]}}.Normalize()
	}

	return mgl32.Translate3D(t[0], t[1], t[2]).
		Mul4(rot.Mat4()).
		Mul4(mgl32.Scale3D(s[0], s[1], s[2]))
}
