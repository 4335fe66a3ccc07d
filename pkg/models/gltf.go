package models

import (
	"fmt"
	"io"

	"github.com/ansipixels/cubeplay/pkg/geometry"
	"github.com/ansipixels/cubeplay/pkg/math3d"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// WriteGLB encodes the wireframe as a binary glTF with a single LINES
// primitive.
func WriteGLB(w io.Writer, wf *Wireframe) error {
	doc := gltf.NewDocument()

	positions := make([][3]float32, len(wf.Vertices))
	for i, v := range wf.Vertices {
		positions[i] = [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
	}
	indices := make([]uint16, 0, 2*len(wf.Edges))
	for _, e := range wf.Edges {
		indices = append(indices, uint16(e[0]), uint16(e[1]))
	}

	posIdx := modeler.WritePosition(doc, positions)
	indIdx := modeler.WriteIndices(doc, indices)

	doc.Meshes = []*gltf.Mesh{{
		Name: wf.Name,
		Primitives: []*gltf.Primitive{{
			Mode:       gltf.PrimitiveLines,
			Indices:    gltf.Index(indIdx),
			Attributes: map[string]int{gltf.POSITION: posIdx},
		}},
	}}
	doc.Nodes = []*gltf.Node{{Name: wf.Name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode glb: %w", err)
	}
	return nil
}

// ReadGLB decodes the first LINES primitive of a binary glTF.
func ReadGLB(r io.Reader, name string) (*Wireframe, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("decode glb: %w", err)
	}
	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveLines {
				continue
			}
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			if prim.Indices == nil {
				return nil, fmt.Errorf("lines primitive has no indices")
			}
			positions, err := readVec3Accessor(doc, posIdx)
			if err != nil {
				return nil, fmt.Errorf("read positions: %w", err)
			}
			indices, err := readIndices(doc, *prim.Indices)
			if err != nil {
				return nil, fmt.Errorf("read indices: %w", err)
			}
			if len(indices)%2 != 0 {
				return nil, fmt.Errorf("odd index count %d for lines", len(indices))
			}
			wf := NewWireframe(name)
			if m.Name != "" {
				wf.Name = m.Name
			}
			wf.Vertices = positions
			for i := 0; i < len(indices); i += 2 {
				a, b := indices[i], indices[i+1]
				if a >= len(positions) || b >= len(positions) {
					return nil, fmt.Errorf("edge %d references vertex beyond %d", i/2, len(positions))
				}
				wf.Edges = append(wf.Edges, geometry.Edge{a, b})
			}
			wf.CalculateBounds()
			return wf, nil
		}
	}
	return nil, fmt.Errorf("no lines primitive found")
}

// readVec3Accessor reads float VEC3 positions from a glTF accessor.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	accessor, err := checkAccessor(doc, accessorIdx)
	if err != nil {
		return nil, err
	}
	positions, err := modeler.ReadPosition(doc, accessor, nil)
	if err != nil {
		return nil, err
	}
	out := make([]math3d.Vec3, len(positions))
	for i, p := range positions {
		out[i] = math3d.V3(float64(p[0]), float64(p[1]), float64(p[2]))
	}
	return out, nil
}

// readIndices reads a scalar index accessor of any unsigned width.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor, err := checkAccessor(doc, accessorIdx)
	if err != nil {
		return nil, err
	}
	indices, err := modeler.ReadIndices(doc, accessor, nil)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(indices))
	for i, idx := range indices {
		out[i] = int(idx)
	}
	return out, nil
}

// checkAccessor returns the accessor at accessorIdx once its buffer view and
// buffer references are in range. modeler bounds the read by the view's
// ByteOffset+ByteLength but slices at the accessor offset unchecked.
func checkAccessor(doc *gltf.Document, accessorIdx int) (*gltf.Accessor, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor %d has no buffer view", accessorIdx)
	}
	if accessor.Sparse != nil {
		return nil, fmt.Errorf("accessor %d: sparse accessors not supported", accessorIdx)
	}
	viewIdx := *accessor.BufferView
	if viewIdx < 0 || viewIdx >= len(doc.BufferViews) {
		return nil, fmt.Errorf("accessor %d: buffer view %d out of range", accessorIdx, viewIdx)
	}
	view := doc.BufferViews[viewIdx]
	if view.Buffer < 0 || view.Buffer >= len(doc.Buffers) {
		return nil, fmt.Errorf("buffer view %d: buffer %d out of range", viewIdx, view.Buffer)
	}
	if doc.Buffers[view.Buffer].URI != "" {
		return nil, fmt.Errorf("external buffers not supported")
	}
	if accessor.ByteOffset < 0 || accessor.ByteOffset > view.ByteLength {
		return nil, fmt.Errorf("accessor %d: offset %d past buffer view length %d",
			accessorIdx, accessor.ByteOffset, view.ByteLength)
	}
	return accessor, nil
}
