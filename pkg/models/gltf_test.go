package models

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ansipixels/cubeplay/pkg/math3d"
	"github.com/ansipixels/cubeplay/pkg/scene"
	"github.com/qmuntal/gltf"
)

func TestWriteGLBStructure(t *testing.T) {
	wf := Snapshot(scene.New(), "cube")
	var buf bytes.Buffer
	if err := WriteGLB(&buf, wf); err != nil {
		t.Fatalf("WriteGLB: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("glTF")) {
		t.Fatalf("output is not a GLB container")
	}

	doc := new(gltf.Document)
	if err := gltf.NewDecoder(bytes.NewReader(buf.Bytes())).Decode(doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(doc.Meshes) != 1 || len(doc.Meshes[0].Primitives) != 1 {
		t.Fatalf("got %d meshes", len(doc.Meshes))
	}
	prim := doc.Meshes[0].Primitives[0]
	if prim.Mode != gltf.PrimitiveLines {
		t.Errorf("Mode = %v, want LINES", prim.Mode)
	}
	if got := doc.Accessors[prim.Attributes[gltf.POSITION]].Count; got != 8 {
		t.Errorf("position count = %d, want 8", got)
	}
	if got := doc.Accessors[*prim.Indices].Count; got != 24 {
		t.Errorf("index count = %d, want 24", got)
	}
}

func TestGLBRoundTrip(t *testing.T) {
	s := scene.New()
	s.Geometry.SetVertex(2, math3d.V3(2.5, -0.5, -1))
	s.Params.ScaleX = 2
	s.Params.RotZ = 90
	wf := Snapshot(s, "edited")

	var buf bytes.Buffer
	if err := WriteGLB(&buf, wf); err != nil {
		t.Fatalf("WriteGLB: %v", err)
	}
	got, err := ReadGLB(&buf, "fallback")
	if err != nil {
		t.Fatalf("ReadGLB: %v", err)
	}
	if got.Name != "edited" {
		t.Errorf("Name = %q, want %q", got.Name, "edited")
	}
	if got.VertexCount() != 8 || got.EdgeCount() != 12 {
		t.Fatalf("got %d vertices, %d edges", got.VertexCount(), got.EdgeCount())
	}
	for i, v := range wf.Vertices {
		// float32 storage
		if !got.Vertices[i].ApproxEqual(v, 1e-6) {
			t.Errorf("vertex %d = %v, want %v", i, got.Vertices[i], v)
		}
	}
	for i, e := range wf.Edges {
		if got.Edges[i] != e {
			t.Errorf("edge %d = %v, want %v", i, got.Edges[i], e)
		}
	}
}

func TestExportAndLoad(t *testing.T) {
	wf := Snapshot(scene.New(), "cube")
	dir := t.TempDir()
	for _, name := range []string{"cube.glb", "cube.obj", "CUBE.OBJ"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := Export(path, wf); err != nil {
				t.Fatalf("Export: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got.VertexCount() != 8 || got.EdgeCount() != 12 {
				t.Errorf("got %d vertices, %d edges", got.VertexCount(), got.EdgeCount())
			}
			if got.Size() != math3d.V3(2, 2, 2) {
				t.Errorf("Size() = %v", got.Size())
			}
		})
	}
}

func TestExportUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.stl")
	err := Export(path, Snapshot(scene.New(), "cube"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Export(.stl) error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := Load(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load(.stl) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestSnapshotIsWorldSpace(t *testing.T) {
	s := scene.New()
	s.Params.TransX = 3
	wf := Snapshot(s, "moved")
	if wf.Center() != math3d.V3(3, 0, 0) {
		t.Errorf("Center() = %v, want (3,0,0)", wf.Center())
	}
	if s.Geometry.Vertex(0) != math3d.V3(-1, -1, -1) {
		t.Error("Snapshot modified the scene")
	}
}

func TestReadGLBMalformed(t *testing.T) {
	tests := []struct {
		name   string
		mangle func(doc *gltf.Document, prim *gltf.Primitive)
	}{
		{"missing buffer view", func(doc *gltf.Document, prim *gltf.Primitive) {
			doc.Accessors[prim.Attributes[gltf.POSITION]].BufferView = gltf.Index(7)
		}},
		{"no buffer view", func(doc *gltf.Document, prim *gltf.Primitive) {
			doc.Accessors[*prim.Indices].BufferView = nil
		}},
		{"missing buffer", func(doc *gltf.Document, prim *gltf.Primitive) {
			view := *doc.Accessors[*prim.Indices].BufferView
			doc.BufferViews[view].Buffer = 3
		}},
		{"short buffer view", func(doc *gltf.Document, prim *gltf.Primitive) {
			view := *doc.Accessors[prim.Attributes[gltf.POSITION]].BufferView
			doc.BufferViews[view].ByteLength = 12
		}},
		{"offset past view", func(doc *gltf.Document, prim *gltf.Primitive) {
			doc.Accessors[*prim.Indices].ByteOffset = 1000
		}},
		{"missing accessor", func(doc *gltf.Document, prim *gltf.Primitive) {
			prim.Indices = gltf.Index(9)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteGLB(&buf, Snapshot(scene.New(), "cube")); err != nil {
				t.Fatalf("WriteGLB: %v", err)
			}
			doc := new(gltf.Document)
			if err := gltf.NewDecoder(&buf).Decode(doc); err != nil {
				t.Fatalf("decode: %v", err)
			}
			tt.mangle(doc, doc.Meshes[0].Primitives[0])

			var bad bytes.Buffer
			enc := gltf.NewEncoder(&bad)
			enc.AsBinary = true
			if err := enc.Encode(doc); err != nil {
				t.Fatalf("encode: %v", err)
			}
			if wf, err := ReadGLB(&bad, "bad"); err == nil {
				t.Errorf("ReadGLB = %d vertices, want error", wf.VertexCount())
			}
		})
	}
}
