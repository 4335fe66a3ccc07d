package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ansipixels/cubeplay/pkg/models"
	"github.com/ansipixels/cubeplay/pkg/transform"
)

func TestFlagName(t *testing.T) {
	tests := map[string]string{
		"rotX":   "rot-x",
		"scaleZ": "scale-z",
		"transY": "trans-y",
	}
	for in, want := range tests {
		if got := flagName(in); got != want {
			t.Errorf("flagName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParamFlagsClamp(t *testing.T) {
	cmd := newInfoCmd()
	for _, p := range transform.All() {
		if cmd.Flags().Lookup(flagName(p.Range().Name)) == nil {
			t.Fatalf("missing flag for %v", p)
		}
	}
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--rot-x=400", "--scale-y=0.1", "--trans-z=-1.5"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("info: %v", err)
	}
	for _, want := range []string{"rotX:     180.00°", "scaleY:     0.20", "transZ:    -1.50", "Dimensions:"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("info output missing %q:\n%s", want, out.String())
		}
	}
}

func TestExportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moved.glb")
	cmd := newExportCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--trans-x=2", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("export: %v", err)
	}
	wf, err := models.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if wf.Name != "moved" || wf.VertexCount() != 8 || wf.EdgeCount() != 12 {
		t.Errorf("loaded %q with %d vertices, %d edges", wf.Name, wf.VertexCount(), wf.EdgeCount())
	}
	if c := wf.Center(); c.X != 2 || c.Y != 0 || c.Z != 0 {
		t.Errorf("center = %v, want (2,0,0)", c)
	}

	var info bytes.Buffer
	if err := runFileInfo(&info, path); err != nil {
		t.Fatalf("runFileInfo: %v", err)
	}
	for _, want := range []string{"Format:     GLB", "Vertices:   8", "Edges:      12", "Center:     (2.000, 0.000, 0.000)"} {
		if !strings.Contains(info.String(), want) {
			t.Errorf("file info missing %q:\n%s", want, info.String())
		}
	}
}

func TestExportCommandPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.png")
	cmd := newExportCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--rot-z=45", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("export png: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != pngWidth || b.Dy() != pngHeight {
		t.Errorf("image is %dx%d", b.Dx(), b.Dy())
	}
}

func TestExportCommandUnsupported(t *testing.T) {
	cmd := newExportCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "cube.stl")})
	if err := cmd.Execute(); err == nil {
		t.Error("export to .stl succeeded")
	}
}
