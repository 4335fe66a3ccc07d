package models

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for file extensions other than .glb and .obj.
var ErrUnsupportedFormat = errors.New("unsupported format (use .glb or .obj)")

// Export writes the wireframe to path, choosing the format by extension.
func Export(path string, wf *Wireframe) (err error) {
	write, err := writerFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return write(f, wf)
}

// Load reads a wireframe previously written by Export.
func Load(path string) (*Wireframe, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".glb" && ext != ".obj" {
		return nil, fmt.Errorf("%s: %w", ext, ErrUnsupportedFormat)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if ext == ".glb" {
		return ReadGLB(f, name)
	}
	return ReadOBJ(f, name)
}

func writerFor(path string) (func(f *os.File, wf *Wireframe) error, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".glb":
		return func(f *os.File, wf *Wireframe) error { return WriteGLB(f, wf) }, nil
	case ".obj":
		return func(f *os.File, wf *Wireframe) error { return WriteOBJ(f, wf) }, nil
	default:
		return nil, fmt.Errorf("%s: %w", ext, ErrUnsupportedFormat)
	}
}
