package models

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ansipixels/cubeplay/pkg/geometry"
	"github.com/ansipixels/cubeplay/pkg/math3d"
)

// WriteOBJ writes the wireframe as Wavefront OBJ vertices and line elements.
func WriteOBJ(w io.Writer, wf *Wireframe) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# cubeplay wireframe: %d vertices, %d edges\n", wf.VertexCount(), wf.EdgeCount())
	if wf.Name != "" {
		fmt.Fprintf(bw, "o %s\n", wf.Name)
	}
	for _, v := range wf.Vertices {
		fmt.Fprintf(bw, "v %s %s %s\n", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
	}
	for _, e := range wf.Edges {
		// OBJ indices are 1-based.
		fmt.Fprintf(bw, "l %d %d\n", e[0]+1, e[1]+1)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write obj: %w", err)
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ReadOBJ parses "v" and "l" statements. Polylines with more than two points
// become consecutive edges; negative indices count back from the last vertex.
func ReadOBJ(r io.Reader, name string) (*Wireframe, error) {
	wf := NewWireframe(name)
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "o":
			if len(fields) > 1 {
				wf.Name = strings.Join(fields[1:], " ")
			}
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: invalid vertex (need x y z)", lineNum)
			}
			var c [3]float64
			for i := range c {
				f, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid coordinate %q: %w", lineNum, fields[i+1], err)
				}
				c[i] = f
			}
			wf.Vertices = append(wf.Vertices, math3d.V3(c[0], c[1], c[2]))
		case "l":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: line element needs at least two vertices", lineNum)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, f := range fields[1:] {
				i, err := parseOBJIndex(f, len(wf.Vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				idx = append(idx, i)
			}
			for k := 1; k < len(idx); k++ {
				wf.Edges = append(wf.Edges, geometry.Edge{idx[k-1], idx[k]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	wf.CalculateBounds()
	return wf, nil
}

// parseOBJIndex converts a 1-based (or negative, relative) OBJ index to a
// 0-based one. Texture-coordinate suffixes ("3/1") are ignored.
func parseOBJIndex(s string, count int) (int, error) {
	if slash := strings.IndexByte(s, '/'); slash >= 0 {
		s = s[:slash]
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", s, err)
	}
	switch {
	case i > 0:
		i--
	case i < 0:
		i += count
	default:
		return 0, fmt.Errorf("index 0 is not valid in OBJ")
	}
	if i < 0 || i >= count {
		return 0, fmt.Errorf("index %s out of range (have %d vertices)", s, count)
	}
	return i, nil
}
