package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ansipixels/cubeplay/pkg/models"
	"github.com/ansipixels/cubeplay/pkg/render"
	"github.com/ansipixels/cubeplay/pkg/scene"
	"github.com/ansipixels/cubeplay/pkg/transform"
	"github.com/spf13/cobra"
)

// paramFlags registers --rot-x ... --trans-z on cmd.
type paramFlags [transform.NumParams]float64

func addParamFlags(cmd *cobra.Command) *paramFlags {
	pf := new(paramFlags)
	for _, p := range transform.All() {
		r := p.Range()
		cmd.Flags().Float64Var(&pf[p], flagName(r.Name), r.Default,
			r.Name+" "+describeRange(r.Unit, r.Min, r.Max, r.Default))
	}
	return pf
}

// Params returns the flag values clamped to their ranges.
func (pf *paramFlags) Params() transform.Params {
	var v [transform.NumParams]float64
	for _, p := range transform.All() {
		v[p] = p.Range().Clamp(pf[p])
	}
	return transform.FromValues(v)
}

func newInfoCmd() *cobra.Command {
	var pf *paramFlags
	cmd := &cobra.Command{
		Use:   "info [model.glb|model.obj]",
		Short: "Display the transformed cube, or a previously exported file",
		Long: "Without an argument, print the cube's local and world-space vertices for the given " +
			"parameters. With a file argument, print the vertex count, edge count and bounding box of an exported wireframe.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runFileInfo(cmd.OutOrStdout(), args[0])
			}
			s := scene.New()
			s.Params = pf.Params()
			printScene(cmd.OutOrStdout(), s)
			return nil
		},
	}
	pf = addParamFlags(cmd)
	return cmd
}

func newExportCmd() *cobra.Command {
	var pf *paramFlags
	cmd := &cobra.Command{
		Use:   "export <file.glb|file.obj|file.png>",
		Short: "Write the transformed cube to a file",
		Long:  "Write the transformed cube as a glTF binary or OBJ wireframe, or render the default view to a PNG image.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := scene.New()
			s.Params = pf.Params()
			if strings.EqualFold(filepath.Ext(args[0]), ".png") {
				if err := renderPNG(args[0], s); err != nil {
					return fmt.Errorf("render: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", args[0])
				return nil
			}
			name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			if err := models.Export(args[0], models.Snapshot(s, name)); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", args[0])
			return nil
		},
	}
	pf = addParamFlags(cmd)
	return cmd
}

const pngWidth, pngHeight = 640, 480

// renderPNG draws the default view of s, as the viewer shows it, to a PNG file.
func renderPNG(path string, s *scene.Scene) error {
	fb := render.NewFramebuffer(pngWidth, pngHeight)
	cam := render.NewCamera(pngWidth, pngHeight)
	render.Box(fb, cam, render.DefaultStyle.Box)
	render.Wireframe(fb, cam, s.World(), s.Edges(), -1, render.DefaultStyle)
	return fb.SavePNG(path)
}

func printScene(w io.Writer, s *scene.Scene) {
	vals := s.Params.Values()
	for _, p := range transform.All() {
		r := p.Range()
		fmt.Fprintf(w, "%-7s %8.2f%s\n", r.Name+":", vals[p], r.Unit)
	}
	fmt.Fprintln(w)
	world := s.World()
	fmt.Fprintf(w, "%-3s %-26s %s\n", "#", "Local", "World")
	for i := range s.Geometry.Len() {
		l := s.Geometry.Vertex(i)
		fmt.Fprintf(w, "%-3d (%6.3f, %6.3f, %6.3f)  (%6.3f, %6.3f, %6.3f)\n",
			i, l.X, l.Y, l.Z, world[i].X, world[i].Y, world[i].Z)
	}
	fmt.Fprintln(w)
	printBounds(w, models.Snapshot(s, "cube"))
}

func printBounds(w io.Writer, wf *models.Wireframe) {
	size := wf.Size()
	center := wf.Center()
	fmt.Fprintf(w, "Bounds Min: (%.3f, %.3f, %.3f)\n", wf.BoundsMin.X, wf.BoundsMin.Y, wf.BoundsMin.Z)
	fmt.Fprintf(w, "Bounds Max: (%.3f, %.3f, %.3f)\n", wf.BoundsMax.X, wf.BoundsMax.Y, wf.BoundsMax.Z)
	fmt.Fprintf(w, "Dimensions: %.3f x %.3f x %.3f\n", size.X, size.Y, size.Z)
	fmt.Fprintf(w, "Center:     (%.3f, %.3f, %.3f)\n", center.X, center.Y, center.Z)
}

func runFileInfo(w io.Writer, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	wf, err := models.Load(path)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	ext := filepath.Ext(path)
	fmt.Fprintf(w, "File:       %s\n", filepath.Base(path))
	fmt.Fprintf(w, "Name:       %s\n", wf.Name)
	fmt.Fprintf(w, "Format:     %s\n", strings.ToUpper(strings.TrimPrefix(ext, ".")))
	fmt.Fprintf(w, "Size:       %.2f KB\n", float64(info.Size())/1024)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Vertices:   %d\n", wf.VertexCount())
	fmt.Fprintf(w, "Edges:      %d\n", wf.EdgeCount())
	fmt.Fprintln(w)
	printBounds(w, wf)
	return nil
}
