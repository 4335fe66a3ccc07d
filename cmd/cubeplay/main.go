// cubeplay - Terminal Rigid-Body Transformation Visualiser
// Drag the vertices of a unit cube and watch rotation, scale and translation
// act on it, in your terminal.
//
// Controls:
//
//	Mouse drag  - Move the vertex under the cursor (its local Z is kept)
//	Click bar   - Set a slider; drag along the bar to scrub it
//	J/K, arrows - Select slider
//	H/L, arrows - Nudge selected slider (shift for 10 steps)
//	W/S/A/D     - Orbit the camera
//	Scroll, +/- - Zoom in/out
//	R           - Reset the cube geometry
//	0           - Reset all sliders
//	C           - Reset the camera
//	?           - Toggle help line
//	Q/Esc       - Quit
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode"

	"fortio.org/log"
	"github.com/ansipixels/cubeplay/pkg/pick"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var version = "dev"

// Config holds the viewer flags.
type Config struct {
	FPS       float64
	Tolerance float64
	ScaleZ    bool
	Export    string
}

func main() {
	var (
		cfg     Config
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "cubeplay",
		Short: "Terminal rigid-body transformation visualiser",
		Long: `cubeplay - Terminal rigid-body transformation visualiser

Drag the vertices of a cube and move the sliders to rotate, scale
and translate it. The cube is drawn inside a fixed [-4,4] volume.

Controls:
  Mouse drag  - Move the vertex under the cursor
  Click bar   - Set a slider
  J/K         - Select slider
  H/L         - Nudge slider
  W/S/A/D     - Orbit the camera
  Scroll, +/- - Zoom
  R / 0 / C   - Reset geometry / sliders / camera
  ?           - Toggle help line
  Q, Esc      - Quit`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLogLevel(log.Verbose)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runViewer(cmd.Context(), cfg)
		},
	}

	cmd.Flags().Float64Var(&cfg.FPS, "fps", 60, "Target FPS")
	cmd.Flags().Float64Var(&cfg.Tolerance, "tolerance", pick.DefaultTolerance, "Vertex pick tolerance in pixels")
	cmd.Flags().BoolVar(&cfg.ScaleZ, "scale-z", false, "Show a scaleZ slider (otherwise scaleZ stays 1.0)")
	cmd.Flags().StringVar(&cfg.Export, "export", "", "Write the final cube to this .glb or .obj file on exit")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	cmd.AddCommand(newInfoCmd(), newExportCmd())

	if err := fang.Execute(context.Background(), cmd, fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

// flagName turns a parameter name like "rotX" into "rot-x".
func flagName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func describeRange(unit string, lo, hi, def float64) string {
	return fmt.Sprintf("[%g, %g]%s, default %g", lo, hi, unit, def)
}
