// Command camrig solves camera-relative placements from the command line and
// runs scenes headless.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/camrig/ecs"
	"github.com/milk9111/camrig/ecs/component"
	"github.com/milk9111/camrig/logging"
	"github.com/milk9111/camrig/placement"
	"github.com/milk9111/camrig/rig"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	logLevel string
	jsonLogs bool
}

func (o *rootOptions) logger(cmd *cobra.Command) (zerolog.Logger, error) {
	return logging.New(logging.Config{Level: o.logLevel, Console: !o.jsonLogs, Out: cmd.ErrOrStderr()})
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "camrig",
		Short:        "Camera-relative placement for 3D scenes",
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	root.PersistentFlags().BoolVar(&opts.jsonLogs, "json-logs", false, "log JSON instead of console text")

	root.AddCommand(newFitCmd(opts), newSimulateCmd(opts))
	return root
}

func newFitCmd(root *rootOptions) *cobra.Command {
	var (
		size      string
		fov       float64
		aspect    float64
		distance  float64
		pct       float64
		frontFace bool
		tolerance float64
		maxIter   int
	)
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Solve the scale that fits a box into the viewport",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := root.logger(cmd)
			if err != nil {
				return err
			}
			dims, err := parseVec3(size)
			if err != nil {
				return fmt.Errorf("--size: %w", err)
			}

			cfg, ws := placement.NormalizeFit(placement.FitConfig{Percentage: pct, UseFrontFace: frontFace})
			solver, sws := placement.NormalizeSolver(placement.SolverOptions{Tolerance: tolerance, MaxIterations: maxIter})
			ws.Merge(sws)
			for _, w := range ws {
				log.Warn().Str("field", w.Field).Msg(w.Message)
			}

			box := placement.BoxFromPoints(dims.Mul(-0.5), dims.Mul(0.5))
			res, err := placement.SolveFit(box, fov, aspect, distance, cfg, solver)
			if err != nil {
				return err
			}
			if !res.Converged {
				log.Warn().Int("iterations", res.Iterations).Msg("fit did not converge; result may be off")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "scale=%.6f iterations=%d converged=%t\n", res.Scale, res.Iterations, res.Converged)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&size, "size", "1,1,1", "box size as x,y,z")
	f.Float64Var(&fov, "fov", 60, "vertical field of view in degrees")
	f.Float64Var(&aspect, "aspect", 16.0/9.0, "viewport width / height")
	f.Float64Var(&distance, "distance", 5, "camera distance to the box center")
	f.Float64Var(&pct, "percentage", placement.DefaultPercentage, "share of the viewport to fill")
	f.BoolVar(&frontFace, "front-face", false, "measure distance to the box's near face")
	f.Float64Var(&tolerance, "tolerance", placement.DefaultTolerance, "solver convergence tolerance")
	f.IntVar(&maxIter, "max-iterations", placement.DefaultMaxIterations, "solver iteration cap")
	return cmd
}

func newSimulateCmd(root *rootOptions) *cobra.Command {
	var (
		scene  string
		frames int
		dt     time.Duration
		script string
		every  int
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a scene headless and print transforms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := root.logger(cmd)
			if err != nil {
				return err
			}
			if frames < 0 {
				return fmt.Errorf("--frames must not be negative")
			}
			if every <= 0 {
				every = 1
			}

			r, err := rig.New(scene, log)
			if err != nil {
				return err
			}
			if script != "" {
				err := ecs.Add(r.World, r.Scene.Camera, component.CameraScriptComponent.Kind(), &component.CameraScript{Path: script})
				if err != nil {
					return fmt.Errorf("attach script: %w", err)
				}
			}

			r.SignalReady()
			out := cmd.OutOrStdout()
			for frame := 1; frame <= frames; frame++ {
				r.Tick(dt)
				if frame%every == 0 || frame == frames {
					printFrame(out, frame, r.Snapshot())
				}
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&scene, "scene", "", "scene yaml (default: embedded demo)")
	f.IntVar(&frames, "frames", 60, "number of ticks to run")
	f.DurationVar(&dt, "dt", 16*time.Millisecond, "tick length")
	f.StringVar(&script, "script", "", "tengo script driving the camera")
	f.IntVar(&every, "every", 1, "print every Nth frame")
	return cmd
}

func printFrame(out io.Writer, frame int, states []rig.EntityState) {
	for _, s := range states {
		fmt.Fprintf(out, "frame=%d entity=%s pos=%s scale=%s\n", frame, s.Name, formatVec(s.Position), formatVec(s.Scale))
	}
}

func formatVec(v mgl64.Vec3) string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v[0], v[1], v[2])
}

func parseVec3(s string) (mgl64.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	var v mgl64.Vec3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return mgl64.Vec3{}, err
		}
		v[i] = f
	}
	return v, nil
}
