// planar - 2D vector math from the command line.
//
// Commands:
//
//	eval <op> <x,y> [<x,y>] [scalar]  - run one vector operation
//	path <scene.yaml>                 - sample a keyframe path
//	spring <scene.yaml>               - simulate a spring along a path
//	uv <model>...                     - report texture coordinate bounds
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"fortio.org/log"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/planar/pkg/config"
	"github.com/taigrr/planar/pkg/math2d"
	"github.com/taigrr/planar/pkg/models"
	"golang.org/x/sync/errgroup"
)

var version = "dev"

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "planar",
		Short: "2D vector math tools",
		Long: `planar - 2D vector math tools

Evaluate vector operations, sample keyframe paths, animate springs and
inspect texture coordinates of OBJ and glTF models.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLogLevel(log.Debug)
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newEvalCmd(), newPathCmd(), newSpringCmd(), newUVCmd())
	return cmd
}

func newEvalCmd() *cobra.Command {
	var matrix string

	cmd := &cobra.Command{
		Use:   "eval <op> <x,y> [<x,y>] [scalar]",
		Short: "Evaluate one vector operation",
		Long: `Evaluate one vector operation and print the result.

Operations:
  add sub mul div min max       <x,y> <x,y>
  scaleandadd lerp              <x,y> <x,y> <scalar>
  scale                         <x,y> <scalar>
  negate normalize              <x,y>
  dot distance distancesquare   <x,y> <x,y>
  len lensquare                 <x,y>
  apply                         <x,y> --matrix a,b,c,d,tx,ty

Put -- before operands that start with a minus sign.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := math2d.Identity()
			if matrix != "" {
				var err error
				if m, err = parseMatrix(matrix); err != nil {
					return fmt.Errorf("--matrix: %w", err)
				}
			}
			res, err := evaluate(args[0], args[1:], &m)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().StringVar(&matrix, "matrix", "", "Affine matrix a,b,c,d,tx,ty for apply")
	return cmd
}

func newPathCmd() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "path <scene.yaml>",
		Short: "Sample a scene's keyframe path",
		Long:  "Sample the keyframe path of a scene at evenly spaced arc lengths and print each point after the scene transform.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1, got %d", steps)
			}
			scene, err := config.Load(args[0])
			if err != nil {
				return fmt.Errorf("load scene: %w", err)
			}
			path := scene.Path()
			m := scene.Matrix()
			log.Debugf("path: %d keyframes, length %g", path.Points(), path.Length())

			out := cmd.OutOrStdout()
			var p math2d.Vec2
			for i := 0; i <= steps; i++ {
				path.Sample(&p, float64(i)/float64(steps))
				math2d.ApplyTransform(&p, &p, &m)
				fmt.Fprintf(out, "%d\t%g\t%g\n", i, p.X, p.Y)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 10, "Number of intervals to sample")
	return cmd
}

func newSpringCmd() *cobra.Command {
	var (
		maxFrames int
		epsilon   float64
	)

	cmd := &cobra.Command{
		Use:   "spring <scene.yaml>",
		Short: "Simulate a spring from the first to the last keyframe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := config.Load(args[0])
			if err != nil {
				return fmt.Errorf("load scene: %w", err)
			}
			frames, settled := simulateSpring(scene, maxFrames, epsilon)
			out := cmd.OutOrStdout()
			for i, p := range frames {
				fmt.Fprintf(out, "%d\t%g\t%g\n", i, p.X, p.Y)
			}
			if !settled {
				log.Warnf("spring did not settle within %d frames", maxFrames)
			} else {
				log.Infof("spring settled after %d frames", len(frames)-1)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxFrames, "max-frames", 600, "Stop after this many frames")
	cmd.Flags().Float64Var(&epsilon, "epsilon", 1e-3, "Distance and speed below which the spring is settled")
	return cmd
}

// simulateSpring steps a spring from the scene's first keyframe toward its
// last, both transformed, until it settles or maxFrames steps have run.
// The first returned position is the start.
func simulateSpring(scene *config.Scene, maxFrames int, epsilon float64) ([]math2d.Vec2, bool) {
	keys := scene.Keyframes()
	m := scene.Matrix()
	start, target := keys[0], keys[len(keys)-1]
	math2d.ApplyTransform(&start, &start, &m)
	math2d.ApplyTransform(&target, &target, &m)

	spring := scene.NewSpring()
	spring.Reset(start)

	frames := []math2d.Vec2{start}
	var p math2d.Vec2
	for range maxFrames {
		if spring.Settled(&target, epsilon) {
			return frames, true
		}
		frames = append(frames, *spring.Step(&p, &target))
	}
	return frames, spring.Settled(&target, epsilon)
}

func newUVCmd() *cobra.Command {
	var (
		flipV     bool
		scenePath string
	)

	cmd := &cobra.Command{
		Use:   "uv <model.obj|model.glb|model.gltf>...",
		Short: "Report texture coordinate bounds",
		Long:  "Load texture coordinates from each model, optionally apply a scene transform, and print count, bounds and center.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := math2d.Identity()
			if scenePath != "" {
				scene, err := config.Load(scenePath)
				if err != nil {
					return fmt.Errorf("load scene: %w", err)
				}
				m = scene.Matrix()
			}
			sets, err := loadUVSets(cmd.Context(), args, flipV, &m)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, set := range sets {
				size, center := set.Size(), set.Center()
				fmt.Fprintf(out, "File:       %s\n", set.Name)
				fmt.Fprintf(out, "UVs:        %d\n", set.Count())
				fmt.Fprintf(out, "Bounds Min: (%.4f, %.4f)\n", set.BoundsMin.X, set.BoundsMin.Y)
				fmt.Fprintf(out, "Bounds Max: (%.4f, %.4f)\n", set.BoundsMax.X, set.BoundsMax.Y)
				fmt.Fprintf(out, "Dimensions: %.4f x %.4f\n", size.X, size.Y)
				fmt.Fprintf(out, "Center:     (%.4f, %.4f)\n\n", center.X, center.Y)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&flipV, "flip-v", false, "Map v to 1-v before transforming")
	cmd.Flags().StringVar(&scenePath, "transform", "", "Scene file whose transform is applied to the UVs")
	return cmd
}

// loadUVSets loads every path concurrently. Each goroutine owns its set, so
// the in-place transforms never share a buffer. Results keep argument order.
func loadUVSets(ctx context.Context, paths []string, flipV bool, m *math2d.Matrix) ([]*models.UVSet, error) {
	sets := make([]*models.UVSet, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			set, err := models.LoadUVs(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if flipV {
				set.FlipV()
			}
			if !m.IsIdentity() {
				set.Transform(m)
			}
			log.Debugf("uv %s: %d coords", path, set.Count())
			sets[i] = set
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sets, nil
}
