// pinhole is a CLI for rendering models with the software rasterizer.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/Faultbox/pinhole/internal/config"
	"github.com/Faultbox/pinhole/internal/logger"
	"github.com/Faultbox/pinhole/internal/output"
	"github.com/Faultbox/pinhole/internal/session"
	"github.com/Faultbox/pinhole/pkg/formats"
	"github.com/Faultbox/pinhole/pkg/scene"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "render":
		err = cmdRender(args)
	case "info":
		err = cmdInfo(args)
	case "camera":
		err = cmdCamera(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`pinhole - software rasterizer

Usage:
  pinhole <command> [options]

Commands:
  render [flags]          Render the configured scene to an image
  info <model.obj>        Show model statistics
  camera [flags] [-save]  Show derived camera parameters; -save stores the
                          resolved config as the default for later runs

Common flags:
  -config path            Config file (default ./pinhole.yaml)
  -model path             Wavefront .obj model
  -builtin name           Built-in model: cube, pyramid
  -width/-height n        Image size in pixels
  -yaw/-pitch/-roll deg   Object orientation
  -wireframe -bbox        Overlays
  -ortho                  Orthographic projection
  -out path               Output image (.png or .bmp)

Examples:
  pinhole render -builtin pyramid -yaw 45 -out pyramid.png
  pinhole render -model teapot.obj -wireframe -format bmp
  pinhole camera -fov 60 -gate fill
  pinhole camera -fov 35 -width 1280 -height 720 -save`)
}

// setup parses flags, loads config and starts logging.
func setup(args []string) (*config.Config, error) {
	if err := config.ParseArgs(args); err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Configure(cfg.Logging.Options()); err != nil {
		return nil, err
	}
	return cfg, nil
}

func cmdRender(args []string) error {
	cfg, err := setup(args)
	if err != nil {
		return err
	}

	s, err := session.New(cfg)
	if err != nil {
		return err
	}

	fb, stats, err := s.Render()
	if err != nil {
		return err
	}

	path := cfg.Output.Path
	if path == "" {
		format, err := output.ParseFormat(cfg.Output.Format)
		if err != nil {
			return err
		}
		path, err = output.NewCapture(cfg.Output.Dir, "render", format).Save(fb.Image())
		if err != nil {
			return err
		}
	} else if err := output.WriteFile(path, fb.Image()); err != nil {
		return err
	}

	logger.Info("render complete",
		zap.String("path", path),
		zap.Int("triangles", stats.Triangles),
		zap.Int("drawn", stats.Drawn),
		zap.Int("culled", stats.Culled),
		zap.Int("degenerate", stats.Degenerate),
		zap.Int("behind_eye", stats.BehindEye),
		zap.Int("pixels", stats.PixelsWritten),
	)
	return nil
}

func cmdInfo(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: pinhole info <model.obj>")
	}

	obj, err := formats.ParseOBJFile(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Model:     %s\n", args[0])
	fmt.Printf("Vertices:  %d\n", len(obj.Vertices))
	fmt.Printf("Triangles: %d\n", len(obj.Faces))
	fmt.Printf("Skipped:   %d lines\n", obj.Skipped)

	if lo, hi, ok := obj.Triangles(scene.DefaultColor).Bounds(); ok {
		fmt.Printf("Bounds:    %v .. %v\n", lo, hi)
	}
	return nil
}

func cmdCamera(args []string) error {
	cfg, err := setup(args)
	if err != nil {
		return err
	}

	cam, err := cfg.Camera.Build()
	if err != nil {
		return err
	}

	w, h := cam.ImageSize()
	aw, ah := cam.FilmAperture()
	near, far := cam.ClippingPlanes()
	c := cam.Canvas()
	proj, err := cam.Snapshot().ProjectionMatrix()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Focal length\t%.4f mm\n", cam.FocalLength())
	fmt.Fprintf(tw, "Field of view\t%.4f deg\n", cam.FieldOfView())
	fmt.Fprintf(tw, "Film aperture\t%.4f x %.4f in\n", aw, ah)
	fmt.Fprintf(tw, "Clipping\t%g .. %g\n", near, far)
	fmt.Fprintf(tw, "Image\t%d x %d px\n", w, h)
	fmt.Fprintf(tw, "Gate\t%s\n", cam.ResolutionGate())
	fmt.Fprintf(tw, "Projection\t%s\n", cam.Projection())
	fmt.Fprintf(tw, "Canvas\tleft %.4f right %.4f bottom %.4f top %.4f\n", c.Left, c.Right, c.Bottom, c.Top)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nCamera to world:\n%v\n", cam.CameraToWorld())
	fmt.Printf("\nProjection:\n%v\n", proj)

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		logger.Info("config saved", zap.String("path", config.SavePath()))
	}
	return nil
}
