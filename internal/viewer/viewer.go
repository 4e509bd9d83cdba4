// Package viewer implements the interactive render loop.
package viewer

import (
	"errors"
	"fmt"
	"time"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/pinhole/internal/config"
	"github.com/Faultbox/pinhole/internal/input"
	"github.com/Faultbox/pinhole/internal/logger"
	"github.com/Faultbox/pinhole/internal/output"
	"github.com/Faultbox/pinhole/internal/raster"
	"github.com/Faultbox/pinhole/internal/session"
	"github.com/Faultbox/pinhole/internal/window"
)

// Viewer redraws the scene whenever the orientation, options, camera or
// model change.
type Viewer struct {
	cfg     *config.Config
	session *session.Session
	window  *window.Window
	input   *input.Input
	capture *output.Capture

	running bool
	dirty   bool
	imports chan string
}

// New creates the window and session.
func New(cfg *config.Config) (*Viewer, error) {
	s, err := session.New(cfg)
	if err != nil {
		return nil, err
	}

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	w, h := s.Camera().ImageSize()
	win, err := window.New(window.Config{
		Title:  "pinhole",
		Width:  w,
		Height: h,
		Scale:  cfg.Viewer.Scale,
		VSync:  cfg.Viewer.FPSLimit == 0,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	return &Viewer{
		cfg:     cfg,
		session: s,
		window:  win,
		input:   input.New(input.DefaultBindings()),
		capture: output.NewCapture(cfg.Output.Dir, "pinhole", format),
		dirty:   true,
		imports: make(chan string, 1),
	}, nil
}

// Run processes input and redraws until the window is closed.
func (v *Viewer) Run() error {
	v.running = true

	var frameTime time.Duration
	if v.cfg.Viewer.FPSLimit > 0 {
		frameTime = time.Second / time.Duration(v.cfg.Viewer.FPSLimit)
	}

	logger.Info("starting viewer loop")

	for v.running {
		start := time.Now()

		v.input.Update()
		for _, a := range v.input.Actions() {
			if err := v.handle(a); err != nil {
				logger.Warn("action failed", zap.Stringer("action", a), zap.Error(err))
			}
		}

		select {
		case path := <-v.imports:
			if err := v.session.ImportModel(path); err != nil {
				logger.Error("import failed", zap.String("path", path), zap.Error(err))
			} else {
				v.dirty = true
			}
		default:
		}

		if v.dirty {
			if err := v.redraw(); err != nil {
				return fmt.Errorf("render error: %w", err)
			}
			v.dirty = false
		}

		if elapsed := time.Since(start); elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}

	return nil
}

func (v *Viewer) handle(a input.Action) error {
	step := v.cfg.Viewer.RotateStep

	switch a {
	case input.ActionQuit:
		v.running = false
		return nil
	case input.ActionYawLeft:
		v.session.Rotate(-step, 0, 0)
	case input.ActionYawRight:
		v.session.Rotate(step, 0, 0)
	case input.ActionPitchUp:
		v.session.Rotate(0, -step, 0)
	case input.ActionPitchDown:
		v.session.Rotate(0, step, 0)
	case input.ActionRollLeft:
		v.session.Rotate(0, 0, -step)
	case input.ActionRollRight:
		v.session.Rotate(0, 0, step)
	case input.ActionReset:
		v.session.Reset()
	case input.ActionToggleFaces:
		v.session.UpdateOptions(func(o *raster.Options) { o.ShowFaces = !o.ShowFaces })
	case input.ActionToggleWireframe:
		v.session.UpdateOptions(func(o *raster.Options) { o.ShowWireframe = !o.ShowWireframe })
	case input.ActionToggleBoundingBoxes:
		v.session.UpdateOptions(func(o *raster.Options) { o.ShowBoundingBoxes = !o.ShowBoundingBoxes })
	case input.ActionToggleProjection:
		if err := v.session.ToggleProjection(); err != nil {
			return err
		}
	case input.ActionScreenshot:
		return v.screenshot()
	case input.ActionOpenModel:
		v.openModel()
		return nil
	default:
		return nil
	}
	v.dirty = true
	return nil
}

func (v *Viewer) redraw() error {
	fb, stats, err := v.session.Render()
	if err != nil {
		return err
	}
	if err := v.window.Present(fb.Image()); err != nil {
		return err
	}

	o := v.session.Orientation()
	v.window.SetTitle(fmt.Sprintf("pinhole  yaw %.0f  pitch %.0f  roll %.0f  %d/%d triangles",
		o.Yaw, o.Pitch, o.Roll, stats.Drawn, stats.Triangles))
	return nil
}

func (v *Viewer) screenshot() error {
	fb, _, err := v.session.Render()
	if err != nil {
		return err
	}
	name, err := v.capture.Save(fb.Image())
	if err != nil {
		return err
	}
	logger.Info("screenshot saved", zap.String("path", name))
	return nil
}

// openModel shows a file dialog off the main thread and queues the chosen
// path for import by the loop.
func (v *Viewer) openModel() {
	go func() {
		path, err := dialog.File().
			Filter("Wavefront OBJ", "obj").
			Filter("All Files", "*").
			Title("Open Model").
			Load()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				logger.Error("file dialog failed", zap.Error(err))
			}
			return
		}
		select {
		case v.imports <- path:
		default:
			logger.Warn("import already pending", zap.String("path", path))
		}
	}()
}

// Close releases the window.
func (v *Viewer) Close() {
	logger.Info("closing viewer")
	if v.window != nil {
		v.window.Close()
	}
}
