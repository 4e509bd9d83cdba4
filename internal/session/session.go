// Package session holds the mutable state an interactive or batch render
// works from: camera, current scene, object orientation and draw options.
//
// A render takes a consistent copy of everything at entry, so the camera
// can be reconfigured or a new model swapped in while a frame is drawn.
package session

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/pinhole/internal/camera"
	"github.com/Faultbox/pinhole/internal/config"
	"github.com/Faultbox/pinhole/internal/framebuffer"
	"github.com/Faultbox/pinhole/internal/logger"
	"github.com/Faultbox/pinhole/internal/raster"
	"github.com/Faultbox/pinhole/pkg/formats"
	"github.com/Faultbox/pinhole/pkg/scene"
)

// ErrUnknownModel is returned for a built-in model name that does not exist.
var ErrUnknownModel = errors.New("unknown built-in model")

// Session is safe for concurrent use.
type Session struct {
	cam   *camera.Pinhole
	store *scene.Store

	mu          sync.Mutex
	orientation raster.Orientation
	home        raster.Orientation
	opts        raster.Options
	sceneCfg    config.SceneConfig
}

// New builds a session from a validated config.
func New(cfg *config.Config) (*Session, error) {
	cam, err := cfg.Camera.Build()
	if err != nil {
		return nil, fmt.Errorf("building camera: %w", err)
	}
	opts, err := cfg.Render.Options()
	if err != nil {
		return nil, fmt.Errorf("render options: %w", err)
	}
	s, err := LoadScene(cfg.Scene)
	if err != nil {
		return nil, err
	}

	o := cfg.Render.Orientation()
	return &Session{
		cam:         cam,
		store:       scene.NewStore(s),
		orientation: o,
		home:        o,
		opts:        opts,
		sceneCfg:    cfg.Scene,
	}, nil
}

// LoadScene imports the configured model file, or the built-in model when
// no file is set.
func LoadScene(sc config.SceneConfig) (scene.Scene, error) {
	if sc.Model == "" {
		s, ok := scene.Builtin(sc.Builtin)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownModel, sc.Builtin)
		}
		return s, nil
	}

	c, err := config.ParseColor(sc.Color)
	if err != nil {
		return nil, err
	}
	s, err := formats.LoadScene(sc.Model, c)
	if err != nil {
		return nil, fmt.Errorf("importing %s: %w", sc.Model, err)
	}
	logger.Info("model imported", zap.String("path", sc.Model), zap.Int("triangles", len(s)))
	return s, nil
}

// Camera returns the session camera.
func (s *Session) Camera() *camera.Pinhole { return s.cam }

// Scene returns the current scene.
func (s *Session) Scene() scene.Scene { return s.store.Load() }

// ImportModel loads an OBJ file and makes it the current scene. On error
// the previous scene stays current.
func (s *Session) ImportModel(path string) error {
	s.mu.Lock()
	sc := s.sceneCfg
	s.mu.Unlock()

	sc.Model = path
	loaded, err := LoadScene(sc)
	if err != nil {
		return err
	}
	s.store.Swap(loaded)
	return nil
}

// Orientation returns the current object orientation.
func (s *Session) Orientation() raster.Orientation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orientation
}

// Rotate adds the given angles, in degrees, to the orientation.
func (s *Session) Rotate(yaw, pitch, roll float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orientation.Yaw += yaw
	s.orientation.Pitch += pitch
	s.orientation.Roll += roll
}

// Reset restores the orientation the session started with.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orientation = s.home
}

// Options returns the current draw options.
func (s *Session) Options() raster.Options {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts
}

// UpdateOptions applies fn to the draw options.
func (s *Session) UpdateOptions(fn func(*raster.Options)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.opts)
}

// ToggleProjection switches between perspective and orthographic.
func (s *Session) ToggleProjection() error {
	next := camera.Orthographic
	if s.cam.Projection() == camera.Orthographic {
		next = camera.Perspective
	}
	return s.cam.SetProjection(next)
}

// Render draws the current scene with the current camera and settings.
func (s *Session) Render() (*framebuffer.Framebuffer, raster.Stats, error) {
	snap := s.cam.Snapshot()
	sc := s.store.Load()

	s.mu.Lock()
	o, opts := s.orientation, s.opts
	s.mu.Unlock()

	return raster.Render(sc, snap, o, opts)
}
