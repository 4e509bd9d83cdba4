package session

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Faultbox/pinhole/internal/camera"
	"github.com/Faultbox/pinhole/internal/config"
	"github.com/Faultbox/pinhole/internal/raster"
	"github.com/Faultbox/pinhole/pkg/scene"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Camera.Width = 64
	cfg.Camera.Height = 48
	return cfg
}

func TestNewBuiltin(t *testing.T) {
	s, err := New(testConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(s.Scene()) != len(scene.Cube(10)) {
		t.Errorf("expected cube scene, got %d triangles", len(s.Scene()))
	}

	fb, stats, err := s.Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if fb.Width() != 64 || fb.Height() != 48 {
		t.Errorf("frame %dx%d, want 64x48", fb.Width(), fb.Height())
	}
	if stats.PixelsWritten == 0 {
		t.Error("nothing drawn")
	}
}

func TestUnknownBuiltin(t *testing.T) {
	cfg := testConfig()
	cfg.Scene.Builtin = "teapot"
	if _, err := New(cfg); !errors.Is(err, ErrUnknownModel) {
		t.Errorf("expected ErrUnknownModel, got %v", err)
	}
}

func TestImportModel(t *testing.T) {
	s, err := New(testConfig())
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	good := filepath.Join(dir, "tri.obj")
	obj := "v -1 -1 0\nv 1 -1 0\nv 0 1 0\nf 1 2 3\n"
	if err := os.WriteFile(good, []byte(obj), 0644); err != nil {
		t.Fatal(err)
	}

	if err := s.ImportModel(good); err != nil {
		t.Fatalf("ImportModel: %v", err)
	}
	if n := len(s.Scene()); n != 1 {
		t.Fatalf("expected 1 triangle, got %d", n)
	}

	bad := filepath.Join(dir, "bad.obj")
	if err := os.WriteFile(bad, []byte("f 1 2 9\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := s.ImportModel(bad); err == nil {
		t.Error("expected import error")
	}
	if n := len(s.Scene()); n != 1 {
		t.Errorf("failed import replaced scene: %d triangles", n)
	}
}

func TestRotateAndReset(t *testing.T) {
	s, err := New(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	start := s.Orientation()

	s.Rotate(5, -5, 10)
	got := s.Orientation()
	want := raster.Orientation{Yaw: start.Yaw + 5, Pitch: start.Pitch - 5, Roll: start.Roll + 10}
	if got != want {
		t.Errorf("orientation = %+v, want %+v", got, want)
	}

	s.Reset()
	if s.Orientation() != start {
		t.Errorf("reset gave %+v, want %+v", s.Orientation(), start)
	}
}

func TestToggles(t *testing.T) {
	s, err := New(testConfig())
	if err != nil {
		t.Fatal(err)
	}

	s.UpdateOptions(func(o *raster.Options) { o.ShowWireframe = !o.ShowWireframe })
	if !s.Options().ShowWireframe {
		t.Error("wireframe not toggled")
	}

	if err := s.ToggleProjection(); err != nil {
		t.Fatal(err)
	}
	if s.Camera().Projection() != camera.Orthographic {
		t.Error("projection not toggled")
	}
	if err := s.ToggleProjection(); err != nil {
		t.Fatal(err)
	}
	if s.Camera().Projection() != camera.Perspective {
		t.Error("projection not toggled back")
	}
}

func TestRenderWhileMutating(t *testing.T) {
	s, err := New(testConfig())
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			s.Rotate(3, 1, 0)
			_ = s.Camera().SetFieldOfView(40 + float64(i))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			if _, _, err := s.Render(); err != nil {
				t.Errorf("Render: %v", err)
				return
			}
		}
	}()
	wg.Wait()
}
