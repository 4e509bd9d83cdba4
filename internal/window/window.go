// Package window presents software-rendered frames in an SDL2 window.
package window

import (
	"fmt"
	"image"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/pinhole/internal/logger"
)

func init() {
	// SDL video calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title  string
	Width  int // frame width in pixels
	Height int // frame height in pixels
	Scale  int // window pixels per frame pixel
	VSync  bool
}

// Window owns an SDL2 window, renderer and a streaming texture sized to
// the frame.
type Window struct {
	config   Config
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

// New creates a window and a texture to upload frames into.
func New(cfg Config) (*Window, error) {
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	w := &Window{config: cfg}

	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	var err error
	w.window, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width*cfg.Scale),
		int32(cfg.Height*cfg.Scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	flags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	w.renderer, err = sdl.CreateRenderer(w.window, -1, flags)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	if err := w.createTexture(cfg.Width, cfg.Height); err != nil {
		w.Close()
		return nil, err
	}

	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int("scale", cfg.Scale),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

// createTexture allocates an RGBA texture matching image.RGBA byte order.
func (w *Window) createTexture(width, height int) error {
	if w.texture != nil {
		w.texture.Destroy()
	}
	tex, err := w.renderer.CreateTexture(
		uint32(sdl.PIXELFORMAT_ABGR8888),
		sdl.TEXTUREACCESS_STREAMING,
		int32(width),
		int32(height),
	)
	if err != nil {
		return fmt.Errorf("SDL_CreateTexture failed: %w", err)
	}
	w.texture = tex
	w.config.Width, w.config.Height = width, height
	return nil
}

// Present uploads img and shows it scaled to the window.
func (w *Window) Present(img *image.RGBA) error {
	b := img.Bounds()
	if b.Dx() != w.config.Width || b.Dy() != w.config.Height {
		if err := w.createTexture(b.Dx(), b.Dy()); err != nil {
			return err
		}
	}
	if err := w.texture.Update(nil, unsafe.Pointer(&img.Pix[0]), img.Stride); err != nil {
		return fmt.Errorf("uploading frame: %w", err)
	}
	if err := w.renderer.Clear(); err != nil {
		return fmt.Errorf("clearing renderer: %w", err)
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return fmt.Errorf("copying frame: %w", err)
	}
	w.renderer.Present()
	return nil
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	logger.Info("closing window")

	if w.texture != nil {
		w.texture.Destroy()
	}
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.window != nil {
		w.window.Destroy()
	}

	sdl.Quit()
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.window.SetTitle(title)
}
