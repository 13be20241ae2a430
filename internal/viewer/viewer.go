// Package viewer implements the panorama viewer window and its main loop.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/panoview/internal/config"
	"github.com/Faultbox/panoview/internal/engine/camera"
	"github.com/Faultbox/panoview/internal/engine/input"
	"github.com/Faultbox/panoview/internal/engine/renderer"
	"github.com/Faultbox/panoview/internal/engine/screenshot"
	"github.com/Faultbox/panoview/internal/engine/texture"
	"github.com/Faultbox/panoview/internal/engine/window"
	"github.com/Faultbox/panoview/internal/imageio"
	"github.com/Faultbox/panoview/internal/logger"
	"github.com/Faultbox/panoview/internal/navigation"
)

// Viewer is the running panorama viewer.
type Viewer struct {
	config  *config.Config
	running bool
	dirty   bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	bindings input.Bindings

	camera    *camera.PanoramaCamera
	navigator *navigation.Navigator
	mouse     *navigation.MouseLook

	screenshots         *screenshot.Capture
	screenshotRequested bool
}

// New decodes the image at imagePath and opens the viewer window.
// A decode failure is returned before any window is created.
func New(cfg *config.Config, imagePath string) (*Viewer, error) {
	start := time.Now()
	buf, src, err := imageio.Load(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}
	logger.Info("image decoded",
		zap.String("path", imagePath),
		zap.String("format", src.Format),
		zap.Int("width", buf.Width),
		zap.Int("height", buf.Height),
		zap.Bool("normalized", src.Normalized),
		zap.Duration("took", time.Since(start)),
	)

	v := &Viewer{
		config:   cfg,
		dirty:    true,
		input:    input.New(),
		bindings: input.DefaultBindings(),
	}

	v.window, err = window.New(window.Config{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer AFTER window, since the OpenGL context must exist
	width, height := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:          width,
		Height:         height,
		SphereRadius:   cfg.Viewer.SphereRadius,
		SphereSegments: cfg.Viewer.SphereSegments,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if limit := texture.MaxSize(); buf.Width > limit || buf.Height > limit {
		logger.Warn("image exceeds max texture size, downscaling",
			zap.Int("width", buf.Width),
			zap.Int("height", buf.Height),
			zap.Int("limit", limit),
		)
		buf = imageio.Fit(buf, limit)
	}

	tex, err := texture.Upload(buf)
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to upload texture: %w", err)
	}
	v.renderer.SetTexture(tex)

	vc := cfg.Viewer
	v.camera = camera.NewPanoramaCamera(camera.Settings{
		FOV:        vc.FOV,
		MinFOV:     vc.MinFOV,
		MaxFOV:     vc.MaxFOV,
		PitchLimit: vc.PitchLimit,
		Near:       vc.Near,
		Far:        vc.Far,
	})
	v.navigator = navigation.New(v.camera, navigation.Settings{
		MoveSpeed:         vc.MoveSpeed,
		ZoomStep:          vc.ZoomStep,
		RecenterOnZoomOut: vc.RecenterOnZoomOut,
	})
	v.mouse = navigation.NewMouseLook(v.camera, vc.MouseSensitivity)
	v.screenshots = screenshot.New(cfg.Screenshot.Dir, cfg.Screenshot.Prefix)

	v.updateProjection()

	logger.Info("viewer initialized")
	return v, nil
}

// Run runs the event loop until Escape is pressed or the window is closed.
// Input, movement ticks and painting all happen on the calling thread.
func (v *Viewer) Run() error {
	v.running = true

	ticker := time.NewTicker(v.config.Viewer.TickInterval)
	defer ticker.Stop()

	frames := 0
	fpsTimer := time.Now()

	logger.Debug("starting main loop", zap.Duration("tick", v.config.Viewer.TickInterval))

	for v.running {
		v.input.Update()
		for _, ev := range v.input.Events() {
			v.handleEvent(ev)
		}
		if !v.running {
			break
		}

		select {
		case <-ticker.C:
			v.tick()
		default:
		}

		if !v.dirty {
			sdl.Delay(1)
			continue
		}
		v.dirty = false

		v.renderer.Draw(v.camera.ViewMatrix())
		if v.screenshotRequested {
			v.screenshotRequested = false
			v.captureScreenshot()
		}
		v.window.SwapBuffers()

		frames++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frames))
			frames = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases GL resources and the window.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

func (v *Viewer) handleEvent(ev input.Event) {
	switch ev.Type {
	case input.EventQuit:
		v.running = false

	case input.EventWindowResize:
		v.renderer.Resize(v.window.DrawableSize())
		v.updateProjection()
		v.dirty = true

	case input.EventFocusLost:
		// The button-up for a drag released outside the window never arrives
		v.mouse.Release()

	case input.EventKeyDown:
		switch ev.Key {
		case sdl.K_ESCAPE:
			v.running = false
		case sdl.K_F12:
			v.screenshotRequested = true
			v.dirty = true
		}

	case input.EventMouseDown:
		v.mouse.Press(ev.MouseX, ev.MouseY)

	case input.EventMouseUp:
		v.mouse.Release()

	case input.EventMouseMove:
		if v.mouse.Move(ev.MouseX, ev.MouseY) {
			v.dirty = true
		}
	}
}

// tick runs one fixed-rate movement step.
func (v *Viewer) tick() {
	res := v.navigator.Tick(input.Bound{Keys: v.input.Held(), Bindings: v.bindings})
	if res.ProjectionDirty {
		v.updateProjection()
	}
	if res.Redraw {
		v.dirty = true
	}
}

func (v *Viewer) updateProjection() {
	v.renderer.SetProjection(v.camera.ProjectionMatrix(v.renderer.Size()))
}

func (v *Viewer) captureScreenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.screenshots.SaveFramebuffer(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}
