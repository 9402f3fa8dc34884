// Package app implements the desktop frontend: the SDL/GL main loop that
// feeds pointer input to the scene and draws the deformed surface.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/deformo/internal/config"
	"github.com/Faultbox/deformo/internal/deform"
	"github.com/Faultbox/deformo/internal/engine/audio"
	"github.com/Faultbox/deformo/internal/engine/camera"
	"github.com/Faultbox/deformo/internal/engine/debug"
	"github.com/Faultbox/deformo/internal/engine/input"
	"github.com/Faultbox/deformo/internal/engine/lighting"
	"github.com/Faultbox/deformo/internal/engine/renderer"
	"github.com/Faultbox/deformo/internal/engine/trigger"
	"github.com/Faultbox/deformo/internal/engine/window"
	"github.com/Faultbox/deformo/internal/logger"
	"github.com/Faultbox/deformo/internal/scene"
)

// maxFrameDt caps the tick length after a stall (window drag, breakpoint).
const maxFrameDt = 0.1

// App is the desktop frontend instance.
type App struct {
	config  *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	audio    *audio.Manager
	shots    *debug.ScreenshotCapture

	scene   *scene.Scene
	overlay scene.OverlayOptions
}

// New creates the window, renderer, audio and scene described by cfg.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing app",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	a := &App{
		config: cfg,
		overlay: scene.OverlayOptions{
			ShowPath:   cfg.Debug.ShowPath,
			ShowBrush:  cfg.Debug.ShowBrush,
			ShowBounds: cfg.Debug.ShowBounds,
		},
	}

	var err error
	a.scene, err = scene.New(cfg, logger.Named("session"))
	if err != nil {
		return nil, err
	}

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      "deformo",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Samples:    cfg.Graphics.MSAA,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:    width,
		Height:   height,
		Material: cfg.Surface.Material.Shader,
		Albedo:   cfg.Surface.Material.Albedo,
		Ambient:  [3]float32{0.25, 0.25, 0.28},
		LightDir: lighting.SunDirection(cfg.Graphics.SunLongitude, cfg.Graphics.SunLatitude),
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()
	a.camera = camera.NewOrbitCamera()
	a.fitCamera()
	a.shots = debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "deformo")

	a.audio = audio.New(audio.Config{
		Volume:     cfg.Audio.Volume,
		PushToneHz: cfg.Audio.PushToneHz,
		PullToneHz: cfg.Audio.PullToneHz,
	})
	if cfg.Audio.Enabled {
		if err := a.audio.Init(); err != nil {
			logger.Warn("audio disabled", zap.Error(err))
		}
	}

	logger.Info("app initialized successfully")
	return a, nil
}

func (a *App) fitCamera() {
	b := a.scene.Bounds()
	a.camera.FitToBounds(b.Min, b.Max)
}

// Run starts the main loop. It returns when the window closes or a tick
// fails.
func (a *App) Run() error {
	a.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for a.running {
		// Calculate delta time
		now := time.Now()
		dt := min(now.Sub(lastTime).Seconds(), maxFrameDt)
		lastTime = now

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()

		// 2. Advance the stroke session
		if err := a.update(float32(dt)); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		// 3. Render
		a.render()

		// 4. Present (swap buffers)
		a.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			a.renderer.Resize(a.window.DrawableSize())
		case input.EventMouseWheel:
			a.camera.HandleZoom(event.Wheel)
		case input.EventMouseMove:
			if a.input.Triggers().Held(trigger.ButtonMiddle) {
				a.camera.HandleDrag(float32(event.DeltaX), float32(event.DeltaY))
			}
		case input.EventKeyDown:
			a.handleKey(event.Key, event.Repeat)
		}
	}
}

// repeatable keys act again while held; the rest fire once per press.
var repeatable = map[sdl.Scancode]bool{
	sdl.SCANCODE_EQUALS:       true,
	sdl.SCANCODE_KP_PLUS:      true,
	sdl.SCANCODE_MINUS:        true,
	sdl.SCANCODE_KP_MINUS:     true,
	sdl.SCANCODE_LEFTBRACKET:  true,
	sdl.SCANCODE_RIGHTBRACKET: true,
}

func (a *App) handleKey(key sdl.Scancode, repeat bool) {
	if repeat && !repeatable[key] {
		return
	}

	switch key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false
	case sdl.SCANCODE_R:
		if err := a.scene.Rebuild(); err != nil {
			logger.Warn("rebuild failed", zap.Error(err))
		}
	case sdl.SCANCODE_EQUALS, sdl.SCANCODE_KP_PLUS:
		a.resize(4)
	case sdl.SCANCODE_MINUS, sdl.SCANCODE_KP_MINUS:
		a.resize(-4)
	case sdl.SCANCODE_LEFTBRACKET:
		a.scaleRadius(1 / 1.25)
	case sdl.SCANCODE_RIGHTBRACKET:
		a.scaleRadius(1.25)
	case sdl.SCANCODE_P:
		a.overlay.ShowPath = !a.overlay.ShowPath
	case sdl.SCANCODE_B:
		a.overlay.ShowBounds = !a.overlay.ShowBounds
	case sdl.SCANCODE_F12:
		a.screenshot()
	}
}

func (a *App) resize(delta int) {
	if err := a.scene.Resize(delta); err != nil {
		logger.Warn("resize rejected", zap.Error(err))
		return
	}
	a.fitCamera()
}

func (a *App) scaleRadius(factor float32) {
	r, err := a.scene.ScaleRadius(factor)
	if err != nil {
		logger.Warn("radius rejected", zap.Error(err))
		return
	}
	logger.Debug("brush radius", zap.Float32("radius", r))
}

func (a *App) screenshot() {
	width, height := a.window.DrawableSize()
	scale := a.config.Debug.ScreenshotScale
	width, height = width*scale, height*scale

	pixels, err := a.renderer.Capture(width, height, a.drawScene)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	path, err := a.shots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path), zap.Int("scale", scale))
}

// update feeds this frame's triggers and pointer ray to the scene.
func (a *App) update(dt float32) error {
	mx, my := a.input.Mouse()
	width, height := a.window.GetSize()
	triggers := a.input.Triggers()

	res, err := a.scene.Tick(dt, deform.Input{
		Push: triggers.Push(),
		Pull: triggers.Pull(),
		Ray:  a.camera.PointerRay(float32(mx), float32(my), width, height),
	})
	if err != nil {
		return err
	}

	dir := deform.Neutral
	if len(res.Brushed) > 0 {
		dir = res.Direction
	}
	if err := a.audio.SetStroke(dir); err != nil {
		logger.Warn("stroke tone failed", zap.Error(err))
	}
	return nil
}

// render draws the current frame.
func (a *App) render() {
	a.renderer.SyncSurface(a.scene.Surface())

	a.renderer.Begin()
	a.drawScene()
	a.renderer.End()
}

// drawScene draws the surface and overlay into the bound target.
func (a *App) drawScene() {
	viewProj := a.camera.ViewProj(a.window.Aspect())
	a.renderer.DrawSurface(viewProj, a.scene.Session().Params().MaxDepth)
	a.renderer.DrawLines(a.scene.Overlay(a.overlay), viewProj)
}

// Close cleans up app resources.
func (a *App) Close() {
	logger.Info("closing app")

	if a.audio != nil {
		a.audio.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
