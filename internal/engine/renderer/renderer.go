// Package renderer draws the deformable surface and its debug overlay with
// OpenGL.
package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/deformo/internal/deform"
	"github.com/Faultbox/deformo/internal/engine/debug"
	"github.com/Faultbox/deformo/internal/engine/renderer/shaders"
	"github.com/Faultbox/deformo/internal/logger"
	"github.com/Faultbox/deformo/pkg/math"
)

// ErrUnknownMaterial is returned when the surface material names no shader.
var ErrUnknownMaterial = errors.New("unknown material")

// Config holds renderer configuration.
type Config struct {
	Width    int
	Height   int
	Material string     // "lambert" or "height"
	Albedo   [3]float32 // Base surface color
	Ambient  [3]float32
	LightDir math.Vec3 // Points towards the light
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	surface *surfacePass
	lines   *linePass
	capture *offscreen // created on first Capture
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	frag, err := fragmentFor(cfg.Material)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		config: cfg,
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Log OpenGL info
	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
		zap.String("material", cfg.Material),
	)

	// Setup default OpenGL state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0) // Dark blue-gray background

	r.surface, err = newSurfacePass(frag)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("creating surface pass: %w", err)
	}

	r.lines, err = newLinePass()
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("creating line pass: %w", err)
	}

	return r, nil
}

// fragmentFor picks the surface fragment shader for a material name.
func fragmentFor(material string) (string, error) {
	switch material {
	case "lambert":
		return shaders.LambertFragmentShader, nil
	case "height":
		return shaders.HeightFragmentShader, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMaterial, material)
	}
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.surface != nil {
		r.surface.destroy()
	}
	if r.lines != nil {
		r.lines.destroy()
	}
	if r.capture != nil {
		r.capture.destroy()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.UseProgram(0)
}

// SyncSurface uploads s if it changed since the last sync.
func (r *Renderer) SyncSurface(s *deform.Surface) {
	r.surface.sync(s)
}

// DrawSurface draws the last synced surface.
func (r *Renderer) DrawSurface(viewProj math.Mat4, maxDepth float32) {
	r.surface.draw(viewProj, r.config, maxDepth)
}

// DrawLines draws debug lines on top of the surface.
func (r *Renderer) DrawLines(lines []debug.LineVertex, viewProj math.Mat4) {
	if len(lines) == 0 {
		return
	}
	r.lines.draw(lines, viewProj)
}

// Capture renders draw into an offscreen target of width x height and
// returns the result as RGBA, bottom row first. The window framebuffer is
// left untouched.
func (r *Renderer) Capture(width, height int, draw func()) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid capture size %dx%d", width, height)
	}
	if r.capture == nil {
		target, err := newOffscreen(int32(width), int32(height))
		if err != nil {
			return nil, fmt.Errorf("creating capture target: %w", err)
		}
		r.capture = target
	} else {
		r.capture.resize(int32(width), int32(height))
	}

	restore := r.capture.bind()
	defer restore()

	r.Begin()
	draw()
	r.End()
	return r.capture.readPixels(), nil
}
