// Package config handles deformer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/deformo/internal/deform"
	"github.com/Faultbox/deformo/internal/engine/picking"
	"github.com/Faultbox/deformo/internal/logger"
	"github.com/Faultbox/deformo/pkg/math"
)

// Config holds all settings.
type Config struct {
	Grid     GridConfig     `yaml:"grid"`
	Surface  SurfaceConfig  `yaml:"surface"`
	Brush    BrushConfig    `yaml:"brush"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Audio    AudioConfig    `yaml:"audio"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GridConfig holds the mesh dimensions. Changing it rebuilds the surface.
type GridConfig struct {
	Columns int     `yaml:"columns"`
	Rows    int     `yaml:"rows"`
	Spacing float32 `yaml:"spacing"`
}

// SurfaceConfig places the surface in the scene.
type SurfaceConfig struct {
	Position    [3]float32     `yaml:"position"`
	RotationDeg [3]float32     `yaml:"rotation_deg"` // Euler angles, applied Z, X, Y
	Layer       int            `yaml:"layer"`        // Collision layer (0-31)
	Material    MaterialConfig `yaml:"material"`
}

// MaterialConfig selects how the surface is shaded.
type MaterialConfig struct {
	Shader string     `yaml:"shader"` // "lambert" or "height"
	Albedo [3]float32 `yaml:"albedo"`
}

// BrushConfig holds stroke and healing settings.
type BrushConfig struct {
	Radius                float32 `yaml:"radius"`
	DeformSpeed           float32 `yaml:"deform_speed"`
	MaxDepth              float32 `yaml:"max_depth"`
	HealingRate           float32 `yaml:"healing_rate"`
	InterpolationSegments int     `yaml:"interpolation_segments"`
	Interpolation         string  `yaml:"interpolation"` // "slerp" or "lerp"
	HitLayers             []int   `yaml:"hit_layers"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	MSAA       int  `yaml:"msaa"` // Samples per pixel: 0, 2, 4 or 8

	SunLongitude float32 `yaml:"sun_longitude"` // degrees around the vertical axis
	SunLatitude  float32 `yaml:"sun_latitude"`  // degrees above the horizon
}

// AudioConfig holds stroke feedback settings.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`
	PushToneHz float64 `yaml:"push_tone_hz"`
	PullToneHz float64 `yaml:"pull_tone_hz"`
}

// DebugConfig toggles the overlay.
type DebugConfig struct {
	ShowPath        bool   `yaml:"show_path"`
	ShowBrush       bool   `yaml:"show_brush"`
	ShowBounds      bool   `yaml:"show_bounds"`
	ScreenshotDir   string `yaml:"screenshot_dir"`
	ScreenshotScale int    `yaml:"screenshot_scale"` // Multiple of the window size (1-4)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Columns: 64,
			Rows:    64,
			Spacing: 0.25,
		},
		Surface: SurfaceConfig{
			RotationDeg: [3]float32{-90, 0, 0}, // Lay the grid flat, heights pointing up
			Layer:       0,
			Material: MaterialConfig{
				Shader: "lambert",
				Albedo: [3]float32{0.85, 0.55, 0.35},
			},
		},
		Brush: BrushConfig{
			Radius:                0.6,
			DeformSpeed:           1.5,
			MaxDepth:              2.0,
			HealingRate:           0.2,
			InterpolationSegments: 8,
			Interpolation:         "slerp",
			HitLayers:             []int{0},
		},
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			MSAA:       4,

			SunLongitude: 45,
			SunLatitude:  55,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.4,
			PushToneHz: 220,
			PullToneHz: 165,
		},
		Debug: DebugConfig{
			ShowPath:        false,
			ShowBrush:       true,
			ShowBounds:      false,
			ScreenshotDir:   "screenshots",
			ScreenshotScale: 1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if err := c.GridConfig().Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.BrushParams(); err != nil {
		errs = append(errs, err)
	}
	if c.Surface.Layer < 0 || c.Surface.Layer > 31 {
		errs = append(errs, fmt.Errorf("surface layer %d not in [0, 31]", c.Surface.Layer))
	}
	switch c.Surface.Material.Shader {
	case "lambert", "height":
	default:
		errs = append(errs, fmt.Errorf("unknown material shader %q", c.Surface.Material.Shader))
	}
	for _, l := range c.Brush.HitLayers {
		if l < 0 || l > 31 {
			errs = append(errs, fmt.Errorf("hit layer %d not in [0, 31]", l))
		}
	}
	switch c.Graphics.MSAA {
	case 0, 2, 4, 8:
	default:
		errs = append(errs, fmt.Errorf("msaa %d not one of 0, 2, 4, 8", c.Graphics.MSAA))
	}
	if c.Graphics.SunLatitude < 0 || c.Graphics.SunLatitude > 90 {
		errs = append(errs, fmt.Errorf("sun latitude %v not in [0, 90]", c.Graphics.SunLatitude))
	}
	if c.Debug.ScreenshotScale < 1 || c.Debug.ScreenshotScale > 4 {
		errs = append(errs, fmt.Errorf("screenshot scale %d not in [1, 4]", c.Debug.ScreenshotScale))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume %v not in [0, 1]", c.Audio.Volume))
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// GridConfig converts the grid section for the deformer.
func (c *Config) GridConfig() deform.GridConfig {
	return deform.GridConfig{
		Columns: c.Grid.Columns,
		Rows:    c.Grid.Rows,
		Spacing: c.Grid.Spacing,
	}
}

// BrushParams converts the brush section for the deformer.
func (c *Config) BrushParams() (deform.BrushParams, error) {
	mode, err := math.ParsePathMode(c.Brush.Interpolation)
	if err != nil {
		return deform.BrushParams{}, fmt.Errorf("%w: %v", deform.ErrInvalidBrush, err)
	}
	p := deform.BrushParams{
		Radius:                c.Brush.Radius,
		DeformSpeed:           c.Brush.DeformSpeed,
		MaxDepth:              c.Brush.MaxDepth,
		HealingRate:           c.Brush.HealingRate,
		InterpolationSegments: c.Brush.InterpolationSegments,
		Interpolation:         mode,
	}
	return p, p.Validate()
}

// Transform returns the surface placement.
func (c *Config) Transform() math.Transform {
	t := math.IdentityTransform()
	p := c.Surface.Position
	r := c.Surface.RotationDeg
	t.Position = math.Vec3{X: p[0], Y: p[1], Z: p[2]}
	t.Rotation = math.QuatFromEulerDegrees(r[0], r[1], r[2])
	return t
}

// HitLayers returns the layer mask used for hit tests. An empty list means
// every layer.
func (c *Config) HitLayers() picking.LayerMask {
	if len(c.Brush.HitLayers) == 0 {
		return picking.AllLayers
	}
	return picking.LayerMaskOf(c.Brush.HitLayers...)
}
