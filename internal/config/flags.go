package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging and the path overlay")
	flagColumns    = flag.Int("columns", 0, "Grid columns")
	flagRows       = flag.Int("rows", 0, "Grid rows")
	flagSpacing    = flag.Float64("spacing", 0, "Grid spacing")
	flagRadius     = flag.Float64("radius", 0, "Brush radius")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagMute       = flag.Bool("mute", false, "Disable stroke audio")
	flagLerp       = flag.Bool("lerp", false, "Interpolate strokes along straight lines")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Debug.ShowPath = true
	}
	if *flagColumns > 0 {
		cfg.Grid.Columns = *flagColumns
	}
	if *flagRows > 0 {
		cfg.Grid.Rows = *flagRows
	}
	if *flagSpacing > 0 {
		cfg.Grid.Spacing = float32(*flagSpacing)
	}
	if *flagRadius > 0 {
		cfg.Brush.Radius = float32(*flagRadius)
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagMute {
		cfg.Audio.Enabled = false
	}
	if *flagLerp {
		cfg.Brush.Interpolation = "lerp"
	}
}
