package config

import "flag"

var (
	flagConfig        = flag.String("config", "", "Path to config file")
	flagDebug         = flag.Bool("debug", false, "Enable debug logging")
	flagFFTDim        = flag.Int("fft-dim", 0, "Frequency grid size (power of two)")
	flagHeightmapDim  = flag.Int("heightmap-dim", 0, "Visible grid size (at most fft-dim/2)")
	flagWindSpeed     = flag.Float64("wind-speed", 0, "Wind speed in m/s")
	flagWindDirection = flag.Float64("wind-direction", -1, "Wind direction in degrees")
	flagChoppiness    = flag.Float64("choppiness", -1, "Horizontal displacement scale")
	flagNormals       = flag.String("normals", "", "Normal mode: analytic or sobel")
	flagDuration      = flag.Float64("duration", -1, "Seconds to simulate (oceansim)")
	flagFullscreen    = flag.Bool("fullscreen", false, "Run the viewer fullscreen")
	flagWireframe     = flag.Bool("wireframe", false, "Start the viewer in wireframe mode")
	flagSaveConfig    = flag.Bool("save-config", false, "Write the effective config to -config, or the user config dir, and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether -save-config was given.
func SaveRequested() bool {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFFTDim > 0 {
		cfg.Ocean.FFTDim = *flagFFTDim
	}
	if *flagHeightmapDim > 0 {
		cfg.Ocean.HeightmapDim = *flagHeightmapDim
	}
	if *flagWindSpeed > 0 {
		cfg.Ocean.WindSpeed = *flagWindSpeed
	}
	if *flagWindDirection >= 0 {
		cfg.Ocean.WindDirection = *flagWindDirection
	}
	if *flagChoppiness >= 0 {
		cfg.Ocean.Choppiness = *flagChoppiness
	}
	if *flagNormals != "" {
		cfg.Simulation.NormalMode = *flagNormals
	}
	if *flagDuration >= 0 {
		cfg.Simulation.Duration = *flagDuration
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWireframe {
		cfg.Window.Wireframe = true
	}
}
