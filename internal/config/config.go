// Package config handles ocean configuration loading and management.
package config

import (
	"math"

	"github.com/Faultbox/oceanwaves/internal/engine/water"
	"github.com/Faultbox/oceanwaves/internal/engine/water/normals"
)

// Config holds all settings.
type Config struct {
	Ocean      OceanConfig      `yaml:"ocean"`
	Simulation SimulationConfig `yaml:"simulation"`
	Window     WindowConfig     `yaml:"window"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// OceanConfig holds the wave spectrum and grid settings.
type OceanConfig struct {
	FFTDim        int     `yaml:"fft_dim"`
	HeightmapDim  int     `yaml:"heightmap_dim"`
	PatchLength   float64 `yaml:"patch_length"`
	WindDirection float64 `yaml:"wind_direction"` // Degrees
	WindSpeed     float64 `yaml:"wind_speed"`
	Amplitude     float64 `yaml:"amplitude"`
	WindAlignment float64 `yaml:"wind_alignment"`
	Choppiness    float64 `yaml:"choppiness"`
	WavePeriod    float64 `yaml:"wave_period"`
	SmallestWave  float64 `yaml:"smallest_wave"`
	VertexStride  float32 `yaml:"vertex_stride"`
	Gravity       float64 `yaml:"gravity"`
}

// SimulationConfig holds solver options and the headless run length.
type SimulationConfig struct {
	Seed              int64   `yaml:"seed"`
	NormalMode        string  `yaml:"normal_mode"` // analytic or sobel
	MirroredConjugate bool    `yaml:"mirrored_conjugate"`
	AccumulateChop    bool    `yaml:"accumulate_chop"`
	TimeStep          float64 `yaml:"time_step"` // Seconds per headless update
	Duration          float64 `yaml:"duration"`  // Seconds simulated by oceansim
}

// WindowConfig holds viewer display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Wireframe  bool   `yaml:"wireframe"`

	ScreenshotDir string `yaml:"screenshot_dir"` // F12 captures
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	p := water.DefaultParams()
	return &Config{
		Ocean: OceanConfig{
			FFTDim:        p.FFTDim,
			HeightmapDim:  p.HeightmapDim,
			PatchLength:   p.PatchLength,
			WindDirection: 45,
			WindSpeed:     p.WindSpeed,
			Amplitude:     p.Amplitude,
			WindAlignment: p.WindAlignment,
			Choppiness:    p.Choppiness,
			WavePeriod:    p.WavePeriod,
			SmallestWave:  p.SmallestWave,
			VertexStride:  p.VertexStride,
			Gravity:       p.Gravity,
		},
		Simulation: SimulationConfig{
			Seed:       p.Seed,
			NormalMode: string(normals.ModeAnalytic),
			TimeStep:   0.01,
			Duration:   1.0,
		},
		Window: WindowConfig{
			Title:  "Ocean Waves",
			Width:  1280,
			Height: 720,
			VSync:  true,

			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// OceanParams converts the configuration into simulation parameters.
// Wind direction is given in degrees and converted to radians here.
func (c *Config) OceanParams() water.Params {
	return water.Params{
		FFTDim:            c.Ocean.FFTDim,
		HeightmapDim:      c.Ocean.HeightmapDim,
		PatchLength:       c.Ocean.PatchLength,
		WindDirection:     c.Ocean.WindDirection * math.Pi / 180,
		WindSpeed:         c.Ocean.WindSpeed,
		Amplitude:         c.Ocean.Amplitude,
		WindAlignment:     c.Ocean.WindAlignment,
		SmallestWave:      c.Ocean.SmallestWave,
		Choppiness:        c.Ocean.Choppiness,
		WavePeriod:        c.Ocean.WavePeriod,
		Gravity:           c.Ocean.Gravity,
		VertexStride:      c.Ocean.VertexStride,
		Seed:              c.Simulation.Seed,
		NormalMode:        normals.Mode(c.Simulation.NormalMode),
		MirroredConjugate: c.Simulation.MirroredConjugate,
		AccumulateChop:    c.Simulation.AccumulateChop,
	}
}
