package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/oceanwaves/internal/config"
)

func TestRunWritesHeightfield(t *testing.T) {
	cfg := config.Default()
	cfg.Simulation.Duration = 0.1
	path := filepath.Join(t.TempDir(), "heights.png")

	require.NoError(t, run(cfg, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, cfg.Ocean.HeightmapDim, img.Bounds().Dx())
	assert.Equal(t, cfg.Ocean.HeightmapDim, img.Bounds().Dy())
}

func TestRunWithoutDump(t *testing.T) {
	cfg := config.Default()
	cfg.Simulation.Duration = 0
	assert.NoError(t, run(cfg, ""))
}

func TestRunRejectsInvalidOcean(t *testing.T) {
	cfg := config.Default()
	cfg.Ocean.FFTDim = 48
	assert.Error(t, run(cfg, ""))
}

func TestDumpBadPath(t *testing.T) {
	cfg := config.Default()
	cfg.Simulation.Duration = 0
	path := filepath.Join(t.TempDir(), "missing", "heights.png")
	assert.Error(t, run(cfg, path))
}
