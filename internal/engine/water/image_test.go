package water

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrayImageRange(t *testing.T) {
	img := GrayImage([]float64{-1, 0, 0.5, 1}, 2)

	require.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, uint8(0), img.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(128), img.GrayAt(1, 0).Y)
	assert.Equal(t, uint8(191), img.GrayAt(0, 1).Y)
	assert.Equal(t, uint8(255), img.GrayAt(1, 1).Y)
}

func TestGrayImageFlat(t *testing.T) {
	img := GrayImage([]float64{3, 3, 3, 3}, 2)
	for _, p := range img.Pix {
		assert.Equal(t, uint8(128), p)
	}
}

func TestGrayImageShortInput(t *testing.T) {
	img := GrayImage([]float64{1}, 2)
	assert.Equal(t, []uint8{0, 0, 0, 0}, img.Pix)
}

func TestOceanHeightImage(t *testing.T) {
	o := runScenario(t, scenarioParams())
	img := o.HeightImage()

	dim := o.Params().HeightmapDim
	require.Equal(t, dim, img.Bounds().Dx())
	require.Equal(t, dim, img.Bounds().Dy())

	var lo, hi uint8 = 255, 0
	for _, p := range img.Pix {
		lo = min(lo, p)
		hi = max(hi, p)
	}
	assert.Equal(t, uint8(0), lo)
	assert.Equal(t, uint8(255), hi)
}
