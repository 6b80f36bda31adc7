package debug

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 14, 5, 7, 250e6, time.UTC)
}

func TestGenerateFilename(t *testing.T) {
	sc := NewScreenshotCapture("shots", "ocean")
	sc.now = fixedClock
	assert.Equal(t, filepath.Join("shots", "ocean_2024-03-09_14-05-07.250.png"), sc.GenerateFilename())

	sc = NewScreenshotCapture("", "ocean")
	sc.now = fixedClock
	assert.Equal(t, "ocean_2024-03-09_14-05-07.250.png", sc.GenerateFilename())
}

func TestFlipRGBA(t *testing.T) {
	// Two rows, bottom row first.
	pixels := []byte{
		1, 1, 1, 255,
		2, 2, 2, 255,
	}
	img, err := FlipRGBA(pixels, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint8(2), img.RGBAAt(0, 0).R)
	assert.Equal(t, uint8(1), img.RGBAAt(0, 1).R)
}

func TestFlipRGBASizeMismatch(t *testing.T) {
	_, err := FlipRGBA(make([]byte, 7), 1, 2)
	assert.Error(t, err)
}

func TestCaptureFromPixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	sc := NewScreenshotCapture(dir, "ocean")
	sc.now = fixedClock

	path, err := sc.CaptureFromPixels(make([]byte, 4*3*2), 3, 2)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
}

func TestWriteImageFormats(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 3))
	src.Pix[5] = 200

	decoders := map[string]func(f *os.File) (image.Image, error){
		"heights.png":  func(f *os.File) (image.Image, error) { return png.Decode(f) },
		"heights.BMP":  func(f *os.File) (image.Image, error) { return bmp.Decode(f) },
		"heights.tiff": func(f *os.File) (image.Image, error) { return tiff.Decode(f) },
	}
	dir := t.TempDir()
	for name, decode := range decoders {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, WriteImage(path, src))

			f, err := os.Open(path)
			require.NoError(t, err)
			defer f.Close()

			img, err := decode(f)
			require.NoError(t, err)
			assert.Equal(t, src.Bounds(), img.Bounds())
			r, _, _, _ := img.At(1, 1).RGBA()
			assert.Equal(t, uint32(200)*0x101, r)
		})
	}
}

func TestWriteImageBadPath(t *testing.T) {
	err := WriteImage(filepath.Join(t.TempDir(), "missing", "x.png"), image.NewGray(image.Rect(0, 0, 1, 1)))
	assert.Error(t, err)
}
