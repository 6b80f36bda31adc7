package water

import (
	"image"

	"gonum.org/v1/gonum/floats"
)

// GrayImage maps a dim x dim row-major height field onto 8-bit gray, the
// lowest sample black and the highest white. A flat field maps to mid gray.
func GrayImage(heights []float64, dim int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, dim, dim))
	if dim == 0 || len(heights) < dim*dim {
		return img
	}

	lo, hi := floats.Min(heights), floats.Max(heights)
	span := hi - lo
	for z := range dim {
		for x := range dim {
			v := 128.0
			if span > 0 {
				v = (heights[z*dim+x] - lo) / span * 255
			}
			img.Pix[z*img.Stride+x] = uint8(v + 0.5)
		}
	}
	return img
}

// HeightImage renders the visible mesh heights of the last Update.
func (o *Ocean) HeightImage() *image.Gray {
	return GrayImage(MeshHeights(nil, o.vertices), o.params.HeightmapDim)
}
