package turtle

import (
	"image"
	"image/color"

	"github.com/stoneagesculptor/turtle/utils"
)

// luminance returns the perceived brightness of c in the 0-255 range.
func luminance(c color.Color) uint8 {
	r, g, b, _ := c.RGBA()
	lum := float32(r)*0.299 + float32(g)*0.587 + float32(b)*0.114
	return uint8(lum / 256)
}

// Grayscale converts the image to grayscale mode.
func Grayscale(src *image.NRGBA) *image.Gray {
	bounds := src.Bounds()
	dst := image.NewGray(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dst.SetGray(x, y, color.Gray{Y: luminance(src.NRGBAAt(x, y))})
		}
	}
	return dst
}

// Threshold converts a grayscale image to a black and white mask: a pixel is
// opaque when its brightness differs from the background brightness by more
// than t, and fully transparent otherwise.
func Threshold(src *image.Gray, bg color.Color, t uint8) *image.Alpha {
	var (
		bounds = src.Bounds()
		dst    = image.NewAlpha(bounds)
		ref    = int(luminance(bg))
	)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if utils.Abs(int(src.GrayAt(x, y).Y)-ref) > int(t) {
				dst.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
		}
	}
	return dst
}
