package turtle

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// Supported export formats, selected by the destination file extension.
var validExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".svg"}

// encodeImg encodes an image to a destination of type io.Writer.
// Files are encoded according to their extension, any other writer gets PNG.
func encodeImg(w io.Writer, img image.Image) error {
	f, ok := w.(*os.File)
	if !ok {
		return png.Encode(w, img)
	}
	switch ext := strings.ToLower(filepath.Ext(f.Name())); ext {
	case "", ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return errors.Errorf("unsupported image format: %v", ext)
	}
}
