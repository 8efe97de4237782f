package turtle

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/stoneagesculptor/turtle/imop"
	"github.com/stoneagesculptor/turtle/utils"
)

// PipeName is the destination name that indicates stdout is being used.
const PipeName = "-"

// ExportCanvas is a headless canvas writing the drawing to an image file.
// The format is chosen by the file extension; the pipe name writes PNG to stdout.
type ExportCanvas struct {
	Path   string
	Screen Screen
	Blend  *imop.Blend
	Comp   *imop.Composite
	// Stdout receives the image when Path is the pipe name. Defaults to os.Stdout.
	Stdout io.Writer
}

// NewExportCanvas returns an export canvas writing to path.
func NewExportCanvas(path string, s Screen) (*ExportCanvas, error) {
	if path != PipeName {
		ext := strings.ToLower(filepath.Ext(path))
		if !utils.Contains(validExtensions, ext) {
			return nil, errors.Errorf("%v file type not supported", ext)
		}
	}
	return &ExportCanvas{Path: path, Screen: s}, nil
}

// Show encodes the drawing to the destination.
func (e *ExportCanvas) Show(d *Drawing) error {
	dst, err := e.destination()
	if err != nil {
		return err
	}
	err = e.encode(dst, d)
	if f, ok := dst.(*os.File); ok && f != os.Stdout {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "unable to close the destination file")
		}
	}
	if err != nil {
		if e.Path != PipeName {
			// Remove the partially written file.
			os.Remove(e.Path)
		}
		return err
	}
	return nil
}

// WaitClick returns immediately: nothing is shown to be clicked on.
func (e *ExportCanvas) WaitClick() error {
	return nil
}

func (e *ExportCanvas) encode(w io.Writer, d *Drawing) error {
	if strings.EqualFold(filepath.Ext(e.Path), ".svg") {
		return errors.Wrap(WriteSVG(w, e.Screen, d), "unable to encode the svg file")
	}

	r := NewRasterizer(e.Screen)
	r.Blend = e.Blend
	r.Comp = e.Comp
	img, err := r.Rasterize(d)
	if err != nil {
		return err
	}
	return errors.Wrap(encodeImg(w, img), "unable to encode the image")
}

// destination converts the path to a writable file.
func (e *ExportCanvas) destination() (io.Writer, error) {
	if e.Path == PipeName {
		if e.Stdout != nil {
			return e.Stdout, nil
		}
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdout")
		}
		return os.Stdout, nil
	}

	f, err := os.OpenFile(e.Path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create the destination file")
	}
	return f, nil
}
