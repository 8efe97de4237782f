package imop

import (
	"fmt"
	"image"

	"github.com/stoneagesculptor/turtle/utils"
)

const (
	Clear   = "clear"
	Copy    = "copy"
	Dst     = "dst"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

// CompositeOps lists the supported composition operators.
var CompositeOps = []string{
	Clear, Copy, Dst,
	SrcOver, DstOver,
	SrcIn, DstIn,
	SrcOut, DstOut,
	SrcAtop, DstAtop,
	Xor,
}

// Bitmap is the destination of a composition.
type Bitmap struct {
	Img *image.NRGBA
}

// Composite holds the active composition operator.
type Composite struct {
	current string
	ops     []string
}

// NewBitmap allocates a transparent bitmap.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// InitOp returns a Composite with SrcOver as the active operator.
func InitOp() *Composite {
	return &Composite{
		current: SrcOver,
		ops:     CompositeOps,
	}
}

// Set changes the active composition operator.
func (op *Composite) Set(cop string) error {
	if !utils.Contains(op.ops, cop) {
		return fmt.Errorf("unsupported composite operation: %v", cop)
	}
	op.current = cop
	return nil
}

// Get returns the active composition operator.
func (op *Composite) Get() string {
	return op.current
}

// factors returns the Porter-Duff fractions of source and backdrop kept by
// the active operator for the given source and backdrop alphas.
func (op *Composite) factors(as, ab float64) (fs, fb float64) {
	switch op.current {
	case Clear:
		return 0, 0
	case Copy:
		return 1, 0
	case Dst:
		return 0, 1
	case SrcOver:
		return 1, 1 - as
	case DstOver:
		return 1 - ab, 1
	case SrcIn:
		return ab, 0
	case DstIn:
		return 0, as
	case SrcOut:
		return 1 - ab, 0
	case DstOut:
		return 0, 1 - as
	case SrcAtop:
		return ab, 1 - as
	case DstAtop:
		return 1 - ab, as
	case Xor:
		return 1 - ab, 1 - as
	}
	return 1, 1 - as
}

// Draw composes src over the dst backdrop into bitmap using the active
// operator. When blend is not nil, the source colors are first mixed with
// the backdrop using the blend mode. The three images must share bounds.
func (op *Composite) Draw(bitmap *Bitmap, src, dst *image.NRGBA, blend *Blend) {
	bounds := src.Bounds()
	if bitmap == nil {
		bitmap = NewBitmap(bounds)
	}
	out := bitmap.Img

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			si := src.PixOffset(x, y)
			di := dst.PixOffset(x, y)
			oi := out.PixOffset(x, y)

			as := float64(src.Pix[si+3]) / 255
			ab := float64(dst.Pix[di+3]) / 255
			fs, fb := op.factors(as, ab)

			ao := as*fs + ab*fb
			if ao <= 0 {
				out.Pix[oi+0], out.Pix[oi+1], out.Pix[oi+2], out.Pix[oi+3] = 0, 0, 0, 0
				continue
			}
			for c := 0; c < 3; c++ {
				cs := float64(src.Pix[si+c]) / 255
				cb := float64(dst.Pix[di+c]) / 255
				if blend != nil {
					// The blended color only applies where the backdrop is present.
					cs = (1-ab)*cs + ab*blend.Apply(cb, cs)
				}
				// Premultiplied result, then back to straight alpha.
				co := (as*fs*cs + ab*fb*cb) / ao
				out.Pix[oi+c] = uint8(utils.Clamp(co*255+0.5, 0, 255))
			}
			out.Pix[oi+3] = uint8(utils.Clamp(ao*255+0.5, 0, 255))
		}
	}
}
