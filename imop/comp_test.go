package imop

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComp_Basic(t *testing.T) {
	assert := assert.New(t)

	op := InitOp()
	assert.Equal(SrcOver, op.Get())

	assert.NoError(op.Set(Clear))
	assert.Equal(Clear, op.Get())

	assert.Error(op.Set("unsupported_composite_operation"))
	assert.Equal(Clear, op.Get())
}

func TestComp_Ops(t *testing.T) {
	transparent := color.NRGBA{}
	cyan := color.NRGBA{R: 33, G: 150, B: 243, A: 255}
	magenta := color.NRGBA{R: 233, G: 30, B: 99, A: 255}

	rect := image.Rect(0, 0, 10, 10)
	source := image.NewNRGBA(rect)
	backdrop := image.NewNRGBA(rect)
	draw.Draw(source, image.Rect(0, 4, 6, 10), &image.Uniform{cyan}, image.Point{}, draw.Src)
	draw.Draw(backdrop, image.Rect(4, 0, 10, 6), &image.Uniform{magenta}, image.Point{}, draw.Src)

	// Three representative pixels: backdrop only, source only and the overlap.
	testCases := []struct {
		op                          string
		topRight, bottomLeft, center color.NRGBA
	}{
		{Clear, transparent, transparent, transparent},
		{Copy, transparent, cyan, cyan},
		{Dst, magenta, transparent, magenta},
		{SrcOver, magenta, cyan, cyan},
		{DstOver, magenta, cyan, magenta},
		{SrcIn, transparent, transparent, cyan},
		{DstIn, transparent, transparent, magenta},
		{SrcOut, transparent, cyan, transparent},
		{DstOut, magenta, transparent, transparent},
		{SrcAtop, magenta, transparent, cyan},
		{DstAtop, transparent, cyan, magenta},
		{Xor, magenta, cyan, transparent},
	}
	for _, tc := range testCases {
		t.Run(tc.op, func(t *testing.T) {
			assert := assert.New(t)

			op := InitOp()
			assert.NoError(op.Set(tc.op))
			bmp := NewBitmap(rect)
			op.Draw(bmp, source, backdrop, nil)

			assert.EqualValues(tc.topRight, bmp.Img.At(9, 0))
			assert.EqualValues(tc.bottomLeft, bmp.Img.At(0, 9))
			assert.EqualValues(tc.center, bmp.Img.At(5, 5))
		})
	}
}

func TestComp_SrcOverPartialAlpha(t *testing.T) {
	assert := assert.New(t)

	rect := image.Rect(0, 0, 1, 1)
	source := image.NewNRGBA(rect)
	backdrop := image.NewNRGBA(rect)
	source.SetNRGBA(0, 0, color.NRGBA{R: 0, G: 0, B: 168, A: 128})
	backdrop.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	bmp := NewBitmap(rect)
	InitOp().Draw(bmp, source, backdrop, nil)

	px := bmp.Img.NRGBAAt(0, 0)
	assert.Equal(uint8(255), px.A)
	assert.InDelta(127, int(px.R), 1)
	assert.InDelta(127, int(px.G), 1)
	assert.InDelta(211, int(px.B), 1)
}

func TestComp_SetEveryOperator(t *testing.T) {
	op := InitOp()
	for _, name := range CompositeOps {
		assert.NoError(t, op.Set(name), name)
		assert.Equal(t, name, op.Get())
	}
}
