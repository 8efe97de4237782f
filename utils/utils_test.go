package utils

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUtils_HexToRGBA(t *testing.T) {
	assert := assert.New(t)

	testCases := []struct {
		hex  string
		want color.NRGBA
	}{
		{hex: "#0000A8", want: color.NRGBA{R: 0, G: 0, B: 0xa8, A: 0xff}},
		{hex: "#FFFFFF", want: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{hex: "ff8000", want: color.NRGBA{R: 0xff, G: 0x80, B: 0, A: 0xff}},
		{hex: "#fff", want: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{hex: "#08c", want: color.NRGBA{R: 0, G: 0x88, B: 0xcc, A: 0xff}},
	}
	for _, tc := range testCases {
		c, err := HexToRGBA(tc.hex)
		assert.NoError(err, tc.hex)
		assert.Equal(tc.want, c, tc.hex)
	}

	for _, hex := range []string{"", "#12", "#zzzzzz", "#1234567"} {
		_, err := HexToRGBA(hex)
		assert.Error(err, hex)
	}
}

func TestUtils_RGBAToHex(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("#0000a8", RGBAToHex(color.NRGBA{B: 0xa8, A: 0xff}))
	assert.Equal("#ffffff", RGBAToHex(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x10}))

	c, err := HexToRGBA(RGBAToHex(color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}))
	assert.NoError(err)
	assert.Equal(color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}, c)
}

func TestUtils_Math(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, Min(2, 3))
	assert.Equal(2, Min(3, 2))
	assert.Equal(3.5, Max(1.0, 3.5))
	assert.Equal(4, Abs(-4))
	assert.Equal(0.25, Abs(0.25))
	assert.Equal(10, Clamp(12, 0, 10))
	assert.Equal(0, Clamp(-1, 0, 10))
	assert.Equal(5, Clamp(5, 0, 10))
}

func TestUtils_Contains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
	assert.False(t, Contains(nil, 1))
}

func TestUtils_DecorateText(t *testing.T) {
	s := DecorateText("done", SuccessMessage)
	assert.True(t, strings.HasPrefix(s, SuccessColor))
	assert.True(t, strings.HasSuffix(s, DefaultColor))
	assert.Equal(t, "plain", DecorateText("plain", MessageType(42)))
}

func TestUtils_FormatTime(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("250ms", FormatTime(250*time.Millisecond))
	assert.Equal("1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal("2m 5.00s", FormatTime(2*time.Minute+5*time.Second))
	assert.Equal("1h 1m 1.00s", FormatTime(time.Hour+time.Minute+time.Second))
}

func TestUtils_SpinnerStopMessage(t *testing.T) {
	var buf bytes.Buffer

	s := NewSpinner("working", time.Millisecond, false)
	s.SetWriter(&buf)
	s.StopMsg = "finished"
	s.Start()
	time.Sleep(5 * time.Millisecond)
	s.Stop()
	// A second Stop must not block or panic.
	s.Stop()

	assert.True(t, strings.HasSuffix(buf.String(), "finished"))
}
