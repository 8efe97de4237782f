package utils

import (
	"fmt"
	"image/color"
	"strings"
)

// HexToRGBA converts a color expressed in hexadecimal format (#rgb or #rrggbb)
// to a color.NRGBA value. The leading # is optional.
func HexToRGBA(hex string) (color.NRGBA, error) {
	var (
		c   = color.NRGBA{A: 0xff}
		err error
	)
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")

	switch len(hex) {
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &c.R, &c.G, &c.B)
		// Expand the short form: 0xf becomes 0xff.
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("invalid length, must be 3 or 6 digits")
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %v", hex, err)
	}
	return c, nil
}

// Contains returns true if a value is available in the collection.
func Contains[T comparable](slice []T, value T) bool {
	for _, v := range slice {
		if v == value {
			return true
		}
	}
	return false
}

// RGBAToHex returns the #rrggbb notation of a color, ignoring its alpha.
func RGBAToHex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
