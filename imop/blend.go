// Package imop implements the Porter-Duff composition operations and the
// separable blend modes used for laying the ink layer of a drawing over
// its backdrop. The image/draw core package implements only the
// source-over-destination and source operators; this package provides the rest.
package imop

import (
	"fmt"
	"math"

	"github.com/stoneagesculptor/turtle/utils"
)

const (
	Normal   = "normal"
	Darken   = "darken"
	Lighten  = "lighten"
	Multiply = "multiply"
	Screen   = "screen"
	Overlay  = "overlay"
)

// BlendModes lists the supported blend modes.
var BlendModes = []string{Normal, Darken, Lighten, Multiply, Screen, Overlay}

// Blend holds the currently active blend mode.
type Blend struct {
	OpType string
}

// NewBlend initializes a new Blend.
func NewBlend() *Blend {
	return &Blend{}
}

// Set activates one of the supported blend modes.
func (b *Blend) Set(opType string) error {
	if !utils.Contains(BlendModes, opType) {
		return fmt.Errorf("unsupported blend mode: %v", opType)
	}
	b.OpType = opType
	return nil
}

// Get returns the currently active blend mode.
func (b *Blend) Get() string {
	return b.OpType
}

// Apply mixes the normalized backdrop channel cb with the source channel cs.
func (b *Blend) Apply(cb, cs float64) float64 {
	switch b.OpType {
	case Darken:
		return math.Min(cb, cs)
	case Lighten:
		return math.Max(cb, cs)
	case Multiply:
		return cb * cs
	case Screen:
		return cb + cs - cb*cs
	case Overlay:
		if cb <= 0.5 {
			return 2 * cb * cs
		}
		return 1 - 2*(1-cb)*(1-cs)
	}
	return cs
}
