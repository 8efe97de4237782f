/*
Package turtle replays a small decorative doodle with a stateful 2D turtle
cursor and presents it on a canvas: a native Gio window, the terminal, or an
image file.

The cursor records what it traces as strokes made of line and arc segments,
so the same drawing can be rasterized at any size or exported as SVG.
To check the supported commands type:

	$ turtle --help

In case you wish to drive the cursor yourself here is a simple example:

	package main

	import (
		"log"
		"os"

		"github.com/stoneagesculptor/turtle"
	)

	func main() {
		c := turtle.NewCursor()
		c.PenDown()
		c.Forward(30)
		c.Circle(10, 180)

		if err := turtle.WriteSVG(os.Stdout, turtle.DefaultScreen(), c.Drawing()); err != nil {
			log.Fatalf("Error writing the drawing: %v", err)
		}
	}
*/
package turtle
