package turtle

// Canvas is the graphics collaborator a drawing is presented on.
type Canvas interface {
	// Show presents the drawing.
	Show(d *Drawing) error
	// WaitClick blocks until the user clicks on the canvas.
	WaitClick() error
}

// Present shows the drawing on the canvas and waits for the closing click.
func Present(c Canvas, d *Drawing) error {
	if err := c.Show(d); err != nil {
		return err
	}
	return c.WaitClick()
}
