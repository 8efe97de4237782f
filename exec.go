package turtle

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/stoneagesculptor/turtle/imop"
	"github.com/stoneagesculptor/turtle/utils"
)

// ClickHint is printed before the drawing is presented.
const ClickHint = "Click on the graphical window to stop."

// Ops selects the canvas the doodle is presented on.
type Ops struct {
	// Dst is the export destination. Empty opens an interactive canvas.
	Dst string
	// Terminal presents the drawing inside the terminal instead of a window.
	Terminal bool
}

// Painter options
type Painter struct {
	Screen  Screen
	Blend   *imop.Blend
	Comp    *imop.Composite
	Spinner *utils.Spinner
	Debug   bool

	// Stdout receives the status messages. Defaults to os.Stdout, or to
	// os.Stderr when the image itself is written to stdout.
	Stdout io.Writer
	// TermScreen overrides the terminal used by the terminal canvas.
	TermScreen tcell.Screen
}

// NewPainter returns a painter for the default screen.
func NewPainter() *Painter {
	return &Painter{Screen: DefaultScreen()}
}

// Execute replays the doodle and presents it on the canvas selected by op.
// It returns once the user clicked on the canvas, or right after the
// drawing is written for exports.
func (p *Painter) Execute(op *Ops) error {
	out := p.output(op)

	fmt.Fprintf(out, "Using Go version: %s\n", runtime.Version())
	if op.Dst == "" {
		fmt.Fprintln(out, utils.DecorateText(ClickHint, utils.StatusMessage))
	}

	now := time.Now()

	c := NewCursor()
	Doodle(c)
	d := c.Drawing()

	canvas, err := p.canvas(op)
	if err != nil {
		return err
	}

	if op.Dst == "" {
		if err := Present(canvas, d); err != nil {
			return err
		}
		fmt.Fprintf(out, "Execution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
		return nil
	}

	if err := p.export(canvas, d, op.Dst); err != nil {
		return err
	}
	if op.Dst != PipeName {
		fmt.Fprintf(out, "\nThe drawing has been saved as: %s\n",
			utils.DecorateText(filepath.Base(op.Dst), utils.SuccessMessage),
		)
	}
	fmt.Fprintf(out, "Execution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))

	return nil
}

// canvas returns the canvas selected by op.
func (p *Painter) canvas(op *Ops) (Canvas, error) {
	switch {
	case op.Dst != "":
		e, err := NewExportCanvas(op.Dst, p.Screen)
		if err != nil {
			return nil, err
		}
		e.Blend = p.Blend
		e.Comp = p.Comp
		return e, nil
	case op.Terminal:
		tc, err := NewTerminalCanvas(p.Screen, p.TermScreen)
		if err != nil {
			return nil, err
		}
		tc.Blend = p.Blend
		tc.Comp = p.Comp
		return tc, nil
	default:
		g := NewGUI(p.Screen)
		g.Blend = p.Blend
		g.Comp = p.Comp
		g.Debug = p.Debug
		return g, nil
	}
}

// export writes the drawing while the progress indicator spins.
func (p *Painter) export(canvas Canvas, d *Drawing, dst string) error {
	if p.Spinner == nil {
		return Present(canvas, d)
	}

	// Capture CTRL-C signal and restore the cursor visibility back.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signalChan)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-signalChan:
			p.Spinner.RestoreCursor()
			if dst != PipeName {
				os.Remove(dst)
			}
			os.Exit(1)
		case <-done:
		}
	}()

	p.Spinner.Start()
	err := Present(canvas, d)
	if err != nil {
		p.Spinner.StopMsg = fmt.Sprintf("%s %s\n",
			utils.DecorateText("⇢ writing the drawing failed...", utils.DefaultMessage),
			utils.DecorateText("✘", utils.ErrorMessage),
		)
	} else {
		p.Spinner.StopMsg = fmt.Sprintf("%s %s\n",
			utils.DecorateText("⇢ the drawing has been written", utils.DefaultMessage),
			utils.DecorateText("✔", utils.SuccessMessage),
		)
	}
	p.Spinner.Stop()

	return err
}

// output returns the writer of the status messages.
func (p *Painter) output(op *Ops) io.Writer {
	if p.Stdout != nil {
		return p.Stdout
	}
	if op.Dst == PipeName {
		return os.Stderr
	}
	return os.Stdout
}
