package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gioui.org/app"

	"github.com/stoneagesculptor/turtle"
	"github.com/stoneagesculptor/turtle/imop"
	"github.com/stoneagesculptor/turtle/utils"
)

const HelpBanner = `
┌┬┐┬ ┬┬─┐┌┬┐┬  ┌─┐
 │ │ │├┬┘ │ │  ├┤
 ┴ └─┘┴└─ ┴ ┴─┘└─┘

Turtle graphics doodle.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	destination = flag.String("out", "", "Export destination (.png, .jpg, .bmp, .svg or - for stdout)")
	terminal    = flag.Bool("term", false, "Draw inside the terminal")
	size        = flag.Int("size", turtle.ReferenceSize, "Canvas size in pixels")
	background  = flag.String("bg", "#ffffff", "Background color")
	blendMode   = flag.String("blend", "", fmt.Sprintf("Blend mode of the ink %v", imop.BlendModes))
	compOp      = flag.String("comp", imop.SrcOver, fmt.Sprintf("Composition operator of the ink over the background %v", imop.CompositeOps))
	debug       = flag.Bool("debug", false, "Show the turtle and the start of every stroke")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	painter, err := newPainter()
	if err != nil {
		fatal(err)
	}
	op := &turtle.Ops{
		Dst:      *destination,
		Terminal: *terminal,
	}

	if op.Dst != "" || op.Terminal {
		if err := painter.Execute(op); err != nil {
			fatal(err)
		}
		return
	}

	// Gio needs the main OS thread: the replay and the click wait run in a
	// separate goroutine which ends the process.
	go func() {
		if err := painter.Execute(op); err != nil {
			fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

// newPainter builds the painter from the command line flags.
func newPainter() (*turtle.Painter, error) {
	p := turtle.NewPainter()
	p.Debug = *debug
	p.Screen.Width, p.Screen.Height = *size, *size

	bg, err := utils.HexToRGBA(*background)
	if err != nil {
		return nil, err
	}
	p.Screen.Background = bg

	if *blendMode != "" {
		p.Blend = imop.NewBlend()
		if err := p.Blend.Set(*blendMode); err != nil {
			return nil, err
		}
	}
	p.Comp = imop.InitOp()
	if err := p.Comp.Set(*compOp); err != nil {
		return nil, err
	}
	if err := p.Screen.Validate(); err != nil {
		return nil, err
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("🐢 TURTLE", utils.StatusMessage),
		utils.DecorateText("is drawing the doodle...", utils.DefaultMessage))
	p.Spinner = utils.NewSpinner(spinnerText, time.Millisecond*100, true)

	return p, nil
}

// fatal prints the error and terminates with a non-zero exit code.
func fatal(err error) {
	log.Fatalf("%s %s",
		utils.DecorateText("\nError drawing the doodle:", utils.ErrorMessage),
		utils.DecorateText(fmt.Sprintf("%v\n", err), utils.DefaultMessage),
	)
}
