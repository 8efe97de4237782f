package turtle

import (
	"image"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func newSimulationCanvas(t *testing.T, cols, rows int) (*TerminalCanvas, tcell.SimulationScreen) {
	t.Helper()

	sim := tcell.NewSimulationScreen("UTF-8")
	tc, err := NewTerminalCanvas(DefaultScreen(), sim)
	assert.NoError(t, err)
	sim.SetSize(cols, rows)

	return tc, sim
}

func inkedCells(s tcell.Screen) (n int, minX, maxX int) {
	cols, rows := s.Size()
	minX, maxX = cols, -1
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if r, _, _, _ := s.GetContent(x, y); r != ' ' {
				n++
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
			}
		}
	}
	return n, minX, maxX
}

func TestTerminal_Show(t *testing.T) {
	assert := assert.New(t)

	tc, sim := newSimulationCanvas(t, 80, 24)
	assert.NoError(tc.Show(doodleDrawing()))

	n, minX, maxX := inkedCells(sim)
	assert.Greater(n, 20)
	// The square drawing area is 48 columns wide, centered on 80 columns.
	assert.GreaterOrEqual(minX, 16)
	assert.Less(maxX, 64)

	_, _, style, _ := sim.GetContent(0, 0)
	_, bg, _ := style.Decompose()
	assert.Equal(tcell.NewRGBColor(0xff, 0xff, 0xff), bg)
}

func TestTerminal_EmptyDrawing(t *testing.T) {
	tc, sim := newSimulationCanvas(t, 40, 20)
	assert.NoError(t, tc.Show(&Drawing{}))

	n, _, _ := inkedCells(sim)
	assert.Zero(t, n)
}

func TestTerminal_TinyTerminal(t *testing.T) {
	tc, _ := newSimulationCanvas(t, 1, 1)
	assert.NoError(t, tc.Show(doodleDrawing()))
}

func TestTerminal_ShowErrorRestoresTerminal(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	s := DefaultScreen()
	s.World = World{Min: Pt(10, 10), Max: Pt(-10, -10)}
	tc, err := NewTerminalCanvas(s, sim)
	assert.NoError(t, err)

	assert.Error(t, tc.Show(doodleDrawing()))

	// A finalized screen reports no more events once the queue is drained.
	done := make(chan struct{})
	go func() {
		for sim.PollEvent() != nil {
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("the terminal was not restored")
	}
}

func TestTerminal_WaitClick(t *testing.T) {
	testCases := []struct {
		name   string
		inject func(sim tcell.SimulationScreen)
	}{
		{
			name: "mouse press",
			inject: func(sim tcell.SimulationScreen) {
				sim.InjectMouse(3, 3, tcell.ButtonNone, tcell.ModNone)
				sim.InjectMouse(3, 3, tcell.Button1, tcell.ModNone)
			},
		},
		{
			name: "escape",
			inject: func(sim tcell.SimulationScreen) {
				sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
			},
		},
		{
			name: "ctrl-c",
			inject: func(sim tcell.SimulationScreen) {
				sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModNone)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			canvas, sim := newSimulationCanvas(t, 40, 20)
			assert.NoError(t, canvas.Show(doodleDrawing()))

			done := make(chan error, 1)
			go func() {
				done <- canvas.WaitClick()
			}()
			tc.inject(sim)

			select {
			case err := <-done:
				assert.NoError(t, err)
			case <-time.After(5 * time.Second):
				t.Fatal("WaitClick did not return after the event")
			}
		})
	}
}

func TestTerminal_Quadrant(t *testing.T) {
	assert := assert.New(t)

	mask := image.NewAlpha(image.Rect(0, 0, 4, 2))
	assert.Equal(' ', quadrant(mask, 0, 0))

	mask.Pix[0] = 0xff // upper-left
	assert.Equal('▘', quadrant(mask, 0, 0))

	mask.Pix[mask.PixOffset(1, 1)] = 0xff // lower-right
	assert.Equal('▚', quadrant(mask, 0, 0))

	for i := range mask.Pix {
		mask.Pix[i] = 0xff
	}
	assert.Equal('█', quadrant(mask, 2, 0))
}
