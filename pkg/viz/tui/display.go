// Package tui renders the visualization channel to a terminal using
// tcell, translating world coordinates onto the screen grid with the
// world origin (0,0) at the center of the screen.
package tui

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/itohio/slam/pkg/logging"
	"github.com/itohio/slam/pkg/viz"
)

var log = logging.Named("tui")

// getTimeout bounds how long Display.Run waits on the queue before
// redrawing, matching the protocol's "blocking get, timeout triggers a
// redraw" cadence.
const getTimeout = 3 * time.Second

// cellsPerUnit controls how many terminal columns/rows represent one
// world-coordinate unit; the occupancy grid and scatter points share
// the same scale.
const cellsPerUnit = 1.0

// Display consumes the visualization channel and draws it to a tcell
// screen: permanent and temporary scatter points, the latest occupancy
// heatmap, and path-plan trails.
type Display struct {
	screen tcell.Screen

	permanent []viz.DataPoint
	temporary []viz.DataPoint
	heatmap   *viz.HeatmapPoint

	width, height int
}

// New initializes a tcell screen and returns a Display ready to run.
func New() (*Display, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tui: new screen: %w", err)
	}
	return newWithScreen(screen)
}

func newWithScreen(screen tcell.Screen) (*Display, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tui: init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	w, h := screen.Size()
	return &Display{screen: screen, width: w, height: h}, nil
}

// Close tears down the terminal screen.
func (d *Display) Close() {
	d.screen.Fini()
}

// Emit implements viz.Sink: records location as temporary or permanent
// depending on Existence.
func (d *Display) Emit(p viz.DataPoint) {
	if p.Existence == viz.Permanent {
		d.permanent = append(d.permanent, p)
		return
	}
	d.temporary = append(d.temporary, p)
}

// EmitPrediction implements viz.Sink: replaces the rendered heatmap
// with the latest occupancy prediction.
func (d *Display) EmitPrediction(h viz.HeatmapPoint) {
	hm := h
	d.heatmap = &hm
}

// Control implements viz.Sink: DeleteTemporaryData clears every
// temporary scatter point accumulated since the last clear.
func (d *Display) Control(c viz.ControlMessage) {
	if c.Kind == viz.DeleteTemporaryData {
		d.temporary = nil
	}
}

// Run drives the display loop: repeatedly pull from queue with a
// bounded wait, redraw on every event and on every timeout, and watch
// for a terminal resize or quit keypress. It returns when ctx is
// cancelled or the user requests quit.
func (d *Display) Run(ctx context.Context, queue *viz.Queue) error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if d.handleEvent(ev) {
				d.redraw()
				continue
			}
			return nil
		default:
		}

		queue.Get(getTimeout, d)
		d.redraw()
	}
}

// RedrawLoop repaints the already-accumulated points on a 1s tick
// without consuming a queue: the second phase of shutdown, after the
// agent has stopped producing data but before the user's second
// interrupt tells the display to exit.
func (d *Display) RedrawLoop(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !d.handleEvent(ev) {
				return nil
			}
			d.redraw()
		case <-ticker.C:
			d.redraw()
		}
	}
}

func (d *Display) handleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		d.width, d.height = d.screen.Size()
		d.screen.Sync()
	case *tcell.EventKey:
		if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC {
			log.Info().Msg("quit requested")
			return false
		}
	}
	return true
}

// redraw clears the screen and repaints the heatmap, then permanent,
// then temporary points, in that order so scatter points stay visible
// over the occupancy shading.
func (d *Display) redraw() {
	d.screen.Clear()

	if d.heatmap != nil {
		d.drawHeatmap(*d.heatmap)
	}
	for _, p := range d.permanent {
		d.drawPoint(p)
	}
	for _, p := range d.temporary {
		d.drawPoint(p)
	}

	d.screen.Show()
}

func (d *Display) drawHeatmap(h viz.HeatmapPoint) {
	for row := range h.Grid {
		for col := range h.Grid[row] {
			weight := h.Grid[row][col]
			x, y := d.worldToScreen(h.Origin.X+float64(col), h.Origin.Y+float64(row))
			if !d.inBounds(x, y) {
				continue
			}
			style := tcell.StyleDefault.Background(heatColor(weight))
			d.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (d *Display) drawPoint(p viz.DataPoint) {
	x, y := d.worldToScreen(p.Location.X, p.Location.Y)
	if !d.inBounds(x, y) {
		return
	}
	style := tcell.StyleDefault.Foreground(colorToTcell(p.Color))
	d.screen.SetContent(x, y, '█', nil, style)
}

func (d *Display) worldToScreen(x, y float64) (int, int) {
	cx, cy := d.width/2, d.height/2
	return cx + int(math.Round(x*cellsPerUnit)), cy - int(math.Round(y*cellsPerUnit))
}

func (d *Display) inBounds(x, y int) bool {
	return x >= 0 && x < d.width && y >= 0 && y < d.height
}

func colorToTcell(c viz.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R*255), int32(c.G*255), int32(c.B*255))
}

// heatColor maps an occupancy weight to a greyscale shade: positive
// (obstacle-leaning) weights render lighter, negative (free-leaning)
// weights darker.
func heatColor(weight float64) tcell.Color {
	shade := 128 + weight*4
	if shade < 0 {
		shade = 0
	}
	if shade > 255 {
		shade = 255
	}
	v := int32(shade)
	return tcell.NewRGBColor(v, v, v)
}
