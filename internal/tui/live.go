package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/emviz/internal/scene"
	"github.com/san-kum/emviz/internal/viz"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer streams an orbiting wireframe to a plain terminal without
// taking over input. It is used by `emviz render --spin`.
type LiveRenderer struct {
	out       io.Writer
	title     string
	frameRate int
	width     int
	height    int
	color     bool
}

func NewLiveRenderer(out io.Writer, title string, frameRate, width, height int, color bool) *LiveRenderer {
	if frameRate < 1 {
		frameRate = 30
	}
	return &LiveRenderer{
		out:       out,
		title:     title,
		frameRate: frameRate,
		width:     width,
		height:    height,
		color:     color,
	}
}

// Run draws frames until d has elapsed or ctx is done. The orbit advances
// by the wall-clock time between frames.
func (r *LiveRenderer) Run(ctx context.Context, root *scene.Root, orbit *viz.Orbit, d time.Duration) error {
	fmt.Fprint(r.out, hideCursor)
	defer fmt.Fprint(r.out, showCursor)

	frame := time.Second / time.Duration(r.frameRate)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	start := time.Now()
	last := start
	wf := viz.Build(root)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			orbit.Tick(now.Sub(last).Seconds())
			last = now
			r.render(wf, orbit, now.Sub(start))
			if now.Sub(start) >= d {
				return nil
			}
		}
	}
}

func (r *LiveRenderer) render(wf *viz.Wireframe, orbit *viz.Orbit, elapsed time.Duration) {
	c := viz.NewCanvas(r.width, r.height)
	viz.Render(c, wf, orbit.Camera())

	var b strings.Builder
	b.WriteString(clearScreen)
	fmt.Fprintf(&b, "  %s  t=%.1fs  az=%.2f\n", r.title, elapsed.Seconds(), orbit.Azimuth())
	b.WriteString("  " + strings.Repeat("─", r.width) + "\n")
	body := c.String()
	if r.color {
		body = c.Render()
	}
	for _, row := range strings.Split(strings.TrimSuffix(body, "\n"), "\n") {
		b.WriteString("  " + row + "\n")
	}
	b.WriteString("  " + strings.Repeat("─", r.width) + "\n")
	fmt.Fprint(r.out, b.String())
}
