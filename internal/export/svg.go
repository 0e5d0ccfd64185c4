package export

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/san-kum/emviz/internal/viz"
)

// CanvasToSVG draws every lit Braille dot as a circle in its cell colour.
func CanvasToSVG(c *viz.Canvas, scale float64, theme viz.Theme) string {
	if c == nil {
		return ""
	}
	dw, dh := c.Dots()
	width, height := float64(dw)*scale, float64(dh)*scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, theme.Background)

	r := scale * 0.4
	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			if !c.Lit(x, y) {
				continue
			}
			_, col := c.Cell(x/2, y/4)
			fill := string(theme.Text)
			if col != 0 {
				fill = col.Hex()
			}
			fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, float64(x)*scale+scale/2, float64(y)*scale+scale/2, r, fill)
		}
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}

// WireframeToSVG projects w through cam into a width x height vector
// drawing, farthest edges first, with markers drawn as text.
func WireframeToSVG(w *viz.Wireframe, cam viz.Camera, width, height int, theme viz.Theme) string {
	if w == nil {
		return ""
	}
	type line struct {
		x0, y0, x1, y1, depth float64
		stroke                string
	}
	var lines []line
	for _, e := range w.Edges {
		x0, y0, d0, ok0 := cam.Project(e.A, width, height)
		x1, y1, d1, ok1 := cam.Project(e.B, width, height)
		if !ok0 || !ok1 {
			continue
		}
		lines = append(lines, line{x0, y0, x1, y1, (d0 + d1) / 2, e.Color.Hex()})
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].depth > lines[j].depth })

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<g stroke-width="1.2" stroke-linecap="round">
`, width, height, width, height, theme.Background)
	for _, l := range lines {
		fmt.Fprintf(&sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>
`, l.x0, l.y0, l.x1, l.y1, l.stroke)
	}
	sb.WriteString("</g>\n<g font-family=\"sans-serif\" font-size=\"14\" font-weight=\"bold\" text-anchor=\"middle\">\n")
	for _, m := range w.Markers {
		x, y, _, ok := cam.Project(m.At, width, height)
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, `<text x="%.1f" y="%.1f" fill="%s">%s</text>
`, x, y, m.Color.Hex(), html.EscapeString(m.Text))
	}
	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}
