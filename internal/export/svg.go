// Package export renders canvases and end-effector paths as SVG.
package export

import (
	"fmt"
	"strings"

	"github.com/golang/geo/r3"
)

const (
	background   = "#0a0a0a"
	defaultColor = "#00ff00"
	brailleBlank = 0x2800
)

// Braille dot-to-bit mapping
var pixelMap = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// BrailleGrid is a grid of braille cells.
type BrailleGrid interface {
	Size() (width, height int)
	Cell(col, row int) rune
}

// CanvasToSVG draws every lit braille dot as a circle. Each cell spans
// 2x4 dots of scale units.
func CanvasToSVG(canvas BrailleGrid, scale float64, color string) string {
	if canvas == nil {
		return ""
	}
	if color == "" {
		color = defaultColor
	}

	cols, rows := canvas.Size()
	width := float64(cols) * scale * 2
	height := float64(rows) * scale * 4

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, background, color)

	dotRadius := scale * 0.4
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			r := canvas.Cell(col, row)
			if r <= brailleBlank {
				continue
			}
			pattern := r - brailleBlank

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					cx := baseX + float64(dx)*scale + scale/2
					cy := baseY + float64(dy)*scale + scale/2
					fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius)
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// Plane selects the two coordinates a path is projected onto.
type Plane int

const (
	PlaneXY Plane = iota // top view
	PlaneXZ              // side view
	PlaneYZ              // front view
)

func (p Plane) project(v r3.Vector) (float64, float64) {
	switch p {
	case PlaneXZ:
		return v.X, v.Z
	case PlaneYZ:
		return v.Y, v.Z
	default:
		return v.X, v.Y
	}
}

// PathToSVG draws an end-effector path as a polyline fitted to the image
// with 10% padding.
func PathToSVG(points []r3.Vector, plane Plane, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = plane.project(p)
	}

	minX, maxX := bounds(xs)
	minY, maxY := bounds(ys)
	rangeX := pad(&minX, &maxX)
	rangeY := pad(&minY, &maxY)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, background, strokeColor)

	for i := range xs {
		x := (xs[i] - minX) / rangeX * float64(width)
		y := float64(height) - (ys[i]-minY)/rangeY*float64(height)
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

func bounds(v []float64) (float64, float64) {
	lo, hi := v[0], v[0]
	for _, x := range v {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi
}

func pad(lo, hi *float64) float64 {
	r := *hi - *lo
	if r == 0 {
		r = 1
	}
	*lo -= r * 0.1
	*hi += r * 0.1
	return *hi - *lo
}
