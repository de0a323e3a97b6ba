package viz

import (
	"math"
	"sort"

	"github.com/golang/geo/r3"

	"github.com/san-kum/armsim/internal/kinematics"
)

const (
	defaultYaw   = -0.6
	defaultPitch = 0.35
	viewDistance = 12.0
	minZoom      = 0.2
	maxZoom      = 5.0
)

// Camera projects the Z-up world onto the canvas. The view looks along
// +Y at Target, turned by Yaw about world Z and tilted by Pitch; Roll spins
// the image in the screen plane.
type Camera struct {
	Target           r3.Vector
	Yaw, Pitch, Roll float64
	Zoom             float64
	Distance         float64
}

func NewCamera() *Camera {
	return &Camera{
		Target:   r3.Vector{Z: 1.0},
		Yaw:      defaultYaw,
		Pitch:    defaultPitch,
		Zoom:     1.0,
		Distance: viewDistance,
	}
}

func (c *Camera) RotateX(a float64) { c.Pitch += a }
func (c *Camera) RotateY(a float64) { c.Yaw += a }
func (c *Camera) RotateZ(a float64) { c.Roll += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(maxZoom, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(minZoom, c.Zoom/1.2) }

// Reset restores the default viewpoint.
func (c *Camera) Reset() { *c = *NewCamera() }

// toView maps a world point to view space: X right, Y up, Z toward the
// viewer.
func (c *Camera) toView(p r3.Vector) r3.Vector {
	p = p.Sub(c.Target)

	cy, sy := math.Cos(c.Yaw), math.Sin(c.Yaw)
	p.X, p.Y = p.X*cy-p.Y*sy, p.X*sy+p.Y*cy

	v := r3.Vector{X: p.X, Y: p.Z, Z: -p.Y}

	cx, sx := math.Cos(c.Pitch), math.Sin(c.Pitch)
	v.Y, v.Z = v.Y*cx-v.Z*sx, v.Y*sx+v.Z*cx

	cz, sz := math.Cos(c.Roll), math.Sin(c.Roll)
	v.X, v.Y = v.X*cz-v.Y*sz, v.X*sz+v.Y*cz
	return v
}

// Project converts world coordinates to pixel coordinates on a sw x sh
// surface. Returns x, y, depth, and visibility.
func (c *Camera) Project(p r3.Vector, sw, sh int) (int, int, float64, bool) {
	v := c.toView(p)
	if v.Z >= c.Distance-0.1 {
		return 0, 0, 0, false
	}
	persp := c.Distance / (c.Distance - v.Z)
	scale := math.Min(float64(sw), float64(sh)) / 3.0 * c.Zoom
	sx := int(math.Round(v.X*persp*scale)) + sw/2
	sy := int(math.Round(-v.Y*persp*scale)) + sh/2
	return sx, sy, v.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

type Edge struct {
	Start, End r3.Vector
	Weight     int // pixel radius of the stroke, 0 for a hairline
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe { return &Wireframe{Edges: make([]Edge, 0)} }

func (w *Wireframe) AddEdge(s, e r3.Vector, weight int) {
	w.Edges = append(w.Edges, Edge{s, e, weight})
}

func (w *Wireframe) AddPoint(p r3.Vector, weight int) {
	w.Edges = append(w.Edges, Edge{p, p, weight})
}

func (w *Wireframe) Merge(o *Wireframe) { w.Edges = append(w.Edges, o.Edges...) }
func (w *Wireframe) Clear()             { w.Edges = w.Edges[:0] }

type projectedEdge struct {
	x1, y1, x2, y2 int
	depth          float64
	weight         int
}

// Render3D draws the wireframe back to front.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	pw, ph := c.Pixels()
	proj := make([]projectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, pw, ph)
		x2, y2, d2, v2 := cam.Project(e.End, pw, ph)
		if v1 || v2 {
			proj = append(proj, projectedEdge{x1, y1, x2, y2, (d1 + d2) / 2, e.Weight})
		}
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })
	for _, e := range proj {
		switch {
		case e.x1 == e.x2 && e.y1 == e.y2:
			c.FillDisc(e.x1, e.y1, e.weight)
		case e.weight > 0:
			for o := -e.weight / 2; o <= e.weight/2; o++ {
				c.DrawLine(e.x1+o, e.y1, e.x2+o, e.y2)
			}
		default:
			c.DrawLine(e.x1, e.y1, e.x2, e.y2)
		}
	}
}

// GroundWireframe is a square floor grid centred on the base.
func GroundWireframe(half float64, cells int) *Wireframe {
	w := NewWireframe()
	step := 2 * half / float64(cells)
	for i := 0; i <= cells; i++ {
		o := -half + float64(i)*step
		w.AddEdge(r3.Vector{X: o, Y: -half}, r3.Vector{X: o, Y: half}, 0)
		w.AddEdge(r3.Vector{X: -half, Y: o}, r3.Vector{X: half, Y: o}, 0)
	}
	return w
}

func AxesWireframe(l float64) *Wireframe {
	w := NewWireframe()
	o := r3.Vector{}
	w.AddEdge(o, r3.Vector{X: l}, 0)
	w.AddEdge(o, r3.Vector{Y: l}, 0)
	w.AddEdge(o, r3.Vector{Z: l}, 0)
	return w
}

// ArmWireframe strokes each segment of the arm: links as lines whose weight
// follows their radius, joints as dots, the base as a ring.
func ArmWireframe(segs []kinematics.Segment) *Wireframe {
	w := NewWireframe()
	for _, s := range segs {
		switch {
		case s.Name == "base":
			addRing(w, s.Start, s.Radius, 16)
			addRing(w, s.End, s.Radius, 16)
		case s.Kind == kinematics.Cylinder:
			w.AddEdge(s.Start, s.End, weightOf(s.Radius))
		case s.Kind == kinematics.Sphere:
			w.AddPoint(s.Center, weightOf(s.Radius)+1)
		default:
			w.AddPoint(s.Center, 2)
		}
	}
	return w
}

func weightOf(radius float64) int {
	return int(math.Round(radius * 20))
}

func addRing(w *Wireframe, center r3.Vector, r float64, n int) {
	prev := center.Add(r3.Vector{X: r})
	for i := 1; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		next := center.Add(r3.Vector{X: r * math.Cos(a), Y: r * math.Sin(a)})
		w.AddEdge(prev, next, 0)
		prev = next
	}
}
