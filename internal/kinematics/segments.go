package kinematics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

type SegmentKind int

const (
	Cylinder SegmentKind = iota
	Sphere
	Box
)

func (k SegmentKind) String() string {
	switch k {
	case Cylinder:
		return "cylinder"
	case Sphere:
		return "sphere"
	default:
		return "box"
	}
}

// Segment is one drawable piece of the arm in world coordinates.
type Segment struct {
	Name      string
	Kind      SegmentKind
	Start     r3.Vector
	End       r3.Vector
	Center    r3.Vector
	Radius    float64
	Size      r3.Vector // box extents, local X/Y/Z
	Transform mgl64.Mat4
}

// Visual proportions of the rendered arm.
const (
	BaseHeight     = 0.2
	BaseRadius     = 0.35
	PillarRadius   = 0.05
	ShoulderRadius = 0.08
	UpperRadius    = 0.04
	ElbowRadius    = 0.06
	ForeRadius     = 0.03
)

// EffectorSize is the end-effector box, longest along the forearm.
var EffectorSize = r3.Vector{X: 0.15, Y: 0.1, Z: 0.05}

// Segments lays out the visual chain for a pose: base, pillar, shoulder,
// upper arm, elbow, forearm, end-effector. Each link's center sits half its
// length along its parent's link axis.
func (c *Chain) Segments(p Pose) []Segment {
	l := c.lengths
	segs := make([]Segment, 0, 7)

	link := func(name, frame string, axis mgl64.Vec3, length, radius float64) Segment {
		m, _ := p.World(frame)
		return Segment{
			Name:      name,
			Kind:      Cylinder,
			Start:     p.Origin(frame),
			End:       p.Apply(frame, axis.Mul(length)),
			Center:    p.Apply(frame, axis.Mul(length/2)),
			Radius:    radius,
			Transform: m.Mul4(mgl64.Translate3D(axis[0]*length/2, axis[1]*length/2, axis[2]*length/2)),
		}
	}
	joint := func(name, frame string, radius float64) Segment {
		m, _ := p.World(frame)
		o := p.Origin(frame)
		return Segment{Name: name, Kind: Sphere, Start: o, End: o, Center: o, Radius: radius, Transform: m}
	}

	baseW, _ := p.World(FrameBase)
	segs = append(segs, Segment{
		Name:      "base",
		Kind:      Cylinder,
		Start:     p.Apply(FrameBase, mgl64.Vec3{0, 0, -BaseHeight / 2}),
		End:       p.Apply(FrameBase, mgl64.Vec3{0, 0, BaseHeight / 2}),
		Center:    p.Origin(FrameBase),
		Radius:    BaseRadius,
		Transform: baseW,
	})
	segs = append(segs, link("link1", FrameBase, mgl64.Vec3{0, 0, 1}, l.L1, PillarRadius))
	segs = append(segs, joint("shoulder", FrameShoulder, ShoulderRadius))
	segs = append(segs, link("link2", FrameShoulder, mgl64.Vec3{1, 0, 0}, l.L2, UpperRadius))
	segs = append(segs, joint("elbow", FrameElbow, ElbowRadius))
	segs = append(segs, link("link3", FrameElbow, mgl64.Vec3{1, 0, 0}, l.L3, ForeRadius))

	toolW, _ := p.World(FrameTool)
	tip := p.Tip()
	segs = append(segs, Segment{
		Name:      "end_effector",
		Kind:      Box,
		Start:     tip,
		End:       tip,
		Center:    tip,
		Size:      EffectorSize,
		Transform: toolW,
	})
	return segs
}
