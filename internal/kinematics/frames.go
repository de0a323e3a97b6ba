package kinematics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// Joint axes in the parent joint's local frame. PitchAxis is horizontal and
// perpendicular to the arm's plane; its sign makes positive angles raise
// the arm.
var (
	YawAxis   = mgl64.Vec3{0, 0, 1}
	PitchAxis = mgl64.Vec3{0, -1, 0}
)

// JointRotation is the local rotation applied at a joint pivot.
type JointRotation struct {
	Joint Joint
	Axis  mgl64.Vec3
	Angle float64 // radians
}

func (r JointRotation) Matrix() mgl64.Mat4 {
	return mgl64.HomogRotate3D(r.Angle, r.Axis)
}

func (r JointRotation) Degrees() float64 {
	return Degrees(r.Angle)
}

// FrameRotations holds one rotation per joint, indexed by Joint.
type FrameRotations [DOF]JointRotation

func (f FrameRotations) Of(j Joint) JointRotation {
	return f[j]
}

// ComputeJointFrameRotations returns the local rotation of each joint frame.
// The elbow rotation is relative to the shoulder frame, so its world
// orientation is base∘shoulder∘elbow once composed by a [Chain].
func ComputeJointFrameRotations(a JointAngles) FrameRotations {
	return FrameRotations{
		Base:     {Joint: Base, Axis: YawAxis, Angle: Radians(a.Base)},
		Shoulder: {Joint: Shoulder, Axis: PitchAxis, Angle: Radians(a.Shoulder)},
		Elbow:    {Joint: Elbow, Axis: PitchAxis, Angle: Radians(a.Elbow)},
	}
}

const (
	FrameWorld    = "world"
	FrameBase     = "base"
	FrameShoulder = "shoulder"
	FrameElbow    = "elbow"
	FrameTool     = "tool"
)

// Frame is a node in the joint tree: a fixed offset from its parent's
// origin, followed by the rotation of its joint if it has one.
type Frame struct {
	Name     string
	Parent   *Frame
	Offset   mgl64.Vec3
	Joint    Joint
	Actuated bool
}

// Local returns the transform from this frame to its parent given the
// joint rotations.
func (f *Frame) Local(rot FrameRotations) mgl64.Mat4 {
	m := mgl64.Translate3D(f.Offset[0], f.Offset[1], f.Offset[2])
	if f.Actuated {
		m = m.Mul4(rot[f.Joint].Matrix())
	}
	return m
}

// Chain is the arm's frame tree in parent-before-child order.
type Chain struct {
	lengths LinkLengths
	frames  []*Frame
}

// NewChain builds world → base → shoulder → elbow → tool.
func NewChain(l LinkLengths) *Chain {
	world := &Frame{Name: FrameWorld}
	base := &Frame{Name: FrameBase, Parent: world, Joint: Base, Actuated: true}
	shoulder := &Frame{Name: FrameShoulder, Parent: base, Offset: mgl64.Vec3{0, 0, l.L1}, Joint: Shoulder, Actuated: true}
	elbow := &Frame{Name: FrameElbow, Parent: shoulder, Offset: mgl64.Vec3{l.L2, 0, 0}, Joint: Elbow, Actuated: true}
	tool := &Frame{Name: FrameTool, Parent: elbow, Offset: mgl64.Vec3{l.L3, 0, 0}}

	return &Chain{
		lengths: l,
		frames:  []*Frame{world, base, shoulder, elbow, tool},
	}
}

func (c *Chain) Lengths() LinkLengths { return c.lengths }
func (c *Chain) Frames() []*Frame     { return c.frames }

// Pose composes every frame's world transform.
func (c *Chain) Pose(rot FrameRotations) Pose {
	p := Pose{
		names: make([]string, 0, len(c.frames)),
		world: make(map[string]mgl64.Mat4, len(c.frames)),
	}
	for _, f := range c.frames {
		local := f.Local(rot)
		if f.Parent != nil {
			local = p.world[f.Parent.Name].Mul4(local)
		}
		p.names = append(p.names, f.Name)
		p.world[f.Name] = local
	}
	return p
}

// PoseAngles is shorthand for Pose(ComputeJointFrameRotations(a)).
func (c *Chain) PoseAngles(a JointAngles) Pose {
	return c.Pose(ComputeJointFrameRotations(a))
}

// Pose is a snapshot of world transforms for every frame in a chain.
type Pose struct {
	names []string
	world map[string]mgl64.Mat4
}

// FramePose pairs a frame name with its world transform.
type FramePose struct {
	Name  string
	World mgl64.Mat4
}

func (p Pose) Frames() []FramePose {
	out := make([]FramePose, len(p.names))
	for i, n := range p.names {
		out[i] = FramePose{Name: n, World: p.world[n]}
	}
	return out
}

// World returns the world transform of the named frame.
func (p Pose) World(name string) (mgl64.Mat4, bool) {
	m, ok := p.world[name]
	return m, ok
}

// Origin is the world position of the named frame's origin. Unknown names
// yield the zero vector.
func (p Pose) Origin(name string) r3.Vector {
	m, ok := p.world[name]
	if !ok {
		return r3.Vector{}
	}
	return toVector(m.Col(3).Vec3())
}

// Tip is the tool frame origin.
func (p Pose) Tip() r3.Vector {
	return p.Origin(FrameTool)
}

// Apply maps a point in the named frame's local coordinates to world.
func (p Pose) Apply(name string, local mgl64.Vec3) r3.Vector {
	m, ok := p.world[name]
	if !ok {
		return r3.Vector{}
	}
	return toVector(m.Mul4x1(local.Vec4(1)).Vec3())
}

func toVector(v mgl64.Vec3) r3.Vector {
	return r3.Vector{X: v[0], Y: v[1], Z: v[2]}
}
