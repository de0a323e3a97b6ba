package kinematics

import (
	"fmt"
	"math"
	"strings"
)

// DOF is the number of independent joints.
const DOF = 3

type Joint int

const (
	Base Joint = iota
	Shoulder
	Elbow
)

// Joints lists every joint in chain order.
var Joints = [DOF]Joint{Base, Shoulder, Elbow}

// Valid reports whether j is one of Base, Shoulder or Elbow.
func (j Joint) Valid() bool { return j >= Base && j <= Elbow }

func (j Joint) String() string {
	switch j {
	case Base:
		return "base"
	case Shoulder:
		return "shoulder"
	case Elbow:
		return "elbow"
	default:
		return fmt.Sprintf("joint(%d)", int(j))
	}
}

// ParseJoint resolves a joint by name, case-insensitively.
func ParseJoint(name string) (Joint, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "base", "theta1", "t1":
		return Base, nil
	case "shoulder", "theta2", "t2":
		return Shoulder, nil
	case "elbow", "theta3", "t3":
		return Elbow, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownJoint, name)
}

// Limit is an inclusive range in degrees.
type Limit struct {
	Min float64
	Max float64
}

// Clamp pins v into the range. NaN passes through unchanged; callers that
// store angles are expected to gate it.
func (l Limit) Clamp(v float64) float64 {
	if v < l.Min {
		return l.Min
	}
	if v > l.Max {
		return l.Max
	}
	return v
}

func (l Limit) Contains(v float64) bool {
	return v >= l.Min && v <= l.Max
}

// Limits holds the valid range of each joint.
var Limits = [DOF]Limit{
	Base:     {Min: -180, Max: 180},
	Shoulder: {Min: -90, Max: 90},
	Elbow:    {Min: -120, Max: 120},
}

// LimitOf returns the range for j.
func LimitOf(j Joint) Limit {
	if !j.Valid() {
		return Limit{}
	}
	return Limits[j]
}

// JointAngles is a joint configuration in degrees.
type JointAngles struct {
	Base     float64 `json:"base" yaml:"base"`
	Shoulder float64 `json:"shoulder" yaml:"shoulder"`
	Elbow    float64 `json:"elbow" yaml:"elbow"`
}

// DefaultAngles is the resting pose.
func DefaultAngles() JointAngles {
	return JointAngles{Base: 0, Shoulder: 30, Elbow: -45}
}

func (a JointAngles) Get(j Joint) float64 {
	switch j {
	case Base:
		return a.Base
	case Shoulder:
		return a.Shoulder
	case Elbow:
		return a.Elbow
	}
	return 0
}

// With returns a copy of a with joint j set to v.
func (a JointAngles) With(j Joint, v float64) JointAngles {
	switch j {
	case Base:
		a.Base = v
	case Shoulder:
		a.Shoulder = v
	case Elbow:
		a.Elbow = v
	}
	return a
}

// Clamp pins every joint into its range.
func (a JointAngles) Clamp() JointAngles {
	return JointAngles{
		Base:     Limits[Base].Clamp(a.Base),
		Shoulder: Limits[Shoulder].Clamp(a.Shoulder),
		Elbow:    Limits[Elbow].Clamp(a.Elbow),
	}
}

// InRange reports whether every joint lies within its limit.
func (a JointAngles) InRange() bool {
	for _, j := range Joints {
		if !Limits[j].Contains(a.Get(j)) {
			return false
		}
	}
	return true
}

// IsValid reports whether all angles are finite.
func (a JointAngles) IsValid() bool {
	for _, v := range a.Slice() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (a JointAngles) Slice() []float64 {
	return []float64{a.Base, a.Shoulder, a.Elbow}
}

func (a JointAngles) String() string {
	return fmt.Sprintf("(base=%.1f°, shoulder=%.1f°, elbow=%.1f°)", a.Base, a.Shoulder, a.Elbow)
}

// LinkLengths are the fixed segment lengths: pillar height, upper arm and
// forearm.
type LinkLengths struct {
	L1 float64 `json:"l1"`
	L2 float64 `json:"l2"`
	L3 float64 `json:"l3"`
}

func DefaultLinkLengths() LinkLengths {
	return LinkLengths{L1: 1.0, L2: 0.8, L3: 0.6}
}

// MaxReach is the horizontal reach with the arm fully extended.
func (l LinkLengths) MaxReach() float64 {
	return l.L2 + l.L3
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
