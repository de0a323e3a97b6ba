package trace

import (
	"github.com/golang/geo/r3"

	"github.com/san-kum/armsim/internal/kinematics"
)

// Frame is one sampled instant of a trace.
type Frame struct {
	Time     float64
	Angles   kinematics.JointAngles
	Position r3.Vector
}

// PoseFunc maps elapsed seconds to a pose.
type PoseFunc func(t float64) kinematics.JointAngles

type Metric interface {
	Name() string
	Observe(a kinematics.JointAngles, p r3.Vector, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(f Frame)
}

type Config struct {
	Dt       float64
	Duration float64
}

func DefaultConfig() Config {
	return Config{Dt: 0.05, Duration: 20}
}

type Result struct {
	Times     []float64
	Angles    []kinematics.JointAngles
	Positions []r3.Vector
	Metrics   map[string]float64
}

// Len is the number of frames.
func (r *Result) Len() int { return len(r.Times) }

// Frame returns the i-th frame.
func (r *Result) Frame(i int) Frame {
	return Frame{Time: r.Times[i], Angles: r.Angles[i], Position: r.Positions[i]}
}

// Series extracts one coordinate of the end-effector path: 0=x, 1=y, 2=z.
func (r *Result) Series(axis int) []float64 {
	out := make([]float64, len(r.Positions))
	for i, p := range r.Positions {
		switch axis {
		case 0:
			out[i] = p.X
		case 1:
			out[i] = p.Y
		default:
			out[i] = p.Z
		}
	}
	return out
}
