// Package metrics holds scalar summaries of a recorded end-effector trace.
package metrics

import (
	"github.com/golang/geo/r3"

	"github.com/san-kum/armsim/internal/kinematics"
)

// PathLength is the polyline length travelled by the end-effector.
type PathLength struct {
	name    string
	last    r3.Vector
	total   float64
	samples int
}

func NewPathLength() *PathLength {
	return &PathLength{
		name: "path_length",
	}
}

func (p *PathLength) Name() string {
	return p.name
}

func (p *PathLength) Observe(a kinematics.JointAngles, pos r3.Vector, t float64) {
	if p.samples > 0 {
		p.total += pos.Sub(p.last).Norm()
	}
	p.last = pos
	p.samples++
}

func (p *PathLength) Value() float64 {
	return p.total
}

func (p *PathLength) Reset() {
	p.last = r3.Vector{}
	p.total = 0
	p.samples = 0
}
