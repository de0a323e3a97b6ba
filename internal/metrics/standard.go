package metrics

import (
	"github.com/golang/geo/r3"

	"github.com/san-kum/armsim/internal/kinematics"
)

// Metric matches trace.Metric; repeated here so this package stays free of
// the recorder.
type Metric interface {
	Name() string
	Observe(a kinematics.JointAngles, p r3.Vector, t float64)
	Value() float64
	Reset()
}

// Standard is the set recorded with every saved run.
func Standard() []Metric {
	h := NewHeightRange()
	return []Metric{
		NewPathLength(),
		NewMaxReach(),
		h.MinHeight(),
		h.MaxHeight(),
	}
}
