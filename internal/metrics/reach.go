package metrics

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/san-kum/armsim/internal/kinematics"
)

// MaxReach is the largest horizontal distance of the end-effector from the
// base axis.
type MaxReach struct {
	name string
	max  float64
}

func NewMaxReach() *MaxReach {
	return &MaxReach{name: "max_reach"}
}

func (m *MaxReach) Name() string { return m.name }

func (m *MaxReach) Observe(a kinematics.JointAngles, pos r3.Vector, t float64) {
	m.max = math.Max(m.max, math.Hypot(pos.X, pos.Y))
}

func (m *MaxReach) Value() float64 { return m.max }

func (m *MaxReach) Reset() { m.max = 0 }
