package metrics

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/san-kum/armsim/internal/kinematics"
)

// HeightRange tracks the vertical extent of the trace. A single tracker
// backs two metrics, MinHeight and MaxHeight, so each reports under its own
// name.
type HeightRange struct {
	min, max float64
	samples  int
}

func NewHeightRange() *HeightRange {
	return &HeightRange{}
}

func (h *HeightRange) Observe(a kinematics.JointAngles, pos r3.Vector, t float64) {
	if h.samples == 0 {
		h.min, h.max = pos.Z, pos.Z
	} else {
		h.min = math.Min(h.min, pos.Z)
		h.max = math.Max(h.max, pos.Z)
	}
	h.samples++
}

func (h *HeightRange) Reset() {
	h.min, h.max = 0, 0
	h.samples = 0
}

func (h *HeightRange) Min() float64 { return h.min }
func (h *HeightRange) Max() float64 { return h.max }

// MinHeight returns the metric view that owns observation. Register it and
// MaxHeight together; only this one feeds the shared tracker.
func (h *HeightRange) MinHeight() *HeightView {
	return &HeightView{name: "min_height", r: h, owner: true}
}

func (h *HeightRange) MaxHeight() *HeightView {
	return &HeightView{name: "max_height", r: h}
}

type HeightView struct {
	name  string
	r     *HeightRange
	owner bool
}

func (v *HeightView) Name() string { return v.name }

func (v *HeightView) Observe(a kinematics.JointAngles, pos r3.Vector, t float64) {
	if v.owner {
		v.r.Observe(a, pos, t)
	}
}

func (v *HeightView) Value() float64 {
	if v.owner {
		return v.r.Min()
	}
	return v.r.Max()
}

func (v *HeightView) Reset() {
	if v.owner {
		v.r.Reset()
	}
}
