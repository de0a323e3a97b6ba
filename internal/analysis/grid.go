package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/armsim/internal/kinematics"
)

// MaxGridSamples bounds a grid; a 1° step (about 15.7 million triples) fits.
const MaxGridSamples = 20_000_000

// Grid enumerates joint triples over every joint's full range.
type Grid struct {
	axes [kinematics.DOF][]float64
}

// NewGrid samples each range from Min to Max in stepDeg increments. Max is
// always included even when the step does not land on it.
func NewGrid(stepDeg float64) (*Grid, error) {
	if !(stepDeg > 0) || math.IsInf(stepDeg, 0) {
		return nil, fmt.Errorf("step must be positive, got %v", stepDeg)
	}

	total := 1.0
	for _, j := range kinematics.Joints {
		total *= axisLen(kinematics.LimitOf(j), stepDeg)
	}
	if total > MaxGridSamples {
		return nil, fmt.Errorf("step %v gives %.3g samples, more than %d", stepDeg, total, MaxGridSamples)
	}

	g := &Grid{}
	for _, j := range kinematics.Joints {
		g.axes[j] = axis(kinematics.LimitOf(j), stepDeg)
	}
	return g, nil
}

// axisLen is the upper bound on len(axis(l, step)), computed in float64 so
// tiny steps cannot overflow.
func axisLen(l kinematics.Limit, step float64) float64 {
	return math.Floor((l.Max-l.Min)/step+1e-9) + 2
}

func axis(l kinematics.Limit, step float64) []float64 {
	n := int(math.Floor((l.Max-l.Min)/step + 1e-9))
	vals := make([]float64, 0, n+2)
	for i := 0; i <= n; i++ {
		vals = append(vals, l.Min+float64(i)*step)
	}
	if last := vals[len(vals)-1]; l.Max-last > 1e-9 {
		vals = append(vals, l.Max)
	}
	return vals
}

func (g *Grid) Len() int {
	return len(g.axes[kinematics.Base]) * len(g.axes[kinematics.Shoulder]) * len(g.axes[kinematics.Elbow])
}

// At decodes a flat index, elbow varying fastest.
func (g *Grid) At(i int) kinematics.JointAngles {
	ne := len(g.axes[kinematics.Elbow])
	ns := len(g.axes[kinematics.Shoulder])
	return kinematics.JointAngles{
		Base:     g.axes[kinematics.Base][i/(ns*ne)],
		Shoulder: g.axes[kinematics.Shoulder][(i/ne)%ns],
		Elbow:    g.axes[kinematics.Elbow][i%ne],
	}
}
