package analysis

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/armsim/internal/kinematics"
)

const minChunk = 512

// Bounds is an axis-aligned box.
type Bounds struct {
	Min r3.Vector
	Max r3.Vector
}

type Workspace struct {
	Step      float64
	Positions []r3.Vector
	Bounds    Bounds

	// Reach is horizontal distance from the base axis.
	MinReach  float64
	MaxReach  float64
	MeanReach float64
	StdReach  float64
}

// Len is the number of sampled poses.
func (w *Workspace) Len() int { return len(w.Positions) }

// SampleWorkspace evaluates forward kinematics at every grid point.
func SampleWorkspace(l kinematics.LinkLengths, stepDeg float64) (*Workspace, error) {
	g, err := NewGrid(stepDeg)
	if err != nil {
		return nil, err
	}

	n := g.Len()
	positions := make([]r3.Vector, n)
	reach := make([]float64, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	zs := make([]float64, n)

	ParallelFor(n, minChunk, func(start, end int) {
		for i := start; i < end; i++ {
			p := kinematics.ComputeEndEffectorPosition(g.At(i), l)
			positions[i] = p
			reach[i] = math.Hypot(p.X, p.Y)
			xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
		}
	})

	mean, std := stat.MeanStdDev(reach, nil)
	return &Workspace{
		Step:      stepDeg,
		Positions: positions,
		Bounds: Bounds{
			Min: r3.Vector{X: floats.Min(xs), Y: floats.Min(ys), Z: floats.Min(zs)},
			Max: r3.Vector{X: floats.Max(xs), Y: floats.Max(ys), Z: floats.Max(zs)},
		},
		MinReach:  floats.Min(reach),
		MaxReach:  floats.Max(reach),
		MeanReach: mean,
		StdReach:  std,
	}, nil
}
