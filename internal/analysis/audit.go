package analysis

import (
	"sync"

	"github.com/san-kum/armsim/internal/kinematics"
)

// Tolerance is the largest acceptable gap between the closed-form position
// and the frame-chain tip.
const Tolerance = 1e-6

type Audit struct {
	Samples  int
	MaxError float64
	Worst    kinematics.JointAngles
}

func (a *Audit) Passed() bool { return a.MaxError <= Tolerance }

// AuditConsistency compares ComputeEndEffectorPosition with the tip obtained
// by composing the joint frame rotations along the chain.
func AuditConsistency(l kinematics.LinkLengths, stepDeg float64) (*Audit, error) {
	g, err := NewGrid(stepDeg)
	if err != nil {
		return nil, err
	}

	chain := kinematics.NewChain(l)
	audit := &Audit{Samples: g.Len()}

	var mu sync.Mutex
	ParallelFor(g.Len(), minChunk, func(start, end int) {
		var worst float64
		var at kinematics.JointAngles
		for i := start; i < end; i++ {
			a := g.At(i)
			fk := kinematics.ComputeEndEffectorPosition(a, l)
			tip := chain.PoseAngles(a).Tip()
			if d := fk.Sub(tip).Norm(); d > worst {
				worst, at = d, a
			}
		}

		mu.Lock()
		if worst > audit.MaxError {
			audit.MaxError, audit.Worst = worst, at
		}
		mu.Unlock()
	})

	return audit, nil
}
