package analysis

import (
	"math"
	"sync/atomic"
	"testing"

	"github.com/san-kum/armsim/internal/kinematics"
)

func TestParallelForCoversRange(t *testing.T) {
	for _, n := range []int{0, 1, 7, 1000, 4097} {
		hits := make([]int32, n)
		ParallelFor(n, 16, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			if h != 1 {
				t.Fatalf("n=%d: index %d visited %d times", n, i, h)
			}
		}
	}
}

func TestGridIncludesEndpoints(t *testing.T) {
	g, err := NewGrid(50)
	if err != nil {
		t.Fatal(err)
	}

	// base: -180..180 step 50 lands on 170, so 180 is appended.
	base := g.axes[kinematics.Base]
	if base[0] != -180 || base[len(base)-1] != 180 {
		t.Errorf("base axis = %v", base)
	}
	if len(base) != 9 {
		t.Errorf("expected 9 base samples, got %d", len(base))
	}

	first, last := g.At(0), g.At(g.Len()-1)
	if first != (kinematics.JointAngles{Base: -180, Shoulder: -90, Elbow: -120}) {
		t.Errorf("first = %v", first)
	}
	if last != (kinematics.JointAngles{Base: 180, Shoulder: 90, Elbow: 120}) {
		t.Errorf("last = %v", last)
	}
}

func TestGridInvalidStep(t *testing.T) {
	for _, s := range []float64{0, -5, math.NaN(), math.Inf(1), 0.001, 0.1, 1e-300} {
		if _, err := NewGrid(s); err == nil {
			t.Errorf("step %v: expected error", s)
		}
	}
}

func TestGridSizeLimit(t *testing.T) {
	g, err := NewGrid(1)
	if err != nil {
		t.Fatalf("1 degree grid rejected: %v", err)
	}
	if g.Len() != 361*181*241 {
		t.Errorf("expected %d samples, got %d", 361*181*241, g.Len())
	}
	if g.Len() > MaxGridSamples {
		t.Errorf("grid of %d exceeds limit", g.Len())
	}

	if _, err := SampleWorkspace(kinematics.DefaultLinkLengths(), 0.001); err == nil {
		t.Error("expected oversized workspace sweep to be rejected")
	}
	if _, err := AuditConsistency(kinematics.DefaultLinkLengths(), 0.001); err == nil {
		t.Error("expected oversized audit to be rejected")
	}
}

func TestSampleWorkspace(t *testing.T) {
	l := kinematics.DefaultLinkLengths()
	ws, err := SampleWorkspace(l, 15)
	if err != nil {
		t.Fatal(err)
	}

	if ws.Len() != 25*13*17 {
		t.Errorf("expected %d samples, got %d", 25*13*17, ws.Len())
	}

	// Shoulder 0, elbow 0 reaches fully out.
	if math.Abs(ws.MaxReach-l.MaxReach()) > 1e-9 {
		t.Errorf("max reach = %v, want %v", ws.MaxReach, l.MaxReach())
	}
	top := l.L1 + l.L2 + l.L3
	if math.Abs(ws.Bounds.Max.Z-top) > 1e-9 {
		t.Errorf("max z = %v, want %v", ws.Bounds.Max.Z, top)
	}
	if ws.MeanReach <= ws.MinReach || ws.MeanReach >= ws.MaxReach {
		t.Errorf("mean reach %v outside (%v, %v)", ws.MeanReach, ws.MinReach, ws.MaxReach)
	}
	if ws.StdReach <= 0 {
		t.Errorf("expected positive spread, got %v", ws.StdReach)
	}
}

func TestAuditConsistency(t *testing.T) {
	audit, err := AuditConsistency(kinematics.DefaultLinkLengths(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if audit.Samples != 37*19*25 {
		t.Errorf("expected %d samples, got %d", 37*19*25, audit.Samples)
	}
	if !audit.Passed() {
		t.Errorf("frame chain disagrees with FK by %g at %v", audit.MaxError, audit.Worst)
	}
}
