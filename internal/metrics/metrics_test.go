package metrics

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"

	"github.com/san-kum/armsim/internal/kinematics"
)

func feed(m Metric, pts ...r3.Vector) {
	for i, p := range pts {
		m.Observe(kinematics.JointAngles{}, p, float64(i))
	}
}

func TestPathLength(t *testing.T) {
	m := NewPathLength()
	feed(m, r3.Vector{}, r3.Vector{X: 3}, r3.Vector{X: 3, Y: 4})

	if got := m.Value(); math.Abs(got-7) > 1e-12 {
		t.Errorf("path length = %v, want 7", got)
	}

	m.Reset()
	feed(m, r3.Vector{X: 10})
	if m.Value() != 0 {
		t.Errorf("single sample should have zero length, got %v", m.Value())
	}
}

func TestMaxReach(t *testing.T) {
	m := NewMaxReach()
	feed(m, r3.Vector{X: 1, Z: 5}, r3.Vector{X: 3, Y: 4, Z: 0}, r3.Vector{Y: 2})

	if got := m.Value(); math.Abs(got-5) > 1e-12 {
		t.Errorf("max reach = %v, want 5", got)
	}
}

func TestHeightRange(t *testing.T) {
	h := NewHeightRange()
	lo, hi := h.MinHeight(), h.MaxHeight()

	for i, p := range []r3.Vector{{Z: 1.5}, {Z: 0.2}, {Z: 2.1}} {
		lo.Observe(kinematics.JointAngles{}, p, float64(i))
		hi.Observe(kinematics.JointAngles{}, p, float64(i))
	}

	if lo.Name() != "min_height" || hi.Name() != "max_height" {
		t.Errorf("unexpected names %q %q", lo.Name(), hi.Name())
	}
	if lo.Value() != 0.2 {
		t.Errorf("min height = %v, want 0.2", lo.Value())
	}
	if hi.Value() != 2.1 {
		t.Errorf("max height = %v, want 2.1", hi.Value())
	}
}

func TestStandardNames(t *testing.T) {
	want := map[string]bool{"path_length": true, "max_reach": true, "min_height": true, "max_height": true}
	for _, m := range Standard() {
		if !want[m.Name()] {
			t.Errorf("unexpected metric %q", m.Name())
		}
		delete(want, m.Name())
	}
	if len(want) != 0 {
		t.Errorf("missing metrics: %v", want)
	}
}
