package kinematics

import (
	"errors"
	"math"
	"testing"
)

func TestLimitClamp(t *testing.T) {
	tests := []struct {
		joint Joint
		in    float64
		want  float64
	}{
		{Base, 0, 0},
		{Base, 200, 180},
		{Base, -181, -180},
		{Shoulder, 500, 90},
		{Shoulder, -90, -90},
		{Elbow, -1000, -120},
		{Elbow, 119.5, 119.5},
		{Elbow, math.Inf(1), 120},
	}
	for _, tt := range tests {
		if got := LimitOf(tt.joint).Clamp(tt.in); got != tt.want {
			t.Errorf("%v.Clamp(%v) = %v, want %v", tt.joint, tt.in, got, tt.want)
		}
	}
}

func TestJointAnglesClamp(t *testing.T) {
	a := JointAngles{Base: -400, Shoulder: 500, Elbow: 12}.Clamp()
	if a != (JointAngles{Base: -180, Shoulder: 90, Elbow: 12}) {
		t.Errorf("Clamp = %v", a)
	}
	if !a.InRange() {
		t.Error("clamped angles should be in range")
	}
	if (JointAngles{Elbow: 121}).InRange() {
		t.Error("elbow 121 should be out of range")
	}
}

func TestJointAnglesGetWith(t *testing.T) {
	a := DefaultAngles()
	for _, j := range Joints {
		b := a.With(j, 7)
		if b.Get(j) != 7 {
			t.Errorf("With(%v) did not set value", j)
		}
		if a.Get(j) == 7 {
			t.Errorf("With(%v) mutated receiver", j)
		}
	}
}

func TestUnknownJoint(t *testing.T) {
	a := DefaultAngles()
	for _, j := range []Joint{Joint(-1), Joint(DOF), Joint(42)} {
		if j.Valid() {
			t.Errorf("%v reported valid", j)
		}
		if got := a.With(j, 7); got != a {
			t.Errorf("With(%v) changed angles: %v", j, got)
		}
		if got := a.Get(j); got != 0 {
			t.Errorf("Get(%v) = %v, want 0", j, got)
		}
		if got := LimitOf(j); got != (Limit{}) {
			t.Errorf("LimitOf(%v) = %+v, want zero limit", j, got)
		}
	}
	for _, j := range Joints {
		if !j.Valid() {
			t.Errorf("%v reported invalid", j)
		}
	}
}

func TestJointAnglesIsValid(t *testing.T) {
	if !DefaultAngles().IsValid() {
		t.Error("default angles should be valid")
	}
	if (JointAngles{Shoulder: math.NaN()}).IsValid() {
		t.Error("NaN should be invalid")
	}
}

func TestParseJoint(t *testing.T) {
	tests := []struct {
		in   string
		want Joint
	}{
		{"base", Base},
		{" Shoulder ", Shoulder},
		{"ELBOW", Elbow},
		{"theta1", Base},
		{"t3", Elbow},
	}
	for _, tt := range tests {
		got, err := ParseJoint(tt.in)
		if err != nil {
			t.Fatalf("ParseJoint(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseJoint(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseJoint("wrist"); !errors.Is(err, ErrUnknownJoint) {
		t.Errorf("expected ErrUnknownJoint, got %v", err)
	}
}

func TestJointString(t *testing.T) {
	if Shoulder.String() != "shoulder" {
		t.Errorf("got %q", Shoulder.String())
	}
	if Joint(9).String() != "joint(9)" {
		t.Errorf("got %q", Joint(9).String())
	}
}

func TestUnits(t *testing.T) {
	if math.Abs(Radians(180)-math.Pi) > tol {
		t.Error("Radians(180) != pi")
	}
	if math.Abs(Degrees(math.Pi/2)-90) > tol {
		t.Error("Degrees(pi/2) != 90")
	}
}
