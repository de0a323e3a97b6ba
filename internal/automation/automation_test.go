package automation

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/san-kum/armsim/internal/config"
	"github.com/san-kum/armsim/internal/control"
	"github.com/san-kum/armsim/internal/kinematics"
)

const demo = `
name: demo
description: set, animate, restore
steps:
  - op: set
    joint: elbow
    degrees: 500
  - op: toggle
  - op: tick
    elapsed: 2.5
  - op: toggle
  - op: preset
    name: up
  - op: reset
`

func TestRunDemo(t *testing.T) {
	script, err := ParseScript([]byte(demo))
	if err != nil {
		t.Fatal(err)
	}

	ctrl := control.New()
	out, err := Run(context.Background(), script, ctrl, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(out) != 6 {
		t.Fatalf("expected 6 outcomes, got %d", len(out))
	}

	if got := out[0].Update.Angles.Elbow; got != 120 {
		t.Errorf("elbow should clamp to 120, got %v", got)
	}
	if want := control.AnimatedAngles(2.5); out[2].Update.Angles != want {
		t.Errorf("tick pose = %v, want %v", out[2].Update.Angles, want)
	}
	if !out[2].Update.Animated || out[3].Update.Animated {
		t.Error("animation flag not tracked through toggles")
	}
	if out[3].Update.Angles != out[0].Update.Angles {
		t.Errorf("toggle off should restore %v, got %v", out[0].Update.Angles, out[3].Update.Angles)
	}
	if out[4].Update.Angles != config.GetPreset("up").Angles {
		t.Errorf("preset pose = %v", out[4].Update.Angles)
	}
	if out[5].Update.Angles != kinematics.DefaultAngles() {
		t.Errorf("reset pose = %v", out[5].Update.Angles)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name   string
		steps  []Step
		target error
		ran    int
	}{
		{"unknown op", []Step{{Op: "reset"}, {Op: "jump"}}, ErrUnknownOp, 1},
		{"unknown preset", []Step{{Op: "preset", Name: "nope"}}, config.ErrUnknownPreset, 0},
		{"unknown joint", []Step{{Op: "set", Joint: "wrist"}}, kinematics.ErrUnknownJoint, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Run(context.Background(), &Script{Steps: tt.steps}, control.New(), nil)
			if !errors.Is(err, tt.target) {
				t.Fatalf("expected %v, got %v", tt.target, err)
			}
			if len(out) != tt.ran {
				t.Errorf("expected %d outcomes before failure, got %d", tt.ran, len(out))
			}
		})
	}
}

func TestRunErrorNamesStep(t *testing.T) {
	out, err := Run(context.Background(), &Script{Steps: []Step{{Op: "reset"}, {Op: "tick"}}}, control.New(), nil)
	if err == nil || !strings.Contains(err.Error(), "step 2") {
		t.Errorf("expected error naming step 2, got %v", err)
	}
	if len(out) != 1 || out[0].Number != 1 {
		t.Fatalf("expected one outcome numbered 1, got %+v", out)
	}
}

func TestOutcomeNumbersCountFromOne(t *testing.T) {
	script, err := ParseScript([]byte(demo))
	if err != nil {
		t.Fatal(err)
	}
	out, err := Run(context.Background(), script, control.New(), nil)
	if err != nil {
		t.Fatal(err)
	}
	for i, o := range out {
		if o.Number != i+1 {
			t.Errorf("outcome %d numbered %d", i, o.Number)
		}
		if o.Op != script.Steps[o.Number-1].Op {
			t.Errorf("outcome %d op %q does not match step %q", o.Number, o.Op, script.Steps[o.Number-1].Op)
		}
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, &Script{Steps: []Step{{Op: "reset"}}}, control.New(), nil); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.yaml")
	if err := os.WriteFile(path, []byte(demo), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadScript(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "demo" || len(s.Steps) != 6 {
		t.Errorf("unexpected script %+v", s)
	}
}
