package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/san-kum/armsim/internal/kinematics"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Pose != kinematics.DefaultAngles() {
		t.Errorf("expected default pose, got %v", cfg.Pose)
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if cfg.Record.Dt <= 0 || cfg.Record.Duration <= 0 {
		t.Error("record grid should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arm.yaml")
	data := `
pose:
  base: 15
  shoulder: 200
  elbow: -10
fps: 30
theme: ocean
record:
  dt: 0.1
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.FPS != 30 || cfg.Theme != "ocean" {
		t.Errorf("unexpected fps/theme: %d %s", cfg.FPS, cfg.Theme)
	}
	if cfg.Record.Dt != 0.1 || cfg.Record.Duration != DefaultDuration {
		t.Errorf("record should merge over defaults, got %+v", cfg.Record)
	}

	pose, err := cfg.InitialPose()
	if err != nil {
		t.Fatal(err)
	}
	want := kinematics.JointAngles{Base: 15, Shoulder: 90, Elbow: -10}
	if diff := cmp.Diff(want, pose); diff != "" {
		t.Errorf("pose mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"zero fps", "fps: 0\n", ErrInvalidConfig},
		{"negative dt", "record: {dt: -1}\n", ErrInvalidConfig},
		{"zero step", "step_degrees: 0\n", ErrInvalidConfig},
		{"infinite duration", "record: {duration: .inf}\n", ErrInvalidConfig},
		{"nan dt", "record: {dt: .nan}\n", ErrInvalidConfig},
		{"huge duration", "record: {duration: 1e15}\n", ErrInvalidConfig},
		{"unknown preset", "preset: flying\n", ErrUnknownPreset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "arm.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arm.yaml")
	cfg := DefaultConfig()
	cfg.Preset = "fold"
	cfg.Theme = "retro"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestInitialPose_Preset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Preset = "up"
	pose, err := cfg.InitialPose()
	if err != nil {
		t.Fatal(err)
	}
	if pose != (kinematics.JointAngles{Shoulder: 90}) {
		t.Errorf("got %v", pose)
	}

	cfg.Preset = "nonexistent"
	if _, err := cfg.InitialPose(); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("home")
	if p == nil {
		t.Fatal("expected preset, got nil")
	}
	if p.Angles != kinematics.DefaultAngles() {
		t.Errorf("home should be the default pose, got %v", p.Angles)
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsInRange(t *testing.T) {
	for name, p := range Presets {
		if !p.Angles.InRange() {
			t.Errorf("preset %s out of range: %v", name, p.Angles)
		}
		if p.Name != name {
			t.Errorf("preset key %s has name %s", name, p.Name)
		}
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
}

func TestNextPreset(t *testing.T) {
	names := ListPresets()
	if got := NextPreset(""); got != names[0] {
		t.Errorf("NextPreset(\"\") = %s, want %s", got, names[0])
	}
	if got := NextPreset(names[len(names)-1]); got != names[0] {
		t.Errorf("NextPreset should wrap, got %s", got)
	}
	if got := NextPreset(names[0]); got != names[1] {
		t.Errorf("NextPreset(%s) = %s, want %s", names[0], got, names[1])
	}
}
