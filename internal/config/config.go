package config

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/armsim/internal/kinematics"
	"github.com/san-kum/armsim/internal/trace"
)

const (
	DefaultFPS        = 60
	DefaultTheme      = "cyberpunk"
	DefaultStep       = 1.0
	DefaultCoarseStep = 10.0
	DefaultDt         = 0.05
	DefaultDuration   = 20.0
	DefaultLogLevel   = "warn"
)

// ErrInvalidConfig marks values that cannot drive the viewer.
var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	Pose              kinematics.JointAngles `yaml:"pose"`
	Preset            string                 `yaml:"preset"`
	FPS               int                    `yaml:"fps"`
	Theme             string                 `yaml:"theme"`
	StepDegrees       float64                `yaml:"step_degrees"`
	CoarseStepDegrees float64                `yaml:"coarse_step_degrees"`
	Record            RecordConfig           `yaml:"record"`
	LogLevel          string                 `yaml:"log_level"`
}

// RecordConfig sets the elapsed-time grid used when tracing the animation.
type RecordConfig struct {
	Dt       float64 `yaml:"dt"`
	Duration float64 `yaml:"duration"`
}

func DefaultConfig() *Config {
	return &Config{
		Pose:              kinematics.DefaultAngles(),
		FPS:               DefaultFPS,
		Theme:             DefaultTheme,
		StepDegrees:       DefaultStep,
		CoarseStepDegrees: DefaultCoarseStep,
		Record: RecordConfig{
			Dt:       DefaultDt,
			Duration: DefaultDuration,
		},
		LogLevel: DefaultLogLevel,
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the viewer cannot run with. The pose is not
// checked here; it is clamped when applied.
func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "fps must be positive, got %d", c.FPS)
	}
	if c.StepDegrees <= 0 || c.CoarseStepDegrees <= 0 {
		return errors.Wrap(ErrInvalidConfig, "step sizes must be positive")
	}
	if !(c.Record.Dt > 0) || math.IsInf(c.Record.Dt, 1) {
		return errors.Wrapf(ErrInvalidConfig, "record.dt must be positive and finite, got %f", c.Record.Dt)
	}
	if !(c.Record.Duration > 0) || math.IsInf(c.Record.Duration, 1) {
		return errors.Wrapf(ErrInvalidConfig, "record.duration must be positive and finite, got %f", c.Record.Duration)
	}
	if err := trace.ValidateConfig(c.TraceConfig()); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	if c.Preset != "" && GetPreset(c.Preset) == nil {
		return errors.Wrapf(ErrUnknownPreset, "%q", c.Preset)
	}
	return nil
}

// TraceConfig is the recording grid as the trace package takes it.
func (c *Config) TraceConfig() trace.Config {
	return trace.Config{Dt: c.Record.Dt, Duration: c.Record.Duration}
}

// InitialPose resolves the starting pose: the named preset if set,
// otherwise the configured pose, clamped.
func (c *Config) InitialPose() (kinematics.JointAngles, error) {
	if c.Preset != "" {
		p := GetPreset(c.Preset)
		if p == nil {
			return kinematics.JointAngles{}, errors.Wrapf(ErrUnknownPreset, "%q (available: %v)", c.Preset, ListPresets())
		}
		return p.Angles, nil
	}
	return c.Pose.Clamp(), nil
}
