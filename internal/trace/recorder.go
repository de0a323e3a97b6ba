// Package trace replays the arm's animation clock over a fixed grid of
// elapsed times and collects the resulting poses.
package trace

import (
	"context"
	"fmt"
	"math"

	"github.com/golang/geo/r3"

	"github.com/san-kum/armsim/internal/control"
	"github.com/san-kum/armsim/internal/kinematics"
)

type Recorder struct {
	lengths   kinematics.LinkLengths
	pose      PoseFunc
	metrics   []Metric
	observers []Observer
}

// New records the controller's animation sweep for the given geometry.
func New(l kinematics.LinkLengths) *Recorder {
	return NewWithPose(l, control.AnimatedAngles)
}

func NewWithPose(l kinematics.LinkLengths, pose PoseFunc) *Recorder {
	return &Recorder{
		lengths:   l,
		pose:      pose,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Recorder) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Recorder) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run samples t = 0, dt, 2dt, ... up to duration. Times are computed as
// i*dt rather than accumulated so that the same config always yields the
// same grid.
func (r *Recorder) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	steps := frameCount(cfg)
	result := &Result{
		Times:     make([]float64, 0, steps),
		Angles:    make([]kinematics.JointAngles, 0, steps),
		Positions: make([]r3.Vector, 0, steps),
		Metrics:   make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		f := r.frame(float64(i) * cfg.Dt)
		for _, m := range r.metrics {
			m.Observe(f.Angles, f.Position, f.Time)
		}
		for _, obs := range r.observers {
			obs.OnFrame(f)
		}

		result.Times = append(result.Times, f.Time)
		result.Angles = append(result.Angles, f.Angles)
		result.Positions = append(result.Positions, f.Position)
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback streams frames until the grid is exhausted or fn returns
// false.
func (r *Recorder) RunWithCallback(ctx context.Context, cfg Config, fn func(Frame) bool) error {
	if err := ValidateConfig(cfg); err != nil {
		return err
	}

	steps := frameCount(cfg)
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !fn(r.frame(float64(i) * cfg.Dt)) {
			return nil
		}
	}
	return nil
}

func (r *Recorder) frame(t float64) Frame {
	a := r.pose(t)
	return Frame{
		Time:     t,
		Angles:   a,
		Position: kinematics.ComputeEndEffectorPosition(a, r.lengths),
	}
}

// MaxFrames caps a single trace.
const MaxFrames = 1_000_000

// ValidateConfig rejects grids that are empty, non-finite or longer than
// MaxFrames.
func ValidateConfig(cfg Config) error {
	if !(cfg.Dt > 0) || math.IsInf(cfg.Dt, 1) {
		return fmt.Errorf("dt must be positive and finite, got %f", cfg.Dt)
	}
	if !(cfg.Duration > 0) || math.IsInf(cfg.Duration, 1) {
		return fmt.Errorf("duration must be positive and finite, got %f", cfg.Duration)
	}
	if cfg.Duration/cfg.Dt >= MaxFrames {
		return fmt.Errorf("%.0f frames exceeds the limit of %d", cfg.Duration/cfg.Dt, MaxFrames)
	}
	return nil
}

// frameCount includes both endpoints; the epsilon absorbs the rounding in
// durations like 1.0/0.1.
func frameCount(cfg Config) int {
	return int(math.Floor(cfg.Duration/cfg.Dt+1e-9)) + 1
}
