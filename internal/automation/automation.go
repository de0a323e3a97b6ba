// Package automation replays YAML scripts of controller operations.
package automation

import (
	"context"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/armsim/internal/config"
	"github.com/san-kum/armsim/internal/control"
	"github.com/san-kum/armsim/internal/kinematics"
)

// Step operations.
const (
	OpSet    = "set"
	OpReset  = "reset"
	OpToggle = "toggle"
	OpTick   = "tick"
	OpPreset = "preset"
)

var ErrUnknownOp = errors.New("automation: unknown op")

// Script is a named sequence of controller operations.
type Script struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is a single operation. Only the fields its Op reads are consulted.
type Step struct {
	Op      string  `yaml:"op"`
	Joint   string  `yaml:"joint,omitempty"`
	Degrees float64 `yaml:"degrees,omitempty"`
	Elapsed float64 `yaml:"elapsed,omitempty"`
	Name    string  `yaml:"name,omitempty"`
}

// Outcome is the controller state after a step. Number counts from 1, the
// same numbering errors use.
type Outcome struct {
	Number int
	Op     string
	Update control.Update
}

// LoadScript loads a script from a YAML file
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read script %s", path)
	}
	return ParseScript(data)
}

func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, errors.Wrap(err, "parse script")
	}
	return &script, nil
}

// Run applies every step in order. On failure the outcomes of the steps
// that already ran are returned with the error.
func Run(ctx context.Context, script *Script, ctrl *control.Controller, logger *zap.Logger) ([]Outcome, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	outcomes := make([]Outcome, 0, len(script.Steps))

	for i, step := range script.Steps {
		n := i + 1
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}

		op := strings.ToLower(strings.TrimSpace(step.Op))
		logger.Debug("script step",
			zap.String("script", script.Name),
			zap.Int("step", n),
			zap.String("op", op),
		)

		if err := apply(ctrl, op, step); err != nil {
			return outcomes, errors.Wrapf(err, "step %d", n)
		}

		outcomes = append(outcomes, Outcome{
			Number: n,
			Op:     op,
			Update: control.Update{
				Angles:   ctrl.Displayed(),
				Position: ctrl.Position(),
				Animated: ctrl.Animating(),
			},
		})
	}

	return outcomes, nil
}

func apply(ctrl *control.Controller, op string, step Step) error {
	switch op {
	case OpSet:
		j, err := kinematics.ParseJoint(step.Joint)
		if err != nil {
			return err
		}
		ctrl.SetJointAngle(j, step.Degrees)
	case OpReset:
		ctrl.Reset()
	case OpToggle:
		ctrl.ToggleAnimation()
	case OpTick:
		if !ctrl.Animating() {
			return errors.New("tick while animation is off")
		}
		ctrl.TickAt(step.Elapsed)
	case OpPreset:
		p := config.GetPreset(step.Name)
		if p == nil {
			return errors.Wrapf(config.ErrUnknownPreset, "%q", step.Name)
		}
		ctrl.SetAngles(p.Angles)
	default:
		return errors.Wrapf(ErrUnknownOp, "%q", step.Op)
	}
	return nil
}
