package control

import (
	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/san-kum/armsim/internal/kinematics"
)

type Option func(*Controller)

// WithClock sets the animation time source. Tests pass clock.NewMock().
func WithClock(c clock.Clock) Option {
	return func(ctrl *Controller) { ctrl.clock = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(ctrl *Controller) { ctrl.logger = l }
}

// WithAngles sets the initial stored pose. Out-of-range values are clamped.
func WithAngles(a kinematics.JointAngles) Option {
	return func(ctrl *Controller) { ctrl.stored = a }
}

// WithLinkLengths overrides the arm geometry.
func WithLinkLengths(l kinematics.LinkLengths) Option {
	return func(ctrl *Controller) { ctrl.lengths = l }
}
