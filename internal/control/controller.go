package control

import (
	"math"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/golang/geo/r3"
	"go.uber.org/zap"

	"github.com/san-kum/armsim/internal/kinematics"
)

// Update is published after every recompute.
type Update struct {
	Angles   kinematics.JointAngles // displayed pose
	Position r3.Vector
	Animated bool
}

type Subscriber func(Update)

type Controller struct {
	lengths   kinematics.LinkLengths
	stored    kinematics.JointAngles
	displayed kinematics.JointAngles
	position  r3.Vector
	animating bool
	start     time.Time
	clock     clock.Clock
	logger    *zap.Logger
	subs      []Subscriber
}

func New(opts ...Option) *Controller {
	c := &Controller{
		lengths: kinematics.DefaultLinkLengths(),
		stored:  kinematics.DefaultAngles(),
		clock:   clock.New(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.stored = c.gate(c.stored, kinematics.DefaultAngles())
	c.displayed = c.stored
	c.position = kinematics.ComputeEndEffectorPosition(c.displayed, c.lengths)
	return c
}

// Subscribe registers fn and immediately delivers the current state to it.
func (c *Controller) Subscribe(fn Subscriber) {
	c.subs = append(c.subs, fn)
	fn(c.update())
}

// SetJointAngle stores a new angle for j, clamped into the joint's range,
// and publishes the resulting position. NaN and unknown joints are ignored.
// While animating the
// stored value changes but the displayed pose stays clock-driven.
func (c *Controller) SetJointAngle(j kinematics.Joint, deg float64) r3.Vector {
	if !j.Valid() {
		c.logger.Debug("ignoring unknown joint", zap.Stringer("joint", j))
		return c.position
	}
	if math.IsNaN(deg) {
		c.logger.Debug("ignoring NaN joint angle", zap.Stringer("joint", j))
		return c.position
	}
	v := kinematics.LimitOf(j).Clamp(deg)
	if v != deg {
		c.logger.Debug("clamped joint angle",
			zap.Stringer("joint", j),
			zap.Float64("requested", deg),
			zap.Float64("applied", v))
	}
	c.stored = c.stored.With(j, v)
	c.refresh()
	return c.position
}

// SetAngles stores a whole pose at once with a single publish.
func (c *Controller) SetAngles(a kinematics.JointAngles) r3.Vector {
	c.stored = c.gate(a, c.stored)
	c.refresh()
	return c.position
}

// Reset restores the default pose and stops animation.
func (c *Controller) Reset() {
	c.stored = kinematics.DefaultAngles()
	c.animating = false
	c.refresh()
}

// ToggleAnimation flips animation and reports the new state. Stopping it
// puts the stored pose back on display.
func (c *Controller) ToggleAnimation() bool {
	c.animating = !c.animating
	if c.animating {
		c.start = c.clock.Now()
		c.logger.Debug("animation started")
		return true
	}
	c.logger.Debug("animation stopped", zap.Stringer("restored", c.stored))
	c.refresh()
	return false
}

// Tick samples the clock and advances the animated pose. It reports false
// and does nothing when animation is off.
func (c *Controller) Tick() (kinematics.JointAngles, bool) {
	if !c.animating {
		return c.displayed, false
	}
	return c.TickAt(c.clock.Since(c.start).Seconds())
}

// TickAt poses the arm at an explicit elapsed animation time.
func (c *Controller) TickAt(elapsed float64) (kinematics.JointAngles, bool) {
	if !c.animating {
		return c.displayed, false
	}
	c.displayed = AnimatedAngles(elapsed)
	c.recompute()
	return c.displayed, true
}

// Angles returns the stored, user-set pose.
func (c *Controller) Angles() kinematics.JointAngles { return c.stored }

// Displayed returns the pose currently rendered.
func (c *Controller) Displayed() kinematics.JointAngles { return c.displayed }

// Position is the end-effector position of the displayed pose.
func (c *Controller) Position() r3.Vector { return c.position }

func (c *Controller) Animating() bool                 { return c.animating }
func (c *Controller) Lengths() kinematics.LinkLengths { return c.lengths }
func (c *Controller) Rotations() kinematics.FrameRotations {
	return kinematics.ComputeJointFrameRotations(c.displayed)
}

// Elapsed is the animation time in seconds, zero when stopped.
func (c *Controller) Elapsed() float64 {
	if !c.animating {
		return 0
	}
	return c.clock.Since(c.start).Seconds()
}

func (c *Controller) refresh() {
	if !c.animating {
		c.displayed = c.stored
	}
	c.recompute()
}

func (c *Controller) recompute() {
	c.position = kinematics.ComputeEndEffectorPosition(c.displayed, c.lengths)
	u := c.update()
	for _, fn := range c.subs {
		fn(u)
	}
}

func (c *Controller) update() Update {
	return Update{Angles: c.displayed, Position: c.position, Animated: c.animating}
}

// gate clamps a and substitutes fallback for any NaN component.
func (c *Controller) gate(a, fallback kinematics.JointAngles) kinematics.JointAngles {
	for _, j := range kinematics.Joints {
		if math.IsNaN(a.Get(j)) {
			a = a.With(j, fallback.Get(j))
		}
	}
	return a.Clamp()
}
