package control_test

import (
	"math"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/golang/geo/r3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/armsim/internal/control"
	"github.com/san-kum/armsim/internal/kinematics"
)

var _ = Describe("Controller", func() {
	var (
		mock    *clock.Mock
		ctrl    *control.Controller
		updates []control.Update
	)

	BeforeEach(func() {
		mock = clock.NewMock()
		ctrl = control.New(control.WithClock(mock))
		updates = nil
		ctrl.Subscribe(func(u control.Update) { updates = append(updates, u) })
	})

	lastPosition := func() r3.Vector {
		Expect(updates).NotTo(BeEmpty())
		return updates[len(updates)-1].Position
	}

	Describe("construction", func() {
		It("starts at the default pose with animation off", func() {
			Expect(ctrl.Angles()).To(Equal(kinematics.DefaultAngles()))
			Expect(ctrl.Displayed()).To(Equal(kinematics.DefaultAngles()))
			Expect(ctrl.Animating()).To(BeFalse())
		})

		It("delivers the current state to new subscribers", func() {
			Expect(updates).To(HaveLen(1))
			Expect(updates[0].Angles).To(Equal(kinematics.DefaultAngles()))
		})

		It("reports the default end-effector position", func() {
			p := ctrl.Position()
			Expect(p.X).To(BeNumerically("~", 1.2723758188, 1e-9))
			Expect(p.Y).To(BeNumerically("~", 0, 1e-12))
			Expect(p.Z).To(BeNumerically("~", 1.2447085729, 1e-9))
		})

		It("clamps an initial pose", func() {
			c := control.New(control.WithAngles(kinematics.JointAngles{Base: 999, Shoulder: -999, Elbow: 10}))
			Expect(c.Angles()).To(Equal(kinematics.JointAngles{Base: 180, Shoulder: -90, Elbow: 10}))
		})
	})

	Describe("SetJointAngle", func() {
		It("stores the value and publishes the new position", func() {
			p := ctrl.SetJointAngle(kinematics.Shoulder, 0)
			Expect(ctrl.Angles().Shoulder).To(Equal(0.0))
			Expect(updates).To(HaveLen(2))
			Expect(lastPosition()).To(Equal(p))
			Expect(p).To(Equal(kinematics.ComputeEndEffectorPosition(ctrl.Angles(), ctrl.Lengths())))
		})

		It("clamps out-of-range input to the joint limit", func() {
			ctrl.SetJointAngle(kinematics.Shoulder, 500)
			Expect(ctrl.Angles().Shoulder).To(Equal(90.0))

			ctrl.SetJointAngle(kinematics.Elbow, -500)
			Expect(ctrl.Angles().Elbow).To(Equal(-120.0))

			ctrl.SetJointAngle(kinematics.Base, math.Inf(1))
			Expect(ctrl.Angles().Base).To(Equal(180.0))
		})

		It("ignores NaN without publishing", func() {
			before := ctrl.Angles()
			ctrl.SetJointAngle(kinematics.Elbow, math.NaN())
			Expect(ctrl.Angles()).To(Equal(before))
			Expect(updates).To(HaveLen(1))
		})

		It("ignores joints outside the chain", func() {
			before := ctrl.Angles()
			Expect(func() { ctrl.SetJointAngle(kinematics.Joint(3), 10) }).NotTo(Panic())
			Expect(func() { ctrl.SetJointAngle(kinematics.Joint(-1), 10) }).NotTo(Panic())
			Expect(ctrl.Angles()).To(Equal(before))
			Expect(updates).To(HaveLen(1))
		})

		It("leaves other joints untouched", func() {
			ctrl.SetJointAngle(kinematics.Base, 45)
			Expect(ctrl.Angles()).To(Equal(kinematics.JointAngles{Base: 45, Shoulder: 30, Elbow: -45}))
		})
	})

	Describe("SetAngles", func() {
		It("clamps each joint and publishes once", func() {
			ctrl.SetAngles(kinematics.JointAngles{Base: -200, Shoulder: 10, Elbow: 130})
			Expect(ctrl.Angles()).To(Equal(kinematics.JointAngles{Base: -180, Shoulder: 10, Elbow: 120}))
			Expect(updates).To(HaveLen(2))
		})

		It("keeps the current value for NaN components", func() {
			ctrl.SetAngles(kinematics.JointAngles{Base: 10, Shoulder: math.NaN(), Elbow: 0})
			Expect(ctrl.Angles()).To(Equal(kinematics.JointAngles{Base: 10, Shoulder: 30, Elbow: 0}))
		})
	})

	Describe("Reset", func() {
		It("restores defaults and stops animation", func() {
			ctrl.SetJointAngle(kinematics.Base, 120)
			ctrl.ToggleAnimation()
			ctrl.Reset()
			Expect(ctrl.Angles()).To(Equal(kinematics.DefaultAngles()))
			Expect(ctrl.Displayed()).To(Equal(kinematics.DefaultAngles()))
			Expect(ctrl.Animating()).To(BeFalse())
		})

		It("is idempotent", func() {
			ctrl.SetJointAngle(kinematics.Elbow, 80)
			ctrl.Reset()
			once := []any{ctrl.Angles(), ctrl.Displayed(), ctrl.Position(), ctrl.Animating()}
			ctrl.Reset()
			twice := []any{ctrl.Angles(), ctrl.Displayed(), ctrl.Position(), ctrl.Animating()}
			Expect(twice).To(Equal(once))
		})
	})

	Describe("animation", func() {
		It("does nothing on tick while stopped", func() {
			_, ok := ctrl.Tick()
			Expect(ok).To(BeFalse())
			Expect(updates).To(HaveLen(1))
		})

		It("drives the displayed pose from the clock without touching stored angles", func() {
			ctrl.SetJointAngle(kinematics.Base, 33)
			stored := ctrl.Angles()

			Expect(ctrl.ToggleAnimation()).To(BeTrue())
			mock.Add(2 * time.Second)
			a, ok := ctrl.Tick()

			Expect(ok).To(BeTrue())
			Expect(a).To(Equal(control.AnimatedAngles(2)))
			Expect(ctrl.Displayed()).To(Equal(a))
			Expect(ctrl.Angles()).To(Equal(stored))
			Expect(updates[len(updates)-1].Animated).To(BeTrue())
			Expect(lastPosition()).To(Equal(kinematics.ComputeEndEffectorPosition(a, ctrl.Lengths())))
		})

		It("restores the stored pose bit for bit when toggled off", func() {
			ctrl.SetJointAngle(kinematics.Shoulder, 12.345678901234567)
			before := ctrl.Angles()

			ctrl.ToggleAnimation()
			for i := 0; i < 50; i++ {
				mock.Add(16 * time.Millisecond)
				ctrl.Tick()
			}
			Expect(ctrl.ToggleAnimation()).To(BeFalse())

			after := ctrl.Angles()
			Expect(math.Float64bits(after.Base)).To(Equal(math.Float64bits(before.Base)))
			Expect(math.Float64bits(after.Shoulder)).To(Equal(math.Float64bits(before.Shoulder)))
			Expect(math.Float64bits(after.Elbow)).To(Equal(math.Float64bits(before.Elbow)))
			Expect(ctrl.Displayed()).To(Equal(before))
			Expect(lastPosition()).To(Equal(kinematics.ComputeEndEffectorPosition(before, ctrl.Lengths())))
		})

		It("survives reset followed by an even number of toggles", func() {
			ctrl.Reset()
			before := ctrl.Angles()
			ctrl.ToggleAnimation()
			mock.Add(time.Second)
			ctrl.Tick()
			ctrl.ToggleAnimation()
			Expect(ctrl.Angles()).To(Equal(before))
			Expect(ctrl.Displayed()).To(Equal(before))
		})

		It("keeps user edits made during animation for later", func() {
			ctrl.ToggleAnimation()
			mock.Add(500 * time.Millisecond)
			ctrl.Tick()
			ctrl.SetJointAngle(kinematics.Elbow, 60)
			Expect(ctrl.Displayed()).To(Equal(control.AnimatedAngles(0.5)))

			ctrl.ToggleAnimation()
			Expect(ctrl.Displayed().Elbow).To(Equal(60.0))
		})

		It("measures time from the moment it was started", func() {
			mock.Add(10 * time.Second)
			ctrl.ToggleAnimation()
			mock.Add(time.Second)
			a, _ := ctrl.Tick()
			Expect(a).To(Equal(control.AnimatedAngles(1)))
			Expect(ctrl.Elapsed()).To(BeNumerically("~", 1, 1e-9))
		})

		It("replays identical poses for identical elapsed sequences", func() {
			ctrl.ToggleAnimation()
			seq := []float64{0, 0.25, 1.5, 7, 42.125}
			first := make([]kinematics.JointAngles, 0, len(seq))
			for _, t := range seq {
				a, _ := ctrl.TickAt(t)
				first = append(first, a)
			}
			ctrl.ToggleAnimation()
			ctrl.ToggleAnimation()
			for i, t := range seq {
				a, _ := ctrl.TickAt(t)
				Expect(a).To(Equal(first[i]))
			}
		})
	})

	Describe("Rotations", func() {
		It("follows the displayed pose", func() {
			ctrl.SetJointAngle(kinematics.Base, 90)
			rot := ctrl.Rotations()
			Expect(rot.Of(kinematics.Base).Angle).To(BeNumerically("~", math.Pi/2, 1e-12))
		})
	})
})

var _ = Describe("AnimatedAngles", func() {
	It("starts from the zero pose", func() {
		Expect(control.AnimatedAngles(0)).To(Equal(kinematics.JointAngles{}))
	})

	It("follows the sinusoidal sweep", func() {
		t := 3.7
		a := control.AnimatedAngles(t)
		Expect(kinematics.Radians(a.Base)).To(BeNumerically("~", math.Sin(t*0.5)*0.5, 1e-12))
		Expect(kinematics.Radians(a.Shoulder)).To(BeNumerically("~", math.Sin(t*0.3)*0.3, 1e-12))
		Expect(kinematics.Radians(a.Elbow)).To(BeNumerically("~", math.Sin(t*0.7)*0.4, 1e-12))
	})

	It("stays inside the joint limits", func() {
		for t := 0.0; t < 120; t += 0.1 {
			Expect(control.AnimatedAngles(t).InRange()).To(BeTrue())
		}
	})
})
