package kinematics

import (
	"math"

	"github.com/golang/geo/r3"
)

// ComputeEndEffectorPosition maps joint angles to the tool position using
// the closed-form solution. The shoulder and elbow compose by angle sum
// since the elbow is measured relative to the upper arm.
func ComputeEndEffectorPosition(a JointAngles, l LinkLengths) r3.Vector {
	t1 := Radians(a.Base)
	t2 := Radians(a.Shoulder)
	t3 := Radians(a.Elbow)

	r := l.L2*math.Cos(t2) + l.L3*math.Cos(t2+t3)

	return r3.Vector{
		X: r * math.Cos(t1),
		Y: r * math.Sin(t1),
		Z: l.L1 + l.L2*math.Sin(t2) + l.L3*math.Sin(t2+t3),
	}
}

// Reach is the signed horizontal distance of the tool from the base axis,
// measured in the arm's vertical plane. It goes to zero when the arm points
// straight up or down and turns negative when it folds back past the axis.
func Reach(a JointAngles, l LinkLengths) float64 {
	t2 := Radians(a.Shoulder)
	t3 := Radians(a.Elbow)
	return l.L2*math.Cos(t2) + l.L3*math.Cos(t2+t3)
}

// ElbowPosition is the world position of the elbow pivot.
func ElbowPosition(a JointAngles, l LinkLengths) r3.Vector {
	t1 := Radians(a.Base)
	t2 := Radians(a.Shoulder)
	r := l.L2 * math.Cos(t2)
	return r3.Vector{X: r * math.Cos(t1), Y: r * math.Sin(t1), Z: l.L1 + l.L2*math.Sin(t2)}
}

// ShoulderPosition is the world position of the shoulder pivot, which never
// moves.
func ShoulderPosition(l LinkLengths) r3.Vector {
	return r3.Vector{Z: l.L1}
}
