package control

import (
	"math"

	"github.com/san-kum/armsim/internal/kinematics"
)

// Animation sweep: each joint follows amplitude·sin(frequency·t), amplitude
// in radians, t in seconds.
const (
	BaseFrequency     = 0.5
	BaseAmplitude     = 0.5
	ShoulderFrequency = 0.3
	ShoulderAmplitude = 0.3
	ElbowFrequency    = 0.7
	ElbowAmplitude    = 0.4
)

// AnimatedAngles is the animated pose after t seconds, in degrees. It depends
// only on t, so replaying a sequence of elapsed times replays the same poses.
func AnimatedAngles(t float64) kinematics.JointAngles {
	return kinematics.JointAngles{
		Base:     kinematics.Degrees(math.Sin(t*BaseFrequency) * BaseAmplitude),
		Shoulder: kinematics.Degrees(math.Sin(t*ShoulderFrequency) * ShoulderAmplitude),
		Elbow:    kinematics.Degrees(math.Sin(t*ElbowFrequency) * ElbowAmplitude),
	}
}
