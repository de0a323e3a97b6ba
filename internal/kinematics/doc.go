// Package kinematics implements the forward kinematics of a 3-DOF arm:
// a base that yaws about the vertical axis, carrying a fixed pillar, with a
// shoulder and an elbow that pitch in the arm's vertical plane.
//
// Two independent computations are provided and must agree:
//
//   - [ComputeEndEffectorPosition]: the closed-form trigonometric solution
//   - [Chain]: an explicit tree of joint frames composed by matrix
//     concatenation, posed from [ComputeJointFrameRotations]
//
// # Conventions
//
// World frame is Z-up. Angles enter in degrees and are converted to radians
// internally. At zero angles the arm lies along +X at pillar height.
//
//	a := kinematics.DefaultAngles()
//	l := kinematics.DefaultLinkLengths()
//	p := kinematics.ComputeEndEffectorPosition(a, l)
//	tip := kinematics.NewChain(l).Pose(kinematics.ComputeJointFrameRotations(a)).Tip()
//	// p and tip agree to floating-point tolerance
//
// Everything here is pure: no state, no I/O, no error paths over the
// declared joint ranges.
package kinematics
