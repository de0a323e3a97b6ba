// Package control owns the arm's interactive joint state.
//
// A [Controller] keeps two joint configurations apart:
//
//   - stored angles: what the user set through sliders, presets or reset
//   - displayed angles: what is rendered, equal to the stored angles except
//     while animation is active, when a clock drives them
//
// Animation never writes into the stored angles, so turning it off restores
// the user's pose bit for bit.
//
// # Usage
//
//	ctrl := control.New(control.WithLogger(logger))
//	ctrl.Subscribe(func(u control.Update) { fmt.Printf("%.2f\n", u.Position.X) })
//	ctrl.SetJointAngle(kinematics.Shoulder, 45)
//	ctrl.ToggleAnimation()
//	ctrl.Tick() // once per rendered frame
//
// # Thread Safety
//
// Controller is NOT thread-safe. It is meant to be driven from a single
// render loop that handles both input and frame ticks.
package control
