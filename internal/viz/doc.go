// Package viz is the terminal front-end for the arm.
//
// The TUI is a Bubble Tea program ([Model], started with [Run]) that draws
// the arm as a 3D wireframe onto a braille [Canvas] through a [Camera], next
// to a panel of joint sliders and the end-effector readout.
//
// # Key Bindings
//
//	←/→      - Adjust the selected joint by one step
//	⇧←/⇧→    - Adjust by the coarse step
//	Tab      - Select the next joint
//	Space    - Toggle animation
//	R        - Reset to the default pose
//	P        - Cycle presets
//	x/X y/Y  - Orbit the camera, z/Z rolls, +/- zooms
//	T        - Cycle colour themes
//	S        - Save the canvas as SVG
//	?        - Help overlay
package viz
