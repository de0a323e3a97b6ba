package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"

	"github.com/san-kum/armsim/internal/kinematics"
	"github.com/san-kum/armsim/internal/viz"
)

// zUp maps the Z-up world into raylib's Y-up space: (x, y, z) → (x, z, -y).
var zUp = mgl64.Mat4{
	1, 0, 0, 0,
	0, 0, -1, 0,
	0, 1, 0, 0,
	0, 0, 0, 1,
}

func toRL(v r3.Vector) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Z), float32(-v.Y))
}

// toRLMatrix re-expresses a world transform in raylib space. Both layouts
// are column-major.
func toRLMatrix(m mgl64.Mat4) rl.Matrix {
	c := zUp.Mul4(m).Mul4(zUp.Transpose())
	return rl.Matrix{
		M0: float32(c[0]), M1: float32(c[1]), M2: float32(c[2]), M3: float32(c[3]),
		M4: float32(c[4]), M5: float32(c[5]), M6: float32(c[6]), M7: float32(c[7]),
		M8: float32(c[8]), M9: float32(c[9]), M10: float32(c[10]), M11: float32(c[11]),
		M12: float32(c[12]), M13: float32(c[13]), M14: float32(c[14]), M15: float32(c[15]),
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	rl.BeginMode3D(a.Camera)
	rl.DrawGrid(20, 0.25)
	a.drawArm()
	rl.EndMode3D()

	a.DrawHUD()
	rl.EndDrawing()
}

// drawArm draws the segments of the displayed pose.
func (a *App) drawArm() {
	pose := a.Chain.Pose(a.Ctrl.Rotations())
	for _, s := range a.Chain.Segments(pose) {
		switch s.Kind {
		case kinematics.Cylinder:
			col := ColLink
			if s.Name == "base" {
				col = ColBase
			}
			r := float32(s.Radius)
			rl.DrawCylinderEx(toRL(s.Start), toRL(s.End), r, r, 24, col)
		case kinematics.Sphere:
			rl.DrawSphere(toRL(s.Center), float32(s.Radius), ColJoint)
		case kinematics.Box:
			a.effector.Transform = toRLMatrix(s.Transform)
			rl.DrawModel(a.effector, rl.NewVector3(0, 0, 0), 1, ColEffector)
		}
	}
}

func (a *App) DrawHUD() {
	drawText("armsim", 30, 30, 24, ColSelect)
	drawText(":: 3-DOF arm", 130, 34, 16, ColText)

	status, col := "RUNNING", ColSelect
	if a.Ctrl.Animating() {
		status, col = "ANIMATING", ColJoint
	}
	drawText(status, screenWidth-150, 30, 16, col)

	y := int32(80)
	stored := a.Ctrl.Angles()
	for _, j := range kinematics.Joints {
		col := ColText
		prefix := "  "
		if j == a.Selected {
			col, prefix = ColSelect, "> "
		}
		l := kinematics.LimitOf(j)
		drawText(fmt.Sprintf("%s%-9s %7.1f deg  [%4.0f, %4.0f]", prefix, j, stored.Get(j), l.Min, l.Max), 30, y, 16, col)
		y += 22
	}

	pos := a.Ctrl.Position()
	y += 12
	drawText("END EFFECTOR", 30, y, 16, ColAccent)
	y += 22
	drawText(fmt.Sprintf("X %s   Y %s   Z %s", viz.FormatCoord(pos.X), viz.FormatCoord(pos.Y), viz.FormatCoord(pos.Z)), 30, y, 16, ColEffector)

	l := a.Ctrl.Lengths()
	y += 34
	drawText("PARAMETERS", 30, y, 16, ColAccent)
	y += 22
	drawText(fmt.Sprintf("L1 %.1f  L2 %.1f  L3 %.1f units   DOF %d", l.L1, l.L2, l.L3, kinematics.DOF), 30, y, 16, ColText)
	if a.Preset != "" {
		y += 22
		drawText("preset "+a.Preset, 30, y, 16, ColText)
	}

	drawText("[LEFT/RIGHT] ADJUST  [TAB] JOINT  [SPACE] ANIMATE  [R] RESET  [P] PRESET  [DRAG/WASD] ORBIT  [WHEEL] ZOOM  [Q] QUIT",
		30, screenHeight-40, 14, ColTextDim)
	drawText(fmt.Sprintf("%d FPS", rl.GetFPS()), screenWidth-100, screenHeight-40, 14, ColTextDim)
}

func drawText(text string, x, y int32, size int32, color rl.Color) {
	rl.DrawText(text, x, y, size, color)
}
