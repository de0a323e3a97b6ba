// Package gui is the raylib 3D viewer for the arm.
package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/san-kum/armsim/internal/config"
	"github.com/san-kum/armsim/internal/control"
	"github.com/san-kum/armsim/internal/kinematics"
)

const (
	screenWidth  = 1280
	screenHeight = 720

	minDistance     = 2.0
	maxDistance     = 10.0
	defaultDistance = 5.0
	orbitSpeed      = 0.01
	keyOrbitSpeed   = 1.5 // radians per second
)

var (
	ColBg       = rl.NewColor(10, 10, 10, 255)
	ColAccent   = rl.NewColor(180, 180, 180, 255)
	ColSelect   = rl.NewColor(255, 255, 255, 255)
	ColText     = rl.NewColor(140, 140, 140, 255)
	ColTextDim  = rl.NewColor(60, 60, 60, 255)
	ColGrid     = rl.NewColor(40, 40, 40, 255)
	ColBase     = rl.NewColor(70, 70, 80, 255)
	ColLink     = rl.NewColor(200, 200, 210, 255)
	ColJoint    = rl.NewColor(255, 140, 0, 255)
	ColEffector = rl.NewColor(0, 200, 255, 255)
)

// Options configure the viewer.
type Options struct {
	FPS        int
	Step       float64
	CoarseStep float64
	Preset     string
	Logger     *zap.Logger
}

type App struct {
	Ctrl     *control.Controller
	Chain    *kinematics.Chain
	Camera   rl.Camera3D
	Selected kinematics.Joint
	Preset   string
	opts     Options

	// Orbit state around the camera target; yaw about world Z, pitch above
	// the ground plane.
	yaw, pitch, distance float64

	effector rl.Model
}

func initWindow(fps int) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(screenWidth, screenHeight, "armsim")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(ctrl *control.Controller, opts Options) {
	if opts.FPS <= 0 {
		opts.FPS = config.DefaultFPS
	}
	if opts.Step <= 0 {
		opts.Step = config.DefaultStep
	}
	if opts.CoarseStep <= 0 {
		opts.CoarseStep = config.DefaultCoarseStep
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	initWindow(opts.FPS)
	defer rl.CloseWindow()

	app := NewApp(ctrl, opts)
	defer app.Close()
	app.RunLoop()
}

// NewApp must be called with an open window.
func NewApp(ctrl *control.Controller, opts Options) *App {
	s := kinematics.EffectorSize
	mesh := rl.GenMeshCube(float32(s.X), float32(s.Z), float32(s.Y))

	a := &App{
		Ctrl:     ctrl,
		Chain:    kinematics.NewChain(ctrl.Lengths()),
		Preset:   opts.Preset,
		opts:     opts,
		yaw:      -math.Pi / 4,
		pitch:    0.45,
		distance: defaultDistance,
		effector: rl.LoadModelFromMesh(mesh),
	}
	a.Camera = rl.Camera3D{
		Target:     toRL(kinematics.ShoulderPosition(ctrl.Lengths()).Mul(0.6)),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
	a.updateCamera()
	opts.Logger.Debug("gui started")
	return a
}

func (a *App) Close() {
	rl.UnloadModel(a.effector)
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if a.Update() {
			return
		}
		a.Draw()
	}
}

// Update handles input and advances the animation. It reports true when
// the viewer should close.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) {
		return true
	}

	shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	step := a.opts.Step
	if shift {
		step = a.opts.CoarseStep
	}

	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressedRepeat(rl.KeyRight) {
		a.nudge(step)
	}
	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressedRepeat(rl.KeyLeft) {
		a.nudge(-step)
	}
	if rl.IsKeyPressed(rl.KeyTab) || rl.IsKeyPressed(rl.KeyDown) {
		if shift {
			a.Selected = (a.Selected + kinematics.DOF - 1) % kinematics.DOF
		} else {
			a.Selected = (a.Selected + 1) % kinematics.DOF
		}
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		a.Selected = (a.Selected + kinematics.DOF - 1) % kinematics.DOF
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Ctrl.ToggleAnimation()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Ctrl.Reset()
		a.Preset = ""
	}
	if rl.IsKeyPressed(rl.KeyP) {
		a.Preset = config.NextPreset(a.Preset)
		a.Ctrl.SetAngles(config.GetPreset(a.Preset).Angles)
	}
	if rl.IsKeyPressed(rl.KeyC) {
		a.yaw, a.pitch, a.distance = -math.Pi/4, 0.45, defaultDistance
	}

	a.orbit()
	a.Ctrl.Tick()
	return false
}

func (a *App) nudge(delta float64) {
	cur := a.Ctrl.Angles().Get(a.Selected)
	a.Ctrl.SetJointAngle(a.Selected, cur+delta)
}

// orbit applies mouse drag, wheel zoom and A/D/W/S to the orbit state.
func (a *App) orbit() {
	dt := float64(rl.GetFrameTime())

	if rl.IsMouseButtonDown(rl.MouseRightButton) || rl.IsMouseButtonDown(rl.MouseLeftButton) {
		d := rl.GetMouseDelta()
		a.yaw -= float64(d.X) * orbitSpeed
		a.pitch += float64(d.Y) * orbitSpeed
	}
	if rl.IsKeyDown(rl.KeyA) {
		a.yaw -= keyOrbitSpeed * dt
	}
	if rl.IsKeyDown(rl.KeyD) {
		a.yaw += keyOrbitSpeed * dt
	}
	if rl.IsKeyDown(rl.KeyW) {
		a.pitch += keyOrbitSpeed * dt
	}
	if rl.IsKeyDown(rl.KeyS) {
		a.pitch -= keyOrbitSpeed * dt
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.distance -= float64(wheel) * 0.5
	}
	if rl.IsKeyDown(rl.KeyEqual) || rl.IsKeyDown(rl.KeyKpAdd) {
		a.distance -= 3 * dt
	}
	if rl.IsKeyDown(rl.KeyMinus) || rl.IsKeyDown(rl.KeyKpSubtract) {
		a.distance += 3 * dt
	}

	a.updateCamera()
}

// updateCamera clamps the orbit state and places the camera on its sphere.
func (a *App) updateCamera() {
	a.distance = math.Max(minDistance, math.Min(maxDistance, a.distance))
	a.pitch = math.Max(-1.4, math.Min(1.4, a.pitch))

	t := a.Camera.Target
	cp := math.Cos(a.pitch)
	a.Camera.Position = rl.NewVector3(
		t.X+float32(a.distance*cp*math.Cos(a.yaw)),
		t.Y+float32(a.distance*math.Sin(a.pitch)),
		t.Z-float32(a.distance*cp*math.Sin(a.yaw)),
	)
}
