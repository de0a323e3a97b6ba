package viz

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/san-kum/armsim/internal/config"
	"github.com/san-kum/armsim/internal/control"
	"github.com/san-kum/armsim/internal/export"
	"github.com/san-kum/armsim/internal/kinematics"
)

const (
	canvasWidth     = 60
	canvasHeight    = 24
	panelWidth      = 50
	historyCapacity = 300
	cameraStep      = 0.1
	svgScale        = 4.0
)

type TickMsg time.Time

// Options configure a Model. Zero fields take the config defaults.
type Options struct {
	Theme       string
	FPS         int
	Step        float64
	CoarseStep  float64
	Preset      string
	SnapshotDir string
	Logger      *zap.Logger
}

func (o *Options) fill() {
	if o.FPS <= 0 {
		o.FPS = config.DefaultFPS
	}
	if o.Step <= 0 {
		o.Step = config.DefaultStep
	}
	if o.CoarseStep <= 0 {
		o.CoarseStep = config.DefaultCoarseStep
	}
	if o.SnapshotDir == "" {
		o.SnapshotDir = "."
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}

// Model is the bubbletea program state: the controller it drives plus the
// view-only state (camera, theme, selection, height history).
type Model struct {
	ctrl     *control.Controller
	chain    *kinematics.Chain
	canvas   *Canvas
	camera   *Camera
	ground   *Wireframe
	theme    Theme
	st       styles
	opts     Options
	selected kinematics.Joint
	preset   string
	heights  []float64
	message  string
	showHelp bool
}

func NewModel(ctrl *control.Controller, opts Options) *Model {
	opts.fill()
	theme := GetTheme(opts.Theme)
	m := &Model{
		ctrl:    ctrl,
		chain:   kinematics.NewChain(ctrl.Lengths()),
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		camera:  NewCamera(),
		ground:  GroundWireframe(1.5, 6),
		theme:   theme,
		st:      newStyles(theme),
		opts:    opts,
		preset:  opts.Preset,
		heights: make([]float64, 0, historyCapacity),
	}
	ctrl.Subscribe(m.observe)
	return m
}

// Run starts the TUI on the alternate screen and blocks until it quits.
func Run(ctrl *control.Controller, opts Options) error {
	p := tea.NewProgram(NewModel(ctrl, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) observe(u control.Update) {
	m.heights = append(m.heights, u.Position.Z)
	if len(m.heights) > historyCapacity {
		m.heights = m.heights[1:]
	}
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances the animation clock.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.handleKey(msg.String()) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		m.ctrl.Tick()
		return m, m.tick()
	}
	return m, nil
}

// handleKey applies a key press and reports whether the program should quit.
func (m *Model) handleKey(key string) bool {
	switch key {
	case "q", "ctrl+c":
		return true
	case "left", "h":
		m.nudge(-m.opts.Step)
	case "right", "l":
		m.nudge(m.opts.Step)
	case "shift+left", "H":
		m.nudge(-m.opts.CoarseStep)
	case "shift+right", "L":
		m.nudge(m.opts.CoarseStep)
	case "tab", "down", "j":
		m.selected = (m.selected + 1) % kinematics.DOF
	case "shift+tab", "up", "k":
		m.selected = (m.selected + kinematics.DOF - 1) % kinematics.DOF
	case " ":
		if m.ctrl.ToggleAnimation() {
			m.message = "animation on"
		} else {
			m.message = "animation off"
		}
	case "r":
		m.ctrl.Reset()
		m.preset = ""
		m.message = "reset"
	case "p":
		m.preset = config.NextPreset(m.preset)
		m.ctrl.SetAngles(config.GetPreset(m.preset).Angles)
		m.message = "preset " + m.preset
	case "t":
		m.theme = NextTheme(m.theme.Name)
		m.st = newStyles(m.theme)
		m.message = "theme " + m.theme.Name
	case "s":
		m.snapshot()
	case "?":
		m.showHelp = !m.showHelp
	case "x":
		m.camera.RotateX(cameraStep)
	case "X":
		m.camera.RotateX(-cameraStep)
	case "y":
		m.camera.RotateY(cameraStep)
	case "Y":
		m.camera.RotateY(-cameraStep)
	case "z":
		m.camera.RotateZ(cameraStep)
	case "Z":
		m.camera.RotateZ(-cameraStep)
	case "+", "=":
		m.camera.ZoomIn()
	case "-", "_":
		m.camera.ZoomOut()
	case "c":
		m.camera.Reset()
	}
	return false
}

// nudge moves the selected joint from its stored value.
func (m *Model) nudge(delta float64) {
	cur := m.ctrl.Angles().Get(m.selected)
	m.ctrl.SetJointAngle(m.selected, cur+delta)
}

func (m *Model) resize(w, h int) {
	cw := w - panelWidth - 4
	ch := h - 4
	if cw < 20 {
		cw = 20
	}
	if ch < 10 {
		ch = 10
	}
	m.canvas = NewCanvas(cw, ch)
}

// draw renders the displayed pose onto the canvas.
func (m *Model) draw() {
	m.canvas.Clear()
	scene := NewWireframe()
	scene.Merge(m.ground)
	scene.Merge(ArmWireframe(m.chain.Segments(m.chain.Pose(m.ctrl.Rotations()))))
	Render3D(m.canvas, scene, m.camera)
}

func (m *Model) snapshot() {
	m.draw()
	path := filepath.Join(m.opts.SnapshotDir, fmt.Sprintf("arm_%d.svg", time.Now().UnixNano()))
	svg := export.CanvasToSVG(m.canvas, svgScale, string(m.theme.Primary))
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		m.opts.Logger.Warn("snapshot failed", zap.String("path", path), zap.Error(err))
		m.message = "snapshot failed"
		return
	}
	m.message = "saved " + path
}

// Canvas exposes the last drawn frame.
func (m *Model) Canvas() *Canvas { return m.canvas }
