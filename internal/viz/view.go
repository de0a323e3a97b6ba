package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/golang/geo/r3"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/armsim/internal/kinematics"
)

const sliderWidth = 20

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  ←/→      - Adjust joint by 1°       ║
║  ⇧←/⇧→    - Adjust joint by 10°      ║
║  Tab      - Next joint               ║
║  Space    - Toggle animation         ║
║  R        - Reset pose               ║
║  P        - Next preset              ║
║  x/X y/Y  - Orbit camera             ║
║  z/Z      - Roll camera              ║
║  +/-      - Zoom                     ║
║  C        - Reset camera             ║
║  T        - Cycle themes             ║
║  S        - Save SVG snapshot        ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
`

// FormatCoord renders a coordinate to two decimals, without a negative
// sign on values that round to zero.
func FormatCoord(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}

// FormatPosition is the end-effector readout line.
func FormatPosition(p r3.Vector) string {
	return fmt.Sprintf("X: %s  Y: %s  Z: %s", FormatCoord(p.X), FormatCoord(p.Y), FormatCoord(p.Z))
}

// View renders the canvas beside the control panel.
func (m *Model) View() string {
	m.draw()
	canvasView := m.st.canvas.Render(m.canvas.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.st.panel.Render(m.panel()))
	if m.showHelp {
		return m.st.accent.Render(helpText) + "\n" + mainView
	}
	return mainView
}

func (m *Model) panel() string {
	var s strings.Builder

	s.WriteString(m.st.header.Render(GradientText("3-DOF ROBOT ARM", m.theme.Secondary, m.theme.Primary)) + "\n")
	if m.ctrl.Animating() {
		s.WriteString(m.st.animated.Render("● ANIMATING") + "\n\n")
	} else {
		s.WriteString(m.st.running.Render("● RUNNING") + "\n\n")
	}

	s.WriteString(m.st.header.Render("JOINTS") + "\n")
	stored := m.ctrl.Angles()
	for _, j := range kinematics.Joints {
		line := fmt.Sprintf("%-9s %7.1f°", j, stored.Get(j))
		if j == m.selected {
			s.WriteString(m.st.selected.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + m.st.value.Render(line) + "\n")
		}
		s.WriteString("  " + Slider(stored.Get(j), kinematics.LimitOf(j), sliderWidth, m.theme) + "\n")
	}

	pos := m.ctrl.Position()
	s.WriteString("\n" + m.st.header.Render("END EFFECTOR") + "\n")
	s.WriteString(m.st.label.Render("X") + m.st.accent.Render(FormatCoord(pos.X)) + "\n")
	s.WriteString(m.st.label.Render("Y") + m.st.accent.Render(FormatCoord(pos.Y)) + "\n")
	s.WriteString(m.st.label.Render("Z") + m.st.accent.Render(FormatCoord(pos.Z)) + "\n")
	reach := math.Hypot(pos.X, pos.Y)
	s.WriteString(m.st.label.Render("Reach") + m.st.value.Render(FormatCoord(reach)) + "\n")

	l := m.ctrl.Lengths()
	s.WriteString("\n" + m.st.header.Render("PARAMETERS") + "\n")
	s.WriteString(m.st.label.Render("L1") + m.st.value.Render(fmt.Sprintf("%.1f units", l.L1)) + "\n")
	s.WriteString(m.st.label.Render("L2") + m.st.value.Render(fmt.Sprintf("%.1f units", l.L2)) + "\n")
	s.WriteString(m.st.label.Render("L3") + m.st.value.Render(fmt.Sprintf("%.1f units", l.L3)) + "\n")
	s.WriteString(m.st.label.Render("DOF") + m.st.value.Render(fmt.Sprintf("%d", kinematics.DOF)) + "\n")
	if m.preset != "" {
		s.WriteString(m.st.label.Render("Preset") + m.st.value.Render(m.preset) + "\n")
	}

	if len(m.heights) > 1 {
		chart := asciigraph.Plot(m.heights,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Precision(2),
			asciigraph.Caption("Height"))
		s.WriteString(m.st.graph.Render(chart) + "\n")
	}

	if m.message != "" {
		s.WriteString(m.st.muted.Render(m.message) + "\n")
	}
	s.WriteString(Separator(30, m.theme) + "\n")
	s.WriteString(m.st.help.Render("←→:Adjust Tab:Joint SP:Animate\nR:Reset P:Preset T:Theme ?:Help Q:Quit"))
	return s.String()
}
