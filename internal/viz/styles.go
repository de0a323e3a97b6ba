package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/armsim/internal/kinematics"
)

// styles are derived from a Theme each time it changes.
type styles struct {
	canvas   lipgloss.Style
	panel    lipgloss.Style
	header   lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	accent   lipgloss.Style
	selected lipgloss.Style
	muted    lipgloss.Style
	running  lipgloss.Style
	animated lipgloss.Style
	graph    lipgloss.Style
	help     lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		canvas:   lipgloss.NewStyle().Foreground(t.Primary).Padding(1, 2),
		panel:    lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(t.Muted).Padding(1, 2).Width(46),
		header:   lipgloss.NewStyle().Foreground(t.Secondary).Bold(true).MarginBottom(1),
		label:    lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		value:    lipgloss.NewStyle().Foreground(t.Text),
		accent:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		selected: lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		muted:    lipgloss.NewStyle().Foreground(t.Muted),
		running:  lipgloss.NewStyle().Foreground(t.Running).Bold(true),
		animated: lipgloss.NewStyle().Foreground(t.Animating).Bold(true),
		graph:    lipgloss.NewStyle().Foreground(t.Secondary).Padding(1, 0),
		help:     lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
	}
}

// blend interpolates two hex colours in Lab space. Unparseable input falls
// back to the start colour.
func blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	a, err := colorful.Hex(string(from))
	if err != nil {
		return from
	}
	b, err := colorful.Hex(string(to))
	if err != nil {
		return from
	}
	return lipgloss.Color(a.BlendLab(b, t).Clamped().Hex())
}

// GradientText colours each rune of text along a gradient.
func GradientText(text string, from, to lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		b.WriteString(lipgloss.NewStyle().Foreground(blend(from, to, t)).Render(string(r)))
	}
	return b.String()
}

// SliderFill is the number of filled cells for v on a bar of width cells.
func SliderFill(v float64, l kinematics.Limit, width int) int {
	span := l.Max - l.Min
	if span <= 0 || width <= 0 {
		return 0
	}
	filled := int((l.Clamp(v) - l.Min) / span * float64(width))
	if filled > width {
		filled = width
	}
	return filled
}

// Slider renders a joint value as a gradient bar with its bounds.
func Slider(v float64, l kinematics.Limit, width int, t Theme) string {
	filled := SliderFill(v, l, width)
	bar := GradientText(strings.Repeat("█", filled), t.SliderLow, t.SliderHi) +
		lipgloss.NewStyle().Foreground(t.Muted).Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%4.0f %s %-4.0f", l.Min, bar, l.Max)
}

func Separator(width int, t Theme) string {
	if width < 8 {
		width = 8
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return lipgloss.NewStyle().Foreground(t.Muted).Render(left + " ◆ " + right)
}
