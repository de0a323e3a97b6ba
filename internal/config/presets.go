package config

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/san-kum/armsim/internal/kinematics"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

// Preset is a named pose.
type Preset struct {
	Name        string
	Description string
	Angles      kinematics.JointAngles
}

var Presets = map[string]*Preset{
	"home": {
		Name: "home", Description: "resting pose",
		Angles: kinematics.DefaultAngles(),
	},
	"zero": {
		Name: "zero", Description: "fully extended along +x",
		Angles: kinematics.JointAngles{Base: 0, Shoulder: 0, Elbow: 0},
	},
	"up": {
		Name: "up", Description: "pointing straight up",
		Angles: kinematics.JointAngles{Base: 0, Shoulder: 90, Elbow: 0},
	},
	"reach": {
		Name: "reach", Description: "reaching forward-left",
		Angles: kinematics.JointAngles{Base: 45, Shoulder: 10, Elbow: -10},
	},
	"fold": {
		Name: "fold", Description: "forearm folded back",
		Angles: kinematics.JointAngles{Base: -90, Shoulder: 60, Elbow: -120},
	},
	"down": {
		Name: "down", Description: "reaching down behind",
		Angles: kinematics.JointAngles{Base: 180, Shoulder: -45, Elbow: -30},
	},
}

// GetPreset returns nil for unknown names.
func GetPreset(name string) *Preset {
	return Presets[name]
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for n := range Presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// NextPreset cycles through presets in sorted order; an unknown or empty
// current name starts from the first.
func NextPreset(current string) string {
	names := ListPresets()
	for i, n := range names {
		if n == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
