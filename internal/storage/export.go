package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/armsim/internal/kinematics"
	"github.com/san-kum/armsim/internal/trace"
)

type ExportFrame struct {
	Time     float64                `json:"time"`
	Angles   kinematics.JointAngles `json:"angles"`
	Position [3]float64             `json:"position"`
}

type ExportData struct {
	ID          string                 `json:"id"`
	Source      string                 `json:"source"`
	Dt          float64                `json:"dt"`
	Duration    float64                `json:"duration"`
	LinkLengths kinematics.LinkLengths `json:"link_lengths"`
	Steps       int                    `json:"steps"`
	Frames      []ExportFrame          `json:"frames"`
	Metrics     map[string]float64     `json:"metrics"`
}

// ExportJSON writes a run and its frames as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, result *trace.Result) error {
	data := ExportData{
		ID:          meta.ID,
		Source:      meta.Source,
		Dt:          meta.Dt,
		Duration:    meta.Duration,
		LinkLengths: meta.LinkLengths,
		Steps:       result.Len(),
		Frames:      make([]ExportFrame, result.Len()),
		Metrics:     result.Metrics,
	}

	for i := range data.Frames {
		f := result.Frame(i)
		data.Frames[i] = ExportFrame{
			Time:     f.Time,
			Angles:   f.Angles,
			Position: [3]float64{f.Position.X, f.Position.Y, f.Position.Z},
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
