package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/targets/internal/targets"
)

// ExportData is the {x, y, z} payload handed to external canvases, plus
// enough context to rebuild the target.
type ExportData struct {
	Target string             `json:"target"`
	Size   float64            `json:"size"`
	Cmap   string             `json:"cmap"`
	Params map[string]float64 `json:"params"`
	targets.Surface
}

func ExportJSON(w io.Writer, t targets.Target) error {
	data := ExportData{
		Target:  t.Name(),
		Size:    t.Size(),
		Cmap:    t.Cmap(),
		Params:  t.Params(),
		Surface: t.Surface(),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
