package batch

import (
	"encoding/json"
	"os"
	"path/filepath"

	"sky-raytracer/internal/mathutil"
)

// ManifestEntry represents one job in the output manifest.
type ManifestEntry struct {
	Name     string  `json:"name"`
	Goal     string  `json:"goal"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Theta    float64 `json:"theta_deg"`
	Phi      float64 `json:"phi_deg"`
	Distance float64 `json:"distance,omitempty"`
	Radius   float64 `json:"radius,omitempty"`
	Image    string  `json:"image"`
	Success  bool    `json:"success"`
	Error    string  `json:"error,omitempty"`
}

// WriteManifest writes manifest.json describing jobs and their results.
// results[i] must belong to jobs[i]. Image paths are relative to the
// manifest's directory when possible.
func WriteManifest(path string, jobs []Job, results []Result) error {
	base := filepath.Dir(path)
	entries := make([]ManifestEntry, len(jobs))
	for i, j := range jobs {
		img := j.Path
		if rel, err := filepath.Rel(base, j.Path); err == nil {
			img = filepath.ToSlash(rel)
		}
		e := ManifestEntry{
			Name:   j.Name,
			Goal:   j.Goal.String(),
			Width:  j.Params.Width,
			Height: j.Params.Height,
			Theta:  mathutil.Rad2Deg(j.Params.Theta),
			Phi:    mathutil.Rad2Deg(j.Params.Phi),
			Image:  img,
		}
		if j.Goal.Traced() {
			e.Distance = j.Params.Distance
			e.Radius = j.Params.Radius
		}
		if i < len(results) {
			e.Success = results[i].Success
			e.Error = results[i].Error
		}
		entries[i] = e
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(base, 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
