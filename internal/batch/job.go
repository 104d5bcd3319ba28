package batch

import (
	"fmt"
	"path/filepath"

	"sky-raytracer/internal/config"
	"sky-raytracer/internal/imageio"
	"sky-raytracer/internal/mathutil"
	"sky-raytracer/internal/scene"
)

// Job is one fully resolved image to render.
type Job struct {
	Name   string
	Goal   scene.Goal
	Params scene.Params
	Format imageio.Format
	// Path is where the image is written.
	Path string
}

// NewJob resolves render settings into a Job writing to path.
func NewJob(name string, r config.RenderConfig, format, path string) (Job, error) {
	goal, err := scene.ParseGoal(r.Goal)
	if err != nil {
		return Job{}, err
	}
	f, err := imageio.ParseFormat(format)
	if err != nil {
		return Job{}, err
	}
	return Job{
		Name: name,
		Goal: goal,
		Params: scene.Params{
			Width:    r.Width,
			Height:   r.Height,
			Theta:    mathutil.Deg2Rad(r.Theta),
			Phi:      mathutil.Deg2Rad(r.Phi),
			Distance: r.Distance,
			Radius:   r.Radius,
		},
		Format: f,
		Path:   path,
	}, nil
}

// SingleJob builds the job for a non-batch run. Without an explicit output
// name the file is called out.<ext>.
func SingleJob(cfg *config.Config) (Job, error) {
	f, err := imageio.ParseFormat(cfg.Output.Format)
	if err != nil {
		return Job{}, err
	}
	name := cfg.Output.Name
	if name == "" {
		name = "out." + f.Ext()
	}
	return NewJob(name, cfg.Render, cfg.Output.Format, filepath.Join(cfg.Output.Dir, name))
}

// Jobs builds one Job per configured batch entry, written as
// <output dir>/<name>.<ext>.
func Jobs(cfg *config.Config) ([]Job, error) {
	jobs := make([]Job, 0, len(cfg.Jobs))
	for _, j := range cfg.Jobs {
		format := cfg.JobFormat(j)
		f, err := imageio.ParseFormat(format)
		if err != nil {
			return nil, fmt.Errorf("batch: job %q: %w", j.Name, err)
		}
		path := filepath.Join(cfg.Output.Dir, j.Name+"."+f.Ext())
		job, err := NewJob(j.Name, cfg.JobRender(j), format, path)
		if err != nil {
			return nil, fmt.Errorf("batch: job %q: %w", j.Name, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}
