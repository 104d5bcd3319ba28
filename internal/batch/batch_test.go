package batch

import (
	"context"
	"encoding/json"
	"errors"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"sky-raytracer/internal/config"
	"sky-raytracer/internal/imageio"
	"sky-raytracer/internal/scene"
)

func ptr(f float64) *float64 { return &f }

func smallConfig(dir string) *config.Config {
	cfg := config.Default()
	cfg.Render.Width = 16
	cfg.Render.Height = 8
	cfg.Output.Dir = dir
	return cfg
}

func TestSingleJobDefaults(t *testing.T) {
	cfg := smallConfig("out")
	cfg.Output.Format = "webp"
	cfg.Render.Theta = 90

	job, err := SingleJob(cfg)
	if err != nil {
		t.Fatalf("SingleJob: %v", err)
	}
	if job.Path != filepath.Join("out", "out.webp") {
		t.Errorf("Path = %s", job.Path)
	}
	if job.Goal != scene.GoalGradient || job.Format != imageio.WebP {
		t.Errorf("job = %+v", job)
	}
	if math.Abs(job.Params.Theta-math.Pi/2) > 1e-12 {
		t.Errorf("Theta = %v, want π/2", job.Params.Theta)
	}

	cfg.Output.Name = "custom.png"
	job, err = SingleJob(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if job.Path != filepath.Join("out", "custom.png") {
		t.Errorf("Path = %s", job.Path)
	}
}

func TestSingleJobBadNames(t *testing.T) {
	cfg := smallConfig("out")
	cfg.Render.Goal = "teapot"
	if _, err := SingleJob(cfg); !errors.Is(err, scene.ErrUnknownGoal) {
		t.Errorf("error = %v, want ErrUnknownGoal", err)
	}

	cfg = smallConfig("out")
	cfg.Output.Format = "psd"
	if _, err := SingleJob(cfg); !errors.Is(err, imageio.ErrUnknownFormat) {
		t.Errorf("error = %v, want ErrUnknownFormat", err)
	}
}

func TestJobs(t *testing.T) {
	cfg := smallConfig("renders")
	cfg.Render.Goal = "japan"
	cfg.Jobs = []config.Job{
		{Name: "front"},
		{Name: "side", Theta: ptr(90), Format: "bmp", Goal: "sky"},
	}

	jobs, err := Jobs(cfg)
	if err != nil {
		t.Fatalf("Jobs: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("got %d jobs", len(jobs))
	}
	if jobs[0].Path != filepath.Join("renders", "front.png") || jobs[0].Goal != scene.GoalJapan {
		t.Errorf("front = %+v", jobs[0])
	}
	if jobs[1].Path != filepath.Join("renders", "side.bmp") || jobs[1].Goal != scene.GoalSky {
		t.Errorf("side = %+v", jobs[1])
	}

	cfg.Jobs = append(cfg.Jobs, config.Job{Name: "bad", Goal: "nope"})
	if _, err := Jobs(cfg); !errors.Is(err, scene.ErrUnknownGoal) {
		t.Errorf("error = %v, want ErrUnknownGoal", err)
	}
}

func TestRunWritesImagesAndManifest(t *testing.T) {
	dir := t.TempDir()
	cfg := smallConfig(dir)
	cfg.Jobs = []config.Job{
		{Name: "grad"},
		{Name: "flag", Goal: "japan", Format: "webp", Radius: ptr(2)},
		{Name: "rg", Goal: "red-green", Format: "tiff"},
		{Name: "nope", Format: "qoi"},
	}
	jobs, err := Jobs(cfg)
	if err != nil {
		t.Fatal(err)
	}

	results := Run(context.Background(), Config{Workers: 3, PixelWorkers: 2}, jobs)
	if len(results) != 4 {
		t.Fatalf("got %d results", len(results))
	}
	for i, r := range results[:3] {
		if !r.Success {
			t.Errorf("job %s failed: %s", jobs[i].Name, r.Error)
		}
	}
	if failed := Failed(results); len(failed) != 1 || failed[0].Name != "nope" {
		t.Errorf("Failed() = %+v", failed)
	}

	img, _, err := imageio.Load(filepath.Join(dir, "flag.webp"))
	if err != nil {
		t.Fatalf("load flag: %v", err)
	}
	// The sphere sits dead ahead, so the middle of the frame is red.
	if c := img.NRGBAAt(8, 4); c != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("center pixel = %v, want red", c)
	}
	if _, err := os.Stat(filepath.Join(dir, "nope.qoi")); !os.IsNotExist(err) {
		t.Errorf("unencodable job left a file: %v", err)
	}

	manifest := filepath.Join(dir, "manifest.json")
	if err := WriteManifest(manifest, jobs, results); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	data, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("manifest is not JSON: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("manifest has %d entries", len(entries))
	}
	if entries[1].Image != "flag.webp" || entries[1].Goal != "japan" || !entries[1].Success {
		t.Errorf("flag entry = %+v", entries[1])
	}
	if entries[1].Radius != 2 || entries[1].Distance != 5 {
		t.Errorf("flag sphere = %g/%g", entries[1].Distance, entries[1].Radius)
	}
	if entries[3].Success || entries[3].Error == "" {
		t.Errorf("nope entry = %+v", entries[3])
	}
}

func TestRenderOneUnsupportedFormat(t *testing.T) {
	job := Job{Name: "x", Goal: scene.GoalSky, Params: scene.DefaultParams(), Format: imageio.AVIF, Path: filepath.Join(t.TempDir(), "x.avif")}
	err := RenderOne(context.Background(), Config{}, job)
	if !IsCannotEncode(err) {
		t.Errorf("RenderOne error = %v, want cannot-encode", err)
	}
}

func TestRunCancelled(t *testing.T) {
	dir := t.TempDir()
	cfg := smallConfig(dir)
	cfg.Jobs = []config.Job{{Name: "a"}, {Name: "b"}}
	jobs, err := Jobs(cfg)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results := Run(ctx, Config{Workers: 1}, jobs)
	for _, r := range results {
		if r.Success {
			t.Errorf("job %s succeeded after cancel", r.Name)
		}
	}
}
