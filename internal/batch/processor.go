// Package batch renders jobs to image files, several at a time.
package batch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"sky-raytracer/internal/imageio"
	"sky-raytracer/internal/logger"
	"sky-raytracer/internal/raster"
	"sky-raytracer/internal/scene"
	"sky-raytracer/internal/view"
)

// Config holds the settings shared by every job in a run.
type Config struct {
	Quality int
	// Workers is how many jobs render at once.
	Workers int
	// PixelWorkers is the row-worker count inside each job.
	PixelWorkers int
	// ProgressEvery is the progress log interval; zero means 2s.
	ProgressEvery time.Duration
}

// Result holds the outcome of processing one job.
type Result struct {
	Name    string
	Path    string
	Success bool
	Error   string
	Elapsed time.Duration
}

// Run processes all jobs using a worker pool. Failures are reported per job
// and never stop the run; a cancelled ctx fails the jobs not yet finished.
func Run(ctx context.Context, cfg Config, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	every := cfg.ProgressEvery
	if every <= 0 {
		every = 2 * time.Second
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					logger.Sugar.Infof("[%d/%d] %.1f images/sec", p, total, rate)
				}
			}
		}
	}()

	jobChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = process(ctx, cfg, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func process(ctx context.Context, cfg Config, job Job) Result {
	start := time.Now()
	res := Result{Name: job.Name, Path: job.Path}

	if err := RenderOne(ctx, cfg, job); err != nil {
		res.Error = err.Error()
		logger.Warn("render failed", zap.String("job", job.Name), zap.Error(err))
	} else {
		res.Success = true
	}
	res.Elapsed = time.Since(start)
	return res
}

// RenderOne renders job and writes it to job.Path. Formats without an
// encoder are rejected before any pixel is computed.
func RenderOne(ctx context.Context, cfg Config, job Job) error {
	if err := imageio.CheckWritable(job.Format); err != nil {
		return err
	}

	sh, err := scene.ForGoal(job.Params, job.Goal)
	if err != nil {
		return err
	}
	if s, ok := sh.(*scene.Scene); ok {
		warnDegenerate(job, s.View)
	}

	img, err := raster.RenderImage(ctx, sh, raster.Options{
		Width:   job.Params.Width,
		Height:  job.Params.Height,
		Workers: cfg.PixelWorkers,
	})
	if err != nil {
		return err
	}

	if err := imageio.WriteFile(job.Path, img, job.Format, imageio.Options{Quality: cfg.Quality}); err != nil {
		return err
	}
	logger.Debug("image written", zap.String("job", job.Name), zap.String("path", job.Path))
	return nil
}

// warnDegenerate flags cameras whose basis collapsed. The render still runs
// and the affected pixels come out with whatever bytes NaN converts to.
func warnDegenerate(job Job, v view.View) {
	if v.Degenerate() {
		logger.Warn("camera looks along the up axis; image will be malformed",
			zap.String("job", job.Name),
			zap.Stringer("focus", v.Focus))
	}
}

// Failed returns the failed results.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.Success {
			out = append(out, r)
		}
	}
	return out
}

// IsCannotEncode reports whether err came from asking for a format without
// an encoder.
func IsCannotEncode(err error) bool {
	return errors.Is(err, imageio.ErrCannotEncode)
}
