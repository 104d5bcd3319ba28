package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"sky-raytracer/internal/batch"
	"sky-raytracer/internal/config"
	"sky-raytracer/internal/imageio"
	"sky-raytracer/internal/logger"
	"sky-raytracer/internal/scene"
)

// Exit codes follow sysexits.h.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 64 // EX_USAGE
	exitDataErr = 65 // EX_DATAERR: valid format name we cannot encode
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: render [flags] [goal]\n\nGoals: %s\nFormats: %s\n\nFlags:\n",
			scene.GoalNames(), imageio.FormatNames())
		fs.PrintDefaults()
	}

	// CLI flags
	configFile := fs.String("config", "", "Path to YAML config file")
	outName := fs.String("out", "", "Output file name (default: out.<ext>)")
	fs.StringVar(outName, "o", "", "Shorthand for -out")
	outDir := fs.String("dir", "", "Output directory (default: .)")
	format := fs.String("format", "", "Output format (default: png)")
	fs.StringVar(format, "f", "", "Shorthand for -format")
	width := fs.Int("width", 0, "Image width in pixels (default: 1080)")
	fs.IntVar(width, "x", 0, "Shorthand for -width")
	height := fs.Int("height", 0, "Image height in pixels (default: 720)")
	fs.IntVar(height, "y", 0, "Shorthand for -height")
	theta := fs.Float64("theta", 0, "Camera yaw in degrees, positive turns right")
	phi := fs.Float64("phi", 0, "Camera pitch in degrees, positive looks up")
	distance := fs.Float64("distance", 0, "Sphere distance for the japan goal (default: 5)")
	radius := fs.Float64("radius", 0, "Sphere radius for the japan goal (default: 1)")
	workers := fs.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	quality := fs.Int("quality", 0, "JPEG quality 1-100 (default: 90)")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")
	logFile := fs.String("log-file", "", "Also log to this rotated file")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Error: expected at most one goal, got %v\n", fs.Args())
		return exitUsage
	}

	// Load config
	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			return exitFailure
		}
	}

	// Numeric flags only count when given, so that an explicit zero or
	// negative value reaches Validate instead of falling back to a default.
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	given := func(name string, v *float64) *float64 {
		if set[name] {
			return v
		}
		return nil
	}
	givenInt := func(v *int, names ...string) *int {
		for _, n := range names {
			if set[n] {
				return v
			}
		}
		return nil
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Goal:     fs.Arg(0),
		Width:    givenInt(width, "width", "x"),
		Height:   givenInt(height, "height", "y"),
		Theta:    given("theta", theta),
		Phi:      given("phi", phi),
		Distance: given("distance", distance),
		Radius:   given("radius", radius),
		Workers:  givenInt(workers, "workers"),
		OutDir:   *outDir,
		OutName:  *outName,
		Format:   *format,
		Quality:  givenInt(quality, "quality"),
		LogLevel: *logLevel,
		LogFile:  *logFile,
	})

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: log level: %v\n", err)
		return exitUsage
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return exitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	bcfg := batch.Config{
		Quality:      cfg.Output.Quality,
		Workers:      cfg.Render.Workers,
		PixelWorkers: cfg.Render.Workers,
	}

	if len(cfg.Jobs) > 0 {
		return runBatch(ctx, cfg, bcfg)
	}
	return runSingle(ctx, cfg, bcfg)
}

func runSingle(ctx context.Context, cfg *config.Config, bcfg batch.Config) int {
	job, err := batch.SingleJob(cfg)
	if err != nil {
		logger.Error("bad arguments", zap.Error(err))
		return exitUsage
	}

	logger.Info("rendering",
		zap.String("goal", job.Goal.String()),
		zap.Int("width", job.Params.Width),
		zap.Int("height", job.Params.Height),
		zap.String("format", job.Format.String()),
		zap.Int("workers", bcfg.PixelWorkers))

	start := time.Now()
	if err := batch.RenderOne(ctx, bcfg, job); err != nil {
		if batch.IsCannotEncode(err) {
			logger.Error("cannot encode into requested format", zap.String("format", job.Format.String()))
			return exitDataErr
		}
		logger.Error("render failed", zap.Error(err))
		return exitFailure
	}

	logger.Info("done", zap.String("output", job.Path), zap.Duration("elapsed", time.Since(start)))
	return exitOK
}

func runBatch(ctx context.Context, cfg *config.Config, bcfg batch.Config) int {
	jobs, err := batch.Jobs(cfg)
	if err != nil {
		logger.Error("bad job list", zap.Error(err))
		return exitUsage
	}

	// Jobs already run in parallel; keep each one on a single row worker.
	bcfg.PixelWorkers = 1

	logger.Info("batch render",
		zap.Int("jobs", len(jobs)),
		zap.Int("workers", bcfg.Workers),
		zap.String("output", cfg.Output.Dir))

	start := time.Now()
	results := batch.Run(ctx, bcfg, jobs)
	failed := batch.Failed(results)

	logger.Info("batch done",
		zap.Int("rendered", len(results)-len(failed)),
		zap.Int("total", len(results)),
		zap.Duration("elapsed", time.Since(start)))

	limit := min(len(failed), 20)
	for _, r := range failed[:limit] {
		logger.Warn("failed", zap.String("job", r.Name), zap.String("error", r.Error))
	}

	manifestPath := filepath.Join(cfg.Output.Dir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, jobs, results); err != nil {
		logger.Warn("manifest write failed", zap.Error(err))
	} else {
		logger.Info("manifest written", zap.String("path", manifestPath))
	}

	if len(failed) > 0 {
		return exitFailure
	}
	return exitOK
}
