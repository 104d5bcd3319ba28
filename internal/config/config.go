// Package config holds render settings: defaults, an optional YAML file, and
// command line overrides, applied in that order.
package config

import (
	"fmt"
	"runtime"
	"strings"
)

// Config holds all configurable render and output settings.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`

	// Jobs switches the renderer to batch mode. Unset job fields inherit
	// from Render and Output.
	Jobs []Job `yaml:"jobs,omitempty"`
}

// RenderConfig describes a single image.
type RenderConfig struct {
	Goal   string `yaml:"goal"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// Camera yaw and pitch in degrees.
	Theta float64 `yaml:"theta"`
	Phi   float64 `yaml:"phi"`
	// Sphere placement for the japan goal.
	Distance float64 `yaml:"distance"`
	Radius   float64 `yaml:"radius"`
	Workers  int     `yaml:"workers"`
}

// OutputConfig says where and how images are written.
type OutputConfig struct {
	Dir     string `yaml:"dir"`
	Name    string `yaml:"name"`
	Format  string `yaml:"format"`
	Quality int    `yaml:"quality"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Job is one entry of a batch run.
type Job struct {
	Name     string   `yaml:"name"`
	Goal     string   `yaml:"goal,omitempty"`
	Width    int      `yaml:"width,omitempty"`
	Height   int      `yaml:"height,omitempty"`
	Theta    *float64 `yaml:"theta,omitempty"`
	Phi      *float64 `yaml:"phi,omitempty"`
	Distance *float64 `yaml:"distance,omitempty"`
	Radius   *float64 `yaml:"radius,omitempty"`
	Format   string   `yaml:"format,omitempty"`
}

// Default returns a Config with the command line defaults.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Goal:     "gradient",
			Width:    1080,
			Height:   720,
			Distance: 5,
			Radius:   1,
		},
		Output: OutputConfig{
			Dir:     ".",
			Format:  "png",
			Quality: 90,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Flags holds CLI flag values that override config file settings.
// Empty strings and nil pointers mean "not given". A given number is applied
// as is, even when out of range, so that Validate can reject it.
type Flags struct {
	Goal     string
	Width    *int
	Height   *int
	Theta    *float64
	Phi      *float64
	Distance *float64
	Radius   *float64
	Workers  *int

	OutDir  string
	OutName string
	Format  string
	Quality *int

	LogLevel string
	LogFile  string
}

// Resolve fills settings the config file left empty, then applies flags over
// them. A zero worker count, from either source, means runtime.NumCPU().
func (c *Config) Resolve(flags Flags) {
	if c.Render.Goal == "" {
		c.Render.Goal = "gradient"
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
	if c.Output.Format == "" {
		c.Output.Format = "png"
	}
	if c.Output.Quality == 0 {
		c.Output.Quality = 90
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if flags.Goal != "" {
		c.Render.Goal = flags.Goal
	}
	if flags.Width != nil {
		c.Render.Width = *flags.Width
	}
	if flags.Height != nil {
		c.Render.Height = *flags.Height
	}
	if flags.Theta != nil {
		c.Render.Theta = *flags.Theta
	}
	if flags.Phi != nil {
		c.Render.Phi = *flags.Phi
	}
	if flags.Distance != nil {
		c.Render.Distance = *flags.Distance
	}
	if flags.Radius != nil {
		c.Render.Radius = *flags.Radius
	}
	if flags.Workers != nil {
		c.Render.Workers = *flags.Workers
	}
	if flags.OutDir != "" {
		c.Output.Dir = flags.OutDir
	}
	if flags.OutName != "" {
		c.Output.Name = flags.OutName
	}
	if flags.Format != "" {
		c.Output.Format = flags.Format
	}
	if flags.Quality != nil {
		c.Output.Quality = *flags.Quality
	}
	if flags.LogLevel != "" {
		c.Logging.Level = flags.LogLevel
	}
	if flags.LogFile != "" {
		c.Logging.LogFile = flags.LogFile
	}

	if c.Render.Workers == 0 {
		c.Render.Workers = runtime.NumCPU()
	}
}

// Validate checks the numeric settings. Goal and format names are checked by
// the packages that own them.
func (c *Config) Validate() error {
	if err := c.Render.validate(); err != nil {
		return err
	}
	if c.Render.Workers < 0 {
		return fmt.Errorf("config: workers %d must not be negative", c.Render.Workers)
	}
	if c.Output.Quality < 1 || c.Output.Quality > 100 {
		return fmt.Errorf("config: quality %d out of range 1-100", c.Output.Quality)
	}
	seen := make(map[string]bool, len(c.Jobs))
	for i, j := range c.Jobs {
		if j.Name == "" {
			return fmt.Errorf("config: job %d has no name", i)
		}
		if strings.ContainsAny(j.Name, `/\`) || strings.Contains(j.Name, "..") {
			return fmt.Errorf("config: job name %q must be a plain file name", j.Name)
		}
		if seen[j.Name] {
			return fmt.Errorf("config: duplicate job name %q", j.Name)
		}
		seen[j.Name] = true
		if err := c.JobRender(j).validate(); err != nil {
			return fmt.Errorf("config: job %q: %w", j.Name, err)
		}
	}
	return nil
}

func (r RenderConfig) validate() error {
	if r.Width < 1 || r.Height < 1 {
		return fmt.Errorf("config: image size %dx%d must be at least 1x1", r.Width, r.Height)
	}
	if r.Radius < 0 {
		return fmt.Errorf("config: radius %g must not be negative", r.Radius)
	}
	return nil
}

// JobRender returns the render settings for j with unset fields taken from
// c.Render.
func (c *Config) JobRender(j Job) RenderConfig {
	r := c.Render
	if j.Goal != "" {
		r.Goal = j.Goal
	}
	if j.Width > 0 {
		r.Width = j.Width
	}
	if j.Height > 0 {
		r.Height = j.Height
	}
	if j.Theta != nil {
		r.Theta = *j.Theta
	}
	if j.Phi != nil {
		r.Phi = *j.Phi
	}
	if j.Distance != nil {
		r.Distance = *j.Distance
	}
	if j.Radius != nil {
		r.Radius = *j.Radius
	}
	return r
}

// JobFormat returns the output format name for j.
func (c *Config) JobFormat(j Job) string {
	if j.Format != "" {
		return j.Format
	}
	return c.Output.Format
}
