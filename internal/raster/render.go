// Package raster fills an image by asking a shader for every pixel.
package raster

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"

	"sky-raytracer/internal/logger"
)

// Shader answers the color of the pixel at normalized (x, y).
// It is called from several goroutines at once.
type Shader interface {
	Color(x, y float64) color.RGBA
}

// Options controls a render.
type Options struct {
	Width   int
	Height  int
	Workers int // <= 0 means runtime.NumCPU()
}

// Coord maps pixel index i of n to [0, 1] so the first and last pixels land
// exactly on the viewport edges. A single-pixel axis samples the center.
func Coord(i, n int) float64 {
	if n <= 1 {
		return 0.5
	}
	return float64(i) / float64(n-1)
}

// Render evaluates sh once per pixel using a pool of row workers and returns
// the filled frame buffer. Rows are independent, so the result does not
// depend on the worker count. If ctx is cancelled the partial buffer is
// discarded and ctx.Err() is returned.
func Render(ctx context.Context, sh Shader, opts Options) (*FrameBuffer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", opts.Width, opts.Height)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > opts.Height {
		workers = opts.Height
	}

	start := time.Now()
	fb := NewFrameBuffer(opts.Width, opts.Height)

	rows := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				renderRow(fb, sh, y)
			}
		}()
	}

	var err error
send:
	for y := 0; y < opts.Height; y++ {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case rows <- y:
		case <-ctx.Done():
			err = ctx.Err()
			break send
		}
	}
	close(rows)
	wg.Wait()

	if err != nil {
		return nil, err
	}

	logger.Debug("frame rendered",
		zap.Int("width", opts.Width),
		zap.Int("height", opts.Height),
		zap.Int("workers", workers),
		zap.Duration("elapsed", time.Since(start)))
	return fb, nil
}

func renderRow(fb *FrameBuffer, sh Shader, y int) {
	fy := Coord(y, fb.Height)
	for x := 0; x < fb.Width; x++ {
		fb.Set(x, y, sh.Color(Coord(x, fb.Width), fy))
	}
}

// RenderImage is Render followed by FrameBuffer.Image.
func RenderImage(ctx context.Context, sh Shader, opts Options) (*image.NRGBA, error) {
	fb, err := Render(ctx, sh, opts)
	if err != nil {
		return nil, err
	}
	return fb.Image(), nil
}
