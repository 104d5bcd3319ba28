package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"strconv"
	"strings"

	"sky-raytracer/internal/imageio"
)

// inspect prints basic facts about a rendered image and the colors at chosen
// pixels, and can write a small preview.
//
//	inspect [-thumb preview.png] [-thumb-size 128] image.webp [x,y ...]
func main() {
	thumb := flag.String("thumb", "", "Write a downscaled preview to this path")
	thumbSize := flag.Int("thumb-size", 128, "Longest side of the preview")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: inspect [flags] image [x,y ...]")
		os.Exit(64)
	}

	img, format, err := imageio.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	b := img.Bounds()
	fmt.Printf("File:   %s\n", flag.Arg(0))
	fmt.Printf("Format: %s\n", format)
	fmt.Printf("Size:   %dx%d\n", b.Dx(), b.Dy())

	points := flag.Args()[1:]
	if len(points) == 0 {
		// Corners and center.
		points = []string{
			"0,0",
			fmt.Sprintf("%d,0", b.Dx()-1),
			fmt.Sprintf("%d,%d", b.Dx()/2, b.Dy()/2),
			fmt.Sprintf("0,%d", b.Dy()-1),
			fmt.Sprintf("%d,%d", b.Dx()-1, b.Dy()-1),
		}
	}

	size := image.Rect(0, 0, b.Dx(), b.Dy())
	for _, p := range points {
		pt, err := parsePoint(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(64)
		}
		if !pt.In(size) {
			fmt.Printf("  (%d,%d) outside image\n", pt.X, pt.Y)
			continue
		}
		c := img.NRGBAAt(b.Min.X+pt.X, b.Min.Y+pt.Y)
		fmt.Printf("  (%d,%d) rgba(%d, %d, %d, %d) #%02x%02x%02x\n", pt.X, pt.Y, c.R, c.G, c.B, c.A, c.R, c.G, c.B)
	}

	if *thumb != "" {
		f, err := imageio.FormatFromPath(*thumb)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(64)
		}
		small := imageio.Thumbnail(img, *thumbSize)
		if err := imageio.WriteFile(*thumb, small, f, imageio.Options{}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Preview: %s (%dx%d)\n", *thumb, small.Bounds().Dx(), small.Bounds().Dy())
	}
}

func parsePoint(s string) (image.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return image.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return image.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return image.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return image.Pt(x, y), nil
}
