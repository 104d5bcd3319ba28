package imageio

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Options tunes the lossy encoders.
type Options struct {
	// Quality is the JPEG quality, 1-100. Zero means 90.
	Quality int
}

type encodeFunc func(w io.Writer, img image.Image, o Options) error

var encoders = map[Format]encodeFunc{
	PNG: func(w io.Writer, img image.Image, _ Options) error {
		return png.Encode(w, img)
	},
	JPEG: func(w io.Writer, img image.Image, o Options) error {
		q := o.Quality
		if q <= 0 {
			q = 90
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: q})
	},
	GIF: func(w io.Writer, img image.Image, _ Options) error {
		return gif.Encode(w, img, nil)
	},
	// nativewebp only writes lossless VP8L.
	WebP: func(w io.Writer, img image.Image, _ Options) error {
		return nativewebp.Encode(w, img, nil)
	},
	TIFF: func(w io.Writer, img image.Image, _ Options) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	},
	TGA: func(w io.Writer, img image.Image, _ Options) error {
		return tga.Encode(w, img)
	},
	BMP: func(w io.Writer, img image.Image, _ Options) error {
		return bmp.Encode(w, img)
	},
}

// CheckWritable returns ErrUnknownFormat or ErrCannotEncode when f cannot be
// written, nil otherwise.
func CheckWritable(f Format) error {
	if f.CanWrite() {
		return nil
	}
	if _, err := ParseFormat(string(f)); err != nil {
		return err
	}
	return fmt.Errorf("imageio: %w %s", ErrCannotEncode, f)
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format, o Options) error {
	if err := CheckWritable(f); err != nil {
		return err
	}
	enc := encoders[f]
	if err := enc(w, img, o); err != nil {
		return fmt.Errorf("imageio: encode %s: %w", f, err)
	}
	return nil
}

var createFile = os.Create

// WriteFile encodes img into path, creating parent directories as needed.
// The format is checked before the file is created so an unsupported format
// leaves nothing behind.
func WriteFile(path string, img image.Image, f Format, o Options) error {
	if err := CheckWritable(f); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("imageio: %w", err)
	}

	file, err := createFile(path)
	if err != nil {
		return fmt.Errorf("imageio: %w", err)
	}

	bw := bufio.NewWriter(file)
	if err := Encode(bw, img, f, o); err != nil {
		file.Close()
		os.Remove(path)
		return err
	}
	if err := bw.Flush(); err != nil {
		file.Close()
		os.Remove(path)
		return fmt.Errorf("imageio: write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("imageio: close %s: %w", path, err)
	}
	return nil
}
