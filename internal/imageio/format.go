// Package imageio maps output format names to encoders and loads images back
// for inspection.
package imageio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an output image format.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	GIF  Format = "gif"
	WebP Format = "webp"
	TIFF Format = "tiff"
	TGA  Format = "tga"
	BMP  Format = "bmp"

	// Recognized by name but no encoder is available.
	PNM      Format = "pnm"
	DDS      Format = "dds"
	ICO      Format = "ico"
	HDR      Format = "hdr"
	OpenEXR  Format = "openexr"
	Farbfeld Format = "farbfeld"
	AVIF     Format = "avif"
	QOI      Format = "qoi"
	PCX      Format = "pcx"
)

var (
	// ErrUnknownFormat is returned for names that are not a Format.
	ErrUnknownFormat = errors.New("unknown image format")
	// ErrCannotEncode is returned for known formats without an encoder.
	ErrCannotEncode = errors.New("cannot encode into format")
)

// Formats lists every recognized format in help order.
var Formats = []Format{
	PNG, JPEG, GIF, WebP, PNM, TIFF, TGA, DDS, BMP,
	ICO, HDR, OpenEXR, Farbfeld, AVIF, QOI, PCX,
}

var aliases = map[string]Format{
	"jpg": JPEG,
	"tif": TIFF,
	"exr": OpenEXR,
	"ff":  Farbfeld,
}

// ParseFormat accepts a format name or common file extension,
// case-insensitively and with or without a leading dot.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	if f, ok := aliases[name]; ok {
		return f, nil
	}
	for _, f := range Formats {
		if Format(name) == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("imageio: %w %q", ErrUnknownFormat, s)
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("imageio: %w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Ext returns the file extension, without the dot, used for default output
// names.
func (f Format) Ext() string {
	return string(f)
}

// CanWrite reports whether Encode supports f.
func (f Format) CanWrite() bool {
	_, ok := encoders[f]
	return ok
}

// FormatNames returns the recognized names joined for help text.
func FormatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

func (f Format) String() string {
	return string(f)
}
