package imageio

import (
	"bufio"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

type decodeFunc func(r io.Reader) (image.Image, error)

// TGA has no magic number, so its decoder would claim any input it is asked
// to sniff. Decoders are therefore chosen by file extension.
var decoders = map[Format]decodeFunc{
	PNG:  png.Decode,
	JPEG: jpeg.Decode,
	GIF:  gif.Decode,
	// nativewebp writes VP8L with the VP8X alpha flag, which plain x/image/webp rejects.
	WebP: nativewebp.DecodeIgnoreAlphaFlag,
	TIFF: tiff.Decode,
	TGA:  tga.Decode,
	BMP:  bmp.Decode,
}

// Load decodes the image at path, picking the decoder from the file
// extension, and returns it as NRGBA along with its format.
func Load(path string) (*image.NRGBA, Format, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, "", err
	}
	dec, ok := decoders[f]
	if !ok {
		return nil, "", fmt.Errorf("imageio: no decoder for %s", f)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer file.Close()

	img, err := dec(bufio.NewReader(file))
	if err != nil {
		return nil, "", fmt.Errorf("imageio: decode %s: %w", path, err)
	}
	return ToNRGBA(img), f, nil
}

// ToNRGBA converts any image to NRGBA format, returning NRGBA input as is.
func ToNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}
