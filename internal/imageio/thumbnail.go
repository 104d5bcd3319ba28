package imageio

import (
	"image"

	"golang.org/x/image/draw"
)

// Thumbnail scales img down with CatmullRom filtering so that neither side
// exceeds maxSide, keeping the aspect ratio. Images already small enough are
// returned unscaled.
func Thumbnail(img image.Image, maxSide int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return ToNRGBA(img)
	}

	tw, th := maxSide, maxSide
	if w >= h {
		th = max(1, h*maxSide/w)
	} else {
		tw = max(1, w*maxSide/h)
	}

	// Scaling in premultiplied space avoids dark fringes at transparent edges.
	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return ToNRGBA(dst)
}
