package tray

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync"

	"golang.org/x/image/vector"
)

// IconSize is the edge length of the tray icons in pixels (22pt @2x).
const IconSize = 44

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498

var (
	normalIcon = sync.OnceValue(func() []byte { return encodeIcon(drawNormal()) })
	busyIcon   = sync.OnceValue(func() []byte { return encodeIcon(drawBusy()) })
)

// NormalIcon returns the idle template icon: a ring with its left half
// filled, the usual light/dark glyph.
func NormalIcon() []byte {
	return normalIcon()
}

// BusyIcon returns the template icon shown while a switch is in flight: a
// dimmed ring without the filled half.
func BusyIcon() []byte {
	return busyIcon()
}

func drawNormal() *image.RGBA {
	c := float32(IconSize) / 2
	outer := c - 3
	inner := outer - 4

	z := vector.NewRasterizer(IconSize, IconSize)
	addCircle(z, c, c, outer, false)
	addCircle(z, c, c, inner, true)

	// left half disc inside the ring
	z.MoveTo(c, c-inner)
	z.CubeTo(c-inner*kappa, c-inner, c-inner, c-inner*kappa, c-inner, c)
	z.CubeTo(c-inner, c+inner*kappa, c-inner*kappa, c+inner, c, c+inner)
	z.ClosePath()

	return rasterize(z, color.NRGBA{A: 0xff})
}

func drawBusy() *image.RGBA {
	c := float32(IconSize) / 2
	outer := c - 3
	inner := outer - 4

	z := vector.NewRasterizer(IconSize, IconSize)
	addCircle(z, c, c, outer, false)
	addCircle(z, c, c, inner, true)

	return rasterize(z, color.NRGBA{A: 0x80})
}

// addCircle appends a closed circle. Opposite winding cuts a hole.
func addCircle(z *vector.Rasterizer, cx, cy, r float32, reverse bool) {
	k := r * kappa
	if !reverse {
		z.MoveTo(cx, cy-r)
		z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
		z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
		z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
		z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
		z.ClosePath()
		return
	}
	z.MoveTo(cx, cy-r)
	z.CubeTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy)
	z.CubeTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
	z.CubeTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)
	z.CubeTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r)
	z.ClosePath()
}

func rasterize(z *vector.Rasterizer, fill color.NRGBA) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, IconSize, IconSize))
	z.Draw(dst, dst.Bounds(), image.NewUniform(fill), image.Point{})
	return dst
}

func encodeIcon(img image.Image) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		// encoding an in-memory RGBA cannot fail
		panic(err)
	}
	return buf.Bytes()
}
