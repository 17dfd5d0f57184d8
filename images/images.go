// Package images holds the preconfigured animation programs and the mapping
// from the selector switch bank to a program.
//
// The art is generated at init time instead of being embedded as pixel
// literals; cmd/poiimg emits the literal form for hand-drawn artwork.
package images

import (
	"math"

	poi "github.com/sokosun/oreore-poi"
)

// Programs selectable from the DIP bank.
var (
	Bluewave = poi.Must(bluewave())
	Rainbow  = poi.Must(rainbow())
	Symbol   = poi.Must(symbol())
	Red      = poi.Must(solid(0xff, 0, 0))
	Green    = poi.Must(solid(0, 0xff, 0))
	Blue     = poi.Must(solid(0, 0, 0xff))
)

// Select maps the low 4 selector bits to a program. The mapping is
// many-to-one so neighbouring switch positions are forgiving.
func Select(code uint8) *poi.Image {
	switch code & 0x0f {
	case 9:
		return Symbol
	case 10:
		return Rainbow
	case 11, 12:
		return Red
	case 13:
		return Green
	case 14, 15:
		return Blue
	default: // 0..8
		return Bluewave
	}
}

// dim halves every channel. Full-brightness art at 400Hz pulls more current
// than the battery pack sustains.
func dim(v float64) byte {
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	return byte(v) >> 1
}

// generate renders a width x height image from a per-pixel color function.
func generate(width, height int, opts poi.Options, at func(x, y int) (r, g, b float64)) (*poi.Image, error) {
	pix := make([]byte, width*height*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b := at(x, y)
			o := (y*width + x) * 3
			pix[o] = dim(r)
			pix[o+1] = dim(g)
			pix[o+2] = dim(b)
		}
	}
	return poi.NewImage(pix, width, height, opts)
}

// bluewave is a slow single-shot swell of blue along the strips.
func bluewave() (*poi.Image, error) {
	const height = 48
	opts := poi.Options{Period: 3 * poi.DefaultPeriod}
	return generate(poi.LineWidth, height, opts, func(x, y int) (r, g, b float64) {
		phase := 2 * math.Pi * (float64(x)/poi.LineWidth + float64(y)/height)
		v := (math.Sin(phase) + 1) / 2
		return 0, 64 * v, 255 * v
	})
}

// rainbow sweeps the hue wheel along the strips and drifts it per row.
func rainbow() (*poi.Image, error) {
	const height = 36
	opts := poi.Options{Loop: true, Multiline: true}
	return generate(poi.LineWidth, height, opts, func(x, y int) (r, g, b float64) {
		hue := math.Mod(float64(x)/poi.LineWidth+float64(y)/height, 1)
		return hsv(hue)
	})
}

// symbol is a ring pattern that reads as concentric circles when spun.
func symbol() (*poi.Image, error) {
	const height = 64
	opts := poi.Options{Loop: true, Multiline: true}
	return generate(poi.LineWidth, height, opts, func(x, y int) (r, g, b float64) {
		// Distance from the image center, normalized to 0..1.
		dx := float64(x)/poi.LineWidth - 0.5
		dy := float64(y)/height - 0.5
		d := 2 * math.Hypot(dx, dy)
		switch {
		case d < 0.25:
			return 255, 255, 255
		case d >= 0.4 && d < 0.55:
			return 255, 32, 0
		case d >= 0.7 && d < 0.8:
			return 0, 32, 255
		}
		return 0, 0, 0
	})
}

// solid is a one-row constant color, for use as a plain glow stick.
func solid(r, g, b byte) (*poi.Image, error) {
	opts := poi.Options{Loop: true, Multiline: true}
	return generate(poi.LineWidth, 1, opts, func(int, int) (float64, float64, float64) {
		return float64(r), float64(g), float64(b)
	})
}

// hsv converts a hue in 0..1 at full saturation and value to RGB.
func hsv(h float64) (r, g, b float64) {
	h = math.Mod(h, 1) * 6
	c := 255.0
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))
	switch {
	case h < 1:
		return c, x, 0
	case h < 2:
		return x, c, 0
	case h < 3:
		return 0, c, x
	case h < 4:
		return 0, x, c
	case h < 5:
		return x, 0, c
	}
	return c, 0, x
}
