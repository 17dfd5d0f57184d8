package poi

import (
	"fmt"
	"time"
)

// Options configures how a program image is played back.
type Options struct {
	// Period is the time between displayed rows. Zero means DefaultPeriod.
	Period time.Duration

	// Loop restarts the animation from row 0 instead of halting at the end.
	Loop bool

	// Mirror traverses rows forward then backward (ABC plays as ABCCBA),
	// doubling the effective row count.
	Mirror bool

	// Multiline drives the staggered three-strip mount: each refresh shows
	// three consecutive rows, one per strip.
	Multiline bool
}

// Image is one selectable animation program. It is immutable after
// construction; Pix must never be written through.
type Image struct {
	Pix    []byte // Height rows of Width pixels, 3 bytes each (R, G, B)
	Width  int
	Height int
	Options

	blank []byte
}

// NewImage validates the pixel buffer against the given geometry. A length
// mismatch is a build-time asset error and unrecoverable.
func NewImage(pix []byte, width, height int, opts Options) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("poi: invalid image geometry %dx%d", width, height)
	}
	if len(pix) != width*height*3 {
		return nil, fmt.Errorf("poi: image buffer is %d bytes, want %d for %dx%d",
			len(pix), width*height*3, width, height)
	}
	if opts.Period == 0 {
		opts.Period = DefaultPeriod
	}
	return &Image{
		Pix:     pix,
		Width:   width,
		Height:  height,
		Options: opts,
		blank:   make([]byte, width*3),
	}, nil
}

// Must panics on a construction error. For statically preconfigured programs.
func Must(img *Image, err error) *Image {
	if err != nil {
		panic(err.Error())
	}
	return img
}

// Limit is the number of rows one traversal of the animation covers.
func (img *Image) Limit() int {
	if img.Mirror {
		return 2 * img.Height
	}
	return img.Height
}

// Line resolves a requested row index into a row buffer of Width*3 bytes.
// Out-of-range indices degrade to the shared blank line: negative rows
// always, rows at or past Limit when the image does not loop. Looping
// indices wrap; mirrored indices past Height map onto the reversed rows.
// The returned slice aliases shared storage and must not be modified.
func (img *Image) Line(y int) []byte {
	if y < 0 {
		return img.blank
	}
	limit := img.Limit()
	if !img.Loop && y >= limit {
		return img.blank
	}
	m := y % limit
	if img.Mirror && m >= img.Height {
		m = limit - m - 1
	}
	stride := 3 * img.Width
	return img.Pix[stride*m : stride*(m+1)]
}
