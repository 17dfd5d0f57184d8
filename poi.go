// Package poi converts stored RGB bitmaps into the bit-sliced,
// multi-strip-interleaved packets a WS2812B parallel output engine consumes,
// and paces them through a periodic, interruptible playback loop.
//
// The poi carries three LED strips mounted in a diagonal offset pattern.
// Spinning it reconstructs a full bitmap through persistence of vision: each
// refresh shows one image row per strip, three rows at a time.
package poi

import "time"

// Physical geometry of the poi. One line of image data feeds all strips at
// one instant, so images are LineWidth pixels wide.
const (
	// LedsPerStrip is the number of LEDs on each physical strip.
	LedsPerStrip = 80

	// StripsPerLine is the number of parallel strips fed from one image line.
	StripsPerLine = 3

	// LineWidth is the pixel width every program image must have.
	LineWidth = LedsPerStrip * StripsPerLine
)

const (
	// DefaultPeriod is the spacing between displayed rows: 400Hz refresh.
	DefaultPeriod = 2500 * time.Microsecond

	// PollPeriod is the slower cadence used while paused or halted.
	PollPeriod = 10 * time.Millisecond
)
