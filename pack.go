package poi

import "fmt"

// Packer turns image lines into interleaved output packets. A packet always
// holds 3 words (G, R, B in wire order) per LED position regardless of how
// many lines were combined to produce it.
type Packer struct {
	leds   int
	strips int
}

// NewPacker builds a packer for leds LED positions per strip and strips
// parallel strips per line. The output engine interleaves at most 4 strips.
func NewPacker(leds, strips int) (*Packer, error) {
	if leds <= 0 {
		return nil, fmt.Errorf("poi: invalid LED count %d", leds)
	}
	if strips < 1 || strips > 4 {
		return nil, fmt.Errorf("poi: strip count %d outside 1..4", strips)
	}
	return &Packer{leds: leds, strips: strips}, nil
}

// Len is the packet length in words.
func (p *Packer) Len() int { return 3 * p.leds }

// LineBytes is the required input line length.
func (p *Packer) LineBytes() int { return 3 * p.leds * p.strips }

// PackLine packs a single image line. LED position i on strip s shows the
// pixel at group i offset s, so one line paints all strips at one instant.
// dst must be Len() words and line LineBytes() bytes; both are guaranteed by
// the extractor and the playback loop, so no bounds are re-checked here.
func (p *Packer) PackLine(dst []uint32, line []byte) {
	var g, r, b [4]uint8
	for i := 0; i < p.leds; i++ {
		o := i * p.strips * 3
		for s := 0; s < p.strips; s++ {
			r[s] = line[o+s*3]
			g[s] = line[o+s*3+1]
			b[s] = line[o+s*3+2]
		}
		dst[i*3] = Interleave(g[0], g[1], g[2], g[3])
		dst[i*3+1] = Interleave(r[0], r[1], r[2], r[3])
		dst[i*3+2] = Interleave(b[0], b[1], b[2], b[3])
	}
}

// PackStagger packs three consecutive image lines for the offset mount,
// where strip 0 sits one row ahead of strip 1 and two ahead of strip 2
// along the swing direction:
//
//	|          [2-0]       [2-1]       [2-2]     ...  [2-79] <- line0
//	|      [1-0]       [1-1]       [1-2]    ...  [1-79]      <- line1
//	V  [0-0]       [0-1]       [0-2]   ...  [0-79]           <- line2
//	swing
//
// reverse flips the mapping for a strip mounted the other way around.
// Only defined for a 3-strip packer.
func (p *Packer) PackStagger(dst []uint32, line0, line1, line2 []byte, reverse bool) {
	if reverse {
		line0, line2 = line2, line0
	}
	for i := 0; i < p.leds; i++ {
		o := i * 9
		dst[i*3] = Interleave(line2[o+1], line1[o+4], line0[o+7], 0)
		dst[i*3+1] = Interleave(line2[o], line1[o+3], line0[o+6], 0)
		dst[i*3+2] = Interleave(line2[o+2], line1[o+5], line0[o+8], 0)
	}
}
