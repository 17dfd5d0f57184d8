package poi

// The output engine refreshes up to four strips simultaneously. Every 32-bit
// word it consumes carries eight bit-times for all strips at once: word bit
// 4k+s is bit 7-k of strip s's current color byte, so the most significant
// color bit lands in the lowest nibble and is shifted out first.

// spreadLUT maps a byte onto lane 0 of an interleaved word: color bit 7-k
// goes to word bit 4k.
var spreadLUT = makeSpreadLUT()

func makeSpreadLUT() (lut [256]uint32) {
	for v := range lut {
		for k := 0; k < 8; k++ {
			if v&(0x80>>k) != 0 {
				lut[v] |= 1 << (4 * k)
			}
		}
	}
	return lut
}

// Interleave packs one channel byte per strip into a single output word.
// Unused trailing strips pass zero and contribute no bits.
func Interleave(v0, v1, v2, v3 uint8) uint32 {
	return spreadLUT[v0] | spreadLUT[v1]<<1 | spreadLUT[v2]<<2 | spreadLUT[v3]<<3
}
