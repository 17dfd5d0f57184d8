// Package ws2812par is a PIO driver for up to four WS2812B LED strips wired
// to consecutive pins and refreshed in parallel. The state machine clocks
// out one bit-time for every strip per 4-bit chunk, so each 32-bit FIFO word
// carries eight bit-times across all lanes; poi.Interleave produces words in
// exactly this layout. A DMA channel can feed the Tx FIFO so a whole packet
// streams out in the background.
package ws2812par

import (
	"errors"
	"math"
	"runtime"
)

const timeoutRetries = math.MaxUint16 * 8

var (
	errTimeout    = errors.New("ws2812par:timeout")
	errStripRange = errors.New("ws2812par:strip count outside 1..4")
)

//go:generate pioasm -o go ws2812_parallel.pio ws2812_parallel_pio.go

func gosched() {
	runtime.Gosched()
}
