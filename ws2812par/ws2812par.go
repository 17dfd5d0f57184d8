//go:build rp2040

package ws2812par

import (
	"machine"

	pio "github.com/tinygo-org/pio/rp2-pio"
)

const (
	// WS2812B bit rate and the program's cycles per bit (T1+T2+T3).
	bitFreq      = 800_000
	cyclesPerBit = ws2812_parallelT1 + ws2812_parallelT2 + ws2812_parallelT3

	maxStrips = 4
)

// Device drives WS2812B strips on pins base..base+nStrips-1 in parallel.
type Device struct {
	sm     pio.StateMachine
	dma    dmaChannel
	offset uint8
}

// New claims the state machine for the parallel program and starts it.
func New(sm pio.StateMachine, base machine.Pin, nStrips uint8) (*Device, error) {
	if nStrips == 0 || nStrips > maxStrips {
		return nil, errStripRange
	}
	sm.TryClaim() // SM should be claimed beforehand, we just guarantee it's claimed.
	whole, frac, err := pio.ClkDivFromFrequency(bitFreq*cyclesPerBit, machine.CPUFrequency())
	if err != nil {
		return nil, err
	}
	Pio := sm.PIO()
	offset, err := Pio.AddProgram(ws2812_parallelInstructions, ws2812_parallelOrigin)
	if err != nil {
		return nil, err
	}

	pinCfg := machine.PinConfig{Mode: Pio.PinMode()}
	var pinMask uint32
	for i := uint8(0); i < nStrips; i++ {
		pin := base + machine.Pin(i)
		pinMask |= 1 << pin
		pin.Configure(pinCfg)
	}

	cfg := ws2812_parallelProgramDefaultConfig(offset)
	cfg.SetOutPins(base, nStrips)
	// The packer puts the first wire bit in the lowest nibble, so the OSR
	// shifts right and refills every 32 bits.
	cfg.SetOutShift(true, true, 32)
	cfg.SetFIFOJoin(pio.FifoJoinTx)
	cfg.SetClkDivIntFrac(whole, frac)

	sm.SetPinsMasked(0, pinMask)
	sm.SetPindirsMasked(pinMask, pinMask)
	sm.Init(offset, cfg)
	sm.SetEnabled(true)
	return &Device{sm: sm, offset: offset}, nil
}

// EnableDMA feeds the Tx FIFO from the given DMA channel instead of polling.
// The channel is assigned statically by the caller, as on the original board.
func (d *Device) EnableDMA(channel uint8) {
	d.dma = getDMAChannel(channel)
}

// IsDMAEnabled reports whether writes stream over DMA.
func (d *Device) IsDMAEnabled() bool { return d.dma.valid }

// Write hands one packet to the peripheral. With DMA enabled the transfer
// drains in the background and Write only blocks while the previous packet
// is still in flight, so a reused buffer is never repacked mid-transfer.
// The packet must stay unmodified until the next Write returns.
func (d *Device) Write(packet []uint32) error {
	if d.IsDMAEnabled() {
		return d.writeDMA(packet)
	}
	retries := timeoutRetries
	i := 0
	for i < len(packet) {
		if d.sm.IsTxFIFOFull() {
			if retries == 0 {
				return errTimeout
			}
			retries--
			gosched()
			continue
		}
		d.sm.TxPut(packet[i])
		i++
	}
	return nil
}

func (d *Device) writeDMA(packet []uint32) error {
	retries := timeoutRetries
	for d.dma.busy() {
		if retries == 0 {
			return errTimeout
		}
		retries--
		gosched()
	}
	d.dma.trig32(&d.sm.TxReg().Reg, packet, dmaPIO_TxDREQ(d.sm))
	return nil
}
