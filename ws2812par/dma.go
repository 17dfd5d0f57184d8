//go:build rp2040

package ws2812par

import (
	"device/rp"
	"runtime/volatile"
	"unsafe"

	pio "github.com/tinygo-org/pio/rp2-pio"
)

// Single DMA channel register block. See rp.DMA_Type.
type dmaChannelHW struct {
	READ_ADDR   volatile.Register32
	WRITE_ADDR  volatile.Register32
	TRANS_COUNT volatile.Register32
	CTRL_TRIG   volatile.Register32
	_           [12]volatile.Register32 // aliases
}

// DMA channels usable on the RP2040.
var dmaChannels = (*[12]dmaChannelHW)(unsafe.Pointer(rp.DMA))

type dmaChannel struct {
	hw      *dmaChannelHW
	channel uint8
	valid   bool
}

func getDMAChannel(channel uint8) dmaChannel {
	return dmaChannel{hw: &dmaChannels[channel], channel: channel, valid: true}
}

// dmaPIO_TxDREQ selects the transfer request signal of a state machine's Tx
// FIFO, so the channel paces itself against FIFO space.
func dmaPIO_TxDREQ(sm pio.StateMachine) uint32 {
	const _DREQ_PIO0_TX0 = 0x0
	return _DREQ_PIO0_TX0 + uint32(sm.PIO().BlockIndex())*8 + uint32(sm.StateMachineIndex())
}

// trig32 starts a 32-bit transfer of src into the register at dst and
// returns immediately; the caller checks busy before reusing src.
func (ch dmaChannel) trig32(dst *uint32, src []uint32, dreq uint32) {
	hw := ch.hw
	hw.READ_ADDR.Set(uint32(uintptr(unsafe.Pointer(&src[0]))))
	hw.WRITE_ADDR.Set(uint32(uintptr(unsafe.Pointer(dst))))
	hw.TRANS_COUNT.Set(uint32(len(src)))

	var cc dmaChannelConfig
	cc.CTRL = hw.CTRL_TRIG.Get()
	cc.setTREQ_SEL(dreq)
	cc.setTransferDataSize(dmaTxSize32)
	cc.setChainTo(uint32(ch.channel))
	cc.setReadIncrement(true)
	cc.setWriteIncrement(false)
	cc.setEnable(true)
	hw.CTRL_TRIG.Set(cc.CTRL)
}

func (ch dmaChannel) busy() bool {
	return ch.hw.CTRL_TRIG.Get()&rp.DMA_CH0_CTRL_TRIG_BUSY != 0
}

type dmaTxSize uint32

const (
	dmaTxSize8 dmaTxSize = iota
	dmaTxSize16
	dmaTxSize32
)

type dmaChannelConfig struct {
	CTRL uint32
}

// Select a Transfer Request signal. The channel uses the transfer request
// signal to pace its data transfer rate. 0x0 to 0x3a -> select DREQ n as TREQ.
func (cc *dmaChannelConfig) setTREQ_SEL(dreq uint32) {
	cc.CTRL = (cc.CTRL & ^uint32(rp.DMA_CH0_CTRL_TRIG_TREQ_SEL_Msk)) | (dreq << rp.DMA_CH0_CTRL_TRIG_TREQ_SEL_Pos)
}

func (cc *dmaChannelConfig) setChainTo(chainTo uint32) {
	cc.CTRL = (cc.CTRL & ^uint32(rp.DMA_CH0_CTRL_TRIG_CHAIN_TO_Msk)) | (chainTo << rp.DMA_CH0_CTRL_TRIG_CHAIN_TO_Pos)
}

func (cc *dmaChannelConfig) setTransferDataSize(size dmaTxSize) {
	cc.CTRL = (cc.CTRL & ^uint32(rp.DMA_CH0_CTRL_TRIG_DATA_SIZE_Msk)) | (uint32(size) << rp.DMA_CH0_CTRL_TRIG_DATA_SIZE_Pos)
}

func (cc *dmaChannelConfig) setReadIncrement(incr bool) {
	setBitPos(&cc.CTRL, rp.DMA_CH0_CTRL_TRIG_INCR_READ_Pos, incr)
}

func (cc *dmaChannelConfig) setWriteIncrement(incr bool) {
	setBitPos(&cc.CTRL, rp.DMA_CH0_CTRL_TRIG_INCR_WRITE_Pos, incr)
}

func (cc *dmaChannelConfig) setEnable(enable bool) {
	setBitPos(&cc.CTRL, rp.DMA_CH0_CTRL_TRIG_EN_Pos, enable)
}

func setBitPos(cc *uint32, pos uint32, bit bool) {
	if bit {
		*cc = *cc | (1 << pos)
	} else {
		*cc = *cc & ^(1 << pos) // unset bit.
	}
}
