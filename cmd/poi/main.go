//go:build rp2040

// Firmware for a three-strip WS2812B poi on an RP2040 board (Seeed XIAO
// RP2040 pinout). A DIP bank selects the animation program and the strip
// orientation; a push button pauses playback and re-reads the selection on
// release.
package main

import (
	"machine"

	pio "github.com/tinygo-org/pio/rp2-pio"

	poi "github.com/sokosun/oreore-poi"
	"github.com/sokosun/oreore-poi/images"
	"github.com/sokosun/oreore-poi/ws2812par"
)

// Pin assignment
//
// D0/GPIO26:  strip 0 data
// D1/GPIO27:  strip 1 data
// D2/GPIO28:  strip 2 data
// D5/GPIO7:   push switch
// D6/GPIO0:   DIP[0]
// D7/GPIO1:   DIP[1]
// D8/GPIO2:   DIP[2]
// D9/GPIO4:   DIP[3]
// D10/GPIO3:  DIP[4]
const (
	stripBasePin = machine.GPIO26
	pushPin      = machine.GPIO7
	userLED      = machine.GPIO25 // debug: lit when reverse is selected
	dmaChannel   = 0
)

// DIP[3] and DIP[4] are routed to swapped GPIOs on the board; the slice
// order encodes that, not a typo.
var dipPins = []machine.Pin{
	machine.GPIO0,
	machine.GPIO1,
	machine.GPIO2,
	machine.GPIO4,
	machine.GPIO3,
}

// board reads the mode inputs. All switch pins are pulled up; a DIP bit
// reads 1 while the switch is open and the push button reads low while held.
type board struct{}

func (board) Selector() (v uint8) {
	for i, pin := range dipPins {
		if pin.Get() {
			v |= 1 << i
		}
	}
	return v
}

func (board) PauseHeld() bool {
	return !pushPin.Get()
}

func main() {
	inputCfg := machine.PinConfig{Mode: machine.PinInputPullup}
	for _, pin := range dipPins {
		pin.Configure(inputCfg)
	}
	pushPin.Configure(inputCfg)
	userLED.Configure(machine.PinConfig{Mode: machine.PinOutput})

	sm, err := pio.PIO0.ClaimStateMachine()
	if err != nil {
		panic(err.Error())
	}
	// Lane 3 is wired but unpopulated; the packer always sends zeros on it.
	dev, err := ws2812par.New(sm, stripBasePin, poi.StripsPerLine+1)
	if err != nil {
		panic(err.Error())
	}
	dev.EnableDMA(dmaChannel)

	packer, err := poi.NewPacker(poi.LedsPerStrip, poi.StripsPerLine)
	if err != nil {
		panic(err.Error())
	}
	player, err := poi.NewPlayer(dev, board{}, images.Select, packer)
	if err != nil {
		panic(err.Error())
	}
	userLED.Set(player.Reverse())

	err = pushPin.SetInterrupt(machine.PinFalling, func(machine.Pin) {
		player.RequestPause()
	})
	if err != nil {
		panic(err.Error())
	}

	player.Run()
}
