package poi

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"
)

// Output accepts one packed refresh and streams it to the LED strips.
// Implementations must not retain the packet past the transfer; the caller
// reuses it on the next refresh.
type Output interface {
	Write(packet []uint32) error
}

// Controls reads the external mode inputs. Selector returns the raw switch
// bank value; PauseHeld reports whether the pause button is currently down.
type Controls interface {
	Selector() uint8
	PauseHeld() bool
}

// Raw selector layout: low 4 bits choose the program, bit 4 flips the
// staggered mapping for a reversed strip mount.
const (
	selectorImageMask  = 0x0f
	selectorReverseBit = 0x10
)

// haltIdx is the cursor sentinel for a finished non-looping animation.
const haltIdx = math.MinInt32

// State is the playback state derived from the cursor and pause latch.
type State uint8

const (
	// StateRun refreshes the strips every image period.
	StateRun State = iota
	// StateHalt holds the last latched frame after a non-looping animation.
	StateHalt
	// StateWait blanks the strips while the pause button is down.
	StateWait
)

// Player owns the playback cursor and drives the refresh loop.
//
//	RUN  --(end of rows && loop disabled)--> HALT
//	RUN  --(pause edge)--------------------> WAIT
//	HALT --(pause edge)--------------------> WAIT
//	WAIT --(button released)---------------> RUN (program reselected)
type Player struct {
	out    Output
	ctrl   Controls
	sel    func(code uint8) *Image
	packer *Packer
	packet []uint32

	img     *Image
	reverse bool
	idx     int

	// Written by the button edge handler, cleared only by the loop.
	pauseReq atomic.Bool

	poll  time.Duration
	now   func() time.Time
	sleep func(time.Duration)
}

// NewPlayer wires the loop to an output channel, the mode inputs and a
// program table, and primes the cursor for the initially selected program.
func NewPlayer(out Output, ctrl Controls, sel func(code uint8) *Image, packer *Packer) (*Player, error) {
	p := &Player{
		out:    out,
		ctrl:   ctrl,
		sel:    sel,
		packer: packer,
		packet: make([]uint32, packer.Len()),
		poll:   PollPeriod,
		now:    time.Now,
		sleep:  time.Sleep,
	}
	p.reselect()
	if got := p.img.Width * 3; got != packer.LineBytes() {
		return nil, fmt.Errorf("poi: image lines are %d bytes, packer wants %d", got, packer.LineBytes())
	}
	return p, nil
}

// RequestPause latches a pause request. Safe to call from a pin interrupt;
// this is the only entry point shared across execution contexts.
func (p *Player) RequestPause() { p.pauseReq.Store(true) }

// Reverse reports the orientation bit of the current selection.
func (p *Player) Reverse() bool { return p.reverse }

// State reports the current playback state.
func (p *Player) State() State {
	switch {
	case p.pauseReq.Load():
		return StateWait
	case p.idx == haltIdx:
		return StateHalt
	}
	return StateRun
}

// reselect re-reads the selector, swaps in the chosen program and re-primes
// the cursor. Multiline programs start at -2 so the first two rows of the
// three-row window are blank and the image fades in.
func (p *Player) reselect() {
	raw := p.ctrl.Selector()
	p.img = p.sel(raw & selectorImageMask)
	p.reverse = raw&selectorReverseBit != 0
	if p.img.Multiline {
		p.idx = -2
	} else {
		p.idx = 0
	}
}

// Run drives the loop for the process lifetime.
func (p *Player) Run() {
	for {
		p.Tick()
	}
}

// Tick executes one loop iteration, including its end-of-tick sleep.
func (p *Player) Tick() {
	if p.pauseReq.Load() {
		if !p.ctrl.PauseHeld() {
			// Button back up: consume the latch and restart with a
			// freshly selected program.
			p.pauseReq.Store(false)
			p.reselect()
			return
		}
		// Blank the strips at the slow poll rate until release.
		p.packer.PackLine(p.packet, p.img.Line(-1))
		p.submit()
		p.sleep(p.poll)
		return
	}

	if p.idx == haltIdx {
		// Terminal hold: the last latched frame stays on the LEDs.
		p.sleep(p.poll)
		return
	}

	start := p.now()
	if p.img.Multiline {
		p.packer.PackStagger(p.packet,
			p.img.Line(p.idx), p.img.Line(p.idx+1), p.img.Line(p.idx+2), p.reverse)
	} else {
		p.packer.PackLine(p.packet, p.img.Line(p.idx))
	}
	p.submit()

	p.idx++
	if p.idx >= p.img.Limit() {
		if p.img.Loop {
			p.idx = 0
		} else {
			p.idx = haltIdx
		}
	}
	p.sleepSince(p.img.Period, start)
}

func (p *Player) submit() {
	if err := p.out.Write(p.packet); err != nil {
		// A failed refresh shows up as a wrong or frozen pattern; there is
		// nobody to report it to.
		println("poi: output write:", err.Error())
	}
}

// sleepSince sleeps out the remainder of period d measured from since.
// A late tick proceeds immediately; frames are never skipped to catch up.
func (p *Player) sleepSince(d time.Duration, since time.Time) {
	spent := p.now().Sub(since)
	if spent >= d {
		return
	}
	p.sleep(d - spent)
}
