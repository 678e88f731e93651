package gpio

import (
	"pinmux-go/errcode"
	"pinmux-go/pinmux"
	"pinmux-go/x/bitx"
)

// Pin is the per-pin handle: digital read, matrix binding and the RTC
// accessor. Drive operations live on the Output type, which can only be
// constructed for pins whose capability record allows output; an
// input-only pin's handles simply have no write surface.
//
// A Pin tracks at most one binding per direction; rebinding overwrites.
// Nothing here locks: one logical owner per writable pin is the caller's
// contract.
type Pin struct {
	c   *Controller
	rec *pinmux.PinRecord

	bound [2]*BoundFunction
}

func (p *Pin) Index() int                { return p.rec.Index() }
func (p *Pin) ID() string                { return p.rec.ID() }
func (p *Pin) Record() *pinmux.PinRecord { return p.rec }

// Read samples the pin's level through its bank register.
func (p *Pin) Read() bool {
	return bitx.Has(p.c.io.ReadLevels(p.rec.Bank()), int(p.rec.Bit()))
}

// RTCIndex is the low-power-domain accessor: the RTC-local pin number,
// present only for pins wired into the always-on domain.
func (p *Pin) RTCIndex() (uint8, bool) { return p.rec.RTCIndex() }

// BoundFunction is the token a successful bind yields: proof that the
// (pin, direction, signal) triple is declared, carrying the exact mux slot
// peripheral code must program. It is never synthesised any other way.
type BoundFunction struct {
	Pin       int
	Direction pinmux.Direction
	Signal    pinmux.Signal
	Slot      pinmux.FunctionSlot
}

// Bind routes signal through this pin in the given direction. The function
// matrix is the sole gate: an undeclared triple fails with
// unsupported_binding and nothing is substituted. Success replaces any
// previous binding in that direction.
func (p *Pin) Bind(dir pinmux.Direction, signal pinmux.Signal) (BoundFunction, error) {
	slot, err := p.rec.Resolve(dir, signal)
	if err != nil {
		return BoundFunction{}, err
	}
	bf := BoundFunction{Pin: p.rec.Index(), Direction: dir, Signal: signal, Slot: slot}
	p.bound[dir] = &bf
	return bf, nil
}

// Binding reports the current binding in one direction, if any. A
// Direction outside the enum reports no binding.
func (p *Pin) Binding(dir pinmux.Direction) (BoundFunction, bool) {
	if int(dir) >= len(p.bound) {
		return BoundFunction{}, false
	}
	if b := p.bound[dir]; b != nil {
		return *b, true
	}
	return BoundFunction{}, false
}

// Input configures the pad for digital input and returns the read-only
// handle. Every pin supports this; however the input-only pads have no
// pull resistors, so any pull other than PullNone is refused for them
// before the pad is touched.
func (p *Pin) Input(pull Pull) (*Input, error) {
	if err := p.checkPull("gpio.Input", pull); err != nil {
		return nil, err
	}
	bank, bit := p.rec.Bank(), int(p.rec.Bit())
	p.c.io.DisableOutput(bank, bitx.Bit[uint32](bit))
	if p.rec.Caps().CanOutput() {
		p.c.io.SetPull(p.rec.Index(), pull)
	}
	return &Input{p: p}, nil
}

func (p *Pin) checkPull(op string, pull Pull) error {
	if pull != PullNone && !p.rec.Caps().CanOutput() {
		return &errcode.E{
			C:   errcode.Unsupported,
			Op:  op,
			Msg: p.rec.ID() + " has no pull resistors",
		}
	}
	return nil
}

// Output configures the pad as a driven output. Input-only pins are
// rejected here, at construction, so no drive operation is ever reachable
// for them.
func (p *Pin) Output(cfg OutputConfig) (*Output, error) {
	if !p.rec.Caps().CanOutput() {
		return nil, &errcode.E{
			C:   errcode.Unsupported,
			Op:  "gpio.Output",
			Msg: p.rec.ID() + " is input-only",
		}
	}
	bank, bit := p.rec.Bank(), int(p.rec.Bit())
	mask := bitx.Bit[uint32](bit)
	if cfg.Initial {
		p.c.io.SetLevels(bank, mask)
	} else {
		p.c.io.ClearLevels(bank, mask)
	}
	p.c.io.SetDrive(p.rec.Index(), cfg.Drive)
	p.c.io.EnableOutput(bank, mask)
	return &Output{p: p}, nil
}

// Input is the read-only face of a pin.
type Input struct {
	p *Pin
}

func (in *Input) Pin() *Pin  { return in.p }
func (in *Input) Read() bool { return in.p.Read() }

// SetPull reselects the internal resistor. Input-only pads have none.
func (in *Input) SetPull(pull Pull) error {
	if err := in.p.checkPull("gpio.SetPull", pull); err != nil {
		return err
	}
	in.p.c.io.SetPull(in.p.rec.Index(), pull)
	return nil
}

// Output is the drive-capable face of a pin. It only exists for
// InputOutput pins.
type Output struct {
	p *Pin
}

func (o *Output) Pin() *Pin  { return o.p }
func (o *Output) Read() bool { return o.p.Read() }

func (o *Output) Set(level bool) {
	mask := bitx.Bit[uint32](int(o.p.rec.Bit()))
	if level {
		o.p.c.io.SetLevels(o.p.rec.Bank(), mask)
	} else {
		o.p.c.io.ClearLevels(o.p.rec.Bank(), mask)
	}
}

func (o *Output) High() { o.Set(true) }
func (o *Output) Low()  { o.Set(false) }

func (o *Output) Toggle() {
	o.p.c.io.ToggleLevels(o.p.rec.Bank(), bitx.Bit[uint32](int(o.p.rec.Bit())))
}

// SetDrive reselects the pad drive strength.
func (o *Output) SetDrive(d Drive) {
	o.p.c.io.SetDrive(o.p.rec.Index(), d)
}

// SetPull reselects the internal resistor (open-drain style usage).
func (o *Output) SetPull(pull Pull) {
	o.p.c.io.SetPull(o.p.rec.Index(), pull)
}
