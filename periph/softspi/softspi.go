// Package softspi is a bit-banged SPI master (mode 0, MSB first) built
// entirely from registry pin handles. It is the reference consumer of the
// handle API: pins are bound through the function matrix first, then
// driven as plain GPIO, and the bus satisfies the tinygo drivers.SPI
// interface so existing device drivers can sit on top of it.
//
// No timing control: clock rate is whatever the host manages. Useful on a
// simulated backend and for low-speed peripherals.
package softspi

import (
	"pinmux-go/errcode"
	"pinmux-go/gpio"
	"pinmux-go/pinmux"

	"tinygo.org/x/drivers"
)

// PinSet names the pins and matrix signals of one SPI wiring. Signals are
// optional: leave them empty to skip matrix binding and clock the pins as
// plain GPIO (the usual case for a bit-banged bus).
type PinSet struct {
	SCK string
	SDO string
	SDI string

	SCKSignal pinmux.Signal
	SDOSignal pinmux.Signal
	SDISignal pinmux.Signal
}

// Bus implements drivers.SPI over three pin handles.
type Bus struct {
	sck *gpio.Output
	sdo *gpio.Output
	sdi *gpio.Input
}

var _ drivers.SPI = (*Bus)(nil)

// New assembles a bus from already-configured handles.
func New(sck, sdo *gpio.Output, sdi *gpio.Input) *Bus {
	return &Bus{sck: sck, sdo: sdo, sdi: sdi}
}

// Attach resolves the pin set against the controller's table, binds any
// named signals, configures the pads (clock and data out driven low, data
// in floating) and returns the bus. Any unknown pin or unsupported binding
// aborts before a pad is touched.
func Attach(c *gpio.Controller, ps PinSet) (*Bus, error) {
	sckPin, err := c.Pin(ps.SCK)
	if err != nil {
		return nil, err
	}
	sdoPin, err := c.Pin(ps.SDO)
	if err != nil {
		return nil, err
	}
	sdiPin, err := c.Pin(ps.SDI)
	if err != nil {
		return nil, err
	}
	binds := []struct {
		pin *gpio.Pin
		dir pinmux.Direction
		sig pinmux.Signal
	}{
		{sckPin, pinmux.Output, ps.SCKSignal},
		{sdoPin, pinmux.Output, ps.SDOSignal},
		{sdiPin, pinmux.Input, ps.SDISignal},
	}
	for _, b := range binds {
		if b.sig == "" {
			continue
		}
		if _, err := b.pin.Bind(b.dir, b.sig); err != nil {
			return nil, err
		}
	}

	sck, err := sckPin.Output(gpio.OutputConfig{Drive: gpio.DriveDefault})
	if err != nil {
		return nil, err
	}
	sdo, err := sdoPin.Output(gpio.OutputConfig{Drive: gpio.DriveDefault})
	if err != nil {
		return nil, err
	}
	sdi, err := sdiPin.Input(gpio.PullNone)
	if err != nil {
		return nil, err
	}
	return New(sck, sdo, sdi), nil
}

// Transfer clocks one byte out and one byte in, MSB first.
func (b *Bus) Transfer(w byte) (byte, error) {
	var r byte
	for i := 7; i >= 0; i-- {
		b.sdo.Set(w&(1<<i) != 0)
		b.sck.High()
		if b.sdi.Read() {
			r |= 1 << i
		}
		b.sck.Low()
	}
	return r, nil
}

// Tx shifts len(w) bytes out while reading into r. With only w it writes
// and discards reads; with only r it reads while clocking zeros; with both
// the lengths must match.
func (b *Bus) Tx(w, r []byte) error {
	switch {
	case len(r) == 0:
		for _, x := range w {
			if _, err := b.Transfer(x); err != nil {
				return err
			}
		}
	case len(w) == 0:
		for i := range r {
			x, err := b.Transfer(0)
			if err != nil {
				return err
			}
			r[i] = x
		}
	case len(w) == len(r):
		for i, x := range w {
			y, err := b.Transfer(x)
			if err != nil {
				return err
			}
			r[i] = y
		}
	default:
		return errcode.New(errcode.Error, "softspi.Tx", "mismatched buffer lengths")
	}
	return nil
}
