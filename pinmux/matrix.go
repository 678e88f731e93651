package pinmux

import (
	"strconv"

	"pinmux-go/errcode"
)

// Resolve maps (direction, signal) to the mux slot declared for this pin.
// The input and output matrices are looked up independently; a signal
// present one way says nothing about the other. A miss yields
// UnsupportedBinding; the slot for an undeclared binding is never
// computed, substituted or defaulted. A Direction outside the enum fails
// typed rather than panicking.
func (p *PinRecord) Resolve(dir Direction, signal Signal) (FunctionSlot, error) {
	if !dir.valid() {
		return 0, &errcode.E{
			C:   errcode.Error,
			Op:  "pinmux.Resolve",
			Msg: "not a direction: " + strconv.Itoa(int(dir)),
		}
	}
	for _, f := range p.fns[dir] {
		if f.Signal == signal {
			return f.Slot, nil
		}
	}
	return 0, &errcode.E{
		C:   errcode.UnsupportedBinding,
		Op:  "pinmux.Resolve",
		Msg: p.id + "/" + dir.String() + ": " + string(signal),
	}
}

// Has reports whether the triple (pin, dir, signal) is declared.
func (p *PinRecord) Has(dir Direction, signal Signal) bool {
	_, err := p.Resolve(dir, signal)
	return err == nil
}

// Signals lists the legal signals of one matrix, in declaration order.
// An empty result means the pin supports no functions in that direction
// (or the direction value itself is not one of the enum).
func (p *PinRecord) Signals(dir Direction) []Signal {
	if !dir.valid() {
		return nil
	}
	fns := p.fns[dir]
	if len(fns) == 0 {
		return nil
	}
	out := make([]Signal, len(fns))
	for i, f := range fns {
		out[i] = f.Signal
	}
	return out
}

// Functions returns a copy of one matrix's (signal, slot) entries.
func (p *PinRecord) Functions(dir Direction) []FunctionDesc {
	if !dir.valid() {
		return nil
	}
	return append([]FunctionDesc(nil), p.fns[dir]...)
}

// PinsFor lists, in index order, every pin that declares signal in the
// given direction. Tooling aid; drivers normally go pin-first.
func (t *Table) PinsFor(dir Direction, signal Signal) []int {
	var out []int
	for _, idx := range t.order {
		if t.byIndex[idx].Has(dir, signal) {
			out = append(out, idx)
		}
	}
	return out
}
