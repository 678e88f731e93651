// Package pinmux is a static pin-multiplexing capability registry.
//
// It describes, per physical pin, which peripheral signals can be routed
// through it (split into independent input and output matrices), which
// register bank owns its digital state bits, whether it can drive outputs,
// and whether it belongs to the always-on RTC domain. The tables are built
// once from a chip description and are immutable afterwards; concurrent
// readers need no synchronisation.
package pinmux

import (
	"strings"

	"pinmux-go/errcode"
)

// Direction selects one of the two signal matrices of a pin.
type Direction uint8

const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	if d == Output {
		return "output"
	}
	return "input"
}

func (d Direction) valid() bool { return d == Input || d == Output }

// ParseDirection accepts "input"/"in" and "output"/"out" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "input", "in":
		return Input, nil
	case "output", "out":
		return Output, nil
	default:
		return Input, errcode.New(errcode.Error, "pinmux.ParseDirection", "not a direction: "+s)
	}
}

// DirCaps is the hardware-fixed direction capability of a pin.
type DirCaps uint8

const (
	InputOnly DirCaps = iota
	InputOutput
)

func (c DirCaps) CanOutput() bool { return c == InputOutput }

func (c DirCaps) String() string {
	if c == InputOutput {
		return "io"
	}
	return "input"
}

// FunctionSlot is the IO_MUX selector value routing a signal to a pin.
type FunctionSlot uint8

const (
	Function0 FunctionSlot = iota
	Function1
	Function2
	Function3
	Function4
	Function5

	numFunctionSlots = 6
)

func (s FunctionSlot) String() string {
	if s >= numFunctionSlots {
		return "Function?"
	}
	return "Function" + string('0'+rune(s))
}

// Signal names a peripheral line, e.g. "U0RXD" or "HS2_DATA0".
type Signal string

// CPUAffinity marks whether interrupt/event delivery for a pin can be
// steered to either core or is fixed to one.
type CPUAffinity uint8

const (
	SingleCore CPUAffinity = iota
	DualCore
)

func (a CPUAffinity) String() string {
	if a == DualCore {
		return "dual-core"
	}
	return "single-core"
}
