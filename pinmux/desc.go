package pinmux

// Chip is the fixed per-variant hardware description a Table is built from.
// It is supplied once, at package init of a chip package, and validated by
// Build; nothing in it is consulted again after the Table exists.
type Chip struct {
	Name string

	// GPIOSlot is the mux selector that routes plain digital I/O
	// (as opposed to a peripheral signal) through a pin.
	GPIOSlot FunctionSlot

	// Affinity applies to every pin of the chip.
	Affinity CPUAffinity

	Pins []PinDesc
}

// PinDesc describes one physical pin.
type PinDesc struct {
	Index int
	ID    string
	Caps  DirCaps
	Bank  BankID

	// RTC marks membership in the always-on domain; RTCIndex is the
	// RTC-domain-local pin number and is meaningful only when RTC is set.
	RTC      bool
	RTCIndex uint8

	// Alternate functions, one list per matrix. A nil or empty list means
	// the pin has no signals in that direction; that is ordinary hardware
	// asymmetry, not an error.
	InputFns  []FunctionDesc
	OutputFns []FunctionDesc
}

// FunctionDesc is one (signal, mux slot) entry of a pin's matrix.
type FunctionDesc struct {
	Signal Signal
	Slot   FunctionSlot
}
