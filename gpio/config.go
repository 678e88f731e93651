package gpio

// Pull selects the internal resistor of a pin.
type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

func (p Pull) String() string {
	switch p {
	case PullUp:
		return "up"
	case PullDown:
		return "down"
	default:
		return "none"
	}
}

// Drive is the pad drive strength selector (ESP32 encoding: 0..3 for
// roughly 5/10/20/40 mA; 20 mA is the hardware reset default).
type Drive uint8

const (
	Drive5mA Drive = iota
	Drive10mA
	Drive20mA
	Drive40mA

	DriveDefault = Drive20mA
)

// OutputConfig is applied when an output handle is constructed.
type OutputConfig struct {
	// Initial level driven before the pad is switched to output, so the
	// pin never glitches through the wrong state.
	Initial bool
	Drive   Drive
}
