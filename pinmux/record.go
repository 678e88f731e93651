package pinmux

// PinRecord is the authoritative capability record for one physical pin.
// Records are created by Build and immutable afterwards.
type PinRecord struct {
	index    int
	id       string
	caps     DirCaps
	bank     BankID
	bit      uint8
	rtc      bool
	rtcIndex uint8
	affinity CPUAffinity

	// fns holds the two independent matrices, indexed by Direction.
	fns [2][]FunctionDesc
}

func (p *PinRecord) Index() int            { return p.index }
func (p *PinRecord) ID() string            { return p.id }
func (p *PinRecord) Caps() DirCaps         { return p.caps }
func (p *PinRecord) Bank() BankID          { return p.bank }
func (p *PinRecord) Affinity() CPUAffinity { return p.affinity }

// Bit is the pin's bit offset within its bank's registers.
func (p *PinRecord) Bit() uint8 { return p.bit }

// RTCIndex returns the RTC-domain-local index and whether the pin is wired
// into the always-on domain at all.
func (p *PinRecord) RTCIndex() (uint8, bool) {
	return p.rtcIndex, p.rtc
}
