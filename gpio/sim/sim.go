// Package sim is an in-memory RegisterIO backend for host-side tests and
// tooling. It keeps one level word and one output-enable word per bank,
// records per-pad configuration, and can wire pins together so loopback
// setups (driver output fed back into an input) work without hardware.
//
// Unlike the registry core, the backend carries its own mutex: tests poke
// it from arbitrary goroutines and it is cheap to be safe here.
package sim

import (
	"sync"

	"pinmux-go/gpio"
	"pinmux-go/pinmux"
	"pinmux-go/x/bitx"
)

type wire struct {
	from, to int
}

// Backend implements gpio.RegisterIO over plain memory.
type Backend struct {
	mu     sync.Mutex
	levels map[pinmux.BankID]uint32
	outEn  map[pinmux.BankID]uint32
	pulls  map[int]gpio.Pull
	drives map[int]gpio.Drive
	wires  []wire
}

var _ gpio.RegisterIO = (*Backend)(nil)

func New() *Backend {
	return &Backend{
		levels: map[pinmux.BankID]uint32{},
		outEn:  map[pinmux.BankID]uint32{},
		pulls:  map[int]gpio.Pull{},
		drives: map[int]gpio.Drive{},
	}
}

// ---- gpio.RegisterIO ----

func (b *Backend) ReadLevels(bank pinmux.BankID) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.levels[bank]
}

func (b *Backend) SetLevels(bank pinmux.BankID, mask uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.levels[bank] |= mask
	b.propagate()
}

func (b *Backend) ClearLevels(bank pinmux.BankID, mask uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.levels[bank] &^= mask
	b.propagate()
}

func (b *Backend) ToggleLevels(bank pinmux.BankID, mask uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.levels[bank] ^= mask
	b.propagate()
}

func (b *Backend) EnableOutput(bank pinmux.BankID, mask uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.outEn[bank] |= mask
}

func (b *Backend) DisableOutput(bank pinmux.BankID, mask uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.outEn[bank] &^= mask
}

func (b *Backend) SetPull(index int, pull gpio.Pull) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pulls[index] = pull
}

func (b *Backend) SetDrive(index int, drive gpio.Drive) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.drives[index] = drive
}

// ---- test plumbing ----

// Connect makes pin `to` follow pin `from`'s level, like a jumper wire
// from an output pad to an input pad. Wires propagate in insertion order,
// so chains work if connected source-first.
func (b *Backend) Connect(from, to int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.wires = append(b.wires, wire{from: from, to: to})
	b.propagate()
}

// Drive forces an externally-driven input level, as if a signal generator
// were attached to the pad.
func (b *Backend) Drive(index int, level bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.setLevel(index, level)
	b.propagate()
}

// Level reports one pin's current level.
func (b *Backend) Level(index int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.level(index)
}

// OutputEnabled reports whether the pad drives.
func (b *Backend) OutputEnabled(index int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	bank, bit := pinmux.BankOf(index)
	return bitx.Has(b.outEn[bank], int(bit))
}

// PullOf returns the last configured pull resistor for a pad.
func (b *Backend) PullOf(index int) gpio.Pull {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pulls[index]
}

// DriveOf returns the last configured drive strength for a pad.
func (b *Backend) DriveOf(index int) gpio.Drive {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.drives[index]
}

// callers hold mu.
func (b *Backend) level(index int) bool {
	bank, bit := pinmux.BankOf(index)
	return bitx.Has(b.levels[bank], int(bit))
}

func (b *Backend) setLevel(index int, level bool) {
	bank, bit := pinmux.BankOf(index)
	if level {
		b.levels[bank] |= bitx.Bit[uint32](int(bit))
	} else {
		b.levels[bank] &^= bitx.Bit[uint32](int(bit))
	}
}

func (b *Backend) propagate() {
	for _, w := range b.wires {
		b.setLevel(w.to, b.level(w.from))
	}
}
