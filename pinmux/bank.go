package pinmux

import (
	"fmt"

	"pinmux-go/errcode"
	"pinmux-go/x/bitx"
)

// BankID identifies one fixed-width group of pins sharing bulk registers.
type BankID uint8

const (
	Bank0 BankID = iota
	Bank1
)

// BankWidth is the register width of a bank; each bank owns at most this
// many pins.
const BankWidth = 32

func (b BankID) String() string {
	return fmt.Sprintf("bank%d", uint8(b))
}

// BankOf returns the owning bank of a pin index and the pin's bit offset
// within that bank. The partition is fixed by the register layout
// (index/32) and is only ever read, never recomputed per chip.
func BankOf(index int) (BankID, uint8) {
	return BankID(index / BankWidth), uint8(index % BankWidth)
}

// Bank is the immutable partition record for one register bank.
type Bank struct {
	id      BankID
	pinMask uint32
	pins    []int
}

func (b *Bank) ID() BankID  { return b.id }
func (b *Bank) Width() int  { return BankWidth }
func (b *Bank) Len() int    { return len(b.pins) }
func (b *Bank) Pins() []int { return append([]int(nil), b.pins...) }

// PinMask is the set of valid bit positions; all other bits are reserved.
func (b *Bank) PinMask() uint32 { return b.pinMask }

// Owns reports whether the bank holds the given pin index.
func (b *Bank) Owns(index int) bool {
	id, bit := BankOf(index)
	return id == b.id && bitx.Has(b.pinMask, int(bit))
}

// ValidateMask rejects masks that touch reserved bit positions. Callers of
// bulk operations must pass masks covering existing pins only; anything
// else is a caller error and must be caught before a register is touched.
func (b *Bank) ValidateMask(mask uint32) error {
	if bad := mask &^ b.pinMask; bad != 0 {
		return &errcode.E{
			C:   errcode.InvalidMaskBits,
			Op:  "pinmux.ValidateMask",
			Msg: fmt.Sprintf("%s: reserved bits %#08x", b.id, bad),
		}
	}
	return nil
}

func (b *Bank) addPin(index int) {
	_, bit := BankOf(index)
	b.pinMask |= bitx.Bit[uint32](int(bit))
	b.pins = append(b.pins, index)
}
