package pinmux

import (
	"errors"
	"testing"

	"pinmux-go/errcode"
)

func TestBankOf(t *testing.T) {
	cases := []struct {
		index int
		bank  BankID
		bit   uint8
	}{
		{0, Bank0, 0},
		{27, Bank0, 27},
		{31, Bank0, 31},
		{32, Bank1, 0},
		{39, Bank1, 7},
	}
	for _, c := range cases {
		bank, bit := BankOf(c.index)
		if bank != c.bank || bit != c.bit {
			t.Fatalf("BankOf(%d) = %v,%d want %v,%d", c.index, bank, bit, c.bank, c.bit)
		}
	}
}

func TestValidateMask(t *testing.T) {
	tab := build(t)
	b0, err := tab.Bank(Bank0)
	if err != nil {
		t.Fatalf("Bank(Bank0): %v", err)
	}
	// Fixture bank0 pins: 0, 2, 20, 25.
	if b0.PinMask() != 1<<0|1<<2|1<<20|1<<25 {
		t.Fatalf("bank0 pin mask = %#x", b0.PinMask())
	}
	if err := b0.ValidateMask(1<<2 | 1<<25); err != nil {
		t.Fatalf("valid mask rejected: %v", err)
	}
	if err := b0.ValidateMask(0); err != nil {
		t.Fatalf("empty mask rejected: %v", err)
	}
	if err := b0.ValidateMask(1 << 3); !errors.Is(err, errcode.InvalidMaskBits) {
		t.Fatalf("reserved bit 3: want invalid_mask_bits, got %v", err)
	}
	if err := b0.ValidateMask(1<<0 | 1<<31); !errors.Is(err, errcode.InvalidMaskBits) {
		t.Fatalf("mixed valid+reserved: want invalid_mask_bits, got %v", err)
	}
}

func TestUnknownBank(t *testing.T) {
	tab := build(t)
	if _, err := tab.Bank(BankID(5)); !errors.Is(err, errcode.UnknownBank) {
		t.Fatalf("want unknown_bank, got %v", err)
	}
}
