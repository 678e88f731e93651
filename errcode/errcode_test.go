package errcode

import (
	"errors"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"ok":                  OK,
		"unknown_pin":         UnknownPin,
		"unknown_bank":        UnknownBank,
		"unknown_chip":        UnknownChip,
		"unsupported_binding": UnsupportedBinding,
		"invalid_mask_bits":   InvalidMaskBits,
		"unsupported":         Unsupported,
		"bad_table":           BadTable,
		"error":               Error,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestOf(t *testing.T) {
	if got := Of(nil); got != OK {
		t.Fatalf("Of(nil) = %q, want ok", got)
	}
	if got := Of(UnknownPin); got != UnknownPin {
		t.Fatalf("Of(bare code) = %q", got)
	}
	wrapped := New(UnsupportedBinding, "resolve", "gpio20/input")
	if got := Of(wrapped); got != UnsupportedBinding {
		t.Fatalf("Of(wrapped) = %q", got)
	}
	if got := Of(errors.New("boom")); got != Error {
		t.Fatalf("Of(foreign) = %q, want generic error", got)
	}
}

func TestWrapperUnwrapsToCode(t *testing.T) {
	err := New(InvalidMaskBits, "bank", "reserved bits 0xf0000000")
	if !errors.Is(err, InvalidMaskBits) {
		t.Fatal("errors.Is should match the bare code through the wrapper")
	}
	var e *E
	if !errors.As(err, &e) || e.Op != "bank" {
		t.Fatalf("errors.As failed or lost context: %#v", e)
	}
	if err.Error() != "invalid_mask_bits: reserved bits 0xf0000000" {
		t.Fatalf("message format: %q", err.Error())
	}
}
