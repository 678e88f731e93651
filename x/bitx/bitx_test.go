package bitx

import "testing"

func TestBitAndMask(t *testing.T) {
	if got := Bit[uint32](0); got != 1 {
		t.Fatalf("Bit(0) = %#x", got)
	}
	if got := Bit[uint32](27); got != 0x0800_0000 {
		t.Fatalf("Bit(27) = %#x", got)
	}
	if got := Mask[uint32](0, 2, 4); got != 0b10101 {
		t.Fatalf("Mask(0,2,4) = %#b", got)
	}
	if got := Mask[uint32](); got != 0 {
		t.Fatalf("empty mask = %#x", got)
	}
}

func TestHas(t *testing.T) {
	v := Mask[uint8](1, 7)
	if !Has(v, 1) || !Has(v, 7) || Has(v, 0) {
		t.Fatalf("Has wrong for %#b", v)
	}
}

func TestLow(t *testing.T) {
	cases := []struct {
		n    int
		want uint32
	}{
		{0, 0}, {1, 1}, {8, 0xff}, {28, 0x0fff_ffff}, {-3, 0},
	}
	for _, c := range cases {
		if got := Low[uint32](c.n); got != c.want {
			t.Fatalf("Low(%d) = %#x, want %#x", c.n, got, c.want)
		}
	}
}
