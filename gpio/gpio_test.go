package gpio_test

import (
	"errors"
	"testing"

	"pinmux-go/errcode"
	"pinmux-go/gpio"
	"pinmux-go/gpio/sim"
	"pinmux-go/pinmux"
	"pinmux-go/pinmux/esp32"
	"pinmux-go/x/bitx"
)

func newController() (*gpio.Controller, *sim.Backend) {
	be := sim.New()
	return gpio.NewController(esp32.Table, be), be
}

func opOf(err error) string {
	var e *errcode.E
	if errors.As(err, &e) {
		return e.Op
	}
	return ""
}

func TestPinLookup(t *testing.T) {
	c, _ := newController()
	p, err := c.Pin("gpio2")
	if err != nil || p.Index() != 2 {
		t.Fatalf("Pin(gpio2): %v", err)
	}
	byIdx, err := c.PinByIndex(2)
	if err != nil || byIdx.ID() != "gpio2" {
		t.Fatalf("PinByIndex(2): %v", err)
	}
	if _, err := c.Pin("gpio28"); !errors.Is(err, errcode.UnknownPin) {
		t.Fatalf("Pin(gpio28): want unknown_pin, got %v", err)
	}
	if _, err := c.PinByIndex(31); !errors.Is(err, errcode.UnknownPin) {
		t.Fatalf("PinByIndex(31): want unknown_pin, got %v", err)
	}
}

func TestOutputHandle(t *testing.T) {
	c, be := newController()
	p, _ := c.Pin("gpio5")
	out, err := p.Output(gpio.OutputConfig{Initial: true, Drive: gpio.Drive40mA})
	if err != nil {
		t.Fatalf("Output: %v", err)
	}
	if !be.Level(5) || !be.OutputEnabled(5) {
		t.Fatal("initial level / output enable not applied")
	}
	if be.DriveOf(5) != gpio.Drive40mA {
		t.Fatalf("drive = %v", be.DriveOf(5))
	}
	out.Low()
	if be.Level(5) {
		t.Fatal("Low did not clear level")
	}
	out.Toggle()
	if !out.Read() {
		t.Fatal("Toggle did not set level")
	}
	out.SetDrive(gpio.Drive5mA)
	if be.DriveOf(5) != gpio.Drive5mA {
		t.Fatal("SetDrive not applied")
	}
}

func TestInputHandle(t *testing.T) {
	c, be := newController()
	p, _ := c.Pin("gpio13")
	in, err := p.Input(gpio.PullDown)
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if be.PullOf(13) != gpio.PullDown {
		t.Fatal("pull not applied")
	}
	be.Drive(13, true)
	if !in.Read() {
		t.Fatal("input did not see driven level")
	}
	if err := in.SetPull(gpio.PullUp); err != nil {
		t.Fatalf("SetPull: %v", err)
	}
	if be.PullOf(13) != gpio.PullUp {
		t.Fatal("SetPull not applied")
	}
}

func TestInputOnlyPinHasNoPulls(t *testing.T) {
	c, be := newController()
	p, _ := c.Pin("gpio36")
	refused, err := p.Input(gpio.PullDown)
	if refused != nil {
		t.Fatal("refused construction must not return a handle")
	}
	if !errors.Is(err, errcode.Unsupported) || opOf(err) != "gpio.Input" {
		t.Fatalf("pull on input-only pad: want unsupported from gpio.Input, got %v", err)
	}
	in, err := p.Input(gpio.PullNone)
	if err != nil {
		t.Fatalf("plain input: %v", err)
	}
	if err := in.SetPull(gpio.PullUp); !errors.Is(err, errcode.Unsupported) || opOf(err) != "gpio.SetPull" {
		t.Fatalf("SetPull on input-only pad: want unsupported from gpio.SetPull, got %v", err)
	}
	if be.PullOf(36) != gpio.PullNone {
		t.Fatal("rejected pull must not reach the backend")
	}
	be.Drive(36, true)
	if !in.Read() {
		t.Fatal("input did not see driven level")
	}
}

func TestInputOnlyPinHasNoOutput(t *testing.T) {
	c, be := newController()
	for _, id := range []string{"gpio34", "gpio35", "gpio36", "gpio37", "gpio38", "gpio39"} {
		p, err := c.Pin(id)
		if err != nil {
			t.Fatal(err)
		}
		out, err := p.Output(gpio.OutputConfig{})
		if out != nil || !errors.Is(err, errcode.Unsupported) {
			t.Fatalf("%s: output handle must be refused, got %v, %v", id, out, err)
		}
		if be.OutputEnabled(p.Index()) {
			t.Fatalf("%s: refused construction must not touch output enable", id)
		}
		if _, err := p.Input(gpio.PullNone); err != nil {
			t.Fatalf("%s: input must still work: %v", id, err)
		}
	}
}

func TestBind(t *testing.T) {
	c, _ := newController()
	p2, _ := c.Pin("gpio2")

	bf, err := p2.Bind(pinmux.Output, "HS2_DATA0")
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	if bf.Slot != pinmux.Function3 || bf.Pin != 2 || bf.Direction != pinmux.Output {
		t.Fatalf("token = %+v", bf)
	}

	// The input matrix resolves independently.
	inBf, err := p2.Bind(pinmux.Input, "HS2_DATA0")
	if err != nil || inBf.Slot != pinmux.Function3 {
		t.Fatalf("input bind: %+v, %v", inBf, err)
	}

	// Both directions remember their own binding.
	if got, ok := p2.Binding(pinmux.Output); !ok || got != bf {
		t.Fatalf("output binding = %+v, %v", got, ok)
	}
	if got, ok := p2.Binding(pinmux.Input); !ok || got != inBf {
		t.Fatalf("input binding = %+v, %v", got, ok)
	}

	// Rebinding overwrites; no lock, the previous token just goes stale.
	bf2, err := p2.Bind(pinmux.Output, "SD_DATA0")
	if err != nil || bf2.Slot != pinmux.Function4 {
		t.Fatalf("rebind: %+v, %v", bf2, err)
	}
	if got, _ := p2.Binding(pinmux.Output); got.Signal != "SD_DATA0" {
		t.Fatalf("rebind did not overwrite: %+v", got)
	}
}

func TestBindUnsupported(t *testing.T) {
	c, _ := newController()
	p20, _ := c.Pin("gpio20")
	if _, err := p20.Bind(pinmux.Output, "HS2_DATA0"); !errors.Is(err, errcode.UnsupportedBinding) {
		t.Fatalf("want unsupported_binding, got %v", err)
	}
	if _, ok := p20.Binding(pinmux.Output); ok {
		t.Fatal("failed bind must not record a binding")
	}

	// Present in the output matrix only.
	p1, _ := c.Pin("gpio1")
	if _, err := p1.Bind(pinmux.Input, "U0TXD"); !errors.Is(err, errcode.UnsupportedBinding) {
		t.Fatalf("gpio1/input U0TXD: want unsupported_binding, got %v", err)
	}
	if bf, err := p1.Bind(pinmux.Output, "U0TXD"); err != nil || bf.Slot != pinmux.Function1 {
		t.Fatalf("gpio1/output U0TXD = %+v, %v", bf, err)
	}
}

func TestBindBogusDirection(t *testing.T) {
	c, _ := newController()
	p2, _ := c.Pin("gpio2")
	if _, err := p2.Bind(pinmux.Direction(7), "HS2_DATA0"); err == nil {
		t.Fatal("Bind with a non-enum direction must fail, not panic")
	}
	if _, ok := p2.Binding(pinmux.Direction(7)); ok {
		t.Fatal("Binding with a non-enum direction must report none")
	}
}

func TestBulkMaskExact(t *testing.T) {
	c, be := newController()
	pre := bitx.Mask[uint32](0, 27) // pre-existing state
	be.SetLevels(pinmux.Bank0, pre)

	mask := bitx.Mask[uint32](2, 5)
	if err := c.SetLevels(pinmux.Bank0, mask); err != nil {
		t.Fatalf("SetLevels: %v", err)
	}
	got, err := c.ReadLevels(pinmux.Bank0)
	if err != nil {
		t.Fatalf("ReadLevels: %v", err)
	}
	if got&mask != mask {
		t.Fatalf("masked bits not all set: %#x", got)
	}
	if got&^mask != pre {
		t.Fatalf("bits outside mask changed: %#x", got)
	}

	if err := c.ToggleLevels(pinmux.Bank0, bitx.Mask[uint32](0, 2)); err != nil {
		t.Fatalf("ToggleLevels: %v", err)
	}
	got, _ = c.ReadLevels(pinmux.Bank0)
	if got != 1<<5|1<<27 {
		t.Fatalf("after toggle: %#x", got)
	}

	if err := c.ClearLevels(pinmux.Bank0, 1<<27); err != nil {
		t.Fatalf("ClearLevels: %v", err)
	}
	got, _ = c.ReadLevels(pinmux.Bank0)
	if got != 1<<5 {
		t.Fatalf("after clear: %#x", got)
	}
}

func TestBulkRejectsReservedBits(t *testing.T) {
	c, be := newController()

	// Bits 28..31 of bank0 and 8..31 of bank1 have no pins behind them.
	cases := []struct {
		bank pinmux.BankID
		mask uint32
	}{
		{pinmux.Bank0, 1 << 28},
		{pinmux.Bank0, 1<<2 | 1<<31},
		{pinmux.Bank1, 1 << 8},
		{pinmux.Bank1, 0xffff_ff00},
	}
	for _, tc := range cases {
		if err := c.SetLevels(tc.bank, tc.mask); !errors.Is(err, errcode.InvalidMaskBits) {
			t.Fatalf("SetLevels(%v, %#x): want invalid_mask_bits, got %v", tc.bank, tc.mask, err)
		}
		if err := c.ClearLevels(tc.bank, tc.mask); !errors.Is(err, errcode.InvalidMaskBits) {
			t.Fatalf("ClearLevels(%v, %#x): want invalid_mask_bits, got %v", tc.bank, tc.mask, err)
		}
		if err := c.ToggleLevels(tc.bank, tc.mask); !errors.Is(err, errcode.InvalidMaskBits) {
			t.Fatalf("ToggleLevels(%v, %#x): want invalid_mask_bits, got %v", tc.bank, tc.mask, err)
		}
	}
	// Rejected calls must never have reached the backend.
	if be.ReadLevels(pinmux.Bank0) != 0 || be.ReadLevels(pinmux.Bank1) != 0 {
		t.Fatal("backend touched despite mask rejection")
	}
}

func TestBulkUnknownBank(t *testing.T) {
	c, _ := newController()
	if _, err := c.ReadLevels(pinmux.BankID(7)); !errors.Is(err, errcode.UnknownBank) {
		t.Fatalf("want unknown_bank, got %v", err)
	}
	if err := c.SetLevels(pinmux.BankID(7), 1); !errors.Is(err, errcode.UnknownBank) {
		t.Fatalf("want unknown_bank, got %v", err)
	}
}

func TestRTCAccessor(t *testing.T) {
	c, _ := newController()
	p14, _ := c.Pin("gpio14")
	if idx, ok := p14.RTCIndex(); !ok || idx != 16 {
		t.Fatalf("gpio14 rtc = %d,%v", idx, ok)
	}
	p5, _ := c.Pin("gpio5")
	if _, ok := p5.RTCIndex(); ok {
		t.Fatal("gpio5 is not in the RTC domain")
	}
}
