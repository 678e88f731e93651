package chips

import (
	"errors"
	"testing"

	"pinmux-go/errcode"
	"pinmux-go/pinmux"
)

func miniTable(t *testing.T, name string) *pinmux.Table {
	t.Helper()
	tab, err := pinmux.Build(pinmux.Chip{
		Name:     name,
		GPIOSlot: pinmux.Function2,
		Pins: []pinmux.PinDesc{
			{Index: 0, ID: "gpio0", Caps: pinmux.InputOutput, Bank: pinmux.Bank0},
		},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return tab
}

func TestRegisterAndByName(t *testing.T) {
	const name = "test_chip_a"
	Register(name, miniTable(t, name))
	got, err := ByName(name)
	if err != nil || got == nil {
		t.Fatalf("ByName(%q) failed: %v", name, err)
	}
	if got.Chip() != name {
		t.Fatalf("wrong table: %q", got.Chip())
	}
}

func TestByNameUnknown(t *testing.T) {
	_, err := ByName("no_such_chip")
	if !errors.Is(err, errcode.UnknownChip) {
		t.Fatalf("want unknown_chip, got %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	const name = "test_chip_dup"
	Register(name, miniTable(t, name))
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate registration")
		}
	}()
	Register(name, miniTable(t, name))
}

func TestNamesSorted(t *testing.T) {
	Register("test_chip_z", miniTable(t, "test_chip_z"))
	Register("test_chip_b", miniTable(t, "test_chip_b"))
	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}
