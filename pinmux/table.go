package pinmux

import (
	"fmt"
	"sort"
	"strconv"

	"pinmux-go/errcode"
)

// Table is the built registry for one chip variant: capability records,
// function matrices and the bank partition. Read-only after Build.
type Table struct {
	chip     string
	gpioSlot FunctionSlot
	byIndex  map[int]*PinRecord
	byID     map[string]*PinRecord
	banks    []*Bank
	order    []int
}

// Build runs the process-start assertion pass over a chip description and
// returns the registry. A malformed description (duplicate index or ID,
// bank inconsistent with the register layout, out-of-range slot, duplicate
// signal within one pin+direction) is rejected with BadTable; it is never
// partially accepted.
func Build(c Chip) (*Table, error) {
	if c.Name == "" {
		return nil, badTable("chip name missing")
	}
	if c.GPIOSlot >= numFunctionSlots {
		return nil, badTable("gpio slot out of range: " + c.GPIOSlot.String())
	}
	t := &Table{
		chip:     c.Name,
		gpioSlot: c.GPIOSlot,
		byIndex:  make(map[int]*PinRecord, len(c.Pins)),
		byID:     make(map[string]*PinRecord, len(c.Pins)),
	}
	bankFor := map[BankID]*Bank{}

	for _, d := range c.Pins {
		if d.Index < 0 {
			return nil, badTable("negative pin index " + strconv.Itoa(d.Index))
		}
		if d.ID == "" {
			return nil, badTable("pin " + strconv.Itoa(d.Index) + ": empty id")
		}
		if _, dup := t.byIndex[d.Index]; dup {
			return nil, badTable("duplicate pin index " + strconv.Itoa(d.Index))
		}
		if _, dup := t.byID[d.ID]; dup {
			return nil, badTable("duplicate pin id " + d.ID)
		}
		wantBank, bit := BankOf(d.Index)
		if d.Bank != wantBank {
			return nil, badTable(fmt.Sprintf("pin %d declared in %s, register layout puts it in %s",
				d.Index, d.Bank, wantBank))
		}
		rec := &PinRecord{
			index:    d.Index,
			id:       d.ID,
			caps:     d.Caps,
			bank:     d.Bank,
			bit:      bit,
			rtc:      d.RTC,
			affinity: c.Affinity,
		}
		if d.RTC {
			rec.rtcIndex = d.RTCIndex
		}
		for dir, fns := range map[Direction][]FunctionDesc{Input: d.InputFns, Output: d.OutputFns} {
			seen := map[Signal]bool{}
			for _, f := range fns {
				if f.Slot >= numFunctionSlots {
					return nil, badTable(fmt.Sprintf("pin %s %s %s: slot out of range", d.ID, dir, f.Signal))
				}
				if seen[f.Signal] {
					return nil, badTable(fmt.Sprintf("pin %s %s: duplicate signal %s", d.ID, dir, f.Signal))
				}
				seen[f.Signal] = true
			}
			rec.fns[dir] = append([]FunctionDesc(nil), fns...)
		}
		t.byIndex[d.Index] = rec
		t.byID[d.ID] = rec
		b, ok := bankFor[d.Bank]
		if !ok {
			b = &Bank{id: d.Bank}
			bankFor[d.Bank] = b
			t.banks = append(t.banks, b)
		}
		b.addPin(d.Index)
		t.order = append(t.order, d.Index)
	}

	sort.Ints(t.order)
	sort.Slice(t.banks, func(i, j int) bool { return t.banks[i].id < t.banks[j].id })
	for _, b := range t.banks {
		sort.Ints(b.pins)
	}
	return t, nil
}

// MustBuild is Build for fixed in-tree descriptions; a panic here is a
// defect in the chip table, caught at process start.
func MustBuild(c Chip) *Table {
	t, err := Build(c)
	if err != nil {
		panic("pinmux: " + c.Name + ": " + err.Error())
	}
	return t
}

func badTable(msg string) error {
	return &errcode.E{C: errcode.BadTable, Op: "pinmux.Build", Msg: msg}
}

// Chip is the description name the table was built from.
func (t *Table) Chip() string { return t.chip }

// GPIOSlot is the mux selector for plain digital I/O on this chip.
func (t *Table) GPIOSlot() FunctionSlot { return t.gpioSlot }

// Len is the number of physical pins.
func (t *Table) Len() int { return len(t.order) }

// ByIndex returns the record for a hardware pin number.
func (t *Table) ByIndex(index int) (*PinRecord, error) {
	if p, ok := t.byIndex[index]; ok {
		return p, nil
	}
	return nil, &errcode.E{C: errcode.UnknownPin, Op: "pinmux.ByIndex", Msg: strconv.Itoa(index)}
}

// ByID returns the record for a stable pin identifier such as "gpio2".
func (t *Table) ByID(id string) (*PinRecord, error) {
	if p, ok := t.byID[id]; ok {
		return p, nil
	}
	return nil, &errcode.E{C: errcode.UnknownPin, Op: "pinmux.ByID", Msg: id}
}

// Pins returns all records in index order.
func (t *Table) Pins() []*PinRecord {
	out := make([]*PinRecord, len(t.order))
	for i, idx := range t.order {
		out[i] = t.byIndex[idx]
	}
	return out
}

// Banks returns the partition in bank order.
func (t *Table) Banks() []*Bank {
	return append([]*Bank(nil), t.banks...)
}

// Bank returns one partition entry.
func (t *Table) Bank(id BankID) (*Bank, error) {
	for _, b := range t.banks {
		if b.id == id {
			return b, nil
		}
	}
	return nil, &errcode.E{C: errcode.UnknownBank, Op: "pinmux.Bank", Msg: id.String()}
}
