// Package chips is the process-wide registry of built pin tables, keyed by
// chip variant name. Chip packages register themselves in init.
package chips

import (
	"sort"
	"sync"

	"pinmux-go/errcode"
	"pinmux-go/pinmux"
)

var (
	mu     sync.RWMutex
	tables = map[string]*pinmux.Table{}
)

// Register adds a built table under a variant name. Registering the same
// name twice is a wiring defect and panics at process start.
func Register(name string, t *pinmux.Table) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := tables[name]; exists {
		panic("chips: table already registered for " + name)
	}
	tables[name] = t
}

// ByName looks up a registered table.
func ByName(name string) (*pinmux.Table, error) {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := tables[name]; ok {
		return t, nil
	}
	return nil, &errcode.E{C: errcode.UnknownChip, Op: "chips.ByName", Msg: name}
}

// Names lists registered variants, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(tables))
	for n := range tables {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
