package gpio

import "pinmux-go/pinmux"

// RegisterIO is the boundary to the memory-mapped register layer. The
// registry validates every pin index and mask before calling in, so
// implementations may assume arguments are in range; they perform the raw
// access and nothing else. On real hardware this is backed by the
// peripheral-access layer; on a host build by the sim package.
//
// Implementations are not required to synchronise: the shared-resource
// policy of the whole layer is caller-side mutual exclusion.
type RegisterIO interface {
	// Bulk digital state, one 32-bit word per bank.
	ReadLevels(bank pinmux.BankID) uint32
	SetLevels(bank pinmux.BankID, mask uint32)
	ClearLevels(bank pinmux.BankID, mask uint32)
	ToggleLevels(bank pinmux.BankID, mask uint32)

	// Output-enable, same mask discipline.
	EnableOutput(bank pinmux.BankID, mask uint32)
	DisableOutput(bank pinmux.BankID, mask uint32)

	// Per-pad configuration.
	SetPull(index int, pull Pull)
	SetDrive(index int, drive Drive)
}
