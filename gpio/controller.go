// Package gpio turns the static pinmux registry into usable pin handles
// and bank-wide digital I/O. All validation happens here, against the
// tables, before the RegisterIO backend is touched; an invalid mux
// configuration is rejected and never computed.
package gpio

import (
	"pinmux-go/pinmux"
)

// Controller owns one chip's register access. The table it wraps is
// immutable; the controller itself holds no mutable state, so it may be
// shared freely between readers. Writers (handles, bulk ops) follow the
// caller-side ownership discipline described in the package docs.
type Controller struct {
	tab *pinmux.Table
	io  RegisterIO
}

func NewController(tab *pinmux.Table, io RegisterIO) *Controller {
	return &Controller{tab: tab, io: io}
}

func (c *Controller) Table() *pinmux.Table { return c.tab }

// Pin builds a handle by stable identifier ("gpio2").
func (c *Controller) Pin(id string) (*Pin, error) {
	rec, err := c.tab.ByID(id)
	if err != nil {
		return nil, err
	}
	return &Pin{c: c, rec: rec}, nil
}

// PinByIndex builds a handle by hardware pin number.
func (c *Controller) PinByIndex(index int) (*Pin, error) {
	rec, err := c.tab.ByIndex(index)
	if err != nil {
		return nil, err
	}
	return &Pin{c: c, rec: rec}, nil
}

// ---- Bank-wide bulk operations ----
//
// These are the only operations that ever touch more than one pin at a
// time. Masks are validated against the bank's pin mask first; a mask with
// reserved bits set is rejected with invalid_mask_bits and the backend is
// not called.

func (c *Controller) ReadLevels(id pinmux.BankID) (uint32, error) {
	b, err := c.tab.Bank(id)
	if err != nil {
		return 0, err
	}
	return c.io.ReadLevels(b.ID()), nil
}

func (c *Controller) SetLevels(id pinmux.BankID, mask uint32) error {
	return c.bulk(id, mask, c.io.SetLevels)
}

func (c *Controller) ClearLevels(id pinmux.BankID, mask uint32) error {
	return c.bulk(id, mask, c.io.ClearLevels)
}

func (c *Controller) ToggleLevels(id pinmux.BankID, mask uint32) error {
	return c.bulk(id, mask, c.io.ToggleLevels)
}

func (c *Controller) bulk(id pinmux.BankID, mask uint32, op func(pinmux.BankID, uint32)) error {
	b, err := c.tab.Bank(id)
	if err != nil {
		return err
	}
	if err := b.ValidateMask(mask); err != nil {
		return err
	}
	op(b.ID(), mask)
	return nil
}
