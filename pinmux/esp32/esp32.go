// Package esp32 carries the pin description of the original ESP32 (40-pin
// mux, two banks, dual-core interrupt steering). The table is built and
// registered at init; malformed edits panic before anything can use them.
//
// Pins 28–31 do not exist on this chip; their Bank0 bit positions are
// reserved. GPIO34–39 are input-only. Plain digital I/O is mux slot 2.
package esp32

import (
	"pinmux-go/pinmux"
	"pinmux-go/pinmux/chips"
)

// Name is the registry key of this variant.
const Name = "esp32"

// Table is the built registry for the ESP32.
var Table = pinmux.MustBuild(Desc())

func init() {
	chips.Register(Name, Table)
}

const (
	f0 = pinmux.Function0
	f1 = pinmux.Function1
	f2 = pinmux.Function2
	f3 = pinmux.Function3
	f4 = pinmux.Function4
	f5 = pinmux.Function5
)

func af(sig string, slot pinmux.FunctionSlot) pinmux.FunctionDesc {
	return pinmux.FunctionDesc{Signal: pinmux.Signal(sig), Slot: slot}
}

func fns(f ...pinmux.FunctionDesc) []pinmux.FunctionDesc { return f }

func io(index int, in, out []pinmux.FunctionDesc) pinmux.PinDesc {
	bank, _ := pinmux.BankOf(index)
	return pinmux.PinDesc{
		Index: index, ID: id(index), Caps: pinmux.InputOutput, Bank: bank,
		InputFns: in, OutputFns: out,
	}
}

// rtc is io plus always-on domain membership with the RTC-local index.
func rtc(index int, rtcIndex uint8, in, out []pinmux.FunctionDesc) pinmux.PinDesc {
	d := io(index, in, out)
	d.RTC = true
	d.RTCIndex = rtcIndex
	return d
}

func inOnly(index int) pinmux.PinDesc {
	d := io(index, nil, nil)
	d.Caps = pinmux.InputOnly
	return d
}

func id(index int) string {
	if index < 10 {
		return "gpio" + string('0'+rune(index))
	}
	return "gpio" + string('0'+rune(index/10)) + string('0'+rune(index%10))
}

// Desc returns the raw hardware description the table is built from.
// Input function list first, output list second; the lists are independent
// and intentionally asymmetric (e.g. GPIO25–27 receive EMAC signals but
// drive nothing through the mux).
func Desc() pinmux.Chip {
	return pinmux.Chip{
		Name:     Name,
		GPIOSlot: f2,
		Affinity: pinmux.DualCore,
		Pins: []pinmux.PinDesc{
			rtc(0, 11, fns(af("EMAC_TX_CLK", f5)), fns(af("CLK_OUT1", f1))),
			io(1, fns(af("EMAC_RXD2", f5)), fns(af("U0TXD", f1), af("CLK_OUT3", f1))),
			rtc(2, 12,
				fns(af("HSPIWP", f1), af("HS2_DATA0", f3), af("SD_DATA0", f4)),
				fns(af("HS2_DATA0", f3), af("SD_DATA0", f4))),
			io(3, fns(af("U0RXD", f0)), fns(af("CLK_OUT2", f1))),
			rtc(4, 10,
				fns(af("HSPIHD", f1), af("HS2_DATA1", f3), af("SD_DATA1", f4), af("EMAC_TX_ER", f5)),
				fns(af("HS2_DATA1", f3), af("SD_DATA1", f4))),
			io(5,
				fns(af("VSPICS0", f1), af("HS1_DATA6", f3), af("EMAC_RX_CLK", f5)),
				fns(af("HS1_DATA6", f3))),
			io(6,
				fns(af("U1CTS", f4)),
				fns(af("SD_CLK", f0), af("SPICLK", f1), af("HS1_CLK", f3))),
			io(7,
				fns(af("SD_DATA0", f0), af("SPIQ", f1), af("HS1_DATA0", f3)),
				fns(af("SD_DATA0", f0), af("SPIQ", f1), af("HS1_DATA0", f3), af("U2RTS", f4))),
			io(8,
				fns(af("SD_DATA1", f0), af("SPID", f1), af("HS1_DATA1", f3), af("U2CTS", f4)),
				fns(af("SD_DATA1", f0), af("SPID", f1), af("HS1_DATA1", f3))),
			io(9,
				fns(af("SD_DATA2", f0), af("SPIHD", f1), af("HS1_DATA2", f3), af("U1RXD", f4)),
				fns(af("SD_DATA2", f0), af("SPIHD", f1), af("HS1_DATA2", f3))),
			io(10,
				fns(af("SD_DATA3", f0), af("SPIWP", f1), af("HS1_DATA3", f3)),
				fns(af("SD_DATA3", f0), af("SPIWP", f1), af("HS1_DATA3", f3), af("U1TXD", f4))),
			io(11,
				fns(af("SPICS0", f1)),
				fns(af("SD_CMD", f0), af("SPICS0", f1), af("HS1_CMD", f3), af("U1RTS", f4))),
			rtc(12, 15,
				fns(af("MTDI", f0), af("HSPIQ", f1), af("HS2_DATA2", f3), af("SD_DATA2", f4)),
				fns(af("HSPIQ", f1), af("HS2_DATA2", f3), af("SD_DATA2", f4), af("EMAC_TXD3", f5))),
			rtc(13, 14,
				fns(af("MTCK", f0), af("HSPID", f1), af("HS2_DATA3", f3), af("SD_DATA3", f4)),
				fns(af("HSPID", f1), af("HS2_DATA3", f3), af("SD_DATA3", f4), af("EMAC_RX_ER", f5))),
			rtc(14, 16,
				fns(af("MTMS", f0), af("HSPICLK", f1)),
				fns(af("HSPICLK", f1), af("HS2_CLK", f3), af("SD_CLK", f4), af("EMAC_TXD2", f5))),
			rtc(15, 13,
				fns(af("HSPICS0", f1), af("EMAC_RXD3", f5)),
				fns(af("MTDO", f0), af("HSPICS0", f1), af("HS2_CMD", f3), af("SD_CMD", f4))),
			io(16,
				fns(af("HS1_DATA4", f3), af("U2RXD", f4)),
				fns(af("HS1_DATA4", f3), af("EMAC_CLK_OUT", f5))),
			io(17,
				fns(af("HS1_DATA5", f3)),
				fns(af("HS1_DATA5", f3), af("U2TXD", f4), af("EMAC_CLK_180", f5))),
			io(18,
				fns(af("VSPICLK", f1), af("HS1_DATA7", f3)),
				fns(af("VSPICLK", f1), af("HS1_DATA7", f3))),
			io(19,
				fns(af("VSPIQ", f1), af("U0CTS", f3)),
				fns(af("VSPIQ", f1), af("EMAC_TXD0", f5))),
			io(20, nil, nil),
			io(21, fns(af("VSPIHD", f1)), fns(af("VSPIHD", f1), af("EMAC_TX_EN", f5))),
			io(22, fns(af("VSPIWP", f1)), fns(af("VSPIWP", f1), af("U0RTS", f3), af("EMAC_TXD1", f5))),
			io(23, fns(af("VSPID", f1)), fns(af("VSPID", f1), af("HS1_STROBE", f3))),
			io(24, nil, nil),
			io(25, fns(af("EMAC_RXD0", f5)), nil),
			io(26, fns(af("EMAC_RXD1", f5)), nil),
			io(27, fns(af("EMAC_RX_DV", f5)), nil),

			io(32, nil, nil),
			io(33, nil, nil),
			inOnly(34),
			inOnly(35),
			inOnly(36),
			inOnly(37),
			inOnly(38),
			inOnly(39),
		},
	}
}
