package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"pinmux-go/pinmux"
)

var pinsCmd = &cobra.Command{
	Use:   "pins",
	Short: "Dump the pin capability table",
	Run: func(cmd *cobra.Command, args []string) {
		t := table()
		fmt.Printf("%s: %d pins, gpio mux %s, %s\n\n", t.Chip(), t.Len(), t.GPIOSlot(), affinity(t))
		fmt.Printf("%-4s %-8s %-6s %-6s %-4s %-4s %s\n", "idx", "id", "caps", "bank", "bit", "rtc", "signals in/out")
		for _, rec := range t.Pins() {
			rtc := "-"
			if n, ok := rec.RTCIndex(); ok {
				rtc = fmt.Sprintf("%d", n)
			}
			fmt.Printf("%-4d %-8s %-6s %-6s %-4d %-4s %d/%d\n",
				rec.Index(), rec.ID(), rec.Caps(), rec.Bank(), rec.Bit(), rtc,
				len(rec.Signals(pinmux.Input)), len(rec.Signals(pinmux.Output)))
		}
	},
}

var signalsCmd = &cobra.Command{
	Use:   "signals <pin>",
	Short: "List a pin's alternate functions per direction",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rec, err := table().ByID(args[0])
		if err != nil {
			log.Fatalf("pinmux: %v", err)
		}
		for _, dir := range []pinmux.Direction{pinmux.Input, pinmux.Output} {
			fns := rec.Functions(dir)
			if len(fns) == 0 {
				fmt.Printf("%s %-6s (none)\n", rec.ID(), dir)
				continue
			}
			parts := make([]string, len(fns))
			for i, f := range fns {
				parts[i] = fmt.Sprintf("%s:%s", f.Signal, f.Slot)
			}
			fmt.Printf("%s %-6s %s\n", rec.ID(), dir, strings.Join(parts, " "))
		}
	},
}

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "Show the bank partition and valid masks",
	Run: func(cmd *cobra.Command, args []string) {
		for _, b := range table().Banks() {
			fmt.Printf("%s width=%d pins=%v mask=%#08x\n", b.ID(), b.Width(), b.Pins(), b.PinMask())
		}
	},
}

func affinity(t *pinmux.Table) pinmux.CPUAffinity {
	pins := t.Pins()
	if len(pins) == 0 {
		return pinmux.SingleCore
	}
	return pins[0].Affinity()
}
