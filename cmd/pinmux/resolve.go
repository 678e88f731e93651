package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"pinmux-go/pinmux"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <pin> <input|output> <signal>",
	Short: "Resolve a (pin, direction, signal) triple to its mux slot",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		rec, err := table().ByID(args[0])
		if err != nil {
			log.Fatalf("pinmux: %v", err)
		}
		dir, err := pinmux.ParseDirection(args[1])
		if err != nil {
			log.Fatalf("pinmux: %v", err)
		}
		slot, err := rec.Resolve(dir, pinmux.Signal(args[2]))
		if err != nil {
			log.Fatalf("pinmux: %v", err)
		}
		fmt.Printf("%s %s %s -> %s\n", rec.ID(), dir, args[2], slot)
	},
}
