// pinmux inspects the static pin capability tables: per-pin records,
// signal matrices, bank partition, and dry-run validation of bind plans.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"pinmux-go/pinmux"
	"pinmux-go/pinmux/chips"
	_ "pinmux-go/pinmux/esp32"
)

var (
	chipName string

	rootCmd = &cobra.Command{
		Use:   "pinmux",
		Short: "Inspect pin-mux capability tables",
	}
)

func main() {
	log.SetFlags(0)
	rootCmd.PersistentFlags().StringVar(&chipName, "chip", "esp32", "chip variant")
	rootCmd.AddCommand(pinsCmd, signalsCmd, banksCmd, resolveCmd, planCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func table() *pinmux.Table {
	t, err := chips.ByName(chipName)
	if err != nil {
		log.Fatalf("pinmux: %v (known: %v)", err, chips.Names())
	}
	return t
}
