package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"pinmux-go/pinmux"
)

// A bind plan is a text file of lines
//
//	bind <pin> <input|output> <signal>
//
// with #-comments and shell-style quoting. The plan subcommand dry-runs
// every line against the matrix so a board wiring can be checked before
// any firmware is flashed.
var planCmd = &cobra.Command{
	Use:   "plan <file>",
	Short: "Validate a bind plan against the function matrix",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalf("pinmux: %v", err)
		}
		defer f.Close()

		bad, err := validatePlan(table(), args[0], f, os.Stdout)
		if err != nil {
			log.Fatalf("pinmux: %v", err)
		}
		if bad > 0 {
			log.Fatalf("pinmux: %d invalid binding(s)", bad)
		}
	},
}

// validatePlan dry-runs one plan against the table, reporting each line to
// out. It returns the number of lines whose binding the matrix rejects; a
// line that is not a plan line at all (bad quoting, wrong shape) aborts
// with an error instead, since the rest of the file can't be trusted.
func validatePlan(t *pinmux.Table, name string, r io.Reader, out io.Writer) (int, error) {
	bad := 0
	lineNo := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields, err := shlex.Split(line)
		if err != nil {
			return bad, fmt.Errorf("%s:%d: %v", name, lineNo, err)
		}
		if len(fields) != 4 || fields[0] != "bind" {
			return bad, fmt.Errorf("%s:%d: want `bind <pin> <dir> <signal>`, got %q", name, lineNo, line)
		}
		slot, err := resolveLine(t, fields[1], fields[2], fields[3])
		if err != nil {
			bad++
			fmt.Fprintf(out, "%s:%d: FAIL %s: %v\n", name, lineNo, line, err)
			continue
		}
		fmt.Fprintf(out, "%s:%d: ok   %s %s %s -> %s\n", name, lineNo, fields[1], fields[2], fields[3], slot)
	}
	return bad, sc.Err()
}

func resolveLine(t *pinmux.Table, pin, dirStr, signal string) (pinmux.FunctionSlot, error) {
	rec, err := t.ByID(pin)
	if err != nil {
		return 0, err
	}
	dir, err := pinmux.ParseDirection(dirStr)
	if err != nil {
		return 0, err
	}
	return rec.Resolve(dir, pinmux.Signal(signal))
}
