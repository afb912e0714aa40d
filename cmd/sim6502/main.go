// sim6502 is the "small executable that loads a byte array and prints
// registers" spec.md names as an outer collaborator. It owns no 6502
// semantics of its own: it loads a program (raw binary or hand-assembly
// text), calls LoadAndRun, and prints final register/flag state.
// Grounded on the pack's own urfave/cli driver for a similarly small
// single-purpose conversion tool.
package main

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/urfave/cli.v2"

	"github.com/Error916/6502Emulator/asm"
	"github.com/Error916/6502Emulator/cpu"
)

func main() {
	app := &cli.App{
		Name:    "sim6502",
		Usage:   "load and run a 6502 program, then print final register state",
		Version: "v0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "program",
				Aliases: []string{"p"},
				Usage:   "path to a program file",
			},
			&cli.BoolFlag{
				Name:    "asm",
				Aliases: []string{"a"},
				Usage:   "treat the program file as hand-assembly text instead of raw bytes",
			},
		},
		Action: func(c *cli.Context) error {
			path := c.String("program")
			if path == "" {
				cli.ShowAppHelp(c)
				return cli.Exit("a -program path is required", 1)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("reading %q: %v", path, err), 1)
			}

			var program []uint8
			if c.Bool("asm") {
				program, err = asm.Assemble(string(data))
				if err != nil {
					return cli.Exit(fmt.Sprintf("assembling %q: %v", path, err), 1)
				}
			} else {
				program = data
			}

			m := cpu.Create()
			runErr := m.LoadAndRun(program)
			printState(m)
			if runErr != nil {
				// LoadAndRun only ever returns a non-nil error for a real
				// fault: a clean BRK halt is already reported as nil by Run.
				return cli.Exit(runErr.Error(), 1)
			}
			return nil
		},
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printState(m *cpu.CPU) {
	fmt.Printf("PC=%04X A=%02X X=%02X Y=%02X SP=%02X P=%02X\n",
		m.PC, m.A, m.X, m.Y, m.SP, m.P)
	fmt.Printf("flags: N=%t V=%t B=%t D=%t I=%t Z=%t C=%t\n",
		m.Flag(cpu.FlagNegative), m.Flag(cpu.FlagOverflow), m.Flag(cpu.FlagBreak),
		m.Flag(cpu.FlagDecimal), m.Flag(cpu.FlagInterrupt), m.Flag(cpu.FlagZero),
		m.Flag(cpu.FlagCarry))
}
