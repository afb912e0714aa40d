// sim6502dbg is an interactive step-through debugger for the 6502
// core: load a program, then single-step it one instruction at a time
// on a keypress, watching registers, flags, and a page of memory around
// PC. It has no 6502 semantics of its own; it is a thin bubbletea/
// lipgloss front end over cpu.Step and package disassemble, grounded on
// the pack's own terminal debugger for this chip.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/Error916/6502Emulator/asm"
	"github.com/Error916/6502Emulator/cpu"
	"github.com/Error916/6502Emulator/disassemble"
)

type model struct {
	c       *cpu.CPU
	prevPC  uint16
	halted  bool
	lastErr error
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "n":
		if m.halted {
			return m, nil
		}
		m.prevPC = m.c.PC
		if err := m.c.Step(); err != nil {
			m.lastErr = err
			m.halted = true
		}
	}
	return m, nil
}

func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04X | ", start)
	for i := 0; i < 16; i++ {
		addr := start + uint16(i)
		b := m.c.MemRead(addr)
		if addr == m.c.PC {
			s += fmt.Sprintf("[%02X] ", b)
		} else {
			s += fmt.Sprintf(" %02X  ", b)
		}
	}
	return s
}

func (m model) pageTable() string {
	base := m.c.PC &^ 0x000F
	var rows []string
	for i := int16(-2); i <= 2; i++ {
		rows = append(rows, m.renderPage(uint16(int32(base)+int32(i)*16)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m model) status() string {
	text, _ := disassemble.Step(m.c.PC, m.c)
	flagBits := []struct {
		name string
		set  bool
	}{
		{"N", m.c.Flag(cpu.FlagNegative)},
		{"V", m.c.Flag(cpu.FlagOverflow)},
		{"B", m.c.Flag(cpu.FlagBreak)},
		{"D", m.c.Flag(cpu.FlagDecimal)},
		{"I", m.c.Flag(cpu.FlagInterrupt)},
		{"Z", m.c.Flag(cpu.FlagZero)},
		{"C", m.c.Flag(cpu.FlagCarry)},
	}
	flags := ""
	for _, f := range flagBits {
		if f.set {
			flags += f.name + " "
		} else {
			flags += ". "
		}
	}
	out := fmt.Sprintf("PC: %04X (was %04X)\nA: %02X  X: %02X  Y: %02X  SP: %02X\nN V B D I Z C\n%s\n\n%s",
		m.c.PC, m.prevPC, m.c.A, m.c.X, m.c.Y, m.c.SP, flags, text)
	if m.halted {
		out += "\n\nhalted: " + m.lastErr.Error()
	}
	return out
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.pageTable(),
		"",
		m.status(),
		"",
		"space/n: step   q: quit",
	)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: sim6502dbg <program.asm>")
		os.Exit(1)
	}
	src, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "read program:", err)
		os.Exit(1)
	}
	program, err := asm.Assemble(string(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, "assemble program:", err)
		os.Exit(1)
	}

	c := cpu.Create()
	c.Load(program)
	c.Reset()

	m := model{c: c}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "debugger:", err)
		os.Exit(1)
	}

	fmt.Println(spew.Sdump(c))
}
