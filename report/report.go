// Package report renders the text surfaces a run mode prints: the loader
// summary, the per-cycle stage/Z-flag trace, the two-row register file
// dump, the data-memory dump, and the terminal "Simulation Complete" line.
// None of this is pipeline logic; it exists so cmd/apexsim stays a thin
// dispatcher over the engine and the pipeline package stays free of
// printf calls.
package report

import (
	"fmt"
	"io"

	"github.com/rs/xid"

	"github.com/apex-sim/apexsim/pipeline"
	"github.com/apex-sim/apexsim/state"
)

// Run tags one invocation of the simulator with a short unique ID. The ID
// is printed by LoaderSummary; StageTrace and Complete do not print it.
type Run struct {
	ID xid.ID
}

// NewRun stamps a fresh run identifier.
func NewRun() Run {
	return Run{ID: xid.New()}
}

// LoaderSummary reports a successfully loaded program, mirroring the
// Initialize run mode's terminal output.
func LoaderSummary(w io.Writer, run Run, path string, instructionCount int) {
	fmt.Fprintf(w, "APEX Simulator initialized successfully\n")
	fmt.Fprintf(w, "run:         %s\n", run.ID)
	fmt.Fprintf(w, "program:     %s\n", path)
	fmt.Fprintf(w, "code slots:  %d\n", instructionCount)
}

// Complete prints the terminal "Simulation Complete" line shared by the
// Simulate, Display and Single_Step run modes. ShowMem does not print it.
func Complete(w io.Writer, stats pipeline.Stats, halted bool) {
	status := "cycle cap reached"
	if halted {
		status = "HALT retired"
	}
	fmt.Fprintf(w, "Simulation Complete (%s): %d cycles, %d instructions retired\n",
		status, stats.Cycles, stats.Retired)
}

// RegisterFile prints the architectural register file as two rows of
// half the register count each, matching the original simulator's layout.
func RegisterFile(w io.Writer, regs *state.RegFile) {
	fmt.Fprintf(w, "==========STATE OF ARCHITECTURAL REGISTER FILE==============\n")

	snap := regs.Snapshot()
	half := len(snap) / 2

	printRow := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			reserved := 0
			if snap[i].Reserved {
				reserved = 1
			}
			fmt.Fprintf(w, "R%-3d[%-3d][%-3d] ", i, snap[i].Value, reserved)
		}
		fmt.Fprintf(w, "\n")
	}

	printRow(0, half)
	printRow(half, len(snap))
}

// DataMemory dumps the full data-memory contents word by word, matching
// the original simulator's MEM[addr] : value format.
func DataMemory(w io.Writer, mem *state.Memory) {
	fmt.Fprintf(w, "==========STATE OF DATA MEMORY==============\n")
	snap := mem.Snapshot()
	for addr, v := range snap {
		fmt.Fprintf(w, "MEM[%d] : %d\n", addr, v)
	}
}

// MemoryWord dumps a single data-memory word, for the ShowMem run mode.
func MemoryWord(w io.Writer, mem *state.Memory, addr int) {
	fmt.Fprintf(w, "==========STATE OF DATA MEMORY==============\n")
	fmt.Fprintf(w, "MEM[%d] : %d\n", addr, mem.Read(addr))
}

// StageTrace prints one cycle's stage contents and the Z flag, for the
// Display and Single_Step run modes' verbose per-cycle output.
func StageTrace(w io.Writer, cycle uint64, z bool, stages ...StageSnapshot) {
	fmt.Fprintf(w, "--------------------------------------------\n")
	fmt.Fprintf(w, "Clock Cycle #%d  Z Flag: %t\n", cycle, z)
	for _, s := range stages {
		if !s.HasInsn {
			fmt.Fprintf(w, "%-12s: Empty\n", s.Name)
			continue
		}
		fmt.Fprintf(w, "%-12s: %s\n", s.Name, s.Mnemonic)
	}
}

// StageSnapshot is one stage's display-only contents for a single cycle.
type StageSnapshot struct {
	Name     string
	HasInsn  bool
	Mnemonic string
}
