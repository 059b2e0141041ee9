package state

import "github.com/apex-sim/apexsim/config"

// InitialPC is the program counter value at reset.
const InitialPC = 4000

// PCStep is the number of bytes each fetched instruction advances the PC.
const PCStep = 4

// ArchState bundles the full APEX architectural state owned by a single
// simulator instance: the register file, data memory, the zero flag and its
// pending bit, and the program counter.
type ArchState struct {
	Regs *RegFile
	Mem  *Memory

	// Z is the architectural zero flag, finalized at writeback.
	Z bool

	// ZPending guards BZ/BNZ issue while a Z-producing instruction is
	// in flight: asserted at that instruction's decode-issue, cleared at
	// its writeback (multi-FU variant: at its FU-to-writeback handoff).
	ZPending bool

	// PC is the program counter, initialized to InitialPC.
	PC int
}

// NewArchState builds the initial architectural state for the given engine
// configuration: all registers 0/unreserved, all memory 0, PC=InitialPC,
// Z=0, Z_pending=0.
func NewArchState(cfg *config.EngineConfig) *ArchState {
	return &ArchState{
		Regs: NewRegFile(cfg.RegisterCount),
		Mem:  NewMemory(cfg.DataMemorySize),
		PC:   InitialPC,
	}
}

// CodeIndex converts a PC value into a code-memory slot index.
func CodeIndex(pc int) int {
	return (pc - InitialPC) / PCStep
}
