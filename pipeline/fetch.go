package pipeline

import (
	"github.com/apex-sim/apexsim/insts"
	"github.com/apex-sim/apexsim/state"
)

// FetchStage reads instructions from a fixed code-memory image.
type FetchStage struct {
	code []insts.Instruction
}

// NewFetchStage builds a fetch stage over the given code-memory image.
func NewFetchStage(code []insts.Instruction) *FetchStage {
	return &FetchStage{code: code}
}

// FetchIO bundles the engine-owned fields the fetch stage reads and
// mutates in a single cycle.
type FetchIO struct {
	PC                 *int
	FetchActive        *bool
	FetchFromNextCycle *bool
	DecodeStalled      bool
	FetchLatch         *Latch
	DecodeLatch        *Latch
}

// Tick runs one cycle of the fetch stage.
//
// Decode stalling re-reads the instruction at the current PC (the next one
// to fetch) into the fetch latch without advancing PC or forwarding to
// decode; once fetch has frozen on HALT, a stall leaves the fetch latch as
// it is. A pending branch redirect consumes one cycle of silence.
// Otherwise fetch reads the next instruction, advances PC, forwards into
// decode, and freezes itself for good once HALT is fetched.
func (f *FetchStage) Tick(io FetchIO) {
	if io.DecodeStalled {
		if !*io.FetchActive {
			return
		}
		idx := state.CodeIndex(*io.PC)
		io.FetchLatch.HasInsn = true
		io.FetchLatch.PC = *io.PC
		io.FetchLatch.Inst = f.code[idx]
		return
	}

	if *io.FetchFromNextCycle {
		*io.FetchFromNextCycle = false
		return
	}

	if !*io.FetchActive {
		return
	}

	idx := state.CodeIndex(*io.PC)
	inst := f.code[idx]

	io.FetchLatch.HasInsn = true
	io.FetchLatch.PC = *io.PC
	io.FetchLatch.Inst = inst
	*io.PC += state.PCStep

	*io.DecodeLatch = *io.FetchLatch

	if inst.IsHalt() {
		*io.FetchActive = false
	}
}
