package pipeline

import (
	"github.com/apex-sim/apexsim/insts"
	"github.com/apex-sim/apexsim/state"
)

// BranchRedirect carries the engine-owned control fields a taken branch
// must mutate: redirecting the PC, silencing fetch for one cycle, and
// flushing whatever decode is currently holding.
type BranchRedirect struct {
	FetchFromNextCycle *bool
	DecodeLatch        *Latch
	FetchLatch         *Latch
}

// ComputeFunc performs a function unit's entire computation for one
// instruction in a single call. branch is non-nil only for the Integer FU,
// which is the only class that resolves conditional branches.
type ComputeFunc func(l *Latch, arch *state.ArchState, branch *BranchRedirect)

// FunctionUnit models one of the three parallel execution units (Integer,
// Multiplier, Load/Store). Each carries its own input latch, busy bit, and
// cycle counter, and hands its result to writeback only once its latency
// has elapsed and it is at the head of the completion queue.
type FunctionUnit struct {
	Class   insts.FUClass
	Latency uint64
	Compute ComputeFunc

	latch    Latch
	counter  uint64
	computed bool
}

// NewFunctionUnit builds an idle function unit of the given class.
func NewFunctionUnit(class insts.FUClass, latency uint64, compute ComputeFunc) *FunctionUnit {
	return &FunctionUnit{Class: class, Latency: latency, Compute: compute, counter: 1}
}

// Busy reports whether the unit currently holds an in-flight instruction.
func (f *FunctionUnit) Busy() bool {
	return f.latch.HasInsn
}

// Latch returns the unit's current input/in-flight latch, for
// display-only introspection.
func (f *FunctionUnit) Latch() Latch {
	return f.latch
}

// Dispatch delivers a newly-routed instruction into the unit's input
// latch. Only valid when !Busy().
func (f *FunctionUnit) Dispatch(l Latch) {
	l.HasInsn = true
	f.latch = l
	f.counter = 1
	f.computed = false
}

// Tick advances the unit by one cycle. On the cycle an instruction
// arrives it performs the full computation immediately; once its latency
// has elapsed and it reaches the head of completion, it hands the result
// to wb and goes idle.
func (f *FunctionUnit) Tick(arch *state.ArchState, completion *CompletionQueue, wb *Latch, branch *BranchRedirect) {
	if !f.latch.HasInsn {
		return
	}

	if !f.computed {
		f.Compute(&f.latch, arch, branch)
		completion.Enqueue(f.Class)
		f.computed = true
	}

	if f.counter >= f.Latency && completion.Head() == f.Class {
		*wb = f.latch
		if wb.Inst.WritesZ() {
			arch.ZPending = false
		}
		f.latch.Clear()
		f.counter = 1
		completion.Dequeue()
		return
	}

	if f.counter < f.Latency {
		f.counter++
	}
}
