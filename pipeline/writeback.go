package pipeline

import (
	"github.com/apex-sim/apexsim/insts"
	"github.com/apex-sim/apexsim/state"
)

// WritebackStage commits a retiring instruction's results to architectural
// state. It is shared by both pipeline variants; Z_pending clearing is not
// its responsibility, since the two variants clear it at different points
// (single-FU: here, at writeback itself; multi-FU: one cycle earlier, at
// the function unit's handoff into this latch).
type WritebackStage struct{}

// NewWritebackStage builds a writeback stage.
func NewWritebackStage() *WritebackStage {
	return &WritebackStage{}
}

// Result reports what happened at writeback this cycle.
type Result struct {
	Retired bool
	Halted  bool
	WroteZ  bool
}

// Commit finalizes l's instruction against arch and clears l.
func (w *WritebackStage) Commit(l *Latch, arch *state.ArchState) Result {
	if !l.HasInsn {
		return Result{}
	}
	inst := l.Inst

	if inst.WritesReg() {
		arch.Regs.Commit(inst.Rd, l.ResultBuffer)
	}
	if inst.WritesZ() {
		if inst.Op == insts.OpCMP {
			arch.Z = l.Rs1Value == l.Rs2Value
		} else {
			arch.Z = l.ResultBuffer == 0
		}
	}

	halted := inst.IsHalt()
	wroteZ := inst.WritesZ()
	l.Clear()
	return Result{Retired: true, Halted: halted, WroteZ: wroteZ}
}
