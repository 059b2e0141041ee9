package pipeline

import (
	"github.com/apex-sim/apexsim/insts"
	"github.com/apex-sim/apexsim/state"
)

// FUFreeFunc reports whether the function unit an instruction targets is
// idle and able to accept dispatch this cycle. The single-FU variant has
// no notion of a busy function unit and passes nil.
type FUFreeFunc func(insts.FUClass) bool

// DecodeStage reads operands, checks issue hazards, and reserves the
// destination register for one instruction per cycle. It is shared by both
// pipeline variants; only the FU-availability check differs between them.
type DecodeStage struct {
	regs *state.RegFile
}

// NewDecodeStage builds a decode stage over the given register file.
func NewDecodeStage(regs *state.RegFile) *DecodeStage {
	return &DecodeStage{regs: regs}
}

// Try attempts to issue inst this cycle. On success it returns the
// populated execute-latch contents (PC unset; the caller fills it in) and
// true, having read operands, reserved the destination register, and
// asserted Z_pending if inst produces the zero flag. On failure — operands
// not ready, a conditional branch blocked behind an in-flight Z producer,
// or the target function unit busy — it returns the zero Latch and false,
// and the caller must leave the decode latch in place for next cycle.
func (d *DecodeStage) Try(inst insts.Instruction, arch *state.ArchState, fuFree FUFreeFunc) (Latch, bool) {
	if !OperandsReady(inst, d.regs, arch.ZPending) {
		return Latch{}, false
	}
	if fuFree != nil && !fuFree(inst.FUClass()) {
		return Latch{}, false
	}

	out := Latch{HasInsn: true, Inst: inst}
	if inst.ReadsRs1() {
		out.Rs1Value = d.regs.Read(inst.Rs1)
	}
	if inst.ReadsRs2() {
		out.Rs2Value = d.regs.Read(inst.Rs2)
	}
	if inst.ReadsRs3() {
		out.Rs3Value = d.regs.Read(inst.Rs3)
	}
	if inst.WritesReg() {
		d.regs.Reserve(inst.Rd)
	}
	if inst.WritesZ() {
		arch.ZPending = true
	}
	return out, true
}
