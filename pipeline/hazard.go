package pipeline

import (
	"github.com/apex-sim/apexsim/insts"
	"github.com/apex-sim/apexsim/state"
)

// OperandsReady reports whether every register the instruction reads is
// currently unreserved, and, for conditional branches, whether no
// Z-producing instruction is in flight ahead of it.
func OperandsReady(inst insts.Instruction, regs *state.RegFile, zPending bool) bool {
	if inst.ReadsZ() && zPending {
		return false
	}
	if inst.ReadsRs1() && !regs.Ready(inst.Rs1) {
		return false
	}
	if inst.ReadsRs2() && !regs.Ready(inst.Rs2) {
		return false
	}
	if inst.ReadsRs3() && !regs.Ready(inst.Rs3) {
		return false
	}
	return true
}
