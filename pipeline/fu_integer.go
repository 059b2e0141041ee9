package pipeline

import (
	"github.com/apex-sim/apexsim/insts"
	"github.com/apex-sim/apexsim/state"
)

// NewIntegerFU builds the Integer function unit: the ALU opcodes, CMP,
// MOVC, HALT, NOP, and conditional-branch resolution.
func NewIntegerFU(latency uint64) *FunctionUnit {
	return NewFunctionUnit(insts.FUInt, latency, integerCompute)
}

func integerCompute(l *Latch, arch *state.ArchState, branch *BranchRedirect) {
	inst := l.Inst

	switch inst.Op {
	case insts.OpCMP, insts.OpHALT, insts.OpNOP:
		// No result_buffer; CMP's Z hint is resolved at writeback from the
		// operand values already carried in the latch.
	case insts.OpBZ, insts.OpBNZ:
		if branchTakenFor(inst.Op, arch.Z) {
			arch.PC = l.PC + inst.Imm
			*branch.FetchFromNextCycle = true
			branch.DecodeLatch.Clear()
			branch.FetchLatch.HasInsn = true
		}
	default:
		l.ResultBuffer = aluResult(inst, l.Rs1Value, l.Rs2Value)
	}
}
