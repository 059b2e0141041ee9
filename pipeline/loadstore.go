package pipeline

import (
	"github.com/apex-sim/apexsim/insts"
	"github.com/apex-sim/apexsim/state"
)

// lsAddress computes the Load/Store-class effective address from
// already-resolved operands, per each opcode's operand form.
func lsAddress(inst insts.Instruction, l *Latch) int {
	switch inst.Op {
	case insts.OpLOAD:
		return l.Rs1Value + inst.Imm
	case insts.OpLDR:
		return l.Rs1Value + l.Rs2Value
	case insts.OpSTORE:
		return l.Rs2Value + inst.Imm
	case insts.OpSTR:
		return l.Rs1Value + l.Rs2Value
	default:
		return 0
	}
}

// lsAccess performs the Load/Store-class memory side effect, populating
// MemoryAddress always and ResultBuffer for loads.
func lsAccess(l *Latch, mem *state.Memory) {
	l.MemoryAddress = lsAddress(l.Inst, l)
	switch l.Inst.Op {
	case insts.OpLOAD, insts.OpLDR:
		l.ResultBuffer = mem.Read(l.MemoryAddress)
	case insts.OpSTORE:
		mem.Write(l.MemoryAddress, l.Rs1Value)
	case insts.OpSTR:
		mem.Write(l.MemoryAddress, l.Rs3Value)
	}
}
