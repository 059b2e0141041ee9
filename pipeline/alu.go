package pipeline

import "github.com/apex-sim/apexsim/insts"

// aluResult computes the Integer-class result for opcodes that produce a
// result_buffer value from already-resolved operands. CMP, the branches,
// HALT and NOP are handled by their callers.
func aluResult(inst insts.Instruction, rs1, rs2 int) int {
	switch inst.Op {
	case insts.OpADD:
		return rs1 + rs2
	case insts.OpSUB:
		return rs1 - rs2
	case insts.OpADDL:
		return rs1 + inst.Imm
	case insts.OpSUBL:
		return rs1 - inst.Imm
	case insts.OpAND:
		return rs1 & rs2
	case insts.OpOR:
		return rs1 | rs2
	case insts.OpXOR:
		return rs1 ^ rs2
	case insts.OpMOVC:
		return inst.Imm
	case insts.OpMUL:
		return rs1 * rs2
	case insts.OpDIV:
		if rs2 == 0 {
			return 0
		}
		return rs1 / rs2
	default:
		return 0
	}
}

// branchTakenFor evaluates a conditional branch's take/not-take decision
// against the current architectural Z flag.
func branchTakenFor(op insts.Op, z bool) bool {
	switch op {
	case insts.OpBZ:
		return z
	case insts.OpBNZ:
		return !z
	default:
		return false
	}
}
