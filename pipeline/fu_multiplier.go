package pipeline

import (
	"github.com/apex-sim/apexsim/insts"
	"github.com/apex-sim/apexsim/state"
)

// NewMultiplierFU builds the Multiplier function unit: MUL and DIV, the
// two highest-latency arithmetic opcodes.
func NewMultiplierFU(latency uint64) *FunctionUnit {
	return NewFunctionUnit(insts.FUMul, latency, multiplierCompute)
}

func multiplierCompute(l *Latch, _ *state.ArchState, _ *BranchRedirect) {
	l.ResultBuffer = aluResult(l.Inst, l.Rs1Value, l.Rs2Value)
}
