package pipeline

import (
	"github.com/apex-sim/apexsim/insts"
	"github.com/apex-sim/apexsim/state"
)

// NewLoadStoreFU builds the Load/Store function unit: LOAD, LDR, STORE
// and STR.
func NewLoadStoreFU(latency uint64) *FunctionUnit {
	return NewFunctionUnit(insts.FULS, latency, loadStoreCompute)
}

func loadStoreCompute(l *Latch, arch *state.ArchState, _ *BranchRedirect) {
	lsAccess(l, arch.Mem)
}
