package pipeline

import "github.com/apex-sim/apexsim/insts"

// Latch is a pipeline stage register: a presence bit plus a full decoded
// instruction and the dynamic fields later stages fill in as the
// instruction moves forward. A latch must never carry two instructions at
// once; Clear returns it to its empty zero value.
type Latch struct {
	HasInsn bool
	PC      int
	Inst    insts.Instruction

	Rs1Value int
	Rs2Value int
	Rs3Value int

	ResultBuffer  int
	MemoryAddress int
}

// Clear empties the latch.
func (l *Latch) Clear() {
	*l = Latch{}
}
