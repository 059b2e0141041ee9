package pipeline

import (
	"github.com/apex-sim/apexsim/insts"
	"github.com/apex-sim/apexsim/state"
)

// SingleFUPipeline is the classic in-order five-stage engine: Fetch,
// Decode, Execute, Memory, Writeback, one shared execute unit, no
// forwarding. Hazards stall in decode until the scoreboard clears.
type SingleFUPipeline struct {
	arch *state.ArchState
	code []insts.Instruction

	fetch     *FetchStage
	decode    *DecodeStage
	writeback *WritebackStage

	fetchLatch     Latch
	decodeLatch    Latch
	executeLatch   Latch
	memoryLatch    Latch
	writebackLatch Latch

	fetchActive        bool
	fetchFromNextCycle bool

	cycles  uint64
	retired uint64
	stalls  uint64
	halted  bool
}

// NewSingleFUPipeline builds a single-FU engine over the given code image
// and architectural state.
func NewSingleFUPipeline(code []insts.Instruction, arch *state.ArchState) *SingleFUPipeline {
	return &SingleFUPipeline{
		arch:        arch,
		code:        code,
		fetch:       NewFetchStage(code),
		decode:      NewDecodeStage(arch.Regs),
		writeback:   NewWritebackStage(),
		fetchActive: true,
	}
}

// Halted reports whether HALT has retired.
func (p *SingleFUPipeline) Halted() bool {
	return p.halted
}

// Stats reports the engine's running cycle and instruction counters.
type Stats struct {
	Cycles  uint64
	Retired uint64
	Stalls  uint64
}

// Stats returns the engine's current counters.
func (p *SingleFUPipeline) Stats() Stats {
	return Stats{Cycles: p.cycles, Retired: p.retired, Stalls: p.stalls}
}

// Stages returns the current contents of every stage latch, in pipeline
// order, mirroring the teacher's GetIFID/GetIDEX/GetEXMEM/GetMEMWB
// accessors.
func (p *SingleFUPipeline) Stages() []StageState {
	return []StageState{
		{Name: "Fetch", Latch: p.fetchLatch},
		{Name: "Decode", Latch: p.decodeLatch},
		{Name: "Execute", Latch: p.executeLatch},
		{Name: "Memory", Latch: p.memoryLatch},
		{Name: "Writeback", Latch: p.writebackLatch},
	}
}

// Tick advances the engine by one cycle, running the stages in reverse
// pipeline order (Writeback, Memory, Execute, Decode, Fetch) so that a
// stage's write this cycle is never read by its downstream neighbor until
// next cycle, without needing to double-buffer every latch. It returns
// true once HALT has retired.
func (p *SingleFUPipeline) Tick() bool {
	if p.halted {
		return true
	}
	p.cycles++

	wb := p.writeback.Commit(&p.writebackLatch, p.arch)
	if wb.Retired {
		p.retired++
		if wb.WroteZ {
			p.arch.ZPending = false
		}
		if wb.Halted {
			p.halted = true
			return true
		}
	}

	p.doMemory()
	p.doExecute()

	decodeStalled := p.doDecode()
	if decodeStalled {
		p.stalls++
	}

	p.fetch.Tick(FetchIO{
		PC:                 &p.arch.PC,
		FetchActive:        &p.fetchActive,
		FetchFromNextCycle: &p.fetchFromNextCycle,
		DecodeStalled:      decodeStalled,
		FetchLatch:         &p.fetchLatch,
		DecodeLatch:        &p.decodeLatch,
	})

	return p.halted
}

// Run ticks the engine until HALT retires or cycleCap is reached, and
// reports whether it halted.
func (p *SingleFUPipeline) Run(cycleCap uint64) bool {
	for !p.halted && p.cycles < cycleCap {
		p.Tick()
	}
	return p.halted
}

func (p *SingleFUPipeline) doMemory() {
	if !p.memoryLatch.HasInsn {
		p.writebackLatch.Clear()
		return
	}
	l := p.memoryLatch
	switch l.Inst.Op {
	case insts.OpLOAD, insts.OpLDR:
		l.ResultBuffer = p.arch.Mem.Read(l.MemoryAddress)
	case insts.OpSTORE:
		p.arch.Mem.Write(l.MemoryAddress, l.Rs1Value)
	case insts.OpSTR:
		p.arch.Mem.Write(l.MemoryAddress, l.Rs3Value)
	}
	p.writebackLatch = l
	p.memoryLatch.Clear()
}

func (p *SingleFUPipeline) doExecute() {
	if !p.executeLatch.HasInsn {
		p.memoryLatch.Clear()
		return
	}
	l := p.executeLatch
	inst := l.Inst

	switch {
	case inst.IsBranch():
		if branchTakenFor(inst.Op, p.arch.Z) {
			p.arch.PC = l.PC + inst.Imm
			p.fetchFromNextCycle = true
			p.decodeLatch.Clear()
			p.fetchLatch.HasInsn = true
		}
	case inst.Op == insts.OpLOAD:
		l.MemoryAddress = l.Rs1Value + inst.Imm
	case inst.Op == insts.OpLDR:
		l.MemoryAddress = l.Rs1Value + l.Rs2Value
	case inst.Op == insts.OpSTORE:
		l.MemoryAddress = l.Rs2Value + inst.Imm
	case inst.Op == insts.OpSTR:
		l.MemoryAddress = l.Rs1Value + l.Rs2Value
	case inst.Op == insts.OpCMP, inst.Op == insts.OpHALT, inst.Op == insts.OpNOP:
		// no result
	default:
		l.ResultBuffer = aluResult(inst, l.Rs1Value, l.Rs2Value)
	}

	p.memoryLatch = l
	p.executeLatch.Clear()
}

func (p *SingleFUPipeline) doDecode() (stalled bool) {
	if !p.decodeLatch.HasInsn {
		p.executeLatch.Clear()
		return false
	}

	out, ok := p.decode.Try(p.decodeLatch.Inst, p.arch, nil)
	if !ok {
		return true
	}

	out.PC = p.decodeLatch.PC
	p.executeLatch = out
	p.decodeLatch.Clear()
	return false
}
