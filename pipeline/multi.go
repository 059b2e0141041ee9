package pipeline

import (
	"github.com/apex-sim/apexsim/config"
	"github.com/apex-sim/apexsim/insts"
	"github.com/apex-sim/apexsim/state"
)

// MultiFUPipeline is the multi-function-unit engine: Fetch, Decode,
// Dispatch into one of three parallel function units (Integer,
// Multiplier, Load/Store), and a shared Writeback arbitrated by a
// completion-order queue so heterogeneous FU latencies cannot retire
// instructions out of program order.
type MultiFUPipeline struct {
	arch *state.ArchState
	code []insts.Instruction

	fetch      *FetchStage
	decode     *DecodeStage
	writeback  *WritebackStage
	completion *CompletionQueue

	intFU *FunctionUnit
	mulFU *FunctionUnit
	lsFU  *FunctionUnit

	fetchLatch     Latch
	decodeLatch    Latch
	executeLatch   Latch
	writebackLatch Latch

	fetchActive        bool
	fetchFromNextCycle bool

	cycles  uint64
	retired uint64
	stalls  uint64
	halted  bool
}

// NewMultiFUPipeline builds a multi-FU engine over the given code image,
// architectural state, and latency/queue configuration.
func NewMultiFUPipeline(code []insts.Instruction, arch *state.ArchState, cfg *config.EngineConfig) *MultiFUPipeline {
	return &MultiFUPipeline{
		arch:        arch,
		code:        code,
		fetch:       NewFetchStage(code),
		decode:      NewDecodeStage(arch.Regs),
		writeback:   NewWritebackStage(),
		completion:  NewCompletionQueue(cfg.CompletionQueueCapacity),
		intFU:       NewIntegerFU(cfg.IntLatency),
		mulFU:       NewMultiplierFU(cfg.MulLatency),
		lsFU:        NewLoadStoreFU(cfg.LSLatency),
		fetchActive: true,
	}
}

// Halted reports whether HALT has retired.
func (p *MultiFUPipeline) Halted() bool {
	return p.halted
}

// Stats returns the engine's current counters.
func (p *MultiFUPipeline) Stats() Stats {
	return Stats{Cycles: p.cycles, Retired: p.retired, Stalls: p.stalls}
}

// Stages returns the current contents of every stage/unit latch, in
// pipeline order, mirroring the teacher's GetIFID/GetIDEX/GetEXMEM/GetMEMWB
// accessors. The three function units sit where a single-FU engine would
// have one Execute stage.
func (p *MultiFUPipeline) Stages() []StageState {
	return []StageState{
		{Name: "Fetch", Latch: p.fetchLatch},
		{Name: "Decode", Latch: p.decodeLatch},
		{Name: "Dispatch", Latch: p.executeLatch},
		{Name: "Integer FU", Latch: p.intFU.Latch()},
		{Name: "Multiplier FU", Latch: p.mulFU.Latch()},
		{Name: "Load/Store FU", Latch: p.lsFU.Latch()},
		{Name: "Writeback", Latch: p.writebackLatch},
	}
}

// Tick advances the engine by one cycle: Writeback, then Dispatch+FU tick,
// then Decode, then Fetch, in that order, for the same reverse-pipeline
// reason SingleFUPipeline uses.
func (p *MultiFUPipeline) Tick() bool {
	if p.halted {
		return true
	}
	p.cycles++

	wb := p.writeback.Commit(&p.writebackLatch, p.arch)
	if wb.Retired {
		p.retired++
		if wb.Halted {
			p.halted = true
			return true
		}
	}

	p.doDispatchAndTick()

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
func (p *MultiFUPipeline) Run(cycleCap uint64) bool {
	for !p.halted && p.cycles < cycleCap {
		p.Tick()
	}
	return p.halted
}

func (p *MultiFUPipeline) fuFree(class insts.FUClass) bool {
	switch class {
	case insts.FUInt:
		return !p.intFU.Busy()
	case insts.FUMul:
		return !p.mulFU.Busy()
	case insts.FULS:
		return !p.lsFU.Busy()
	default:
		return false
	}
}

// doDispatchAndTick routes a pending execute-latch instruction into its
// target function unit, then ticks all three units in a fixed order
// (Integer, Multiplier, Load/Store).
func (p *MultiFUPipeline) doDispatchAndTick() {
	if p.executeLatch.HasInsn {
		l := p.executeLatch
		switch l.Inst.FUClass() {
		case insts.FUInt:
			p.intFU.Dispatch(l)
		case insts.FUMul:
			p.mulFU.Dispatch(l)
		case insts.FULS:
			p.lsFU.Dispatch(l)
		}
		p.executeLatch.Clear()
	}

	branch := &BranchRedirect{
		FetchFromNextCycle: &p.fetchFromNextCycle,
		DecodeLatch:        &p.decodeLatch,
		FetchLatch:         &p.fetchLatch,
	}

	p.intFU.Tick(p.arch, p.completion, &p.writebackLatch, branch)
	p.mulFU.Tick(p.arch, p.completion, &p.writebackLatch, branch)
	p.lsFU.Tick(p.arch, p.completion, &p.writebackLatch, branch)
}

func (p *MultiFUPipeline) doDecode() (stalled bool) {
	if !p.decodeLatch.HasInsn {
		p.executeLatch.Clear()
		return false
	}

	out, ok := p.decode.Try(p.decodeLatch.Inst, p.arch, p.fuFree)
	if !ok {
		return true
	}

	out.PC = p.decodeLatch.PC
	p.executeLatch = out
	p.decodeLatch.Clear()
	return false
}
