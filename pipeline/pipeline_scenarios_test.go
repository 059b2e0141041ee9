package pipeline_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/apex-sim/apexsim/config"
	"github.com/apex-sim/apexsim/insts"
	"github.com/apex-sim/apexsim/pipeline"
	"github.com/apex-sim/apexsim/state"
)

func newArch() *state.ArchState {
	return state.NewArchState(config.DefaultEngineConfig())
}

var _ = Describe("SingleFUPipeline", func() {
	It("stalls ADD on a RAW hazard against two prior MOVCs (S1)", func() {
		code := []insts.Instruction{
			{Mnemonic: "MOVC", Op: insts.OpMOVC, Rd: 1, Imm: 5},
			{Mnemonic: "MOVC", Op: insts.OpMOVC, Rd: 2, Imm: 7},
			{Mnemonic: "ADD", Op: insts.OpADD, Rd: 3, Rs1: 1, Rs2: 2},
			{Mnemonic: "HALT", Op: insts.OpHALT},
		}
		arch := newArch()
		p := pipeline.NewSingleFUPipeline(code, arch)

		Expect(p.Run(10000)).To(BeTrue())

		stats := p.Stats()
		Expect(stats.Cycles).To(BeNumerically(">=", 7))
		Expect(stats.Retired).To(Equal(uint64(4)))
		Expect(arch.Regs.Read(3)).To(Equal(12))
	})

	It("flushes the fall-through instruction on a taken BZ (S3)", func() {
		code := []insts.Instruction{
			{Mnemonic: "MOVC", Op: insts.OpMOVC, Rd: 1, Imm: 0},
			{Mnemonic: "MOVC", Op: insts.OpMOVC, Rd: 2, Imm: 0},
			{Mnemonic: "CMP", Op: insts.OpCMP, Rs1: 1, Rs2: 2},
			{Mnemonic: "BZ", Op: insts.OpBZ, Imm: 8},
			{Mnemonic: "MOVC", Op: insts.OpMOVC, Rd: 5, Imm: 99},
			{Mnemonic: "MOVC", Op: insts.OpMOVC, Rd: 6, Imm: 42},
			{Mnemonic: "HALT", Op: insts.OpHALT},
		}
		arch := newArch()
		p := pipeline.NewSingleFUPipeline(code, arch)

		Expect(p.Run(10000)).To(BeTrue())

		Expect(arch.Regs.Read(5)).To(Equal(0))
		Expect(arch.Regs.Read(6)).To(Equal(42))
	})

	It("does not take a BNZ when Z is set (S5)", func() {
		code := []insts.Instruction{
			{Mnemonic: "MOVC", Op: insts.OpMOVC, Rd: 1, Imm: 0},
			{Mnemonic: "MOVC", Op: insts.OpMOVC, Rd: 2, Imm: 0},
			{Mnemonic: "CMP", Op: insts.OpCMP, Rs1: 1, Rs2: 2},
			{Mnemonic: "BNZ", Op: insts.OpBNZ, Imm: 8},
			{Mnemonic: "MOVC", Op: insts.OpMOVC, Rd: 5, Imm: 11},
			{Mnemonic: "HALT", Op: insts.OpHALT},
		}
		arch := newArch()
		p := pipeline.NewSingleFUPipeline(code, arch)

		Expect(p.Run(10000)).To(BeTrue())

		Expect(arch.Regs.Read(5)).To(Equal(11))
	})
})

var _ = Describe("MultiFUPipeline", func() {
	It("retains in-order writeback across heterogeneous FU latencies (S2)", func() {
		code := []insts.Instruction{
			{Mnemonic: "MOVC", Op: insts.OpMOVC, Rd: 1, Imm: 2},
			{Mnemonic: "MOVC", Op: insts.OpMOVC, Rd: 2, Imm: 3},
			{Mnemonic: "MUL", Op: insts.OpMUL, Rd: 3, Rs1: 1, Rs2: 2},
			{Mnemonic: "ADD", Op: insts.OpADD, Rd: 4, Rs1: 1, Rs2: 2},
			{Mnemonic: "HALT", Op: insts.OpHALT},
		}
		arch := newArch()
		p := pipeline.NewMultiFUPipeline(code, arch, config.DefaultEngineConfig())

		Expect(p.Run(10000)).To(BeTrue())

		Expect(arch.Regs.Read(3)).To(Equal(6))
		Expect(arch.Regs.Read(4)).To(Equal(5))
	})

	It("round-trips a STORE through a LOAD from the same address (S4)", func() {
		code := []insts.Instruction{
			{Mnemonic: "MOVC", Op: insts.OpMOVC, Rd: 1, Imm: 77},
			{Mnemonic: "MOVC", Op: insts.OpMOVC, Rd: 2, Imm: 0},
			{Mnemonic: "STORE", Op: insts.OpSTORE, Rs1: 1, Rs2: 2, Imm: 20},
			{Mnemonic: "LOAD", Op: insts.OpLOAD, Rd: 3, Rs1: 2, Imm: 20},
			{Mnemonic: "HALT", Op: insts.OpHALT},
		}
		arch := newArch()
		p := pipeline.NewMultiFUPipeline(code, arch, config.DefaultEngineConfig())

		Expect(p.Run(10000)).To(BeTrue())

		Expect(arch.Mem.Read(20)).To(Equal(77))
		Expect(arch.Regs.Read(3)).To(Equal(77))
	})

	It("stalls a second MUL in decode until the first MUL's destination is valid (S6)", func() {
		code := []insts.Instruction{
			{Mnemonic: "MOVC", Op: insts.OpMOVC, Rd: 1, Imm: 2},
			{Mnemonic: "MOVC", Op: insts.OpMOVC, Rd: 2, Imm: 3},
			{Mnemonic: "MUL", Op: insts.OpMUL, Rd: 3, Rs1: 1, Rs2: 2},
			{Mnemonic: "MUL", Op: insts.OpMUL, Rd: 4, Rs1: 3, Rs2: 1},
			{Mnemonic: "HALT", Op: insts.OpHALT},
		}
		arch := newArch()
		p := pipeline.NewMultiFUPipeline(code, arch, config.DefaultEngineConfig())

		Expect(p.Run(10000)).To(BeTrue())

		Expect(arch.Regs.Read(3)).To(Equal(6))
		Expect(arch.Regs.Read(4)).To(Equal(12))
		Expect(p.Stats().Stalls).To(BeNumerically(">", 0))
	})
})
