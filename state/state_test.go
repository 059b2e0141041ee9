package state_test

import (
	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/apex-sim/apexsim/config"
	"github.com/apex-sim/apexsim/state"
)

var _ = Describe("ArchState", func() {
	It("initializes per the reset contract", func() {
		s := state.NewArchState(config.DefaultEngineConfig())

		Expect(s.PC).To(Equal(state.InitialPC))
		Expect(s.Z).To(BeFalse())
		Expect(s.ZPending).To(BeFalse())
		Expect(s.Regs.Size()).To(Equal(16))
		Expect(s.Mem.Size()).To(Equal(4096))
	})

	It("computes code-memory indices from PC", func() {
		Expect(state.CodeIndex(4000)).To(Equal(0))
		Expect(state.CodeIndex(4012)).To(Equal(3))
	})

	It("snapshots independently of later mutation", func() {
		s := state.NewArchState(config.DefaultEngineConfig())
		s.Regs.Commit(1, 5)
		before := s.Regs.Snapshot()

		s.Regs.Commit(1, 9)
		after := s.Regs.Snapshot()

		if diff := cmp.Diff(5, before[1].Value); diff != "" {
			Fail("snapshot mutated after copy (-want +got):\n" + diff)
		}
		Expect(after[1].Value).To(Equal(9))
	})
})
