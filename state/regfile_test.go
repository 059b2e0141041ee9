package state_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/apex-sim/apexsim/state"
)

var _ = Describe("RegFile", func() {
	var regs *state.RegFile

	BeforeEach(func() {
		regs = state.NewRegFile(16)
	})

	It("starts with every register ready and zero", func() {
		for i := 0; i < regs.Size(); i++ {
			Expect(regs.Ready(i)).To(BeTrue())
			Expect(regs.Read(i)).To(Equal(0))
		}
	})

	Describe("Reserve", func() {
		It("marks the register not-ready", func() {
			regs.Reserve(3)
			Expect(regs.Ready(3)).To(BeFalse())
		})

		It("does not affect other registers", func() {
			regs.Reserve(3)
			Expect(regs.Ready(4)).To(BeTrue())
		})
	})

	Describe("Commit", func() {
		It("writes the value and clears the reservation", func() {
			regs.Reserve(5)
			regs.Commit(5, 42)
			Expect(regs.Read(5)).To(Equal(42))
			Expect(regs.Ready(5)).To(BeTrue())
		})
	})

	Describe("Snapshot", func() {
		It("returns an independent copy", func() {
			regs.Commit(0, 7)
			snap := regs.Snapshot()
			regs.Commit(0, 99)
			Expect(snap[0].Value).To(Equal(7))
		})
	})
})
