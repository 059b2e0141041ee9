package loader_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/apex-sim/apexsim/insts"
	"github.com/apex-sim/apexsim/loader"
)

var _ = Describe("Loader", func() {
	var tempDir string

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "apex-loader-test")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		_ = os.RemoveAll(tempDir)
	})

	Describe("Load", func() {
		It("decodes a well-formed program", func() {
			path := filepath.Join(tempDir, "program.json")
			body := `[
				{"mnemonic":"MOVC","rd":1,"imm":5},
				{"mnemonic":"MOVC","rd":2,"imm":7},
				{"mnemonic":"ADD","rd":3,"rs1":1,"rs2":2},
				{"mnemonic":"HALT"}
			]`
			Expect(os.WriteFile(path, []byte(body), 0o644)).To(Succeed())

			prog, err := loader.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Code).To(HaveLen(4))
			Expect(prog.Code[2].Op).To(Equal(insts.OpADD))
			Expect(prog.Code[2].Rs1).To(Equal(1))
			Expect(prog.EndsClean()).To(BeTrue())
		})

		It("rejects an unknown mnemonic", func() {
			path := filepath.Join(tempDir, "bad.json")
			Expect(os.WriteFile(path, []byte(`[{"mnemonic":"FROB"}]`), 0o644)).To(Succeed())

			_, err := loader.Load(path)
			Expect(err).To(HaveOccurred())
		})

		It("reports EndsClean false for a program not ending in HALT", func() {
			path := filepath.Join(tempDir, "noclean.json")
			Expect(os.WriteFile(path, []byte(`[{"mnemonic":"NOP"}]`), 0o644)).To(Succeed())

			prog, err := loader.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(prog.EndsClean()).To(BeFalse())
		})

		It("returns an error for a missing file", func() {
			_, err := loader.Load(filepath.Join(tempDir, "missing.json"))
			Expect(err).To(HaveOccurred())
		})
	})
})
