// Package loader reads an assembled APEX program — a JSON array of
// instruction records produced by an external assembler — into the form
// the pipeline engines consume.
package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/apex-sim/apexsim/insts"
)

// record is the on-disk shape of one code-memory slot. Unused fields are
// omitted by the assembler and default to zero.
type record struct {
	Mnemonic string `json:"mnemonic"`
	Rd       int    `json:"rd"`
	Rs1      int    `json:"rs1"`
	Rs2      int    `json:"rs2"`
	Rs3      int    `json:"rs3"`
	Imm      int    `json:"imm"`
}

var mnemonicToOp = map[string]insts.Op{
	"ADD": insts.OpADD, "SUB": insts.OpSUB, "MUL": insts.OpMUL, "DIV": insts.OpDIV,
	"AND": insts.OpAND, "OR": insts.OpOR, "XOR": insts.OpXOR, "MOVC": insts.OpMOVC,
	"LOAD": insts.OpLOAD, "STORE": insts.OpSTORE, "LDR": insts.OpLDR, "STR": insts.OpSTR,
	"CMP": insts.OpCMP, "ADDL": insts.OpADDL, "SUBL": insts.OpSUBL,
	"BZ": insts.OpBZ, "BNZ": insts.OpBNZ, "HALT": insts.OpHALT, "NOP": insts.OpNOP,
}

// Program is an assembled APEX program ready for loading into code memory.
type Program struct {
	// Code is the full code-memory image, indexed 0..N-1.
	Code []insts.Instruction
}

// Load reads and decodes the JSON program at path.
func Load(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read program file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a JSON program image already held in memory.
func Parse(data []byte) (*Program, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse program: %w", err)
	}

	code := make([]insts.Instruction, len(records))
	for i, r := range records {
		op, ok := mnemonicToOp[r.Mnemonic]
		if !ok {
			return nil, fmt.Errorf("unknown mnemonic %q at code-memory slot %d", r.Mnemonic, i)
		}
		code[i] = insts.Instruction{
			Mnemonic: r.Mnemonic,
			Op:       op,
			Rd:       r.Rd,
			Rs1:      r.Rs1,
			Rs2:      r.Rs2,
			Rs3:      r.Rs3,
			Imm:      r.Imm,
		}
	}

	return &Program{Code: code}, nil
}

// EndsClean reports whether the program's last instruction is HALT, per the
// external-assembler contract's clean-termination convention.
func (p *Program) EndsClean() bool {
	if len(p.Code) == 0 {
		return false
	}
	return p.Code[len(p.Code)-1].IsHalt()
}
