// Package insts provides APEX instruction definitions.
//
// APEX programs are produced ahead of time by an external assembler (out of
// scope for this module — see the loader package for the thin JSON contract
// it must satisfy); this package only defines the static, already-decoded
// instruction record and the closed opcode enumeration the pipeline
// dispatches on.
//
// Usage:
//
//	inst := insts.Instruction{Op: insts.OpMOVC, Rd: 1, Imm: 5}
//	fmt.Println(inst.Op, inst.FUClass())
package insts
