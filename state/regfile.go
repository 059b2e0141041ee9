// Package state provides the APEX architectural state: the scoreboarded
// register file, the zero flag and its pending bit, data memory, and the
// program counter.
package state

// Register is a single general-purpose register entry.
//
// Reserved tracks the scoreboard bit the spec calls valid_flag, with the
// polarity spelled out directly: Reserved == false means Value is current
// and readable; Reserved == true means a producer is in flight and Value is
// stale. At most one in-flight producer may hold a register reserved at any
// time.
type Register struct {
	Value    int
	Reserved bool
}

// RegFile is the fixed-size APEX register file.
type RegFile struct {
	regs []Register
}

// NewRegFile creates a register file with the given number of entries, all
// initialized to value=0, unreserved.
func NewRegFile(size int) *RegFile {
	return &RegFile{regs: make([]Register, size)}
}

// Size returns the number of registers.
func (r *RegFile) Size() int {
	return len(r.regs)
}

// Ready reports whether reg can be read by a newly decoding instruction
// (i.e. it is not reserved by an in-flight producer).
func (r *RegFile) Ready(reg int) bool {
	return !r.regs[reg].Reserved
}

// Read returns the current value of reg.
func (r *RegFile) Read(reg int) int {
	return r.regs[reg].Value
}

// Reserve marks reg as having an in-flight producer. Called by decode when
// it issues an instruction that writes reg.
func (r *RegFile) Reserve(reg int) {
	r.regs[reg].Reserved = true
}

// Commit writes value to reg and clears its reservation. Called by
// writeback.
func (r *RegFile) Commit(reg int, value int) {
	r.regs[reg].Value = value
	r.regs[reg].Reserved = false
}

// Snapshot returns a copy of all register entries, in register order, for
// display or test comparison.
func (r *RegFile) Snapshot() []Register {
	out := make([]Register, len(r.regs))
	copy(out, r.regs)
	return out
}
