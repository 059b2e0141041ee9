package state

// Memory is the flat, byte-addressable-by-convention data memory: a
// contiguous array of signed integer words, indexed by the raw offset an
// instruction computes. The simulator does not enforce alignment beyond the
// program's own use of the index.
type Memory struct {
	words []int
}

// NewMemory creates a zero-initialized data memory of the given size.
func NewMemory(size int) *Memory {
	return &Memory{words: make([]int, size)}
}

// Size returns the number of addressable words.
func (m *Memory) Size() int {
	return len(m.words)
}

// Read returns the word at addr.
func (m *Memory) Read(addr int) int {
	return m.words[addr]
}

// Write stores value at addr.
func (m *Memory) Write(addr int, value int) {
	m.words[addr] = value
}

// Snapshot returns a copy of the full memory contents, for display or test
// comparison.
func (m *Memory) Snapshot() []int {
	out := make([]int, len(m.words))
	copy(out, m.words)
	return out
}
