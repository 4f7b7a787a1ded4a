package vm

// TapeSize is the fixed number of cells on the memory tape.
const TapeSize = 30000

// Tape is a fixed-size array of wrapping 8-bit cells plus a cursor. The
// cursor is always kept in [0, TapeSize) via modular arithmetic, and cell
// arithmetic wraps at 8 bits, so no tape operation can fault.
type Tape struct {
	cells  [TapeSize]uint8
	cursor int
}

// Move advances the cursor by delta, wrapping modularly in both directions.
func (t *Tape) Move(delta int) {
	t.cursor = mod(t.cursor + delta)
}

// Add adds delta to the current cell with 8-bit wraparound.
func (t *Tape) Add(delta int) {
	t.cells[t.cursor] = uint8(int(t.cells[t.cursor]) + delta)
}

// Get returns the value of the current cell.
func (t *Tape) Get() uint8 {
	return t.cells[t.cursor]
}

// Set overwrites the value of the current cell.
func (t *Tape) Set(value uint8) {
	t.cells[t.cursor] = value
}

// Cursor returns the current cursor index.
func (t *Tape) Cursor() int {
	return t.cursor
}

// Cell returns the value of the cell at the given index, which may be
// negative or beyond TapeSize; it is reduced modularly like the cursor.
func (t *Tape) Cell(index int) uint8 {
	return t.cells[mod(index)]
}

// Reset zeroes every cell and returns the cursor to zero.
func (t *Tape) Reset() {
	t.cells = [TapeSize]uint8{}
	t.cursor = 0
}

// Snapshot returns a copy of all cell values.
func (t *Tape) Snapshot() []uint8 {
	snapshot := make([]uint8, TapeSize)
	copy(snapshot, t.cells[:])
	return snapshot
}

// mod reduces an index into [0, TapeSize), handling negative values.
func mod(index int) int {
	index %= TapeSize
	if index < 0 {
		index += TapeSize
	}
	return index
}
