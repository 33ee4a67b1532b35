package board

//go:generate go tool stringer -type=Cell

// Cell is the content of one grid slot: empty or one of the seven tetromino
// piece identities.
type Cell uint8

const (
	Empty Cell = iota
	// ----
	IBlock
	// -
	// ---
	JBlock
	//   -
	// ---
	LBlock
	// --
	// --
	OBlock
	//  --
	// --
	SBlock
	//  -
	// ---
	TBlock
	// --
	//  --
	ZBlock
)

var pieces = [...]Cell{IBlock, JBlock, LBlock, OBlock, SBlock, TBlock, ZBlock}

// Pieces returns the seven non-empty cell values in declaration order.
func Pieces() []Cell {
	out := make([]Cell, len(pieces))
	copy(out, pieces[:])
	return out
}

// Valid reports whether c is one of the eight declared cell values.
func (c Cell) Valid() bool {
	return c <= ZBlock
}

// Letter returns the single-character name of the cell, '.' for Empty.
func (c Cell) Letter() byte {
	if !c.Valid() {
		return '?'
	}
	return ".IJLOSTZ"[c]
}
