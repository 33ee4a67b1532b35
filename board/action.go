package board

//go:generate go tool stringer -type=Action

// Action is a movement or rotation command fed into the board.
type Action uint8

const (
	MoveLeft Action = iota
	MoveRight
	Rotate
	MoveDown
)

// Valid reports whether a is one of the four declared commands.
func (a Action) Valid() bool {
	return a <= MoveDown
}
