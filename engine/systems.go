package engine

import "github.com/plus3/blockfall/board"

// TickSystem queues one consolidation step every Interval seconds of frame
// time. A non-positive Interval ticks on every frame.
type TickSystem struct {
	Interval float64
	Paused   bool

	elapsed float64
}

func (s *TickSystem) Execute(frame *UpdateFrame) {
	if s.Paused {
		return
	}
	if s.Interval <= 0 {
		frame.Commands.Tick()
		return
	}

	s.elapsed += frame.DeltaTime
	for s.elapsed >= s.Interval {
		s.elapsed -= s.Interval
		frame.Commands.Tick()
	}
}

// ActionQueue collects commands from an input source between frames and
// hands them to the frame's command buffer in arrival order.
type ActionQueue struct {
	pending []board.Action
}

// Push adds a command for the next frame.
func (q *ActionQueue) Push(a board.Action) {
	q.pending = append(q.pending, a)
}

// Len returns the number of commands waiting for the next frame.
func (q *ActionQueue) Len() int {
	return len(q.pending)
}

func (q *ActionQueue) Execute(frame *UpdateFrame) {
	for _, a := range q.pending {
		frame.Commands.Act(a)
	}
	q.pending = q.pending[:0]
}
