package engine_test

import (
	"testing"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
)

// TickCounter counts the ticks queued by earlier systems in the same frame.
type TickCounter struct {
	Ticks   int
	Actions int
}

func (s *TickCounter) Execute(frame *engine.UpdateFrame) {
	actions, ticks := frame.Commands.Pending()
	s.Ticks += ticks
	s.Actions += actions
}

func TestTickSystemInterval(t *testing.T) {
	tests := []struct {
		name     string
		interval float64
		deltas   []float64
		want     int
	}{
		{"every frame", 0, []float64{0.1, 0.1, 0.1}, 3},
		{"half second", 0.5, []float64{0.25, 0.25, 0.25, 0.25}, 2},
		{"catch up on long frame", 0.25, []float64{1.0}, 4},
		{"below interval", 1, []float64{0.5, 0.25}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scheduler := engine.NewScheduler(board.New(2, 2))
			counter := &TickCounter{}
			scheduler.Register(&engine.TickSystem{Interval: tt.interval})
			scheduler.Register(counter)

			for _, dt := range tt.deltas {
				scheduler.Once(dt)
			}

			assert.Equal(t, tt.want, counter.Ticks)
		})
	}
}

func TestTickSystemPaused(t *testing.T) {
	scheduler := engine.NewScheduler(board.New(2, 2))
	counter := &TickCounter{}
	ticks := &engine.TickSystem{Paused: true}
	scheduler.Register(ticks)
	scheduler.Register(counter)

	scheduler.Once(1)
	assert.Equal(t, 0, counter.Ticks)

	ticks.Paused = false
	scheduler.Once(1)
	assert.Equal(t, 1, counter.Ticks)
}

func TestActionQueue(t *testing.T) {
	cells := []board.Cell{
		board.TBlock, board.Empty,
		board.JBlock, board.LBlock,
	}
	b := board.FromCells(2, 2, cells)
	scheduler := engine.NewScheduler(b)

	queue := &engine.ActionQueue{}
	counter := &TickCounter{}
	scheduler.Register(queue)
	scheduler.Register(counter)

	queue.Push(board.MoveLeft)
	queue.Push(board.Rotate)
	queue.Push(board.MoveDown)
	assert.Equal(t, 3, queue.Len())

	scheduler.Once(1.0 / 60.0)

	assert.Equal(t, 3, counter.Actions)
	assert.Equal(t, 0, queue.Len())
	assert.Equal(t, cells, b.Cells())

	scheduler.Once(1.0 / 60.0)
	assert.Equal(t, 3, counter.Actions)
}
