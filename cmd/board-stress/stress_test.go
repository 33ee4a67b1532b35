package main

import (
	"bytes"
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 5 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 5*time.Millisecond, s.Max)
	assert.Equal(t, 3*time.Millisecond, s.Avg)
	assert.Equal(t, 9*time.Millisecond, s.Total)

	empty := Stats{}
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration:      time.Second,
		Width:         10,
		Height:        25,
		Density:       0.5,
		Drops:         3,
		Seed:          42,
		TotalUpdates:  8,
		LinesCleared:  2,
		ClearingSteps: 1,
	}

	var buf bytes.Buffer
	assert.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# Board Stress Test Report")
	assert.Contains(t, out, "**Board:** 10 x 25")
	assert.Contains(t, out, "**Initial Density:** 0.50")
	assert.Contains(t, out, "**Lines Cleared:** 2 (1 clearing frames, 0.250 per frame)")
	assert.NotContains(t, out, "GC Pause Durations")
}

func TestFillRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	full := board.New(4, 4)
	fillRandom(full, 1.0, r)
	for row := 0; row < 4; row++ {
		assert.True(t, full.IsRowFull(row))
	}

	empty := board.New(4, 4)
	fillRandom(empty, 0, r)
	assert.Equal(t, make([]board.Cell, 16), empty.Cells())
}

func TestRunClearsLines(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	b := board.New(3, 4)
	fillRandom(b, 1.0, r)

	scheduler := engine.NewScheduler(b)
	scheduler.Register(&RandomFillSystem{Drops: 2, Rand: r})
	scheduler.Register(&engine.TickSystem{})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	var samples Stats
	updates := run(ctx, scheduler, &samples)

	assert.Positive(t, updates)
	assert.Len(t, samples.Samples, int(updates))
	// the first frame clears the whole pre-filled board
	assert.GreaterOrEqual(t, scheduler.ClearLog().Total(), 4)
}
