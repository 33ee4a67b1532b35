package engine

import "github.com/kamstrup/intmap"

// ClearLog counts line clears per row index.
type ClearLog struct {
	rows  *intmap.Map[int, int]
	total int
	steps int
}

// NewClearLog creates an empty log.
func NewClearLog() *ClearLog {
	return &ClearLog{
		rows: intmap.New[int, int](32),
	}
}

// Record adds the rows cleared by one frame. An empty slice is ignored.
func (l *ClearLog) Record(rows []int) {
	if len(rows) == 0 {
		return
	}
	for _, row := range rows {
		n, _ := l.rows.Get(row)
		l.rows.Put(row, n+1)
	}
	l.total += len(rows)
	l.steps++
}

// Count returns how many times row has been cleared.
func (l *ClearLog) Count(row int) int {
	n, _ := l.rows.Get(row)
	return n
}

// Total returns the number of rows cleared across all frames.
func (l *ClearLog) Total() int {
	return l.total
}

// Steps returns the number of frames that cleared at least one row.
func (l *ClearLog) Steps() int {
	return l.steps
}

// DistinctRows returns the number of row indices cleared at least once.
func (l *ClearLog) DistinctRows() int {
	return l.rows.Len()
}

// Histogram returns per-row clear counts for rows [0, height).
func (l *ClearLog) Histogram(height int) []float32 {
	out := make([]float32, height)
	for row := range out {
		out[row] = float32(l.Count(row))
	}
	return out
}

// Reset forgets all recorded clears.
func (l *ClearLog) Reset() {
	l.rows = intmap.New[int, int](32)
	l.total = 0
	l.steps = 0
}
