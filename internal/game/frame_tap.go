package game

import "time"

// frameTap records the last N tick intervals into a ring buffer so the debug
// panel can show how long frames take.
type frameTap struct {
	buffer    []time.Duration
	nextIndex int
	filled    bool
}

func newFrameTap(ringSize int) *frameTap {
	return &frameTap{
		buffer: make([]time.Duration, ringSize),
	}
}

func (t *frameTap) record(d time.Duration) {
	if len(t.buffer) == 0 {
		return
	}
	t.buffer[t.nextIndex] = d
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
		t.filled = true
	}
}

func (t *frameTap) len() int {
	if t.filled {
		return len(t.buffer)
	}
	return t.nextIndex
}

// mean is the average of everything recorded, 0 when empty.
func (t *frameTap) mean() time.Duration {
	n := t.len()
	if n == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range t.buffer[:n] {
		sum += d
	}
	return sum / time.Duration(n)
}
