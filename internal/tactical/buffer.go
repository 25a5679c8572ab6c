package tactical

// prependBounded returns a new slice with item in front of list, keeping at
// most limit entries. The input slice is never modified, so snapshots that
// still reference it stay valid.
func prependBounded[T any](list []T, item T, limit int) []T {
	if limit <= 0 {
		return nil
	}
	n := len(list) + 1
	if n > limit {
		n = limit
	}
	out := make([]T, 0, n)
	out = append(out, item)
	return append(out, list[:n-1]...)
}

// SampleRing is a circular buffer of float samples.
type SampleRing struct {
	buf   []float64
	pos   int
	count int
}

// NewSampleRing creates a new circular buffer with the given capacity.
func NewSampleRing(capacity int) *SampleRing {
	if capacity < 1 {
		capacity = 1
	}
	return &SampleRing{
		buf: make([]float64, capacity),
	}
}

// Push adds a value, overwriting the oldest once full.
func (r *SampleRing) Push(val float64) {
	r.buf[r.pos] = val
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Values returns all stored values in chronological order.
func (r *SampleRing) Values() []float64 {
	if r.count == 0 {
		return nil
	}
	result := make([]float64, r.count)
	if r.count < len(r.buf) {
		copy(result, r.buf[:r.count])
	} else {
		n := copy(result, r.buf[r.pos:])
		copy(result[n:], r.buf[:r.pos])
	}
	return result
}
