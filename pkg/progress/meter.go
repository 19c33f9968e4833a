package progress

// Meter schedules periodic checkpoints across an item walk and maps
// completion linearly onto a fixed percent span. It fires roughly once per
// percent of items processed and always on the final item, so the span's
// upper bound is reached exactly once.
type Meter struct {
	total int
	every int
	lo    int
	hi    int
}

// NewMeter returns a meter for total items reporting over [lo, hi].
// The cadence is ceil(total/100) items per checkpoint, at least 1.
func NewMeter(total, lo, hi int) *Meter {
	every := total / 100
	if total%100 != 0 {
		every++
	}
	if every < 1 {
		every = 1
	}
	return &Meter{total: total, every: every, lo: lo, hi: hi}
}

// Due reports whether a checkpoint should fire after the n-th item
// (1-based).
func (m *Meter) Due(n int) bool {
	return n%m.every == 0 || n == m.total
}

// Percent maps n processed items onto [lo, hi], rounding down. Percent is
// non-decreasing in n and Percent(total) == hi.
func (m *Meter) Percent(n int) int {
	if m.total == 0 {
		return m.lo
	}
	return m.lo + int(float64(n)/float64(m.total)*float64(m.hi-m.lo))
}
