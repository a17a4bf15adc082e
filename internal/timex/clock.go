package timex

import "time"

// Clock is the source of wall-clock time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// NextStamp returns the logical timestamp (Unix nanoseconds) following last:
// the wall-clock reading, but never smaller than last.
func NextStamp(now time.Time, last int64) int64 {
	ns := now.UnixNano()
	if ns < last {
		return last
	}
	return ns
}

// LogicalClock hands out non-decreasing Unix-nanosecond stamps.
// It is not safe for concurrent use; the owner serializes calls.
type LogicalClock struct {
	clock Clock
	last  int64
}

func NewLogicalClock(c Clock) *LogicalClock {
	if c == nil {
		c = SystemClock{}
	}
	return &LogicalClock{clock: c}
}

// Tick returns the next stamp and remembers it.
func (c *LogicalClock) Tick() int64 {
	c.last = NextStamp(c.clock.Now(), c.last)
	return c.last
}
