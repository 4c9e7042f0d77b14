package clock

import "time"

// System reads the wall clock in UTC, truncated to whole seconds so that
// deadlines survive a round trip through storage unchanged.
type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
