package port

import "time"

// Clock supplies the logical time used for deadline checks. Production
// wiring uses the system clock; tests substitute a manual one.
type Clock interface {
	Now() time.Time
}
