package domain

import "time"

// State classifies a campaign. Only IsWithdrawn and IsCanceled are stored;
// the other states are derived from the funds raised and the deadline.
type State string

const (
	StateActive     State = "active"
	StateSuccessful State = "successful"
	StateFailed     State = "failed"
	StateCanceled   State = "canceled"
	StateWithdrawn  State = "withdrawn"
)

// Campaign is a single fundraising effort. Amounts are stored in the
// smallest currency unit.
type Campaign struct {
	ID            uint64
	Creator       Address
	GoalAmount    Amount
	Deadline      time.Time
	FundsRaised   Amount // sum of all ledger entries
	EscrowBalance Amount // custodial balance; zero once withdrawn
	IsWithdrawn   bool
	IsCanceled    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsSuccessful reports whether the goal has been reached.
func (c *Campaign) IsSuccessful() bool {
	return !c.FundsRaised.Lt(&c.GoalAmount)
}

// Expired reports whether now is at or past the deadline.
func (c *Campaign) Expired(now time.Time) bool {
	return !now.Before(c.Deadline)
}

// Open reports whether the campaign has reached neither terminal marker.
func (c *Campaign) Open() bool {
	return !c.IsWithdrawn && !c.IsCanceled
}

// RefundsOpen reports whether backers may reclaim their contributions:
// after cancellation, or once the deadline passed with the goal unmet.
func (c *Campaign) RefundsOpen(now time.Time) bool {
	if c.IsWithdrawn {
		return false
	}
	if c.IsCanceled {
		return true
	}
	return c.Expired(now) && !c.IsSuccessful()
}

// State derives the classification at now.
func (c *Campaign) State(now time.Time) State {
	switch {
	case c.IsWithdrawn:
		return StateWithdrawn
	case c.IsCanceled:
		return StateCanceled
	case c.IsSuccessful():
		return StateSuccessful
	case c.Expired(now):
		return StateFailed
	default:
		return StateActive
	}
}

// Details is the read-only projection returned to callers.
type Details struct {
	ID           uint64
	Creator      Address
	GoalAmount   Amount
	Deadline     time.Time
	FundsRaised  Amount
	IsSuccessful bool
	IsWithdrawn  bool
	IsCanceled   bool
	State        State
}

// Details projects c as observed at now.
func (c *Campaign) Details(now time.Time) Details {
	return Details{
		ID:           c.ID,
		Creator:      c.Creator,
		GoalAmount:   c.GoalAmount,
		Deadline:     c.Deadline,
		FundsRaised:  c.FundsRaised,
		IsSuccessful: c.IsSuccessful(),
		IsWithdrawn:  c.IsWithdrawn,
		IsCanceled:   c.IsCanceled,
		State:        c.State(now),
	}
}
