package usecase

import (
	"context"
	"time"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// registry owns campaign records: creation with sequential identifiers and
// lookups.
type registry struct {
	store port.CampaignStore
	clock port.Clock
}

func (r registry) create(ctx context.Context, creator domain.Address, goal domain.Amount, deadline time.Time) (uint64, error) {
	if creator == domain.ZeroAddress {
		return 0, domain.ErrUnauthorized
	}
	if goal.IsZero() {
		return 0, domain.ErrInvalidGoal
	}
	now := r.clock.Now()
	if !deadline.After(now) {
		return 0, domain.ErrInvalidDeadline
	}
	c := &domain.Campaign{
		Creator:    creator,
		GoalAmount: goal,
		Deadline:   deadline,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := r.store.CreateCampaign(ctx, c); err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (r registry) get(ctx context.Context, id uint64) (domain.Campaign, error) {
	return r.store.GetCampaign(ctx, id)
}

func (r registry) count(ctx context.Context) (uint64, error) {
	return r.store.CampaignCount(ctx)
}
