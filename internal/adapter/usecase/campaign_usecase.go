package usecase

import (
	"context"
	"log/slog"
	"math"
	"time"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// maxSeconds is the longest duration representable as a time.Duration.
const maxSeconds = uint64(math.MaxInt64 / int64(time.Second))

// CampaignUseCase is the lifecycle engine. Every public operation enters
// here and runs as one atomic unit over the registry record, the
// contribution ledger and the escrow account of a single campaign.
type CampaignUseCase struct {
	registry   registry
	store      port.CampaignStore
	clock      port.Clock
	transferer port.Transferer
	logger     *slog.Logger
	metrics    *Metrics
}

// NewCampaignUseCase wires the engine to its collaborators. metrics may be
// nil.
func NewCampaignUseCase(
	store port.CampaignStore,
	clock port.Clock,
	transferer port.Transferer,
	logger *slog.Logger,
	metrics *Metrics,
) *CampaignUseCase {
	return &CampaignUseCase{
		registry:   registry{store: store, clock: clock},
		store:      store,
		clock:      clock,
		transferer: transferer,
		logger:     logger,
		metrics:    metrics,
	}
}

// CreateCampaign opens a campaign owned by caller with a deadline
// durationSeconds from now.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, caller domain.Address, goal domain.Amount, durationSeconds uint64) (id uint64, err error) {
	defer func() { u.metrics.observe("create", err) }()

	if durationSeconds == 0 || durationSeconds > maxSeconds {
		return 0, domain.ErrInvalidDeadline
	}
	deadline := u.clock.Now().Add(time.Duration(durationSeconds) * time.Second)
	id, err = u.registry.create(ctx, caller, goal, deadline)
	if err != nil {
		return 0, err
	}
	u.logger.Info("campaign created",
		slog.Uint64("campaign_id", id),
		slog.String("creator", caller.Hex()),
		slog.String("goal", goal.Dec()),
		slog.Time("deadline", deadline),
	)
	return id, nil
}

// Contribute records amount from caller and takes it into custody.
func (u *CampaignUseCase) Contribute(ctx context.Context, caller domain.Address, id uint64, amount domain.Amount) error {
	if amount.IsZero() {
		u.metrics.observe("contribute", domain.ErrZeroAmount)
		return domain.ErrZeroAmount
	}
	return u.mutate(ctx, "contribute", id, func(ctx context.Context, tx port.CampaignTx, now time.Time) error {
		c := tx.Campaign()
		if !c.Open() {
			return domain.ErrCampaignNotActive
		}
		if c.Expired(now) {
			return domain.ErrDeadlinePassed
		}
		if err := (ledger{tx: tx}).credit(ctx, caller, amount); err != nil {
			return err
		}
		if err := u.escrow(tx).deposit(amount); err != nil {
			return err
		}
		return tx.Save(ctx)
	})
}

// WithdrawFunds marks the campaign withdrawn and releases its whole escrow
// balance to the creator. The goal must be met; the deadline need not have
// passed.
func (u *CampaignUseCase) WithdrawFunds(ctx context.Context, caller domain.Address, id uint64) error {
	var amount domain.Amount
	err := u.mutate(ctx, "withdraw", id, func(ctx context.Context, tx port.CampaignTx, _ time.Time) error {
		c := tx.Campaign()
		if caller != c.Creator {
			return domain.ErrUnauthorized
		}
		if c.IsWithdrawn {
			return domain.ErrAlreadyWithdrawn
		}
		if c.IsCanceled {
			return domain.ErrCampaignNotActive
		}
		if !c.IsSuccessful() {
			return domain.ErrGoalNotReached
		}
		c.IsWithdrawn = true
		amount = c.FundsRaised
		return u.escrow(tx).release(ctx, c.Creator, amount, domain.PayoutWithdrawal)
	})
	if err != nil {
		return err
	}
	u.metrics.payout(domain.PayoutWithdrawal)
	u.logger.Info("funds withdrawn",
		slog.Uint64("campaign_id", id),
		slog.String("creator", caller.Hex()),
		slog.String("amount", amount.Dec()),
	)
	return nil
}

// GetRefund returns caller's contribution when the campaign was canceled or
// its deadline passed with the goal unmet. The ledger entry is consumed
// before the value leaves escrow, so a second call finds nothing to refund.
func (u *CampaignUseCase) GetRefund(ctx context.Context, caller domain.Address, id uint64) error {
	var amount domain.Amount
	err := u.mutate(ctx, "refund", id, func(ctx context.Context, tx port.CampaignTx, now time.Time) error {
		if !tx.Campaign().RefundsOpen(now) {
			return domain.ErrNotEligibleForRefund
		}
		var err error
		if amount, err = (ledger{tx: tx}).consume(ctx, caller); err != nil {
			return err
		}
		return u.escrow(tx).release(ctx, caller, amount, domain.PayoutRefund)
	})
	if err != nil {
		return err
	}
	u.metrics.payout(domain.PayoutRefund)
	u.logger.Info("contribution refunded",
		slog.Uint64("campaign_id", id),
		slog.String("backer", caller.Hex()),
		slog.String("amount", amount.Dec()),
	)
	return nil
}

// CancelCampaign ends the campaign and opens refunds to every backer
// regardless of the deadline. It succeeds at most once.
func (u *CampaignUseCase) CancelCampaign(ctx context.Context, caller domain.Address, id uint64) error {
	return u.mutate(ctx, "cancel", id, func(ctx context.Context, tx port.CampaignTx, _ time.Time) error {
		c := tx.Campaign()
		if caller != c.Creator {
			return domain.ErrUnauthorized
		}
		if !c.Open() {
			return domain.ErrCampaignNotActive
		}
		c.IsCanceled = true
		if err := tx.Save(ctx); err != nil {
			return err
		}
		u.logger.Info("campaign canceled", slog.Uint64("campaign_id", c.ID))
		return nil
	})
}

// TransferOwnership hands administrative rights to newOwner.
func (u *CampaignUseCase) TransferOwnership(ctx context.Context, caller domain.Address, id uint64, newOwner domain.Address) error {
	return u.mutate(ctx, "transfer_ownership", id, func(ctx context.Context, tx port.CampaignTx, _ time.Time) error {
		c := tx.Campaign()
		if caller != c.Creator {
			return domain.ErrUnauthorized
		}
		if newOwner == domain.ZeroAddress {
			return domain.ErrInvalidOwner
		}
		if !c.Open() {
			return domain.ErrCampaignNotActive
		}
		previous := c.Creator
		c.Creator = newOwner
		if err := tx.Save(ctx); err != nil {
			return err
		}
		u.logger.Info("ownership transferred",
			slog.Uint64("campaign_id", c.ID),
			slog.String("from", previous.Hex()),
			slog.String("to", newOwner.Hex()),
		)
		return nil
	})
}

// ExtendDeadline moves the deadline extraSeconds forward. A campaign whose
// deadline passed with the goal unmet stays failed: its backers are owed
// refunds and must not be locked out again.
func (u *CampaignUseCase) ExtendDeadline(ctx context.Context, caller domain.Address, id uint64, extraSeconds uint64) error {
	return u.mutate(ctx, "extend_deadline", id, func(ctx context.Context, tx port.CampaignTx, now time.Time) error {
		c := tx.Campaign()
		if caller != c.Creator {
			return domain.ErrUnauthorized
		}
		if extraSeconds == 0 || extraSeconds > maxSeconds {
			return domain.ErrInvalidDeadline
		}
		if !c.Open() || (c.Expired(now) && !c.IsSuccessful()) {
			return domain.ErrCampaignNotActive
		}
		deadline := c.Deadline.Add(time.Duration(extraSeconds) * time.Second)
		if !deadline.After(c.Deadline) {
			return domain.ErrInvalidDeadline
		}
		c.Deadline = deadline
		return tx.Save(ctx)
	})
}

// GetCampaignDetails projects the campaign at the current time.
func (u *CampaignUseCase) GetCampaignDetails(ctx context.Context, id uint64) (domain.Details, error) {
	c, err := u.registry.get(ctx, id)
	if err != nil {
		return domain.Details{}, err
	}
	return c.Details(u.clock.Now()), nil
}

// CampaignCount returns the number of campaigns ever created.
func (u *CampaignUseCase) CampaignCount(ctx context.Context) (uint64, error) {
	return u.registry.count(ctx)
}

// ContributionOf returns backer's recorded contribution, zero when absent.
func (u *CampaignUseCase) ContributionOf(ctx context.Context, id uint64, backer domain.Address) (domain.Amount, error) {
	return u.store.ContributionOf(ctx, id, backer)
}

// ListCampaigns reads every campaign in creation order.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context) ([]domain.Details, error) {
	n, err := u.registry.count(ctx)
	if err != nil {
		return nil, err
	}
	now := u.clock.Now()
	list := make([]domain.Details, 0, n)
	for id := uint64(0); id < n; id++ {
		c, err := u.registry.get(ctx, id)
		if err != nil {
			return nil, err
		}
		list = append(list, c.Details(now))
	}
	return list, nil
}

// mutate runs fn with exclusive access to campaign id. The time is read
// once, after the lock is held, so every guard in fn sees the same now.
func (u *CampaignUseCase) mutate(
	ctx context.Context,
	operation string,
	id uint64,
	fn func(ctx context.Context, tx port.CampaignTx, now time.Time) error,
) (err error) {
	defer func() { u.metrics.observe(operation, err) }()

	if holding(ctx, id) {
		return domain.ErrReentrantCall
	}
	return u.store.InCampaign(withHeld(ctx, id), id, func(ctx context.Context, tx port.CampaignTx) error {
		now := u.clock.Now()
		tx.Campaign().UpdatedAt = now
		return fn(ctx, tx, now)
	})
}

func (u *CampaignUseCase) escrow(tx port.CampaignTx) escrow {
	return escrow{tx: tx, transferer: u.transferer, logger: u.logger}
}
