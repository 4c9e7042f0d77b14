package usecase

import (
	"context"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// ledger is the per-campaign backer -> amount mapping. It keeps
// FundsRaised equal to the sum of its entries.
type ledger struct {
	tx port.CampaignTx
}

// credit accumulates amount for backer. Nothing is written when either sum
// overflows.
func (l ledger) credit(ctx context.Context, backer domain.Address, amount domain.Amount) error {
	c := l.tx.Campaign()
	current, err := l.tx.Contribution(ctx, backer)
	if err != nil {
		return err
	}
	entry, err := domain.AddAmounts(current, amount)
	if err != nil {
		return err
	}
	raised, err := domain.AddAmounts(c.FundsRaised, amount)
	if err != nil {
		return err
	}
	if err = l.tx.SetContribution(ctx, backer, entry); err != nil {
		return err
	}
	c.FundsRaised = raised
	return nil
}

// consume zeroes backer's entry and returns what it held.
func (l ledger) consume(ctx context.Context, backer domain.Address) (domain.Amount, error) {
	c := l.tx.Campaign()
	amount, err := l.tx.Contribution(ctx, backer)
	if err != nil {
		return domain.Amount{}, err
	}
	if amount.IsZero() {
		return domain.Amount{}, domain.ErrNotEligibleForRefund
	}
	raised, err := domain.SubAmounts(c.FundsRaised, amount)
	if err != nil {
		return domain.Amount{}, err
	}
	if err = l.tx.SetContribution(ctx, backer, domain.Amount{}); err != nil {
		return domain.Amount{}, err
	}
	c.FundsRaised = raised
	return amount, nil
}
