package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// escrow is the custodial balance of one campaign. It is the only
// component that moves value: deposits on contribution, releases on
// withdrawal and refund.
type escrow struct {
	tx         port.CampaignTx
	transferer port.Transferer
	logger     *slog.Logger
}

func (e escrow) deposit(amount domain.Amount) error {
	c := e.tx.Campaign()
	balance, err := domain.AddAmounts(c.EscrowBalance, amount)
	if err != nil {
		return err
	}
	c.EscrowBalance = balance
	return nil
}

// release debits amount, commits all bookkeeping of the current operation
// and only then transfers the value. The transfer is the last step, so a
// recipient observing the campaign sees the committed state.
func (e escrow) release(ctx context.Context, recipient domain.Address, amount domain.Amount, kind domain.PayoutKind) error {
	c := e.tx.Campaign()
	if c.EscrowBalance.Lt(&amount) {
		e.logger.Error("escrow invariant breach",
			slog.Uint64("campaign_id", c.ID),
			slog.String("balance", c.EscrowBalance.Dec()),
			slog.String("amount", amount.Dec()),
			slog.String("kind", string(kind)),
		)
		return fmt.Errorf("%w: campaign %d", domain.ErrInsufficientEscrow, c.ID)
	}
	balance, err := domain.SubAmounts(c.EscrowBalance, amount)
	if err != nil {
		return err
	}
	c.EscrowBalance = balance
	if err = e.tx.Save(ctx); err != nil {
		return err
	}

	payout := domain.Payout{
		ID:         uuid.New(),
		CampaignID: c.ID,
		Recipient:  recipient,
		Amount:     amount,
		Kind:       kind,
		CreatedAt:  c.UpdatedAt,
	}
	if err = e.transferer.Transfer(ctx, payout); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrTransferFailed, err)
	}
	return nil
}
