package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund/internal/core/domain"
)

// PayoutOutbox implements port.Transferer by recording payouts in the
// payouts table. Inside InCampaign it joins the campaign transaction, so a
// payout exists exactly when the bookkeeping that produced it commits.
// Settling recorded payouts on the external network is left to a separate
// sender reading this table.
type PayoutOutbox struct {
	pool *pgxpool.Pool
}

// NewPayoutOutbox returns an outbox writing through pool when no campaign
// transaction is in progress.
func NewPayoutOutbox(pool *pgxpool.Pool) *PayoutOutbox {
	return &PayoutOutbox{pool: pool}
}

func (o *PayoutOutbox) Transfer(ctx context.Context, p domain.Payout) error {
	var q querier = o.pool
	if tx, ok := txFromContext(ctx); ok {
		q = tx
	}
	_, err := q.Exec(ctx, `
		INSERT INTO payouts (id, campaign_id, recipient, amount, kind, created_at)
		VALUES ($1, $2, $3, $4::text::numeric, $5, $6)`,
		p.ID, int64(p.CampaignID), p.Recipient.Hex(), p.Amount.Dec(), string(p.Kind), p.CreatedAt)
	if err != nil {
		return fmt.Errorf("record payout %s: %w", p.ID, err)
	}
	return nil
}

// Payouts returns the payouts recorded for a campaign in creation order.
func (o *PayoutOutbox) Payouts(ctx context.Context, campaignID uint64) ([]domain.Payout, error) {
	rows, err := o.pool.Query(ctx, `
		SELECT id, campaign_id, recipient, amount::text, kind, created_at
		FROM payouts
		WHERE campaign_id = $1
		ORDER BY created_at, id`, int64(campaignID))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Payout, error) {
		var (
			p                 domain.Payout
			id                uuid.UUID
			cid               int64
			recipient, amount string
			kind              string
		)
		err := row.Scan(&id, &cid, &recipient, &amount, &kind, &p.CreatedAt)
		if err != nil {
			return p, err
		}
		p.ID = id
		p.CampaignID = uint64(cid)
		p.Kind = domain.PayoutKind(kind)
		p.CreatedAt = p.CreatedAt.UTC()
		if p.Recipient, err = domain.ParseAddress(recipient); err != nil {
			return p, err
		}
		if p.Amount, err = parseAmount(amount); err != nil {
			return p, err
		}
		return p, nil
	})
}
