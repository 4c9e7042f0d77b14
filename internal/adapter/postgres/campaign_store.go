package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txKey struct{}

// txFromContext returns the transaction opened by InCampaign, if any, so
// that other repositories can join it.
func txFromContext(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	return tx, ok
}

// CampaignStore implements port.CampaignStore using pgxpool for PostgreSQL.
// Amounts are NUMERIC(78,0) columns exchanged as decimal text.
type CampaignStore struct {
	pool *pgxpool.Pool
}

// NewCampaignStore returns a new store instance.
func NewCampaignStore(pool *pgxpool.Pool) *CampaignStore {
	return &CampaignStore{pool: pool}
}

const selectCampaign = `
	SELECT id, creator, goal_amount::text, deadline, funds_raised::text, escrow_balance::text,
	       is_withdrawn, is_canceled, created_at, updated_at
	FROM campaigns
	WHERE id = $1`

// CreateCampaign takes the next identifier from the counter row and inserts
// the campaign in the same transaction. The counter row lock serializes
// concurrent creators; a rolled back insert gives its identifier back.
func (s *CampaignStore) CreateCampaign(ctx context.Context, c *domain.Campaign) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var id int64
	err = tx.QueryRow(ctx, `UPDATE campaign_counter SET next_id = next_id + 1 RETURNING next_id - 1`).Scan(&id)
	if err != nil {
		return fmt.Errorf("allocate campaign id: %w", err)
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO campaigns
		(id, creator, goal_amount, deadline, funds_raised, escrow_balance, is_withdrawn, is_canceled, created_at, updated_at)
		VALUES ($1, $2, $3::text::numeric, $4, $5::text::numeric, $6::text::numeric, $7, $8, $9, $10)`,
		id, c.Creator.Hex(), c.GoalAmount.Dec(), c.Deadline, c.FundsRaised.Dec(), c.EscrowBalance.Dec(),
		c.IsWithdrawn, c.IsCanceled, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	c.ID = uint64(id)
	return nil
}

// GetCampaign returns a campaign by id.
func (s *CampaignStore) GetCampaign(ctx context.Context, id uint64) (domain.Campaign, error) {
	return scanCampaign(s.pool.QueryRow(ctx, selectCampaign, int64(id)))
}

// CampaignCount returns the number of identifiers handed out.
func (s *CampaignStore) CampaignCount(ctx context.Context) (uint64, error) {
	var n int64
	if err := s.pool.QueryRow(ctx, `SELECT next_id FROM campaign_counter`).Scan(&n); err != nil {
		return 0, err
	}
	return uint64(n), nil
}

// ContributionOf returns the contribution of backer, zero when absent.
func (s *CampaignStore) ContributionOf(ctx context.Context, id uint64, backer domain.Address) (domain.Amount, error) {
	var (
		exists bool
		raw    *string
	)
	err := s.pool.QueryRow(ctx, `
		SELECT true, (SELECT amount::text FROM contributions WHERE campaign_id = c.id AND backer = $2)
		FROM campaigns c
		WHERE c.id = $1`, int64(id), backer.Hex()).Scan(&exists, &raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Amount{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Amount{}, err
	}
	if raw == nil {
		return domain.Amount{}, nil
	}
	return parseAmount(*raw)
}

// InCampaign locks the campaign row for the duration of fn. The transaction
// commits iff fn returns nil. Every row fn touches belongs to the locked
// campaign, so read committed suffices and waiters see the latest version
// instead of failing with a serialization error.
func (s *CampaignStore) InCampaign(ctx context.Context, id uint64, fn func(ctx context.Context, tx port.CampaignTx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	// lock campaign
	c, err := scanCampaign(tx.QueryRow(ctx, selectCampaign+` FOR UPDATE`, int64(id)))
	if err != nil {
		return err
	}
	err = fn(context.WithValue(ctx, txKey{}, tx), &campaignTx{tx: tx, working: c})
	return err
}

type campaignTx struct {
	tx      pgx.Tx
	working domain.Campaign
}

func (t *campaignTx) Campaign() *domain.Campaign {
	return &t.working
}

func (t *campaignTx) Save(ctx context.Context) error {
	c := &t.working
	_, err := t.tx.Exec(ctx, `
		UPDATE campaigns SET
			creator = $2,
			deadline = $3,
			funds_raised = $4::text::numeric,
			escrow_balance = $5::text::numeric,
			is_withdrawn = $6,
			is_canceled = $7,
			updated_at = $8
		WHERE id = $1`,
		int64(c.ID), c.Creator.Hex(), c.Deadline, c.FundsRaised.Dec(), c.EscrowBalance.Dec(),
		c.IsWithdrawn, c.IsCanceled, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update campaign %d: %w", c.ID, err)
	}
	return nil
}

func (t *campaignTx) Contribution(ctx context.Context, backer domain.Address) (domain.Amount, error) {
	var raw string
	err := t.tx.QueryRow(ctx, `SELECT amount::text FROM contributions WHERE campaign_id = $1 AND backer = $2`,
		int64(t.working.ID), backer.Hex()).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Amount{}, nil
	}
	if err != nil {
		return domain.Amount{}, err
	}
	return parseAmount(raw)
}

func (t *campaignTx) SetContribution(ctx context.Context, backer domain.Address, amount domain.Amount) error {
	var err error
	if amount.IsZero() {
		_, err = t.tx.Exec(ctx, `DELETE FROM contributions WHERE campaign_id = $1 AND backer = $2`,
			int64(t.working.ID), backer.Hex())
	} else {
		_, err = t.tx.Exec(ctx, `
			INSERT INTO contributions (campaign_id, backer, amount) VALUES ($1, $2, $3::text::numeric)
			ON CONFLICT (campaign_id, backer) DO UPDATE SET amount = excluded.amount`,
			int64(t.working.ID), backer.Hex(), amount.Dec())
	}
	if err != nil {
		return fmt.Errorf("set contribution: %w", err)
	}
	return nil
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c                          domain.Campaign
		id                         int64
		creator, goal, raised, esc string
	)
	err := row.Scan(&id, &creator, &goal, &c.Deadline, &raised, &esc, &c.IsWithdrawn, &c.IsCanceled, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Campaign{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Campaign{}, err
	}
	c.ID = uint64(id)
	if c.Creator, err = domain.ParseAddress(creator); err != nil {
		return domain.Campaign{}, fmt.Errorf("campaign %d creator %q: %w", id, creator, err)
	}
	if c.GoalAmount, err = parseAmount(goal); err != nil {
		return domain.Campaign{}, err
	}
	if c.FundsRaised, err = parseAmount(raised); err != nil {
		return domain.Campaign{}, err
	}
	if c.EscrowBalance, err = parseAmount(esc); err != nil {
		return domain.Campaign{}, err
	}
	c.Deadline = c.Deadline.UTC()
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c, nil
}

func parseAmount(raw string) (domain.Amount, error) {
	a, err := domain.ParseAmount(raw)
	if err != nil {
		return domain.Amount{}, fmt.Errorf("stored amount %q: %w", raw, err)
	}
	return a, nil
}
