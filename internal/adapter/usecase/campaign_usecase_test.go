package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/adapter/payout"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
	"crowdfund/internal/core/port/mocks"
	"crowdfund/internal/testutil"
)

var (
	start = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	creator  = addr(0xc1)
	alice    = addr(0xa1)
	bob      = addr(0xb0)
	newOwner = addr(0xee)
)

func addr(b byte) domain.Address {
	var a domain.Address
	a[19] = b
	return a
}

func amt(v uint64) domain.Amount {
	return domain.NewAmount(v)
}

type fixture struct {
	svc     *CampaignUseCase
	store   *memory.CampaignStore
	book    *payout.Book
	clock   *testutil.ManualClock
	metrics *Metrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWith(t, nil)
}

// newFixtureWith wires the engine to transferer, or to an in-memory payout
// book when transferer is nil.
func newFixtureWith(t *testing.T, transferer port.Transferer) *fixture {
	t.Helper()
	f := &fixture{
		store:   memory.NewCampaignStore(),
		book:    payout.NewBook(),
		clock:   testutil.NewManualClock(start),
		metrics: &Metrics{},
	}
	f.metrics.Register(prometheus.NewRegistry())
	if transferer == nil {
		transferer = f.book
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.svc = NewCampaignUseCase(f.store, f.clock, transferer, logger, f.metrics)
	return f
}

func (f *fixture) create(t *testing.T, goal uint64, duration time.Duration) uint64 {
	t.Helper()
	id, err := f.svc.CreateCampaign(context.Background(), creator, amt(goal), uint64(duration/time.Second))
	require.NoError(t, err)
	return id
}

func (f *fixture) contribute(t *testing.T, backer domain.Address, id uint64, amount uint64) {
	t.Helper()
	require.NoError(t, f.svc.Contribute(context.Background(), backer, id, amt(amount)))
}

func (f *fixture) details(t *testing.T, id uint64) domain.Details {
	t.Helper()
	d, err := f.svc.GetCampaignDetails(context.Background(), id)
	require.NoError(t, err)
	return d
}

// requireLedgerConsistent checks fundsRaised == sum(contributions) over
// every backer that ever touched the campaign, and that the escrow still
// holds everything raised unless it was withdrawn.
func (f *fixture) requireLedgerConsistent(t *testing.T, id uint64, backers ...domain.Address) {
	t.Helper()
	ctx := context.Background()
	var sum domain.Amount
	for _, b := range backers {
		c, err := f.svc.ContributionOf(ctx, id, b)
		require.NoError(t, err)
		sum, err = domain.AddAmounts(sum, c)
		require.NoError(t, err)
	}
	c, err := f.store.GetCampaign(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, sum.Dec(), c.FundsRaised.Dec(), "funds raised must equal the ledger sum")
	if c.IsWithdrawn {
		assert.True(t, c.EscrowBalance.IsZero(), "withdrawn campaign must hold no escrow")
	} else {
		assert.Equal(t, c.FundsRaised.Dec(), c.EscrowBalance.Dec(), "escrow must hold everything raised")
	}
}

func TestCreateCampaign(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id := f.create(t, 100, time.Hour)
	assert.Equal(t, uint64(0), id)

	d := f.details(t, id)
	assert.Equal(t, creator, d.Creator)
	assert.Equal(t, "100", d.GoalAmount.Dec())
	assert.True(t, d.FundsRaised.IsZero())
	assert.Equal(t, start.Add(time.Hour), d.Deadline)
	assert.False(t, d.IsSuccessful)
	assert.False(t, d.IsWithdrawn)
	assert.False(t, d.IsCanceled)
	assert.Equal(t, domain.StateActive, d.State)

	second := f.create(t, 5, time.Minute)
	assert.Equal(t, uint64(1), second)

	n, err := f.svc.CampaignCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), n)
}

func TestCreateCampaign_Rejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		caller   domain.Address
		goal     uint64
		duration uint64
		want     error
	}{
		{"zero goal", creator, 0, 60, domain.ErrInvalidGoal},
		{"zero duration", creator, 100, 0, domain.ErrInvalidDeadline},
		{"duration overflow", creator, 100, maxSeconds + 1, domain.ErrInvalidDeadline},
		{"zero caller", domain.ZeroAddress, 100, 60, domain.ErrUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.CreateCampaign(ctx, tc.caller, amt(tc.goal), tc.duration)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	n, err := f.svc.CampaignCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

// TestConcurrentCreateAssignsUniqueIDs ensures identifiers stay dense and unique under concurrent creation.
func TestConcurrentCreateAssignsUniqueIDs(t *testing.T) {
	f := newFixture(t)

	const count = 64
	ids := make(chan uint64, count)
	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := f.svc.CreateCampaign(context.Background(), creator, amt(1), 60)
			assert.NoError(t, err)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		assert.Less(t, id, uint64(count))
		seen[id] = true
	}
	assert.Len(t, seen, count)
}

func TestContribute(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.create(t, 80, time.Hour)

	f.contribute(t, alice, id, 50)

	d := f.details(t, id)
	assert.Equal(t, "80", d.GoalAmount.Dec())
	assert.Equal(t, "50", d.FundsRaised.Dec())
	assert.False(t, d.IsSuccessful)

	// re-contribution accumulates
	f.contribute(t, alice, id, 10)
	c, err := f.svc.ContributionOf(ctx, id, alice)
	require.NoError(t, err)
	assert.Equal(t, "60", c.Dec())

	// over-funding is allowed
	f.contribute(t, bob, id, 100)
	d = f.details(t, id)
	assert.Equal(t, "160", d.FundsRaised.Dec())
	assert.True(t, d.IsSuccessful)
	assert.Equal(t, domain.StateSuccessful, d.State)

	none, err := f.svc.ContributionOf(ctx, id, newOwner)
	require.NoError(t, err)
	assert.True(t, none.IsZero())

	f.requireLedgerConsistent(t, id, alice, bob)
}

func TestContribute_Rejected(t *testing.T) {
	ctx := context.Background()

	t.Run("zero amount", func(t *testing.T) {
		f := newFixture(t)
		id := f.create(t, 80, time.Hour)
		assert.ErrorIs(t, f.svc.Contribute(ctx, alice, id, amt(0)), domain.ErrZeroAmount)
	})

	t.Run("unknown campaign", func(t *testing.T) {
		f := newFixture(t)
		assert.ErrorIs(t, f.svc.Contribute(ctx, alice, 7, amt(1)), domain.ErrNotFound)
	})

	t.Run("deadline passed", func(t *testing.T) {
		f := newFixture(t)
		id := f.create(t, 80, time.Hour)
		f.clock.Set(start.Add(time.Hour))
		assert.ErrorIs(t, f.svc.Contribute(ctx, alice, id, amt(1)), domain.ErrDeadlinePassed)
	})

	t.Run("canceled", func(t *testing.T) {
		f := newFixture(t)
		id := f.create(t, 80, time.Hour)
		require.NoError(t, f.svc.CancelCampaign(ctx, creator, id))

		d := f.details(t, id)
		assert.True(t, d.IsCanceled)
		assert.ErrorIs(t, f.svc.Contribute(ctx, alice, id, amt(1)), domain.ErrCampaignNotActive)
	})

	t.Run("withdrawn", func(t *testing.T) {
		f := newFixture(t)
		id := f.create(t, 10, time.Hour)
		f.contribute(t, alice, id, 10)
		require.NoError(t, f.svc.WithdrawFunds(ctx, creator, id))
		assert.ErrorIs(t, f.svc.Contribute(ctx, alice, id, amt(1)), domain.ErrCampaignNotActive)
	})
}

// TestContribute_OverflowLeavesStateUnchanged ensures an overflowing contribution writes nothing.
func TestContribute_OverflowLeavesStateUnchanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.create(t, 1, time.Hour)

	var ceiling domain.Amount
	ceiling.SetAllOne()
	require.NoError(t, f.svc.Contribute(ctx, alice, id, ceiling))

	err := f.svc.Contribute(ctx, bob, id, amt(1))
	assert.ErrorIs(t, err, domain.ErrAmountOverflow)

	c, err := f.svc.ContributionOf(ctx, id, bob)
	require.NoError(t, err)
	assert.True(t, c.IsZero())
	assert.Equal(t, ceiling.Dec(), domain.FormatAmount(f.details(t, id).FundsRaised))
	f.requireLedgerConsistent(t, id, alice, bob)
}

func TestWithdrawFunds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.create(t, 100, time.Hour)
	f.contribute(t, alice, id, 60)
	f.contribute(t, bob, id, 40)

	// goal met before the deadline: no need to wait
	require.NoError(t, f.svc.WithdrawFunds(ctx, creator, id))

	d := f.details(t, id)
	assert.True(t, d.IsWithdrawn)
	assert.Equal(t, domain.StateWithdrawn, d.State)
	assert.Equal(t, "100", domain.FormatAmount(f.book.BalanceOf(creator)))

	payouts := f.book.Payouts()
	require.Len(t, payouts, 1)
	assert.Equal(t, domain.PayoutWithdrawal, payouts[0].Kind)
	assert.Equal(t, id, payouts[0].CampaignID)
	assert.Equal(t, creator, payouts[0].Recipient)

	assert.ErrorIs(t, f.svc.WithdrawFunds(ctx, creator, id), domain.ErrAlreadyWithdrawn)
	assert.Equal(t, "100", domain.FormatAmount(f.book.BalanceOf(creator)))
	assert.Len(t, f.book.Payouts(), 1)

	f.requireLedgerConsistent(t, id, alice, bob)
}

func TestWithdrawFunds_AfterDeadline(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, 100, time.Hour)
	f.contribute(t, alice, id, 100)
	f.clock.Advance(2 * time.Hour)

	require.NoError(t, f.svc.WithdrawFunds(context.Background(), creator, id))
	assert.Equal(t, "100", domain.FormatAmount(f.book.BalanceOf(creator)))
}

func TestWithdrawFunds_Rejected(t *testing.T) {
	ctx := context.Background()

	t.Run("not creator", func(t *testing.T) {
		f := newFixture(t)
		id := f.create(t, 100, time.Hour)
		f.contribute(t, alice, id, 100)
		assert.ErrorIs(t, f.svc.WithdrawFunds(ctx, alice, id), domain.ErrUnauthorized)
	})

	t.Run("goal not reached", func(t *testing.T) {
		f := newFixture(t)
		id := f.create(t, 100, time.Hour)
		f.contribute(t, alice, id, 99)
		assert.ErrorIs(t, f.svc.WithdrawFunds(ctx, creator, id), domain.ErrGoalNotReached)

		f.clock.Advance(time.Hour)
		assert.ErrorIs(t, f.svc.WithdrawFunds(ctx, creator, id), domain.ErrGoalNotReached)
	})

	t.Run("canceled", func(t *testing.T) {
		f := newFixture(t)
		id := f.create(t, 100, time.Hour)
		f.contribute(t, alice, id, 100)
		require.NoError(t, f.svc.CancelCampaign(ctx, creator, id))
		assert.ErrorIs(t, f.svc.WithdrawFunds(ctx, creator, id), domain.ErrCampaignNotActive)
	})

	t.Run("unknown campaign", func(t *testing.T) {
		f := newFixture(t)
		assert.ErrorIs(t, f.svc.WithdrawFunds(ctx, creator, 3), domain.ErrNotFound)
	})
}

func TestGetRefund_AfterFailedDeadline(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.create(t, 100, time.Hour)
	f.contribute(t, alice, id, 40)

	f.clock.Set(start.Add(time.Hour))
	assert.Equal(t, domain.StateFailed, f.details(t, id).State)

	require.NoError(t, f.svc.GetRefund(ctx, alice, id))
	assert.Equal(t, "40", domain.FormatAmount(f.book.BalanceOf(alice)))

	c, err := f.svc.ContributionOf(ctx, id, alice)
	require.NoError(t, err)
	assert.True(t, c.IsZero())
	assert.Equal(t, "0", domain.FormatAmount(f.details(t, id).FundsRaised))

	assert.ErrorIs(t, f.svc.GetRefund(ctx, alice, id), domain.ErrNotEligibleForRefund)
	assert.Equal(t, "40", domain.FormatAmount(f.book.BalanceOf(alice)))
	f.requireLedgerConsistent(t, id, alice)
}

func TestGetRefund_AfterCancelBeforeDeadline(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.create(t, 100, time.Hour)
	f.contribute(t, alice, id, 70)
	f.contribute(t, bob, id, 50)
	require.NoError(t, f.svc.CancelCampaign(ctx, creator, id))

	require.NoError(t, f.svc.GetRefund(ctx, alice, id))
	f.requireLedgerConsistent(t, id, alice, bob)
	require.NoError(t, f.svc.GetRefund(ctx, bob, id))
	f.requireLedgerConsistent(t, id, alice, bob)

	assert.Equal(t, "70", domain.FormatAmount(f.book.BalanceOf(alice)))
	assert.Equal(t, "50", domain.FormatAmount(f.book.BalanceOf(bob)))

	c, err := f.store.GetCampaign(ctx, id)
	require.NoError(t, err)
	assert.True(t, c.EscrowBalance.IsZero())
}

func TestGetRefund_Rejected(t *testing.T) {
	ctx := context.Background()

	t.Run("active before deadline", func(t *testing.T) {
		f := newFixture(t)
		id := f.create(t, 100, time.Hour)
		f.contribute(t, alice, id, 40)
		assert.ErrorIs(t, f.svc.GetRefund(ctx, alice, id), domain.ErrNotEligibleForRefund)
	})

	t.Run("goal met after deadline", func(t *testing.T) {
		f := newFixture(t)
		id := f.create(t, 100, time.Hour)
		f.contribute(t, alice, id, 100)
		f.clock.Advance(time.Hour)
		assert.ErrorIs(t, f.svc.GetRefund(ctx, alice, id), domain.ErrNotEligibleForRefund)
	})

	t.Run("no contribution", func(t *testing.T) {
		f := newFixture(t)
		id := f.create(t, 100, time.Hour)
		f.contribute(t, alice, id, 40)
		require.NoError(t, f.svc.CancelCampaign(ctx, creator, id))
		assert.ErrorIs(t, f.svc.GetRefund(ctx, bob, id), domain.ErrNotEligibleForRefund)
	})

	t.Run("withdrawn", func(t *testing.T) {
		f := newFixture(t)
		id := f.create(t, 100, time.Hour)
		f.contribute(t, alice, id, 100)
		require.NoError(t, f.svc.WithdrawFunds(ctx, creator, id))
		f.clock.Advance(time.Hour)
		assert.ErrorIs(t, f.svc.GetRefund(ctx, alice, id), domain.ErrNotEligibleForRefund)
	})
}

func TestCancelCampaign(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.create(t, 80, time.Hour)

	assert.ErrorIs(t, f.svc.CancelCampaign(ctx, alice, id), domain.ErrUnauthorized)
	require.NoError(t, f.svc.CancelCampaign(ctx, creator, id))
	assert.Equal(t, domain.StateCanceled, f.details(t, id).State)

	assert.ErrorIs(t, f.svc.CancelCampaign(ctx, creator, id), domain.ErrCampaignNotActive)

	withdrawn := f.create(t, 10, time.Hour)
	f.contribute(t, alice, withdrawn, 10)
	require.NoError(t, f.svc.WithdrawFunds(ctx, creator, withdrawn))
	assert.ErrorIs(t, f.svc.CancelCampaign(ctx, creator, withdrawn), domain.ErrCampaignNotActive)
}

func TestTransferOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.create(t, 80, time.Hour)

	assert.ErrorIs(t, f.svc.TransferOwnership(ctx, alice, id, alice), domain.ErrUnauthorized)
	assert.ErrorIs(t, f.svc.TransferOwnership(ctx, creator, id, domain.ZeroAddress), domain.ErrInvalidOwner)

	require.NoError(t, f.svc.TransferOwnership(ctx, creator, id, newOwner))
	assert.Equal(t, newOwner, f.details(t, id).Creator)

	assert.ErrorIs(t, f.svc.CancelCampaign(ctx, creator, id), domain.ErrUnauthorized)
	require.NoError(t, f.svc.CancelCampaign(ctx, newOwner, id))

	assert.ErrorIs(t, f.svc.TransferOwnership(ctx, newOwner, id, creator), domain.ErrCampaignNotActive)
}

func TestExtendDeadline(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.create(t, 80, time.Hour)

	assert.ErrorIs(t, f.svc.ExtendDeadline(ctx, alice, id, 60), domain.ErrUnauthorized)
	assert.ErrorIs(t, f.svc.ExtendDeadline(ctx, creator, id, 0), domain.ErrInvalidDeadline)

	require.NoError(t, f.svc.ExtendDeadline(ctx, creator, id, 1800))
	assert.Equal(t, start.Add(90*time.Minute), f.details(t, id).Deadline)

	// contributions are accepted past the original deadline
	f.clock.Advance(time.Hour)
	f.contribute(t, alice, id, 5)

	require.NoError(t, f.svc.CancelCampaign(ctx, creator, id))
	assert.ErrorIs(t, f.svc.ExtendDeadline(ctx, creator, id, 60), domain.ErrCampaignNotActive)
	assert.Equal(t, start.Add(90*time.Minute), f.details(t, id).Deadline)
}

// TestExtendDeadline_FailedCampaignStaysFailed ensures a creator cannot
// reopen a failed campaign and take the funds its backers are owed.
func TestExtendDeadline_FailedCampaignStaysFailed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.create(t, 100, time.Hour)
	f.contribute(t, alice, id, 40)
	f.clock.Advance(2 * time.Hour)
	require.Equal(t, domain.StateFailed, f.details(t, id).State)

	assert.ErrorIs(t, f.svc.ExtendDeadline(ctx, creator, id, 7200), domain.ErrCampaignNotActive)

	d := f.details(t, id)
	assert.Equal(t, domain.StateFailed, d.State)
	assert.Equal(t, start.Add(time.Hour), d.Deadline)

	assert.ErrorIs(t, f.svc.Contribute(ctx, bob, id, amt(60)), domain.ErrDeadlinePassed)
	assert.ErrorIs(t, f.svc.WithdrawFunds(ctx, creator, id), domain.ErrGoalNotReached)
	require.NoError(t, f.svc.GetRefund(ctx, alice, id))
	assert.Equal(t, "40", domain.FormatAmount(f.book.BalanceOf(alice)))
	assert.Equal(t, "0", domain.FormatAmount(f.book.BalanceOf(creator)))
}

func TestExtendDeadline_SuccessfulAfterDeadline(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, 10, time.Hour)
	f.contribute(t, alice, id, 10)
	f.clock.Advance(2 * time.Hour)

	require.NoError(t, f.svc.ExtendDeadline(context.Background(), creator, id, 60))
	assert.Equal(t, domain.StateSuccessful, f.details(t, id).State)
}

func TestGetCampaignDetails_Idempotent(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, 80, time.Hour)
	f.contribute(t, alice, id, 30)

	first := f.details(t, id)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, f.details(t, id))
	}

	_, err := f.svc.GetCampaignDetails(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListCampaigns(t *testing.T) {
	f := newFixture(t)
	a := f.create(t, 10, time.Hour)
	b := f.create(t, 20, 2*time.Hour)
	f.contribute(t, alice, b, 20)

	list, err := f.svc.ListCampaigns(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a, list[0].ID)
	assert.Equal(t, b, list[1].ID)
	assert.False(t, list[0].IsSuccessful)
	assert.True(t, list[1].IsSuccessful)
}

// TestTransferFailureRollsBack ensures a rejected transfer undoes all bookkeeping of the operation.
func TestTransferFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	rejected := errors.New("recipient rejected value")

	t.Run("withdraw", func(t *testing.T) {
		transferer := mocks.NewMockTransferer(t)
		transferer.EXPECT().
			Transfer(mock.Anything, mock.AnythingOfType("domain.Payout")).
			Return(rejected).
			Once()

		f := newFixtureWith(t, transferer)
		id := f.create(t, 100, time.Hour)
		f.contribute(t, alice, id, 100)

		err := f.svc.WithdrawFunds(ctx, creator, id)
		assert.ErrorIs(t, err, domain.ErrTransferFailed)
		assert.ErrorIs(t, err, rejected)

		d := f.details(t, id)
		assert.False(t, d.IsWithdrawn)
		assert.Equal(t, "100", d.FundsRaised.Dec())
		f.requireLedgerConsistent(t, id, alice)
	})

	t.Run("refund", func(t *testing.T) {
		transferer := mocks.NewMockTransferer(t)
		transferer.EXPECT().
			Transfer(mock.Anything, mock.MatchedBy(func(p domain.Payout) bool {
				return p.Kind == domain.PayoutRefund && p.Recipient == alice
			})).
			Return(rejected).
			Once()

		f := newFixtureWith(t, transferer)
		id := f.create(t, 100, time.Hour)
		f.contribute(t, alice, id, 30)
		require.NoError(t, f.svc.CancelCampaign(ctx, creator, id))

		assert.ErrorIs(t, f.svc.GetRefund(ctx, alice, id), domain.ErrTransferFailed)

		c, err := f.svc.ContributionOf(ctx, id, alice)
		require.NoError(t, err)
		assert.Equal(t, "30", c.Dec())
		f.requireLedgerConsistent(t, id, alice)
	})
}

// TestReentrantRefundIsRejected ensures a recipient cannot re-enter the campaign paying it, while still
// reading the committed state.
func TestReentrantRefundIsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.create(t, 100, time.Hour)
	f.contribute(t, alice, id, 40)
	require.NoError(t, f.svc.CancelCampaign(ctx, creator, id))

	var (
		nested      error
		seenRaised  domain.Amount
		seenBalance domain.Amount
	)
	f.book.OnReceive = func(ctx context.Context, p domain.Payout) error {
		// bookkeeping is already committed when value arrives
		d, err := f.svc.GetCampaignDetails(ctx, p.CampaignID)
		if err != nil {
			return err
		}
		seenRaised = d.FundsRaised
		if seenBalance, err = f.svc.ContributionOf(ctx, p.CampaignID, p.Recipient); err != nil {
			return err
		}
		nested = f.svc.GetRefund(ctx, p.Recipient, p.CampaignID)
		return nil
	}

	require.NoError(t, f.svc.GetRefund(ctx, alice, id))
	assert.ErrorIs(t, nested, domain.ErrReentrantCall)
	assert.True(t, seenRaised.IsZero())
	assert.True(t, seenBalance.IsZero())
	assert.Equal(t, "40", domain.FormatAmount(f.book.BalanceOf(alice)))
	assert.Len(t, f.book.Payouts(), 1)
}

// TestReentryThroughDerivedContextIsRejected ensures the guard follows
// contexts derived from the one handed to the transferer.
func TestReentryThroughDerivedContextIsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.create(t, 10, time.Hour)
	f.contribute(t, alice, id, 10)

	var nested error
	f.book.OnReceive = func(ctx context.Context, p domain.Payout) error {
		derived, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		nested = f.svc.CancelCampaign(derived, creator, p.CampaignID)
		return nil
	}
	require.NoError(t, f.svc.WithdrawFunds(ctx, creator, id))
	assert.ErrorIs(t, nested, domain.ErrReentrantCall)
	assert.Equal(t, domain.StateWithdrawn, f.details(t, id).State)
}

// TestRejectedTransferUndoesPublishedState ensures state a recipient saw
// during a rejected transfer does not survive the operation.
func TestRejectedTransferUndoesPublishedState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.create(t, 10, time.Hour)
	f.contribute(t, alice, id, 10)

	var during domain.Details
	f.book.OnReceive = func(ctx context.Context, p domain.Payout) error {
		d, err := f.svc.GetCampaignDetails(ctx, p.CampaignID)
		if err != nil {
			return err
		}
		during = d
		return errors.New("rejected")
	}
	assert.ErrorIs(t, f.svc.WithdrawFunds(ctx, creator, id), domain.ErrTransferFailed)

	assert.True(t, during.IsWithdrawn)
	after := f.details(t, id)
	assert.False(t, after.IsWithdrawn)
	assert.Equal(t, domain.StateSuccessful, after.State)
	f.requireLedgerConsistent(t, id, alice)
}

func TestInsufficientEscrowIsReported(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.create(t, 100, time.Hour)
	f.contribute(t, alice, id, 100)

	// simulate a broken escrow balance behind the engine's back
	require.NoError(t, f.store.InCampaign(ctx, id, func(ctx context.Context, tx port.CampaignTx) error {
		tx.Campaign().EscrowBalance = amt(10)
		return tx.Save(ctx)
	}))

	err := f.svc.WithdrawFunds(ctx, creator, id)
	assert.ErrorIs(t, err, domain.ErrInsufficientEscrow)
	assert.False(t, f.details(t, id).IsWithdrawn)
	assert.Empty(t, f.book.Payouts())
}

// TestConcurrentContributions ensures concurrent contributions are neither lost nor double counted.
func TestConcurrentContributions(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, 1_000_000, time.Hour)

	backers := []domain.Address{alice, bob, newOwner, addr(0x01), addr(0x02)}
	const rounds = 40

	var wg sync.WaitGroup
	for _, b := range backers {
		for i := 0; i < rounds; i++ {
			wg.Add(1)
			go func(b domain.Address) {
				defer wg.Done()
				assert.NoError(t, f.svc.Contribute(context.Background(), b, id, amt(3)))
			}(b)
		}
	}
	wg.Wait()

	assert.Equal(t, "600", domain.FormatAmount(f.details(t, id).FundsRaised))
	f.requireLedgerConsistent(t, id, backers...)
}

func TestReentryThroughOtherCampaignIsAllowed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.create(t, 10, time.Hour)
	second := f.create(t, 10, time.Hour)
	f.contribute(t, alice, first, 10)

	var nested error
	f.book.OnReceive = func(ctx context.Context, p domain.Payout) error {
		nested = f.svc.Contribute(ctx, p.Recipient, second, amt(1))
		return nil
	}
	require.NoError(t, f.svc.WithdrawFunds(ctx, creator, first))
	require.NoError(t, nested)
	assert.Equal(t, "1", domain.FormatAmount(f.details(t, second).FundsRaised))
}

func TestMetrics(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.create(t, 10, time.Hour)
	f.contribute(t, alice, id, 10)
	require.NoError(t, f.svc.WithdrawFunds(ctx, creator, id))
	_ = f.svc.WithdrawFunds(ctx, creator, id)
	_ = f.svc.Contribute(ctx, alice, id, amt(0))

	assert.Equal(t, 1.0, promtestutil.ToFloat64(f.metrics.operations.WithLabelValues("create", "ok")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(f.metrics.operations.WithLabelValues("withdraw", "ok")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(f.metrics.operations.WithLabelValues("withdraw", string(domain.CodeAlreadyWithdrawn))))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(f.metrics.operations.WithLabelValues("contribute", string(domain.CodeZeroAmount))))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(f.metrics.payouts.WithLabelValues(string(domain.PayoutWithdrawal))))
}

var errCommit = errors.New("commit failed")

// commitFailingStore runs every operation to completion and then fails the
// commit, which rolls the operation back.
type commitFailingStore struct {
	*memory.CampaignStore
}

func (s commitFailingStore) InCampaign(ctx context.Context, id uint64, fn func(ctx context.Context, tx port.CampaignTx) error) error {
	return s.CampaignStore.InCampaign(ctx, id, func(ctx context.Context, tx port.CampaignTx) error {
		if err := fn(ctx, tx); err != nil {
			return err
		}
		return errCommit
	})
}

// TestMetrics_PayoutsCountOnlyCommitted ensures a payout rolled back at
// commit is not reported.
func TestMetrics_PayoutsCountOnlyCommitted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.create(t, 10, time.Hour)
	f.contribute(t, alice, id, 10)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	failing := NewCampaignUseCase(commitFailingStore{f.store}, f.clock, f.book, logger, f.metrics)

	assert.ErrorIs(t, failing.WithdrawFunds(ctx, creator, id), errCommit)
	assert.False(t, f.details(t, id).IsWithdrawn)
	assert.Equal(t, 0.0, promtestutil.ToFloat64(f.metrics.payouts.WithLabelValues(string(domain.PayoutWithdrawal))))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(f.metrics.operations.WithLabelValues("withdraw", "internal")))

	require.NoError(t, f.svc.WithdrawFunds(ctx, creator, id))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(f.metrics.payouts.WithLabelValues(string(domain.PayoutWithdrawal))))
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	m.observe("create", nil)
	m.payout(domain.PayoutRefund)

	unregistered := &Metrics{}
	unregistered.Register(nil)
	unregistered.observe("create", domain.ErrNotFound)
}
