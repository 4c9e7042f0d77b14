package payout

import (
	"context"
	"fmt"
	"sync"

	"crowdfund/internal/core/domain"
)

// ReceiveFunc is invoked for every transfer before it is booked, standing
// in for a recipient's receipt handler. A non-nil error rejects the
// transfer. Calls back into the engine must use ctx; see port.Transferer.
type ReceiveFunc func(ctx context.Context, p domain.Payout) error

// Book is an in-memory port.Transferer that credits recipients and keeps
// every payout in order.
type Book struct {
	mu       sync.Mutex
	payouts  []domain.Payout
	balances map[domain.Address]domain.Amount

	// OnReceive, when set, runs before the payout is booked.
	OnReceive ReceiveFunc
}

func NewBook() *Book {
	return &Book{balances: make(map[domain.Address]domain.Amount)}
}

// Transfer credits the recipient. The recipient hook runs without the
// book's lock held so that it may call back into the engine.
func (b *Book) Transfer(ctx context.Context, p domain.Payout) error {
	if p.Recipient == domain.ZeroAddress {
		return fmt.Errorf("payout %s: zero recipient", p.ID)
	}
	if b.OnReceive != nil {
		if err := b.OnReceive(ctx, p); err != nil {
			return fmt.Errorf("recipient %s rejected payout: %w", p.Recipient.Hex(), err)
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	balance, err := domain.AddAmounts(b.balances[p.Recipient], p.Amount)
	if err != nil {
		return err
	}
	b.balances[p.Recipient] = balance
	b.payouts = append(b.payouts, p)
	return nil
}

// BalanceOf returns everything paid out to addr so far.
func (b *Book) BalanceOf(addr domain.Address) domain.Amount {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balances[addr]
}

// Payouts returns a copy of the booked payouts in order.
func (b *Book) Payouts() []domain.Payout {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.Payout, len(b.payouts))
	copy(out, b.payouts)
	return out
}
