package port

import (
	"context"

	"crowdfund/internal/core/domain"
)

// Transferer moves released value to its recipient. It is the outbound
// value-transfer primitive used only by the escrow account. A returned
// error aborts the calling operation and all of its bookkeeping is rolled
// back.
//
// Transfer runs while the campaign being paid is still locked. The context
// passed to Transfer marks that campaign, and nested engine calls made with
// it (or a context derived from it) are rejected with
// domain.ErrReentrantCall. Implementations must propagate this context into
// any code that may call back into the engine: a call on the same campaign
// made with an unrelated context waits for the lock it already holds and
// never returns.
type Transferer interface {
	Transfer(ctx context.Context, payout domain.Payout) error
}
