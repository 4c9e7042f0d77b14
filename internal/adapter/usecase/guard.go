package usecase

import "context"

type heldKey struct{}

// held is the chain of campaigns locked by the calling goroutine's
// operation.
type held struct {
	id     uint64
	parent *held
}

func holding(ctx context.Context, id uint64) bool {
	h, _ := ctx.Value(heldKey{}).(*held)
	for ; h != nil; h = h.parent {
		if h.id == id {
			return true
		}
	}
	return false
}

func withHeld(ctx context.Context, id uint64) context.Context {
	parent, _ := ctx.Value(heldKey{}).(*held)
	return context.WithValue(ctx, heldKey{}, &held{id: id, parent: parent})
}
