package db

import (
	"context"
	"fmt"
	"math/rand"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Seed creates demo campaigns through the engine so that every invariant
// holds for the seeded data: five campaigns owned by one demo creator,
// each with ten random contributions from a pool of backers.
func Seed(ctx context.Context, svc port.CampaignUseCase, r *rand.Rand) error {
	creator := demoAddress(0xc0)
	for i := 1; i <= 5; i++ {
		goal := domain.NewAmount(uint64(i) * 1_000_000)
		duration := uint64(7*24*3600 + r.Intn(7*24*3600))
		id, err := svc.CreateCampaign(ctx, creator, goal, duration)
		if err != nil {
			return fmt.Errorf("seed campaign %d: %w", i, err)
		}
		for j := 0; j < 10; j++ {
			backer := demoAddress(byte(1 + r.Intn(100)))
			amount := domain.NewAmount(uint64(10_000 + r.Intn(200_000)))
			if err = svc.Contribute(ctx, backer, id, amount); err != nil {
				return fmt.Errorf("seed contribution to campaign %d: %w", id, err)
			}
		}
	}
	return nil
}

func demoAddress(b byte) domain.Address {
	var a domain.Address
	a[0] = 0xde
	a[len(a)-1] = b
	return a
}
