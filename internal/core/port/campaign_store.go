package port

import (
	"context"

	"crowdfund/internal/core/domain"
)

// CampaignStore is the persistence port for campaigns and their
// contribution ledgers. Implementations must be safe for concurrent use.
type CampaignStore interface {
	// CreateCampaign assigns c.ID as the number of campaigns created before
	// it and stores c. Identifiers are unique and never reused, even under
	// concurrent creation.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error

	// GetCampaign returns a snapshot of the campaign or domain.ErrNotFound.
	GetCampaign(ctx context.Context, id uint64) (domain.Campaign, error)

	// CampaignCount returns the number of campaigns ever created.
	CampaignCount(ctx context.Context) (uint64, error)

	// ContributionOf returns the recorded contribution of backer, zero when
	// absent, or domain.ErrNotFound for an unknown campaign.
	ContributionOf(ctx context.Context, id uint64, backer domain.Address) (domain.Amount, error)

	// InCampaign runs fn with exclusive access to one campaign and its
	// ledger. Everything fn wrote is kept if it returns nil and discarded
	// otherwise. Operations on other campaigns are not blocked.
	InCampaign(ctx context.Context, id uint64, fn func(ctx context.Context, tx CampaignTx) error) error
}

// CampaignTx is the exclusive view of one campaign handed to
// CampaignStore.InCampaign.
type CampaignTx interface {
	// Campaign returns the working copy of the record. Changes become
	// visible through Save.
	Campaign() *domain.Campaign

	// Save writes the working copy back within the current scope.
	Save(ctx context.Context) error

	Contribution(ctx context.Context, backer domain.Address) (domain.Amount, error)

	// SetContribution overwrites the entry for backer. A zero amount
	// removes it.
	SetContribution(ctx context.Context, backer domain.Address, amount domain.Amount) error
}
