package port

import (
	"context"

	"crowdfund/internal/core/domain"
)

// CampaignUseCase defines the operations exposed by the escrow engine. It
// is the primary port into the application domain. Every mutating
// operation takes the authenticated caller supplied by the identity
// provider and is atomic: it either completes or leaves no trace.
type CampaignUseCase interface {
	// CreateCampaign opens a campaign owned by caller that accepts
	// contributions for durationSeconds from now.
	CreateCampaign(ctx context.Context, caller domain.Address, goal domain.Amount, durationSeconds uint64) (uint64, error)

	// Contribute adds amount to caller's contribution. Over-funding is
	// allowed while the campaign is open and its deadline has not passed.
	Contribute(ctx context.Context, caller domain.Address, id uint64, amount domain.Amount) error

	// WithdrawFunds releases everything raised to the creator once the goal
	// is met. It succeeds at most once per campaign.
	WithdrawFunds(ctx context.Context, caller domain.Address, id uint64) error

	// GetRefund returns caller's whole contribution when the campaign was
	// canceled or its deadline passed with the goal unmet.
	GetRefund(ctx context.Context, caller domain.Address, id uint64) error

	CancelCampaign(ctx context.Context, caller domain.Address, id uint64) error
	TransferOwnership(ctx context.Context, caller domain.Address, id uint64, newOwner domain.Address) error
	ExtendDeadline(ctx context.Context, caller domain.Address, id uint64, extraSeconds uint64) error

	// GetCampaignDetails never mutates state.
	GetCampaignDetails(ctx context.Context, id uint64) (domain.Details, error)
	CampaignCount(ctx context.Context) (uint64, error)
	ContributionOf(ctx context.Context, id uint64, backer domain.Address) (domain.Amount, error)

	// ListCampaigns projects every campaign in creation order. Nothing is
	// cached; each call reads the store.
	ListCampaigns(ctx context.Context) ([]domain.Details, error)
}
