package httpadapter

import (
	"time"

	"crowdfund/internal/core/domain"
)

// Amounts cross the wire as base-10 strings since they exceed the range of
// JSON numbers.

type createCampaignRequest struct {
	GoalAmount      string `json:"goal_amount"`
	DurationSeconds uint64 `json:"duration_seconds"`
}

type createCampaignResponse struct {
	ID uint64 `json:"id"`
}

type contributeRequest struct {
	Amount string `json:"amount"`
}

type transferOwnershipRequest struct {
	NewOwner string `json:"new_owner"`
}

type extendDeadlineRequest struct {
	ExtraSeconds uint64 `json:"extra_seconds"`
}

type countResponse struct {
	Count uint64 `json:"count"`
}

type amountResponse struct {
	Amount string `json:"amount"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type campaignResponse struct {
	ID           uint64    `json:"id"`
	Creator      string    `json:"creator"`
	GoalAmount   string    `json:"goal_amount"`
	Deadline     time.Time `json:"deadline"`
	FundsRaised  string    `json:"funds_raised"`
	IsSuccessful bool      `json:"is_successful"`
	IsWithdrawn  bool      `json:"is_withdrawn"`
	IsCanceled   bool      `json:"is_canceled"`
	State        string    `json:"state"`
}

func newCampaignResponse(d domain.Details) campaignResponse {
	return campaignResponse{
		ID:           d.ID,
		Creator:      d.Creator.Hex(),
		GoalAmount:   domain.FormatAmount(d.GoalAmount),
		Deadline:     d.Deadline,
		FundsRaised:  domain.FormatAmount(d.FundsRaised),
		IsSuccessful: d.IsSuccessful,
		IsWithdrawn:  d.IsWithdrawn,
		IsCanceled:   d.IsCanceled,
		State:        string(d.State),
	}
}
