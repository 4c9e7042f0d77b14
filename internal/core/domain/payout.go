package domain

import (
	"time"

	"github.com/google/uuid"
)

// PayoutKind tells why escrowed value left a campaign.
type PayoutKind string

const (
	PayoutWithdrawal PayoutKind = "withdrawal"
	PayoutRefund     PayoutKind = "refund"
)

// Payout is a single release of escrowed value to a recipient.
type Payout struct {
	ID         uuid.UUID
	CampaignID uint64
	Recipient  Address
	Amount     Amount
	Kind       PayoutKind
	CreatedAt  time.Time
}
