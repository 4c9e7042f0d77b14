package domain

// Code is a machine-readable error code. Transports map codes to their own
// status values.
type Code string

const (
	CodeNotFound             Code = "NOT_FOUND"
	CodeUnauthorized         Code = "UNAUTHORIZED"
	CodeInvalidGoal          Code = "INVALID_GOAL"
	CodeInvalidDeadline      Code = "INVALID_DEADLINE"
	CodeZeroAmount           Code = "ZERO_AMOUNT"
	CodeInvalidAmount        Code = "INVALID_AMOUNT"
	CodeInvalidAddress       Code = "INVALID_ADDRESS"
	CodeInvalidOwner         Code = "INVALID_OWNER"
	CodeAmountOverflow       Code = "AMOUNT_OVERFLOW"
	CodeCampaignNotActive    Code = "CAMPAIGN_NOT_ACTIVE"
	CodeDeadlinePassed       Code = "DEADLINE_PASSED"
	CodeGoalNotReached       Code = "GOAL_NOT_REACHED"
	CodeAlreadyWithdrawn     Code = "ALREADY_WITHDRAWN"
	CodeNotEligibleForRefund Code = "NOT_ELIGIBLE_FOR_REFUND"
	CodeInsufficientEscrow   Code = "INSUFFICIENT_ESCROW"
	CodeTransferFailed       Code = "TRANSFER_FAILED"
	CodeReentrantCall        Code = "REENTRANT_CALL"
)

// Error is a rejected operation. Every Error leaves campaign state
// unchanged. The package-level values are sentinels for errors.Is.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrNotFound             = &Error{Code: CodeNotFound, Message: "campaign not found"}
	ErrUnauthorized         = &Error{Code: CodeUnauthorized, Message: "caller is not authorized for this operation"}
	ErrInvalidGoal          = &Error{Code: CodeInvalidGoal, Message: "goal amount must be positive"}
	ErrInvalidDeadline      = &Error{Code: CodeInvalidDeadline, Message: "deadline must move strictly into the future"}
	ErrZeroAmount           = &Error{Code: CodeZeroAmount, Message: "amount must be positive"}
	ErrInvalidAmount        = &Error{Code: CodeInvalidAmount, Message: "amount is not a valid base-10 integer"}
	ErrInvalidAddress       = &Error{Code: CodeInvalidAddress, Message: "address is not a valid non-zero hex address"}
	ErrInvalidOwner         = &Error{Code: CodeInvalidOwner, Message: "new owner must be a valid non-zero address"}
	ErrAmountOverflow       = &Error{Code: CodeAmountOverflow, Message: "amount arithmetic overflow"}
	ErrCampaignNotActive    = &Error{Code: CodeCampaignNotActive, Message: "campaign is canceled or withdrawn"}
	ErrDeadlinePassed       = &Error{Code: CodeDeadlinePassed, Message: "campaign deadline has passed"}
	ErrGoalNotReached       = &Error{Code: CodeGoalNotReached, Message: "funding goal not reached"}
	ErrAlreadyWithdrawn     = &Error{Code: CodeAlreadyWithdrawn, Message: "funds already withdrawn"}
	ErrNotEligibleForRefund = &Error{Code: CodeNotEligibleForRefund, Message: "caller is not eligible for a refund"}
	ErrInsufficientEscrow   = &Error{Code: CodeInsufficientEscrow, Message: "escrow balance below release amount"}
	ErrTransferFailed       = &Error{Code: CodeTransferFailed, Message: "value transfer failed"}
	ErrReentrantCall        = &Error{Code: CodeReentrantCall, Message: "reentrant call into a campaign already being modified"}
)
