package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"crowdfund/internal/core/domain"
)

// statusFor maps domain codes to HTTP status codes.
func statusFor(code domain.Code) int {
	switch code {
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeUnauthorized:
		return http.StatusForbidden
	case domain.CodeInvalidGoal,
		domain.CodeInvalidDeadline,
		domain.CodeZeroAmount,
		domain.CodeInvalidAmount,
		domain.CodeInvalidAddress,
		domain.CodeInvalidOwner,
		domain.CodeAmountOverflow:
		return http.StatusBadRequest
	case domain.CodeCampaignNotActive,
		domain.CodeDeadlinePassed,
		domain.CodeGoalNotReached,
		domain.CodeAlreadyWithdrawn,
		domain.CodeNotEligibleForRefund,
		domain.CodeReentrantCall:
		return http.StatusConflict
	case domain.CodeTransferFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// encoding should rarely fail and the status is already sent
	_ = json.NewEncoder(w).Encode(body)
}

// writeError renders err. Rejections carry their domain code; anything
// else is logged and reported as a generic internal error so storage
// details do not leak.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		h.logger.Error("request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "INTERNAL", Message: "internal error"})
		return
	}
	status := statusFor(de.Code)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
	}
	writeJSON(w, status, errorResponse{Error: string(de.Code), Message: err.Error()})
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
