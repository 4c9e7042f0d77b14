package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"crowdfund/internal/core/domain"
)

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	goal, err := domain.ParseAmount(req.GoalAmount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	id, err := h.svc.CreateCampaign(r.Context(), callerFrom(r.Context()), goal, req.DurationSeconds)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createCampaignResponse{ID: id})
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := make([]campaignResponse, 0, len(list))
	for _, d := range list {
		resp = append(resp, newCampaignResponse(d))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCampaignCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.CampaignCount(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: n})
}

func (h *Handler) handleCampaignDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	d, err := h.svc.GetCampaignDetails(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newCampaignResponse(d))
}

func (h *Handler) handleContributionOf(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	backer, err := domain.ParseAddress(chi.URLParam(r, "backer"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	amount, err := h.svc.ContributionOf(r.Context(), id, backer)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, amountResponse{Amount: domain.FormatAmount(amount)})
}

func (h *Handler) handleContribute(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	var req contributeRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.noContent(w, r, h.svc.Contribute(r.Context(), callerFrom(r.Context()), id, amount))
}

func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	h.noContent(w, r, h.svc.WithdrawFunds(r.Context(), callerFrom(r.Context()), id))
}

func (h *Handler) handleRefund(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	h.noContent(w, r, h.svc.GetRefund(r.Context(), callerFrom(r.Context()), id))
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	h.noContent(w, r, h.svc.CancelCampaign(r.Context(), callerFrom(r.Context()), id))
}

func (h *Handler) handleTransferOwnership(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	var req transferOwnershipRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	newOwner, err := domain.ParseAddress(req.NewOwner)
	if err != nil {
		h.writeError(w, r, domain.ErrInvalidOwner)
		return
	}
	h.noContent(w, r, h.svc.TransferOwnership(r.Context(), callerFrom(r.Context()), id, newOwner))
}

func (h *Handler) handleExtendDeadline(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(w, r)
	if !ok {
		return
	}
	var req extendDeadlineRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	h.noContent(w, r, h.svc.ExtendDeadline(r.Context(), callerFrom(r.Context()), id, req.ExtraSeconds))
}

func (h *Handler) noContent(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// campaignID parses the {id} path parameter. Malformed ids result in
// HTTP 400.
func campaignID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
