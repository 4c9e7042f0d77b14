package httpadapter

import (
	"context"
	"net/http"

	"crowdfund/internal/core/domain"
)

type callerKey struct{}

// requireCaller resolves the authenticated caller from the header set by
// the identity provider in front of this service. Requests without a
// valid address are rejected with 401.
func (h *Handler) requireCaller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, err := domain.ParseAddress(r.Header.Get(h.callerHeader))
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{
				Error:   "UNAUTHENTICATED",
				Message: "missing or invalid " + h.callerHeader + " header",
			})
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), callerKey{}, caller)))
	})
}

func callerFrom(ctx context.Context) domain.Address {
	caller, _ := ctx.Value(callerKey{}).(domain.Address)
	return caller
}
