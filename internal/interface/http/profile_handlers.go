package http

import (
	"net/http"
)

type updateAddressRequest struct {
	Address string `json:"address" validate:"required"`
}

func (a *API) handleGetAddress(w http.ResponseWriter, r *http.Request) {
	user := getAuthUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, errUnauthenticated)
		return
	}

	address, err := a.userSvc.Address(r.Context(), user.UserID)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"address": address})
}

func (a *API) handleUpdateAddress(w http.ResponseWriter, r *http.Request) {
	user := getAuthUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, errUnauthenticated)
		return
	}

	var req updateAddressRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.userSvc.UpdateAddress(r.Context(), user.UserID, req.Address); err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (a *API) handleOrderHistory(w http.ResponseWriter, r *http.Request) {
	user := getAuthUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, errUnauthenticated)
		return
	}

	records, err := a.userSvc.OrderHistory(r.Context(), user.UserID)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	orders := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		orders = append(orders, mapRecord(rec))
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": orders})
}
