package http

import (
	"net/http"

	dompayment "example.com/food-ordering/app/internal/domain/payment"
)

type instructionsRequest struct {
	Instructions string `json:"instructions"`
}

type confirmOrderRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required"`
	CardNumber    string `json:"card_number"`
	ExpiryDate    string `json:"expiry_date"`
	CVV           string `json:"cvv"`
}

func (a *API) handleCheckoutSummary(w http.ResponseWriter, r *http.Request) {
	user := getAuthUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, errUnauthenticated)
		return
	}

	summary, err := a.orderSvc.Checkout(r.Context(), user.UserID)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSummary(summary))
}

func (a *API) handleSetInstructions(w http.ResponseWriter, r *http.Request) {
	user := getAuthUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, errUnauthenticated)
		return
	}

	var req instructionsRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := a.orderSvc.SetInstructions(r.Context(), user.UserID, req.Instructions); err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (a *API) handleConfirmOrder(w http.ResponseWriter, r *http.Request) {
	user := getAuthUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, errUnauthenticated)
		return
	}

	var req confirmOrderRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	conf, err := a.orderSvc.Confirm(r.Context(), user.UserID,
		dompayment.Method(req.PaymentMethod),
		dompayment.CardDetails{
			CardNumber: req.CardNumber,
			ExpiryDate: req.ExpiryDate,
			CVV:        req.CVV,
		})
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, mapConfirmation(conf))
}
