package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"schoolbook/internal/api/util"
	"schoolbook/internal/payment"
	"schoolbook/internal/record"
)

// BillingHandler serves the billing endpoints and the payment-session
// creation pass-through.
type BillingHandler struct {
	Records  *record.Service
	Sessions payment.SessionCreator
}

// AddBilling handles POST /addbilling
func (h *BillingHandler) AddBilling(w http.ResponseWriter, r *http.Request) {
	var in record.BillingInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	student, err := h.Records.AddBilling(ctx, in)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusCreated, student)
}

// BillingLists handles GET /getallbilling
func (h *BillingHandler) BillingLists(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	lists, err := h.Records.BillingLists(ctx)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, lists)
}

// CreateSession handles POST /billing, returning the checkout redirect URL.
func (h *BillingHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	url, err := h.Sessions.CreatePayableSession(ctx)
	if err != nil {
		util.WriteJSONError(w, http.StatusInternalServerError, "payment creation failed")
		return
	}

	util.WriteJSON(w, http.StatusOK, map[string]string{"url": url})
}
