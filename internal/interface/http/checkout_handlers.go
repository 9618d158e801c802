package http

import (
	"net/http"

	checkoutuc "example.com/gallery-storefront/internal/usecase/checkout"
)

type checkoutRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Name       string `json:"name" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	Country    string `json:"country" validate:"required"`
	ZipCode    string `json:"zip_code" validate:"required"`
	CardNumber string `json:"card_number" validate:"required"`
	Expiry     string `json:"expiry" validate:"required"`
	CVC        string `json:"cvc" validate:"required"`
}

// handleCheckoutPage guards the checkout view: an empty cart redirects home,
// otherwise the current lines and total are returned for display.
func (a *API) handleCheckoutPage(w http.ResponseWriter, r *http.Request) {
	store := a.carts.Lookup(sessionIDFromContext(r.Context()))
	if store == nil || len(store.Lines()) == 0 {
		redirectHome(w, r)
		return
	}
	writeJSON(w, http.StatusOK, mapCart(store.Lines(), store.Total()))
}

// handleSubmitCheckout runs the simulated payment, clears the cart, and
// stashes the confirmation as the session's transient navigation state for
// the order-success view.
func (a *API) handleSubmitCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	sessionID := sessionIDFromContext(r.Context())
	store := a.carts.Get(sessionID)

	conf, err := a.checkoutSvc.Submit(r.Context(), store, checkoutuc.SubmitInput{
		Email:      req.Email,
		Name:       req.Name,
		Address:    req.Address,
		City:       req.City,
		Country:    req.Country,
		ZipCode:    req.ZipCode,
		CardNumber: req.CardNumber,
		Expiry:     req.Expiry,
		CVC:        req.CVC,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}

	a.sessions.setConfirmation(sessionID, conf)
	writeJSON(w, http.StatusCreated, mapConfirmation(conf))
}

// handleOrderSuccessPage returns the stashed confirmation, or redirects home
// when the session never completed a checkout.
func (a *API) handleOrderSuccessPage(w http.ResponseWriter, r *http.Request) {
	conf := a.sessions.confirmation(sessionIDFromContext(r.Context()))
	if conf == nil {
		redirectHome(w, r)
		return
	}
	writeJSON(w, http.StatusOK, mapConfirmation(conf))
}
