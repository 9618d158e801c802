package http

import (
	"net/http"
)

type addCartItemRequest struct {
	ArtworkID int64 `json:"artwork_id" validate:"required,gt=0"`
}

type updateCartItemRequest struct {
	// Quantity is an absolute set: zero removes the line.
	Quantity int64 `json:"quantity" validate:"gte=0"`
}

func (a *API) handleGetCart(w http.ResponseWriter, r *http.Request) {
	store := a.carts.Get(sessionIDFromContext(r.Context()))
	writeJSON(w, http.StatusOK, mapCart(store.Lines(), store.Total()))
}

// handleAddCartItem adds one unit of the artwork; repeated calls bump the
// quantity of the existing line.
func (a *API) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	art, err := a.catalogSvc.GetByID(r.Context(), req.ArtworkID)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	store := a.carts.Get(sessionIDFromContext(r.Context()))
	store.Add(*art)
	writeJSON(w, http.StatusCreated, mapCart(store.Lines(), store.Total()))
}

func (a *API) handleUpdateCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	var req updateCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	store := a.carts.Get(sessionIDFromContext(r.Context()))
	store.UpdateQuantity(id, req.Quantity)
	writeJSON(w, http.StatusOK, mapCart(store.Lines(), store.Total()))
}

func (a *API) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	store := a.carts.Get(sessionIDFromContext(r.Context()))
	store.Remove(id)
	writeJSON(w, http.StatusOK, mapCart(store.Lines(), store.Total()))
}

func (a *API) handleClearCart(w http.ResponseWriter, r *http.Request) {
	store := a.carts.Get(sessionIDFromContext(r.Context()))
	store.Clear()
	writeJSON(w, http.StatusOK, mapCart(store.Lines(), store.Total()))
}
