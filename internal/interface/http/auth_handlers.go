package http

import (
	"net/http"

	authuc "example.com/gallery-storefront/internal/usecase/auth"
)

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (a *API) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	result, err := a.authSvc.SignUp(r.Context(), authuc.Credentials{
		Email:     req.Email,
		Password:  req.Password,
		SessionID: sessionIDFromContext(r.Context()),
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"token": result.Token,
		"user":  mapUser(result.User),
	})
}

func (a *API) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	result, err := a.authSvc.SignIn(r.Context(), authuc.Credentials{
		Email:     req.Email,
		Password:  req.Password,
		SessionID: sessionIDFromContext(r.Context()),
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": result.Token,
		"user":  mapUser(result.User),
	})
}

// handleSignOut drops the session's cart and transient checkout state. The
// bearer token itself is stateless and simply stops being presented.
func (a *API) handleSignOut(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())
	if store := a.carts.Lookup(sessionID); store != nil {
		store.Clear()
	}
	a.sessions.clearConfirmation(sessionID)
	writeJSON(w, http.StatusOK, map[string]string{"status": "signed out"})
}
