package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

var (
	ctxUserKey         = struct{}{}
	errUnauthenticated = errors.New("unauthenticated")
	errForbidden       = errors.New("forbidden")
)

type authUser struct {
	UserID int64
	Email  string
	Admin  bool
}

func (a *API) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := a.identityFromRequest(r)
		if user == nil {
			respondError(w, http.StatusUnauthorized, errUnauthenticated)
			return
		}
		ctx := context.WithValue(r.Context(), ctxUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *API) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := getAuthUser(r.Context())
		if user == nil {
			respondError(w, http.StatusUnauthorized, errUnauthenticated)
			return
		}
		if !user.Admin {
			respondError(w, http.StatusForbidden, errForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// identityFromRequest resolves the bearer token, if any, without writing a
// response. Page guards use it directly so they can redirect instead of
// erroring.
func (a *API) identityFromRequest(r *http.Request) *authUser {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	claims, err := a.tokenSvc.ParseToken(token)
	if err != nil {
		return nil
	}

	return &authUser{
		UserID: claims.UserID,
		Email:  claims.Email,
		Admin:  claims.Admin,
	}
}

func getAuthUser(ctx context.Context) *authUser {
	val := ctx.Value(ctxUserKey)
	if user, ok := val.(*authUser); ok {
		return user
	}
	return nil
}
