package http

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/uuid"

	domorder "example.com/gallery-storefront/internal/domain/order"
)

const sessionCookieName = "gallery_session"

type ctxSessionKeyType struct{}

var ctxSessionKey = ctxSessionKeyType{}

// sessionManager owns the transient per-session navigation state: for now
// that is only the order confirmation handed from checkout to the
// order-success view. Carts live in their own registry.
type sessionManager struct {
	mu            sync.Mutex
	confirmations map[string]*domorder.Confirmation
}

func newSessionManager() *sessionManager {
	return &sessionManager{confirmations: make(map[string]*domorder.Confirmation)}
}

func (m *sessionManager) setConfirmation(sessionID string, c *domorder.Confirmation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.confirmations[sessionID] = c
}

func (m *sessionManager) confirmation(sessionID string) *domorder.Confirmation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.confirmations[sessionID]
}

func (m *sessionManager) clearConfirmation(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.confirmations, sessionID)
}

// sessionMiddleware assigns every browser a session cookie on first contact
// and puts the session ID on the request context. The session scopes the
// in-memory cart and the transient checkout state.
func (a *API) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string
		if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
			sessionID = cookie.Value
		} else {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		ctx := context.WithValue(r.Context(), ctxSessionKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ctxSessionKey).(string); ok {
		return id
	}
	return ""
}
