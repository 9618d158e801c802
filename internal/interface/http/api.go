package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	domartwork "example.com/gallery-storefront/internal/domain/artwork"
	domcart "example.com/gallery-storefront/internal/domain/cart"
	domorder "example.com/gallery-storefront/internal/domain/order"
	domuser "example.com/gallery-storefront/internal/domain/user"
	authuc "example.com/gallery-storefront/internal/usecase/auth"
	cartuc "example.com/gallery-storefront/internal/usecase/cart"
	cataloguc "example.com/gallery-storefront/internal/usecase/catalog"
	checkoutuc "example.com/gallery-storefront/internal/usecase/checkout"
)

// ImageReader serves stored artwork images back out of the blob store.
type ImageReader interface {
	Get(ctx context.Context, key string) (contentType string, data []byte, err error)
}

type API struct {
	authSvc     *authuc.Service
	catalogSvc  *cataloguc.Service
	checkoutSvc *checkoutuc.Service
	carts       *cartuc.Registry
	sessions    *sessionManager
	images      ImageReader
	tokenSvc    authuc.TokenService
	validator   *validator.Validate
}

type Dependencies struct {
	AuthService     *authuc.Service
	CatalogService  *cataloguc.Service
	CheckoutService *checkoutuc.Service
	Carts           *cartuc.Registry
	Images          ImageReader
	TokenService    authuc.TokenService
}

func NewAPI(deps Dependencies) *API {
	return &API{
		authSvc:     deps.AuthService,
		catalogSvc:  deps.CatalogService,
		checkoutSvc: deps.CheckoutService,
		carts:       deps.Carts,
		sessions:    newSessionManager(),
		images:      deps.Images,
		tokenSvc:    deps.TokenService,
		validator:   validator.New(),
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(a.sessionMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Page-data routes mirror the storefront's client-visible navigation,
	// including its silent redirect guards.
	r.Get("/", a.handleHomePage)
	r.Get("/checkout", a.handleCheckoutPage)
	r.Get("/order-success", a.handleOrderSuccessPage)
	r.Get("/admin", a.handleAdminPage)
	r.Get("/images/{key}", a.handleGetImage)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/artworks", a.handleListArtworks)
		r.Get("/genres", a.handleListGenres)

		r.Group(func(jr chi.Router) {
			jr.Use(chimw.AllowContentType("application/json", "text/plain"))

			jr.Post("/auth/signup", a.handleSignUp)
			jr.Post("/auth/signin", a.handleSignIn)
			jr.Post("/auth/signout", a.handleSignOut)

			jr.Get("/cart", a.handleGetCart)
			jr.Post("/cart/items", a.handleAddCartItem)
			jr.Put("/cart/items/{id}", a.handleUpdateCartItem)
			jr.Delete("/cart/items/{id}", a.handleRemoveCartItem)
			jr.Delete("/cart", a.handleClearCart)

			jr.Post("/checkout", a.handleSubmitCheckout)
		})

		// Admin create is multipart (image upload), so this group stays off
		// the JSON content-type allowlist.
		r.Group(func(ar chi.Router) {
			ar.Use(a.authMiddleware)
			ar.Use(a.requireAdmin)

			ar.Route("/admin/artworks", func(rr chi.Router) {
				rr.Get("/", a.handleListArtworksAdmin)
				rr.Post("/", a.handleCreateArtwork)
				rr.Delete("/{id}", a.handleDeleteArtwork)
			})
		})
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// redirectHome is the silent navigation-guard fallback: no error payload,
// just a redirect to the catalog.
func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func parseIDParam(r *http.Request, key string) (int64, error) {
	idStr := chi.URLParam(r, key)
	return strconv.ParseInt(idStr, 10, 64)
}

func mapArtwork(a *domartwork.Artwork) map[string]any {
	genres := make([]string, 0, len(a.Genres))
	for _, g := range a.Genres {
		genres = append(genres, string(g))
	}
	return map[string]any{
		"id":          a.ID,
		"title":       a.Title,
		"description": a.Description,
		"price":       a.Price,
		"image":       a.Image,
		"dimensions":  a.Dimensions,
		"medium":      a.Medium,
		"genre":       genres,
	}
}

func mapCart(lines []domcart.Line, total float64) map[string]any {
	items := make([]map[string]any, 0, len(lines))
	for _, line := range lines {
		items = append(items, map[string]any{
			"artwork":  mapArtwork(&line.Artwork),
			"quantity": line.Quantity,
			"subtotal": line.Subtotal(),
		})
	}
	return map[string]any{
		"items": items,
		"total": total,
	}
}

func mapConfirmation(c *domorder.Confirmation) map[string]any {
	return map[string]any{
		"order_number": c.OrderNumber,
		"email":        c.Email,
	}
}

func mapUser(u *domuser.User) map[string]any {
	return map[string]any{
		"id":       u.ID,
		"email":    u.Email,
		"is_admin": u.Admin,
	}
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domartwork.ErrArtworkNotFound),
		errors.Is(err, domartwork.ErrImageNotFound),
		errors.Is(err, domuser.ErrUserNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, domuser.ErrEmailAlreadyUsed):
		respondError(w, http.StatusConflict, err)
	case errors.Is(err, domuser.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, err)
	case errors.Is(err, domartwork.ErrImageRequired),
		errors.Is(err, domartwork.ErrInvalidGenre),
		errors.Is(err, domartwork.ErrNoGenres),
		errors.Is(err, domartwork.ErrInvalidPrice),
		errors.Is(err, domcart.ErrEmptyCart),
		errors.Is(err, domuser.ErrInvalidCredential):
		respondError(w, http.StatusUnprocessableEntity, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
