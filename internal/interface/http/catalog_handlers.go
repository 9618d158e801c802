package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	domartwork "example.com/gallery-storefront/internal/domain/artwork"
)

func (a *API) listFilterFromQuery(r *http.Request) (domartwork.ListFilter, error) {
	filter := domartwork.ListFilter{Query: r.URL.Query().Get("q")}
	if raw := r.URL.Query().Get("genre"); raw != "" {
		g, err := domartwork.ParseGenre(raw)
		if err != nil {
			return domartwork.ListFilter{}, err
		}
		filter.Genre = g
	}
	return filter, nil
}

func (a *API) handleListArtworks(w http.ResponseWriter, r *http.Request) {
	filter, err := a.listFilterFromQuery(r)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	artworks, err := a.catalogSvc.List(r.Context(), filter)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(artworks))
	for _, art := range artworks {
		resp = append(resp, mapArtwork(art))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

func (a *API) handleListGenres(w http.ResponseWriter, r *http.Request) {
	genres := make([]string, 0, len(domartwork.AllGenres))
	for _, g := range domartwork.AllGenres {
		genres = append(genres, string(g))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": genres})
}

// handleHomePage is the catalog page: the filtered artwork list plus the
// genre vocabulary for the filter dropdown.
func (a *API) handleHomePage(w http.ResponseWriter, r *http.Request) {
	filter, err := a.listFilterFromQuery(r)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	artworks, err := a.catalogSvc.List(r.Context(), filter)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	data := make([]map[string]any, 0, len(artworks))
	for _, art := range artworks {
		data = append(data, mapArtwork(art))
	}
	genres := make([]string, 0, len(domartwork.AllGenres))
	for _, g := range domartwork.AllGenres {
		genres = append(genres, string(g))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"artworks": data,
		"genres":   genres,
	})
}

func (a *API) handleGetImage(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	contentType, data, err := a.images.Get(r.Context(), key)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
