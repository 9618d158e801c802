package http

import (
	"io"
	"net/http"
	"strconv"

	domartwork "example.com/gallery-storefront/internal/domain/artwork"
	cataloguc "example.com/gallery-storefront/internal/usecase/catalog"
)

// maxImageUploadBytes caps the multipart form held in memory on create.
const maxImageUploadBytes = 10 << 20

// handleAdminPage guards the admin view: only an authenticated admin gets the
// dashboard data, anyone else is silently redirected home.
func (a *API) handleAdminPage(w http.ResponseWriter, r *http.Request) {
	user := a.identityFromRequest(r)
	if user == nil || !user.Admin {
		redirectHome(w, r)
		return
	}

	artworks, err := a.catalogSvc.List(r.Context(), domartwork.ListFilter{})
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

func (a *API) handleListArtworksAdmin(w http.ResponseWriter, r *http.Request) {
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

// handleCreateArtwork accepts a multipart form: text fields for the listing
// plus the image file. A submission without an image is rejected with the
// form untouched server-side, so the client can correct and resubmit.
func (a *API) handleCreateArtwork(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	in := cataloguc.CreateInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Price:       price,
		Dimensions:  r.FormValue("dimensions"),
		Medium:      r.FormValue("medium"),
		Genres:      r.MultipartForm.Value["genre"],
	}

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			respondError(w, http.StatusBadRequest, err)
			return
		}
		in.Image = data
		in.ImageType = header.Header.Get("Content-Type")
	}

	art, err := a.catalogSvc.Create(r.Context(), in)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapArtwork(art))
}

func (a *API) handleDeleteArtwork(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if err := a.catalogSvc.Delete(r.Context(), id); err != nil {
		handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
