package http

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func multipartArtwork(t *testing.T, fields map[string]string, genres []string, image []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	for _, g := range genres {
		require.NoError(t, w.WriteField("genre", g))
	}
	if image != nil {
		part, err := w.CreateFormFile("image", "artwork.jpg")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func artworkFields() map[string]string {
	return map[string]string{
		"title":       "Sunset Bay",
		"description": "Oil on canvas",
		"price":       "1200",
		"dimensions":  "60x80cm",
		"medium":      "oil",
	}
}

func TestAdminArtworks_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/admin/artworks/", requestOpts{})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminArtworks_RequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	token := env.seedUser(t, "customer@example.com", false)

	rec := env.do(t, http.MethodGet, "/api/v1/admin/artworks/", requestOpts{token: token})
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateArtwork_UploadsImageAndLists(t *testing.T) {
	env := newTestEnv(t)
	token := env.seedUser(t, "admin@example.com", true)

	body, contentType := multipartArtwork(t, artworkFields(), []string{"Landscape", "Impressionism"}, []byte{0xFF, 0xD8, 0xFF})
	rec := env.do(t, http.MethodPost, "/api/v1/admin/artworks/", requestOpts{
		token: token, rawBody: body, rawType: contentType,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	payload := decodeBody(t, rec)
	require.Equal(t, "Sunset Bay", payload["title"])
	require.Equal(t, []any{"Landscape", "Impressionism"}, payload["genre"])

	imageURL, _ := payload["image"].(string)
	require.True(t, strings.HasPrefix(imageURL, "/images/"))

	// The uploaded blob is served back.
	imgRec := env.do(t, http.MethodGet, imageURL, requestOpts{})
	require.Equal(t, http.StatusOK, imgRec.Code)
	require.Equal(t, []byte{0xFF, 0xD8, 0xFF}, imgRec.Body.Bytes())

	// And the listing is publicly visible.
	listRec := env.do(t, http.MethodGet, "/api/v1/artworks", requestOpts{})
	data := decodeBody(t, listRec)["data"].([]any)
	require.Len(t, data, 1)
}

func TestCreateArtwork_MissingImage(t *testing.T) {
	env := newTestEnv(t)
	token := env.seedUser(t, "admin@example.com", true)

	body, contentType := multipartArtwork(t, artworkFields(), []string{"Landscape"}, nil)
	rec := env.do(t, http.MethodPost, "/api/v1/admin/artworks/", requestOpts{
		token: token, rawBody: body, rawType: contentType,
	})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateArtwork_UnknownGenre(t *testing.T) {
	env := newTestEnv(t)
	token := env.seedUser(t, "admin@example.com", true)

	body, contentType := multipartArtwork(t, artworkFields(), []string{"Cubism"}, []byte{0x01})
	rec := env.do(t, http.MethodPost, "/api/v1/admin/artworks/", requestOpts{
		token: token, rawBody: body, rawType: contentType,
	})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDeleteArtwork(t *testing.T) {
	env := newTestEnv(t)
	token := env.seedUser(t, "admin@example.com", true)
	art := env.seedArtwork(t, "Sunset Bay", "oil", 100)

	rec := env.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/artworks/%d", art.ID), requestOpts{token: token})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/artworks/%d", art.ID), requestOpts{token: token})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminPage_GuardRedirects(t *testing.T) {
	env := newTestEnv(t)
	customer := env.seedUser(t, "customer@example.com", false)

	// Anonymous.
	rec := env.do(t, http.MethodGet, "/admin", requestOpts{})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))

	// Signed in but not an admin.
	rec = env.do(t, http.MethodGet, "/admin", requestOpts{token: customer})
	require.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestAdminPage_AdminSeesDashboardData(t *testing.T) {
	env := newTestEnv(t)
	admin := env.seedUser(t, "admin@example.com", true)
	env.seedArtwork(t, "Sunset Bay", "oil", 100)

	rec := env.do(t, http.MethodGet, "/admin", requestOpts{token: admin})
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	require.Len(t, payload["artworks"], 1)
	require.Len(t, payload["genres"], 8)
}
