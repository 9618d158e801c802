package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	domartwork "example.com/gallery-storefront/internal/domain/artwork"
	domuser "example.com/gallery-storefront/internal/domain/user"
	"example.com/gallery-storefront/internal/infra/security"
	authuc "example.com/gallery-storefront/internal/usecase/auth"
	cartuc "example.com/gallery-storefront/internal/usecase/cart"
	cataloguc "example.com/gallery-storefront/internal/usecase/catalog"
	checkoutuc "example.com/gallery-storefront/internal/usecase/checkout"
)

// In-memory fakes shared by the handler tests.

type fakeArtworkRepository struct {
	artworks map[int64]*domartwork.Artwork
	order    []int64
	nextID   int64
}

func newFakeArtworkRepository() *fakeArtworkRepository {
	return &fakeArtworkRepository{
		artworks: make(map[int64]*domartwork.Artwork),
		nextID:   1,
	}
}

func (f *fakeArtworkRepository) Create(ctx context.Context, a *domartwork.Artwork) (*domartwork.Artwork, error) {
	a.ID = f.nextID
	f.nextID++
	f.artworks[a.ID] = a
	f.order = append(f.order, a.ID)
	return a, nil
}

func (f *fakeArtworkRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := f.artworks[id]; !ok {
		return domartwork.ErrArtworkNotFound
	}
	delete(f.artworks, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeArtworkRepository) GetByID(ctx context.Context, id int64) (*domartwork.Artwork, error) {
	if a, ok := f.artworks[id]; ok {
		cloned := *a
		return &cloned, nil
	}
	return nil, domartwork.ErrArtworkNotFound
}

func (f *fakeArtworkRepository) List(ctx context.Context) ([]*domartwork.Artwork, error) {
	result := make([]*domartwork.Artwork, 0, len(f.order))
	for _, id := range f.order {
		cloned := *f.artworks[id]
		result = append(result, &cloned)
	}
	return result, nil
}

type fakeUserRepository struct {
	usersByEmail map[string]*domuser.User
	snapshots    map[int64][]byte
	nextID       int64
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		usersByEmail: make(map[string]*domuser.User),
		snapshots:    make(map[int64][]byte),
		nextID:       1,
	}
}

func (f *fakeUserRepository) Create(ctx context.Context, u *domuser.User) (*domuser.User, error) {
	if _, ok := f.usersByEmail[u.Email]; ok {
		return nil, domuser.ErrEmailAlreadyUsed
	}
	u.ID = f.nextID
	f.nextID++
	f.usersByEmail[u.Email] = u
	return u, nil
}

func (f *fakeUserRepository) GetByID(ctx context.Context, id int64) (*domuser.User, error) {
	for _, u := range f.usersByEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domuser.ErrUserNotFound
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*domuser.User, error) {
	if u, ok := f.usersByEmail[email]; ok {
		return u, nil
	}
	return nil, domuser.ErrUserNotFound
}

func (f *fakeUserRepository) SaveCartSnapshot(ctx context.Context, userID int64, snapshot []byte) error {
	f.snapshots[userID] = snapshot
	return nil
}

type fakeImageStore struct {
	blobs map[string][]byte
	types map[string]string
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{
		blobs: make(map[string][]byte),
		types: make(map[string]string),
	}
}

func (f *fakeImageStore) Put(ctx context.Context, key string, contentType string, data []byte) error {
	f.blobs[key] = data
	f.types[key] = contentType
	return nil
}

func (f *fakeImageStore) Get(ctx context.Context, key string) (string, []byte, error) {
	data, ok := f.blobs[key]
	if !ok {
		return "", nil, domartwork.ErrImageNotFound
	}
	return f.types[key], data, nil
}

type testHasher struct{}

func (testHasher) Hash(password string) (string, error) { return "hash:" + password, nil }

func (testHasher) Compare(hash string, password string) error {
	if hash != "hash:"+password {
		return domuser.ErrUnauthorized
	}
	return nil
}

type testEnv struct {
	router   chi.Router
	artworks *fakeArtworkRepository
	users    *fakeUserRepository
	images   *fakeImageStore
	tokens   authuc.TokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	artworks := newFakeArtworkRepository()
	users := newFakeUserRepository()
	images := newFakeImageStore()
	carts := cartuc.NewRegistry()
	tokens := security.NewJWTService("test-secret", time.Hour)

	api := NewAPI(Dependencies{
		AuthService:     authuc.NewService(users, testHasher{}, tokens, authuc.NewCartSnapshotter(carts, users)),
		CatalogService:  cataloguc.NewService(artworks, images),
		CheckoutService: checkoutuc.NewService(time.Millisecond, nil),
		Carts:           carts,
		Images:          images,
		TokenService:    tokens,
	})

	return &testEnv{
		router:   api.Router(),
		artworks: artworks,
		users:    users,
		images:   images,
		tokens:   tokens,
	}
}

func (e *testEnv) seedArtwork(t *testing.T, title, medium string, price float64, genres ...domartwork.Genre) *domartwork.Artwork {
	t.Helper()
	if len(genres) == 0 {
		genres = []domartwork.Genre{domartwork.GenreAbstract}
	}
	a, err := e.artworks.Create(context.Background(), &domartwork.Artwork{
		Title:  title,
		Medium: medium,
		Price:  price,
		Image:  "/images/seed",
		Genres: genres,
	})
	require.NoError(t, err)
	return a
}

func (e *testEnv) seedUser(t *testing.T, email string, admin bool) string {
	t.Helper()
	u, err := e.users.Create(context.Background(), &domuser.User{
		Email:        email,
		PasswordHash: "hash:secret1",
		Admin:        admin,
	})
	require.NoError(t, err)
	token, err := e.tokens.GenerateToken(u)
	require.NoError(t, err)
	return token
}

// session opens a browser session and returns its cookie.
func (e *testEnv) session(t *testing.T) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

type requestOpts struct {
	body    any
	cookie  *http.Cookie
	token   string
	rawBody io.Reader
	rawType string
}

func (e *testEnv) do(t *testing.T, method, path string, opts requestOpts) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	contentType := ""
	if opts.body != nil {
		data, err := json.Marshal(opts.body)
		require.NoError(t, err)
		body = bytes.NewReader(data)
		contentType = "application/json"
	}
	if opts.rawBody != nil {
		body = opts.rawBody
		contentType = opts.rawType
	}

	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if opts.cookie != nil {
		req.AddCookie(opts.cookie)
	}
	if opts.token != "" {
		req.Header.Set("Authorization", "Bearer "+opts.token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	return payload
}
