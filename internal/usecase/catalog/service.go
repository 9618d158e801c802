package catalog

import (
	"context"

	"github.com/google/uuid"

	dom "example.com/gallery-storefront/internal/domain/artwork"
)

// ImageStore is the blob store for artwork images. Keys are opaque object
// names; the stored image is served back at /images/{key}.
type ImageStore interface {
	Put(ctx context.Context, key string, contentType string, data []byte) error
}

type Service struct {
	repo   dom.Repository
	images ImageStore
}

func NewService(repo dom.Repository, images ImageStore) *Service {
	return &Service{repo: repo, images: images}
}

// List fetches the full catalog and applies the search/genre predicate in
// memory, preserving the stored order.
func (s *Service) List(ctx context.Context, filter dom.ListFilter) ([]*dom.Artwork, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dom.Filter(all, filter), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*dom.Artwork, error) {
	return s.repo.GetByID(ctx, id)
}

type CreateInput struct {
	Title       string
	Description string
	Price       float64
	Dimensions  string
	Medium      string
	Genres      []string
	Image       []byte
	ImageType   string
}

// Create uploads the image blob under a fresh object key and then inserts the
// listing with the served image URL. A missing image or an unknown genre
// rejects the whole submission with nothing stored.
func (s *Service) Create(ctx context.Context, in CreateInput) (*dom.Artwork, error) {
	if len(in.Image) == 0 {
		return nil, dom.ErrImageRequired
	}
	if in.Price < 0 {
		return nil, dom.ErrInvalidPrice
	}
	if len(in.Genres) == 0 {
		return nil, dom.ErrNoGenres
	}
	genres := make([]dom.Genre, 0, len(in.Genres))
	for _, raw := range in.Genres {
		g, err := dom.ParseGenre(raw)
		if err != nil {
			return nil, err
		}
		genres = append(genres, g)
	}

	key := uuid.NewString()
	if err := s.images.Put(ctx, key, in.ImageType, in.Image); err != nil {
		return nil, err
	}

	a := &dom.Artwork{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Image:       "/images/" + key,
		Dimensions:  in.Dimensions,
		Medium:      in.Medium,
		Genres:      genres,
	}
	return s.repo.Create(ctx, a)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
