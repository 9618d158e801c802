package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	dom "example.com/gallery-storefront/internal/domain/artwork"
)

// ImageStore keeps artwork image blobs in Postgres, playing the role of the
// object-storage service the catalog depends on. Keys are the opaque object
// names minted on upload.
type ImageStore struct {
	pool *pgxpool.Pool
}

func NewImageStore(pool *pgxpool.Pool) *ImageStore {
	return &ImageStore{pool: pool}
}

func (s *ImageStore) Put(ctx context.Context, key string, contentType string, data []byte) error {
	_, err := s.pool.Exec(ctx, `
        INSERT INTO images (key, content_type, data)
        VALUES ($1, $2, $3)
    `, key, contentType, data)
	return err
}

func (s *ImageStore) Get(ctx context.Context, key string) (contentType string, data []byte, err error) {
	row := s.pool.QueryRow(ctx, `
        SELECT content_type, data FROM images WHERE key = $1
    `, key)
	if err := row.Scan(&contentType, &data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil, dom.ErrImageNotFound
		}
		return "", nil, err
	}
	return contentType, data, nil
}
