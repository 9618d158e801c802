package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	dom "example.com/gallery-storefront/internal/domain/artwork"
)

type ArtworkRepository struct {
	db *sql.DB
}

func NewArtworkRepository(db *sql.DB) *ArtworkRepository {
	return &ArtworkRepository{db: db}
}

func (r *ArtworkRepository) Create(ctx context.Context, a *dom.Artwork) (*dom.Artwork, error) {
	res, err := r.db.ExecContext(ctx, `
        INSERT INTO artworks (title, description, price, image, dimensions, medium, genres)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `, a.Title, a.Description, a.Price, a.Image, a.Dimensions, a.Medium, joinGenres(a.Genres))
	if err != nil {
		return nil, err
	}
	a.ID, _ = res.LastInsertId()
	return a, nil
}

func (r *ArtworkRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM artworks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return dom.ErrArtworkNotFound
	}
	return nil
}

func (r *ArtworkRepository) GetByID(ctx context.Context, id int64) (*dom.Artwork, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, title, description, price, image, dimensions, medium, genres
        FROM artworks
        WHERE id = ?
    `, id)

	a, err := scanArtwork(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dom.ErrArtworkNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *ArtworkRepository) List(ctx context.Context) ([]*dom.Artwork, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, title, description, price, image, dimensions, medium, genres
        FROM artworks
        ORDER BY id
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var artworks []*dom.Artwork
	for rows.Next() {
		a, err := scanArtwork(rows.Scan)
		if err != nil {
			return nil, err
		}
		artworks = append(artworks, a)
	}
	return artworks, rows.Err()
}

func scanArtwork(scan func(dest ...any) error) (*dom.Artwork, error) {
	var a dom.Artwork
	var genres string
	err := scan(&a.ID, &a.Title, &a.Description, &a.Price, &a.Image, &a.Dimensions, &a.Medium, &genres)
	if err != nil {
		return nil, err
	}
	a.Genres = splitGenres(genres)
	return &a, nil
}

// Genres are stored as a comma-joined list; the vocabulary contains no commas.
func joinGenres(genres []dom.Genre) string {
	parts := make([]string, 0, len(genres))
	for _, g := range genres {
		parts = append(parts, string(g))
	}
	return strings.Join(parts, ",")
}

func splitGenres(s string) []dom.Genre {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	genres := make([]dom.Genre, 0, len(parts))
	for _, p := range parts {
		genres = append(genres, dom.Genre(p))
	}
	return genres
}
