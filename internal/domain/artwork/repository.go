package artwork

import "context"

// Repository is the catalog store. Search and genre filtering happen in memory
// over the full list (see ListFilter), so List takes no filter arguments.
type Repository interface {
	Create(ctx context.Context, a *Artwork) (*Artwork, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Artwork, error)
	List(ctx context.Context) ([]*Artwork, error)
}
