package artwork

import "errors"

var (
	ErrArtworkNotFound = errors.New("artwork not found")
	ErrImageNotFound   = errors.New("image not found")
	ErrImageRequired   = errors.New("an image is required")
	ErrInvalidGenre    = errors.New("unknown genre")
	ErrNoGenres        = errors.New("at least one genre is required")
	ErrInvalidPrice    = errors.New("price must not be negative")
)
