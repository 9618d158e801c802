package artwork

import "strings"

// Genre is one tag from the fixed gallery vocabulary.
type Genre string

const (
	GenreAbstract      Genre = "Abstract"
	GenreLandscape     Genre = "Landscape"
	GenrePortrait      Genre = "Portrait"
	GenreStillLife     Genre = "Still Life"
	GenreModern        Genre = "Modern"
	GenreContemporary  Genre = "Contemporary"
	GenreImpressionism Genre = "Impressionism"
	GenreRealism       Genre = "Realism"
)

// AllGenres lists the vocabulary in display order.
var AllGenres = []Genre{
	GenreAbstract,
	GenreLandscape,
	GenrePortrait,
	GenreStillLife,
	GenreModern,
	GenreContemporary,
	GenreImpressionism,
	GenreRealism,
}

func (g Genre) IsValid() bool {
	for _, known := range AllGenres {
		if g == known {
			return true
		}
	}
	return false
}

// ParseGenre converts a request/DB string to a Genre, matching the vocabulary
// case-insensitively.
func ParseGenre(s string) (Genre, error) {
	trimmed := strings.TrimSpace(s)
	for _, known := range AllGenres {
		if strings.EqualFold(trimmed, string(known)) {
			return known, nil
		}
	}
	return "", ErrInvalidGenre
}
