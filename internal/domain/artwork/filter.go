package artwork

import "strings"

// ListFilter is the storefront search predicate. An empty Query matches every
// artwork; otherwise the query must appear (case-insensitively) in the title,
// description, or medium. An empty Genre matches every artwork; otherwise the
// genre must be a member of the artwork's genre set.
type ListFilter struct {
	Query string
	Genre Genre
}

func (f ListFilter) Matches(a *Artwork) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(a.Title), q) &&
			!strings.Contains(strings.ToLower(a.Description), q) &&
			!strings.Contains(strings.ToLower(a.Medium), q) {
			return false
		}
	}
	if f.Genre != "" && !a.HasGenre(f.Genre) {
		return false
	}
	return true
}

// Filter returns the artworks matching f, preserving the input order.
func Filter(list []*Artwork, f ListFilter) []*Artwork {
	matched := make([]*Artwork, 0, len(list))
	for _, a := range list {
		if f.Matches(a) {
			matched = append(matched, a)
		}
	}
	return matched
}
