package artwork

// Artwork is a single listed piece. Fields other than ID are supplied by the
// admin panel on create; ID is assigned by the catalog store.
type Artwork struct {
	ID          int64
	Title       string
	Description string
	Price       float64
	Image       string
	Dimensions  string
	Medium      string
	Genres      []Genre
}

func (a *Artwork) HasGenre(g Genre) bool {
	for _, have := range a.Genres {
		if have == g {
			return true
		}
	}
	return false
}
