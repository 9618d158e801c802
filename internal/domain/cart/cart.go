package cart

import domartwork "example.com/gallery-storefront/internal/domain/artwork"

// Line is one cart entry. Its identity is the artwork ID: a cart holds at
// most one line per artwork, and Quantity is at least 1 while the line exists.
type Line struct {
	Artwork  domartwork.Artwork
	Quantity int64
}

func (l Line) Subtotal() float64 {
	return l.Artwork.Price * float64(l.Quantity)
}

// Total sums price times quantity over the given lines. Callers recompute it
// from current lines on every read; it is never stored.
func Total(lines []Line) float64 {
	var total float64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}
