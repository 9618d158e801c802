package auth

import (
	"context"
	"encoding/json"
	"time"

	log "github.com/sirupsen/logrus"

	domuser "example.com/gallery-storefront/internal/domain/user"
	cartuc "example.com/gallery-storefront/internal/usecase/cart"
)

// CartSnapshotter persists a session's cart to the signed-in user's record.
// It subscribes to SignedIn rather than living on the cart mutation path, so
// the cart store stays free of persistence knowledge. The write is one-way
// and best-effort: failures are logged and swallowed.
type CartSnapshotter struct {
	carts *cartuc.Registry
	users domuser.Repository
}

func NewCartSnapshotter(carts *cartuc.Registry, users domuser.Repository) *CartSnapshotter {
	return &CartSnapshotter{carts: carts, users: users}
}

type snapshotLine struct {
	ArtworkID int64   `json:"artwork_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
}

func (s *CartSnapshotter) Dispatch(event domuser.Event) error {
	signedIn, ok := event.(domuser.SignedIn)
	if !ok {
		return nil
	}

	store := s.carts.Lookup(signedIn.SessionID)
	if store == nil {
		return nil
	}
	lines := store.Lines()
	if len(lines) == 0 {
		return nil
	}

	snapshot := make([]snapshotLine, 0, len(lines))
	for _, line := range lines {
		snapshot = append(snapshot, snapshotLine{
			ArtworkID: line.Artwork.ID,
			Title:     line.Artwork.Title,
			Price:     line.Artwork.Price,
			Quantity:  line.Quantity,
		})
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.users.SaveCartSnapshot(ctx, signedIn.User.ID, data); err != nil {
		log.WithError(err).WithField("user_id", signedIn.User.ID).
			Warn("cart snapshot not saved")
	}
	return nil
}
