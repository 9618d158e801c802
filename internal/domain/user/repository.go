package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)

	// SaveCartSnapshot overwrites the stored cart field on the user's record.
	// Best-effort, one-way: there is no read-back or merge.
	SaveCartSnapshot(ctx context.Context, userID int64, snapshot []byte) error
}
