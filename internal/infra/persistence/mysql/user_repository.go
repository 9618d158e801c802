package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	dom "example.com/gallery-storefront/internal/domain/user"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *dom.User) (*dom.User, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (email, password_hash, is_admin, cart_snapshot)
         VALUES (?, ?, ?, '[]')`,
		u.Email, u.PasswordHash, u.Admin,
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return nil, dom.ErrEmailAlreadyUsed
		}
		return nil, err
	}
	id, _ := res.LastInsertId()
	u.ID = id
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*dom.User, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, email, password_hash, is_admin
        FROM users
        WHERE id = ?
    `, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*dom.User, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, email, password_hash, is_admin
        FROM users
        WHERE email = ?
    `, email)
	return scanUser(row)
}

func (r *UserRepository) SaveCartSnapshot(ctx context.Context, userID int64, snapshot []byte) error {
	// RowsAffected is not checked here: MySQL reports zero when the stored
	// snapshot already matches, which is not an error for an overwrite.
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET cart_snapshot = ? WHERE id = ?`,
		snapshot, userID,
	)
	return err
}

func scanUser(row *sql.Row) (*dom.User, error) {
	var u dom.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Admin); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dom.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
