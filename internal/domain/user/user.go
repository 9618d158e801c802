package user

// User is a storefront identity. Admin gates the admin panel. The user record
// also carries an overwrite-only cart snapshot column, written on sign-in and
// never read back (see Repository.SaveCartSnapshot).
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Admin        bool
}
