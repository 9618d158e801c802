package auth

import (
	"context"
	"strings"

	domuser "example.com/gallery-storefront/internal/domain/user"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

type Claims struct {
	UserID int64
	Email  string
	Admin  bool
}

type TokenService interface {
	GenerateToken(u *domuser.User) (string, error)
	ParseToken(token string) (*Claims, error)
}

type Service struct {
	userRepo domuser.Repository
	hasher   PasswordHasher
	tokens   TokenService
	events   domuser.EventDispatcher
}

// NewService wires the auth delegate. events may be nil when nothing listens
// for sign-in.
func NewService(
	userRepo domuser.Repository,
	hasher PasswordHasher,
	tokens TokenService,
	events domuser.EventDispatcher,
) *Service {
	return &Service{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		events:   events,
	}
}

type Credentials struct {
	Email    string
	Password string
	// SessionID scopes the browser session whose cart gets snapshotted once
	// the identity is available.
	SessionID string
}

type Result struct {
	Token string
	User  *domuser.User
}

// SignUp creates a non-admin account and signs it in.
func (s *Service) SignUp(ctx context.Context, in Credentials) (*Result, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, domuser.ErrInvalidCredential
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u, err := s.userRepo.Create(ctx, &domuser.User{
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	return s.issue(u, in.SessionID)
}

func (s *Service) SignIn(ctx context.Context, in Credentials) (*Result, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, domuser.ErrInvalidCredential
	}

	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, domuser.ErrUnauthorized
	}

	if err := s.hasher.Compare(u.PasswordHash, in.Password); err != nil {
		return nil, domuser.ErrUnauthorized
	}

	return s.issue(u, in.SessionID)
}

// issue mints the token and announces that an identity became available.
// Event handlers run best-effort; their errors never fail the sign-in.
func (s *Service) issue(u *domuser.User, sessionID string) (*Result, error) {
	token, err := s.tokens.GenerateToken(u)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		_ = s.events.Dispatch(domuser.SignedIn{User: *u, SessionID: sessionID})
	}

	return &Result{Token: token, User: u}, nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
