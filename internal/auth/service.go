package auth

import (
	"context"
	"errors"

	"bookreviews/internal/platform/crypto"
	"bookreviews/internal/user"
)

var (
	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so a login failure never reveals whether the account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	secret string
	users  user.Repository
}

func NewService(secret string, users user.Repository) *Service {
	return &Service{secret: secret, users: users}
}

// Register creates an account storing only the bcrypt hash of the password.
// The unique index on username is what makes concurrent registrations of the
// same name safe; the repository maps the violation to user.ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, username, password string) (user.User, error) {
	hashed, err := crypto.HashPassword(password)
	if err != nil {
		return user.User{}, err
	}

	newUser := &user.User{
		Username: username,
		Password: hashed,
	}
	if err := s.users.Create(ctx, newUser); err != nil {
		return user.User{}, err
	}
	return *newUser, nil
}

// Login verifies the credentials and issues a token valid for one hour.
func (s *Service) Login(ctx context.Context, username, password string) (string, user.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", user.User{}, ErrInvalidCredentials
		}
		return "", user.User{}, err
	}
	if !crypto.VerifyPassword(u.Password, password) {
		return "", user.User{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(s.secret, u.ID, crypto.TokenTTL)
	if err != nil {
		return "", user.User{}, err
	}
	return token, u, nil
}
