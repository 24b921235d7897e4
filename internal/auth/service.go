package auth

import (
	"context"
	"errors"
	"time"

	"libcatalog/internal/httpx"
	"libcatalog/internal/user"
)

// ErrUnauthorized is returned for bad credentials. It deliberately does not
// distinguish unknown username from wrong password.
var ErrUnauthorized = errors.New("unauthorized")

const tokenTTL = 24 * time.Hour

// Service handles account registration and login.
type Service struct {
	secret string
	users  *user.Service
}

func NewService(secret string, users *user.Service) *Service {
	return &Service{secret: secret, users: users}
}

// Register creates an account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, username, password string, isAdmin bool) (user.User, error) {
	if err := ValidatePasswordStrength(password); err != nil {
		return user.User{}, err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return user.User{}, err
	}
	u := user.User{Username: username, Password: hash, IsAdmin: isAdmin}
	if err := s.users.Create(ctx, &u); err != nil {
		return user.User{}, err
	}
	return u, nil
}

// Login verifies credentials and issues a session token.
func (s *Service) Login(ctx context.Context, username, password string) (string, user.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil || !VerifyPassword(u.Password, password) {
		return "", user.User{}, ErrUnauthorized
	}

	token, err := GenerateToken(s.secret, u.ID, roleFor(u), tokenTTL)
	if err != nil {
		return "", user.User{}, err
	}
	return token, u, nil
}

// CurrentUser resolves the account behind a token subject.
func (s *Service) CurrentUser(ctx context.Context, userID string) (user.User, error) {
	return s.users.GetByID(ctx, userID)
}

func roleFor(u user.User) string {
	if u.IsAdmin {
		return httpx.RoleAdmin
	}
	return httpx.RoleMember
}
