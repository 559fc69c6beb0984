package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskflow/internal/apperr"
	"taskflow/internal/model"
	"taskflow/internal/util"
)

// UserStore is the persistence surface the auth flows need.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type AuthService struct {
	users     UserStore
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(users UserStore, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// Register creates a new user. A taken email is a conflict.
func (s *AuthService) Register(ctx context.Context, email, password string) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", apperr.ErrConflict)
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := model.NewUser(email, hash)
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Login checks user credentials and returns a signed token. A missing user
// and a wrong password are deliberately indistinguishable.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("%w: invalid email or password", apperr.ErrUnauthenticated)
	}

	if !util.VerifyPassword(password, u.Password) {
		return "", fmt.Errorf("%w: invalid email or password", apperr.ErrUnauthenticated)
	}

	token, err := util.GenerateJWT(u.Email, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", err
	}

	return token, nil
}
