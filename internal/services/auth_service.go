// Package services contains the business operations behind the HTTP handlers.
package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"lites-backend/internal/domain"
	"lites-backend/internal/repository"
	lites_errors "lites-backend/pkg/errors"
)

// AuthService registers users and logs them in. There is no credential
// check: the phone number alone identifies a user.
type AuthService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

type RegisterInput struct {
	Phone       string
	Nickname    string
	Username    string
	AvatarType  string
	AvatarValue string
}

// Register creates a user and returns the stored row. A duplicate phone is
// not pre-checked; the storage constraint error propagates.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	if in.AvatarType == "" {
		in.AvatarType = domain.DefaultAvatarType
	}
	if in.AvatarValue == "" {
		in.AvatarValue = domain.DefaultAvatarValue
	}

	u := domain.User{
		Phone:       in.Phone,
		Nickname:    in.Nickname,
		Username:    in.Username,
		AvatarType:  in.AvatarType,
		AvatarValue: in.AvatarValue,
	}
	if err := s.users.Create(ctx, &u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// Login looks the user up by phone and stamps last_online.
func (s *AuthService) Login(ctx context.Context, phone string) (domain.User, error) {
	u, err := s.users.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, lites_errors.ErrNotFound) {
			return domain.User{}, lites_errors.ErrUserNotFound
		}
		return domain.User{}, err
	}
	if err := s.users.TouchLastOnline(ctx, u.ID, time.Now()); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// HTTPStatus maps service errors to response status codes.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, lites_errors.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, lites_errors.ErrNotFound), errors.Is(err, lites_errors.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, lites_errors.ErrAlreadyExists), errors.Is(err, lites_errors.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
