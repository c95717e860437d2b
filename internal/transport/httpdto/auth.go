package httpdto

import (
	"lites-backend/internal/domain"
)

// AuthAction enumerates the recognized auth operations.
type AuthAction string

const (
	AuthActionRegister AuthAction = "register"
	AuthActionLogin    AuthAction = "login"
)

// AuthRequest is the POST body for the auth endpoint; the action field
// selects which of the other fields apply.
type AuthRequest struct {
	Action      string `json:"action"`
	Phone       string `json:"phone"`
	Nickname    string `json:"nickname"`
	Username    string `json:"username"`
	AvatarType  string `json:"avatar_type"`
	AvatarValue string `json:"avatar_value"`
}

type UserDTO struct {
	ID          int64  `json:"id"`
	Phone       string `json:"phone"`
	Nickname    string `json:"nickname"`
	Username    string `json:"username"`
	AvatarType  string `json:"avatar_type"`
	AvatarValue string `json:"avatar_value"`
	IsPremium   bool   `json:"is_premium"`
}

type UserResponse struct {
	Success bool    `json:"success"`
	User    UserDTO `json:"user"`
}

func NewUserResponse(u domain.User) UserResponse {
	return UserResponse{
		Success: true,
		User: UserDTO{
			ID:          u.ID,
			Phone:       u.Phone,
			Nickname:    u.Nickname,
			Username:    u.Username,
			AvatarType:  u.AvatarType,
			AvatarValue: u.AvatarValue,
			IsPremium:   u.IsPremium,
		},
	}
}
