package dto

import "github.com/eaglebank/eagle-bank/internal/domain/entity"

// RegisterRequest represents the API request for creating a user
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the API request for authenticating
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public-safe view of a user: no hash, ever
type UserResponse struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// LoginResponse carries the bearer credential issued at login
type LoginResponse struct {
	ID    uint64 `json:"id"`
	Token string `json:"token"`
}

// FromUser converts a user entity to its API response
func FromUser(user *entity.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
	}
}
