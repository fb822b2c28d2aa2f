package dto

import (
	"github.com/saiharsha-plivo/money-manager/internal/core/domain"
)

// RegisterUserRequest defines the data required to register a new user.
type RegisterUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// UpdateUserRoleRequest defines the data for changing a user's role.
// The userrole rule rejects values outside the closed role set at the
// binding layer; the service validates again before persisting.
type UpdateUserRoleRequest struct {
	Role domain.UserRole `json:"role" binding:"required,userrole"`
}

// UserResponse is the API representation of a user.
type UserResponse struct {
	UserID   string          `json:"userID"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Role     domain.UserRole `json:"role"`
	Verified bool            `json:"verified"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		Verified: user.Verified,
	}
}
