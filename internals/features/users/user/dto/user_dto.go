// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "gjc_backend/internals/features/users/user/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=student staff principal"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=student staff principal"`
}

type UpdateUserPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

type UserPermissionsRequest struct {
	CanAddStudent    bool `json:"can_add_student"`
	CanEditStudent   bool `json:"can_edit_student"`
	CanDeleteStudent bool `json:"can_delete_student"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type UserPermissionsResponse struct {
	UserID           uuid.UUID `json:"user_id"`
	CanAddStudent    bool      `json:"can_add_student"`
	CanEditStudent   bool      `json:"can_edit_student"`
	CanDeleteStudent bool      `json:"can_delete_student"`
}

func NewUserResponse(u userModel.UserModel) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func NewUserPermissionsResponse(p userModel.UserPermissionModel) UserPermissionsResponse {
	return UserPermissionsResponse{
		UserID:           p.UserID,
		CanAddStudent:    p.CanAddStudent,
		CanEditStudent:   p.CanEditStudent,
		CanDeleteStudent: p.CanDeleteStudent,
	}
}
