// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gjc_backend/internals/constants"
	"gjc_backend/internals/features/users/user/dto"
	"gjc_backend/internals/features/users/user/model"
	helper "gjc_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

// GET /api/users — semua user (principal only)
func (ctrl *UserController) List(c *fiber.Ctx) error {
	var users []model.UserModel
	if err := ctrl.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.NewUserResponse(u))
	}
	return helper.JsonOK(c, "ok", resp)
}

// POST /api/users
func (ctrl *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var count int64
	if err := ctrl.DB.Model(&model.UserModel{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username already exists")
	}
	if err := ctrl.DB.Model(&model.UserModel{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email already in use")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	user := model.UserModel{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Role:     req.Role,
	}
	user.SetDefaultValues()

	if err := ctrl.DB.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}
	return helper.JsonCreated(c, "User created successfully", dto.NewUserResponse(user))
}

// PUT /api/users/:id — ganti role
func (ctrl *UserController) UpdateRole(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID format")
	}

	var req dto.UpdateUserRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	user.Role = req.Role
	if err := ctrl.DB.Model(&user).Update("role", req.Role).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update role")
	}
	return helper.JsonUpdated(c, "Role updated", dto.NewUserResponse(user))
}

// PUT /api/users/:id/password
func (ctrl *UserController) UpdatePassword(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID format")
	}

	var req dto.UpdateUserPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}
	if err := ctrl.DB.Model(&user).Update("password", string(hashed)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update password")
	}
	return helper.JsonUpdated(c, "Password updated", nil)
}

// DELETE /api/users/:id
func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID format")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.Delete(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus user")
	}
	// Ikut bersihkan permissions kalau ada
	ctrl.DB.Where("user_id = ?", userID).Delete(&model.UserPermissionModel{})

	return helper.JsonDeleted(c, "User deleted", nil)
}

// GET /api/users/:id/permissions
func (ctrl *UserController) GetPermissions(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID format")
	}

	var perm model.UserPermissionModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&perm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Belum pernah diset → default semua false
			return helper.JsonOK(c, "ok", dto.UserPermissionsResponse{UserID: userID})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.NewUserPermissionsResponse(perm))
}

// PUT /api/users/:id/permissions — hanya untuk user ber-role staff
func (ctrl *UserController) SetPermissions(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID format")
	}

	var req dto.UserPermissionsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if user.Role != constants.RoleStaff {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permissions can only be set for staff users")
	}

	perm := model.UserPermissionModel{
		UserID:           userID,
		CanAddStudent:    req.CanAddStudent,
		CanEditStudent:   req.CanEditStudent,
		CanDeleteStudent: req.CanDeleteStudent,
	}
	// Upsert per user_id
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"can_add_student", "can_edit_student", "can_delete_student", "updated_at"}),
	}).Create(&perm).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal simpan permissions")
	}

	return helper.JsonUpdated(c, "Permissions updated", dto.NewUserPermissionsResponse(perm))
}
