// file: internals/features/home/dashboard/controller/dashboard_controller.go
package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gjc_backend/internals/constants"
	facultyModel "gjc_backend/internals/features/school/faculty/model"
	studentModel "gjc_backend/internals/features/school/students/model"
	userModel "gjc_backend/internals/features/users/user/model"
	helper "gjc_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/dashboard/principal
// Ringkasan angka untuk halaman utama principal
func (ctrl *DashboardController) Principal(c *fiber.Ctx) error {
	var totalUsers, totalStaff, totalStudentAccounts int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).Count(&totalUsers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("role = ?", constants.RoleStaff).Count(&totalStaff).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("role = ?", constants.RoleStudent).Count(&totalStudentAccounts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var totalStudents, totalFaculty int64
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).Count(&totalStudents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctrl.DB.Model(&facultyModel.FacultyModel{}).Count(&totalFaculty).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var totalDepartments int64
	if err := ctrl.DB.Model(&facultyModel.FacultyModel{}).
		Distinct("department").Count(&totalDepartments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"total_users":            totalUsers,
		"total_staff_accounts":   totalStaff,
		"total_student_accounts": totalStudentAccounts,
		"total_students":         totalStudents,
		"total_faculty":          totalFaculty,
		"total_departments":      totalDepartments,
	})
}

// GET /api/dashboard/staff
func (ctrl *DashboardController) Staff(c *fiber.Ctx) error {
	username, _ := c.Locals("username").(string)
	role, _ := c.Locals("userRole").(string)

	return helper.JsonOK(c, "OK", fiber.Map{
		"message":  fmt.Sprintf("Selamat datang, %s", username),
		"username": username,
		"role":     role,
	})
}
