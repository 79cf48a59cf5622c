// file: internals/features/school/faculty/controller/faculty_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gjc_backend/internals/features/school/faculty/dto"
	"gjc_backend/internals/features/school/faculty/model"
	helper "gjc_backend/internals/helpers"
)

type FacultyController struct {
	DB *gorm.DB
}

func NewFacultyController(db *gorm.DB) *FacultyController {
	return &FacultyController{DB: db}
}

var validate = validator.New()

// GET /api/faculty — publik, urut nama
func (ctrl *FacultyController) List(c *fiber.Ctx) error {
	var members []model.FacultyModel
	if err := ctrl.DB.Order("name ASC").Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.FacultyResponse, 0, len(members))
	for _, f := range members {
		resp = append(resp, dto.NewFacultyResponse(f))
	}
	return helper.JsonOK(c, "ok", resp)
}

// POST /api/faculty (principal)
func (ctrl *FacultyController) Create(c *fiber.Ctx) error {
	var req dto.CreateFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	faculty := req.ToModel()
	if err := ctrl.DB.Create(&faculty).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat faculty")
	}
	return helper.JsonCreated(c, "Faculty created", dto.NewFacultyResponse(faculty))
}

// PUT /api/faculty/:id (principal, partial)
func (ctrl *FacultyController) Update(c *fiber.Ctx) error {
	facultyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid faculty ID format")
	}

	var req dto.UpdateFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var faculty model.FacultyModel
	if err := ctrl.DB.First(&faculty, "id = ?", facultyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Faculty member not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.Department != nil {
		updates["department"] = *req.Department
	}
	if req.Education != nil {
		updates["education"] = *req.Education
	}
	if req.Experience != nil {
		updates["experience"] = *req.Experience
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&faculty).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update faculty")
		}
	}

	if err := ctrl.DB.First(&faculty, "id = ?", facultyID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Faculty updated", dto.NewFacultyResponse(faculty))
}

// DELETE /api/faculty/:id (principal)
func (ctrl *FacultyController) Delete(c *fiber.Ctx) error {
	facultyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid faculty ID format")
	}

	var faculty model.FacultyModel
	if err := ctrl.DB.First(&faculty, "id = ?", facultyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Faculty member not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.Delete(&faculty).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus faculty")
	}
	return helper.JsonDeleted(c, "Faculty deleted", nil)
}
