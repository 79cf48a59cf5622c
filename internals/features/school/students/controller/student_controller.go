// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gjc_backend/internals/features/school/students/dto"
	"gjc_backend/internals/features/school/students/model"
	helper "gjc_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validate = validator.New()

/* ===================== LIST ===================== */
// GET /api/students?year=&group=&medium=&limit=&skip=
func (ctrl *StudentController) List(c *fiber.Ctx) error {
	var filter dto.FilterStudentRequest
	if err := c.QueryParser(&filter); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := validate.Struct(filter); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if filter.Limit <= 0 {
		filter.Limit = 100
	}

	q := ctrl.DB.Model(&model.StudentModel{})
	if filter.Year != nil {
		q = q.Where("year = ?", *filter.Year)
	}
	if filter.Group != nil {
		q = q.Where("\"group\" = ?", *filter.Group)
	}
	if filter.Medium != nil {
		q = q.Where("medium = ?", *filter.Medium)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var students []model.StudentModel
	if err := q.Offset(filter.Skip).Limit(filter.Limit).Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.StudentResponse, 0, len(students))
	for _, s := range students {
		resp = append(resp, dto.NewStudentResponse(s))
	}
	return helper.JsonList(c, "ok", resp, total)
}

/* ===================== DETAIL ===================== */
// GET /api/students/:id
func (ctrl *StudentController) GetByID(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID format")
	}

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.NewStudentResponse(student))
}

/* ===================== CREATE ===================== */
// POST /api/students
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Nomor admisi & Aadhar harus unik
	var count int64
	if err := ctrl.DB.Model(&model.StudentModel{}).
		Where("admission_number = ?", req.AdmissionNumber).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student with this admission number already exists")
	}
	if req.AadharNumber != "" {
		if err := ctrl.DB.Model(&model.StudentModel{}).
			Where("aadhar_number = ?", req.AadharNumber).Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Student with this Aadhar number already exists")
		}
	}

	student := req.ToModel()
	if err := ctrl.DB.Create(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat student")
	}
	return helper.JsonCreated(c, "Student created", dto.NewStudentResponse(student))
}

/* ===================== UPDATE ===================== */
// PUT /api/students/:id (partial)
func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID format")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]any{}
	if req.AdmissionNumber != nil && *req.AdmissionNumber != student.AdmissionNumber {
		var count int64
		if err := ctrl.DB.Model(&model.StudentModel{}).
			Where("admission_number = ? AND id <> ?", *req.AdmissionNumber, studentID).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Student with this admission number already exists")
		}
		updates["admission_number"] = *req.AdmissionNumber
	}
	if req.AadharNumber != nil && *req.AadharNumber != student.AadharNumber {
		var count int64
		if err := ctrl.DB.Model(&model.StudentModel{}).
			Where("aadhar_number = ? AND id <> ?", *req.AadharNumber, studentID).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Student with this Aadhar number already exists")
		}
		updates["aadhar_number"] = *req.AadharNumber
	}
	if req.Year != nil {
		updates["year"] = *req.Year
	}
	if req.Group != nil {
		updates["group"] = *req.Group
	}
	if req.Medium != nil {
		updates["medium"] = *req.Medium
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.FatherName != nil {
		updates["father_name"] = *req.FatherName
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_of_birth tidak valid")
		}
		updates["date_of_birth"] = dob
	}
	if req.Caste != nil {
		updates["caste"] = *req.Caste
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.StudentPhone != nil {
		updates["student_phone"] = *req.StudentPhone
	}
	if req.ParentPhone != nil {
		updates["parent_phone"] = *req.ParentPhone
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&student).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update student")
		}
	}

	if err := ctrl.DB.First(&student, "id = ?", studentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Student updated", dto.NewStudentResponse(student))
}

/* ===================== DELETE ===================== */
// DELETE /api/students/:id
func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID format")
	}

	var student model.StudentModel
	if err := ctrl.DB.First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.Delete(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus student")
	}
	return helper.JsonDeleted(c, "Student deleted", nil)
}
