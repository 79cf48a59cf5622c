// file: internals/features/school/exams/controller/exam_controller.go
package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gjc_backend/internals/constants"
	"gjc_backend/internals/features/school/exams/dto"
	"gjc_backend/internals/features/school/exams/model"
	"gjc_backend/internals/features/school/exams/service"
	studentModel "gjc_backend/internals/features/school/students/model"
	helper "gjc_backend/internals/helpers"
)

type ExamController struct {
	DB *gorm.DB
}

func NewExamController(db *gorm.DB) *ExamController {
	return &ExamController{DB: db}
}

var validate = validator.New()

/* ===================== SUBJECTS ===================== */
// GET /api/exams/subjects/:group
func (ctrl *ExamController) SubjectsForGroup(c *fiber.Ctx) error {
	group := c.Params("group")
	subjects := constants.SubjectsForGroup(group)
	if subjects == nil {
		return helper.JsonError(c, fiber.StatusNotFound, fmt.Sprintf("No subjects found for group %s", group))
	}
	return helper.JsonOK(c, "ok", dto.GroupSubjectsResponse{Group: group, Subjects: subjects})
}

/* ===================== LIST ===================== */
// GET /api/exams?student_id=&admission_number=&year=&group=&exam_type=&limit=&skip=
func (ctrl *ExamController) List(c *fiber.Ctx) error {
	var filter dto.FilterExamRequest
	if err := c.QueryParser(&filter); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := validate.Struct(filter); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if filter.Limit <= 0 {
		filter.Limit = 100
	}

	q := ctrl.DB.Model(&model.ExamModel{})
	if filter.StudentID != nil {
		q = q.Where("student_id = ?", *filter.StudentID)
	}
	if filter.AdmissionNumber != nil {
		q = q.Where("admission_number = ?", *filter.AdmissionNumber)
	}
	if filter.Year != nil {
		q = q.Where("year = ?", *filter.Year)
	}
	if filter.Group != nil {
		q = q.Where("\"group\" = ?", *filter.Group)
	}
	if filter.ExamType != nil {
		q = q.Where("exam_type = ?", *filter.ExamType)
	}

	var exams []model.ExamModel
	if err := q.Order("created_at DESC").Offset(filter.Skip).Limit(filter.Limit).Find(&exams).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.ExamResponse, 0, len(exams))
	for _, e := range exams {
		resp = append(resp, dto.NewExamResponse(e))
	}
	return helper.JsonOK(c, "ok", resp)
}

/* ===================== DETAIL ===================== */
// GET /api/exams/:id
func (ctrl *ExamController) GetByID(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam ID format")
	}

	var exam model.ExamModel
	if err := ctrl.DB.First(&exam, "id = ?", examID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.NewExamResponse(exam))
}

/* ===================== PER-STUDENT ===================== */
// GET /api/exams/student/:student_id
func (ctrl *ExamController) StudentExams(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID format")
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var exams []model.ExamModel
	if err := ctrl.DB.Where("student_id = ?", studentID).
		Order("created_at DESC").Find(&exams).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	summary := dto.StudentExamsSummary{
		StudentID:       student.ID,
		StudentName:     student.Name,
		AdmissionNumber: student.AdmissionNumber,
		Group:           student.Group,
		Exams:           make([]dto.ExamResponse, 0, len(exams)),
	}
	for _, e := range exams {
		summary.Exams = append(summary.Exams, dto.NewExamResponse(e))
	}
	return helper.JsonOK(c, "ok", summary)
}

/* ===================== CREATE ===================== */
// POST /api/exams
func (ctrl *ExamController) Create(c *fiber.Ctx) error {
	var req dto.CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "id = ?", req.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Satu record per (student, exam_type)
	var count int64
	if err := ctrl.DB.Model(&model.ExamModel{}).
		Where("student_id = ? AND exam_type = ?", req.StudentID, req.ExamType).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Exam record for %s already exists for this student", req.ExamType))
	}

	totalMarks, percentage := service.CalcExamStats(req.Subjects)
	subjectsJSON, err := dto.SubjectsToJSON(req.Subjects)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Subjects tidak valid")
	}

	exam := model.ExamModel{
		StudentID:       student.ID,
		StudentName:     student.Name,
		AdmissionNumber: student.AdmissionNumber,
		Year:            student.Year,
		Group:           student.Group,
		ExamType:        req.ExamType,
		Subjects:        subjectsJSON,
		TotalMarks:      totalMarks,
		Percentage:      percentage,
	}
	if err := ctrl.DB.Create(&exam).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat exam record")
	}
	return helper.JsonCreated(c, "Exam created", dto.NewExamResponse(exam))
}

/* ===================== UPDATE ===================== */
// PUT /api/exams/:id — ganti marks, hitung ulang total/persentase
func (ctrl *ExamController) Update(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam ID format")
	}

	var req dto.UpdateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var exam model.ExamModel
	if err := ctrl.DB.First(&exam, "id = ?", examID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	totalMarks, percentage := service.CalcExamStats(req.Subjects)
	subjectsJSON, err := dto.SubjectsToJSON(req.Subjects)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Subjects tidak valid")
	}

	if err := ctrl.DB.Model(&exam).Updates(map[string]any{
		"subjects":    subjectsJSON,
		"total_marks": totalMarks,
		"percentage":  percentage,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update exam record")
	}

	if err := ctrl.DB.First(&exam, "id = ?", examID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Exam updated", dto.NewExamResponse(exam))
}

/* ===================== DELETE ===================== */
// DELETE /api/exams/:id
func (ctrl *ExamController) Delete(c *fiber.Ctx) error {
	examID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam ID format")
	}

	var exam model.ExamModel
	if err := ctrl.DB.First(&exam, "id = ?", examID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.Delete(&exam).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus exam record")
	}
	return helper.JsonDeleted(c, "Exam deleted", nil)
}
