// file: internals/features/school/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gjc_backend/internals/features/school/attendance/dto"
	m "gjc_backend/internals/features/school/attendance/model"
	"gjc_backend/internals/features/school/attendance/service"
	helper "gjc_backend/internals/helpers"
)

type AttendanceController struct {
	DB      *gorm.DB
	Service *service.AttendanceService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:      db,
		Service: service.NewAttendanceService(db),
	}
}

var validate = validator.New()

// actorUsername: identitas penulis dari claims (diisi AuthMiddleware)
func actorUsername(c *fiber.Ctx) string {
	if username, ok := c.Locals("username").(string); ok && username != "" {
		return username
	}
	return "system"
}

/* ===================== WORKING DAYS ===================== */

// POST /api/attendance/working-days (principal only)
func (ctrl *AttendanceController) SetWorkingDays(c *fiber.Ctx) error {
	var req dto.SetWorkingDaysRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	record, cascade, err := ctrl.Service.SetWorkingDays(req.AcademicYear, req.Month, req.WorkingDays, actorUsername(c))
	if err != nil {
		if errors.Is(err, service.ErrInvalidMonth) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Bulan tidak valid")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.SetWorkingDaysResponse{
		WorkingDaysResponse: dto.NewWorkingDaysResponse(record),
		CascadeUpdated:      cascade.Updated,
		CascadeFailed:       cascade.Failed,
	}
	message := fmt.Sprintf("Working days tersimpan, %d record siswa di-update", cascade.Updated)
	if cascade.Failed > 0 {
		message = fmt.Sprintf("Working days tersimpan, %d record di-update, %d gagal", cascade.Updated, cascade.Failed)
	}
	return helper.JsonOK(c, message, resp)
}

// GET /api/attendance/working-days/:academic_year/:month
func (ctrl *AttendanceController) GetWorkingDays(c *fiber.Ctx) error {
	academicYear := c.Params("academic_year")
	month := c.Params("month")
	if !m.IsValidMonth(month) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Bulan tidak valid")
	}

	workingDays, err := ctrl.Service.GetWorkingDays(academicYear, month)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"academic_year": academicYear,
		"month":         month,
		"working_days":  workingDays,
	})
}

/* ===================== LEDGER ===================== */

// PUT /api/attendance/student/:student_id/:academic_year/:month
func (ctrl *AttendanceController) RecordAttendance(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student ID tidak valid")
	}
	academicYear := c.Params("academic_year")
	month := c.Params("month")

	var req dto.RecordAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	row, err := ctrl.Service.RecordAttendance(studentID, academicYear, month, req.DaysPresent, actorUsername(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		case errors.Is(err, service.ErrInvalidMonth):
			return helper.JsonError(c, fiber.StatusBadRequest, "Bulan tidak valid")
		case errors.Is(err, service.ErrNegativeDaysPresent),
			errors.Is(err, service.ErrDaysExceedWorkingDays):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonUpdated(c, "Kehadiran tersimpan", dto.NewAttendanceResponse(row))
}

// GET /api/attendance/student/:student_id/:academic_year/:month
func (ctrl *AttendanceController) GetStudentAttendance(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student ID tidak valid")
	}
	academicYear := c.Params("academic_year")
	month := c.Params("month")
	if !m.IsValidMonth(month) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Bulan tidak valid")
	}

	summary, err := ctrl.Service.GetStudentAttendance(studentID, academicYear, month)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", summary)
}

/* ===================== AGGREGATION ===================== */

// GET /api/attendance/class/:year/:group/:academic_year/:month
func (ctrl *AttendanceController) GetClassAttendance(c *fiber.Ctx) error {
	classYear, err := c.ParamsInt("year")
	if err != nil || classYear < 1 || classYear > 2 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Year harus 1 atau 2")
	}
	group := c.Params("group")
	academicYear := c.Params("academic_year")
	month := c.Params("month")
	if !m.IsValidMonth(month) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Bulan tidak valid")
	}

	summary, err := ctrl.Service.GetClassAttendance(classYear, group, academicYear, month)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", summary)
}

// GET /api/attendance/low-attendance/:academic_year/:month?threshold=&year=&group=
func (ctrl *AttendanceController) GetLowAttendance(c *fiber.Ctx) error {
	academicYear := c.Params("academic_year")
	month := c.Params("month")
	if !m.IsValidMonth(month) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Bulan tidak valid")
	}

	var filter dto.LowAttendanceFilterRequest
	if err := c.QueryParser(&filter); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := validate.Struct(filter); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	students, err := ctrl.Service.GetLowAttendance(academicYear, month, filter.Threshold, filter.Year, filter.Group)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.LowAttendanceResponse{
		AcademicYear: academicYear,
		Month:        month,
		Threshold:    filter.Threshold,
		Students:     students,
	}
	return helper.JsonOK(c, "OK", resp)
}
