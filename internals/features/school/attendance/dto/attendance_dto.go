// file: internals/features/school/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "gjc_backend/internals/features/school/attendance/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type SetWorkingDaysRequest struct {
	AcademicYear string `json:"academic_year" validate:"required,max=20"`
	Month        string `json:"month" validate:"required,oneof=january february march april may june july august september october november december"`
	WorkingDays  int    `json:"working_days" validate:"min=0"`
}

type RecordAttendanceRequest struct {
	DaysPresent int `json:"days_present" validate:"min=0"`
}

// Filter low-attendance (query)
type LowAttendanceFilterRequest struct {
	Threshold float64 `query:"threshold" validate:"required,min=0,max=100"`
	Year      *int    `query:"year" validate:"omitempty,min=1,max=2"`
	Group     *string `query:"group" validate:"omitempty,oneof=mpc bipc cec hec thm oas mphw other"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type WorkingDaysResponse struct {
	AcademicYear string    `json:"academic_year"`
	Month        string    `json:"month"`
	WorkingDays  int       `json:"working_days"`
	LastUpdated  time.Time `json:"last_updated"`
	UpdatedBy    string    `json:"updated_by"`
}

// SetWorkingDaysResponse membawa hasil cascade: berapa ledger row
// yang berhasil/gagal di-recalculate.
type SetWorkingDaysResponse struct {
	WorkingDaysResponse
	CascadeUpdated int `json:"cascade_updated"`
	CascadeFailed  int `json:"cascade_failed"`
}

type AttendanceResponse struct {
	ID                   uuid.UUID `json:"id"`
	StudentID            uuid.UUID `json:"student_id"`
	AcademicYear         string    `json:"academic_year"`
	Month                string    `json:"month"`
	WorkingDays          int       `json:"working_days"`
	DaysPresent          int       `json:"days_present"`
	AttendancePercentage float64   `json:"attendance_percentage"`
	LastUpdated          time.Time `json:"last_updated"`
	UpdatedBy            string    `json:"updated_by"`
}

// MonthlyAttendanceSummary: ringkasan per siswa per periode,
// dipakai oleh read path (student/class/low-attendance).
type MonthlyAttendanceSummary struct {
	StudentID            uuid.UUID `json:"student_id"`
	StudentName          string    `json:"student_name"`
	AdmissionNumber      string    `json:"admission_number"`
	AcademicYear         string    `json:"academic_year"`
	Month                string    `json:"month"`
	WorkingDays          int       `json:"working_days"`
	DaysPresent          int       `json:"days_present"`
	AttendancePercentage float64   `json:"attendance_percentage"`
}

type ClassAttendanceSummary struct {
	Year         int                        `json:"year"`
	Group        string                     `json:"group"`
	AcademicYear string                     `json:"academic_year"`
	Month        string                     `json:"month"`
	WorkingDays  int                        `json:"working_days"`
	Students     []MonthlyAttendanceSummary `json:"students"`
}

type LowAttendanceSummary struct {
	MonthlyAttendanceSummary
	Year  int    `json:"year"`
	Group string `json:"group"`
}

type LowAttendanceResponse struct {
	AcademicYear string                 `json:"academic_year"`
	Month        string                 `json:"month"`
	Threshold    float64                `json:"percentage_threshold"`
	Students     []LowAttendanceSummary `json:"students"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func NewWorkingDaysResponse(mdl m.WorkingDaysModel) WorkingDaysResponse {
	return WorkingDaysResponse{
		AcademicYear: mdl.AcademicYear,
		Month:        mdl.Month,
		WorkingDays:  mdl.WorkingDays,
		LastUpdated:  mdl.LastUpdated,
		UpdatedBy:    mdl.UpdatedBy,
	}
}

func NewAttendanceResponse(mdl m.StudentAttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		ID:                   mdl.ID,
		StudentID:            mdl.StudentID,
		AcademicYear:         mdl.AcademicYear,
		Month:                mdl.Month,
		WorkingDays:          mdl.WorkingDays,
		DaysPresent:          mdl.DaysPresent,
		AttendancePercentage: mdl.AttendancePercentage,
		LastUpdated:          mdl.LastUpdated,
		UpdatedBy:            mdl.UpdatedBy,
	}
}
