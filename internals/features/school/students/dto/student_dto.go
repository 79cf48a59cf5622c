// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "gjc_backend/internals/features/school/students/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateStudentRequest struct {
	AdmissionNumber string  `json:"admission_number" validate:"required,max=50"`
	Year            int     `json:"year" validate:"required,min=1,max=2"`
	Group           string  `json:"group" validate:"required,oneof=mpc bipc cec hec thm oas mphw other"`
	Medium          string  `json:"medium" validate:"required,oneof=english telugu"`
	Name            string  `json:"name" validate:"required,max=255"`
	FatherName      string  `json:"father_name" validate:"required,max=255"`
	DateOfBirth     string  `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Caste           string  `json:"caste" validate:"required,max=100"`
	Gender          string  `json:"gender" validate:"required,oneof=male female other"`
	AadharNumber    string  `json:"aadhar_number" validate:"required,max=20"`
	StudentPhone    *string `json:"student_phone" validate:"omitempty,max=20"`
	ParentPhone     string  `json:"parent_phone" validate:"required,max=20"`
}

// Update (partial JSON)
type UpdateStudentRequest struct {
	AdmissionNumber *string `json:"admission_number" validate:"omitempty,max=50"`
	Year            *int    `json:"year" validate:"omitempty,min=1,max=2"`
	Group           *string `json:"group" validate:"omitempty,oneof=mpc bipc cec hec thm oas mphw other"`
	Medium          *string `json:"medium" validate:"omitempty,oneof=english telugu"`
	Name            *string `json:"name" validate:"omitempty,max=255"`
	FatherName      *string `json:"father_name" validate:"omitempty,max=255"`
	DateOfBirth     *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Caste           *string `json:"caste" validate:"omitempty,max=100"`
	Gender          *string `json:"gender" validate:"omitempty,oneof=male female other"`
	AadharNumber    *string `json:"aadhar_number" validate:"omitempty,max=20"`
	StudentPhone    *string `json:"student_phone" validate:"omitempty,max=20"`
	ParentPhone     *string `json:"parent_phone" validate:"omitempty,max=20"`
}

// Filter / List (query)
type FilterStudentRequest struct {
	Year   *int    `query:"year" validate:"omitempty,min=1,max=2"`
	Group  *string `query:"group" validate:"omitempty,oneof=mpc bipc cec hec thm oas mphw other"`
	Medium *string `query:"medium" validate:"omitempty,oneof=english telugu"`
	Limit  int     `query:"limit" validate:"omitempty,min=1,max=500"`
	Skip   int     `query:"skip" validate:"omitempty,min=0"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type StudentResponse struct {
	ID              uuid.UUID  `json:"id"`
	AdmissionNumber string     `json:"admission_number"`
	Year            int        `json:"year"`
	Group           string     `json:"group"`
	Medium          string     `json:"medium"`
	Name            string     `json:"name"`
	FatherName      string     `json:"father_name"`
	DateOfBirth     string     `json:"date_of_birth"`
	Caste           string     `json:"caste"`
	Gender          string     `json:"gender"`
	AadharNumber    string     `json:"aadhar_number"`
	StudentPhone    *string    `json:"student_phone,omitempty"`
	ParentPhone     string     `json:"parent_phone"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateStudentRequest) ToModel() m.StudentModel {
	dob, _ := time.Parse("2006-01-02", r.DateOfBirth)
	return m.StudentModel{
		AdmissionNumber: r.AdmissionNumber,
		Year:            r.Year,
		Group:           r.Group,
		Medium:          r.Medium,
		Name:            r.Name,
		FatherName:      r.FatherName,
		DateOfBirth:     dob,
		Caste:           r.Caste,
		Gender:          r.Gender,
		AadharNumber:    r.AadharNumber,
		StudentPhone:    r.StudentPhone,
		ParentPhone:     r.ParentPhone,
	}
}

func NewStudentResponse(mdl m.StudentModel) StudentResponse {
	return StudentResponse{
		ID:              mdl.ID,
		AdmissionNumber: mdl.AdmissionNumber,
		Year:            mdl.Year,
		Group:           mdl.Group,
		Medium:          mdl.Medium,
		Name:            mdl.Name,
		FatherName:      mdl.FatherName,
		DateOfBirth:     mdl.DateOfBirth.Format("2006-01-02"),
		Caste:           mdl.Caste,
		Gender:          mdl.Gender,
		AadharNumber:    mdl.AadharNumber,
		StudentPhone:    mdl.StudentPhone,
		ParentPhone:     mdl.ParentPhone,
		CreatedAt:       mdl.CreatedAt,
		UpdatedAt:       mdl.UpdatedAt,
	}
}
