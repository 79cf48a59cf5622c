// file: internals/features/school/exams/dto/exam_dto.go
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "gjc_backend/internals/features/school/exams/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateExamRequest struct {
	StudentID uuid.UUID      `json:"student_id" validate:"required"`
	ExamType  string         `json:"exam_type" validate:"required,oneof=ut1 ut2 ut3 ut4 half-yearly final"`
	Subjects  map[string]int `json:"subjects" validate:"required,min=1,dive,min=0,max=100"`
}

type UpdateExamRequest struct {
	Subjects map[string]int `json:"subjects" validate:"required,min=1,dive,min=0,max=100"`
}

// Filter / List (query)
type FilterExamRequest struct {
	StudentID       *uuid.UUID `query:"student_id" validate:"omitempty"`
	AdmissionNumber *string    `query:"admission_number" validate:"omitempty,max=50"`
	Year            *int       `query:"year" validate:"omitempty,min=1,max=2"`
	Group           *string    `query:"group" validate:"omitempty,oneof=mpc bipc cec hec thm oas mphw other"`
	ExamType        *string    `query:"exam_type" validate:"omitempty,oneof=ut1 ut2 ut3 ut4 half-yearly final"`
	Limit           int        `query:"limit" validate:"omitempty,min=1,max=500"`
	Skip            int        `query:"skip" validate:"omitempty,min=0"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type ExamResponse struct {
	ID              uuid.UUID      `json:"id"`
	StudentID       uuid.UUID      `json:"student_id"`
	StudentName     string         `json:"student_name"`
	AdmissionNumber string         `json:"admission_number"`
	Year            int            `json:"year"`
	Group           string         `json:"group"`
	ExamType        string         `json:"exam_type"`
	Subjects        map[string]int `json:"subjects"`
	TotalMarks      int            `json:"total_marks"`
	Percentage      float64        `json:"percentage"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       *time.Time     `json:"updated_at,omitempty"`
}

type StudentExamsSummary struct {
	StudentID       uuid.UUID      `json:"student_id"`
	StudentName     string         `json:"student_name"`
	AdmissionNumber string         `json:"admission_number"`
	Group           string         `json:"group"`
	Exams           []ExamResponse `json:"exams"`
}

type GroupSubjectsResponse struct {
	Group    string   `json:"group"`
	Subjects []string `json:"subjects"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func SubjectsToJSON(subjects map[string]int) (datatypes.JSON, error) {
	raw, err := json.Marshal(subjects)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func SubjectsFromJSON(raw datatypes.JSON) map[string]int {
	subjects := map[string]int{}
	_ = json.Unmarshal(raw, &subjects)
	return subjects
}

func NewExamResponse(mdl m.ExamModel) ExamResponse {
	return ExamResponse{
		ID:              mdl.ID,
		StudentID:       mdl.StudentID,
		StudentName:     mdl.StudentName,
		AdmissionNumber: mdl.AdmissionNumber,
		Year:            mdl.Year,
		Group:           mdl.Group,
		ExamType:        mdl.ExamType,
		Subjects:        SubjectsFromJSON(mdl.Subjects),
		TotalMarks:      mdl.TotalMarks,
		Percentage:      mdl.Percentage,
		CreatedAt:       mdl.CreatedAt,
		UpdatedAt:       mdl.UpdatedAt,
	}
}
