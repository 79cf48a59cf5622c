// file: internals/features/school/faculty/dto/faculty_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "gjc_backend/internals/features/school/faculty/model"
)

type CreateFacultyRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	Position   string `json:"position" validate:"required,max=255"`
	Department string `json:"department" validate:"required,max=255"`
	Education  string `json:"education" validate:"required,max=255"`
	Experience string `json:"experience" validate:"required,max=255"`
}

// Update (partial JSON)
type UpdateFacultyRequest struct {
	Name       *string `json:"name" validate:"omitempty,max=255"`
	Position   *string `json:"position" validate:"omitempty,max=255"`
	Department *string `json:"department" validate:"omitempty,max=255"`
	Education  *string `json:"education" validate:"omitempty,max=255"`
	Experience *string `json:"experience" validate:"omitempty,max=255"`
}

type FacultyResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Position   string     `json:"position"`
	Department string     `json:"department"`
	Education  string     `json:"education"`
	Experience string     `json:"experience"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

func (r CreateFacultyRequest) ToModel() m.FacultyModel {
	return m.FacultyModel{
		Name:       r.Name,
		Position:   r.Position,
		Department: r.Department,
		Education:  r.Education,
		Experience: r.Experience,
	}
}

func NewFacultyResponse(mdl m.FacultyModel) FacultyResponse {
	return FacultyResponse{
		ID:         mdl.ID,
		Name:       mdl.Name,
		Position:   mdl.Position,
		Department: mdl.Department,
		Education:  mdl.Education,
		Experience: mdl.Experience,
		CreatedAt:  mdl.CreatedAt,
		UpdatedAt:  mdl.UpdatedAt,
	}
}
