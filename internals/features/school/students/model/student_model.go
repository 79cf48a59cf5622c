package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel merepresentasikan direktori siswa (tabel students).
// Group mengikuti jurusan intermediate: mpc/bipc/cec/hec/thm/oas/mphw/other.
type StudentModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	AdmissionNumber string     `gorm:"size:50;uniqueIndex;not null" json:"admission_number"`
	Year            int        `gorm:"not null;index:idx_students_year_group,priority:1" json:"year"`
	Group           string     `gorm:"type:varchar(10);not null;index:idx_students_year_group,priority:2" json:"group"`
	Medium          string     `gorm:"type:varchar(10);not null" json:"medium"`
	Name            string     `gorm:"size:255;not null" json:"name"`
	FatherName      string     `gorm:"size:255;not null" json:"father_name"`
	DateOfBirth     time.Time  `gorm:"type:date;not null" json:"date_of_birth"`
	Caste           string     `gorm:"size:100;not null" json:"caste"`
	Gender          string     `gorm:"type:varchar(10);not null" json:"gender"`
	AadharNumber    string     `gorm:"size:20;uniqueIndex;not null" json:"aadhar_number"`
	StudentPhone    *string    `gorm:"size:20" json:"student_phone,omitempty"`
	ParentPhone     string     `gorm:"size:20;not null" json:"parent_phone"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       *time.Time `gorm:"autoUpdateTime" json:"updated_at,omitempty"`
}

func (StudentModel) TableName() string {
	return "students"
}

func (s *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
