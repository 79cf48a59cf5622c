package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Jenis ujian yang dikenal (unit test 1-4, half-yearly, final).
const (
	ExamTypeUT1        = "ut1"
	ExamTypeUT2        = "ut2"
	ExamTypeUT3        = "ut3"
	ExamTypeUT4        = "ut4"
	ExamTypeHalfYearly = "half-yearly"
	ExamTypeFinal      = "final"
)

// ExamModel: nilai per siswa per jenis ujian. Satu baris per
// (student_id, exam_type); subjects disimpan sebagai JSON nama→marks.
type ExamModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_exams_student_type,priority:1" json:"student_id"`
	StudentName     string         `gorm:"size:255;not null" json:"student_name"`
	AdmissionNumber string         `gorm:"size:50;not null;index" json:"admission_number"`
	Year            int            `gorm:"not null" json:"year"`
	Group           string         `gorm:"type:varchar(10);not null" json:"group"`
	ExamType        string         `gorm:"type:varchar(20);not null;uniqueIndex:idx_exams_student_type,priority:2" json:"exam_type"`
	Subjects        datatypes.JSON `gorm:"type:jsonb;not null" json:"subjects"`
	TotalMarks      int            `gorm:"not null" json:"total_marks"`
	Percentage      float64        `gorm:"not null" json:"percentage"`
	CreatedAt       time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt       *time.Time     `gorm:"autoUpdateTime" json:"updated_at,omitempty"`
}

func (ExamModel) TableName() string {
	return "exams"
}

func (e *ExamModel) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
