package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bulan akademik, lowercase english (january..december).
const (
	MonthJanuary   = "january"
	MonthFebruary  = "february"
	MonthMarch     = "march"
	MonthApril     = "april"
	MonthMay       = "may"
	MonthJune      = "june"
	MonthJuly      = "july"
	MonthAugust    = "august"
	MonthSeptember = "september"
	MonthOctober   = "october"
	MonthNovember  = "november"
	MonthDecember  = "december"
)

var validMonths = map[string]struct{}{
	MonthJanuary: {}, MonthFebruary: {}, MonthMarch: {}, MonthApril: {},
	MonthMay: {}, MonthJune: {}, MonthJuly: {}, MonthAugust: {},
	MonthSeptember: {}, MonthOctober: {}, MonthNovember: {}, MonthDecember: {},
}

func IsValidMonth(month string) bool {
	_, ok := validMonths[month]
	return ok
}

// WorkingDaysModel: pengaturan jumlah hari efektif sekolah per
// (academic_year, month). Satu baris per periode, diset principal.
type WorkingDaysModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AcademicYear string    `gorm:"size:20;not null;uniqueIndex:idx_working_days_period,priority:1" json:"academic_year"`
	Month        string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_working_days_period,priority:2" json:"month"`
	WorkingDays  int       `gorm:"not null" json:"working_days"`
	LastUpdated  time.Time `gorm:"type:date;not null" json:"last_updated"`
	UpdatedBy    string    `gorm:"size:50;not null" json:"updated_by"`
}

func (WorkingDaysModel) TableName() string {
	return "attendance_working_days"
}

func (w *WorkingDaysModel) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// StudentAttendanceModel: ledger kehadiran per siswa per periode.
// working_days adalah SNAPSHOT dari WorkingDaysModel saat baris terakhir
// ditulis / di-recalculate, bukan referensi live.
type StudentAttendanceModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_student_attendance_period,priority:1" json:"student_id"`
	AcademicYear         string    `gorm:"size:20;not null;uniqueIndex:idx_student_attendance_period,priority:2;index:idx_student_attendance_ym,priority:1" json:"academic_year"`
	Month                string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_student_attendance_period,priority:3;index:idx_student_attendance_ym,priority:2" json:"month"`
	WorkingDays          int       `gorm:"not null" json:"working_days"`
	DaysPresent          int       `gorm:"not null" json:"days_present"`
	AttendancePercentage float64   `gorm:"not null" json:"attendance_percentage"`
	LastUpdated          time.Time `gorm:"type:date;not null" json:"last_updated"`
	UpdatedBy            string    `gorm:"size:50;not null" json:"updated_by"`
}

func (StudentAttendanceModel) TableName() string {
	return "student_attendance"
}

func (s *StudentAttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
