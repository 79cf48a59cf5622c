// file: internals/features/school/attendance/service/attendance_service.go
package service

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gjc_backend/internals/features/school/attendance/dto"
	m "gjc_backend/internals/features/school/attendance/model"
	studentModel "gjc_backend/internals/features/school/students/model"
)

// Sentinel errors — controller yang menerjemahkan ke status HTTP.
var (
	ErrStudentNotFound       = errors.New("student not found")
	ErrInvalidMonth          = errors.New("invalid month")
	ErrNegativeDaysPresent   = errors.New("days present cannot be negative")
	ErrDaysExceedWorkingDays = errors.New("days present cannot exceed working days")
)

type AttendanceService struct {
	DB *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db}
}

// CalcAttendancePercentage: round(present/working*100, 2).
// working_days <= 0 didefinisikan 0.0 supaya field selalu well-formed.
func CalcAttendancePercentage(daysPresent, workingDays int) float64 {
	if workingDays <= 0 {
		return 0.0
	}
	return math.Round(float64(daysPresent)/float64(workingDays)*100*100) / 100
}

// CascadeResult: hasil sweep recalculation setelah working days berubah.
type CascadeResult struct {
	Updated int
	Failed  int
}

/* ===================== WORKING DAYS ===================== */

// SetWorkingDays meng-upsert baris registry untuk (academic_year, month),
// lalu best-effort me-recalculate SEMUA ledger row di periode itu terhadap
// nilai working days yang baru. Kegagalan satu row tidak menghentikan row
// lain; jumlah sukses/gagal dilaporkan lewat CascadeResult.
//
// Tidak ada clamping: kalau days_present lama > working days baru,
// persentase boleh lewat 100% sebagai sinyal data historis tidak konsisten.
func (s *AttendanceService) SetWorkingDays(academicYear, month string, workingDays int, actor string) (m.WorkingDaysModel, CascadeResult, error) {
	if !m.IsValidMonth(month) {
		return m.WorkingDaysModel{}, CascadeResult{}, ErrInvalidMonth
	}
	if workingDays < 0 {
		return m.WorkingDaysModel{}, CascadeResult{}, fmt.Errorf("working days cannot be negative")
	}

	now := time.Now()

	var record m.WorkingDaysModel
	err := s.DB.Where("academic_year = ? AND month = ?", academicYear, month).First(&record).Error
	switch {
	case err == nil:
		record.WorkingDays = workingDays
		record.LastUpdated = now
		record.UpdatedBy = actor
		if err := s.DB.Model(&record).Updates(map[string]any{
			"working_days": workingDays,
			"last_updated": now,
			"updated_by":   actor,
		}).Error; err != nil {
			return m.WorkingDaysModel{}, CascadeResult{}, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		record = m.WorkingDaysModel{
			AcademicYear: academicYear,
			Month:        month,
			WorkingDays:  workingDays,
			LastUpdated:  now,
			UpdatedBy:    actor,
		}
		if err := s.DB.Create(&record).Error; err != nil {
			return m.WorkingDaysModel{}, CascadeResult{}, err
		}
	default:
		return m.WorkingDaysModel{}, CascadeResult{}, err
	}

	// Cascade: refresh snapshot + persentase semua ledger row periode ini.
	var rows []m.StudentAttendanceModel
	if err := s.DB.Where("academic_year = ? AND month = ?", academicYear, month).Find(&rows).Error; err != nil {
		// Registry sudah tersimpan; sweep gagal total dilaporkan sebagai failed=unknown
		log.Printf("[ERROR] cascade: gagal ambil ledger rows %s/%s: %v", academicYear, month, err)
		return record, CascadeResult{}, err
	}

	result := CascadeResult{}
	for i := range rows {
		percentage := CalcAttendancePercentage(rows[i].DaysPresent, workingDays)
		if err := s.DB.Model(&rows[i]).Updates(map[string]any{
			"working_days":          workingDays,
			"attendance_percentage": percentage,
		}).Error; err != nil {
			log.Printf("[ERROR] cascade: gagal update ledger row student=%s %s/%s: %v",
				rows[i].StudentID, academicYear, month, err)
			result.Failed++
			continue
		}
		result.Updated++
	}

	return record, result, nil
}

// GetWorkingDays: 0 kalau periode belum pernah diset — bukan error.
func (s *AttendanceService) GetWorkingDays(academicYear, month string) (int, error) {
	var record m.WorkingDaysModel
	err := s.DB.Where("academic_year = ? AND month = ?", academicYear, month).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return record.WorkingDays, nil
}

/* ===================== LEDGER ===================== */

// RecordAttendance meng-upsert ledger row (student, academic_year, month).
// Persentase dihitung dari working days registry SAAT INI; validasi
// days_present <= working_days hanya berlaku kalau working days > 0.
// Pure upsert — dipanggil dua kali dengan argumen sama hasilnya identik.
func (s *AttendanceService) RecordAttendance(studentID uuid.UUID, academicYear, month string, daysPresent int, actor string) (m.StudentAttendanceModel, error) {
	if !m.IsValidMonth(month) {
		return m.StudentAttendanceModel{}, ErrInvalidMonth
	}
	if daysPresent < 0 {
		return m.StudentAttendanceModel{}, ErrNegativeDaysPresent
	}

	// Siswa harus ada di direktori
	var student studentModel.StudentModel
	if err := s.DB.First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return m.StudentAttendanceModel{}, ErrStudentNotFound
		}
		return m.StudentAttendanceModel{}, err
	}

	workingDays, err := s.GetWorkingDays(academicYear, month)
	if err != nil {
		return m.StudentAttendanceModel{}, err
	}
	if workingDays > 0 && daysPresent > workingDays {
		return m.StudentAttendanceModel{}, ErrDaysExceedWorkingDays
	}

	percentage := CalcAttendancePercentage(daysPresent, workingDays)
	now := time.Now()

	var row m.StudentAttendanceModel
	err = s.DB.Where("student_id = ? AND academic_year = ? AND month = ?", studentID, academicYear, month).First(&row).Error
	switch {
	case err == nil:
		if err := s.DB.Model(&row).Updates(map[string]any{
			"working_days":          workingDays,
			"days_present":          daysPresent,
			"attendance_percentage": percentage,
			"last_updated":          now,
			"updated_by":            actor,
		}).Error; err != nil {
			return m.StudentAttendanceModel{}, err
		}
		row.WorkingDays = workingDays
		row.DaysPresent = daysPresent
		row.AttendancePercentage = percentage
		row.LastUpdated = now
		row.UpdatedBy = actor
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = m.StudentAttendanceModel{
			StudentID:            studentID,
			AcademicYear:         academicYear,
			Month:                month,
			WorkingDays:          workingDays,
			DaysPresent:          daysPresent,
			AttendancePercentage: percentage,
			LastUpdated:          now,
			UpdatedBy:            actor,
		}
		if err := s.DB.Create(&row).Error; err != nil {
			return m.StudentAttendanceModel{}, err
		}
	default:
		return m.StudentAttendanceModel{}, err
	}

	return row, nil
}

// GetStudentAttendance mengembalikan ledger row apa adanya (snapshot).
// Kalau belum ada row: summary nol dengan working days LIVE dari registry —
// derived read, bukan default yang tersimpan.
func (s *AttendanceService) GetStudentAttendance(studentID uuid.UUID, academicYear, month string) (dto.MonthlyAttendanceSummary, error) {
	var student studentModel.StudentModel
	if err := s.DB.First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.MonthlyAttendanceSummary{}, ErrStudentNotFound
		}
		return dto.MonthlyAttendanceSummary{}, err
	}

	summary := dto.MonthlyAttendanceSummary{
		StudentID:       student.ID,
		StudentName:     student.Name,
		AdmissionNumber: student.AdmissionNumber,
		AcademicYear:    academicYear,
		Month:           month,
	}

	var row m.StudentAttendanceModel
	err := s.DB.Where("student_id = ? AND academic_year = ? AND month = ?", studentID, academicYear, month).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		workingDays, err := s.GetWorkingDays(academicYear, month)
		if err != nil {
			return dto.MonthlyAttendanceSummary{}, err
		}
		summary.WorkingDays = workingDays
		summary.DaysPresent = 0
		summary.AttendancePercentage = 0.0
		return summary, nil
	}
	if err != nil {
		return dto.MonthlyAttendanceSummary{}, err
	}

	// Snapshot sebagaimana tersimpan — bisa berbeda dari registry kalau
	// cascade untuk row ini pernah gagal.
	summary.WorkingDays = row.WorkingDays
	summary.DaysPresent = row.DaysPresent
	summary.AttendancePercentage = row.AttendancePercentage
	return summary, nil
}

/* ===================== AGGREGATION (read-only) ===================== */

// GetClassAttendance: semua siswa (year, group) dengan persentase yang
// SELALU dihitung ulang dari working days registry saat ini — bukan dari
// snapshot per row. Read path ini sengaja berbeda dengan
// GetStudentAttendance (lihat DESIGN.md).
func (s *AttendanceService) GetClassAttendance(classYear int, group, academicYear, month string) (dto.ClassAttendanceSummary, error) {
	var students []studentModel.StudentModel
	if err := s.DB.Where("year = ? AND \"group\" = ?", classYear, group).Find(&students).Error; err != nil {
		return dto.ClassAttendanceSummary{}, err
	}

	workingDays, err := s.GetWorkingDays(academicYear, month)
	if err != nil {
		return dto.ClassAttendanceSummary{}, err
	}

	summary := dto.ClassAttendanceSummary{
		Year:         classYear,
		Group:        group,
		AcademicYear: academicYear,
		Month:        month,
		WorkingDays:  workingDays,
		Students:     make([]dto.MonthlyAttendanceSummary, 0, len(students)),
	}

	rowsByStudent, err := s.ledgerRowsByStudent(academicYear, month)
	if err != nil {
		return dto.ClassAttendanceSummary{}, err
	}

	for _, student := range students {
		daysPresent := 0
		if row, ok := rowsByStudent[student.ID]; ok {
			daysPresent = row.DaysPresent
		}
		summary.Students = append(summary.Students, dto.MonthlyAttendanceSummary{
			StudentID:            student.ID,
			StudentName:          student.Name,
			AdmissionNumber:      student.AdmissionNumber,
			AcademicYear:         academicYear,
			Month:                month,
			WorkingDays:          workingDays,
			DaysPresent:          daysPresent,
			AttendancePercentage: CalcAttendancePercentage(daysPresent, workingDays),
		})
	}

	return summary, nil
}

// GetLowAttendance: siswa dengan persentase TERSIMPAN (0.0 kalau belum ada
// row) strictly di bawah threshold. Kalau working days periode belum diset
// atau <= 0, kembalikan list kosong — 0% massal untuk periode yang belum
// dikonfigurasi tidak ada artinya. Urutan hasil tidak dijamin.
func (s *AttendanceService) GetLowAttendance(academicYear, month string, threshold float64, yearFilter *int, groupFilter *string) ([]dto.LowAttendanceSummary, error) {
	workingDays, err := s.GetWorkingDays(academicYear, month)
	if err != nil {
		return nil, err
	}
	if workingDays <= 0 {
		return []dto.LowAttendanceSummary{}, nil
	}

	q := s.DB.Model(&studentModel.StudentModel{})
	if yearFilter != nil {
		q = q.Where("year = ?", *yearFilter)
	}
	if groupFilter != nil {
		q = q.Where("\"group\" = ?", *groupFilter)
	}
	var students []studentModel.StudentModel
	if err := q.Find(&students).Error; err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return []dto.LowAttendanceSummary{}, nil
	}

	rowsByStudent, err := s.ledgerRowsByStudent(academicYear, month)
	if err != nil {
		return nil, err
	}

	result := make([]dto.LowAttendanceSummary, 0)
	for _, student := range students {
		daysPresent := 0
		percentage := 0.0
		if row, ok := rowsByStudent[student.ID]; ok {
			daysPresent = row.DaysPresent
			percentage = row.AttendancePercentage
		}
		if percentage < threshold {
			result = append(result, dto.LowAttendanceSummary{
				MonthlyAttendanceSummary: dto.MonthlyAttendanceSummary{
					StudentID:            student.ID,
					StudentName:          student.Name,
					AdmissionNumber:      student.AdmissionNumber,
					AcademicYear:         academicYear,
					Month:                month,
					WorkingDays:          workingDays,
					DaysPresent:          daysPresent,
					AttendancePercentage: percentage,
				},
				Year:  student.Year,
				Group: student.Group,
			})
		}
	}

	return result, nil
}

func (s *AttendanceService) ledgerRowsByStudent(academicYear, month string) (map[uuid.UUID]m.StudentAttendanceModel, error) {
	var rows []m.StudentAttendanceModel
	if err := s.DB.Where("academic_year = ? AND month = ?", academicYear, month).Find(&rows).Error; err != nil {
		return nil, err
	}
	byStudent := make(map[uuid.UUID]m.StudentAttendanceModel, len(rows))
	for _, row := range rows {
		byStudent[row.StudentID] = row
	}
	return byStudent, nil
}
