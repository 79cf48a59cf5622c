package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	m "gjc_backend/internals/features/school/attendance/model"
	studentModel "gjc_backend/internals/features/school/students/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	// satu koneksi supaya semua query melihat DB in-memory yang sama
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&studentModel.StudentModel{},
		&m.WorkingDaysModel{},
		&m.StudentAttendanceModel{},
	))
	return db
}

func seedStudent(t *testing.T, db *gorm.DB, admissionNumber string, year int, group string) studentModel.StudentModel {
	t.Helper()
	student := studentModel.StudentModel{
		AdmissionNumber: admissionNumber,
		Year:            year,
		Group:           group,
		Medium:          "english",
		Name:            "Student " + admissionNumber,
		FatherName:      "Father " + admissionNumber,
		DateOfBirth:     time.Date(2008, 6, 15, 0, 0, 0, 0, time.UTC),
		Caste:           "OC",
		Gender:          "male",
		AadharNumber:    "9999" + admissionNumber,
		ParentPhone:     "9000000000",
	}
	require.NoError(t, db.Create(&student).Error)
	return student
}

func TestCalcAttendancePercentage(t *testing.T) {
	assert.Equal(t, 90.0, CalcAttendancePercentage(18, 20))
	assert.Equal(t, 66.67, CalcAttendancePercentage(2, 3))
	assert.Equal(t, 0.0, CalcAttendancePercentage(0, 20))
	assert.Equal(t, 100.0, CalcAttendancePercentage(20, 20))

	// working days belum diset → selalu 0
	assert.Equal(t, 0.0, CalcAttendancePercentage(5, 0))
	assert.Equal(t, 0.0, CalcAttendancePercentage(5, -1))

	// historis inkonsisten (present > working) tidak di-clamp
	assert.Equal(t, 111.11, CalcAttendancePercentage(20, 18))
}

func TestSetWorkingDays_UpsertAndRead(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAttendanceService(db)

	record, cascade, err := svc.SetWorkingDays("2025-2026", m.MonthJune, 20, "principal1")
	require.NoError(t, err)
	assert.Equal(t, 20, record.WorkingDays)
	assert.Equal(t, "principal1", record.UpdatedBy)
	assert.Equal(t, 0, cascade.Updated)
	assert.Equal(t, 0, cascade.Failed)

	// upsert: set ulang periode yang sama tidak membuat baris kedua
	record, _, err = svc.SetWorkingDays("2025-2026", m.MonthJune, 22, "principal1")
	require.NoError(t, err)
	assert.Equal(t, 22, record.WorkingDays)

	var count int64
	require.NoError(t, db.Model(&m.WorkingDaysModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	got, err := svc.GetWorkingDays("2025-2026", m.MonthJune)
	require.NoError(t, err)
	assert.Equal(t, 22, got)
}

func TestGetWorkingDays_AbsentPeriodIsZero(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAttendanceService(db)

	got, err := svc.GetWorkingDays("2025-2026", m.MonthDecember)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestSetWorkingDays_InvalidMonth(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAttendanceService(db)

	_, _, err := svc.SetWorkingDays("2025-2026", "sebtember", 20, "principal1")
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestRecordAttendance(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAttendanceService(db)
	student := seedStudent(t, db, "A001", 1, "mpc")

	_, _, err := svc.SetWorkingDays("2025-2026", m.MonthJune, 20, "principal1")
	require.NoError(t, err)

	row, err := svc.RecordAttendance(student.ID, "2025-2026", m.MonthJune, 18, "staff1")
	require.NoError(t, err)
	assert.Equal(t, 20, row.WorkingDays)
	assert.Equal(t, 18, row.DaysPresent)
	assert.Equal(t, 90.0, row.AttendancePercentage)
	assert.Equal(t, "staff1", row.UpdatedBy)

	// idempotent: panggilan kedua dengan argumen sama → satu baris, hasil sama
	again, err := svc.RecordAttendance(student.ID, "2025-2026", m.MonthJune, 18, "staff1")
	require.NoError(t, err)
	assert.Equal(t, row.ID, again.ID)
	assert.Equal(t, 90.0, again.AttendancePercentage)

	var count int64
	require.NoError(t, db.Model(&m.StudentAttendanceModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRecordAttendance_Validation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAttendanceService(db)
	student := seedStudent(t, db, "A001", 1, "mpc")

	_, _, err := svc.SetWorkingDays("2025-2026", m.MonthJune, 20, "principal1")
	require.NoError(t, err)

	// siswa tidak ada
	_, err = svc.RecordAttendance(uuid.New(), "2025-2026", m.MonthJune, 10, "staff1")
	assert.ErrorIs(t, err, ErrStudentNotFound)

	// negatif
	_, err = svc.RecordAttendance(student.ID, "2025-2026", m.MonthJune, -1, "staff1")
	assert.ErrorIs(t, err, ErrNegativeDaysPresent)

	// 25 > 20 working days
	_, err = svc.RecordAttendance(student.ID, "2025-2026", m.MonthJune, 25, "staff1")
	assert.ErrorIs(t, err, ErrDaysExceedWorkingDays)

	// working days belum diset → batas atas tidak berlaku
	row, err := svc.RecordAttendance(student.ID, "2025-2026", m.MonthJuly, 25, "staff1")
	require.NoError(t, err)
	assert.Equal(t, 0, row.WorkingDays)
	assert.Equal(t, 25, row.DaysPresent)
	assert.Equal(t, 0.0, row.AttendancePercentage)
}

func TestSetWorkingDays_CascadeRecalculatesLedger(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAttendanceService(db)
	s1 := seedStudent(t, db, "A001", 1, "mpc")
	s2 := seedStudent(t, db, "A002", 1, "mpc")
	s3 := seedStudent(t, db, "A003", 2, "bipc")

	_, _, err := svc.SetWorkingDays("2025-2026", m.MonthJune, 20, "principal1")
	require.NoError(t, err)

	_, err = svc.RecordAttendance(s1.ID, "2025-2026", m.MonthJune, 18, "staff1")
	require.NoError(t, err)
	_, err = svc.RecordAttendance(s2.ID, "2025-2026", m.MonthJune, 10, "staff1")
	require.NoError(t, err)
	// periode lain tidak boleh tersentuh cascade
	_, _, err = svc.SetWorkingDays("2025-2026", m.MonthJuly, 22, "principal1")
	require.NoError(t, err)
	_, err = svc.RecordAttendance(s3.ID, "2025-2026", m.MonthJuly, 11, "staff1")
	require.NoError(t, err)

	// koreksi: ternyata Juni cuma 18 hari efektif
	_, cascade, err := svc.SetWorkingDays("2025-2026", m.MonthJune, 18, "principal1")
	require.NoError(t, err)
	assert.Equal(t, 2, cascade.Updated)
	assert.Equal(t, 0, cascade.Failed)

	// struct baru per lookup; First pada struct bekas ikut membawa
	// primary key lama ke kondisi WHERE
	row := fetchLedgerRow(t, db, s1.ID, m.MonthJune)
	assert.Equal(t, 18, row.WorkingDays)
	// 18/18 → dari 90% naik ke 100%
	assert.Equal(t, 100.0, row.AttendancePercentage)

	row = fetchLedgerRow(t, db, s2.ID, m.MonthJune)
	// 10/18, tidak di-clamp walau basis berubah
	assert.Equal(t, 55.56, row.AttendancePercentage)

	row = fetchLedgerRow(t, db, s3.ID, m.MonthJuly)
	assert.Equal(t, 22, row.WorkingDays)
	assert.Equal(t, 50.0, row.AttendancePercentage)
}

func fetchLedgerRow(t *testing.T, db *gorm.DB, studentID uuid.UUID, month string) m.StudentAttendanceModel {
	t.Helper()
	var row m.StudentAttendanceModel
	require.NoError(t, db.Where("student_id = ? AND month = ?", studentID, month).First(&row).Error)
	return row
}

func TestSetWorkingDays_CascadeCanExceedHundredPercent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAttendanceService(db)
	s1 := seedStudent(t, db, "A001", 1, "mpc")

	_, _, err := svc.SetWorkingDays("2025-2026", m.MonthJune, 25, "principal1")
	require.NoError(t, err)
	_, err = svc.RecordAttendance(s1.ID, "2025-2026", m.MonthJune, 20, "staff1")
	require.NoError(t, err)

	// working days turun di bawah days_present yang sudah tercatat
	_, cascade, err := svc.SetWorkingDays("2025-2026", m.MonthJune, 18, "principal1")
	require.NoError(t, err)
	assert.Equal(t, 1, cascade.Updated)

	var row m.StudentAttendanceModel
	require.NoError(t, db.Where("student_id = ?", s1.ID).First(&row).Error)
	assert.Equal(t, 111.11, row.AttendancePercentage)
}

func TestGetStudentAttendance(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAttendanceService(db)
	student := seedStudent(t, db, "A001", 1, "mpc")

	_, _, err := svc.SetWorkingDays("2025-2026", m.MonthJune, 25, "principal1")
	require.NoError(t, err)

	// belum ada ledger row → summary nol dengan working days live dari registry
	summary, err := svc.GetStudentAttendance(student.ID, "2025-2026", m.MonthJune)
	require.NoError(t, err)
	assert.Equal(t, student.ID, summary.StudentID)
	assert.Equal(t, "A001", summary.AdmissionNumber)
	assert.Equal(t, 25, summary.WorkingDays)
	assert.Equal(t, 0, summary.DaysPresent)
	assert.Equal(t, 0.0, summary.AttendancePercentage)

	_, err = svc.RecordAttendance(student.ID, "2025-2026", m.MonthJune, 20, "staff1")
	require.NoError(t, err)

	summary, err = svc.GetStudentAttendance(student.ID, "2025-2026", m.MonthJune)
	require.NoError(t, err)
	assert.Equal(t, 20, summary.DaysPresent)
	assert.Equal(t, 80.0, summary.AttendancePercentage)

	_, err = svc.GetStudentAttendance(uuid.New(), "2025-2026", m.MonthJune)
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestGetStudentAttendance_ReadsStoredSnapshot(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAttendanceService(db)
	student := seedStudent(t, db, "A001", 1, "mpc")

	_, _, err := svc.SetWorkingDays("2025-2026", m.MonthJune, 20, "principal1")
	require.NoError(t, err)
	_, err = svc.RecordAttendance(student.ID, "2025-2026", m.MonthJune, 18, "staff1")
	require.NoError(t, err)

	// simulasi cascade yang gagal menyentuh row ini: registry berubah
	// langsung di DB tanpa sweep
	require.NoError(t, db.Model(&m.WorkingDaysModel{}).
		Where("academic_year = ? AND month = ?", "2025-2026", m.MonthJune).
		Update("working_days", 18).Error)

	summary, err := svc.GetStudentAttendance(student.ID, "2025-2026", m.MonthJune)
	require.NoError(t, err)
	// snapshot lama apa adanya, bukan hasil hitung ulang live
	assert.Equal(t, 20, summary.WorkingDays)
	assert.Equal(t, 90.0, summary.AttendancePercentage)
}

func TestGetClassAttendance_RecomputesLive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAttendanceService(db)
	s1 := seedStudent(t, db, "A001", 1, "mpc")
	seedStudent(t, db, "A002", 1, "mpc")
	seedStudent(t, db, "A003", 2, "mpc") // year beda, tidak ikut

	_, _, err := svc.SetWorkingDays("2025-2026", m.MonthJune, 20, "principal1")
	require.NoError(t, err)
	_, err = svc.RecordAttendance(s1.ID, "2025-2026", m.MonthJune, 18, "staff1")
	require.NoError(t, err)

	// registry berubah tanpa sweep; read path class harus pakai nilai live
	require.NoError(t, db.Model(&m.WorkingDaysModel{}).
		Where("academic_year = ? AND month = ?", "2025-2026", m.MonthJune).
		Update("working_days", 18).Error)

	summary, err := svc.GetClassAttendance(1, "mpc", "2025-2026", m.MonthJune)
	require.NoError(t, err)
	assert.Equal(t, 18, summary.WorkingDays)
	require.Len(t, summary.Students, 2)

	byAdmission := map[string]float64{}
	for _, st := range summary.Students {
		byAdmission[st.AdmissionNumber] = st.AttendancePercentage
		assert.Equal(t, 18, st.WorkingDays)
	}
	// 18/18 live, walau snapshot tersimpan masih 18/20=90
	assert.Equal(t, 100.0, byAdmission["A001"])
	// tanpa ledger row → 0 hari hadir
	assert.Equal(t, 0.0, byAdmission["A002"])
}

func TestGetLowAttendance(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAttendanceService(db)
	s1 := seedStudent(t, db, "A001", 1, "mpc")
	s2 := seedStudent(t, db, "A002", 1, "mpc")
	seedStudent(t, db, "A003", 2, "bipc")

	// registry belum diset → list kosong, bukan semua siswa 0%
	result, err := svc.GetLowAttendance("2025-2026", m.MonthJune, 75, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, result)

	_, _, err = svc.SetWorkingDays("2025-2026", m.MonthJune, 20, "principal1")
	require.NoError(t, err)

	_, err = svc.RecordAttendance(s1.ID, "2025-2026", m.MonthJune, 15, "staff1") // 75.0
	require.NoError(t, err)
	_, err = svc.RecordAttendance(s2.ID, "2025-2026", m.MonthJune, 10, "staff1") // 50.0
	require.NoError(t, err)
	// s3 tanpa ledger row → dihitung 0%

	result, err = svc.GetLowAttendance("2025-2026", m.MonthJune, 75, nil, nil)
	require.NoError(t, err)
	require.Len(t, result, 2)

	admissions := []string{result[0].AdmissionNumber, result[1].AdmissionNumber}
	// strictly < 75: tepat 75.0 (A001) TIDAK masuk
	assert.NotContains(t, admissions, "A001")
	assert.Contains(t, admissions, "A002")
	assert.Contains(t, admissions, "A003")

	// filter year/group
	year := 2
	group := "bipc"
	result, err = svc.GetLowAttendance("2025-2026", m.MonthJune, 75, &year, &group)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "A003", result[0].AdmissionNumber)
	assert.Equal(t, 2, result[0].Year)
	assert.Equal(t, "bipc", result[0].Group)
	assert.Equal(t, 20, result[0].WorkingDays)
}

func TestGetLowAttendance_ZeroWorkingDays(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAttendanceService(db)
	seedStudent(t, db, "A001", 1, "mpc")

	_, _, err := svc.SetWorkingDays("2025-2026", m.MonthJune, 0, "principal1")
	require.NoError(t, err)

	result, err := svc.GetLowAttendance("2025-2026", m.MonthJune, 75, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, result)
}
