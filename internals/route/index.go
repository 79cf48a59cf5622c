// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardRoute "gjc_backend/internals/features/home/dashboard/route"
	announcementRoute "gjc_backend/internals/features/school/announcements/route"
	attendanceRoute "gjc_backend/internals/features/school/attendance/route"
	examRoute "gjc_backend/internals/features/school/exams/route"
	facultyRoute "gjc_backend/internals/features/school/faculty/route"
	studentRoute "gjc_backend/internals/features/school/students/route"
	authRoute "gjc_backend/internals/features/users/auth/route"
	userRoute "gjc_backend/internals/features/users/user/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE =====================
	log.Println("[INFO] Setting up base routes...")
	BaseRoutes(app)

	// ===================== AUTH / USER =====================
	log.Println("[INFO] Mounting Auth routes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Mounting User routes...")
	userRoute.UserRoutes(app, db)

	// ===================== SCHOOL =====================
	log.Println("[INFO] Mounting Student routes...")
	studentRoute.StudentRoutes(app, db)

	log.Println("[INFO] Mounting Attendance routes...")
	attendanceRoute.AttendanceRoutes(app, db)

	log.Println("[INFO] Mounting Exam routes...")
	examRoute.ExamRoutes(app, db)

	log.Println("[INFO] Mounting Faculty routes...")
	facultyRoute.FacultyRoutes(app, db)

	log.Println("[INFO] Mounting Announcement routes...")
	announcementRoute.AnnouncementRoutes(app, db)

	// ===================== HOME =====================
	log.Println("[INFO] Mounting Dashboard routes...")
	dashboardRoute.DashboardRoutes(app, db)
}
