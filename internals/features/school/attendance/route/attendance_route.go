package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gjc_backend/internals/constants"
	attendanceCtrl "gjc_backend/internals/features/school/attendance/controller"
	authMw "gjc_backend/internals/middlewares/auth"
)

func AttendanceRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := attendanceCtrl.NewAttendanceController(db)

	group := app.Group("/api/attendance",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorStaff("data kehadiran"), constants.StaffAndAbove...),
	)

	// Set working days memicu cascade recalculation — khusus principal
	group.Post("/working-days",
		authMw.OnlyRoles(constants.RoleErrorPrincipal("working days"), constants.PrincipalOnly...),
		ctrl.SetWorkingDays,
	)
	group.Get("/working-days/:academic_year/:month", ctrl.GetWorkingDays)

	group.Put("/student/:student_id/:academic_year/:month", ctrl.RecordAttendance)
	group.Get("/student/:student_id/:academic_year/:month", ctrl.GetStudentAttendance)

	group.Get("/class/:year/:group/:academic_year/:month", ctrl.GetClassAttendance)
	group.Get("/low-attendance/:academic_year/:month", ctrl.GetLowAttendance)
}
