package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gjc_backend/internals/constants"
	examCtrl "gjc_backend/internals/features/school/exams/controller"
	authMw "gjc_backend/internals/middlewares/auth"
)

func ExamRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := examCtrl.NewExamController(db)

	group := app.Group("/api/exams",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorStaff("nilai ujian"), constants.StaffAndAbove...),
	)
	group.Get("/subjects/:group", ctrl.SubjectsForGroup)
	group.Get("/student/:student_id", ctrl.StudentExams)
	group.Get("/", ctrl.List)
	group.Get("/:id", ctrl.GetByID)
	group.Post("/", ctrl.Create)
	group.Put("/:id", ctrl.Update)
	group.Delete("/:id", ctrl.Delete)
}
