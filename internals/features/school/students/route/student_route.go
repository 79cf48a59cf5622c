package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gjc_backend/internals/constants"
	studentCtrl "gjc_backend/internals/features/school/students/controller"
	authMw "gjc_backend/internals/middlewares/auth"
)

func StudentRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := studentCtrl.NewStudentController(db)

	group := app.Group("/api/students",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorStaff("data siswa"), constants.StaffAndAbove...),
	)
	group.Get("/", ctrl.List)
	group.Get("/:id", ctrl.GetByID)
	group.Post("/", ctrl.Create)
	group.Put("/:id", ctrl.Update)
	group.Delete("/:id", ctrl.Delete)
}
