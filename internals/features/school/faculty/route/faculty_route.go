package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gjc_backend/internals/constants"
	facultyCtrl "gjc_backend/internals/features/school/faculty/controller"
	authMw "gjc_backend/internals/middlewares/auth"
)

func FacultyRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := facultyCtrl.NewFacultyController(db)

	// Listing publik (halaman profil sekolah)
	app.Get("/api/faculty", ctrl.List)

	// Mutasi hanya principal
	group := app.Group("/api/faculty",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorPrincipal("data faculty"), constants.PrincipalOnly...),
	)
	group.Post("/", ctrl.Create)
	group.Put("/:id", ctrl.Update)
	group.Delete("/:id", ctrl.Delete)
}
