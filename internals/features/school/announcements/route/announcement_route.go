package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gjc_backend/internals/constants"
	announcementCtrl "gjc_backend/internals/features/school/announcements/controller"
	authMw "gjc_backend/internals/middlewares/auth"
)

func AnnouncementRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := announcementCtrl.NewAnnouncementController(db)

	// Listing publik (landing page)
	app.Get("/api/announcements", ctrl.List)

	// Mutasi hanya principal
	group := app.Group("/api/announcements",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorPrincipal("pengumuman"), constants.PrincipalOnly...),
	)
	group.Post("/", ctrl.Create)
	group.Put("/:id", ctrl.Update)
	group.Delete("/:id", ctrl.Delete)
}
