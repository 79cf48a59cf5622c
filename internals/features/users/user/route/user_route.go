package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gjc_backend/internals/constants"
	userCtrl "gjc_backend/internals/features/users/user/controller"
	authMw "gjc_backend/internals/middlewares/auth"
)

func UserRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := userCtrl.NewUserController(db)

	// Manajemen user hanya untuk principal
	group := app.Group("/api/users",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorPrincipal("manajemen user"), constants.PrincipalOnly...),
	)
	group.Get("/", ctrl.List)
	group.Post("/", ctrl.Create)
	group.Put("/:id", ctrl.UpdateRole)
	group.Put("/:id/password", ctrl.UpdatePassword)
	group.Delete("/:id", ctrl.Delete)
	group.Get("/:id/permissions", ctrl.GetPermissions)
	group.Put("/:id/permissions", ctrl.SetPermissions)
}
