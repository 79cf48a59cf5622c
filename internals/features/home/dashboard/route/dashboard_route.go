package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gjc_backend/internals/constants"
	dashboardCtrl "gjc_backend/internals/features/home/dashboard/controller"
	authMw "gjc_backend/internals/middlewares/auth"
)

func DashboardRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := dashboardCtrl.NewDashboardController(db)

	group := app.Group("/api/dashboard", authMw.AuthMiddleware(db))

	group.Get("/principal",
		authMw.OnlyRoles(constants.RoleErrorPrincipal("dashboard principal"), constants.PrincipalOnly...),
		ctrl.Principal,
	)
	group.Get("/staff",
		authMw.OnlyRoles(constants.RoleErrorStaff("dashboard staff"), constants.StaffAndAbove...),
		ctrl.Staff,
	)
}
