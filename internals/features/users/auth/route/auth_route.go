package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtrl "gjc_backend/internals/features/users/auth/controller"
	"gjc_backend/internals/middlewares"
	authMw "gjc_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authCtrl.NewAuthController(db)

	group := app.Group("/api/auth")
	group.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	group.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	group.Post("/logout", authMw.AuthMiddleware(db), ctrl.Logout)
	group.Get("/me", authMw.AuthMiddleware(db), ctrl.Me)
}
