package userRoutes

import (
	userControllers "sevakiosk/controllers/user"
	"sevakiosk/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userControllers.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, userControllers.UpdateProfile)
	userGroup.Patch("/preferences", middleware.JWTMiddleware, userControllers.UpdatePreferences)
}
