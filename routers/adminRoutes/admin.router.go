package adminRoutes

import (
	adminControllers "sevakiosk/controllers/admin"
	"sevakiosk/middleware"
	"sevakiosk/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin")

	adminGroup.Get("/stats",
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin),
		adminControllers.DashboardStats)
}
