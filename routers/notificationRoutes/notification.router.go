package notificationRoutes

import (
	notificationControllers "sevakiosk/controllers/notifications"
	"sevakiosk/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App) {
	notificationGroup := app.Group("/notifications")

	notificationGroup.Get("/list", middleware.JWTMiddleware, notificationControllers.NotificationList)
	notificationGroup.Patch("/:id/read", middleware.JWTMiddleware, notificationControllers.MarkRead)
	notificationGroup.Get("/alerts", notificationControllers.ActiveAlerts)
}
