package billingRoutes

import (
	billingControllers "sevakiosk/controllers/billing"
	"sevakiosk/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupBillingRoutes(app *fiber.App) {
	billingGroup := app.Group("/billing")

	billingGroup.Get("/accounts", middleware.JWTMiddleware, billingControllers.AccountList)
	billingGroup.Get("/bills/:consumerNumber", middleware.JWTMiddleware, billingControllers.BillsByConsumerNumber)
	billingGroup.Get("/bill/:billNumber", middleware.JWTMiddleware, billingControllers.BillDetail)
	billingGroup.Get("/history", middleware.JWTMiddleware, billingControllers.BillHistory)
}
