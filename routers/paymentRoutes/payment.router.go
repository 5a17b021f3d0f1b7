package paymentRoutes

import (
	paymentControllers "sevakiosk/controllers/payments"
	"sevakiosk/middleware"
	paymentValidators "sevakiosk/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payments")

	paymentGroup.Post("/initiate", paymentValidators.InitiatePayment(), middleware.JWTMiddleware, paymentControllers.InitiatePayment)
	paymentGroup.Post("/verify", paymentValidators.VerifyPayment(), middleware.JWTMiddleware, paymentControllers.VerifyPayment)
	paymentGroup.Get("/receipt/:paymentId", middleware.JWTMiddleware, paymentControllers.Receipt)
}
