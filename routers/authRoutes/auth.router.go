package authRoutes

import (
	authControllers "sevakiosk/controllers/auth"
	"sevakiosk/middleware"
	authValidators "sevakiosk/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/send/otp", authValidators.SendOTP(), authControllers.SendOTP)
	authGroup.Post("/verify/otp", authValidators.VerifyOTP(), authControllers.VerifyOTP)
	authGroup.Post("/refresh", authControllers.RefreshToken)
	authGroup.Post("/logout", middleware.JWTMiddleware, authControllers.Logout)
}
