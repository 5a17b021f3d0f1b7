package serviceRequestRoutes

import (
	serviceRequestControllers "sevakiosk/controllers/servicerequest"
	"sevakiosk/middleware"
	"sevakiosk/models"
	serviceRequestValidators "sevakiosk/validators/servicerequest"

	"github.com/gofiber/fiber/v2"
)

func SetupServiceRequestRoutes(app *fiber.App) {
	requestGroup := app.Group("/service-request")

	requestGroup.Post("/create", serviceRequestValidators.CreateRequest(), middleware.JWTMiddleware, serviceRequestControllers.CreateRequest)
	requestGroup.Get("/list", middleware.JWTMiddleware, serviceRequestControllers.RequestList)
	requestGroup.Patch("/:requestId/status",
		serviceRequestValidators.UpdateRequest(),
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin),
		serviceRequestControllers.UpdateRequestStatus)
}
