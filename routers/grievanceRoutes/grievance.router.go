package grievanceRoutes

import (
	grievanceControllers "sevakiosk/controllers/grievance"
	"sevakiosk/middleware"
	"sevakiosk/models"
	grievanceValidators "sevakiosk/validators/grievance"

	"github.com/gofiber/fiber/v2"
)

func SetupGrievanceRoutes(app *fiber.App) {
	grievanceGroup := app.Group("/grievance")

	grievanceGroup.Post("/create", grievanceValidators.CreateComplaint(), middleware.JWTMiddleware, grievanceControllers.CreateComplaint)
	grievanceGroup.Get("/list", middleware.JWTMiddleware, grievanceControllers.ComplaintList)
	grievanceGroup.Get("/:complaintId", middleware.JWTMiddleware, grievanceControllers.ComplaintDetail)
	grievanceGroup.Patch("/:complaintId/status",
		grievanceValidators.UpdateComplaint(),
		middleware.JWTMiddleware,
		middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin),
		grievanceControllers.UpdateComplaintStatus)
}
