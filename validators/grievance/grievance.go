package grievanceValidator

import (
	"sevakiosk/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateComplaint validator middleware
func CreateComplaint() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ServiceType string  `json:"service_type" validate:"required"`
			Category    string  `json:"category" validate:"required"`
			Description string  `json:"description" validate:"required,min=10"`
			Priority    *string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "ServiceType":
					errors["service_type"] = "Service type is required!"
				case "Category":
					errors["category"] = "Category is required!"
				case "Description":
					errors["description"] = "Description must be at least 10 characters long!"
				case "Priority":
					errors["priority"] = "Priority must be LOW, MEDIUM or HIGH!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateComplaint", reqData)
		return c.Next()
	}
}

// UpdateComplaint validator middleware
func UpdateComplaint() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status  string `json:"status" validate:"required,oneof=OPEN IN_PROGRESS RESOLVED CLOSED"`
			Remarks string `json:"remarks" validate:"required"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Status":
					errors["status"] = "Status must be OPEN, IN_PROGRESS, RESOLVED or CLOSED!"
				case "Remarks":
					errors["remarks"] = "Remarks are required!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateComplaint", reqData)
		return c.Next()
	}
}
