package serviceRequestValidator

import (
	"sevakiosk/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateRequest validator middleware
func CreateRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ServiceType string                 `json:"service_type" validate:"required"`
			RequestType string                 `json:"request_type" validate:"required"`
			Details     map[string]interface{} `json:"details"`
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
				case "RequestType":
					errors["request_type"] = "Request type is required!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateRequest", reqData)
		return c.Next()
	}
}

// UpdateRequest validator middleware
func UpdateRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `json:"status" validate:"required,oneof=SUBMITTED PROCESSING APPROVED REJECTED"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be SUBMITTED, PROCESSING, APPROVED or REJECTED!",
			})
		}

		c.Locals("validatedUpdateRequest", reqData)
		return c.Next()
	}
}
