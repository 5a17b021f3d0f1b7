package authValidator

import (
	"regexp"
	"sevakiosk/middleware"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate mobile number format
func isValidMobile(mobile string) bool {
	re := regexp.MustCompile(`^\d{10}$`)
	return re.MatchString(mobile)
}

// Helper to validate consumer number format
func isValidConsumerNumber(cn string) bool {
	re := regexp.MustCompile(`^[A-Za-z0-9-]{6,50}$`)
	return re.MatchString(cn)
}

// Helper to validate OTP code format
func isValidCode(code string) bool {
	re := regexp.MustCompile(`^\d{4,8}$`)
	return re.MatchString(code)
}

// SendOTP validator middleware
func SendOTP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Identifier string `json:"identifier"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Identifier is a 10-digit mobile or a consumer number
		if reqData.Identifier == "" {
			errors["identifier"] = "Identifier is required!"
		} else if !isValidMobile(reqData.Identifier) && !isValidConsumerNumber(reqData.Identifier) {
			errors["identifier"] = "Provide a valid mobile number or consumer number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSendOTP", reqData)
		return c.Next()
	}
}

// VerifyOTP validates OTP request data
func VerifyOTP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Identifier string `json:"identifier"`
			Code       string `json:"code"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Identifier == "" {
			errors["identifier"] = "Identifier is required!"
		} else if !isValidMobile(reqData.Identifier) && !isValidConsumerNumber(reqData.Identifier) {
			errors["identifier"] = "Provide a valid mobile number or consumer number!"
		}

		if reqData.Code == "" {
			errors["code"] = "OTP code is required!"
		} else if !isValidCode(reqData.Code) {
			errors["code"] = "Invalid OTP code format!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVerifyOTP", reqData)
		return c.Next()
	}
}
