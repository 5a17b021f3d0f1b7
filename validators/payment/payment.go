package paymentValidator

import (
	"sevakiosk/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// InitiatePayment validator middleware
func InitiatePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			BillNumber    string `json:"bill_number" validate:"required"`
			PaymentMethod string `json:"payment_method" validate:"required,oneof=DEBIT_CARD UPI NET_BANKING"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "BillNumber":
					errors["bill_number"] = "Bill number is required!"
				case "PaymentMethod":
					errors["payment_method"] = "Payment method must be DEBIT_CARD, UPI or NET_BANKING!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInitiatePayment", reqData)
		return c.Next()
	}
}

// VerifyPayment validator middleware
func VerifyPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PaymentID     string `json:"payment_id" validate:"required"`
			Status        string `json:"status" validate:"required,oneof=SUCCESS FAILURE"`
			TransactionID string `json:"transaction_id" validate:"required"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "PaymentID":
					errors["payment_id"] = "Payment ID is required!"
				case "Status":
					errors["status"] = "Status must be SUCCESS or FAILURE!"
				case "TransactionID":
					errors["transaction_id"] = "Transaction ID is required!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVerifyPayment", reqData)
		return c.Next()
	}
}
