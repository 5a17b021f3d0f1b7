package paymentController

import (
	"encoding/json"
	"log"
	"sevakiosk/database"
	"sevakiosk/middleware"
	"sevakiosk/models"
	"sevakiosk/utils"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newReference(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.NewString()[:8])
}

// InitiatePayment opens a payment against one of the caller's bills. The
// amount is taken from the bill (amount plus arrears), never from the
// request.
func InitiatePayment(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedInitiatePayment").(*struct {
		BillNumber    string `json:"bill_number" validate:"required"`
		PaymentMethod string `json:"payment_method" validate:"required,oneof=DEBIT_CARD UPI NET_BANKING"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var bill models.Bill
	if err := database.Database.Db.Where("bill_number = ?", reqData.BillNumber).First(&bill).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Bill not found!", nil)
	}
	if bill.Status == models.BillPaid {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Bill is already paid!", nil)
	}

	var count int64
	database.Database.Db.Model(&models.UtilityAccount{}).
		Where("user_id = ? AND consumer_number = ? AND is_deleted = ?", userId, bill.ConsumerNumber, false).
		Count(&count)
	if count == 0 {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access Denied!", nil)
	}

	payment := models.Payment{
		PaymentID:     newReference("PAY"),
		BillID:        bill.ID,
		UserID:        userId,
		Amount:        bill.Amount + bill.Arrears,
		PaymentMethod: reqData.PaymentMethod,
		Status:        models.PaymentInitiated,
	}
	if err := database.Database.Db.Create(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to initiate payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment initiated successfully.", payment)
}

// VerifyPayment records the gateway callback result. On SUCCESS the bill is
// closed and a printable receipt is generated in the same transaction.
func VerifyPayment(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedVerifyPayment").(*struct {
		PaymentID     string `json:"payment_id" validate:"required"`
		Status        string `json:"status" validate:"required,oneof=SUCCESS FAILURE"`
		TransactionID string `json:"transaction_id" validate:"required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var payment models.Payment
	if err := database.Database.Db.
		Where("payment_id = ? AND user_id = ?", reqData.PaymentID, userId).
		First(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment Not Found!", nil)
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		payment.Status = reqData.Status
		payment.TransactionID = reqData.TransactionID
		if err := tx.Save(&payment).Error; err != nil {
			return err
		}

		if reqData.Status != models.PaymentSuccess {
			return nil
		}

		if err := tx.Model(&models.Bill{}).
			Where("id = ?", payment.BillID).
			Update("status", models.BillPaid).Error; err != nil {
			return err
		}

		receiptData, err := json.Marshal(map[string]interface{}{
			"payment_id": payment.PaymentID,
			"amount":     payment.Amount,
			"method":     payment.PaymentMethod,
			"date":       time.Now().UTC().Format(time.RFC3339),
		})
		if err != nil {
			return err
		}

		receipt := models.PaymentReceipt{
			PaymentID:     payment.ID,
			ReceiptNumber: newReference("REC"),
			ReceiptData:   receiptData,
		}
		return tx.Create(&receipt).Error
	})
	if err != nil {
		log.Printf("Error verifying payment %s: %v", reqData.PaymentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify payment!", nil)
	}

	utils.LogAudit(&userId, models.AuditPayment, "Payment", payment.PaymentID, c.IP(), map[string]interface{}{
		"status": payment.Status,
		"amount": payment.Amount,
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment status recorded.", fiber.Map{
		"payment_id": payment.PaymentID,
		"status":     payment.Status,
	})
}

func Receipt(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	paymentID := c.Params("paymentId")

	var payment models.Payment
	if err := database.Database.Db.
		Where("payment_id = ? AND user_id = ?", paymentID, userId).
		First(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment Not Found!", nil)
	}

	var receipt models.PaymentReceipt
	if err := database.Database.Db.Where("payment_id = ?", payment.ID).First(&receipt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Receipt not available!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Receipt fetched successfully.", fiber.Map{
		"payment": payment,
		"receipt": receipt,
	})
}
