package billingController

import (
	"sevakiosk/database"
	"sevakiosk/middleware"
	"sevakiosk/models"

	"github.com/gofiber/fiber/v2"
)

// consumerNumbersFor returns the consumer numbers of the caller's accounts.
func consumerNumbersFor(userId uint) ([]string, error) {
	var numbers []string
	err := database.Database.Db.Model(&models.UtilityAccount{}).
		Where("user_id = ? AND is_deleted = ?", userId, false).
		Pluck("consumer_number", &numbers).Error
	return numbers, err
}

func ownsConsumerNumber(userId uint, consumerNumber string) bool {
	var count int64
	database.Database.Db.Model(&models.UtilityAccount{}).
		Where("user_id = ? AND consumer_number = ? AND is_deleted = ?", userId, consumerNumber, false).
		Count(&count)
	return count > 0
}

func AccountList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var accounts []models.UtilityAccount
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userId, false).
		Find(&accounts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch accounts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Accounts fetched successfully.", accounts)
}

// BillsByConsumerNumber lists bills for one of the caller's accounts.
func BillsByConsumerNumber(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	consumerNumber := c.Params("consumerNumber")
	if !ownsConsumerNumber(userId, consumerNumber) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access Denied!", nil)
	}

	var bills []models.Bill
	if err := database.Database.Db.
		Where("consumer_number = ?", consumerNumber).
		Order("bill_date DESC").
		Find(&bills).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch bills!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bills fetched successfully.", bills)
}

func BillDetail(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	billNumber := c.Params("billNumber")

	var bill models.Bill
	if err := database.Database.Db.
		Preload("LineItems").
		Where("bill_number = ?", billNumber).
		First(&bill).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Bill not found!", nil)
	}

	if !ownsConsumerNumber(userId, bill.ConsumerNumber) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access Denied!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bill fetched successfully.", bill)
}

// BillHistory lists bills across all of the caller's accounts.
func BillHistory(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	numbers, err := consumerNumbersFor(userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch accounts!", nil)
	}
	if len(numbers) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Bill history fetched successfully.", []models.Bill{})
	}

	var bills []models.Bill
	if err := database.Database.Db.
		Where("consumer_number IN ?", numbers).
		Order("bill_date DESC").
		Find(&bills).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch bill history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bill history fetched successfully.", bills)
}
