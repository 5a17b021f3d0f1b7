package notificationController

import (
	"sevakiosk/database"
	"sevakiosk/middleware"
	"sevakiosk/models"
	"time"

	"github.com/gofiber/fiber/v2"
)

func NotificationList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Notification{}).Where("user_id = ?", userId)
	if c.Query("unread") == "true" {
		db = db.Where("is_read = ?", false)
	}

	var total int64
	db.Count(&total)

	var notifications []models.Notification
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&notifications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notifications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully.", fiber.Map{
		"notifications": notifications,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

func MarkRead(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid notification ID!", nil)
	}

	res := database.Database.Db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userId).
		Update("is_read", true)
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update notification!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notification not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification marked as read.", nil)
}

// ActiveAlerts is public: the kiosk shows live system alerts pre-login.
func ActiveAlerts(c *fiber.Ctx) error {
	var alerts []models.SystemAlert
	if err := database.Database.Db.
		Where("is_active = ? AND expires_at > ?", true, time.Now()).
		Order("created_at DESC").
		Find(&alerts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch alerts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Alerts fetched successfully.", alerts)
}
