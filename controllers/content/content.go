package contentController

import (
	"sevakiosk/database"
	"sevakiosk/middleware"
	"sevakiosk/models"

	"github.com/gofiber/fiber/v2"
)

// ServiceContentList returns kiosk display content for a language.
func ServiceContentList(c *fiber.Ctx) error {
	language := c.Query("language", "en")

	var contents []models.ServiceContent
	if err := database.Database.Db.
		Where("language = ? AND is_active = ?", language, true).
		Find(&contents).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content fetched successfully.", contents)
}

func FAQList(c *fiber.Ctx) error {
	language := c.Query("language", "en")

	db := database.Database.Db.Where("language = ?", language)
	if category := c.Query("category"); category != "" {
		db = db.Where("category = ?", category)
	}

	var faqs []models.FAQContent
	if err := db.Find(&faqs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch FAQs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "FAQs fetched successfully.", faqs)
}
