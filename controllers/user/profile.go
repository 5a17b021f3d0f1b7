package userController

import (
	"sevakiosk/database"
	"sevakiosk/middleware"
	"sevakiosk/models"

	"github.com/gofiber/fiber/v2"
)

func GetProfile(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully.", user)
}

func UpdateProfile(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if reqData.Username != "" {
		user.Username = reqData.Username
	}
	if reqData.Email != "" {
		user.Email = reqData.Email
	}

	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully.", user)
}

// UpdatePreferences stores the kiosk display language for the user.
func UpdatePreferences(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := new(struct {
		LanguagePreference string `json:"language_preference"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.LanguagePreference == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Language preference is required!", nil)
	}

	if err := database.Database.Db.Model(&models.User{}).
		Where("id = ? AND is_deleted = ?", userId, false).
		Update("language_preference", reqData.LanguagePreference).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update preferences!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Preferences updated successfully.", nil)
}
