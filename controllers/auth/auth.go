package authController

import (
	"errors"
	"log"
	"sevakiosk/database"
	"sevakiosk/middleware"
	"sevakiosk/models"
	"sevakiosk/otp"
	"sevakiosk/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Engine is the OTP challenge engine, wired in main at startup.
var Engine *otp.Engine

// SendOTP issues a one-time code to a phone number or consumer number.
func SendOTP(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSendOTP").(*struct {
		Identifier string `json:"identifier"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	_, err := Engine.Issue(reqData.Identifier, time.Now())
	if err != nil {
		var rateErr *otp.RateLimitError
		if errors.As(err, &rateErr) {
			return middleware.JsonResponse(c, fiber.StatusTooManyRequests, false, rateErr.Hint, nil)
		}
		if errors.Is(err, otp.ErrDeliveryFailed) {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send OTP via SMS.", nil)
		}
		log.Printf("Error issuing OTP: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send OTP.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP sent successfully.", nil)
}

// VerifyOTP validates a submitted code, resolves the identifier to an
// account (provisioning one on first contact) and issues the token pair.
// Every rejection maps to the same generic message so callers cannot probe
// which condition failed; the precise reason is logged.
func VerifyOTP(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedVerifyOTP").(*struct {
		Identifier string `json:"identifier"`
		Code       string `json:"code"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := Engine.Verify(reqData.Identifier, reqData.Code, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, otp.ErrNotFound),
			errors.Is(err, otp.ErrExpired),
			errors.Is(err, otp.ErrStale),
			errors.Is(err, otp.ErrAlreadyConsumed):
			log.Printf("OTP verification rejected for %s: %v", reqData.Identifier, err)
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid or Expired OTP.", nil)
		default:
			log.Printf("Error verifying OTP: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify OTP.", nil)
		}
	}

	user := result.Account

	token, refresh, jti, err := middleware.GenerateTokenPair(user)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	// Session bookkeeping and audit trail.
	now := time.Now()
	session := models.UserSession{
		UserID:     user.ID,
		TokenID:    jti,
		IPAddress:  c.IP(),
		DeviceInfo: c.Get("User-Agent"),
	}
	if err := database.Database.Db.Create(&session).Error; err != nil {
		log.Printf("Error saving user session: %v", err)
	}
	if err := database.Database.Db.Model(user).Update("last_login", now).Error; err != nil {
		log.Printf("Error saving last login time: %v", err)
	}

	userID := user.ID
	utils.LogAudit(&userID, models.AuditLogin, "User", user.Username, c.IP(), map[string]interface{}{
		"is_new_user": result.IsNew,
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "OTP Verified Successfully", fiber.Map{
		"token":       token,
		"refresh":     refresh,
		"user_id":     user.ID,
		"is_new_user": result.IsNew,
		"role":        user.Role,
	})
}

// RefreshToken exchanges a valid refresh token for a fresh pair.
func RefreshToken(c *fiber.Ctx) error {
	reqData := new(struct {
		Refresh string `json:"refresh"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.Refresh == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Refresh token is required!", nil)
	}

	userID, err := middleware.ParseRefreshToken(reqData.Refresh)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	token, refresh, _, err := middleware.GenerateTokenPair(&user)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Token refreshed.", fiber.Map{
		"token":   token,
		"refresh": refresh,
	})
}

// Logout closes the kiosk session tied to the presented access token.
func Logout(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if jti, ok := c.Locals("tokenId").(string); ok && jti != "" {
		now := time.Now()
		if err := database.Database.Db.Model(&models.UserSession{}).
			Where("user_id = ? AND token_id = ? AND logout_time IS NULL", userID, jti).
			Update("logout_time", now).Error; err != nil {
			log.Printf("Error closing session: %v", err)
		}
	}

	utils.LogAudit(&userID, models.AuditLogout, "User", "", c.IP(), nil)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully.", nil)
}
