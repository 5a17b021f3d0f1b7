package otp

import (
	"errors"
	"fmt"
	"time"

	"sevakiosk/models"

	"gorm.io/gorm"
)

// canIssue applies the sliding-window issuance policy. Both rules read the
// full issuance history, superseded challenges included, which is why the
// queries are unscoped. No side effects.
func (e *Engine) canIssue(identifier string, now time.Time) error {
	// Rule 1: cooldown since the most recent issuance.
	var last models.OTPChallenge
	err := e.db.Unscoped().Where("identifier = ?", identifier).
		Order("created_at DESC").First(&last).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err == nil {
		if elapsed := now.Sub(last.CreatedAt); elapsed < e.cfg.Cooldown {
			wait := int((e.cfg.Cooldown - elapsed).Seconds()) + 1
			return &RateLimitError{
				Hint: fmt.Sprintf("Please wait %d seconds before requesting a new OTP.", wait),
			}
		}
	}

	// Rule 2: burst cap over the trailing window.
	var recent int64
	if err := e.db.Unscoped().Model(&models.OTPChallenge{}).
		Where("identifier = ? AND created_at > ?", identifier, now.Add(-e.cfg.BurstWindow)).
		Count(&recent).Error; err != nil {
		return err
	}
	if recent >= int64(e.cfg.BurstLimit) {
		return &RateLimitError{
			Hint: fmt.Sprintf("Too many attempts. Please try again after %d minutes.",
				int(e.cfg.BurstWindow.Minutes())),
		}
	}

	return nil
}
