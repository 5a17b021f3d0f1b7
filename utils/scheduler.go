package utils

import (
	"log"
	"sevakiosk/database"
	"sevakiosk/models"
	"time"

	"github.com/robfig/cron/v3"
)

// logHousekeeping logs housekeeping events with timestamp
func logHousekeeping(message string) {
	log.Printf("[HOUSEKEEPING %s] %s", time.Now().Format(time.RFC3339), message)
}

// markOverdueBills flips PENDING bills past their due date to OVERDUE
func markOverdueBills() {
	res := database.Database.Db.Model(&models.Bill{}).
		Where("status = ? AND due_date < ?", models.BillPending, time.Now()).
		Update("status", models.BillOverdue)
	if res.Error != nil {
		logHousekeeping("Error marking overdue bills: " + res.Error.Error())
		return
	}
	if res.RowsAffected > 0 {
		logHousekeeping("Marked bills OVERDUE")
	}
}

// expireSystemAlerts deactivates alerts whose display window has passed
func expireSystemAlerts() {
	res := database.Database.Db.Model(&models.SystemAlert{}).
		Where("is_active = ? AND expires_at <= ?", true, time.Now()).
		Update("is_active", false)
	if res.Error != nil {
		logHousekeeping("Error expiring system alerts: " + res.Error.Error())
	}
}

// purgeOldChallenges hard-deletes OTP rows that are dead (consumed, expired
// or superseded) and older than a day. Recent rows stay because the rate
// limiter reads issuance history.
func purgeOldChallenges() {
	cutoff := time.Now().Add(-24 * time.Hour)
	res := database.Database.Db.Unscoped().
		Where("created_at < ? AND (is_used = ? OR expires_at < ? OR deleted_at IS NOT NULL)",
			cutoff, true, time.Now()).
		Delete(&models.OTPChallenge{})
	if res.Error != nil {
		logHousekeeping("Error purging OTP challenges: " + res.Error.Error())
		return
	}
	if res.RowsAffected > 0 {
		logHousekeeping("Purged dead OTP challenge rows")
	}
}

// StartScheduler wires the recurring housekeeping jobs and starts the cron
// runner. The returned cron can be stopped on shutdown.
func StartScheduler() *cron.Cron {
	c := cron.New()

	c.AddFunc("@every 1h", markOverdueBills)
	c.AddFunc("@every 10m", expireSystemAlerts)
	c.AddFunc("@daily", purgeOldChallenges)

	c.Start()
	logHousekeeping("Scheduler started")
	return c
}
