package utils

import (
	"encoding/json"
	"log"
	"sevakiosk/database"
	"sevakiosk/models"
)

// LogAudit writes one audit trail entry. Failures are logged, never
// surfaced; auditing must not break the request that triggered it.
func LogAudit(userID *uint, actionType, entityType, entityID, ip string, details map[string]interface{}) {
	payload, err := json.Marshal(details)
	if err != nil {
		log.Printf("Error marshalling audit details: %v", err)
		payload = []byte("{}")
	}

	entry := models.AuditLog{
		UserID:     userID,
		ActionType: actionType,
		EntityType: entityType,
		EntityID:   entityID,
		IPAddress:  ip,
		Details:    payload,
	}

	if err := database.Database.Db.Create(&entry).Error; err != nil {
		log.Printf("Error saving audit log: %v", err)
	}
}
