package middleware

import (
	"log"
	"sevakiosk/database"
	"sevakiosk/models"

	"github.com/gofiber/fiber/v2"
)

// APIAccessLogger records endpoint, method, caller and response status for
// every request. The write is synchronous; a single insert per request keeps
// rows ordered and avoids unbounded goroutine growth under load.
func APIAccessLogger(c *fiber.Ctx) error {
	err := c.Next()

	var userID *uint
	if id, ok := c.Locals("userId").(uint); ok {
		userID = &id
	}

	entry := models.APIAccessLog{
		Endpoint:       c.Path(),
		Method:         c.Method(),
		UserID:         userID,
		IPAddress:      c.IP(),
		ResponseStatus: c.Response().StatusCode(),
	}
	if dbErr := database.Database.Db.Create(&entry).Error; dbErr != nil {
		log.Printf("Error saving API access log: %v", dbErr)
	}

	return err
}
