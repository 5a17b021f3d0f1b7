package contentRoutes

import (
	contentControllers "sevakiosk/controllers/content"

	"github.com/gofiber/fiber/v2"
)

func SetupContentRoutes(app *fiber.App) {
	contentGroup := app.Group("/content")

	// Public: the kiosk shows service info and FAQs pre-login.
	contentGroup.Get("/services", contentControllers.ServiceContentList)
	contentGroup.Get("/faqs", contentControllers.FAQList)
}
