package serviceRequestController

import (
	"encoding/json"
	"sevakiosk/database"
	"sevakiosk/middleware"
	"sevakiosk/models"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func newRequestID() string {
	return "REQ-" + strings.ToUpper(uuid.NewString()[:8])
}

func CreateRequest(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCreateRequest").(*struct {
		ServiceType string                 `json:"service_type" validate:"required"`
		RequestType string                 `json:"request_type" validate:"required"`
		Details     map[string]interface{} `json:"details"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	details, err := json.Marshal(reqData.Details)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request details!", nil)
	}

	request := models.ServiceRequest{
		RequestID:   newRequestID(),
		UserID:      userId,
		ServiceType: reqData.ServiceType,
		RequestType: reqData.RequestType,
		Details:     details,
		Status:      models.RequestSubmitted,
	}
	if err := database.Database.Db.Create(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Service request submitted successfully.", request)
}

func RequestList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.ServiceRequest{}).Where("user_id = ?", userId)
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var total int64
	db.Count(&total)

	var requests []models.ServiceRequest
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&requests).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch requests!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Service requests fetched successfully.", fiber.Map{
		"requests": requests,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// UpdateRequestStatus is the admin path through the request lifecycle.
func UpdateRequestStatus(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedUpdateRequest").(*struct {
		Status string `json:"status" validate:"required,oneof=SUBMITTED PROCESSING APPROVED REJECTED"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	requestID := c.Params("requestId")

	var request models.ServiceRequest
	if err := database.Database.Db.Where("request_id = ?", requestID).First(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Service request not found!", nil)
	}

	request.Status = reqData.Status
	if err := database.Database.Db.Save(&request).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update request!", nil)
	}

	notification := models.Notification{
		UserID:           request.UserID,
		Title:            "Service request " + request.RequestID + " updated",
		Message:          "Status changed to " + reqData.Status + ".",
		NotificationType: "INFO",
	}
	database.Database.Db.Create(&notification)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Service request updated successfully.", request)
}
