package grievanceController

import (
	"sevakiosk/database"
	"sevakiosk/middleware"
	"sevakiosk/models"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func newComplaintID() string {
	return "CMP-" + strings.ToUpper(uuid.NewString()[:8])
}

func CreateComplaint(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCreateComplaint").(*struct {
		ServiceType string  `json:"service_type" validate:"required"`
		Category    string  `json:"category" validate:"required"`
		Description string  `json:"description" validate:"required,min=10"`
		Priority    *string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	complaint := models.Complaint{
		ComplaintID: newComplaintID(),
		UserID:      userId,
		ServiceType: reqData.ServiceType,
		Category:    reqData.Category,
		Description: reqData.Description,
		Priority:    "MEDIUM",
		Status:      models.ComplaintOpen,
	}
	if reqData.Priority != nil {
		complaint.Priority = *reqData.Priority
	}

	if err := database.Database.Db.Create(&complaint).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register complaint!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Complaint registered successfully.", complaint)
}

func ComplaintList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Pagination setup
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Complaint{}).Where("user_id = ?", userId)
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var total int64
	db.Count(&total)

	var complaints []models.Complaint
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&complaints).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch complaints!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Complaints fetched successfully.", fiber.Map{
		"complaints": complaints,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

func ComplaintDetail(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	complaintID := c.Params("complaintId")

	var complaint models.Complaint
	query := database.Database.Db.Preload("Updates").Where("complaint_id = ?", complaintID)

	// Admins can open any complaint, citizens only their own.
	if role, _ := c.Locals("role").(string); role == models.RoleCitizen {
		query = query.Where("user_id = ?", userId)
	}

	if err := query.First(&complaint).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Complaint not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Complaint fetched successfully.", complaint)
}

// UpdateComplaintStatus is the admin path: moves the complaint through its
// lifecycle and appends a remark entry.
func UpdateComplaintStatus(c *fiber.Ctx) error {
	adminId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedUpdateComplaint").(*struct {
		Status  string `json:"status" validate:"required,oneof=OPEN IN_PROGRESS RESOLVED CLOSED"`
		Remarks string `json:"remarks" validate:"required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	complaintID := c.Params("complaintId")

	var complaint models.Complaint
	if err := database.Database.Db.Where("complaint_id = ?", complaintID).First(&complaint).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Complaint not found!", nil)
	}

	complaint.Status = reqData.Status
	if reqData.Status == models.ComplaintResolved && complaint.ResolvedAt == nil {
		now := time.Now()
		complaint.ResolvedAt = &now
	}

	if err := database.Database.Db.Save(&complaint).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update complaint!", nil)
	}

	update := models.ComplaintUpdate{
		ComplaintRef: complaint.ID,
		Status:       reqData.Status,
		Remarks:      reqData.Remarks,
		UpdatedBy:    adminId,
	}
	if err := database.Database.Db.Create(&update).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record update!", nil)
	}

	// Notify the citizen about the status change.
	notification := models.Notification{
		UserID:           complaint.UserID,
		Title:            "Complaint " + complaint.ComplaintID + " updated",
		Message:          "Status changed to " + reqData.Status + ". " + reqData.Remarks,
		NotificationType: "ALERT",
	}
	database.Database.Db.Create(&notification)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Complaint updated successfully.", complaint)
}
