package adminController

import (
	"sevakiosk/database"
	"sevakiosk/middleware"
	"sevakiosk/models"

	"github.com/gofiber/fiber/v2"
)

// DashboardStats aggregates the numbers shown on the admin dashboard.
func DashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers int64
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)

	var pendingComplaints int64
	db.Model(&models.Complaint{}).Where("status = ?", models.ComplaintOpen).Count(&pendingComplaints)

	var pendingRequests int64
	db.Model(&models.ServiceRequest{}).Where("status = ?", models.RequestSubmitted).Count(&pendingRequests)

	var totalRevenue float64
	db.Model(&models.Payment{}).
		Where("status = ?", models.PaymentSuccess).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalRevenue)

	var overdueBills int64
	db.Model(&models.Bill{}).Where("status = ?", models.BillOverdue).Count(&overdueBills)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully.", fiber.Map{
		"total_users":        totalUsers,
		"pending_complaints": pendingComplaints,
		"pending_requests":   pendingRequests,
		"total_revenue":      totalRevenue,
		"overdue_bills":      overdueBills,
	})
}
