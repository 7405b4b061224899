package handlers

import (
	"strings"
	"time"

	"github.com/anjiri1684/course_platform/database"
	"github.com/anjiri1684/course_platform/models"
	"github.com/gofiber/fiber/v2"
)

type DashboardAnalyticsResponse struct {
	TotalStudents      int64                `json:"total_students"`
	TotalInstructors   int64                `json:"total_instructors"`
	TotalCourses       int64                `json:"total_courses"`
	PublishedQuizzes   int64                `json:"published_quizzes"`
	AttemptsLast30Days int64                `json:"attempts_last_30_days"`
	RecentAttempts     []models.QuizAttempt `json:"recent_attempts"`
}

func GetDashboardAnalytics(c *fiber.Ctx) error {
	var response DashboardAnalyticsResponse

	database.DB.Model(&models.User{}).Where("role = ?", "student").Count(&response.TotalStudents)
	database.DB.Model(&models.User{}).Where("role = ?", "instructor").Count(&response.TotalInstructors)
	database.DB.Model(&models.Course{}).Count(&response.TotalCourses)
	database.DB.Model(&models.Quiz{}).Where("is_published = ?", true).Count(&response.PublishedQuizzes)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&models.QuizAttempt{}).Where("started_at > ?", thirtyDaysAgo).Count(&response.AttemptsLast30Days)

	database.DB.Order("started_at desc").Limit(5).Preload("User").Preload("Quiz").Find(&response.RecentAttempts)

	return c.JSON(fiber.Map{"success": true, "data": response})
}

func GetAllUsers(c *fiber.Ctx) error {
	page, limit, offset := parsePagination(c)
	search := strings.TrimSpace(c.Query("search"))

	var users []models.User
	var totalUsers int64

	query := database.DB.Model(&models.User{})
	countQuery := database.DB.Model(&models.User{})

	if search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("full_name ILIKE ? OR email ILIKE ?", searchTerm, searchTerm)
		countQuery = countQuery.Where("full_name ILIKE ? OR email ILIKE ?", searchTerm, searchTerm)
	}
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
		countQuery = countQuery.Where("role = ?", role)
	}

	countQuery.Count(&totalUsers)
	query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users)

	return c.JSON(paginatedResponse(users, len(users), totalUsers, page, limit))
}

func ToggleUserStatus(c *fiber.Ctx) error {
	type Request struct {
		IsActive bool `json:"is_active"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse JSON"})
	}

	result := database.DB.Model(&models.User{}).Where("id = ?", c.Params("userId")).Update("is_active", req.IsActive)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to update user"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "User status updated successfully"})
}
