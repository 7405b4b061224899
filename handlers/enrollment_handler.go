package handlers

import (
	"errors"
	"time"

	"github.com/anjiri1684/course_platform/database"
	"github.com/anjiri1684/course_platform/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func EnrollInCourse(c *fiber.Ctx) error {
	studentID := authenticatedUserID(c)

	var course models.Course
	if err := database.DB.First(&course, "id = ?", c.Params("courseId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Course not found"})
	}
	if !course.IsPublished || !course.IsActive {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "error": "Course is not open for enrollment"})
	}

	enrollment := models.Enrollment{
		StudentID:  studentID,
		CourseID:   course.ID,
		Status:     "active",
		EnrolledAt: time.Now(),
	}
	if err := database.DB.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "error": "Already enrolled in this course"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to enroll"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": enrollment})
}

func ListMyEnrollments(c *fiber.Ctx) error {
	studentID := authenticatedUserID(c)
	page, limit, offset := parsePagination(c)

	query := database.DB.Model(&models.Enrollment{}).Where("student_id = ?", studentID)
	countQuery := database.DB.Model(&models.Enrollment{}).Where("student_id = ?", studentID)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
		countQuery = countQuery.Where("status = ?", status)
	}

	var total int64
	countQuery.Count(&total)

	var enrollments []models.Enrollment
	if err := query.Order("enrolled_at DESC").Offset(offset).Limit(limit).
		Preload("Course").Find(&enrollments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to list enrollments"})
	}

	return c.JSON(paginatedResponse(enrollments, len(enrollments), total, page, limit))
}

func Unenroll(c *fiber.Ctx) error {
	studentID := authenticatedUserID(c)

	result := database.DB.Delete(&models.Enrollment{}, "course_id = ? AND student_id = ?", c.Params("courseId"), studentID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to unenroll"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Enrollment not found"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Unenrolled successfully"})
}
