package handlers

import (
	"strings"

	"github.com/anjiri1684/course_platform/database"
	"github.com/anjiri1684/course_platform/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CourseRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Level       string   `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Price       float64  `json:"price" validate:"omitempty,gte=0"`
	Tags        []string `json:"tags"`
	IsPublished *bool    `json:"is_published"`
	IsActive    *bool    `json:"is_active"`
}

func CreateCourse(c *fiber.Ctx) error {
	instructorID := authenticatedUserID(c)

	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	course := models.Course{
		Title:        req.Title,
		Description:  req.Description,
		InstructorID: instructorID,
		Category:     req.Category,
		Level:        "beginner",
		Price:        req.Price,
		Tags:         req.Tags,
	}
	if req.Level != "" {
		course.Level = req.Level
	}
	if req.IsPublished != nil {
		course.IsPublished = *req.IsPublished
	}

	if err := database.DB.Create(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to create course"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": course})
}

func ListCourses(c *fiber.Ctx) error {
	page, limit, offset := parsePagination(c)

	applyFilters := func(query *gorm.DB) *gorm.DB {
		if instructorID := c.Query("instructorId"); instructorID != "" {
			query = query.Where("instructor_id = ?", instructorID)
		}
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}
		if level := c.Query("level"); level != "" {
			query = query.Where("level = ?", level)
		}
		if isPublished := c.Query("isPublished"); isPublished != "" {
			query = query.Where("is_published = ?", isPublished == "true")
		}
		if search := strings.TrimSpace(c.Query("search")); search != "" {
			searchTerm := "%" + search + "%"
			query = query.Where("title ILIKE ? OR description ILIKE ?", searchTerm, searchTerm)
		}
		return query
	}

	var total int64
	applyFilters(database.DB.Model(&models.Course{})).Count(&total)

	var courses []models.Course
	if err := applyFilters(database.DB.Model(&models.Course{})).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&courses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to list courses"})
	}

	return c.JSON(paginatedResponse(courses, len(courses), total, page, limit))
}

func GetCourse(c *fiber.Ctx) error {
	var course models.Course
	err := database.DB.
		Preload("Modules", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Instructor").
		First(&course, "id = ?", c.Params("courseId")).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Course not found"})
	}
	return c.JSON(fiber.Map{"success": true, "data": course})
}

func UpdateCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := database.DB.First(&course, "id = ?", c.Params("courseId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Course not found"})
	}

	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	course.Title = req.Title
	course.Description = req.Description
	course.Category = req.Category
	if req.Level != "" {
		course.Level = req.Level
	}
	course.Price = req.Price
	if req.Tags != nil {
		course.Tags = req.Tags
	}
	if req.IsPublished != nil {
		course.IsPublished = *req.IsPublished
	}
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}

	if err := database.DB.Save(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to update course"})
	}
	return c.JSON(fiber.Map{"success": true, "data": course})
}

func DeleteCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := database.DB.First(&course, "id = ?", c.Params("courseId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Course not found"})
	}

	var quizCount int64
	database.DB.Model(&models.Quiz{}).Where("course_id = ?", course.ID).Count(&quizCount)
	if quizCount > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "error": "Course has quizzes and cannot be deleted"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.CourseModule{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&course).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to delete course"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Course deleted successfully"})
}

type CourseModuleRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Position    int    `json:"position" validate:"omitempty,gte=0"`
}

func AddCourseModule(c *fiber.Ctx) error {
	var course models.Course
	if err := database.DB.First(&course, "id = ?", c.Params("courseId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Course not found"})
	}

	var req CourseModuleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	module := models.CourseModule{
		CourseID:    course.ID,
		Title:       req.Title,
		Description: req.Description,
		Position:    req.Position,
	}
	if err := database.DB.Create(&module).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to add module"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": module})
}

func DeleteCourseModule(c *fiber.Ctx) error {
	result := database.DB.Delete(&models.CourseModule{}, "id = ? AND course_id = ?", c.Params("moduleId"), c.Params("courseId"))
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to delete module"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Module not found"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Module deleted successfully"})
}
