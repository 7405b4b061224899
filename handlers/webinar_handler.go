package handlers

import (
	"errors"
	"time"

	"github.com/anjiri1684/course_platform/database"
	"github.com/anjiri1684/course_platform/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WebinarRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	CourseID    *string   `json:"course_id" validate:"omitempty,uuid"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
	Capacity    int       `json:"capacity" validate:"omitempty,gt=0"`
	MeetingURL  string    `json:"meeting_url" validate:"omitempty,url"`
	IsActive    *bool     `json:"is_active"`
}

func CreateWebinar(c *fiber.Ctx) error {
	presenterID := authenticatedUserID(c)

	var req WebinarRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if !req.EndTime.After(req.StartTime) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "end_time must be after start_time"})
	}

	webinar := webinarFromRequest(req, presenterID)
	if req.CourseID != nil {
		courseID, _ := uuid.Parse(*req.CourseID)
		var course models.Course
		if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Course not found"})
		}
		webinar.CourseID = &courseID
	}

	if err := database.DB.Create(&webinar).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to create webinar"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": webinar})
}

// webinarFromRequest maps a request body onto a new webinar. Capacity
// defaults to 100 and webinars are active unless the body says
// otherwise.
func webinarFromRequest(req WebinarRequest, presenterID uuid.UUID) models.Webinar {
	webinar := models.Webinar{
		Title:       req.Title,
		Description: req.Description,
		PresenterID: presenterID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Capacity:    100,
		MeetingURL:  req.MeetingURL,
		IsActive:    true,
	}
	if req.Capacity > 0 {
		webinar.Capacity = req.Capacity
	}
	if req.IsActive != nil {
		webinar.IsActive = *req.IsActive
	}
	return webinar
}

func ListWebinars(c *fiber.Ctx) error {
	page, limit, offset := parsePagination(c)

	applyFilters := func(query *gorm.DB) *gorm.DB {
		query = query.Where("is_active = ?", true)
		if courseID := c.Query("courseId"); courseID != "" {
			query = query.Where("course_id = ?", courseID)
		}
		if upcoming := c.Query("upcoming"); upcoming == "true" {
			query = query.Where("start_time > ?", time.Now())
		}
		return query
	}

	var total int64
	applyFilters(database.DB.Model(&models.Webinar{})).Count(&total)

	var webinars []models.Webinar
	if err := applyFilters(database.DB.Model(&models.Webinar{})).
		Order("start_time ASC").Offset(offset).Limit(limit).
		Preload("Presenter").Find(&webinars).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to list webinars"})
	}

	return c.JSON(paginatedResponse(webinars, len(webinars), total, page, limit))
}

func RegisterForWebinar(c *fiber.Ctx) error {
	userID := authenticatedUserID(c)

	var webinar models.Webinar
	if err := database.DB.First(&webinar, "id = ?", c.Params("webinarId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Webinar not found"})
	}
	if !webinar.IsActive || webinar.StartTime.Before(time.Now()) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "error": "Webinar is not open for registration"})
	}

	var registered int64
	database.DB.Model(&models.WebinarRegistration{}).Where("webinar_id = ?", webinar.ID).Count(&registered)
	if registered >= int64(webinar.Capacity) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "error": "Webinar is at capacity"})
	}

	registration := models.WebinarRegistration{
		WebinarID:    webinar.ID,
		UserID:       userID,
		RegisteredAt: time.Now(),
	}
	if err := database.DB.Create(&registration).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "error": "Already registered for this webinar"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to register"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": registration})
}

func DeleteWebinar(c *fiber.Ctx) error {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var webinar models.Webinar
		if err := tx.First(&webinar, "id = ?", c.Params("webinarId")).Error; err != nil {
			return err
		}
		if err := tx.Where("webinar_id = ?", webinar.ID).Delete(&models.WebinarRegistration{}).Error; err != nil {
			return err
		}
		return tx.Delete(&webinar).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Webinar not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to delete webinar"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Webinar deleted successfully"})
}
