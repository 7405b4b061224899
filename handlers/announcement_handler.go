package handlers

import (
	"time"

	"github.com/anjiri1684/course_platform/database"
	"github.com/anjiri1684/course_platform/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnnouncementRequest struct {
	CourseID     *string    `json:"course_id" validate:"omitempty,uuid"`
	Title        string     `json:"title" validate:"required"`
	Body         string     `json:"body" validate:"required"`
	IsPinned     bool       `json:"is_pinned"`
	PublishFrom  *time.Time `json:"publish_from"`
	PublishUntil *time.Time `json:"publish_until"`
}

func CreateAnnouncement(c *fiber.Ctx) error {
	authorID := authenticatedUserID(c)

	var req AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if req.PublishFrom != nil && req.PublishUntil != nil && !req.PublishUntil.After(*req.PublishFrom) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "publish_until must be after publish_from"})
	}

	announcement := models.Announcement{
		AuthorID:     authorID,
		Title:        req.Title,
		Body:         req.Body,
		IsPinned:     req.IsPinned,
		PublishFrom:  req.PublishFrom,
		PublishUntil: req.PublishUntil,
	}
	if req.CourseID != nil {
		courseID, _ := uuid.Parse(*req.CourseID)
		var course models.Course
		if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Course not found"})
		}
		announcement.CourseID = &courseID
	}

	if err := database.DB.Create(&announcement).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to create announcement"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": announcement})
}

func ListAnnouncements(c *fiber.Ctx) error {
	page, limit, offset := parsePagination(c)
	now := time.Now()

	applyFilters := func(query *gorm.DB) *gorm.DB {
		query = query.Where("(publish_from IS NULL OR publish_from <= ?) AND (publish_until IS NULL OR publish_until >= ?)", now, now)
		if courseID := c.Query("courseId"); courseID != "" {
			query = query.Where("course_id = ? OR course_id IS NULL", courseID)
		}
		return query
	}

	var total int64
	applyFilters(database.DB.Model(&models.Announcement{})).Count(&total)
	query := applyFilters(database.DB.Model(&models.Announcement{}))

	var announcements []models.Announcement
	if err := query.Order("is_pinned DESC, created_at DESC").Offset(offset).Limit(limit).
		Preload("Author").Find(&announcements).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to list announcements"})
	}

	return c.JSON(paginatedResponse(announcements, len(announcements), total, page, limit))
}

func DeleteAnnouncement(c *fiber.Ctx) error {
	result := database.DB.Delete(&models.Announcement{}, "id = ?", c.Params("announcementId"))
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to delete announcement"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Announcement not found"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Announcement deleted successfully"})
}
