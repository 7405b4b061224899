package handlers

import (
	"fmt"

	"github.com/anjiri1684/course_platform/database"
	"github.com/anjiri1684/course_platform/models"
	"github.com/anjiri1684/course_platform/notifications"
	"github.com/anjiri1684/course_platform/utils"
	"github.com/gofiber/fiber/v2"
)

type ContactRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Subject  string `json:"subject" validate:"required"`
	Message  string `json:"message" validate:"required"`
}

func SubmitContactMessage(emailSvc *notifications.EmailService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req ContactRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse JSON"})
		}
		if err := validate.Struct(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
		}

		reference, err := utils.GenerateTicketReference(database.DB)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to submit message"})
		}

		message := models.ContactMessage{
			Reference: reference,
			FullName:  req.FullName,
			Email:     req.Email,
			Subject:   req.Subject,
			Message:   req.Message,
		}
		if err := database.DB.Create(&message).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to submit message"})
		}

		go emailSvc.SendEmail(req.FullName, req.Email, "We received your message",
			fmt.Sprintf("<p>Thanks for reaching out. Your reference is <strong>%s</strong>. We will get back to you soon.</p>", reference))

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "Message received",
			"data":    fiber.Map{"reference": reference},
		})
	}
}

func ListContactMessages(c *fiber.Ctx) error {
	page, limit, offset := parsePagination(c)

	query := database.DB.Model(&models.ContactMessage{})
	countQuery := database.DB.Model(&models.ContactMessage{})
	if handled := c.Query("handled"); handled != "" {
		query = query.Where("is_handled = ?", handled == "true")
		countQuery = countQuery.Where("is_handled = ?", handled == "true")
	}

	var total int64
	countQuery.Count(&total)

	var messages []models.ContactMessage
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to list messages"})
	}

	return c.JSON(paginatedResponse(messages, len(messages), total, page, limit))
}

func MarkContactMessageHandled(c *fiber.Ctx) error {
	result := database.DB.Model(&models.ContactMessage{}).
		Where("id = ?", c.Params("messageId")).Update("is_handled", true)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to update message"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Message not found"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Message marked as handled"})
}
