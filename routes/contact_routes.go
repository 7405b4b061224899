package routes

import (
	"github.com/anjiri1684/course_platform/handlers"
	"github.com/anjiri1684/course_platform/middleware"
	"github.com/anjiri1684/course_platform/notifications"
	"github.com/gofiber/fiber/v2"
)

func ContactRoutes(app *fiber.App, emailSvc *notifications.EmailService) {
	app.Post("/api/v1/contact", handlers.SubmitContactMessage(emailSvc))

	admin := app.Group("/api/v1/admin/contact-messages", middleware.Protected(), middleware.AdminRequired())
	admin.Get("", handlers.ListContactMessages)
	admin.Patch("/:messageId/handled", handlers.MarkContactMessageHandled)
}
