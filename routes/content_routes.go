package routes

import (
	"github.com/anjiri1684/course_platform/handlers"
	"github.com/anjiri1684/course_platform/middleware"
	"github.com/gofiber/fiber/v2"
)

func ContentRoutes(app *fiber.App) {
	announcements := app.Group("/api/v1/announcements", middleware.Protected())
	announcements.Post("", middleware.InstructorRequired(), handlers.CreateAnnouncement)
	announcements.Get("", handlers.ListAnnouncements)
	announcements.Delete("/:announcementId", middleware.InstructorRequired(), handlers.DeleteAnnouncement)

	webinars := app.Group("/api/v1/webinars", middleware.Protected())
	webinars.Post("", middleware.InstructorRequired(), handlers.CreateWebinar)
	webinars.Get("", handlers.ListWebinars)
	webinars.Post("/:webinarId/register", handlers.RegisterForWebinar)
	webinars.Delete("/:webinarId", middleware.InstructorRequired(), handlers.DeleteWebinar)
}
