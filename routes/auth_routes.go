package routes

import (
	"github.com/anjiri1684/course_platform/handlers"
	"github.com/anjiri1684/course_platform/middleware"
	"github.com/anjiri1684/course_platform/notifications"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App, emailSvc *notifications.EmailService) {
	auth := app.Group("/api/v1/auth")

	auth.Post("/register", handlers.RegisterUser(emailSvc))
	auth.Post("/login", handlers.LoginUser)
	auth.Get("/me", middleware.Protected(), handlers.GetMyProfile)
}
