package routes

import (
	"github.com/anjiri1684/course_platform/handlers"
	"github.com/anjiri1684/course_platform/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	admin := app.Group("/api/v1/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/analytics", handlers.GetDashboardAnalytics)
	admin.Get("/users", handlers.GetAllUsers)
	admin.Patch("/users/:userId/status", handlers.ToggleUserStatus)
}
