package routes

import (
	"github.com/anjiri1684/course_platform/handlers"
	"github.com/anjiri1684/course_platform/middleware"
	"github.com/gofiber/fiber/v2"
)

func CommunityRoutes(app *fiber.App) {
	community := app.Group("/api/v1/community/questions", middleware.Protected())

	community.Post("", handlers.AskQuestion)
	community.Get("", handlers.ListQuestions)
	community.Get("/:questionId", handlers.GetQuestion)
	community.Post("/:questionId/answers", handlers.AnswerQuestion)
	community.Patch("/:questionId/answers/:answerId/accept", handlers.AcceptAnswer)
}
