package routes

import (
	"github.com/anjiri1684/course_platform/handlers"
	"github.com/anjiri1684/course_platform/middleware"
	"github.com/gofiber/fiber/v2"
)

func QuizRoutes(app *fiber.App) {
	quizzes := app.Group("/api/v1/quizzes", middleware.Protected())

	// Attempt read paths come before /:quizId so "attempts" is not
	// swallowed as a quiz id.
	quizzes.Get("/attempts/my-attempts", handlers.ListMyAttempts)
	quizzes.Get("/attempts/:attemptId", handlers.GetQuizAttempt)

	quizzes.Post("", middleware.InstructorRequired(), handlers.CreateQuiz)
	quizzes.Get("", handlers.ListQuizzes)
	quizzes.Get("/calendar", handlers.GetQuizCalendar)
	quizzes.Get("/:quizId", handlers.GetQuiz)
	quizzes.Put("/:quizId", middleware.InstructorRequired(), handlers.UpdateQuiz)
	quizzes.Delete("/:quizId", middleware.InstructorRequired(), handlers.DeleteQuiz)
	quizzes.Patch("/:quizId/publish", middleware.InstructorRequired(), handlers.PublishQuiz)
	quizzes.Post("/:quizId/questions", middleware.InstructorRequired(), handlers.AddQuestion)
	quizzes.Get("/:quizId/analytics", middleware.InstructorRequired(), handlers.GetQuizAnalytics)

	quizzes.Post("/:quizId/attempt", handlers.StartQuizAttempt)
	quizzes.Post("/:quizId/submit", handlers.SubmitQuizAttempt)
}
