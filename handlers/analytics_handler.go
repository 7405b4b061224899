package handlers

import (
	"github.com/anjiri1684/course_platform/database"
	"github.com/anjiri1684/course_platform/models"
	"github.com/anjiri1684/course_platform/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetQuizAnalytics aggregates every attempt of a quiz into the
// analytics report. Figures are computed fresh on each request.
func GetQuizAnalytics(c *fiber.Ctx) error {
	var quiz models.Quiz
	err := database.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&quiz, "id = ?", c.Params("quizId")).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Quiz not found"})
	}

	var attempts []models.QuizAttempt
	if err := database.DB.Preload("Answers").Where("quiz_id = ?", quiz.ID).Find(&attempts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to load attempts"})
	}

	analytics := services.ComputeQuizAnalytics(quiz.Questions, attempts)

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"quiz_id":    quiz.ID,
		"quiz_title": quiz.Title,
		"analytics":  analytics,
	}})
}
