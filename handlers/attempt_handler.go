package handlers

import (
	"errors"
	"time"

	"github.com/anjiri1684/course_platform/database"
	"github.com/anjiri1684/course_platform/models"
	"github.com/anjiri1684/course_platform/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func StartQuizAttempt(c *fiber.Ctx) error {
	userID := authenticatedUserID(c)

	quiz, err := loadQuizWithQuestions(c.Params("quizId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Quiz not found"})
	}

	now := time.Now()

	var existing models.QuizAttempt
	var open *models.QuizAttempt
	err = database.DB.Where("quiz_id = ? AND user_id = ? AND status = ?", quiz.ID, userID, models.AttemptStatusInProgress).
		First(&existing).Error
	if err == nil {
		open = &existing
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to check existing attempts"})
	}

	var attemptCount int64
	database.DB.Model(&models.QuizAttempt{}).Where("quiz_id = ? AND user_id = ?", quiz.ID, userID).Count(&attemptCount)

	start, err := services.DecideAttemptStart(quiz, open, int(attemptCount), now)
	if err != nil {
		if errors.Is(err, services.ErrQuizUnavailable) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "error": "Quiz is not currently available"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Maximum number of attempts reached"})
	}
	if start.Resume {
		return c.JSON(attemptStartResponse(existing, quiz, true))
	}

	attempt := models.QuizAttempt{
		QuizID:        quiz.ID,
		UserID:        userID,
		CourseID:      quiz.CourseID,
		AttemptNumber: start.AttemptNumber,
		Status:        models.AttemptStatusInProgress,
		TotalPoints:   quiz.TotalPoints,
		StartedAt:     now,
		IPAddress:     c.IP(),
		UserAgent:     c.Get("User-Agent"),
	}

	if err := database.DB.Create(&attempt).Error; err != nil {
		// A concurrent start won the insert race against the partial
		// unique index; hand back the winner's attempt as a resume.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := database.DB.Where("quiz_id = ? AND user_id = ? AND status = ?", quiz.ID, userID, models.AttemptStatusInProgress).
				First(&existing).Error; err == nil {
				return c.JSON(attemptStartResponse(existing, quiz, true))
			}
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to start attempt"})
	}

	return c.Status(fiber.StatusCreated).JSON(attemptStartResponse(attempt, quiz, false))
}

func attemptStartResponse(attempt models.QuizAttempt, quiz models.Quiz, resumed bool) fiber.Map {
	return fiber.Map{
		"success": true,
		"data": fiber.Map{
			"attempt_id":       attempt.ID,
			"attempt_number":   attempt.AttemptNumber,
			"resumed":          resumed,
			"quiz_title":       quiz.Title,
			"duration_minutes": quiz.DurationMinutes,
			"started_at":       attempt.StartedAt,
			"questions":        questionsForStudent(quiz.Questions),
		},
	}
}

type SubmitAnswerInput struct {
	QuestionID       string   `json:"question_id" validate:"required,uuid"`
	SelectedOptions  []string `json:"selected_options"`
	AnswerText       string   `json:"answer_text"`
	TimeTakenSeconds int      `json:"time_taken_seconds" validate:"omitempty,gte=0"`
}

type SubmitAttemptRequest struct {
	Answers []SubmitAnswerInput `json:"answers" validate:"required,min=1,dive"`
}

func SubmitQuizAttempt(c *fiber.Ctx) error {
	userID := authenticatedUserID(c)

	var req SubmitAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	quiz, err := loadQuizWithQuestions(c.Params("quizId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Quiz not found"})
	}

	var attempt models.QuizAttempt
	if err := database.DB.Where("quiz_id = ? AND user_id = ?", quiz.ID, userID).
		Order("started_at DESC").First(&attempt).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "No attempt in progress for this quiz"})
	}
	if err := services.EnsureAttemptSubmittable(attempt); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Attempt has already been submitted or expired"})
	}

	submitted := make([]services.SubmittedAnswer, 0, len(req.Answers))
	for _, answer := range req.Answers {
		questionID, _ := uuid.Parse(answer.QuestionID)
		submitted = append(submitted, services.SubmittedAnswer{
			QuestionID:       questionID,
			SelectedOptions:  answer.SelectedOptions,
			AnswerText:       answer.AnswerText,
			TimeTakenSeconds: answer.TimeTakenSeconds,
		})
	}

	result := services.ScoreAttempt(quiz.Questions, submitted, quiz.PassingScore)

	now := time.Now()
	attempt.Status = models.AttemptStatusCompleted
	attempt.CompletedAt = &now
	attempt.Score = result.Score
	attempt.TotalPoints = result.TotalPoints
	attempt.Percentage = result.Percentage
	attempt.IsPassed = result.IsPassed
	attempt.PendingReview = result.PendingReview

	for i := range result.Answers {
		result.Answers[i].QuizAttemptID = attempt.ID
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&attempt).Error; err != nil {
			return err
		}
		if len(result.Answers) > 0 {
			if err := tx.Create(&result.Answers).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to save results"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Quiz submitted successfully",
		"data": fiber.Map{
			"attempt_id":     attempt.ID,
			"score":          result.Score,
			"total_points":   result.TotalPoints,
			"percentage":     result.Percentage,
			"is_passed":      result.IsPassed,
			"pending_review": result.PendingReview,
			"answers":        result.Answers,
		},
	})
}

func ListMyAttempts(c *fiber.Ctx) error {
	userID := authenticatedUserID(c)
	page, limit, offset := parsePagination(c)

	query := database.DB.Model(&models.QuizAttempt{}).Where("user_id = ?", userID)
	countQuery := database.DB.Model(&models.QuizAttempt{}).Where("user_id = ?", userID)

	if quizID := c.Query("quizId"); quizID != "" {
		query = query.Where("quiz_id = ?", quizID)
		countQuery = countQuery.Where("quiz_id = ?", quizID)
	}
	if courseID := c.Query("courseId"); courseID != "" {
		query = query.Where("course_id = ?", courseID)
		countQuery = countQuery.Where("course_id = ?", courseID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
		countQuery = countQuery.Where("status = ?", status)
	}

	var total int64
	countQuery.Count(&total)

	var attempts []models.QuizAttempt
	if err := query.Order("started_at DESC").Offset(offset).Limit(limit).
		Preload("Quiz").Find(&attempts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to list attempts"})
	}

	return c.JSON(paginatedResponse(attempts, len(attempts), total, page, limit))
}

func GetQuizAttempt(c *fiber.Ctx) error {
	userID := authenticatedUserID(c)
	role := authenticatedRole(c)

	var attempt models.QuizAttempt
	err := database.DB.
		Preload("Answers").
		Preload("Answers.Question").
		Preload("Quiz").
		First(&attempt, "id = ?", c.Params("attemptId")).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Attempt not found"})
	}

	if role == "student" && attempt.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "error": "You do not have access to this attempt"})
	}

	return c.JSON(fiber.Map{"success": true, "data": attempt})
}
