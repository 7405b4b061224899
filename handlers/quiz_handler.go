package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/anjiri1684/course_platform/database"
	"github.com/anjiri1684/course_platform/models"
	"github.com/anjiri1684/course_platform/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OptionInput struct {
	OptionText string `json:"option_text" validate:"required"`
	IsCorrect  bool   `json:"is_correct"`
}

type QuestionInput struct {
	QuestionText  string        `json:"question_text" validate:"required"`
	QuestionType  string        `json:"question_type" validate:"required,oneof=single_choice multiple_choice true_false short_answer essay"`
	Options       []OptionInput `json:"options" validate:"dive"`
	CorrectAnswer string        `json:"correct_answer"`
	Points        int           `json:"points" validate:"omitempty,min=1"`
	Explanation   string        `json:"explanation"`
}

type CreateQuizRequest struct {
	Title           string          `json:"title" validate:"required"`
	Description     string          `json:"description"`
	Instructions    string          `json:"instructions"`
	CourseID        string          `json:"course_id" validate:"required,uuid"`
	ModuleID        *string         `json:"module_id" validate:"omitempty,uuid"`
	DurationMinutes int             `json:"duration_minutes" validate:"omitempty,gt=0"`
	PassingScore    float64         `json:"passing_score" validate:"omitempty,gte=0,lte=100"`
	MaxAttempts     int             `json:"max_attempts" validate:"omitempty,gt=0"`
	Tags            []string        `json:"tags"`
	AvailableFrom   *time.Time      `json:"available_from"`
	AvailableUntil  *time.Time      `json:"available_until"`
	Questions       []QuestionInput `json:"questions" validate:"dive"`
}

func questionFromInput(input QuestionInput, position int) models.Question {
	points := input.Points
	if points < 1 {
		points = 1
	}
	question := models.Question{
		QuestionText:  input.QuestionText,
		QuestionType:  input.QuestionType,
		CorrectAnswer: input.CorrectAnswer,
		Points:        points,
		Explanation:   input.Explanation,
		Position:      position,
	}
	for i, opt := range input.Options {
		question.Options = append(question.Options, models.Option{
			OptionText: opt.OptionText,
			IsCorrect:  opt.IsCorrect,
			Position:   i,
		})
	}
	return question
}

func CreateQuiz(c *fiber.Ctx) error {
	instructorID := authenticatedUserID(c)

	var req CreateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	courseID, _ := uuid.Parse(req.CourseID)
	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Course not found"})
	}

	if err := services.ValidateAvailabilityWindow(req.AvailableFrom, req.AvailableUntil); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if len(req.Questions) > models.MaxQuestionsPerQuiz {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": fmt.Sprintf("A quiz cannot have more than %d questions", models.MaxQuestionsPerQuiz)})
	}

	quiz := models.Quiz{
		Title:           req.Title,
		Description:     req.Description,
		Instructions:    req.Instructions,
		CourseID:        courseID,
		InstructorID:    instructorID,
		DurationMinutes: 30,
		PassingScore:    50,
		MaxAttempts:     1,
		Tags:            req.Tags,
		AvailableFrom:   req.AvailableFrom,
		AvailableUntil:  req.AvailableUntil,
	}
	if req.DurationMinutes > 0 {
		quiz.DurationMinutes = req.DurationMinutes
	}
	if req.PassingScore > 0 {
		quiz.PassingScore = req.PassingScore
	}
	if req.MaxAttempts > 0 {
		quiz.MaxAttempts = req.MaxAttempts
	}
	if req.ModuleID != nil {
		moduleID, _ := uuid.Parse(*req.ModuleID)
		var module models.CourseModule
		if err := database.DB.First(&module, "id = ? AND course_id = ?", moduleID, courseID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Course module not found"})
		}
		quiz.ModuleID = &moduleID
	}

	for i, input := range req.Questions {
		question := questionFromInput(input, i)
		if err := services.ValidateQuestion(question); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": fmt.Sprintf("question %d: %v", i+1, err)})
		}
		quiz.Questions = append(quiz.Questions, question)
	}
	quiz.TotalQuestions, quiz.TotalPoints = services.DeriveQuizTotals(quiz.Questions)

	if err := database.DB.Create(&quiz).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to create quiz"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": quiz})
}

// applyDerivedStatusFilter translates a derived quiz status into the
// flag/date conditions that produce it, preserving the precedence
// disabled > draft > scheduled > expired > active.
func applyDerivedStatusFilter(query *gorm.DB, status string, now time.Time) *gorm.DB {
	switch status {
	case services.QuizStatusDisabled:
		return query.Where("is_active = ?", false)
	case services.QuizStatusDraft:
		return query.Where("is_active = ? AND is_published = ?", true, false)
	case services.QuizStatusScheduled:
		return query.Where("is_active = ? AND is_published = ? AND available_from > ?", true, true, now)
	case services.QuizStatusExpired:
		return query.Where("is_active = ? AND is_published = ? AND (available_from IS NULL OR available_from <= ?) AND available_until < ?", true, true, now, now)
	case services.QuizStatusActive:
		return query.Where("is_active = ? AND is_published = ? AND (available_from IS NULL OR available_from <= ?) AND (available_until IS NULL OR available_until >= ?)", true, true, now, now)
	}
	return query
}

func applyQuizFilters(c *fiber.Ctx, query *gorm.DB, now time.Time) *gorm.DB {
	if courseID := c.Query("courseId"); courseID != "" {
		query = query.Where("course_id = ?", courseID)
	}
	if moduleID := c.Query("moduleId"); moduleID != "" {
		query = query.Where("module_id = ?", moduleID)
	}
	if instructorID := c.Query("instructorId"); instructorID != "" {
		query = query.Where("instructor_id = ?", instructorID)
	}
	if isActive := c.Query("isActive"); isActive != "" {
		query = query.Where("is_active = ?", isActive == "true")
	}
	if isPublished := c.Query("isPublished"); isPublished != "" {
		query = query.Where("is_published = ?", isPublished == "true")
	}
	if status := c.Query("status"); status != "" {
		query = applyDerivedStatusFilter(query, status, now)
	}
	if fromDate := c.Query("fromDate"); fromDate != "" {
		query = query.Where("COALESCE(available_from, created_at) >= ?", fromDate)
	}
	if toDate := c.Query("toDate"); toDate != "" {
		query = query.Where("COALESCE(available_from, created_at) <= ?", toDate)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ? OR array_to_string(tags, ' ') ILIKE ?", searchTerm, searchTerm, searchTerm)
	}
	return query
}

type quizListItem struct {
	models.Quiz
	Status string `json:"status"`
}

func ListQuizzes(c *fiber.Ctx) error {
	page, limit, offset := parsePagination(c)
	now := time.Now()

	query := applyQuizFilters(c, database.DB.Model(&models.Quiz{}), now)
	countQuery := applyQuizFilters(c, database.DB.Model(&models.Quiz{}), now)

	var total int64
	countQuery.Count(&total)

	var quizzes []models.Quiz
	if err := query.Order("COALESCE(available_from, created_at) DESC").
		Offset(offset).Limit(limit).Find(&quizzes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to list quizzes"})
	}

	items := make([]quizListItem, len(quizzes))
	for i, quiz := range quizzes {
		items[i] = quizListItem{Quiz: quiz, Status: services.DeriveQuizStatus(quiz, now)}
	}

	return c.JSON(paginatedResponse(items, len(items), total, page, limit))
}

// GetQuizCalendar groups a course's quizzes by availability date.
func GetQuizCalendar(c *fiber.Ctx) error {
	now := time.Now()
	query := applyQuizFilters(c, database.DB.Model(&models.Quiz{}), now)

	var quizzes []models.Quiz
	if err := query.Order("COALESCE(available_from, created_at) ASC").Find(&quizzes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to load quiz calendar"})
	}

	grouped := make(map[string][]quizListItem)
	for _, quiz := range quizzes {
		day := quiz.CreatedAt
		if quiz.AvailableFrom != nil {
			day = *quiz.AvailableFrom
		}
		key := day.Format("2006-01-02")
		grouped[key] = append(grouped[key], quizListItem{Quiz: quiz, Status: services.DeriveQuizStatus(quiz, now)})
	}

	return c.JSON(fiber.Map{"success": true, "count": len(quizzes), "data": grouped})
}

// studentQuestionView strips correctness before a quiz reaches a student.
type studentOptionView struct {
	ID         uuid.UUID `json:"id"`
	OptionText string    `json:"option_text"`
	Position   int       `json:"position"`
}

type studentQuestionView struct {
	ID           uuid.UUID           `json:"id"`
	QuestionText string              `json:"question_text"`
	QuestionType string              `json:"question_type"`
	Position     int                 `json:"position"`
	Points       int                 `json:"points"`
	Options      []studentOptionView `json:"options,omitempty"`
}

func questionsForStudent(questions []models.Question) []studentQuestionView {
	views := make([]studentQuestionView, len(questions))
	for i, q := range questions {
		view := studentQuestionView{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			QuestionType: q.QuestionType,
			Position:     q.Position,
			Points:       q.Points,
		}
		for _, opt := range q.Options {
			view.Options = append(view.Options, studentOptionView{ID: opt.ID, OptionText: opt.OptionText, Position: opt.Position})
		}
		views[i] = view
	}
	return views
}

func loadQuizWithQuestions(quizID string) (models.Quiz, error) {
	var quiz models.Quiz
	err := database.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&quiz, "id = ?", quizID).Error
	return quiz, err
}

func GetQuiz(c *fiber.Ctx) error {
	quiz, err := loadQuizWithQuestions(c.Params("quizId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Quiz not found"})
	}

	now := time.Now()
	status := services.DeriveQuizStatus(quiz, now)
	role := authenticatedRole(c)

	if role == "student" {
		if status != services.QuizStatusActive {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "error": "Quiz is not currently available"})
		}
		studentQuestions := questionsForStudent(quiz.Questions)
		quiz.Questions = nil
		return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
			"quiz":      quiz,
			"status":    status,
			"questions": studentQuestions,
		}})
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"quiz": quiz, "status": status}})
}

type UpdateQuizRequest struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	Instructions    *string    `json:"instructions"`
	Tags            *[]string  `json:"tags"`
	DurationMinutes *int       `json:"duration_minutes" validate:"omitempty,gt=0"`
	PassingScore    *float64   `json:"passing_score" validate:"omitempty,gte=0,lte=100"`
	MaxAttempts     *int       `json:"max_attempts" validate:"omitempty,gt=0"`
	AvailableFrom   *time.Time `json:"available_from"`
	AvailableUntil  *time.Time `json:"available_until"`
	IsActive        *bool      `json:"is_active"`
}

func (r UpdateQuizRequest) patchedFields() []string {
	var fields []string
	if r.Title != nil {
		fields = append(fields, "title")
	}
	if r.Description != nil {
		fields = append(fields, "description")
	}
	if r.Instructions != nil {
		fields = append(fields, "instructions")
	}
	if r.Tags != nil {
		fields = append(fields, "tags")
	}
	if r.DurationMinutes != nil {
		fields = append(fields, "duration_minutes")
	}
	if r.PassingScore != nil {
		fields = append(fields, "passing_score")
	}
	if r.MaxAttempts != nil {
		fields = append(fields, "max_attempts")
	}
	if r.AvailableFrom != nil {
		fields = append(fields, "available_from")
	}
	if r.AvailableUntil != nil {
		fields = append(fields, "available_until")
	}
	if r.IsActive != nil {
		fields = append(fields, "is_active")
	}
	return fields
}

func UpdateQuiz(c *fiber.Ctx) error {
	var quiz models.Quiz
	if err := database.DB.First(&quiz, "id = ?", c.Params("quizId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Quiz not found"})
	}

	var req UpdateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	var attemptCount int64
	database.DB.Model(&models.QuizAttempt{}).Where("quiz_id = ?", quiz.ID).Count(&attemptCount)

	if attemptCount > 0 && quiz.IsPublished {
		rejected := services.RejectedQuizPatchFields(req.patchedFields())
		if len(rejected) > 0 {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"error":   fmt.Sprintf("Quiz has recorded attempts; these fields cannot be changed: %s", strings.Join(rejected, ", ")),
			})
		}
	}

	if req.Title != nil {
		quiz.Title = *req.Title
	}
	if req.Description != nil {
		quiz.Description = *req.Description
	}
	if req.Instructions != nil {
		quiz.Instructions = *req.Instructions
	}
	if req.Tags != nil {
		quiz.Tags = *req.Tags
	}
	if req.DurationMinutes != nil {
		quiz.DurationMinutes = *req.DurationMinutes
	}
	if req.PassingScore != nil {
		quiz.PassingScore = *req.PassingScore
	}
	if req.MaxAttempts != nil {
		quiz.MaxAttempts = *req.MaxAttempts
	}
	if req.AvailableFrom != nil {
		quiz.AvailableFrom = req.AvailableFrom
	}
	if req.AvailableUntil != nil {
		quiz.AvailableUntil = req.AvailableUntil
	}
	if req.IsActive != nil {
		quiz.IsActive = *req.IsActive
	}

	if err := services.ValidateAvailabilityWindow(quiz.AvailableFrom, quiz.AvailableUntil); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	if err := database.DB.Save(&quiz).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to update quiz"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Quiz updated successfully", "data": quiz})
}

func DeleteQuiz(c *fiber.Ctx) error {
	var quiz models.Quiz
	if err := database.DB.First(&quiz, "id = ?", c.Params("quizId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Quiz not found"})
	}

	var attemptCount int64
	database.DB.Model(&models.QuizAttempt{}).Where("quiz_id = ?", quiz.ID).Count(&attemptCount)
	if err := services.EnsureQuizDeletable(attemptCount); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "error": "Quiz has recorded attempts and cannot be deleted"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id IN (?)", tx.Model(&models.Question{}).Select("id").Where("quiz_id = ?", quiz.ID)).Delete(&models.Option{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&quiz).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to delete quiz"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Quiz deleted successfully"})
}

func PublishQuiz(c *fiber.Ctx) error {
	quiz, err := loadQuizWithQuestions(c.Params("quizId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Quiz not found"})
	}

	if err := services.ValidateQuizQuestions(quiz.Questions); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	now := time.Now()
	quiz.IsPublished = true
	quiz.PublishedAt = &now
	if err := database.DB.Save(&quiz).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to publish quiz"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Quiz published successfully", "data": quiz})
}

func AddQuestion(c *fiber.Ctx) error {
	quiz, err := loadQuizWithQuestions(c.Params("quizId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Quiz not found"})
	}

	var attemptCount int64
	database.DB.Model(&models.QuizAttempt{}).Where("quiz_id = ?", quiz.ID).Count(&attemptCount)
	if quiz.IsPublished && attemptCount > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "error": "Published quiz with attempts cannot accept new questions"})
	}
	if len(quiz.Questions) >= models.MaxQuestionsPerQuiz {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": fmt.Sprintf("A quiz cannot have more than %d questions", models.MaxQuestionsPerQuiz)})
	}

	var req QuestionInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	question := questionFromInput(req, len(quiz.Questions))
	if err := services.ValidateQuestion(question); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	question.QuizID = quiz.ID

	totalQuestions, totalPoints := services.DeriveQuizTotals(append(quiz.Questions, question))

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		return tx.Model(&models.Quiz{}).Where("id = ?", quiz.ID).
			Updates(map[string]interface{}{"total_questions": totalQuestions, "total_points": totalPoints}).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to add question"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": question})
}
