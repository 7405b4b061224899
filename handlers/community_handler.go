package handlers

import (
	"strings"

	"github.com/anjiri1684/course_platform/database"
	"github.com/anjiri1684/course_platform/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommunityQuestionRequest struct {
	CourseID *string  `json:"course_id" validate:"omitempty,uuid"`
	Title    string   `json:"title" validate:"required"`
	Body     string   `json:"body" validate:"required"`
	Tags     []string `json:"tags"`
}

func AskQuestion(c *fiber.Ctx) error {
	authorID := authenticatedUserID(c)

	var req CommunityQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	question := models.CommunityQuestion{
		AuthorID: authorID,
		Title:    req.Title,
		Body:     req.Body,
		Tags:     req.Tags,
	}
	if req.CourseID != nil {
		courseID, _ := uuid.Parse(*req.CourseID)
		var course models.Course
		if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Course not found"})
		}
		question.CourseID = &courseID
	}

	if err := database.DB.Create(&question).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to post question"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": question})
}

func ListQuestions(c *fiber.Ctx) error {
	page, limit, offset := parsePagination(c)

	applyFilters := func(query *gorm.DB) *gorm.DB {
		if courseID := c.Query("courseId"); courseID != "" {
			query = query.Where("course_id = ?", courseID)
		}
		if resolved := c.Query("resolved"); resolved != "" {
			query = query.Where("is_resolved = ?", resolved == "true")
		}
		if search := strings.TrimSpace(c.Query("search")); search != "" {
			searchTerm := "%" + search + "%"
			query = query.Where("title ILIKE ? OR body ILIKE ? OR array_to_string(tags, ' ') ILIKE ?", searchTerm, searchTerm, searchTerm)
		}
		return query
	}

	var total int64
	applyFilters(database.DB.Model(&models.CommunityQuestion{})).Count(&total)

	var questions []models.CommunityQuestion
	if err := applyFilters(database.DB.Model(&models.CommunityQuestion{})).
		Order("created_at DESC").Offset(offset).Limit(limit).
		Preload("Author").Find(&questions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to list questions"})
	}

	return c.JSON(paginatedResponse(questions, len(questions), total, page, limit))
}

func GetQuestion(c *fiber.Ctx) error {
	var question models.CommunityQuestion
	err := database.DB.
		Preload("Author").
		Preload("Answers", func(db *gorm.DB) *gorm.DB { return db.Order("is_accepted DESC, created_at ASC") }).
		Preload("Answers.Author").
		First(&question, "id = ?", c.Params("questionId")).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Question not found"})
	}
	return c.JSON(fiber.Map{"success": true, "data": question})
}

type CommunityAnswerRequest struct {
	Body string `json:"body" validate:"required"`
}

func AnswerQuestion(c *fiber.Ctx) error {
	authorID := authenticatedUserID(c)

	var question models.CommunityQuestion
	if err := database.DB.First(&question, "id = ?", c.Params("questionId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Question not found"})
	}

	var req CommunityAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	answer := models.CommunityAnswer{
		QuestionID: question.ID,
		AuthorID:   authorID,
		Body:       req.Body,
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&answer).Error; err != nil {
			return err
		}
		return tx.Model(&question).Update("answer_count", gorm.Expr("answer_count + 1")).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to post answer"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": answer})
}

// AcceptAnswer marks one answer accepted. Only the asker may accept,
// and accepting replaces any previously accepted answer.
func AcceptAnswer(c *fiber.Ctx) error {
	userID := authenticatedUserID(c)

	var answer models.CommunityAnswer
	if err := database.DB.First(&answer, "id = ? AND question_id = ?", c.Params("answerId"), c.Params("questionId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Answer not found"})
	}

	var question models.CommunityQuestion
	if err := database.DB.First(&question, "id = ?", answer.QuestionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Question not found"})
	}
	if question.AuthorID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "error": "Only the question author can accept an answer"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.CommunityAnswer{}).Where("question_id = ?", question.ID).
			Update("is_accepted", false).Error; err != nil {
			return err
		}
		if err := tx.Model(&answer).Update("is_accepted", true).Error; err != nil {
			return err
		}
		return tx.Model(&question).Update("is_resolved", true).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to accept answer"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Answer accepted"})
}
