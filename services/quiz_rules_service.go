package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/anjiri1684/course_platform/models"
)

// ValidateQuestion checks that a question is structurally complete for
// its type. The same rules gate question creation and quiz publishing.
func ValidateQuestion(q models.Question) error {
	if strings.TrimSpace(q.QuestionText) == "" {
		return fmt.Errorf("question text is required")
	}
	if q.Points < 1 {
		return fmt.Errorf("question points must be at least 1")
	}

	switch q.QuestionType {
	case models.QuestionTypeSingleChoice, models.QuestionTypeMultipleChoice:
		if len(q.Options) < 2 {
			return fmt.Errorf("%s questions require at least 2 options", q.QuestionType)
		}
		correct := 0
		for _, opt := range q.Options {
			if strings.TrimSpace(opt.OptionText) == "" {
				return fmt.Errorf("option text cannot be empty")
			}
			if opt.IsCorrect {
				correct++
			}
		}
		if correct == 0 {
			return fmt.Errorf("%s questions require at least one correct option", q.QuestionType)
		}
		if q.QuestionType == models.QuestionTypeSingleChoice && correct > 1 {
			return fmt.Errorf("single_choice questions must have exactly one correct option")
		}
	case models.QuestionTypeTrueFalse:
		answer := strings.ToLower(strings.TrimSpace(q.CorrectAnswer))
		if answer != "true" && answer != "false" {
			return fmt.Errorf("true_false questions require a correct answer of true or false")
		}
	case models.QuestionTypeShortAnswer:
		if strings.TrimSpace(q.CorrectAnswer) == "" {
			return fmt.Errorf("short_answer questions require a correct answer")
		}
	case models.QuestionTypeEssay:
		// Essay questions are graded manually, nothing to require.
	default:
		return fmt.Errorf("unknown question type %q", q.QuestionType)
	}
	return nil
}

// ValidateQuizQuestions applies the per-type completeness rules to the
// full question list, as required before publishing.
func ValidateQuizQuestions(questions []models.Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("quiz has no questions")
	}
	for i, q := range questions {
		if err := ValidateQuestion(q); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}

func ValidateAvailabilityWindow(from, until *time.Time) error {
	if from != nil && until != nil && !until.After(*from) {
		return fmt.Errorf("available_until must be after available_from")
	}
	return nil
}

// restrictedQuizFields is the only field subset that may still change
// once a published quiz has recorded attempts.
var restrictedQuizFields = map[string]bool{
	"title":           true,
	"description":     true,
	"instructions":    true,
	"tags":            true,
	"available_until": true,
	"is_active":       true,
}

// RejectedQuizPatchFields returns, sorted, the patched fields that are
// not allowed to change on a published quiz with attempts.
func RejectedQuizPatchFields(patched []string) []string {
	var rejected []string
	for _, field := range patched {
		if !restrictedQuizFields[field] {
			rejected = append(rejected, field)
		}
	}
	sort.Strings(rejected)
	return rejected
}

// DeriveQuizTotals recomputes the stored question and point totals.
func DeriveQuizTotals(questions []models.Question) (totalQuestions, totalPoints int) {
	for _, q := range questions {
		totalPoints += q.Points
	}
	return len(questions), totalPoints
}
