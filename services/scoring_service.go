package services

import (
	"math"
	"strings"

	"github.com/anjiri1684/course_platform/models"
	"github.com/google/uuid"
)

// SubmittedAnswer is one answer as received from the client, already
// validated at the HTTP boundary.
type SubmittedAnswer struct {
	QuestionID       uuid.UUID
	SelectedOptions  []string
	AnswerText       string
	TimeTakenSeconds int
}

type ScoreResult struct {
	Answers       []models.AttemptAnswer
	Score         int
	TotalPoints   int
	Percentage    float64
	IsPassed      bool
	PendingReview int
}

// ScoreAttempt grades a submission against the quiz's question set.
// It is deterministic and touches nothing outside its arguments.
//
// Choice questions earn full points only when the selected option
// texts equal the correct set exactly, order-independent; there is no
// partial credit. True/false and short-answer compare trimmed,
// case-insensitive text. Essay answers are never auto-scored: they are
// recorded as requiring manual grading, distinct from being wrong.
// Questions without a submitted answer contribute to TotalPoints only.
func ScoreAttempt(questions []models.Question, submitted []SubmittedAnswer, passingScore float64) ScoreResult {
	questionsByID := make(map[uuid.UUID]models.Question, len(questions))
	for _, q := range questions {
		questionsByID[q.ID] = q
	}

	result := ScoreResult{}
	for _, q := range questions {
		result.TotalPoints += q.Points
	}

	for _, answer := range submitted {
		question, ok := questionsByID[answer.QuestionID]
		if !ok {
			continue
		}

		recorded := models.AttemptAnswer{
			QuestionID:       question.ID,
			SelectedOptions:  answer.SelectedOptions,
			AnswerText:       answer.AnswerText,
			TimeTakenSeconds: answer.TimeTakenSeconds,
		}

		switch question.QuestionType {
		case models.QuestionTypeSingleChoice, models.QuestionTypeMultipleChoice:
			recorded.IsCorrect = optionSetsEqual(answer.SelectedOptions, correctOptionTexts(question))
		case models.QuestionTypeTrueFalse, models.QuestionTypeShortAnswer:
			recorded.IsCorrect = textAnswersEqual(answer.AnswerText, question.CorrectAnswer)
		case models.QuestionTypeEssay:
			recorded.RequiresGrading = true
			result.PendingReview++
		}

		if recorded.IsCorrect {
			recorded.PointsEarned = question.Points
			result.Score += recorded.PointsEarned
		}
		result.Answers = append(result.Answers, recorded)
	}

	if result.TotalPoints > 0 {
		result.Percentage = math.Round(float64(result.Score)/float64(result.TotalPoints)*100*100) / 100
	}
	result.IsPassed = result.Percentage >= passingScore
	return result
}

func correctOptionTexts(q models.Question) []string {
	var texts []string
	for _, opt := range q.Options {
		if opt.IsCorrect {
			texts = append(texts, opt.OptionText)
		}
	}
	return texts
}

func optionSetsEqual(selected, correct []string) bool {
	if len(correct) == 0 {
		return false
	}
	selectedSet := make(map[string]bool, len(selected))
	for _, text := range selected {
		selectedSet[text] = true
	}
	correctSet := make(map[string]bool, len(correct))
	for _, text := range correct {
		correctSet[text] = true
	}
	if len(selectedSet) != len(correctSet) {
		return false
	}
	for text := range correctSet {
		if !selectedSet[text] {
			return false
		}
	}
	return true
}

func textAnswersEqual(submitted, correct string) bool {
	return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(correct))
}
