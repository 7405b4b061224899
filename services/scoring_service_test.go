package services

import (
	"testing"

	"github.com/anjiri1684/course_platform/models"
	"github.com/google/uuid"
)

func choiceQuestion(questionType string, points int, options map[string]bool) models.Question {
	q := models.Question{
		ID:           uuid.New(),
		QuestionText: "pick",
		QuestionType: questionType,
		Points:       points,
	}
	for text, correct := range options {
		q.Options = append(q.Options, models.Option{OptionText: text, IsCorrect: correct})
	}
	return q
}

func textQuestion(questionType string, points int, correctAnswer string) models.Question {
	return models.Question{
		ID:            uuid.New(),
		QuestionText:  "answer",
		QuestionType:  questionType,
		Points:        points,
		CorrectAnswer: correctAnswer,
	}
}

func TestScoreAttemptMultipleChoiceOrderIndependent(t *testing.T) {
	question := choiceQuestion(models.QuestionTypeMultipleChoice, 2, map[string]bool{
		"A": true, "B": true, "C": false,
	})

	tests := []struct {
		name     string
		selected []string
		correct  bool
	}{
		{"exact order", []string{"A", "B"}, true},
		{"reversed order", []string{"B", "A"}, true},
		{"subset", []string{"A"}, false},
		{"superset", []string{"A", "B", "C"}, false},
		{"disjoint", []string{"C"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreAttempt([]models.Question{question}, []SubmittedAnswer{
				{QuestionID: question.ID, SelectedOptions: tt.selected},
			}, 50)

			if len(result.Answers) != 1 {
				t.Fatalf("expected 1 scored answer, got %d", len(result.Answers))
			}
			if result.Answers[0].IsCorrect != tt.correct {
				t.Errorf("IsCorrect = %v, want %v", result.Answers[0].IsCorrect, tt.correct)
			}
			wantPoints := 0
			if tt.correct {
				wantPoints = 2
			}
			if result.Score != wantPoints {
				t.Errorf("Score = %d, want %d", result.Score, wantPoints)
			}
		})
	}
}

func TestScoreAttemptShortAnswerNormalization(t *testing.T) {
	question := textQuestion(models.QuestionTypeShortAnswer, 1, "Paris")

	tests := []struct {
		submission string
		correct    bool
	}{
		{"Paris", true},
		{" paris ", true},
		{"PARIS", true},
		{"Pariss", false},
		{"", false},
	}

	for _, tt := range tests {
		result := ScoreAttempt([]models.Question{question}, []SubmittedAnswer{
			{QuestionID: question.ID, AnswerText: tt.submission},
		}, 50)
		if result.Answers[0].IsCorrect != tt.correct {
			t.Errorf("submission %q: IsCorrect = %v, want %v", tt.submission, result.Answers[0].IsCorrect, tt.correct)
		}
	}
}

func TestScoreAttemptTrueFalse(t *testing.T) {
	question := textQuestion(models.QuestionTypeTrueFalse, 3, "true")

	result := ScoreAttempt([]models.Question{question}, []SubmittedAnswer{
		{QuestionID: question.ID, AnswerText: "TRUE"},
	}, 50)
	if !result.Answers[0].IsCorrect {
		t.Fatalf("expected case-insensitive true/false match")
	}
	if result.Score != 3 {
		t.Fatalf("Score = %d, want 3", result.Score)
	}
}

func TestScoreAttemptEssayPendingReview(t *testing.T) {
	essay := models.Question{ID: uuid.New(), QuestionText: "discuss", QuestionType: models.QuestionTypeEssay, Points: 5}

	result := ScoreAttempt([]models.Question{essay}, []SubmittedAnswer{
		{QuestionID: essay.ID, AnswerText: "long form response"},
	}, 50)

	answer := result.Answers[0]
	if !answer.RequiresGrading {
		t.Errorf("essay answer should require manual grading")
	}
	if answer.IsCorrect || answer.PointsEarned != 0 {
		t.Errorf("essay answer must not be auto-scored, got correct=%v points=%d", answer.IsCorrect, answer.PointsEarned)
	}
	if result.PendingReview != 1 {
		t.Errorf("PendingReview = %d, want 1", result.PendingReview)
	}
	if result.TotalPoints != 5 {
		t.Errorf("TotalPoints = %d, want 5 (essay points still attainable)", result.TotalPoints)
	}
}

func TestScoreAttemptUnansweredQuestionsCountTowardTotal(t *testing.T) {
	answered := textQuestion(models.QuestionTypeShortAnswer, 1, "go")
	skipped := textQuestion(models.QuestionTypeShortAnswer, 3, "rust")

	result := ScoreAttempt([]models.Question{answered, skipped}, []SubmittedAnswer{
		{QuestionID: answered.ID, AnswerText: "go"},
	}, 50)

	if len(result.Answers) != 1 {
		t.Fatalf("skipped question must not appear in answers, got %d entries", len(result.Answers))
	}
	if result.TotalPoints != 4 {
		t.Errorf("TotalPoints = %d, want 4", result.TotalPoints)
	}
	if result.Score != 1 {
		t.Errorf("Score = %d, want 1", result.Score)
	}
	if result.Percentage != 25 {
		t.Errorf("Percentage = %v, want 25", result.Percentage)
	}
}

func TestScoreAttemptIgnoresUnknownQuestionIDs(t *testing.T) {
	question := textQuestion(models.QuestionTypeShortAnswer, 1, "go")

	result := ScoreAttempt([]models.Question{question}, []SubmittedAnswer{
		{QuestionID: uuid.New(), AnswerText: "go"},
	}, 50)

	if len(result.Answers) != 0 {
		t.Fatalf("answers to unknown questions must be dropped, got %d entries", len(result.Answers))
	}
	if result.Score != 0 {
		t.Fatalf("Score = %d, want 0", result.Score)
	}
}

func TestScoreAttemptZeroTotalPoints(t *testing.T) {
	result := ScoreAttempt(nil, nil, 50)
	if result.Percentage != 0 {
		t.Fatalf("Percentage = %v, want 0 when no points are attainable", result.Percentage)
	}
	if result.IsPassed {
		t.Fatalf("an empty quiz with passing score 50 must not be passed")
	}
}

func TestScoreAttemptHalfCorrectScenario(t *testing.T) {
	q1 := choiceQuestion(models.QuestionTypeSingleChoice, 1, map[string]bool{"A": true, "B": false})
	q2 := choiceQuestion(models.QuestionTypeSingleChoice, 1, map[string]bool{"X": false, "Y": true})

	result := ScoreAttempt([]models.Question{q1, q2}, []SubmittedAnswer{
		{QuestionID: q1.ID, SelectedOptions: []string{"A"}},
		{QuestionID: q2.ID, SelectedOptions: []string{"X"}},
	}, 50)

	if result.Score != 1 || result.TotalPoints != 2 {
		t.Fatalf("score = %d/%d, want 1/2", result.Score, result.TotalPoints)
	}
	if result.Percentage != 50 {
		t.Fatalf("Percentage = %v, want 50", result.Percentage)
	}
	if !result.IsPassed {
		t.Fatalf("50%% against a passing score of 50 must pass")
	}

	failing := ScoreAttempt([]models.Question{q1, q2}, []SubmittedAnswer{
		{QuestionID: q1.ID, SelectedOptions: []string{"A"}},
		{QuestionID: q2.ID, SelectedOptions: []string{"X"}},
	}, 60)
	if failing.IsPassed {
		t.Fatalf("50%% against a passing score of 60 must fail")
	}
}
