package services

import (
	"reflect"
	"testing"
	"time"

	"github.com/anjiri1684/course_platform/models"
)

func TestValidateQuestionChoiceTypes(t *testing.T) {
	base := models.Question{QuestionText: "pick one", Points: 1}

	tests := []struct {
		name    string
		mutate  func(*models.Question)
		wantErr bool
	}{
		{
			"single choice with one correct option",
			func(q *models.Question) {
				q.QuestionType = models.QuestionTypeSingleChoice
				q.Options = []models.Option{{OptionText: "A", IsCorrect: true}, {OptionText: "B"}}
			},
			false,
		},
		{
			"single choice with two correct options",
			func(q *models.Question) {
				q.QuestionType = models.QuestionTypeSingleChoice
				q.Options = []models.Option{{OptionText: "A", IsCorrect: true}, {OptionText: "B", IsCorrect: true}}
			},
			true,
		},
		{
			"choice with a single option",
			func(q *models.Question) {
				q.QuestionType = models.QuestionTypeMultipleChoice
				q.Options = []models.Option{{OptionText: "A", IsCorrect: true}}
			},
			true,
		},
		{
			"choice with no correct option",
			func(q *models.Question) {
				q.QuestionType = models.QuestionTypeMultipleChoice
				q.Options = []models.Option{{OptionText: "A"}, {OptionText: "B"}}
			},
			true,
		},
		{
			"multiple choice with several correct options",
			func(q *models.Question) {
				q.QuestionType = models.QuestionTypeMultipleChoice
				q.Options = []models.Option{{OptionText: "A", IsCorrect: true}, {OptionText: "B", IsCorrect: true}, {OptionText: "C"}}
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := base
			tt.mutate(&q)
			err := ValidateQuestion(q)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateQuestion error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateQuestionTextTypes(t *testing.T) {
	tests := []struct {
		name          string
		questionType  string
		correctAnswer string
		wantErr       bool
	}{
		{"true false lower", models.QuestionTypeTrueFalse, "true", false},
		{"true false mixed case", models.QuestionTypeTrueFalse, " False ", false},
		{"true false garbage", models.QuestionTypeTrueFalse, "maybe", true},
		{"true false empty", models.QuestionTypeTrueFalse, "", true},
		{"short answer present", models.QuestionTypeShortAnswer, "Paris", false},
		{"short answer blank", models.QuestionTypeShortAnswer, "   ", true},
		{"essay needs nothing", models.QuestionTypeEssay, "", false},
		{"unknown type", "matching", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := models.Question{
				QuestionText:  "prompt",
				QuestionType:  tt.questionType,
				CorrectAnswer: tt.correctAnswer,
				Points:        1,
			}
			err := ValidateQuestion(q)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateQuestion error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateQuestionRejectsBadPointsAndEmptyText(t *testing.T) {
	q := models.Question{QuestionText: "prompt", QuestionType: models.QuestionTypeEssay, Points: 0}
	if ValidateQuestion(q) == nil {
		t.Errorf("points below 1 should be rejected")
	}

	q = models.Question{QuestionText: "  ", QuestionType: models.QuestionTypeEssay, Points: 1}
	if ValidateQuestion(q) == nil {
		t.Errorf("blank question text should be rejected")
	}
}

func TestValidateQuizQuestions(t *testing.T) {
	if ValidateQuizQuestions(nil) == nil {
		t.Fatalf("publishing an empty quiz should fail")
	}

	questions := []models.Question{
		{QuestionText: "ok", QuestionType: models.QuestionTypeShortAnswer, CorrectAnswer: "yes", Points: 1},
		{QuestionText: "broken", QuestionType: models.QuestionTypeShortAnswer, Points: 1},
	}
	err := ValidateQuizQuestions(questions)
	if err == nil {
		t.Fatalf("a structurally incomplete question should block publishing")
	}
}

func TestValidateAvailabilityWindow(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	until := from.Add(time.Hour)

	if err := ValidateAvailabilityWindow(&from, &until); err != nil {
		t.Errorf("valid window rejected: %v", err)
	}
	if err := ValidateAvailabilityWindow(&until, &from); err == nil {
		t.Errorf("inverted window should be rejected")
	}
	if err := ValidateAvailabilityWindow(&from, &from); err == nil {
		t.Errorf("zero-length window should be rejected")
	}
	if err := ValidateAvailabilityWindow(&from, nil); err != nil {
		t.Errorf("open-ended window rejected: %v", err)
	}
	if err := ValidateAvailabilityWindow(nil, nil); err != nil {
		t.Errorf("absent window rejected: %v", err)
	}
}

func TestRejectedQuizPatchFields(t *testing.T) {
	rejected := RejectedQuizPatchFields([]string{"title", "max_attempts", "passing_score", "available_until"})
	want := []string{"max_attempts", "passing_score"}
	if !reflect.DeepEqual(rejected, want) {
		t.Errorf("RejectedQuizPatchFields = %v, want %v", rejected, want)
	}

	if got := RejectedQuizPatchFields([]string{"title", "description", "instructions", "tags", "available_until", "is_active"}); got != nil {
		t.Errorf("restricted-only patch should have no rejected fields, got %v", got)
	}
}

func TestDeriveQuizTotals(t *testing.T) {
	questions := []models.Question{{Points: 1}, {Points: 3}, {Points: 2}}
	totalQuestions, totalPoints := DeriveQuizTotals(questions)
	if totalQuestions != 3 || totalPoints != 6 {
		t.Errorf("DeriveQuizTotals = (%d, %d), want (3, 6)", totalQuestions, totalPoints)
	}

	totalQuestions, totalPoints = DeriveQuizTotals(nil)
	if totalQuestions != 0 || totalPoints != 0 {
		t.Errorf("DeriveQuizTotals(nil) = (%d, %d), want (0, 0)", totalQuestions, totalPoints)
	}
}
