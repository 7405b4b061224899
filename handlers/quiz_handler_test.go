package handlers

import (
	"reflect"
	"testing"

	"github.com/anjiri1684/course_platform/models"
	"github.com/google/uuid"
)

func TestQuestionFromInput(t *testing.T) {
	input := QuestionInput{
		QuestionText: "Which of these are Go keywords?",
		QuestionType: models.QuestionTypeMultipleChoice,
		Options: []OptionInput{
			{OptionText: "func", IsCorrect: true},
			{OptionText: "lambda"},
			{OptionText: "defer", IsCorrect: true},
		},
	}

	question := questionFromInput(input, 4)

	if question.Position != 4 {
		t.Errorf("Position = %d, want 4", question.Position)
	}
	if question.Points != 1 {
		t.Errorf("Points should default to 1, got %d", question.Points)
	}
	if len(question.Options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(question.Options))
	}
	for i, opt := range question.Options {
		if opt.Position != i {
			t.Errorf("option %d position = %d", i, opt.Position)
		}
	}
	if !question.Options[0].IsCorrect || question.Options[1].IsCorrect || !question.Options[2].IsCorrect {
		t.Errorf("option correctness flags not carried over")
	}

	input.Points = 5
	if got := questionFromInput(input, 0).Points; got != 5 {
		t.Errorf("explicit points ignored, got %d", got)
	}
}

func TestUpdateQuizRequestPatchedFields(t *testing.T) {
	title := "New title"
	maxAttempts := 3
	active := false

	req := UpdateQuizRequest{
		Title:       &title,
		MaxAttempts: &maxAttempts,
		IsActive:    &active,
	}

	got := req.patchedFields()
	want := []string{"title", "max_attempts", "is_active"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("patchedFields = %v, want %v", got, want)
	}

	if fields := (UpdateQuizRequest{}).patchedFields(); fields != nil {
		t.Errorf("empty patch should report no fields, got %v", fields)
	}
}

func TestQuestionsForStudentStripsAnswers(t *testing.T) {
	questions := []models.Question{
		{
			ID:            uuid.New(),
			QuestionText:  "2+2?",
			QuestionType:  models.QuestionTypeSingleChoice,
			Points:        1,
			CorrectAnswer: "",
			Options: []models.Option{
				{ID: uuid.New(), OptionText: "3", IsCorrect: false, Position: 0},
				{ID: uuid.New(), OptionText: "4", IsCorrect: true, Position: 1},
			},
		},
		{
			ID:            uuid.New(),
			QuestionText:  "Capital of France?",
			QuestionType:  models.QuestionTypeShortAnswer,
			Points:        2,
			CorrectAnswer: "Paris",
		},
	}

	views := questionsForStudent(questions)
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	if len(views[0].Options) != 2 {
		t.Fatalf("expected options preserved, got %d", len(views[0].Options))
	}
	if views[0].Options[1].OptionText != "4" {
		t.Errorf("option text lost")
	}
	if views[1].Options != nil {
		t.Errorf("short answer questions should carry no options")
	}
	// The view type has no correctness fields at all, which is the
	// point: marshalling it can never leak answers.
}
