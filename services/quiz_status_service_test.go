package services

import (
	"testing"
	"time"

	"github.com/anjiri1684/course_platform/models"
)

func TestDeriveQuizStatusPrecedence(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name string
		quiz models.Quiz
		want string
	}{
		{
			"inactive wins over everything",
			models.Quiz{IsActive: false, IsPublished: true, AvailableFrom: &past, AvailableUntil: &future},
			QuizStatusDisabled,
		},
		{
			"inactive and unpublished is still disabled",
			models.Quiz{IsActive: false, IsPublished: false},
			QuizStatusDisabled,
		},
		{
			"unpublished active quiz is draft regardless of dates",
			models.Quiz{IsActive: true, IsPublished: false, AvailableFrom: &future},
			QuizStatusDraft,
		},
		{
			"published before window opens is scheduled",
			models.Quiz{IsActive: true, IsPublished: true, AvailableFrom: &future},
			QuizStatusScheduled,
		},
		{
			"published past window end is expired",
			models.Quiz{IsActive: true, IsPublished: true, AvailableUntil: &past},
			QuizStatusExpired,
		},
		{
			"inside window is active",
			models.Quiz{IsActive: true, IsPublished: true, AvailableFrom: &past, AvailableUntil: &future},
			QuizStatusActive,
		},
		{
			"no window at all is active",
			models.Quiz{IsActive: true, IsPublished: true},
			QuizStatusActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveQuizStatus(tt.quiz, now); got != tt.want {
				t.Errorf("DeriveQuizStatus = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsQuizAttemptable(t *testing.T) {
	now := time.Now()
	quiz := models.Quiz{IsActive: true, IsPublished: true}
	if !IsQuizAttemptable(quiz, now) {
		t.Fatalf("published active quiz without a window should be attemptable")
	}

	quiz.IsActive = false
	if IsQuizAttemptable(quiz, now) {
		t.Fatalf("disabled quiz must not be attemptable")
	}
}
