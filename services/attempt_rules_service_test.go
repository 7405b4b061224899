package services

import (
	"errors"
	"testing"
	"time"

	"github.com/anjiri1684/course_platform/models"
)

func TestDecideAttemptStart(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	open := models.Quiz{IsActive: true, IsPublished: true, MaxAttempts: 3}
	closed := models.Quiz{IsActive: true, IsPublished: true, MaxAttempts: 3, AvailableUntil: &past}
	inProgress := &models.QuizAttempt{Status: models.AttemptStatusInProgress, AttemptNumber: 2}

	tests := []struct {
		name          string
		quiz          models.Quiz
		existing      *models.QuizAttempt
		priorAttempts int
		wantResume    bool
		wantNumber    int
		wantErr       error
	}{
		{"first attempt on a fresh quiz", open, nil, 0, false, 1, nil},
		{"second attempt after one finished", open, nil, 1, false, 2, nil},
		{"last allowed slot", open, nil, 2, false, 3, nil},
		{"limit reached", open, nil, 3, false, 0, ErrMaxAttemptsReached},
		{"expired attempts still consume slots", open, nil, 3, false, 0, ErrMaxAttemptsReached},
		{"open attempt is resumed", open, inProgress, 2, true, 2, nil},
		{"open attempt resumes even at the limit", open, inProgress, 3, true, 2, nil},
		{"unavailable quiz rejects start", closed, nil, 0, false, 0, ErrQuizUnavailable},
		{"unavailable quiz rejects resume too", closed, inProgress, 2, false, 0, ErrQuizUnavailable},
		{"unpublished quiz rejects start", models.Quiz{IsActive: true, MaxAttempts: 3}, nil, 0, false, 0, ErrQuizUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecideAttemptStart(tt.quiz, tt.existing, tt.priorAttempts, now)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("DecideAttemptStart error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got.Resume != tt.wantResume {
				t.Errorf("Resume = %v, want %v", got.Resume, tt.wantResume)
			}
			if got.AttemptNumber != tt.wantNumber {
				t.Errorf("AttemptNumber = %d, want %d", got.AttemptNumber, tt.wantNumber)
			}
		})
	}
}

func TestDecideAttemptStartIsIdempotentWhileOpen(t *testing.T) {
	now := time.Now()
	quiz := models.Quiz{IsActive: true, IsPublished: true, MaxAttempts: 1}
	open := &models.QuizAttempt{Status: models.AttemptStatusInProgress, AttemptNumber: 1}

	first, err := DecideAttemptStart(quiz, open, 1, now)
	if err != nil {
		t.Fatalf("first start: %v", err)
	}
	second, err := DecideAttemptStart(quiz, open, 1, now)
	if err != nil {
		t.Fatalf("repeated start: %v", err)
	}
	if !first.Resume || !second.Resume {
		t.Fatalf("repeated starts must resume, got %+v then %+v", first, second)
	}
	if first.AttemptNumber != second.AttemptNumber {
		t.Fatalf("repeated starts advanced the attempt number: %d then %d", first.AttemptNumber, second.AttemptNumber)
	}
}

func TestEnsureAttemptSubmittable(t *testing.T) {
	tests := []struct {
		status  string
		wantErr error
	}{
		{models.AttemptStatusInProgress, nil},
		{models.AttemptStatusCompleted, ErrAttemptNotOpen},
		{models.AttemptStatusExpired, ErrAttemptNotOpen},
		{models.AttemptStatusAbandoned, ErrAttemptNotOpen},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			err := EnsureAttemptSubmittable(models.QuizAttempt{Status: tt.status})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("EnsureAttemptSubmittable(%s) = %v, want %v", tt.status, err, tt.wantErr)
			}
		})
	}
}

func TestEnsureQuizDeletable(t *testing.T) {
	if err := EnsureQuizDeletable(0); err != nil {
		t.Fatalf("quiz without attempts should be deletable, got %v", err)
	}
	if err := EnsureQuizDeletable(1); !errors.Is(err, ErrQuizHasAttempts) {
		t.Fatalf("quiz with attempts must not be deletable, got %v", err)
	}
}
