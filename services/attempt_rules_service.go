package services

import (
	"errors"
	"time"

	"github.com/anjiri1684/course_platform/models"
)

var (
	ErrQuizUnavailable    = errors.New("quiz is not currently available")
	ErrMaxAttemptsReached = errors.New("maximum number of attempts reached")
	ErrAttemptNotOpen     = errors.New("attempt is no longer in progress")
	ErrQuizHasAttempts    = errors.New("quiz has recorded attempts")
)

// AttemptStart is the outcome of a start request: resume the caller's
// open attempt as-is, or create a new one with the given number.
type AttemptStart struct {
	Resume        bool
	AttemptNumber int
}

// DecideAttemptStart applies the attempt-start rules. The quiz must be
// attemptable right now; an existing in-progress attempt is always
// resumed unchanged, so repeated starts never advance the attempt
// number; otherwise a new attempt is allowed only while the user's
// prior attempt count (every attempt, whatever its final status) is
// below the quiz limit.
func DecideAttemptStart(quiz models.Quiz, existing *models.QuizAttempt, priorAttempts int, now time.Time) (AttemptStart, error) {
	if !IsQuizAttemptable(quiz, now) {
		return AttemptStart{}, ErrQuizUnavailable
	}
	if existing != nil {
		return AttemptStart{Resume: true, AttemptNumber: existing.AttemptNumber}, nil
	}
	if priorAttempts >= quiz.MaxAttempts {
		return AttemptStart{}, ErrMaxAttemptsReached
	}
	return AttemptStart{AttemptNumber: priorAttempts + 1}, nil
}

// EnsureAttemptSubmittable rejects submission of any attempt that has
// left the in_progress state. Completed, expired, and abandoned
// attempts are terminal and keep their recorded results.
func EnsureAttemptSubmittable(attempt models.QuizAttempt) error {
	if attempt.Status != models.AttemptStatusInProgress {
		return ErrAttemptNotOpen
	}
	return nil
}

// EnsureQuizDeletable refuses deletion once any attempt has been
// recorded against the quiz.
func EnsureQuizDeletable(attemptCount int64) error {
	if attemptCount > 0 {
		return ErrQuizHasAttempts
	}
	return nil
}
