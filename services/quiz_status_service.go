package services

import (
	"time"

	"github.com/anjiri1684/course_platform/models"
)

const (
	QuizStatusDisabled  = "disabled"
	QuizStatusDraft     = "draft"
	QuizStatusScheduled = "scheduled"
	QuizStatusExpired   = "expired"
	QuizStatusActive    = "active"
)

// DeriveQuizStatus classifies a quiz at read time. The precedence
// order (disabled > draft > scheduled > expired > active) is fixed:
// an inactive quiz is disabled no matter what its publish flag or
// dates say, and an unpublished quiz stays draft even outside its
// availability window.
func DeriveQuizStatus(quiz models.Quiz, now time.Time) string {
	if !quiz.IsActive {
		return QuizStatusDisabled
	}
	if !quiz.IsPublished {
		return QuizStatusDraft
	}
	if quiz.AvailableFrom != nil && now.Before(*quiz.AvailableFrom) {
		return QuizStatusScheduled
	}
	if quiz.AvailableUntil != nil && now.After(*quiz.AvailableUntil) {
		return QuizStatusExpired
	}
	return QuizStatusActive
}

func IsQuizAttemptable(quiz models.Quiz, now time.Time) bool {
	return DeriveQuizStatus(quiz, now) == QuizStatusActive
}
