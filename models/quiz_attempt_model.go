package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AttemptStatusInProgress = "in_progress"
	AttemptStatusCompleted  = "completed"
	AttemptStatusExpired    = "expired"
	AttemptStatusAbandoned  = "abandoned"
)

type QuizAttempt struct {
	// The partial unique index over (quiz_id, user_id) is what makes
	// start-attempt safe under concurrent requests: at most one
	// in_progress row per user+quiz.
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	QuizID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_one_in_progress,where:status = 'in_progress'" json:"quiz_id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_one_in_progress,where:status = 'in_progress'" json:"user_id"`
	CourseID uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`

	AttemptNumber int `gorm:"not null;default:1" json:"attempt_number"`

	Status string `gorm:"size:20;not null;default:'in_progress'" json:"status"`

	Score         int     `gorm:"not null;default:0" json:"score"`
	TotalPoints   int     `gorm:"not null;default:0" json:"total_points"`
	Percentage    float64 `gorm:"type:numeric(5,2);not null;default:0.00" json:"percentage"`
	IsPassed      bool    `gorm:"not null;default:false" json:"is_passed"`
	PendingReview int     `gorm:"not null;default:0" json:"pending_review"`

	StartedAt   time.Time  `gorm:"not null" json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	IPAddress string `gorm:"size:45" json:"ip_address,omitempty"`
	UserAgent string `gorm:"size:512" json:"user_agent,omitempty"`

	Quiz    Quiz            `gorm:"foreignkey:QuizID" json:"quiz,omitempty"`
	User    User            `gorm:"foreignkey:UserID" json:"user,omitempty"`
	Answers []AttemptAnswer `gorm:"foreignkey:QuizAttemptID" json:"answers,omitempty"`
}

func (QuizAttempt) TableName() string { return "quiz_attempts" }
