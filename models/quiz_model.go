package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const MaxQuestionsPerQuiz = 30

type Quiz struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title        string     `gorm:"size:255;not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	Instructions string     `gorm:"type:text" json:"instructions"`
	CourseID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"course_id"`
	ModuleID     *uuid.UUID `gorm:"type:uuid;index" json:"module_id,omitempty"`
	InstructorID uuid.UUID  `gorm:"type:uuid;not null;index" json:"instructor_id"`

	DurationMinutes int            `gorm:"not null;default:30" json:"duration_minutes"`
	PassingScore    float64        `gorm:"type:numeric(5,2);not null;default:50.00" json:"passing_score"`
	MaxAttempts     int            `gorm:"not null;default:1" json:"max_attempts"`
	Tags            pq.StringArray `gorm:"type:text[]" json:"tags"`

	IsPublished    bool       `gorm:"default:false" json:"is_published"`
	IsActive       bool       `gorm:"default:true" json:"is_active"`
	PublishedAt    *time.Time `json:"published_at,omitempty"`
	AvailableFrom  *time.Time `json:"available_from,omitempty"`
	AvailableUntil *time.Time `json:"available_until,omitempty"`

	TotalQuestions int `gorm:"not null;default:0" json:"total_questions"`
	TotalPoints    int `gorm:"not null;default:0" json:"total_points"`

	Course    Course     `gorm:"foreignkey:CourseID" json:"course,omitempty"`
	Questions []Question `gorm:"foreignkey:QuizID" json:"questions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
