package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type AttemptAnswer struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	QuizAttemptID uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_attempt_id"`
	QuestionID    uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`

	SelectedOptions pq.StringArray `gorm:"type:text[]" json:"selected_options,omitempty"`
	AnswerText      string         `gorm:"type:text" json:"answer_text,omitempty"`

	IsCorrect        bool `gorm:"not null;default:false" json:"is_correct"`
	PointsEarned     int  `gorm:"not null;default:0" json:"points_earned"`
	RequiresGrading  bool `gorm:"not null;default:false" json:"requires_grading"`
	TimeTakenSeconds int  `gorm:"not null;default:0" json:"time_taken_seconds"`

	Question Question `gorm:"foreignkey:QuestionID" json:"question,omitempty"`
}
