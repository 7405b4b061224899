package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	QuestionTypeSingleChoice   = "single_choice"
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeTrueFalse      = "true_false"
	QuestionTypeShortAnswer    = "short_answer"
	QuestionTypeEssay          = "essay"
)

type Question struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	QuizID       uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_id"`
	QuestionText string    `gorm:"type:text;not null" json:"question_text"`
	QuestionType string    `gorm:"size:50;not null;default:'single_choice'" json:"question_type"`
	Position     int       `gorm:"not null;default:0" json:"position"`

	// Correct answer text for true_false and short_answer questions.
	// Choice questions encode correctness per option.
	CorrectAnswer string `gorm:"type:text" json:"correct_answer,omitempty"`
	Points        int    `gorm:"not null;default:1" json:"points"`
	Explanation   string `gorm:"type:text" json:"explanation,omitempty"`

	Options []Option `gorm:"foreignkey:QuestionID" json:"options,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Option struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	OptionText string    `gorm:"type:text;not null" json:"option_text"`
	IsCorrect  bool      `gorm:"not null;default:false" json:"is_correct"`
	Position   int       `gorm:"not null;default:0" json:"position"`
}
