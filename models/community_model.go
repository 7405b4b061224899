package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CommunityQuestion struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CourseID *uuid.UUID `gorm:"type:uuid;index" json:"course_id,omitempty"`
	AuthorID uuid.UUID  `gorm:"type:uuid;not null;index" json:"author_id"`

	Title string         `gorm:"size:255;not null" json:"title"`
	Body  string         `gorm:"type:text;not null" json:"body"`
	Tags  pq.StringArray `gorm:"type:text[]" json:"tags"`

	AnswerCount int  `gorm:"not null;default:0" json:"answer_count"`
	IsResolved  bool `gorm:"default:false" json:"is_resolved"`

	Author  User              `gorm:"foreignkey:AuthorID" json:"author,omitempty"`
	Answers []CommunityAnswer `gorm:"foreignkey:QuestionID" json:"answers,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CommunityAnswer struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null" json:"author_id"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	IsAccepted bool      `gorm:"default:false" json:"is_accepted"`

	Author User `gorm:"foreignkey:AuthorID" json:"author,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
