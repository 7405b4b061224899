package models

import (
	"time"

	"github.com/google/uuid"
)

type Announcement struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CourseID *uuid.UUID `gorm:"type:uuid;index" json:"course_id,omitempty"`
	AuthorID uuid.UUID  `gorm:"type:uuid;not null" json:"author_id"`
	Title    string     `gorm:"size:255;not null" json:"title"`
	Body     string     `gorm:"type:text;not null" json:"body"`
	IsPinned bool       `gorm:"default:false" json:"is_pinned"`

	PublishFrom  *time.Time `json:"publish_from,omitempty"`
	PublishUntil *time.Time `json:"publish_until,omitempty"`

	Author User `gorm:"foreignkey:AuthorID" json:"author,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
