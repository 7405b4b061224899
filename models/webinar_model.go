package models

import (
	"time"

	"github.com/google/uuid"
)

type Webinar struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	PresenterID uuid.UUID  `gorm:"type:uuid;not null" json:"presenter_id"`
	CourseID    *uuid.UUID `gorm:"type:uuid;index" json:"course_id,omitempty"`

	StartTime  time.Time `gorm:"not null" json:"start_time"`
	EndTime    time.Time `gorm:"not null" json:"end_time"`
	Capacity   int       `gorm:"not null;default:100" json:"capacity"`
	MeetingURL string    `gorm:"size:512" json:"meeting_url,omitempty"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`

	Presenter User `gorm:"foreignkey:PresenterID" json:"presenter,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WebinarRegistration struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	WebinarID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_registration_webinar_user" json:"webinar_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_registration_webinar_user" json:"user_id"`

	Webinar Webinar `gorm:"foreignkey:WebinarID" json:"webinar,omitempty"`
	User    User    `gorm:"foreignkey:UserID" json:"user,omitempty"`

	RegisteredAt time.Time `gorm:"not null" json:"registered_at"`
}
