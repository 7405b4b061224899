package models

import (
	"time"

	"github.com/google/uuid"
)

type Enrollment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_student_course" json:"student_id"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_student_course" json:"course_id"`
	Status    string    `gorm:"size:20;not null;default:'active'" json:"status"`
	Progress  float64   `gorm:"type:numeric(5,2);default:0.00" json:"progress"`

	Student User   `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	Course  Course `gorm:"foreignkey:CourseID" json:"course,omitempty"`

	EnrolledAt  time.Time  `gorm:"not null" json:"enrolled_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
