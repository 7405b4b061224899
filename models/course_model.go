package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Course struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	InstructorID uuid.UUID `gorm:"type:uuid;not null;index" json:"instructor_id"`
	Category     string    `gorm:"size:100" json:"category"`
	Level        string    `gorm:"size:50;default:'beginner'" json:"level"`
	Price        float64   `gorm:"type:numeric(10,2);default:0.00" json:"price"`

	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	IsPublished bool           `gorm:"default:false" json:"is_published"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`

	Instructor User           `gorm:"foreignkey:InstructorID" json:"instructor,omitempty"`
	Modules    []CourseModule `gorm:"foreignkey:CourseID" json:"modules,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
