package handlers

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestWebinarFromRequest(t *testing.T) {
	presenterID := uuid.New()
	start := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	req := WebinarRequest{
		Title:     "Office hours",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}

	webinar := webinarFromRequest(req, presenterID)

	if webinar.PresenterID != presenterID {
		t.Errorf("PresenterID = %v, want %v", webinar.PresenterID, presenterID)
	}
	if webinar.Capacity != 100 {
		t.Errorf("Capacity should default to 100, got %d", webinar.Capacity)
	}
	if !webinar.IsActive {
		t.Errorf("webinars should be active by default")
	}

	inactive := false
	req.IsActive = &inactive
	req.Capacity = 25
	webinar = webinarFromRequest(req, presenterID)

	if webinar.IsActive {
		t.Errorf("is_active=false in the body must carry through")
	}
	if webinar.Capacity != 25 {
		t.Errorf("Capacity = %d, want 25", webinar.Capacity)
	}
}
