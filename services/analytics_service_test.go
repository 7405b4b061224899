package services

import (
	"testing"
	"time"

	"github.com/anjiri1684/course_platform/models"
	"github.com/google/uuid"
)

func completedAttempt(percentage float64, passed bool, started time.Time, duration time.Duration, answers []models.AttemptAnswer) models.QuizAttempt {
	completed := started.Add(duration)
	return models.QuizAttempt{
		Status:      models.AttemptStatusCompleted,
		Percentage:  percentage,
		IsPassed:    passed,
		StartedAt:   started,
		CompletedAt: &completed,
		Answers:     answers,
	}
}

func TestComputeQuizAnalytics(t *testing.T) {
	q1 := models.Question{ID: uuid.New(), Position: 0, QuestionType: models.QuestionTypeSingleChoice}
	q2 := models.Question{ID: uuid.New(), Position: 1, QuestionType: models.QuestionTypeEssay}
	questions := []models.Question{q1, q2}

	started := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	attempts := []models.QuizAttempt{
		completedAttempt(80, true, started, 4*time.Minute, []models.AttemptAnswer{
			{QuestionID: q1.ID, IsCorrect: true},
			{QuestionID: q2.ID, RequiresGrading: true},
		}),
		completedAttempt(40, false, started, 6*time.Minute, []models.AttemptAnswer{
			{QuestionID: q1.ID, IsCorrect: false},
		}),
		{Status: models.AttemptStatusInProgress, StartedAt: started},
		{Status: models.AttemptStatusExpired, StartedAt: started},
	}

	analytics := ComputeQuizAnalytics(questions, attempts)

	if analytics.TotalAttempts != 4 {
		t.Errorf("TotalAttempts = %d, want 4", analytics.TotalAttempts)
	}
	if analytics.CompletedAttempts != 2 || analytics.InProgressAttempts != 1 || analytics.ExpiredAttempts != 1 {
		t.Errorf("status counts = completed %d / in-progress %d / expired %d, want 2/1/1",
			analytics.CompletedAttempts, analytics.InProgressAttempts, analytics.ExpiredAttempts)
	}

	if analytics.AverageScore != 60 {
		t.Errorf("AverageScore = %v, want 60", analytics.AverageScore)
	}
	if analytics.HighestScore != 80 || analytics.LowestScore != 40 {
		t.Errorf("score range = %v..%v, want 40..80", analytics.LowestScore, analytics.HighestScore)
	}
	if analytics.PassRate != 50 {
		t.Errorf("PassRate = %v, want 50", analytics.PassRate)
	}

	if analytics.AverageCompletionSeconds != 300 {
		t.Errorf("AverageCompletionSeconds = %v, want 300", analytics.AverageCompletionSeconds)
	}
	if analytics.FastestCompletionSeconds != 240 || analytics.SlowestCompletionSeconds != 360 {
		t.Errorf("completion range = %v..%v, want 240..360",
			analytics.FastestCompletionSeconds, analytics.SlowestCompletionSeconds)
	}

	if len(analytics.QuestionStats) != 2 {
		t.Fatalf("expected stats for 2 questions, got %d", len(analytics.QuestionStats))
	}
	first := analytics.QuestionStats[0]
	if first.QuestionID != q1.ID || first.Answered != 2 || first.Correct != 1 || first.Accuracy != 50 {
		t.Errorf("q1 stats = answered %d correct %d accuracy %v, want 2/1/50", first.Answered, first.Correct, first.Accuracy)
	}
	second := analytics.QuestionStats[1]
	if second.Answered != 1 || second.PendingReview != 1 || second.Accuracy != 0 {
		t.Errorf("q2 stats = answered %d pending %d accuracy %v, want 1/1/0", second.Answered, second.PendingReview, second.Accuracy)
	}
	if analytics.AnswersPendingReview != 1 {
		t.Errorf("AnswersPendingReview = %d, want 1", analytics.AnswersPendingReview)
	}
}

func TestComputeQuizAnalyticsEmpty(t *testing.T) {
	analytics := ComputeQuizAnalytics(nil, nil)

	if analytics.TotalAttempts != 0 || analytics.CompletedAttempts != 0 {
		t.Fatalf("empty input must produce zero counts")
	}
	if analytics.AverageScore != 0 || analytics.PassRate != 0 {
		t.Fatalf("empty input must not divide by zero")
	}
	if len(analytics.QuestionStats) != 0 {
		t.Fatalf("expected no question stats, got %d", len(analytics.QuestionStats))
	}
}

func TestComputeQuizAnalyticsOnlyInProgress(t *testing.T) {
	attempts := []models.QuizAttempt{
		{Status: models.AttemptStatusInProgress},
		{Status: models.AttemptStatusAbandoned},
	}
	analytics := ComputeQuizAnalytics(nil, attempts)

	if analytics.TotalAttempts != 2 || analytics.InProgressAttempts != 1 || analytics.AbandonedAttempts != 1 {
		t.Fatalf("status counts wrong: %+v", analytics)
	}
	if analytics.PassRate != 0 || analytics.AverageScore != 0 {
		t.Fatalf("no completed attempts must leave score figures at zero")
	}
}
