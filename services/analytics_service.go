package services

import (
	"math"

	"github.com/anjiri1684/course_platform/models"
	"github.com/google/uuid"
)

type QuestionStats struct {
	QuestionID    uuid.UUID `json:"question_id"`
	Position      int       `json:"position"`
	QuestionType  string    `json:"question_type"`
	Answered      int       `json:"answered"`
	Correct       int       `json:"correct"`
	Accuracy      float64   `json:"accuracy"`
	PendingReview int       `json:"pending_review"`
}

type QuizAnalytics struct {
	TotalAttempts      int `json:"total_attempts"`
	InProgressAttempts int `json:"in_progress_attempts"`
	CompletedAttempts  int `json:"completed_attempts"`
	ExpiredAttempts    int `json:"expired_attempts"`
	AbandonedAttempts  int `json:"abandoned_attempts"`

	AverageScore float64 `json:"average_score"`
	HighestScore float64 `json:"highest_score"`
	LowestScore  float64 `json:"lowest_score"`
	PassRate     float64 `json:"pass_rate"`

	AverageCompletionSeconds float64 `json:"average_completion_seconds"`
	FastestCompletionSeconds float64 `json:"fastest_completion_seconds"`
	SlowestCompletionSeconds float64 `json:"slowest_completion_seconds"`

	AnswersPendingReview int             `json:"answers_pending_review"`
	QuestionStats        []QuestionStats `json:"question_stats"`
}

// ComputeQuizAnalytics aggregates attempt rows into the analytics
// report. Figures are computed fresh from the rows handed in; score
// statistics and pass rate cover completed attempts only.
func ComputeQuizAnalytics(questions []models.Question, attempts []models.QuizAttempt) QuizAnalytics {
	analytics := QuizAnalytics{TotalAttempts: len(attempts)}

	statsByQuestion := make(map[uuid.UUID]*QuestionStats, len(questions))
	for _, q := range questions {
		statsByQuestion[q.ID] = &QuestionStats{
			QuestionID:   q.ID,
			Position:     q.Position,
			QuestionType: q.QuestionType,
		}
	}

	var scoreSum, timeSum float64
	var passed, completed, timed int

	for _, attempt := range attempts {
		switch attempt.Status {
		case models.AttemptStatusInProgress:
			analytics.InProgressAttempts++
		case models.AttemptStatusCompleted:
			analytics.CompletedAttempts++
		case models.AttemptStatusExpired:
			analytics.ExpiredAttempts++
		case models.AttemptStatusAbandoned:
			analytics.AbandonedAttempts++
		}

		if attempt.Status != models.AttemptStatusCompleted {
			continue
		}
		completed++

		scoreSum += attempt.Percentage
		if completed == 1 || attempt.Percentage > analytics.HighestScore {
			analytics.HighestScore = attempt.Percentage
		}
		if completed == 1 || attempt.Percentage < analytics.LowestScore {
			analytics.LowestScore = attempt.Percentage
		}
		if attempt.IsPassed {
			passed++
		}

		if attempt.CompletedAt != nil {
			timed++
			seconds := attempt.CompletedAt.Sub(attempt.StartedAt).Seconds()
			timeSum += seconds
			if timed == 1 || seconds > analytics.SlowestCompletionSeconds {
				analytics.SlowestCompletionSeconds = seconds
			}
			if timed == 1 || seconds < analytics.FastestCompletionSeconds {
				analytics.FastestCompletionSeconds = seconds
			}
		}

		for _, answer := range attempt.Answers {
			stats, ok := statsByQuestion[answer.QuestionID]
			if !ok {
				continue
			}
			stats.Answered++
			if answer.IsCorrect {
				stats.Correct++
			}
			if answer.RequiresGrading {
				stats.PendingReview++
				analytics.AnswersPendingReview++
			}
		}
	}

	if completed > 0 {
		analytics.AverageScore = round2(scoreSum / float64(completed))
		analytics.PassRate = round2(float64(passed) / float64(completed) * 100)
	}
	if timed > 0 {
		analytics.AverageCompletionSeconds = round2(timeSum / float64(timed))
	}

	analytics.QuestionStats = make([]QuestionStats, 0, len(questions))
	for _, q := range questions {
		stats := statsByQuestion[q.ID]
		if stats.Answered > 0 {
			stats.Accuracy = round2(float64(stats.Correct) / float64(stats.Answered) * 100)
		}
		analytics.QuestionStats = append(analytics.QuestionStats, *stats)
	}

	return analytics
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
