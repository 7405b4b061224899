package jobs

import (
	"log"
	"time"

	"github.com/anjiri1684/course_platform/database"
	"github.com/anjiri1684/course_platform/models"
)

// ExpireStaleAttempts marks in-progress attempts whose quiz duration
// has elapsed (plus a two minute grace for slow submissions) as
// expired. The status guard inside the single UPDATE keeps a
// submission that lands mid-job intact: completed attempts are
// terminal and never touched.
func ExpireStaleAttempts() {
	log.Println("Running job: ExpireStaleAttempts...")

	result := database.DB.Model(&models.QuizAttempt{}).
		Where("status = ?", models.AttemptStatusInProgress).
		Where("started_at + ((SELECT duration_minutes FROM quizzes WHERE quizzes.id = quiz_attempts.quiz_id) * interval '1 minute') + interval '2 minutes' < ?", time.Now()).
		Update("status", models.AttemptStatusExpired)
	if result.Error != nil {
		log.Printf("Error expiring stale attempts: %v", result.Error)
		return
	}

	if result.RowsAffected == 0 {
		log.Println("No stale attempts found.")
		return
	}

	log.Printf("Marked %d attempt(s) as expired.", result.RowsAffected)
}
