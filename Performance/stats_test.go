package Performance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Darsgah/Models"
)

const testDate = "2025-06-10"

func TestEfficiencyScoreIdleDay(t *testing.T) {
	assert.Equal(t, 100, calculateEfficiencyScore(DailyStats{}))
}

func TestEfficiencyScorePaymentThresholdIsStrict(t *testing.T) {
	at := DailyStats{AvgPaymentTime: 300}
	assert.Equal(t, 100, calculateEfficiencyScore(at), "exactly 5 minutes must not penalize")

	over := DailyStats{AvgPaymentTime: 301}
	assert.Equal(t, 90, calculateEfficiencyScore(over))
}

func TestEfficiencyScoreBonusesClampAt100(t *testing.T) {
	stats := DailyStats{
		TotalTasks:        20,
		PaymentsProcessed: 10,
		BlogPostsCreated:  2,
	}
	assert.Equal(t, 100, calculateEfficiencyScore(stats))
}

func TestEfficiencyScoreAllPenaltiesWithVolumeBonus(t *testing.T) {
	stats := DailyStats{
		TotalTasks:        25,
		AvgPaymentTime:    301,
		AvgEnrollmentTime: 181,
		AvgBlogTime:       1801,
		AvgCourseTime:     601,
		AvgResponseTime:   3601,
	}
	// 100 - 5*10 + 10 for volume
	assert.Equal(t, 60, calculateEfficiencyScore(stats))
}

func TestEfficiencyScoreEveryPenalty(t *testing.T) {
	stats := DailyStats{
		AvgPaymentTime:    400,
		AvgEnrollmentTime: 200,
		AvgBlogTime:       2000,
		AvgCourseTime:     700,
		AvgResponseTime:   4000,
	}
	assert.Equal(t, 50, calculateEfficiencyScore(stats))
}

func TestCalculateDailyStatsPartitionsByCategory(t *testing.T) {
	db := newTestDB(t)
	tracker := NewTracker(db)

	seedCompletedTask(t, db, 1, Models.TaskTypePaymentReview, testDate, 100)
	seedCompletedTask(t, db, 1, Models.TaskTypePaymentReview, testDate, 200)
	seedCompletedTask(t, db, 1, Models.TaskTypeBlogCreation, testDate, 900)
	seedCompletedTask(t, db, 1, Models.TaskTypeUserSupport, testDate, 60)

	// Noise the scan must ignore: other admin, other day, not completed.
	seedCompletedTask(t, db, 2, Models.TaskTypePaymentReview, testDate, 9999)
	seedCompletedTask(t, db, 1, Models.TaskTypePaymentReview, "2025-06-11", 9999)
	start, _, err := dayRange(testDate)
	require.NoError(t, err)
	require.NoError(t, db.Create(&Models.AdminTask{
		AdminID:   1,
		TaskType:  Models.TaskTypePaymentReview,
		StartTime: start,
		Status:    Models.TaskStatusInProgress,
	}).Error)

	stats, err := tracker.CalculateDailyStats(1, testDate)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalTasks)
	assert.InDelta(t, 315.0, stats.AvgCompletionTime, 0.001)

	assert.Equal(t, 2, stats.PaymentsProcessed)
	assert.InDelta(t, 150.0, stats.AvgPaymentTime, 0.001)

	assert.Equal(t, 1, stats.BlogPostsCreated)
	assert.InDelta(t, 900.0, stats.AvgBlogTime, 0.001)

	assert.Equal(t, 1, stats.UserQueries)
	assert.InDelta(t, 60.0, stats.AvgResponseTime, 0.001)

	// Idle categories report zero count and zero average, never null.
	assert.Equal(t, 0, stats.EnrollmentsManaged)
	assert.Zero(t, stats.AvgEnrollmentTime)
	assert.Equal(t, 0, stats.CoursesUpdated)
	assert.Zero(t, stats.AvgCourseTime)
}

func TestCalculateDailyStatsEmptyDay(t *testing.T) {
	db := newTestDB(t)
	tracker := NewTracker(db)

	stats, err := tracker.CalculateDailyStats(7, testDate)
	require.NoError(t, err)

	assert.Zero(t, stats.TotalTasks)
	assert.Zero(t, stats.AvgCompletionTime)
	assert.Equal(t, 100, stats.EfficiencyScore)
}

func TestCalculateDailyStatsRejectsBadDate(t *testing.T) {
	db := newTestDB(t)
	tracker := NewTracker(db)

	_, err := tracker.CalculateDailyStats(1, "not-a-date")
	assert.Error(t, err)
}
