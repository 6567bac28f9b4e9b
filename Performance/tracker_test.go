package Performance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Darsgah/Models"
)

func TestStartAndCompleteTask(t *testing.T) {
	db := newTestDB(t)
	tracker := NewTracker(db)

	taskID, err := tracker.StartTask(1, Models.TaskTypeUserSupport, "پاسخ به پرسش کاربر")
	require.NoError(t, err)
	require.NotZero(t, taskID)

	var task Models.AdminTask
	require.NoError(t, db.First(&task, taskID).Error)
	assert.Equal(t, Models.TaskStatusInProgress, task.Status)
	assert.Nil(t, task.EndTime)

	notes := "resolved"
	require.NoError(t, tracker.CompleteTask(taskID, Models.TaskStatusCompleted, &notes))

	require.NoError(t, db.First(&task, taskID).Error)
	assert.Equal(t, Models.TaskStatusCompleted, task.Status)
	require.NotNil(t, task.EndTime)
	assert.False(t, task.EndTime.Before(task.StartTime))
	assert.GreaterOrEqual(t, task.DurationSeconds, 0.0)
	require.NotNil(t, task.Notes)
	assert.Equal(t, "resolved", *task.Notes)
}

func TestCompleteTaskMissingIDIsNoop(t *testing.T) {
	db := newTestDB(t)
	tracker := NewTracker(db)

	assert.NoError(t, tracker.CompleteTask(424242, Models.TaskStatusCompleted, nil))

	var count int64
	db.Model(&Models.AdminTask{}).Count(&count)
	assert.Zero(t, count)
}

func TestCompleteTaskTwiceLastWriteWins(t *testing.T) {
	db := newTestDB(t)
	tracker := NewTracker(db)

	taskID, err := tracker.StartTask(1, Models.TaskTypePaymentReview, "بررسی پرداخت")
	require.NoError(t, err)

	require.NoError(t, tracker.CompleteTask(taskID, Models.TaskStatusCompleted, nil))
	notes := "gateway timeout"
	require.NoError(t, tracker.CompleteTask(taskID, Models.TaskStatusFailed, &notes))

	var task Models.AdminTask
	require.NoError(t, db.First(&task, taskID).Error)
	assert.Equal(t, Models.TaskStatusFailed, task.Status)
	require.NotNil(t, task.Notes)
	assert.Equal(t, "gateway timeout", *task.Notes)
}

func TestRecordMetricKeepsDuplicates(t *testing.T) {
	db := newTestDB(t)
	tracker := NewTracker(db)

	require.NoError(t, tracker.RecordMetric("page_load_time", 1.8, 1, nil))
	require.NoError(t, tracker.RecordMetric("page_load_time", 1.8, 1, nil))

	var count int64
	db.Model(&Models.PerformanceMetric{}).
		Where("metric_type = ? AND admin_id = ?", "page_load_time", 1).
		Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestRecordMetricRelatedEntity(t *testing.T) {
	db := newTestDB(t)
	tracker := NewTracker(db)

	entityID := uint(55)
	require.NoError(t, tracker.RecordMetric("blog_views", 12, 1, &entityID))

	var metric Models.PerformanceMetric
	require.NoError(t, db.First(&metric).Error)
	require.NotNil(t, metric.RelatedEntityID)
	assert.Equal(t, uint(55), *metric.RelatedEntityID)
}

func TestUpdateDailySummaryEmptyDay(t *testing.T) {
	db := newTestDB(t)
	tracker := NewTracker(db)

	require.NoError(t, tracker.UpdateDailySummary(3, testDate))

	summary, err := tracker.GetDailySummary(3, testDate)
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Zero(t, summary.TotalTasksCompleted)
	assert.Zero(t, summary.AvgTaskCompletionTime)
	assert.Zero(t, summary.PaymentsProcessed)
	assert.Zero(t, summary.AvgPaymentProcessingTime)
	assert.Zero(t, summary.EnrollmentsManaged)
	assert.Zero(t, summary.AvgEnrollmentTime)
	assert.Zero(t, summary.BlogPostsCreated)
	assert.Zero(t, summary.AvgBlogCreationTime)
	assert.Zero(t, summary.CoursesUpdated)
	assert.Zero(t, summary.AvgCourseUpdateTime)
	assert.Zero(t, summary.UserQueriesResponded)
	assert.Zero(t, summary.AvgResponseTime)
	assert.Equal(t, 100, summary.EfficiencyScore)
}

func TestUpdateDailySummaryIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	tracker := NewTracker(db)

	seedCompletedTask(t, db, 1, Models.TaskTypePaymentReview, testDate, 120)
	seedCompletedTask(t, db, 1, Models.TaskTypeBlogCreation, testDate, 600)

	require.NoError(t, tracker.UpdateDailySummary(1, testDate))
	first, err := tracker.GetDailySummary(1, testDate)
	require.NoError(t, err)
	require.NotNil(t, first)

	require.NoError(t, tracker.UpdateDailySummary(1, testDate))
	second, err := tracker.GetDailySummary(1, testDate)
	require.NoError(t, err)
	require.NotNil(t, second)

	var count int64
	db.Model(&Models.DailySummary{}).
		Where("admin_id = ? AND date = ?", 1, testDate).
		Count(&count)
	assert.Equal(t, int64(1), count, "upsert must keep exactly one row per admin-day")

	assert.Equal(t, first.TotalTasksCompleted, second.TotalTasksCompleted)
	assert.Equal(t, first.AvgTaskCompletionTime, second.AvgTaskCompletionTime)
	assert.Equal(t, first.PaymentsProcessed, second.PaymentsProcessed)
	assert.Equal(t, first.BlogPostsCreated, second.BlogPostsCreated)
	assert.Equal(t, first.EfficiencyScore, second.EfficiencyScore)
}

func TestUpdateDailySummaryOverwritesOnNewTasks(t *testing.T) {
	db := newTestDB(t)
	tracker := NewTracker(db)

	seedCompletedTask(t, db, 1, Models.TaskTypeUserSupport, testDate, 30)
	require.NoError(t, tracker.UpdateDailySummary(1, testDate))

	seedCompletedTask(t, db, 1, Models.TaskTypeUserSupport, testDate, 90)
	require.NoError(t, tracker.UpdateDailySummary(1, testDate))

	summary, err := tracker.GetDailySummary(1, testDate)
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 2, summary.UserQueriesResponded)
	assert.InDelta(t, 60.0, summary.AvgResponseTime, 0.001)

	var count int64
	db.Model(&Models.DailySummary{}).Where("admin_id = ?", 1).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetDailySummaryAbsent(t *testing.T) {
	db := newTestDB(t)
	tracker := NewTracker(db)

	summary, err := tracker.GetDailySummary(9, testDate)
	require.NoError(t, err)
	assert.Nil(t, summary)
}

func TestGetDailySummaryDefaultsToToday(t *testing.T) {
	db := newTestDB(t)
	tracker := NewTracker(db)

	today := time.Now().Format("2006-01-02")
	require.NoError(t, tracker.UpdateDailySummary(1, ""))

	summary, err := tracker.GetDailySummary(1, "")
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, today, summary.Date)
}
