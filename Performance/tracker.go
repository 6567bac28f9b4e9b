// Package Performance implements the admin performance tracking engine:
// a task ledger with start/complete timing, an append-only metric log,
// per-day aggregation into daily summaries and the dashboard read paths.
package Performance

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"Darsgah/Models"
)

// Tracker owns the performance tables through an injected DB handle so
// tests and request handlers can carry their own connection.
type Tracker struct {
	DB *gorm.DB
}

// NewTracker creates a new Tracker
func NewTracker(db *gorm.DB) *Tracker {
	return &Tracker{DB: db}
}

// RecordMetric appends one observation. Duplicate observations are valid
// and all retained.
func (t *Tracker) RecordMetric(metricType string, metricValue float64, adminID uint, relatedEntityID *uint) error {
	metric := Models.PerformanceMetric{
		MetricType:      metricType,
		MetricValue:     metricValue,
		AdminID:         adminID,
		RelatedEntityID: relatedEntityID,
	}
	return t.DB.Create(&metric).Error
}

// StartTask opens a task in_progress with StartTime = now and returns the
// generated id.
func (t *Tracker) StartTask(adminID uint, taskType, description string) (uint, error) {
	task := Models.AdminTask{
		AdminID:         adminID,
		TaskType:        taskType,
		TaskDescription: description,
		StartTime:       time.Now(),
		Status:          Models.TaskStatusInProgress,
	}
	if err := t.DB.Create(&task).Error; err != nil {
		return 0, err
	}
	return task.ID, nil
}

// CompleteTask stamps EndTime = now and records status, notes and the
// wall-clock duration. A missing task id is a no-op success and completing
// twice overwrites the previous completion — callers are trusted, the
// ledger does not police transitions.
func (t *Tracker) CompleteTask(taskID uint, status string, notes *string) error {
	var task Models.AdminTask
	result := t.DB.First(&task, taskID)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil
		}
		return result.Error
	}

	now := time.Now()
	task.EndTime = &now
	task.Status = status
	task.Notes = notes
	task.DurationSeconds = now.Sub(task.StartTime).Seconds()
	if task.DurationSeconds < 0 {
		task.DurationSeconds = 0
	}
	return t.DB.Save(&task).Error
}

// GetDailySummary returns the persisted summary row for the admin-day, or
// nil when none has been computed yet. It never triggers recomputation.
func (t *Tracker) GetDailySummary(adminID uint, date string) (*Models.DailySummary, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	var summary Models.DailySummary
	result := t.DB.Where("admin_id = ? AND date = ?", adminID, date).First(&summary)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}
	return &summary, nil
}

// UpdateDailySummary recomputes the admin-day aggregate from the task
// ledger and upserts it on (admin_id, date). The conflict clause makes
// concurrent calls collapse to a single row, last writer wins.
func (t *Tracker) UpdateDailySummary(adminID uint, date string) error {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	stats, err := t.CalculateDailyStats(adminID, date)
	if err != nil {
		return err
	}

	summary := Models.DailySummary{
		Date:                     date,
		AdminID:                  adminID,
		TotalTasksCompleted:      stats.TotalTasks,
		AvgTaskCompletionTime:    stats.AvgCompletionTime,
		PaymentsProcessed:        stats.PaymentsProcessed,
		AvgPaymentProcessingTime: stats.AvgPaymentTime,
		EnrollmentsManaged:       stats.EnrollmentsManaged,
		AvgEnrollmentTime:        stats.AvgEnrollmentTime,
		BlogPostsCreated:         stats.BlogPostsCreated,
		AvgBlogCreationTime:      stats.AvgBlogTime,
		CoursesUpdated:           stats.CoursesUpdated,
		AvgCourseUpdateTime:      stats.AvgCourseTime,
		UserQueriesResponded:     stats.UserQueries,
		AvgResponseTime:          stats.AvgResponseTime,
		EfficiencyScore:          stats.EfficiencyScore,
	}

	return t.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "admin_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_tasks_completed", "avg_task_completion_time",
			"payments_processed", "avg_payment_processing_time",
			"enrollments_managed", "avg_enrollment_time",
			"blog_posts_created", "avg_blog_creation_time",
			"courses_updated", "avg_course_update_time",
			"user_queries_responded", "avg_response_time",
			"efficiency_score", "updated_at",
		}),
	}).Create(&summary).Error
}

// dayRange converts a YYYY-MM-DD date into the [start, end) local-time
// window used by every per-day scan.
func dayRange(date string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 0, 1), nil
}
