package Performance

import (
	"time"

	"Darsgah/Models"
)

// TrendPoint is one day of an admin's performance history as shown on the
// trends chart.
type TrendPoint struct {
	Date                  string  `json:"date"`
	EfficiencyScore       int     `json:"efficiency_score"`
	TotalTasksCompleted   int     `json:"total_tasks_completed"`
	AvgTaskCompletionTime float64 `json:"avg_task_completion_time"`
	PaymentsProcessed     int     `json:"payments_processed"`
	EnrollmentsManaged    int     `json:"enrollments_managed"`
	BlogPostsCreated      int     `json:"blog_posts_created"`
	CoursesUpdated        int     `json:"courses_updated"`
}

// RealTimeMetrics is the point-in-time dashboard block for the current day.
type RealTimeMetrics struct {
	ActiveTasks     int64   `json:"active_tasks"`
	CompletedTasks  int64   `json:"completed_tasks"`
	PendingPayments int64   `json:"pending_payments"`
	AvgResponseTime float64 `json:"avg_response_time"`
}

// GetPerformanceTrends returns the stored summaries of the trailing 30
// days, newest first. Days without a summary row are simply absent.
func (t *Tracker) GetPerformanceTrends(adminID uint) ([]TrendPoint, error) {
	cutoff := time.Now().AddDate(0, 0, -30).Format("2006-01-02")

	var trends []TrendPoint
	result := t.DB.Model(&Models.DailySummary{}).
		Select("date, efficiency_score, total_tasks_completed, avg_task_completion_time, payments_processed, enrollments_managed, blog_posts_created, courses_updated").
		Where("admin_id = ? AND date >= ?", adminID, cutoff).
		Order("date DESC").
		Scan(&trends)
	if result.Error != nil {
		return nil, result.Error
	}
	return trends, nil
}

// GetRealTimeMetrics reads four independent counts for today. Pending
// payments are a queue shared across admins, so that count is global.
func (t *Tracker) GetRealTimeMetrics(adminID uint) (RealTimeMetrics, error) {
	today := time.Now().Format("2006-01-02")
	start, end, err := dayRange(today)
	if err != nil {
		return RealTimeMetrics{}, err
	}

	var metrics RealTimeMetrics

	if err := t.DB.Model(&Models.AdminTask{}).
		Where("admin_id = ? AND start_time >= ? AND start_time < ? AND status = ?",
			adminID, start, end, Models.TaskStatusInProgress).
		Count(&metrics.ActiveTasks).Error; err != nil {
		return RealTimeMetrics{}, err
	}

	if err := t.DB.Model(&Models.AdminTask{}).
		Where("admin_id = ? AND start_time >= ? AND start_time < ? AND status = ?",
			adminID, start, end, Models.TaskStatusCompleted).
		Count(&metrics.CompletedTasks).Error; err != nil {
		return RealTimeMetrics{}, err
	}

	if err := t.DB.Model(&Models.Payment{}).
		Where("status = ?", Models.PaymentStatusPending).
		Count(&metrics.PendingPayments).Error; err != nil {
		return RealTimeMetrics{}, err
	}

	if err := t.DB.Model(&Models.AdminTask{}).
		Where("admin_id = ? AND start_time >= ? AND start_time < ? AND task_type = ? AND status = ?",
			adminID, start, end, Models.TaskTypeUserSupport, Models.TaskStatusCompleted).
		Select("COALESCE(AVG(duration_seconds), 0)").
		Scan(&metrics.AvgResponseTime).Error; err != nil {
		return RealTimeMetrics{}, err
	}

	return metrics, nil
}
