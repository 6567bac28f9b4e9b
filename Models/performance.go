package Models

import (
	"time"

	"gorm.io/gorm"
)

// Task status values. Tasks start in progress and end completed or failed;
// nothing in the store enforces the transition, callers own the ordering.
const (
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
	TaskStatusFailed     = "failed"
)

// Task type labels written by the admin APIs and read by the aggregator.
const (
	TaskTypePaymentReview          = "payment_review"
	TaskTypeEnrollmentConfirmation = "enrollment_confirmation"
	TaskTypeBlogCreation           = "blog_creation"
	TaskTypeCourseUpdate           = "course_update"
	TaskTypeUserSupport            = "user_support"
)

// AdminTask is one timed unit of administrative work. Rows are created by
// StartTask, mutated once by CompleteTask and never deleted.
type AdminTask struct {
	gorm.Model
	AdminID         uint       `json:"admin_id" gorm:"index;not null"`
	TaskType        string     `json:"task_type" gorm:"index;not null"`
	TaskDescription string     `json:"task_description"`
	StartTime       time.Time  `json:"start_time" gorm:"index;not null"`
	EndTime         *time.Time `json:"end_time"`
	Status          string     `json:"status" gorm:"default:in_progress"`
	Notes           *string    `json:"notes"`
	DurationSeconds float64    `json:"duration_seconds"`
}

func (AdminTask) TableName() string {
	return "admin_tasks"
}

// PerformanceMetric is an append-only observation. Duplicates are valid,
// e.g. two load-time samples for the same page.
type PerformanceMetric struct {
	gorm.Model
	MetricType      string  `json:"metric_type" gorm:"index;not null"`
	MetricValue     float64 `json:"metric_value"`
	AdminID         uint    `json:"admin_id" gorm:"index;not null"`
	RelatedEntityID *uint   `json:"related_entity_id"`
}

func (PerformanceMetric) TableName() string {
	return "performance_metrics"
}

// SystemBenchmark is a named target metric. Rows are seeded externally;
// the performance engine only ever updates CurrentValue.
type SystemBenchmark struct {
	gorm.Model
	BenchmarkName string  `json:"benchmark_name" gorm:"not null;uniqueIndex"`
	CurrentValue  float64 `json:"current_value"`
	TargetValue   float64 `json:"target_value"`
}

func (SystemBenchmark) TableName() string {
	return "system_benchmarks"
}

// BenchmarkStatus is the read projection of a benchmark with its achievement
// percentage computed at query time. It is never persisted.
type BenchmarkStatus struct {
	ID                    uint    `json:"id"`
	BenchmarkName         string  `json:"benchmark_name"`
	CurrentValue          float64 `json:"current_value"`
	TargetValue           float64 `json:"target_value"`
	AchievementPercentage float64 `json:"achievement_percentage"`
}

// DailySummary holds the derived per-admin, per-day aggregate. Exactly one
// row exists per (admin_id, date); updates fully overwrite the row and the
// row is always reproducible from admin_tasks.
type DailySummary struct {
	gorm.Model
	Date    string `json:"date" gorm:"size:10;uniqueIndex:idx_admin_date;not null"`
	AdminID uint   `json:"admin_id" gorm:"uniqueIndex:idx_admin_date;not null"`

	TotalTasksCompleted      int     `json:"total_tasks_completed" gorm:"default:0"`
	AvgTaskCompletionTime    float64 `json:"avg_task_completion_time" gorm:"default:0"`
	PaymentsProcessed        int     `json:"payments_processed" gorm:"default:0"`
	AvgPaymentProcessingTime float64 `json:"avg_payment_processing_time" gorm:"default:0"`
	EnrollmentsManaged       int     `json:"enrollments_managed" gorm:"default:0"`
	AvgEnrollmentTime        float64 `json:"avg_enrollment_time" gorm:"default:0"`
	BlogPostsCreated         int     `json:"blog_posts_created" gorm:"default:0"`
	AvgBlogCreationTime      float64 `json:"avg_blog_creation_time" gorm:"default:0"`
	CoursesUpdated           int     `json:"courses_updated" gorm:"default:0"`
	AvgCourseUpdateTime      float64 `json:"avg_course_update_time" gorm:"default:0"`
	UserQueriesResponded     int     `json:"user_queries_responded" gorm:"default:0"`
	AvgResponseTime          float64 `json:"avg_response_time" gorm:"default:0"`
	EfficiencyScore          int     `json:"efficiency_score" gorm:"default:100"`
}

func (DailySummary) TableName() string {
	return "daily_performance_summary"
}
