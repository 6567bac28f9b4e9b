package Performance

import (
	"Darsgah/Models"
)

// Efficiency score thresholds, in seconds for the averages.
const (
	slowPaymentThreshold    = 300  // 5 minutes
	slowEnrollmentThreshold = 180  // 3 minutes
	slowBlogThreshold       = 1800 // 30 minutes
	slowCourseThreshold     = 600  // 10 minutes
	slowResponseThreshold   = 3600 // 1 hour

	highTaskVolume    = 20
	highPaymentVolume = 10
	highBlogVolume    = 2
)

// DailyStats is one admin-day of completed-task aggregates: a count and
// mean duration overall and per task category.
type DailyStats struct {
	TotalTasks        int
	AvgCompletionTime float64

	PaymentsProcessed int
	AvgPaymentTime    float64

	EnrollmentsManaged int
	AvgEnrollmentTime  float64

	BlogPostsCreated int
	AvgBlogTime      float64

	CoursesUpdated int
	AvgCourseTime  float64

	UserQueries     int
	AvgResponseTime float64

	EfficiencyScore int
}

type bucket struct {
	count int
	sum   float64
}

func (b bucket) avg() float64 {
	if b.count == 0 {
		return 0
	}
	return b.sum / float64(b.count)
}

// CalculateDailyStats scans the admin's completed tasks for the day once
// and partitions them by category in Go. A category with no completed
// tasks reports count 0 and average 0, never null.
func (t *Tracker) CalculateDailyStats(adminID uint, date string) (DailyStats, error) {
	start, end, err := dayRange(date)
	if err != nil {
		return DailyStats{}, err
	}

	var tasks []Models.AdminTask
	result := t.DB.Where("admin_id = ? AND start_time >= ? AND start_time < ? AND status = ?",
		adminID, start, end, Models.TaskStatusCompleted).
		Find(&tasks)
	if result.Error != nil {
		return DailyStats{}, result.Error
	}

	var overall bucket
	byType := make(map[string]*bucket)
	for _, task := range tasks {
		overall.count++
		overall.sum += task.DurationSeconds

		b, exists := byType[task.TaskType]
		if !exists {
			b = &bucket{}
			byType[task.TaskType] = b
		}
		b.count++
		b.sum += task.DurationSeconds
	}

	category := func(taskType string) bucket {
		if b, exists := byType[taskType]; exists {
			return *b
		}
		return bucket{}
	}

	payments := category(Models.TaskTypePaymentReview)
	enrollments := category(Models.TaskTypeEnrollmentConfirmation)
	blogs := category(Models.TaskTypeBlogCreation)
	courses := category(Models.TaskTypeCourseUpdate)
	support := category(Models.TaskTypeUserSupport)

	stats := DailyStats{
		TotalTasks:         overall.count,
		AvgCompletionTime:  overall.avg(),
		PaymentsProcessed:  payments.count,
		AvgPaymentTime:     payments.avg(),
		EnrollmentsManaged: enrollments.count,
		AvgEnrollmentTime:  enrollments.avg(),
		BlogPostsCreated:   blogs.count,
		AvgBlogTime:        blogs.avg(),
		CoursesUpdated:     courses.count,
		AvgCourseTime:      courses.avg(),
		UserQueries:        support.count,
		AvgResponseTime:    support.avg(),
	}
	stats.EfficiencyScore = calculateEfficiencyScore(stats)
	return stats, nil
}

// calculateEfficiencyScore combines speed penalties and volume bonuses into
// a 0-100 score. All checks read the same snapshot; a category with no
// completed tasks has average 0 and never penalizes.
func calculateEfficiencyScore(stats DailyStats) int {
	score := 100

	// Deduct points for slow performance
	if stats.AvgPaymentTime > slowPaymentThreshold {
		score -= 10
	}
	if stats.AvgEnrollmentTime > slowEnrollmentThreshold {
		score -= 10
	}
	if stats.AvgBlogTime > slowBlogThreshold {
		score -= 10
	}
	if stats.AvgCourseTime > slowCourseThreshold {
		score -= 10
	}
	if stats.AvgResponseTime > slowResponseThreshold {
		score -= 10
	}

	// Bonus points for high productivity
	if stats.TotalTasks >= highTaskVolume {
		score += 10
	}
	if stats.PaymentsProcessed >= highPaymentVolume {
		score += 5
	}
	if stats.BlogPostsCreated >= highBlogVolume {
		score += 5
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
