package Performance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"Darsgah/Models"
)

func seedSummary(t *testing.T, db *gorm.DB, adminID uint, date string, score int) {
	t.Helper()
	require.NoError(t, db.Create(&Models.DailySummary{
		AdminID:         adminID,
		Date:            date,
		EfficiencyScore: score,
	}).Error)
}

func TestGetPerformanceTrendsWindowAndOrder(t *testing.T) {
	db := newTestDB(t)
	tracker := NewTracker(db)

	dateOffset := func(days int) string {
		return time.Now().AddDate(0, 0, days).Format("2006-01-02")
	}

	seedSummary(t, db, 1, dateOffset(0), 95)
	seedSummary(t, db, 1, dateOffset(-10), 80)
	seedSummary(t, db, 1, dateOffset(-30), 70)
	seedSummary(t, db, 1, dateOffset(-31), 60) // outside the trailing window
	seedSummary(t, db, 2, dateOffset(-5), 40)  // another admin

	trends, err := tracker.GetPerformanceTrends(1)
	require.NoError(t, err)
	require.Len(t, trends, 3)

	assert.Equal(t, dateOffset(0), trends[0].Date)
	assert.Equal(t, 95, trends[0].EfficiencyScore)
	assert.Equal(t, dateOffset(-10), trends[1].Date)
	assert.Equal(t, dateOffset(-30), trends[2].Date)
}

func TestGetPerformanceTrendsEmpty(t *testing.T) {
	db := newTestDB(t)
	tracker := NewTracker(db)

	trends, err := tracker.GetPerformanceTrends(1)
	require.NoError(t, err)
	assert.Empty(t, trends)
}

func TestGetRealTimeMetrics(t *testing.T) {
	db := newTestDB(t)
	tracker := NewTracker(db)

	today := time.Now().Format("2006-01-02")

	// Two open tasks for admin 1 today.
	start, _, err := dayRange(today)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		require.NoError(t, db.Create(&Models.AdminTask{
			AdminID:   1,
			TaskType:  Models.TaskTypePaymentReview,
			StartTime: start.Add(time.Duration(i+1) * time.Minute),
			Status:    Models.TaskStatusInProgress,
		}).Error)
	}

	// Three finished tasks, two of them support calls with known durations.
	seedCompletedTask(t, db, 1, Models.TaskTypeUserSupport, today, 100)
	seedCompletedTask(t, db, 1, Models.TaskTypeUserSupport, today, 300)
	seedCompletedTask(t, db, 1, Models.TaskTypeBlogCreation, today, 900)

	// Another admin's work must stay invisible.
	seedCompletedTask(t, db, 2, Models.TaskTypeUserSupport, today, 5000)

	// The payment queue is shared, so both pending rows count.
	require.NoError(t, db.Create(&Models.Payment{UserID: 1, Amount: 100, Status: Models.PaymentStatusPending}).Error)
	require.NoError(t, db.Create(&Models.Payment{UserID: 2, Amount: 200, Status: Models.PaymentStatusPending}).Error)
	require.NoError(t, db.Create(&Models.Payment{UserID: 3, Amount: 300, Status: Models.PaymentStatusConfirmed}).Error)

	metrics, err := tracker.GetRealTimeMetrics(1)
	require.NoError(t, err)

	assert.EqualValues(t, 2, metrics.ActiveTasks)
	assert.EqualValues(t, 3, metrics.CompletedTasks)
	assert.EqualValues(t, 2, metrics.PendingPayments)
	assert.InDelta(t, 200.0, metrics.AvgResponseTime, 0.001)
}

func TestGetRealTimeMetricsQuietDay(t *testing.T) {
	db := newTestDB(t)
	tracker := NewTracker(db)

	metrics, err := tracker.GetRealTimeMetrics(1)
	require.NoError(t, err)

	assert.Zero(t, metrics.ActiveTasks)
	assert.Zero(t, metrics.CompletedTasks)
	assert.Zero(t, metrics.PendingPayments)
	assert.Zero(t, metrics.AvgResponseTime)
}
