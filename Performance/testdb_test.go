package Performance

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"Darsgah/Models"
)

// newTestDB opens a named in-memory sqlite database so every test gets an
// isolated schema while GORM's pooled connections still see the same data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&Models.AdminTask{},
		&Models.PerformanceMetric{},
		&Models.SystemBenchmark{},
		&Models.DailySummary{},
		&Models.Payment{},
	))
	return db
}

// seedCompletedTask inserts a finished task for the given local date with a
// fixed duration, bypassing the tracker so tests control the clock.
func seedCompletedTask(t *testing.T, db *gorm.DB, adminID uint, taskType, date string, duration float64) {
	t.Helper()

	start, _, err := dayRange(date)
	require.NoError(t, err)

	finished := start.Add(time.Hour)
	task := Models.AdminTask{
		AdminID:         adminID,
		TaskType:        taskType,
		TaskDescription: "seeded " + taskType,
		StartTime:       start.Add(10 * time.Minute),
		EndTime:         &finished,
		Status:          Models.TaskStatusCompleted,
		DurationSeconds: duration,
	}
	require.NoError(t, db.Create(&task).Error)
}
