package Models

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using defaults")
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "database.db"
	}

	connection, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	DB = connection

	// 1. Base tables with no dependencies
	DB.AutoMigrate(
		&User{},
		&Tag{},
		&SystemBenchmark{},
	)

	// 2. Content tables
	DB.AutoMigrate(
		&Blog{},
		&Course{},
		&CourseLesson{},
		&Payment{},
	)

	// 3. Tables depending on users/courses/payments
	DB.AutoMigrate(
		&CourseEnrollment{},
	)

	// 4. Performance tracking tables
	DB.AutoMigrate(
		&AdminTask{},
		&PerformanceMetric{},
		&DailySummary{},
	)

	seedBenchmarks(DB)
}

// seedBenchmarks inserts the named targets the dashboard compares against.
// Existing rows keep their current values.
func seedBenchmarks(db *gorm.DB) {
	defaults := []SystemBenchmark{
		{BenchmarkName: "Page Load Time", CurrentValue: 0, TargetValue: 2},
		{BenchmarkName: "Database Query Time", CurrentValue: 0, TargetValue: 0.5},
		{BenchmarkName: "Daily Tasks Completed", CurrentValue: 0, TargetValue: 20},
		{BenchmarkName: "Payment Processing Time", CurrentValue: 0, TargetValue: 300},
		{BenchmarkName: "Support Response Time", CurrentValue: 0, TargetValue: 3600},
	}

	for _, benchmark := range defaults {
		var count int64
		db.Model(&SystemBenchmark{}).Where("benchmark_name = ?", benchmark.BenchmarkName).Count(&count)
		if count == 0 {
			if err := db.Create(&benchmark).Error; err != nil {
				log.Printf("Error seeding benchmark %s: %v\n", benchmark.BenchmarkName, err)
			}
		}
	}
}
