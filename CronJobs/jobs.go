package CronJobs

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"Darsgah/Models"
	"Darsgah/Performance"
)

// SummaryScheduler recomputes every admin's daily summary at the end of
// the day, so the dashboard has fresh aggregates even when nobody hit the
// update endpoint.
type SummaryScheduler struct {
	cronScheduler  *cron.Cron
	db             *gorm.DB
	tracker        *Performance.Tracker
	runImmediately bool
	jobID          cron.EntryID
}

// NewSummaryScheduler creates a new summary scheduler
func NewSummaryScheduler(db *gorm.DB, runImmediately bool) *SummaryScheduler {
	return &SummaryScheduler{
		cronScheduler:  cron.New(cron.WithSeconds()),
		db:             db,
		tracker:        Performance.NewTracker(db),
		runImmediately: runImmediately,
	}
}

// Start schedules the nightly summary run
func (s *SummaryScheduler) Start() error {
	var err error
	s.jobID, err = s.cronScheduler.AddFunc("0 55 23 * * *", func() {
		log.Println("Running scheduled daily summary update")
		s.runSummaryUpdate()
	})
	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	s.cronScheduler.Start()
	log.Println("Daily summary scheduler started - will run every day at 23:55")

	if s.runImmediately {
		log.Println("Running initial summary update")
		s.runSummaryUpdate()
	}
	return nil
}

// Stop terminates the scheduler
func (s *SummaryScheduler) Stop() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
		log.Println("Daily summary scheduler stopped")
	}
}

// UpdateSchedule changes when the summary run fires.
// Format: "0 55 23 * * *" = at 23:55:00 every day
func (s *SummaryScheduler) UpdateSchedule(schedule string) error {
	s.cronScheduler.Remove(s.jobID)

	var err error
	s.jobID, err = s.cronScheduler.AddFunc(schedule, func() {
		log.Println("Running scheduled daily summary update")
		s.runSummaryUpdate()
	})
	if err != nil {
		return fmt.Errorf("error updating schedule: %w", err)
	}

	log.Printf("Daily summary schedule updated to: %s\n", schedule)
	return nil
}

// RunManualUpdate executes a summary update outside the schedule
func (s *SummaryScheduler) RunManualUpdate() {
	log.Println("Running manual summary update")
	s.runSummaryUpdate()
}

// runSummaryUpdate recomputes today's summary for every admin that has a
// task today.
func (s *SummaryScheduler) runSummaryUpdate() {
	today := time.Now().Format("2006-01-02")
	start, _ := time.ParseInLocation("2006-01-02", today, time.Local)
	end := start.AddDate(0, 0, 1)

	var adminIDs []uint
	if err := s.db.Model(&Models.AdminTask{}).
		Where("start_time >= ? AND start_time < ?", start, end).
		Distinct("admin_id").
		Pluck("admin_id", &adminIDs).Error; err != nil {
		log.Printf("Error listing admins for summary update: %v\n", err)
		return
	}

	for _, adminID := range adminIDs {
		if err := s.tracker.UpdateDailySummary(adminID, today); err != nil {
			log.Printf("Error updating daily summary for admin %d: %v\n", adminID, err)
		}
	}
	log.Printf("Daily summary update completed for %d admins\n", len(adminIDs))
}
