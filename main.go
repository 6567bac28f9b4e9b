package main

import (
	"Darsgah/CronJobs"
	"Darsgah/FiberConfig"
	"Darsgah/Models"
	"log"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	Models.Connect()

	summaryScheduler := CronJobs.NewSummaryScheduler(Models.DB, false)
	if err := summaryScheduler.Start(); err != nil {
		log.Printf("Failed to start summary scheduler: %v", err)
	}
	defer summaryScheduler.Stop()

	FiberConfig.FiberConfig()
}
