package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"Darsgah/Models"
	"Darsgah/Performance"
)

// PerformanceController exposes the performance tracking engine over the
// action-dispatch API the admin dashboard consumes.
type PerformanceController struct {
	Tracker *Performance.Tracker
}

// NewPerformanceController creates a new PerformanceController
func NewPerformanceController(tracker *Performance.Tracker) *PerformanceController {
	return &PerformanceController{Tracker: tracker}
}

type performanceRequest struct {
	Action          string  `json:"action"`
	AdminID         uint    `json:"admin_id"`
	TaskType        string  `json:"task_type"`
	Description     string  `json:"description"`
	TaskID          uint    `json:"task_id"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes"`
	MetricType      string  `json:"metric_type"`
	MetricValue     float64 `json:"metric_value"`
	RelatedEntityID *uint   `json:"related_entity_id"`
	Date            string  `json:"date"`
	BenchmarkName   string  `json:"benchmark_name"`
	CurrentValue    float64 `json:"current_value"`
}

func queryAdminID(ctx *fiber.Ctx) uint {
	adminID, err := strconv.ParseUint(ctx.Query("admin_id", "1"), 10, 32)
	if err != nil {
		return 1
	}
	return uint(adminID)
}

// HandleGet serves the dashboard read paths:
// ?action=dashboard|benchmarks|trends|realtime&admin_id=N
func (c *PerformanceController) HandleGet(ctx *fiber.Ctx) error {
	adminID := queryAdminID(ctx)

	switch ctx.Query("action") {
	case "dashboard":
		summary, err := c.Tracker.GetDailySummary(adminID, "")
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load daily summary"})
		}
		benchmarks, err := c.Tracker.GetSystemBenchmarks()
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load benchmarks"})
		}
		realTime, err := c.Tracker.GetRealTimeMetrics(adminID)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load real-time metrics"})
		}
		trends, err := c.Tracker.GetPerformanceTrends(adminID)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load trends"})
		}
		return ctx.JSON(fiber.Map{
			"daily_summary": summary,
			"benchmarks":    benchmarks,
			"real_time":     realTime,
			"trends":        trends,
		})

	case "benchmarks":
		benchmarks, err := c.Tracker.GetSystemBenchmarks()
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load benchmarks"})
		}
		return ctx.JSON(benchmarks)

	case "trends":
		trends, err := c.Tracker.GetPerformanceTrends(adminID)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load trends"})
		}
		return ctx.JSON(trends)

	case "realtime":
		metrics, err := c.Tracker.GetRealTimeMetrics(adminID)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load real-time metrics"})
		}
		return ctx.JSON(metrics)

	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid action"})
	}
}

// HandlePost serves the mutating actions:
// start_task, complete_task, record_metric, update_daily_summary.
func (c *PerformanceController) HandlePost(ctx *fiber.Ctx) error {
	var input performanceRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	switch input.Action {
	case "start_task":
		taskID, err := c.Tracker.StartTask(input.AdminID, input.TaskType, input.Description)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to start task"})
		}
		return ctx.JSON(fiber.Map{"task_id": taskID, "status": "started"})

	case "complete_task":
		status := input.Status
		if status == "" {
			status = Models.TaskStatusCompleted
		}
		err := c.Tracker.CompleteTask(input.TaskID, status, input.Notes)
		return ctx.JSON(fiber.Map{"success": err == nil})

	case "record_metric":
		err := c.Tracker.RecordMetric(input.MetricType, input.MetricValue, input.AdminID, input.RelatedEntityID)
		return ctx.JSON(fiber.Map{"success": err == nil})

	case "update_daily_summary":
		err := c.Tracker.UpdateDailySummary(input.AdminID, input.Date)
		return ctx.JSON(fiber.Map{"success": err == nil})

	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid action"})
	}
}

// HandlePut serves update_benchmark. A name with no matching benchmark
// reports success=false instead of failing.
func (c *PerformanceController) HandlePut(ctx *fiber.Ctx) error {
	var input performanceRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	switch input.Action {
	case "update_benchmark":
		updated, err := c.Tracker.UpdateBenchmark(input.BenchmarkName, input.CurrentValue)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update benchmark"})
		}
		return ctx.JSON(fiber.Map{"success": updated})

	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid action"})
	}
}
