package Controllers

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"Darsgah/Performance"
)

// ExportTrendsReport streams the trailing 30 days of an admin's daily
// summaries as an Excel workbook.
func (c *PerformanceController) ExportTrendsReport(ctx *fiber.Ctx) error {
	adminID := queryAdminID(ctx)

	trends, err := c.Tracker.GetPerformanceTrends(adminID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load trends"})
	}

	buf, err := buildTrendsWorkbook(trends)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	filename := fmt.Sprintf("performance_trends_admin_%d.xlsx", adminID)
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return ctx.Send(buf.Bytes())
}

func buildTrendsWorkbook(trends []Performance.TrendPoint) (*bytes.Buffer, error) {
	f := excelize.NewFile()

	sheetName := "Trends"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	headers := []string{
		"Date", "Efficiency Score", "Tasks Completed", "Avg Completion Time (s)",
		"Payments Processed", "Enrollments Managed", "Blog Posts Created", "Courses Updated",
	}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6FA"},
			Pattern: 1,
		},
	})
	if err == nil {
		f.SetRowStyle(sheetName, 1, 1, headerStyle)
	}

	for rowIndex, point := range trends {
		row := rowIndex + 2

		values := []interface{}{
			point.Date,
			point.EfficiencyScore,
			point.TotalTasksCompleted,
			point.AvgTaskCompletionTime,
			point.PaymentsProcessed,
			point.EnrollmentsManaged,
			point.BlogPostsCreated,
			point.CoursesUpdated,
		}
		for colIndex, value := range values {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := 0; i < len(headers); i++ {
		f.SetColWidth(sheetName, string('A'+rune(i)), string('A'+rune(i)), 18)
	}

	if f.GetSheetName(0) != sheetName {
		f.DeleteSheet("Sheet1")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing Excel file to buffer: %v", err)
	}
	return &buf, nil
}
