package Controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Darsgah/Models"
	"Darsgah/Performance"
)

// CourseController handles course-related API endpoints: the course
// catalog, its lessons and enrollments.
type CourseController struct {
	DB      *gorm.DB
	Tracker *Performance.Tracker
}

// NewCourseController creates a new CourseController
func NewCourseController(db *gorm.DB, tracker *Performance.Tracker) *CourseController {
	return &CourseController{DB: db, Tracker: tracker}
}

type courseRequest struct {
	Action          string  `json:"action"`
	CourseID        uint    `json:"course_id"`
	LessonID        uint    `json:"lesson_id"`
	EnrollmentID    uint    `json:"enrollment_id"`
	UserID          uint    `json:"user_id"`
	PaymentID       *uint   `json:"payment_id"`
	AdminID         uint    `json:"admin_id"`
	TitleFa         string  `json:"title_fa" validate:"required"`
	Description     string  `json:"description"`
	Content         string  `json:"content"`
	MetaTitle       string  `json:"meta_title"`
	MetaDescription string  `json:"meta_description"`
	Price           float64 `json:"price"`
	Duration        string  `json:"duration"`
	Level           string  `json:"level"`
	OrderNum        int     `json:"order_num"`
}

// enrollmentWithUser joins an enrollment with the enrolled user's identity
// for the per-course roster.
type enrollmentWithUser struct {
	Models.CourseEnrollment
	Username string `json:"username"`
	Email    string `json:"email"`
}

// enrollmentWithCourse joins an enrollment with course details for a
// user's own enrollment list.
type enrollmentWithCourse struct {
	Models.CourseEnrollment
	TitleFa     string `json:"title_fa"`
	Description string `json:"description"`
	Level       string `json:"level"`
}

// HandleGet serves ?action=list|get|lessons|enrollments|user_enrollments|search|stats
func (c *CourseController) HandleGet(ctx *fiber.Ctx) error {
	switch ctx.Query("action") {
	case "list":
		page, _ := strconv.Atoi(ctx.Query("page", "1"))
		limit, _ := strconv.Atoi(ctx.Query("limit", "10"))
		if page < 1 {
			page = 1
		}

		query := c.DB.Model(&Models.Course{})
		if status := ctx.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}

		var courses []Models.Course
		result := query.Order("created_at DESC").
			Limit(limit).Offset((page - 1) * limit).
			Find(&courses)
		if result.Error != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve courses"})
		}
		c.fillEnrollmentCounts(courses)
		return ctx.JSON(courses)

	case "get":
		var course Models.Course
		if err := c.DB.First(&course, ctx.Query("id", "0")).Error; err != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
		}
		c.DB.Model(&Models.CourseEnrollment{}).Where("course_id = ?", course.ID).Count(&course.EnrollmentCount)
		return ctx.JSON(course)

	case "lessons":
		var lessons []Models.CourseLesson
		result := c.DB.Where("course_id = ?", ctx.Query("course_id", "0")).
			Order("order_num ASC").
			Find(&lessons)
		if result.Error != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve lessons"})
		}
		return ctx.JSON(lessons)

	case "enrollments":
		var enrollments []enrollmentWithUser
		result := c.DB.Table("course_enrollments").
			Select("course_enrollments.*, users.username, users.email").
			Joins("JOIN users ON users.id = course_enrollments.user_id").
			Where("course_enrollments.course_id = ? AND course_enrollments.deleted_at IS NULL", ctx.Query("course_id", "0")).
			Order("course_enrollments.enrollment_date DESC").
			Scan(&enrollments)
		if result.Error != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve enrollments"})
		}
		return ctx.JSON(enrollments)

	case "user_enrollments":
		var enrollments []enrollmentWithCourse
		result := c.DB.Table("course_enrollments").
			Select("course_enrollments.*, courses.title_fa, courses.description, courses.level").
			Joins("JOIN courses ON courses.id = course_enrollments.course_id").
			Where("course_enrollments.user_id = ? AND course_enrollments.status = ? AND course_enrollments.deleted_at IS NULL",
				ctx.Query("user_id", "0"), Models.EnrollmentStatusActive).
			Order("course_enrollments.enrollment_date DESC").
			Scan(&enrollments)
		if result.Error != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve enrollments"})
		}
		return ctx.JSON(enrollments)

	case "search":
		keyword := "%" + ctx.Query("keyword") + "%"
		limit, _ := strconv.Atoi(ctx.Query("limit", "10"))

		var courses []Models.Course
		result := c.DB.
			Where("title_fa LIKE ? OR description LIKE ? OR meta_description LIKE ?", keyword, keyword, keyword).
			Order("created_at DESC").
			Limit(limit).
			Find(&courses)
		if result.Error != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to search courses"})
		}
		c.fillEnrollmentCounts(courses)
		return ctx.JSON(courses)

	case "stats":
		var stats Models.CourseStats
		c.DB.Model(&Models.Course{}).Count(&stats.TotalCourses)
		c.DB.Model(&Models.Course{}).Where("status = ?", Models.CourseStatusPublished).Count(&stats.PublishedCourses)
		c.DB.Model(&Models.Course{}).Where("status = ?", Models.CourseStatusDraft).Count(&stats.DraftCourses)
		c.DB.Model(&Models.CourseEnrollment{}).Where("status = ?", Models.EnrollmentStatusActive).Count(&stats.TotalEnrollments)
		return ctx.JSON(stats)

	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid action"})
	}
}

// HandlePost serves create, add_lesson, enroll, publish and unpublish.
func (c *CourseController) HandlePost(ctx *fiber.Ctx) error {
	var input courseRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	switch input.Action {
	case "create":
		if err := validate.Struct(&input); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		if input.AdminID == 0 {
			input.AdminID = 1
		}
		if input.Level == "" {
			input.Level = Models.CourseLevelBeginner
		}

		taskID, _ := c.Tracker.StartTask(input.AdminID, "course_creation",
			"ایجاد دوره: "+input.TitleFa)

		course := Models.Course{
			TitleFa:         input.TitleFa,
			Description:     input.Description,
			MetaTitle:       input.MetaTitle,
			MetaDescription: input.MetaDescription,
			Slug:            Models.GenerateCourseSlug(c.DB, input.TitleFa, 0),
			AdminID:         input.AdminID,
			Price:           input.Price,
			Duration:        input.Duration,
			Level:           input.Level,
			Status:          Models.CourseStatusDraft,
		}
		if err := c.DB.Create(&course).Error; err != nil {
			c.Tracker.CompleteTask(taskID, Models.TaskStatusFailed, nil)
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false, "error": "Failed to create course",
			})
		}
		c.Tracker.CompleteTask(taskID, Models.TaskStatusCompleted, nil)
		return ctx.JSON(fiber.Map{"success": true, "course_id": course.ID})

	case "add_lesson":
		if input.OrderNum == 0 {
			input.OrderNum = 1
		}
		lesson := Models.CourseLesson{
			CourseID: input.CourseID,
			TitleFa:  input.TitleFa,
			Content:  input.Content,
			OrderNum: input.OrderNum,
		}
		err := c.DB.Create(&lesson).Error
		return ctx.JSON(fiber.Map{"success": err == nil})

	case "enroll":
		enrollment := Models.CourseEnrollment{
			UserID:         input.UserID,
			CourseID:       input.CourseID,
			PaymentID:      input.PaymentID,
			EnrollmentDate: time.Now(),
			Status:         Models.EnrollmentStatusActive,
		}
		err := c.DB.Create(&enrollment).Error
		return ctx.JSON(fiber.Map{"success": err == nil})

	case "publish":
		now := time.Now()
		result := c.DB.Model(&Models.Course{}).Where("id = ?", input.CourseID).
			Updates(map[string]interface{}{"status": Models.CourseStatusPublished, "published_at": now})
		return ctx.JSON(fiber.Map{"success": result.Error == nil})

	case "unpublish":
		result := c.DB.Model(&Models.Course{}).Where("id = ?", input.CourseID).
			Update("status", Models.CourseStatusDraft)
		return ctx.JSON(fiber.Map{"success": result.Error == nil})

	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid action"})
	}
}

// HandlePut serves update (timed as course_update), update_lesson and
// cancel_enrollment.
func (c *CourseController) HandlePut(ctx *fiber.Ctx) error {
	var input courseRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	switch input.Action {
	case "update":
		if input.AdminID == 0 {
			input.AdminID = 1
		}
		if input.Level == "" {
			input.Level = Models.CourseLevelBeginner
		}

		taskID, _ := c.Tracker.StartTask(input.AdminID, Models.TaskTypeCourseUpdate,
			"بروزرسانی دوره: "+input.TitleFa)

		var course Models.Course
		if err := c.DB.First(&course, input.CourseID).Error; err != nil {
			c.Tracker.CompleteTask(taskID, Models.TaskStatusFailed, nil)
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Course not found"})
		}

		updates := map[string]interface{}{
			"title_fa":         input.TitleFa,
			"description":      input.Description,
			"meta_title":       input.MetaTitle,
			"meta_description": input.MetaDescription,
			"slug":             Models.GenerateCourseSlug(c.DB, input.TitleFa, course.ID),
			"price":            input.Price,
			"duration":         input.Duration,
			"level":            input.Level,
		}
		if err := c.DB.Model(&course).Updates(updates).Error; err != nil {
			c.Tracker.CompleteTask(taskID, Models.TaskStatusFailed, nil)
			return ctx.JSON(fiber.Map{"success": false})
		}
		c.Tracker.CompleteTask(taskID, Models.TaskStatusCompleted, nil)
		return ctx.JSON(fiber.Map{"success": true})

	case "update_lesson":
		if input.OrderNum == 0 {
			input.OrderNum = 1
		}
		result := c.DB.Model(&Models.CourseLesson{}).Where("id = ?", input.LessonID).
			Updates(map[string]interface{}{
				"title_fa":  input.TitleFa,
				"content":   input.Content,
				"order_num": input.OrderNum,
			})
		return ctx.JSON(fiber.Map{"success": result.Error == nil})

	case "cancel_enrollment":
		result := c.DB.Model(&Models.CourseEnrollment{}).Where("id = ?", input.EnrollmentID).
			Update("status", Models.EnrollmentStatusCancelled)
		return ctx.JSON(fiber.Map{"success": result.Error == nil})

	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid action"})
	}
}

// HandleDelete serves delete_course (lessons + enrollments + course in one
// transaction, all or nothing) and delete_lesson.
func (c *CourseController) HandleDelete(ctx *fiber.Ctx) error {
	var input courseRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	switch input.Action {
	case "delete_course":
		if input.CourseID == 0 {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Course ID required"})
		}
		err := c.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("course_id = ?", input.CourseID).Delete(&Models.CourseLesson{}).Error; err != nil {
				return err
			}
			if err := tx.Where("course_id = ?", input.CourseID).Delete(&Models.CourseEnrollment{}).Error; err != nil {
				return err
			}
			return tx.Delete(&Models.Course{}, input.CourseID).Error
		})
		return ctx.JSON(fiber.Map{"success": err == nil})

	case "delete_lesson":
		if input.LessonID == 0 {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Lesson ID required"})
		}
		err := c.DB.Delete(&Models.CourseLesson{}, input.LessonID).Error
		return ctx.JSON(fiber.Map{"success": err == nil})

	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid action"})
	}
}

func (c *CourseController) fillEnrollmentCounts(courses []Models.Course) {
	for i := range courses {
		c.DB.Model(&Models.CourseEnrollment{}).
			Where("course_id = ?", courses[i].ID).
			Count(&courses[i].EnrollmentCount)
	}
}
