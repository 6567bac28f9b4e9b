package Controllers

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Darsgah/Models"
	"Darsgah/Performance"
)

var validate = validator.New()

// BlogController handles blog-related API endpoints. Create and update are
// timed through the performance tracker so they show up in the admin's
// daily summary.
type BlogController struct {
	DB      *gorm.DB
	Tracker *Performance.Tracker
}

// NewBlogController creates a new BlogController
func NewBlogController(db *gorm.DB, tracker *Performance.Tracker) *BlogController {
	return &BlogController{DB: db, Tracker: tracker}
}

type blogRequest struct {
	Action          string  `json:"action"`
	BlogID          uint    `json:"blog_id"`
	AdminID         uint    `json:"admin_id"`
	TitleFa         string  `json:"title_fa" validate:"required"`
	Content         string  `json:"content" validate:"required"`
	MetaTitle       string  `json:"meta_title"`
	MetaDescription string  `json:"meta_description"`
	Tags            string  `json:"tags"`
	FeaturedImage   *string `json:"featured_image"`
}

var (
	boldRe    = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe  = regexp.MustCompile(`\*(.*?)\*`)
	hashtagRe = regexp.MustCompile(`#([^\s#]+)`)
)

// ProcessContent converts the lightweight markup admins type into HTML:
// **bold**, *italic*, #hashtag spans and line breaks.
func ProcessContent(content string) string {
	content = boldRe.ReplaceAllString(content, "<strong>${1}</strong>")
	content = italicRe.ReplaceAllString(content, "<em>${1}</em>")
	content = hashtagRe.ReplaceAllString(content, `<span class="hashtag">#${1}</span>`)
	content = strings.ReplaceAll(content, "\n", "<br>\n")
	return content
}

// HandleGet serves ?action=list|get|tags|search|stats
func (c *BlogController) HandleGet(ctx *fiber.Ctx) error {
	switch ctx.Query("action") {
	case "list":
		page, _ := strconv.Atoi(ctx.Query("page", "1"))
		limit, _ := strconv.Atoi(ctx.Query("limit", "10"))
		if page < 1 {
			page = 1
		}

		query := c.DB.Model(&Models.Blog{})
		if status := ctx.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}

		var blogs []Models.Blog
		result := query.Order("created_at DESC").
			Limit(limit).Offset((page - 1) * limit).
			Find(&blogs)
		if result.Error != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve blogs"})
		}
		return ctx.JSON(blogs)

	case "get":
		var blog Models.Blog
		var result *gorm.DB
		if slug := ctx.Query("slug"); slug != "" {
			result = c.DB.Preload("Tags").Where("slug = ?", slug).First(&blog)
		} else if id := ctx.Query("id"); id != "" {
			result = c.DB.Preload("Tags").First(&blog, id)
		} else {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Blog ID or Slug is required"})
		}
		if result.Error != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Blog not found"})
		}
		return ctx.JSON(blog)

	case "tags":
		var tags []Models.TagWithCount
		result := c.DB.Table("tags").
			Select("tags.id, tags.name, COUNT(blog_tags.blog_id) as blog_count").
			Joins("LEFT JOIN blog_tags ON blog_tags.tag_id = tags.id").
			Where("tags.deleted_at IS NULL").
			Group("tags.id, tags.name").
			Order("tags.name").
			Scan(&tags)
		if result.Error != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve tags"})
		}
		return ctx.JSON(tags)

	case "search":
		keyword := "%" + ctx.Query("keyword") + "%"
		limit, _ := strconv.Atoi(ctx.Query("limit", "10"))

		var blogs []Models.Blog
		result := c.DB.Preload("Tags").
			Where("title_fa LIKE ? OR content LIKE ? OR meta_description LIKE ?", keyword, keyword, keyword).
			Order("created_at DESC").
			Limit(limit).
			Find(&blogs)
		if result.Error != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to search blogs"})
		}
		return ctx.JSON(blogs)

	case "stats":
		var stats Models.BlogStats
		c.DB.Model(&Models.Blog{}).Count(&stats.TotalBlogs)
		c.DB.Model(&Models.Blog{}).Where("status = ?", Models.BlogStatusPublished).Count(&stats.PublishedBlogs)
		c.DB.Model(&Models.Blog{}).Where("status = ?", Models.BlogStatusDraft).Count(&stats.DraftBlogs)
		c.DB.Model(&Models.Tag{}).Count(&stats.TotalTags)
		return ctx.JSON(stats)

	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid action"})
	}
}

// HandlePost serves create, publish and unpublish.
func (c *BlogController) HandlePost(ctx *fiber.Ctx) error {
	var input blogRequest
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

		taskID, _ := c.Tracker.StartTask(input.AdminID, Models.TaskTypeBlogCreation,
			"ایجاد مقاله: "+input.TitleFa)

		blog := Models.Blog{
			TitleFa:         input.TitleFa,
			Content:         ProcessContent(input.Content),
			MetaTitle:       input.MetaTitle,
			MetaDescription: input.MetaDescription,
			Slug:            Models.GenerateBlogSlug(c.DB, input.TitleFa, 0),
			AdminID:         input.AdminID,
			Status:          Models.BlogStatusDraft,
			FeaturedImage:   input.FeaturedImage,
		}
		if err := c.DB.Create(&blog).Error; err != nil {
			c.Tracker.CompleteTask(taskID, Models.TaskStatusFailed, nil)
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false, "error": "Failed to create blog",
			})
		}
		if input.Tags != "" {
			c.setBlogTags(&blog, input.Tags)
		}
		c.Tracker.CompleteTask(taskID, Models.TaskStatusCompleted, nil)
		return ctx.JSON(fiber.Map{"success": true, "blog_id": blog.ID})

	case "publish":
		now := time.Now()
		result := c.DB.Model(&Models.Blog{}).Where("id = ?", input.BlogID).
			Updates(map[string]interface{}{"status": Models.BlogStatusPublished, "published_at": now})
		return ctx.JSON(fiber.Map{"success": result.Error == nil})

	case "unpublish":
		result := c.DB.Model(&Models.Blog{}).Where("id = ?", input.BlogID).
			Update("status", Models.BlogStatusDraft)
		return ctx.JSON(fiber.Map{"success": result.Error == nil})

	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid action"})
	}
}

// HandlePut serves update, timed as a blog_update task.
func (c *BlogController) HandlePut(ctx *fiber.Ctx) error {
	var input blogRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Action != "update" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid action"})
	}
	if input.AdminID == 0 {
		input.AdminID = 1
	}

	taskID, _ := c.Tracker.StartTask(input.AdminID, "blog_update",
		"بروزرسانی مقاله: "+input.TitleFa)

	var blog Models.Blog
	if err := c.DB.First(&blog, input.BlogID).Error; err != nil {
		c.Tracker.CompleteTask(taskID, Models.TaskStatusFailed, nil)
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "error": "Blog not found"})
	}

	// Regenerate the slug ignoring the post itself so an unchanged title
	// does not pick up a -1 suffix.
	updates := map[string]interface{}{
		"title_fa":         input.TitleFa,
		"content":          ProcessContent(input.Content),
		"meta_title":       input.MetaTitle,
		"meta_description": input.MetaDescription,
		"slug":             Models.GenerateBlogSlug(c.DB, input.TitleFa, blog.ID),
		"featured_image":   input.FeaturedImage,
	}
	if err := c.DB.Model(&blog).Updates(updates).Error; err != nil {
		c.Tracker.CompleteTask(taskID, Models.TaskStatusFailed, nil)
		return ctx.JSON(fiber.Map{"success": false})
	}
	if input.Tags != "" {
		c.DB.Model(&blog).Association("Tags").Clear()
		c.setBlogTags(&blog, input.Tags)
	}
	c.Tracker.CompleteTask(taskID, Models.TaskStatusCompleted, nil)
	return ctx.JSON(fiber.Map{"success": true})
}

// HandleDelete removes a post and its tag links in one transaction.
func (c *BlogController) HandleDelete(ctx *fiber.Ctx) error {
	var input blogRequest
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.BlogID == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Blog ID required"})
	}

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM blog_tags WHERE blog_id = ?", input.BlogID).Error; err != nil {
			return err
		}
		return tx.Delete(&Models.Blog{}, input.BlogID).Error
	})
	return ctx.JSON(fiber.Map{"success": err == nil})
}

// setBlogTags links the comma-separated tag names to the post, creating
// tags that do not exist yet.
func (c *BlogController) setBlogTags(blog *Models.Blog, tags string) {
	for _, name := range strings.Split(tags, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		var tag Models.Tag
		c.DB.Where(Models.Tag{Name: name}).FirstOrCreate(&tag)
		c.DB.Model(blog).Association("Tags").Append(&tag)
	}
}
