package FiberConfig

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html"
	"gorm.io/gorm"

	"Darsgah/Controllers"
	"Darsgah/Models"
	"Darsgah/Performance"
	"Darsgah/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize handlers
	tracker := Performance.NewTracker(db)
	performanceController := Controllers.NewPerformanceController(tracker)
	blogController := Controllers.NewBlogController(db, tracker)
	courseController := Controllers.NewCourseController(db, tracker)

	// API group
	api := app.Group("/api")

	// Performance tracking routes - action-dispatch like the dashboard expects.
	// Fiber answers 405 for verbs without a handler on these paths.
	performance := api.Group("/performance")
	performance.Get("/export", performanceController.ExportTrendsReport)
	performance.Get("/", performanceController.HandleGet)
	performance.Post("/", performanceController.HandlePost)
	performance.Put("/", performanceController.HandlePut)

	// Blog routes
	blogs := api.Group("/blogs")
	blogs.Post("/upload", Controllers.UploadFeaturedImage)
	blogs.Get("/", blogController.HandleGet)
	blogs.Post("/", blogController.HandlePost)
	blogs.Put("/", blogController.HandlePut)
	blogs.Delete("/", blogController.HandleDelete)

	// Course routes
	courses := api.Group("/courses")
	courses.Get("/", courseController.HandleGet)
	courses.Post("/", courseController.HandlePost)
	courses.Put("/", courseController.HandlePut)
	courses.Delete("/", courseController.HandleDelete)
}

func FiberConfig() {
	fmt.Println("Server Up...")
	engine := html.New("./Templates", ".html")
	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		MaxAge:           300,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("dashboard", fiber.Map{
			"Title": "Darsgah Admin",
		})
	})

	SetupRoutes(app, Models.DB)

	// Serve uploaded featured images
	app.Static("/FeaturedImages", "./FeaturedImages", fiber.Static{Compress: true, CacheDuration: time.Second * 10})

	app.Listen(":3001")
}
