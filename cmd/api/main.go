package main

import (
	"log"
	"time"

	config "github.com/anjiri1684/course_platform/configs"
	"github.com/anjiri1684/course_platform/database"
	"github.com/anjiri1684/course_platform/jobs"
	"github.com/anjiri1684/course_platform/notifications"
	"github.com/anjiri1684/course_platform/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg := config.Load()

	database.ConnectDB(cfg.DatabaseURL)
	database.Migrate()
	database.SeedAdmin(cfg)

	emailSvc := notifications.NewEmailService(cfg)

	c := cron.New()
	c.AddFunc("*/5 * * * *", jobs.ExpireStaleAttempts)
	go c.Start()
	log.Println("✅ Cron job for attempt expiry scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "Course Platform",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSAllowOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Welcome to Course Platform API",
		})
	})

	routes.AuthRoutes(app, emailSvc)
	routes.CourseRoutes(app)
	routes.QuizRoutes(app)
	routes.ContentRoutes(app)
	routes.CommunityRoutes(app)
	routes.ContactRoutes(app, emailSvc)
	routes.AdminRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	log.Printf("✅ Server is running on port %s", cfg.Port)
	err := app.Listen(":" + cfg.Port)
	if err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
