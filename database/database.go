package database

import (
	"fmt"
	"log"

	config "github.com/anjiri1684/course_platform/configs"
	"github.com/anjiri1684/course_platform/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB(dsn string) {
	var err error

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		DisableNestedTransaction:                 true,
		TranslateError:                           true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.CourseModule{},
		&models.Enrollment{},
		&models.Quiz{},
		&models.Question{},
		&models.Option{},
		&models.QuizAttempt{},
		&models.AttemptAnswer{},
		&models.Announcement{},
		&models.Webinar{},
		&models.WebinarRegistration{},
		&models.CommunityQuestion{},
		&models.CommunityAnswer{},
		&models.ContactMessage{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

func SeedAdmin(cfg config.AppConfig) {
	var count int64
	err := DB.Model(&models.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	adminUser := models.User{
		FullName: cfg.AdminFullName,
		Email:    cfg.AdminEmail,
		Password: string(hashedPassword),
		Role:     "admin",
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	log.Println("✅ Admin user seeded successfully")
}
