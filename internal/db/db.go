package db

import (
	"log"
	"os"
	"soapbox/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=soapbox port=5432 sslmode=disable TimeZone=UTC"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if err := Seed(DB); err != nil {
		log.Fatalf("Failed to seed reference data: %v", err)
	}
}

// Migrate runs the schema migration for all models.
func Migrate(g *gorm.DB) error {
	return g.AutoMigrate(
		&models.User{},
		&models.Status{},
		&models.Category{},
		&models.Opinion{},
		&models.Comment{},
		&models.Reaction{},
		&models.Review{},
		&models.Notification{},
	)
}

// Seed creates the status registry and initial categories.
func Seed(g *gorm.DB) error {
	if err := seedStatuses(g); err != nil {
		return err
	}
	return seedCategories(g)
}

func seedStatuses(g *gorm.DB) error {
	var count int64
	g.Model(&models.Status{}).Count(&count)
	if count > 0 {
		log.Println("Statuses already seeded, skipping")
		return nil
	}

	names := []string{
		models.StatusDraft,
		models.StatusPreview,
		models.StatusPublished,
		models.StatusPendingReview,
		models.StatusUnderReview,
		models.StatusApproved,
		models.StatusRejected,
		models.StatusResolved,
		models.StatusWithdrawn,
	}
	for _, name := range names {
		if err := g.Create(&models.Status{Name: name}).Error; err != nil {
			return err
		}
	}
	log.Println("Status registry created")
	return nil
}

func seedCategories(g *gorm.DB) error {
	var count int64
	g.Model(&models.Category{}).Count(&count)
	if count > 0 {
		log.Println("Categories already seeded, skipping")
		return nil
	}

	categories := []models.Category{
		{Name: "Unassigned", Description: "Default category"},
		{Name: "Technology", Description: "Technology related opinions"},
		{Name: "Society", Description: "Society and culture"},
		{Name: "Science", Description: "Science and research"},
		{Name: "Miscellaneous", Description: "Everything else"},
	}
	for _, category := range categories {
		if err := g.Create(&category).Error; err != nil {
			log.Printf("Failed to create category %s: %v", category.Name, err)
		}
	}
	log.Println("Initial categories created")
	return nil
}
