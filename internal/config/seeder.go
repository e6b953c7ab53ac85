package config

import (
	"log"
	"time"

	"scholarhub/internal/adapters/persistence/models"
	"scholarhub/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}
	if err := s.seedSchemes(); err != nil {
		return err
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser seeds default admin user
// This is for development/testing only
// In production, create admin through secure process
func (s *Seeder) seedAdminUser() error {
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	hashedPassword, err := password.Hash("admin123456")
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:     "Administrator",
		Email:    "admin@scholarhub.local",
		Password: hashedPassword,
		Role:     models.RoleAdmin,
	}
	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("   Created admin user: %s", admin.Email)
	return nil
}

// seedSchemes seeds a starter scholarship catalog when the table is
// empty. The catalog is otherwise managed outside this system.
func (s *Seeder) seedSchemes() error {
	var count int64
	s.db.Model(&models.Scheme{}).Count(&count)
	if count > 0 {
		return nil
	}

	deadline := func(year int, month time.Month, day int) *time.Time {
		t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		return &t
	}

	schemes := []models.Scheme{
		{
			SchemeName:      "National Merit Scholarship",
			ScholarshipName: "Merit Award for Undergraduate Students",
			Amount:          50000,
			AcademicYear:    "2026-27",
			Type:            "merit",
			Category:        "general",
			International:   false,
			Deadline:        deadline(2026, time.October, 31),
		},
		{
			SchemeName:      "Post-Matric Scholarship",
			ScholarshipName: "Post-Matric Support for SC/ST Students",
			Amount:          30000,
			AcademicYear:    "2026-27",
			Type:            "means",
			Category:        "sc-st",
			International:   false,
			Deadline:        deadline(2026, time.November, 15),
		},
		{
			SchemeName:      "Global Research Fellowship",
			ScholarshipName: "International Graduate Research Grant",
			Amount:          200000,
			AcademicYear:    "2026-27",
			Type:            "research",
			Category:        "general",
			International:   true,
			Deadline:        nil,
		},
	}

	for _, scheme := range schemes {
		if err := s.db.Create(&scheme).Error; err != nil {
			return err
		}
		log.Printf("   Created scheme: %s", scheme.SchemeName)
	}
	return nil
}
