// Seeds a bootstrap advisor identity and a small sample catalog for
// local development.
package main

import (
	"log"
	"os"

	"zfunds/internal/config"
	"zfunds/internal/models"
	"zfunds/internal/repositories"
	"zfunds/internal/services/otp"
)

func main() {
	config.LoadEnv()

	advisorMobile := os.Getenv("SEED_ADVISOR_MOBILE")
	advisorName := os.Getenv("SEED_ADVISOR_NAME")

	if advisorMobile == "" {
		log.Fatal("SEED_ADVISOR_MOBILE must be set in environment")
	}

	if err := repositories.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer func() {
		if repositories.DB != nil {
			sqlDB, err := repositories.DB.DB()
			if err != nil {
				log.Printf("⚠️ Failed to get SQL DB instance: %v", err)
			} else if err := sqlDB.Close(); err != nil {
				log.Printf("⚠️ Failed to close PostgreSQL connection: %v", err)
			}
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("⚠️ Failed to close Redis connection: %v", err)
			}
		}
	}()

	var existing models.Identity
	if err := repositories.DB.Where("mobile_number = ?", advisorMobile).First(&existing).Error; err == nil {
		log.Println("Seed advisor already exists")
		return
	}

	secret, err := otp.NewService().NewSecret(advisorMobile)
	if err != nil {
		log.Fatal("Failed to provision OTP secret:", err)
	}

	advisor := models.Identity{
		MobileNumber: advisorMobile,
		Name:         advisorName,
		OTPSecret:    secret,
		Role:         models.RoleAdvisor,
		IsActive:     true,
		TokenVersion: 1,
	}
	if err := repositories.DB.Create(&advisor).Error; err != nil {
		log.Fatal("Failed to create seed advisor:", err)
	}

	catalogRepo := repositories.NewCatalogRepository(repositories.DB)
	samples := []struct{ name, description, category string }{
		{"Index Fund A", "Broad market index fund", "Mutual Funds"},
		{"Gilt Fund B", "Government securities fund", "Mutual Funds"},
		{"Term Plan C", "Pure protection term plan", "Insurance"},
	}
	for _, s := range samples {
		if _, err := catalogRepo.CreateProductWithCategory(s.name, s.description, s.category); err != nil {
			log.Printf("⚠️ Failed to seed product %q: %v", s.name, err)
		}
	}

	log.Println("✅ Seed advisor and sample catalog created successfully!")
}
