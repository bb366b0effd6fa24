package main

import (
	"context"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"campuslink/internal/config"
	"campuslink/internal/db"
	"campuslink/internal/model"
)

// Demo content for a fresh installation. Accounts go through the same
// bcrypt path as registration; the plaintext comes from SEED_PASSWORD
// and is never printed.
var seedProfiles = []model.Profile{
	{Name: "Obioma Nduka", Bio: "Data Engineer", Quote: "I've started so I'll finish"},
	{Name: "Chika Eguzoro", Bio: "Cloud Administrator", Quote: "I love coding"},
	{Name: "Joseph Onyeisi", Bio: "Data Engineer", Quote: "Code everyday"},
}

var seedGroups = []model.StudyGroup{
	{ProfileID: 1, Name: "NITS23K"},
	{ProfileID: 2, Name: "NITS23K"},
	{ProfileID: 3, Name: "NITS23K"},
}

var seedHobbies = []model.Hobby{
	{ProfileID: 1, Name: "Watching Movies"},
	{ProfileID: 2, Name: "Taking Walks"},
	{ProfileID: 3, Name: "Football"},
	{ProfileID: 3, Name: "Cycling"},
}

func main() {
	log.Println("Starting seed script...")

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		log.Fatal("SEED_PASSWORD must be set; refusing to seed accounts with a known default")
	}

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.Account{},
		&model.Profile{},
		&model.StudyGroup{},
		&model.Hobby{},
		&model.FreelancerProfile{},
		&model.Service{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	if err := seedCommunity(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed community data: %v", err)
	}

	if err := seedAccounts(ctx, gormDB, password); err != nil {
		log.Fatalf("Failed to seed accounts: %v", err)
	}

	log.Println("Seed completed")
}

func seedCommunity(ctx context.Context, gormDB *gorm.DB) error {
	var count int64
	if err := gormDB.WithContext(ctx).Model(&model.Profile{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Profiles already present, skipping community seed")
		return nil
	}

	return gormDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range seedProfiles {
			if err := tx.Create(&seedProfiles[i]).Error; err != nil {
				return err
			}
		}
		for i := range seedGroups {
			if err := tx.Create(&seedGroups[i]).Error; err != nil {
				return err
			}
		}
		for i := range seedHobbies {
			if err := tx.Create(&seedHobbies[i]).Error; err != nil {
				return err
			}
		}
		log.Printf("Seeded %d profiles, %d study groups, %d hobbies",
			len(seedProfiles), len(seedGroups), len(seedHobbies))
		return nil
	})
}

func seedAccounts(ctx context.Context, gormDB *gorm.DB, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return err
	}

	accounts := []model.Account{
		{Username: "Jane.Doe", Email: "jane@example.com", Role: model.RoleCustomer, PasswordHash: string(hash)},
		{Username: "Tunde.Bakare", Email: "tunde@example.com", Role: model.RoleFreelancer, PasswordHash: string(hash)},
	}

	created := 0
	for i := range accounts {
		var existing model.Account
		err := gormDB.WithContext(ctx).Where("username = ?", accounts[i].Username).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := gormDB.WithContext(ctx).Create(&accounts[i]).Error; err != nil {
			return err
		}
		created++

		if accounts[i].Role == model.RoleFreelancer {
			freelancer := model.FreelancerProfile{
				AccountID: accounts[i].ID,
				Headline:  "Full-stack web developer",
				Skills:    "Go, SQL, JavaScript",
			}
			if err := gormDB.WithContext(ctx).Create(&freelancer).Error; err != nil {
				return err
			}
			svc := model.Service{
				FreelancerID: freelancer.ID,
				Title:        "Landing page build",
				Description:  "Responsive landing page with contact form",
				HourlyRate:   decimal.NewFromFloat(45.00),
			}
			if err := gormDB.WithContext(ctx).Create(&svc).Error; err != nil {
				return err
			}
		}
	}

	log.Printf("Seeded %d accounts", created)
	return nil
}
